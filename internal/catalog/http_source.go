// internal/catalog/http_source.go
package catalog

import (
	"context"

	commonhttp "platform-finder/internal/common/http"
)

// HTTPSource fetches the catalog document from a URL, for deployments that
// publish the directory outside the container image.
type HTTPSource struct {
	URL    string
	Client *commonhttp.Client
}

func (s HTTPSource) Read(ctx context.Context) ([]byte, error) {
	return s.Client.Get(ctx, s.URL)
}

func (s HTTPSource) Name() string {
	return s.URL
}
