// internal/momentum/loader_test.go
package momentum

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"platform-finder/internal/catalog"
	"platform-finder/internal/common/errors"
	"platform-finder/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var loadedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestLoader(t *testing.T, path string) *Loader {
	t.Helper()
	loader, err := NewLoader(catalog.FileSource{Path: path}, logger.NewTestLogger(t))
	require.NoError(t, err)
	loader.now = func() time.Time { return loadedAt }
	return loader
}

func TestLoad_ValidFeatures(t *testing.T) {
	dir, err := newTestLoader(t, "testdata/features.json").Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Meta{TotalSystems: 2, TotalFeatures: 2, LastUpdated: loadedAt}, dir.Meta())

	systems := dir.Systems()
	require.Len(t, systems, 2)
	assert.Equal(t, "Acme Desk", systems[0].CompanyName)
	assert.Equal(t, "2025-02-10", systems[0].Features[0].ReleaseDate)
	assert.Equal(t, []string{"draft replies", "tone control"}, systems[0].Features[0].KeyCapabilities)
	assert.Empty(t, systems[1].Features)
}

func TestLoad_ShippedFeaturesAreValid(t *testing.T) {
	dir, err := newTestLoader(t, "../../data/features-by-system.json").Load(context.Background())
	require.NoError(t, err)
	assert.Greater(t, dir.Meta().TotalFeatures, 0)
}

func TestLoad_FeatureSchemaViolation(t *testing.T) {
	_, err := newTestLoader(t, "testdata/invalid.json").Load(context.Background())
	require.Error(t, err)

	stdErr, ok := errors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeCatalogValidationFailed, stdErr.Code)
	assert.Equal(t, "Feature catalog failed schema validation", stdErr.Message)
	assert.Contains(t, stdErr.Details, "features_by_system.0.company_name")
	assert.Contains(t, stdErr.Details, "features_by_system.0.features.0.category")
	assert.Equal(t, "features", stdErr.Metadata["catalog"])
}

func TestLoad_FeaturesMissingOrBroken(t *testing.T) {
	_, err := newTestLoader(t, "testdata/does-not-exist.json").Load(context.Background())
	stdErr, ok := errors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeCatalogLoadFailed, stdErr.Code)
	assert.Equal(t, "Feature catalog could not be loaded", stdErr.Message)
	assert.True(t, stdErr.Retryable)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"features_by_system": [`), 0o600))
	_, err = newTestLoader(t, path).Load(context.Background())
	assert.True(t, errors.HasCode(err, errors.ErrCodeCatalogValidationFailed))
}

func TestDirectory_IsImmutable(t *testing.T) {
	dir, err := newTestLoader(t, "testdata/features.json").Load(context.Background())
	require.NoError(t, err)

	systems := dir.Systems()
	systems[0].CompanyName = "changed"
	assert.Equal(t, "Acme Desk", dir.Systems()[0].CompanyName)
}
