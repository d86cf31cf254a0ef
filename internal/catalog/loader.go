// internal/catalog/loader.go
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"platform-finder/internal/common/errors"
	"platform-finder/internal/common/logger"
	"platform-finder/internal/common/metrics"
	"platform-finder/internal/common/validation"
	"platform-finder/internal/models"
)

//go:embed platforms.schema.json
var embeddedSchema []byte

// Source supplies the raw catalog document.
type Source interface {
	Read(ctx context.Context) ([]byte, error)
	Name() string
}

// FileSource reads the catalog from a JSON file on disk.
type FileSource struct {
	Path string
}

func (s FileSource) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return data, nil
}

func (s FileSource) Name() string {
	return s.Path
}

// Loader validates and decodes the catalog on every Load.
type Loader struct {
	source Source
	schema *validation.Schema
	logger logger.Logger
	now    func() time.Time
}

// NewLoader uses the embedded platforms schema.
func NewLoader(source Source, log logger.Logger) (*Loader, error) {
	return NewLoaderWithSchema(source, embeddedSchema, log)
}

// NewLoaderWithSchema validates documents against schemaJSON instead of the embedded schema.
func NewLoaderWithSchema(source Source, schemaJSON []byte, log logger.Logger) (*Loader, error) {
	schema, err := validation.Compile(schemaJSON)
	if err != nil {
		return nil, fmt.Errorf("catalog schema: %w", err)
	}
	return &Loader{
		source: source,
		schema: schema,
		logger: log.WithFields(map[string]interface{}{"catalog": source.Name()}),
		now:    time.Now,
	}, nil
}

// SchemaFromFile reads an alternative catalog schema.
func SchemaFromFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog schema: %w", err)
	}
	return data, nil
}

// Load reads, validates and decodes the catalog.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	data, err := l.source.Read(ctx)
	if err != nil {
		metrics.CatalogLoads.WithLabelValues("failed").Inc()
		l.logger.Error("catalog read failed", map[string]interface{}{"error": err})
		return nil, errors.NewCatalogLoadFailedError(l.source.Name(), err)
	}

	result, err := l.schema.ValidateBytes(data)
	if err != nil {
		metrics.CatalogLoads.WithLabelValues("invalid").Inc()
		return nil, errors.NewCatalogValidationFailedError([]string{err.Error()})
	}
	if !result.Valid {
		metrics.CatalogLoads.WithLabelValues("invalid").Inc()
		problems := result.GetErrorMessages()
		l.logger.Warn("catalog failed schema validation", map[string]interface{}{
			"problems": len(problems),
			"first":    problems[0],
		})
		return nil, errors.NewCatalogValidationFailedError(problems)
	}

	var dir models.PlatformsDirectory
	if err := json.Unmarshal(data, &dir); err != nil {
		metrics.CatalogLoads.WithLabelValues("invalid").Inc()
		return nil, errors.NewCatalogValidationFailedError([]string{err.Error()})
	}

	metrics.CatalogLoads.WithLabelValues("ok").Inc()
	metrics.CatalogPlatforms.Set(float64(len(dir.Systems)))
	l.logger.Debug("catalog loaded", map[string]interface{}{"platforms": len(dir.Systems)})

	return New(dir.Systems, l.now().UTC()), nil
}
