// internal/momentum/loader.go
package momentum

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"platform-finder/internal/catalog"
	"platform-finder/internal/common/errors"
	"platform-finder/internal/common/logger"
	"platform-finder/internal/common/metrics"
	"platform-finder/internal/common/validation"
	"platform-finder/internal/models"
)

//go:embed features.schema.json
var embeddedSchema []byte

// Directory is an immutable snapshot of the feature release catalog.
type Directory struct {
	systems  []models.SystemFeatures
	loadedAt time.Time
}

// Meta summarises a snapshot for the /api/features envelope.
type Meta struct {
	TotalSystems  int       `json:"total_systems"`
	TotalFeatures int       `json:"total_features"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

func NewDirectory(systems []models.SystemFeatures, loadedAt time.Time) *Directory {
	return &Directory{
		systems:  append([]models.SystemFeatures(nil), systems...),
		loadedAt: loadedAt,
	}
}

// Systems returns the vendors in document order.
func (d *Directory) Systems() []models.SystemFeatures {
	return append([]models.SystemFeatures(nil), d.systems...)
}

func (d *Directory) Meta() Meta {
	total := 0
	for _, s := range d.systems {
		total += len(s.Features)
	}
	return Meta{TotalSystems: len(d.systems), TotalFeatures: total, LastUpdated: d.loadedAt}
}

// Loader validates and decodes the feature catalog on every Load.
type Loader struct {
	source catalog.Source
	schema *validation.Schema
	logger logger.Logger
	now    func() time.Time
}

func NewLoader(source catalog.Source, log logger.Logger) (*Loader, error) {
	schema, err := validation.Compile(embeddedSchema)
	if err != nil {
		return nil, fmt.Errorf("feature catalog schema: %w", err)
	}
	return &Loader{
		source: source,
		schema: schema,
		logger: log.WithFields(map[string]interface{}{"features": source.Name()}),
		now:    time.Now,
	}, nil
}

func (l *Loader) Load(ctx context.Context) (*Directory, error) {
	data, err := l.source.Read(ctx)
	if err != nil {
		metrics.FeatureCatalogLoads.WithLabelValues("failed").Inc()
		l.logger.Error("feature catalog read failed", map[string]interface{}{"error": err})
		return nil, errors.NewFeatureCatalogLoadFailedError(l.source.Name(), err)
	}

	result, err := l.schema.ValidateBytes(data)
	if err != nil {
		metrics.FeatureCatalogLoads.WithLabelValues("invalid").Inc()
		return nil, errors.NewFeatureCatalogValidationFailedError([]string{err.Error()})
	}
	if !result.Valid {
		metrics.FeatureCatalogLoads.WithLabelValues("invalid").Inc()
		problems := result.GetErrorMessages()
		l.logger.Warn("feature catalog failed schema validation", map[string]interface{}{
			"problems": len(problems),
			"first":    problems[0],
		})
		return nil, errors.NewFeatureCatalogValidationFailedError(problems)
	}

	var dir models.FeaturesDirectory
	if err := json.Unmarshal(data, &dir); err != nil {
		metrics.FeatureCatalogLoads.WithLabelValues("invalid").Inc()
		return nil, errors.NewFeatureCatalogValidationFailedError([]string{err.Error()})
	}

	metrics.FeatureCatalogLoads.WithLabelValues("ok").Inc()
	l.logger.Debug("feature catalog loaded", map[string]interface{}{"systems": len(dir.FeaturesBySystem)})
	return NewDirectory(dir.FeaturesBySystem, l.now().UTC()), nil
}
