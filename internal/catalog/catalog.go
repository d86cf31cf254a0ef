// internal/catalog/catalog.go
package catalog

import (
	"time"

	"platform-finder/internal/common/errors"
	"platform-finder/internal/matching"
	"platform-finder/internal/models"
)

// Catalog is an immutable snapshot of the platform directory.
type Catalog struct {
	platforms []models.Platform
	index     map[string]int
	loadedAt  time.Time
}

// Meta summarises a catalog snapshot for API envelopes.
type Meta struct {
	Total       int       `json:"total"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// New builds a catalog over platforms. When two platforms share an id the
// first one wins lookups.
func New(platforms []models.Platform, loadedAt time.Time) *Catalog {
	c := &Catalog{
		platforms: append([]models.Platform(nil), platforms...),
		index:     make(map[string]int, len(platforms)),
		loadedAt:  loadedAt,
	}
	for i := range c.platforms {
		id := matching.PlatformID(c.platforms[i].TradeName)
		if _, dup := c.index[id]; !dup {
			c.index[id] = i
		}
	}
	return c
}

// Platforms returns the platforms in catalog order.
func (c *Catalog) Platforms() []models.Platform {
	return append([]models.Platform(nil), c.platforms...)
}

// Len returns the number of platforms.
func (c *Catalog) Len() int {
	return len(c.platforms)
}

// Find looks a platform up by its id.
func (c *Catalog) Find(id string) (*models.Platform, error) {
	i, ok := c.index[id]
	if !ok {
		return nil, errors.NewPlatformNotFoundError(id)
	}
	p := c.platforms[i]
	return &p, nil
}

// FindAll resolves ids in the order given, failing on the first unknown id.
func (c *Catalog) FindAll(ids []string) ([]models.Platform, error) {
	out := make([]models.Platform, 0, len(ids))
	for _, id := range ids {
		p, err := c.Find(id)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

func (c *Catalog) Meta() Meta {
	return Meta{Total: len(c.platforms), LastUpdated: c.loadedAt}
}
