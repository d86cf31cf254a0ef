// internal/tco/compare.go
package tco

import (
	"errors"
	"fmt"

	"platform-finder/internal/models"
)

// MaxComparedPlatforms bounds a side-by-side comparison.
const MaxComparedPlatforms = 3

var ErrComparisonSize = errors.New("comparison needs between 1 and 3 platforms")

// Compare runs the same inputs against each platform, preserving order.
func Compare(platforms []models.Platform, ids []string, inputs *models.TCOInputs) ([]models.TCOComparison, error) {
	if len(platforms) == 0 || len(platforms) > MaxComparedPlatforms {
		return nil, fmt.Errorf("%w: got %d", ErrComparisonSize, len(platforms))
	}
	if len(ids) != len(platforms) {
		return nil, fmt.Errorf("got %d ids for %d platforms", len(ids), len(platforms))
	}

	out := make([]models.TCOComparison, 0, len(platforms))
	for i := range platforms {
		b := CalculateTCO(&platforms[i], inputs)
		out = append(out, models.TCOComparison{
			PlatformID:    ids[i],
			PlatformName:  platforms[i].TradeName,
			Year1:         b.Year1Total,
			Year2:         b.Year2Total,
			Year3:         b.Year3Total,
			Total3Year:    b.ThreeYearTotal,
			CostPerTicket: b.CostPerTicket,
		})
	}
	return out, nil
}

// Cheapest returns the comparison with the lowest three-year total; the
// first one wins ties.
func Cheapest(comparisons []models.TCOComparison) (models.TCOComparison, bool) {
	if len(comparisons) == 0 {
		return models.TCOComparison{}, false
	}
	best := comparisons[0]
	for _, c := range comparisons[1:] {
		if c.Total3Year < best.Total3Year {
			best = c
		}
	}
	return best, true
}
