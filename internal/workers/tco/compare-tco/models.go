// internal/workers/tco/compare-tco/models.go
package comparetco

import "platform-finder/internal/models"

type Input struct {
	PlatformIDs []string         `json:"platformIds"`
	Inputs      models.TCOInputs `json:"inputs"`
}

type Output struct {
	Comparisons []models.TCOComparison `json:"comparisons"`
	Cheapest    models.TCOComparison   `json:"cheapest"`
	// MaxSavings is the three-year gap between the dearest and cheapest option.
	MaxSavings          float64 `json:"maxSavings"`
	MaxSavingsFormatted string  `json:"maxSavingsFormatted"`
}
