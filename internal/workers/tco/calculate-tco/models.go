// internal/workers/tco/calculate-tco/models.go
package calculatetco

import "platform-finder/internal/models"

type Input struct {
	PlatformID    string           `json:"platformId"`
	Inputs        models.TCOInputs `json:"inputs"`
	IncludeReport bool             `json:"includeReport"`
}

// Output carries the raw breakdown plus display-ready totals.
type Output struct {
	PlatformID     string                `json:"platformId"`
	PlatformName   string                `json:"platformName"`
	SelectedPlan   string                `json:"selectedPlan"`
	Plans          []string              `json:"plans"`
	Breakdown      models.TCOBreakdown   `json:"breakdown"`
	MonthlyTotal   string                `json:"monthlyTotal"`
	OneTimeTotal   string                `json:"oneTimeTotal"`
	Year1Total     string                `json:"year1Total"`
	ThreeYearTotal string                `json:"threeYearTotal"`
	Report         *models.TCOReportData `json:"report,omitempty"`
}
