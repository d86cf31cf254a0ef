// internal/models/tco.go
package models

type TCOInputs struct {
	NumberOfAgents        int      `json:"numberOfAgents"`
	ExpectedTickets       int      `json:"expectedTickets"`
	SelectedPlan          string   `json:"selectedPlan"`
	Channels              []string `json:"channels"`
	Integrations          []string `json:"integrations"`
	IncludePremiumSupport bool     `json:"includePremiumSupport"`
	ImplementationSupport bool     `json:"implementationSupport"`
	TrainingRequired      bool     `json:"trainingRequired"`
}

type WarningSeverity string

const (
	SeverityHigh   WarningSeverity = "high"
	SeverityMedium WarningSeverity = "medium"
	SeverityLow    WarningSeverity = "low"
)

type TCOWarning struct {
	Type    WarningSeverity `json:"type"`
	Message string          `json:"message"`
	Impact  string          `json:"impact"`
}

type TCOBreakdown struct {
	// monthly
	BaseSubscription float64 `json:"baseSubscription"`
	AddOnFeatures    float64 `json:"addOnFeatures"`
	IntegrationCosts float64 `json:"integrationCosts"`
	APIUsage         float64 `json:"apiUsage"`
	DataStorage      float64 `json:"dataStorage"`
	PremiumSupport   float64 `json:"premiumSupport"`
	MonthlyTotal     float64 `json:"monthlyTotal"`

	// one-time
	ImplementationFee float64 `json:"implementationFee"`
	MigrationCost     float64 `json:"migrationCost"`
	Customization     float64 `json:"customization"`
	OneTimeTotal      float64 `json:"oneTimeTotal"`

	TrainingHours float64 `json:"trainingHours"`
	TrainingCost  float64 `json:"trainingCost"`

	Year1Total     float64 `json:"year1Total"`
	Year2Total     float64 `json:"year2Total"`
	Year3Total     float64 `json:"year3Total"`
	ThreeYearTotal float64 `json:"threeYearTotal"`

	CostPerTicket float64 `json:"costPerTicket"`

	Warnings []TCOWarning `json:"warnings"`
}

type TCOComparison struct {
	PlatformID    string  `json:"platformId"`
	PlatformName  string  `json:"platformName"`
	Year1         float64 `json:"year1"`
	Year2         float64 `json:"year2"`
	Year3         float64 `json:"year3"`
	Total3Year    float64 `json:"total3Year"`
	CostPerTicket float64 `json:"costPerTicket"`
}

type TCOReportData struct {
	ReportID        string       `json:"reportId"`
	PlatformName    string       `json:"platformName"`
	GeneratedDate   string       `json:"generatedDate"`
	Inputs          TCOInputs    `json:"inputs"`
	Breakdown       TCOBreakdown `json:"breakdown"`
	Assumptions     []string     `json:"assumptions"`
	Recommendations []string     `json:"recommendations"`
}
