// internal/tco/report.go
package tco

import (
	"fmt"
	"time"

	"platform-finder/internal/models"
	"platform-finder/internal/pricing"

	"github.com/google/uuid"
)

const reportDateLayout = "2006-01-02"

// Assumptions behind every estimate, listed on exported reports.
var Assumptions = []string{
	"Per-agent prices use the annual rate when published, otherwise the monthly or flat rate",
	fmt.Sprintf("API usage is estimated at %d calls per ticket, billed per 10,000 calls over the allowance", APICallsPerTicket),
	fmt.Sprintf("Storage is estimated at %.0f GB per agent", StorageGBPerAgent),
	fmt.Sprintf("Premium support is estimated at %.0f%% of the base subscription", PremiumSupportRate*100),
	fmt.Sprintf("Customization is estimated at %s when implementation support is requested", pricing.FormatCurrency(CustomizationEstimate)),
	fmt.Sprintf("Training defaults to %.0f hours when the vendor publishes no estimate", DefaultTrainingHours),
	"Year 2 and year 3 apply 5% and 10% increases to recurring costs only",
	"Figures are estimates, not vendor quotes",
}

// BuildReport packages a TCO calculation for export.
func BuildReport(platform *models.Platform, inputs *models.TCOInputs, now time.Time) models.TCOReportData {
	b := CalculateTCO(platform, inputs)
	return models.TCOReportData{
		ReportID:        uuid.NewString(),
		PlatformName:    platform.TradeName,
		GeneratedDate:   now.UTC().Format(reportDateLayout),
		Inputs:          *inputs,
		Breakdown:       b,
		Assumptions:     append([]string(nil), Assumptions...),
		Recommendations: Recommendations(platform, &b),
	}
}

// Recommendations turns a breakdown into next steps for the buyer.
func Recommendations(platform *models.Platform, b *models.TCOBreakdown) []string {
	var recs []string

	if b.IntegrationCosts > highIntegrationCost {
		recs = append(recs, "Ask whether native connectors can replace premium integrations")
	}
	if b.ImplementationFee > highImplementationFee {
		recs = append(recs, "Negotiate bundled onboarding to reduce implementation fees")
	}
	if b.APIUsage > 0 {
		recs = append(recs, fmt.Sprintf("Plan for %s/month in API overage or request a higher allowance", pricing.FormatCurrency(b.APIUsage)))
	}
	if b.DataStorage > 0 {
		recs = append(recs, "Archive old tickets to stay within the included storage")
	}
	if b.TrainingCost > 0 {
		recs = append(recs, fmt.Sprintf("Budget %s for paid training", pricing.FormatCurrency(b.TrainingCost)))
	}
	if platform.Pricing.FreeTrial {
		duration := models.Str(platform.Pricing.FreeTrialDuration)
		if duration == "" {
			duration = "available"
		}
		recs = append(recs, fmt.Sprintf("Validate fit during the free trial (%s)", duration))
	}
	recs = append(recs, "Lock in multi-year pricing to limit annual increases")
	return recs
}
