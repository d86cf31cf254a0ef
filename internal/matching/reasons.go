// internal/matching/reasons.go
package matching

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"platform-finder/internal/models"
	"platform-finder/internal/pricing"
)

const (
	MaxReasons  = 5
	MaxConcerns = 3

	maxComplaints       = 2
	highComplexityScore = 7
	highRating          = 4.5
	slowImplementation  = 30
)

// timelineDays is the longest typical implementation that still counts as
// quick for each timeline bucket.
var timelineDays = map[string]int{
	models.TimelineUnderWeek: 7,
	models.TimelineWeeks:     30,
	models.TimelineMonths:    90,
}

// GenerateMatchReasons explains a match in rule order, capped at MaxReasons.
// The score argument is not consulted; reasons come from the rules alone.
func GenerateMatchReasons(platform *models.Platform, answers *models.WizardAnswers, _ float64) []string {
	reasons := make([]string, 0, MaxReasons)
	s := platform.Suitability

	if s != nil && models.Contains(s.CompanySize, answers.CompanySize) {
		reasons = append(reasons, fmt.Sprintf("Perfect fit for %s employee companies", answers.CompanySize))
	}

	if s != nil && servesIndustry(s, answers.Industry) && answers.Industry != "All" {
		reasons = append(reasons, fmt.Sprintf("Proven track record in %s industry", answers.Industry))
	}

	if len(answers.AICapabilities) > 0 {
		for _, f := range platform.Features {
			if strings.Contains(strings.ToLower(f.Name), "ai") {
				reasons = append(reasons, "Strong AI capabilities match your requirements")
				break
			}
		}
	}

	if matched := matchedIntegrations(platform, answers.RequiredIntegrations); len(matched) > 0 {
		reasons = append(reasons, "Integrates with "+strings.Join(matched, ", "))
	}

	if s != nil && models.Contains(s.SupportVolume, answers.SupportVolume) {
		reasons = append(reasons, fmt.Sprintf("Handles %s tickets/month efficiently", answers.SupportVolume))
	}

	if s != nil && s.ImplementationTimeDays > 0 {
		if limit, ok := timelineDays[answers.ImplementationTimeline]; ok && s.ImplementationTimeDays <= limit {
			reasons = append(reasons, fmt.Sprintf("Quick implementation (%d days typical)", s.ImplementationTimeDays))
		}
	}

	if platform.Pricing.FreeTrial {
		duration := models.Str(platform.Pricing.FreeTrialDuration)
		if duration == "" {
			duration = "available"
		}
		reasons = append(reasons, fmt.Sprintf("Free trial available (%s)", duration))
	}

	if platform.Reputation.G2Rating >= highRating {
		reasons = append(reasons, fmt.Sprintf("Highly rated (%s/5 on G2)",
			strconv.FormatFloat(platform.Reputation.G2Rating, 'f', -1, 64)))
	}

	if len(reasons) > MaxReasons {
		reasons = reasons[:MaxReasons]
	}
	return reasons
}

// GenerateConcerns lists potential drawbacks, capped at MaxConcerns.
func GenerateConcerns(platform *models.Platform, answers *models.WizardAnswers) []string {
	concerns := make([]string, 0, MaxConcerns)
	s := platform.Suitability

	cost := pricing.EstimateMonthlyCost(platform, answers.TeamSize)
	if ClassifyBudget(cost, answers.Budget) == BudgetNone {
		concerns = append(concerns, fmt.Sprintf("Estimated cost ($%.0f/mo) may exceed your budget", math.Round(cost)))
	}

	if s != nil && s.ComplexityScore >= highComplexityScore {
		concerns = append(concerns, "Higher complexity - may require technical expertise to set up")
	}

	if s != nil && s.ImplementationTimeDays > slowImplementation && answers.ImplementationTimeline == models.TimelineUnderWeek {
		concerns = append(concerns, fmt.Sprintf("Implementation typically takes %d days", s.ImplementationTimeDays))
	}

	if r := platform.RiskAssessment; r != nil {
		complaints := r.CommonComplaints
		if len(complaints) > maxComplaints {
			complaints = complaints[:maxComplaints]
		}
		concerns = append(concerns, complaints...)
	}

	if len(concerns) > MaxConcerns {
		concerns = concerns[:MaxConcerns]
	}
	return concerns
}
