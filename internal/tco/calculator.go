// internal/tco/calculator.go
package tco

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"platform-finder/internal/models"
	"platform-finder/internal/pricing"
)

// Estimation constants. They are placeholders, not vendor quotes.
const (
	AIAgentMonthlyCost     = 49.0
	AIAgentTicketThreshold = 500

	APICallsPerTicket = 10
	APIOverageBlock   = 10000.0

	StorageGBPerAgent = 2.0

	PremiumSupportRate    = 0.15
	CustomizationEstimate = 2000.0
	DefaultTrainingHours  = 20.0

	Year2Increase = 1.05
	Year3Increase = 1.10

	highIntegrationCost    = 200.0
	highImplementationFee  = 5000.0
	apiLimitWarningPercent = 0.8
)

// CalculateTCO projects the cost of running a platform for three years.
// Missing pricing data degrades each component to zero.
func CalculateTCO(platform *models.Platform, inputs *models.TCOInputs) models.TCOBreakdown {
	hidden := platform.Pricing.HiddenCosts
	if hidden == nil {
		hidden = &models.HiddenCosts{}
	}

	var b models.TCOBreakdown

	b.BaseSubscription = baseSubscription(platform.Pricing.Plans, inputs.SelectedPlan, inputs.NumberOfAgents)
	b.AddOnFeatures = addOns(platform.Pricing.AddOns, inputs.ExpectedTickets)
	b.IntegrationCosts = integrationCosts(hidden.PremiumIntegrations, inputs.Integrations)
	b.APIUsage = apiUsage(hidden.APILimits, inputs.ExpectedTickets)
	b.DataStorage = storageCosts(hidden.DataStorageLimits, inputs.NumberOfAgents)
	if inputs.IncludePremiumSupport {
		b.PremiumSupport = b.BaseSubscription * PremiumSupportRate
	}
	b.MonthlyTotal = b.BaseSubscription + b.AddOnFeatures + b.IntegrationCosts +
		b.APIUsage + b.DataStorage + b.PremiumSupport

	if inputs.ImplementationSupport {
		b.ImplementationFee = hidden.ImplementationFee.Max
		b.Customization = CustomizationEstimate
	} else {
		b.ImplementationFee = hidden.ImplementationFee.Min
	}
	b.MigrationCost = (hidden.MigrationEstimate.Min + hidden.MigrationEstimate.Max) / 2
	b.OneTimeTotal = b.ImplementationFee + b.MigrationCost + b.Customization

	if inputs.TrainingRequired {
		b.TrainingHours = hidden.TrainingHoursEstimate
		if b.TrainingHours == 0 {
			b.TrainingHours = DefaultTrainingHours
		}
	}
	b.TrainingCost = b.TrainingHours * trainingRate(hidden)

	annualRecurring := b.MonthlyTotal * 12
	b.Year1Total = annualRecurring + b.OneTimeTotal + b.TrainingCost
	b.Year2Total = annualRecurring * Year2Increase
	b.Year3Total = annualRecurring * Year3Increase
	b.ThreeYearTotal = b.Year1Total + b.Year2Total + b.Year3Total

	if annualTickets := inputs.ExpectedTickets * 12; annualTickets > 0 {
		b.CostPerTicket = b.Year1Total / float64(annualTickets)
	}

	b.Warnings = warnings(&b, hidden, inputs)
	return b
}

func baseSubscription(plans []models.PricingPlan, selected string, agents int) float64 {
	plan, ok := pricing.FindPlan(plans, selected)
	if !ok {
		return 0
	}
	return pricing.PlanPrice(plan) * float64(agents)
}

func addOns(a *models.AddOns, tickets int) float64 {
	if a.HasAIAgent() && tickets > AIAgentTicketThreshold {
		return AIAgentMonthlyCost
	}
	return 0
}

// integrationCosts sums monthly surcharges for requested integrations.
// One-time surcharges are excluded.
func integrationCosts(premium []models.PremiumIntegration, requested []string) float64 {
	var total float64
	for _, name := range requested {
		needle := strings.ToLower(name)
		for _, pi := range premium {
			if !strings.Contains(strings.ToLower(pi.Name), needle) {
				continue
			}
			switch pi.Per {
			case "month":
				total += pi.Cost
			case "year":
				total += pi.Cost / 12
			}
			break
		}
	}
	return total
}

func estimatedAPICalls(tickets int) float64 {
	return float64(tickets * APICallsPerTicket)
}

func apiUsage(limits *models.APILimits, tickets int) float64 {
	if limits == nil {
		return 0
	}
	calls := estimatedAPICalls(tickets)
	if calls <= limits.IncludedCalls {
		return 0
	}
	blocks := math.Ceil((calls - limits.IncludedCalls) / APIOverageBlock)
	return blocks * limits.OveragePer10K
}

func storageCosts(limits *models.StorageLimits, agents int) float64 {
	if limits == nil {
		return 0
	}
	storage := float64(agents) * StorageGBPerAgent
	if storage <= limits.IncludedGB {
		return 0
	}
	return (storage - limits.IncludedGB) * limits.OveragePerGB
}

func trainingRate(hidden *models.HiddenCosts) float64 {
	if hidden.TrainingCostPerHour == nil {
		return 0
	}
	return *hidden.TrainingCostPerHour
}

// warnings are emitted in a fixed order; the annual increase advisory is
// always present.
func warnings(b *models.TCOBreakdown, hidden *models.HiddenCosts, inputs *models.TCOInputs) []models.TCOWarning {
	var out []models.TCOWarning

	if b.IntegrationCosts > highIntegrationCost {
		out = append(out, models.TCOWarning{
			Type:    models.SeverityHigh,
			Message: "Premium integrations add significant monthly costs",
			Impact:  fmt.Sprintf("+$%.0f/month", math.Round(b.IntegrationCosts)),
		})
	}

	if b.ImplementationFee > highImplementationFee {
		out = append(out, models.TCOWarning{
			Type:    models.SeverityHigh,
			Message: "Implementation and setup fees are substantial",
			Impact:  fmt.Sprintf("$%.0f one-time", math.Round(b.ImplementationFee)),
		})
	}

	if limits := hidden.APILimits; limits != nil && estimatedAPICalls(inputs.ExpectedTickets) > limits.IncludedCalls*apiLimitWarningPercent {
		out = append(out, models.TCOWarning{
			Type:    models.SeverityMedium,
			Message: "You may exceed API limits with current ticket volume",
			Impact:  "Potential overage charges",
		})
	}

	out = append(out, models.TCOWarning{
		Type:    models.SeverityLow,
		Message: "Pricing typically increases 5-10% annually",
		Impact:  "Built into projections",
	})

	if rate := trainingRate(hidden); rate > 0 {
		out = append(out, models.TCOWarning{
			Type:    models.SeverityMedium,
			Message: "Training is not included - requires paid hours",
			Impact:  "$" + strconv.FormatFloat(rate, 'f', -1, 64) + "/hour",
		})
	}

	return out
}
