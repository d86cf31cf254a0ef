//go:build property
// +build property

package tco

import (
	"math"
	"reflect"
	"strconv"
	"testing"

	"platform-finder/internal/models"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func propertyPlatform(price int, includedCalls, includedGB float64) *models.Platform {
	p := createHiddenCostPlatform()
	p.Pricing.Plans[1].PriceAnnual = strPtr("$" + strconv.Itoa(price))
	p.Pricing.HiddenCosts.APILimits.IncludedCalls = includedCalls
	p.Pricing.HiddenCosts.DataStorageLimits.IncludedGB = includedGB
	return p
}

// TestCalculateTCOProperties checks determinism and the projection formula.
func TestCalculateTCOProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("identical inputs give identical breakdowns", prop.ForAll(
		func(price, agents, tickets int, premium, implementation, training bool) bool {
			platform := propertyPlatform(price, 50000, 10)
			inputs := &models.TCOInputs{
				NumberOfAgents:        agents,
				ExpectedTickets:       tickets,
				SelectedPlan:          "Professional",
				Integrations:          []string{"salesforce"},
				IncludePremiumSupport: premium,
				ImplementationSupport: implementation,
				TrainingRequired:      training,
			}
			return reflect.DeepEqual(CalculateTCO(platform, inputs), CalculateTCO(platform, inputs))
		},
		gen.IntRange(0, 500),
		gen.IntRange(0, 1000),
		gen.IntRange(0, 100000),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.Property("three-year total is the sum of yearly projections", prop.ForAll(
		func(price, agents, tickets int, includedCalls, includedGB float64) bool {
			platform := propertyPlatform(price, includedCalls, includedGB)
			inputs := &models.TCOInputs{NumberOfAgents: agents, ExpectedTickets: tickets, SelectedPlan: "professional"}
			b := CalculateTCO(platform, inputs)

			recurring := b.MonthlyTotal * 12
			return b.Year1Total == recurring+b.OneTimeTotal+b.TrainingCost &&
				b.Year2Total == recurring*Year2Increase &&
				b.Year3Total == recurring*Year3Increase &&
				b.ThreeYearTotal == b.Year1Total+b.Year2Total+b.Year3Total &&
				b.MonthlyTotal >= b.BaseSubscription &&
				!math.IsNaN(b.CostPerTicket)
		},
		gen.IntRange(0, 500),
		gen.IntRange(0, 1000),
		gen.IntRange(0, 100000),
		gen.Float64Range(0, 1e6),
		gen.Float64Range(0, 5000),
	))

	properties.Property("empty plan list never costs anything", prop.ForAll(
		func(agents, tickets int) bool {
			b := CalculateTCO(&models.Platform{}, &models.TCOInputs{NumberOfAgents: agents, ExpectedTickets: tickets})
			return b.BaseSubscription == 0 && b.MonthlyTotal == 0 && b.ThreeYearTotal == 0
		},
		gen.IntRange(0, 1000),
		gen.IntRange(0, 100000),
	))

	properties.TestingRun(t)
}
