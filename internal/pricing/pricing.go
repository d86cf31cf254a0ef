// internal/pricing/pricing.go
package pricing

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"platform-finder/internal/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultTeamSize is used when the visitor's team size cannot be parsed.
const DefaultTeamSize = 5

// DefaultTier is reported when a vendor publishes no plans.
const DefaultTier = "Standard"

var dollarAmount = regexp.MustCompile(`\$\s*(\d[\d,]*(?:\.\d+)?)`)

var usd = message.NewPrinter(language.AmericanEnglish)

// ExtractPrice returns the first dollar amount found in a free-form price
// string such as "$49/agent/month". Strings without one yield 0.
func ExtractPrice(s string) float64 {
	m := dollarAmount.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}

// PlanPrice reads a plan's per-agent price, preferring annual over monthly
// over the flat price field.
func PlanPrice(plan models.PricingPlan) float64 {
	for _, p := range []*string{plan.PriceAnnual, plan.PriceMonthly, plan.Price} {
		if s := models.Str(p); s != "" {
			return ExtractPrice(s)
		}
	}
	return 0
}

// ParseTeamSize parses the leading integer of s, falling back to
// DefaultTeamSize for empty, unparsable or non-positive input.
func ParseTeamSize(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n <= 0 {
		return DefaultTeamSize
	}
	return n
}

func nameHasAny(name string, needles ...string) bool {
	lower := strings.ToLower(name)
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}

// RepresentativePlan picks the plan used for rough estimates: the first
// professional/growth/pro tier, else the middle of the list.
func RepresentativePlan(plans []models.PricingPlan) (models.PricingPlan, bool) {
	if len(plans) == 0 {
		return models.PricingPlan{}, false
	}
	for _, p := range plans {
		if nameHasAny(p.Name, "professional", "growth", "pro") {
			return p, true
		}
	}
	return plans[len(plans)/2], true
}

// TierName is the plan name shown next to a match estimate.
func TierName(plans []models.PricingPlan) string {
	for _, p := range plans {
		if nameHasAny(p.Name, "professional", "pro") {
			return p.Name
		}
	}
	if len(plans) > 0 && plans[0].Name != "" {
		return plans[0].Name
	}
	return DefaultTier
}

// EstimateMonthlyCost approximates a monthly bill as representative plan
// price times team size. It is an estimate, not a quote.
func EstimateMonthlyCost(platform *models.Platform, teamSize string) float64 {
	plan, ok := RepresentativePlan(platform.Pricing.Plans)
	if !ok {
		return 0
	}
	return PlanPrice(plan) * float64(ParseTeamSize(teamSize))
}

// FindPlan matches a plan by case-insensitive name, falling back to the
// first plan. ok is false only when the vendor lists no plans.
func FindPlan(plans []models.PricingPlan, name string) (models.PricingPlan, bool) {
	for _, p := range plans {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	if len(plans) == 0 {
		return models.PricingPlan{}, false
	}
	return plans[0], true
}

// AvailablePlans lists plan names in catalog order.
func AvailablePlans(platform *models.Platform) []string {
	names := make([]string, 0, len(platform.Pricing.Plans))
	for _, p := range platform.Pricing.Plans {
		names = append(names, p.Name)
	}
	return names
}

// FormatCurrency renders whole US dollars, e.g. "$18,522" or "-$40".
func FormatCurrency(amount float64) string {
	rounded := int64(math.Round(amount))
	if rounded < 0 {
		return "-$" + usd.Sprintf("%d", -rounded)
	}
	return "$" + usd.Sprintf("%d", rounded)
}
