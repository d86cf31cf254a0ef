// internal/matching/budget.go
package matching

import "math"

type BudgetFit string

const (
	BudgetExact BudgetFit = "exact"
	BudgetClose BudgetFit = "close"
	BudgetNone  BudgetFit = "none"
)

type BudgetRange struct {
	Min float64
	Max float64
}

// BudgetRanges maps each wizard budget bucket to monthly dollar bounds.
var BudgetRanges = map[string]BudgetRange{
	"<$500":     {Min: 0, Max: 500},
	"$500-$2K":  {Min: 500, Max: 2000},
	"$2K-$10K":  {Min: 2000, Max: 10000},
	"$10K-$50K": {Min: 10000, Max: 50000},
	"$50K+":     {Min: 50000, Max: math.Inf(1)},
}

const budgetMargin = 0.2

// ClassifyBudget places a monthly cost relative to a budget bucket. A cost
// within 20% of the bucket width outside its bounds is a close fit.
func ClassifyBudget(cost float64, budget string) BudgetFit {
	r, ok := BudgetRanges[budget]
	if !ok {
		return BudgetNone
	}
	if cost >= r.Min && cost <= r.Max {
		return BudgetExact
	}
	margin := (r.Max - r.Min) * budgetMargin
	if cost >= r.Min-margin && cost <= r.Max+margin {
		return BudgetClose
	}
	return BudgetNone
}
