// internal/workers/matching/calculate-match-score/models.go
package calculatematchscore

import (
	"platform-finder/internal/matching"
	"platform-finder/internal/models"
)

type Input struct {
	PlatformID string               `json:"platformId"`
	Answers    models.WizardAnswers `json:"answers"`
}

type Output struct {
	PlatformID string                  `json:"platformId"`
	TradeName  string                  `json:"tradeName"`
	Score      float64                 `json:"score"`
	Factors    matching.ScoreBreakdown `json:"factors"`
	Reasons    []string                `json:"reasons"`
	Concerns   []string                `json:"concerns"`
	Pricing    models.MatchPricing     `json:"pricing"`
	BudgetFit  matching.BudgetFit      `json:"budgetFit"`
}
