// internal/matching/rank.go
package matching

import (
	"regexp"
	"sort"
	"strings"

	"platform-finder/internal/models"
	"platform-finder/internal/pricing"
)

const DefaultLimit = 5

var whitespaceRun = regexp.MustCompile(`\s+`)

// PlatformID derives the URL-safe identifier of a platform from its trade
// name: lowercased, whitespace runs replaced by "-".
func PlatformID(tradeName string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(tradeName), "-")
}

// Match scores a single platform and assembles its result card.
func Match(platform *models.Platform, answers *models.WizardAnswers) models.PlatformMatch {
	score := CalculateMatchScore(platform, answers)
	return models.PlatformMatch{
		PlatformID:   PlatformID(platform.TradeName),
		TradeName:    platform.TradeName,
		Score:        score,
		MatchReasons: GenerateMatchReasons(platform, answers, score),
		Concerns:     GenerateConcerns(platform, answers),
		Pricing: models.MatchPricing{
			EstimatedMonthly: pricing.EstimateMonthlyCost(platform, answers.TeamSize),
			Tier:             pricing.TierName(platform.Pricing.Plans),
		},
	}
}

// FindTopMatches ranks platforms by descending score, dropping those that
// score zero. Equal scores keep catalog order. A non-positive limit means
// DefaultLimit.
func FindTopMatches(platforms []models.Platform, answers *models.WizardAnswers, limit int) []models.PlatformMatch {
	if limit <= 0 {
		limit = DefaultLimit
	}

	matches := make([]models.PlatformMatch, 0, len(platforms))
	for i := range platforms {
		m := Match(&platforms[i], answers)
		if m.Score > 0 {
			matches = append(matches, m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
