// internal/workers/matching/find-top-matches/models.go
package findtopmatches

import "platform-finder/internal/models"

// Input carries either inline answers or the id of a completed wizard
// session. Inline answers win when both are set.
type Input struct {
	SessionID string                `json:"sessionId"`
	Answers   *models.WizardAnswers `json:"answers"`
	Limit     int                   `json:"limit"`
}

type Output struct {
	Matches   []models.PlatformMatch `json:"matches"`
	Total     int                    `json:"total"`
	Evaluated int                    `json:"evaluated"`
	Results   models.WizardResults   `json:"results"`
}
