// internal/matching/score.go
package matching

import (
	"strings"

	"platform-finder/internal/models"
	"platform-finder/internal/pricing"
)

// Factor weights; they sum to 100.
const (
	WeightCompanySize    = 25.0
	WeightIndustry       = 20.0
	WeightBudget         = 20.0
	WeightIntegrations   = 15.0
	WeightSupportVolume  = 10.0
	WeightAICapabilities = 5.0
	WeightDeployment     = 3.0
	WeightSecurity       = 2.0

	// MissingIntegrationPenalty replaces the integration weight when any
	// required integration is absent. It can push the raw sum below zero.
	MissingIntegrationPenalty = -50.0

	MinScore = 0.0
	MaxScore = 100.0
)

// ScoreBreakdown holds each factor's contribution before clamping.
type ScoreBreakdown struct {
	CompanySize    float64 `json:"companySize"`
	Industry       float64 `json:"industry"`
	Budget         float64 `json:"budget"`
	Integrations   float64 `json:"integrations"`
	SupportVolume  float64 `json:"supportVolume"`
	AICapabilities float64 `json:"aiCapabilities"`
	Deployment     float64 `json:"deployment"`
	Security       float64 `json:"security"`
}

func (b ScoreBreakdown) Sum() float64 {
	return b.CompanySize + b.Industry + b.Budget + b.Integrations +
		b.SupportVolume + b.AICapabilities + b.Deployment + b.Security
}

// Score clamps the summed contributions to [0,100].
func (b ScoreBreakdown) Score() float64 {
	s := b.Sum()
	if s < MinScore {
		return MinScore
	}
	if s > MaxScore {
		return MaxScore
	}
	return s
}

// CalculateMatchScore scores how well a platform fits the wizard answers.
func CalculateMatchScore(platform *models.Platform, answers *models.WizardAnswers) float64 {
	return Breakdown(platform, answers).Score()
}

// Breakdown evaluates the eight factors independently.
func Breakdown(platform *models.Platform, answers *models.WizardAnswers) ScoreBreakdown {
	return ScoreBreakdown{
		CompanySize:    companySizeFit(platform.Suitability, answers.CompanySize),
		Industry:       industryFit(platform.Suitability, answers.Industry),
		Budget:         budgetFit(platform, answers),
		Integrations:   integrationFit(platform, answers.RequiredIntegrations),
		SupportVolume:  supportVolumeFit(platform.Suitability, answers.SupportVolume),
		AICapabilities: aiFit(platform, answers.AICapabilities),
		Deployment:     deploymentFit(platform, answers.Deployment),
		Security:       securityFit(platform.SecurityCompliance, answers.SecurityCerts),
	}
}

func sizeIndex(size string) int {
	for i, s := range models.CompanySizes {
		if s == size {
			return i
		}
	}
	return -1
}

func companySizeFit(s *models.Suitability, size string) float64 {
	if s == nil || len(s.CompanySize) == 0 {
		return 0
	}
	if models.Contains(s.CompanySize, size) {
		return WeightCompanySize
	}
	want := sizeIndex(size)
	if want < 0 {
		return 0
	}
	closest := -1
	for _, supported := range s.CompanySize {
		idx := sizeIndex(supported)
		if idx < 0 {
			continue
		}
		d := idx - want
		if d < 0 {
			d = -d
		}
		if closest < 0 || d < closest {
			closest = d
		}
	}
	switch closest {
	case 1:
		return WeightCompanySize * 0.5
	case 2:
		return WeightCompanySize * 0.25
	}
	return 0
}

func industryFit(s *models.Suitability, industry string) float64 {
	if s != nil && servesIndustry(s, industry) {
		return WeightIndustry
	}
	return 0
}

func servesIndustry(s *models.Suitability, industry string) bool {
	return models.Contains(s.Industries, industry) || models.Contains(s.Industries, "All")
}

func budgetFit(platform *models.Platform, answers *models.WizardAnswers) float64 {
	cost := pricing.EstimateMonthlyCost(platform, answers.TeamSize)
	switch ClassifyBudget(cost, answers.Budget) {
	case BudgetExact:
		return WeightBudget
	case BudgetClose:
		return WeightBudget * 0.5
	}
	return 0
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// matchedIntegrations returns the required integrations the platform lists,
// in the order they were requested.
func matchedIntegrations(platform *models.Platform, required []string) []string {
	var matched []string
	for _, req := range required {
		for _, have := range platform.Integrations.TopIntegrations {
			if containsFold(have, req) {
				matched = append(matched, req)
				break
			}
		}
	}
	return matched
}

func integrationFit(platform *models.Platform, required []string) float64 {
	if len(required) == 0 {
		return WeightIntegrations
	}
	if len(matchedIntegrations(platform, required)) == len(required) {
		return WeightIntegrations
	}
	return MissingIntegrationPenalty
}

func supportVolumeFit(s *models.Suitability, volume string) float64 {
	if s != nil && models.Contains(s.SupportVolume, volume) {
		return WeightSupportVolume
	}
	return 0
}

func hasAIFeatures(features []models.Feature) bool {
	for _, f := range features {
		desc := strings.ToLower(f.Description)
		if strings.Contains(strings.ToLower(f.Name), "ai") ||
			strings.Contains(desc, "ai") ||
			strings.Contains(desc, "artificial intelligence") {
			return true
		}
	}
	return false
}

func aiFit(platform *models.Platform, requested []string) float64 {
	if len(requested) == 0 || hasAIFeatures(platform.Features) {
		return WeightAICapabilities
	}
	return 0
}

func deploymentFit(platform *models.Platform, deployment string) float64 {
	switch deployment {
	case models.DeploymentCloudOnly:
		return WeightDeployment
	case models.DeploymentOnPremise:
		desc := strings.ToLower(platform.Description)
		if strings.Contains(desc, "on-premise") || strings.Contains(desc, "self-hosted") {
			return WeightDeployment
		}
		return 0
	}
	return WeightDeployment * 0.5
}

func securityFit(sc *models.SecurityCompliance, required []string) float64 {
	if len(required) > 0 && sc != nil {
		for _, cert := range required {
			if cert == models.SecurityNoneRequired {
				continue
			}
			covered := false
			for _, have := range sc.Certifications {
				if containsFold(have, cert) {
					covered = true
					break
				}
			}
			if !covered {
				return 0
			}
		}
		return WeightSecurity
	}
	if models.Contains(required, models.SecurityNoneRequired) {
		return WeightSecurity
	}
	return 0
}
