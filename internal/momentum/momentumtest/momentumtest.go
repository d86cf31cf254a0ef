// Package momentumtest provides feature catalog fixtures for tests in other packages.
package momentumtest

import (
	"context"
	"time"

	"platform-finder/internal/models"
	"platform-finder/internal/momentum"
)

// Now is the reference time the fixture dates are laid out around.
var Now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func feature(name, date string, category models.FeatureCategory) models.SystemFeature {
	return models.SystemFeature{
		FeatureName:     name,
		ReleaseDate:     date,
		Description:     name + " release",
		Category:        category,
		KeyCapabilities: []string{},
		TargetUsers:     "Support agents",
	}
}

// Systems returns four vendors. Over the 90 days before Now, Alpha is
// accelerating, Beta slowing, Gamma idle and Delta steady.
func Systems() []models.SystemFeatures {
	return []models.SystemFeatures{
		{
			CompanyName:  "Alpha",
			LastUpdated:  "2025-03-01",
			SearchPeriod: "last 90 days",
			Features: []models.SystemFeature{
				feature("Reply Assist", "2025-02-20", models.FeatureCategoryAI),
				feature("Auto Triage", "2025-02-01", models.FeatureCategoryAutomation),
				feature("Intent Detection", "2025-01-20", models.FeatureCategoryAI),
				feature("CRM Sync", "2024-12-10", models.FeatureCategoryIntegration),
				feature("Legacy Reports", "2024-06-01", models.FeatureCategoryReporting),
			},
		},
		{
			CompanyName:  "Beta",
			LastUpdated:  "2025-03-01",
			SearchPeriod: "last 90 days",
			Features: []models.SystemFeature{
				feature("SLA Dashboards", "2025-01-05", models.FeatureCategoryReporting),
				feature("Summaries", "2024-12-20", models.FeatureCategoryAI),
				feature("Chat Connector", "2025-02-20", models.FeatureCategoryIntegration),
			},
		},
		{
			CompanyName:  "Gamma",
			LastUpdated:  "2025-03-01",
			SearchPeriod: "last 90 days",
			Features: []models.SystemFeature{
				feature("Chatbot", "2023-01-01", models.FeatureCategoryAI),
			},
		},
		{
			CompanyName:  "Delta",
			LastUpdated:  "2025-03-01",
			SearchPeriod: "last 90 days",
			Features: []models.SystemFeature{
				feature("Agent Copilot", "2025-02-25", models.FeatureCategoryAI),
				feature("Macros", "2024-12-05", models.FeatureCategoryAutomation),
				feature("Voice Bot", "coming soon", models.FeatureCategoryAI),
			},
		},
	}
}

func New() *momentum.Directory {
	return momentum.NewDirectory(Systems(), Now)
}

// Loader serves a fixed directory or error.
type Loader struct {
	Directory *momentum.Directory
	Err       error
}

func (l *Loader) Load(ctx context.Context) (*momentum.Directory, error) {
	if l.Err != nil {
		return nil, l.Err
	}
	if l.Directory == nil {
		return New(), nil
	}
	return l.Directory, nil
}
