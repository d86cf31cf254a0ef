// Package catalogtest provides catalog fixtures for tests in other packages.
package catalogtest

import (
	"context"
	"time"

	"platform-finder/internal/catalog"
	"platform-finder/internal/models"
)

// LoadedAt is the snapshot time of catalogs built by New.
var LoadedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func str(s string) *string { return &s }

func float(f float64) *float64 { return &f }

// Platforms returns three platforms aimed at small, mid-sized and large teams.
func Platforms() []models.Platform {
	return []models.Platform{
		{
			CompanyName:     "Help Desk Pro Inc.",
			TradeName:       "Help Desk Pro",
			Description:     "Cloud help desk for growing support teams",
			CategoryPrimary: "Help Desk",
			WebsiteURL:      "https://helpdeskpro.example",
			Pricing: models.Pricing{
				Model:             "per agent",
				FreeTrial:         true,
				FreeTrialDuration: str("14 days"),
				Plans: []models.PricingPlan{
					{Name: "Starter", PriceAnnual: str("$15/agent/month")},
					{Name: "Professional", PriceAnnual: str("$49/agent/month")},
					{Name: "Enterprise", PriceAnnual: str("$79/agent/month")},
				},
				HiddenCosts: &models.HiddenCosts{
					ImplementationFee:     models.Range{Min: 1000, Max: 3000},
					TrainingHoursEstimate: 10,
					TrainingCostPerHour:   float(100),
					PremiumIntegrations: []models.PremiumIntegration{
						{Name: "Salesforce", Cost: 20, Per: "month"},
					},
					MigrationEstimate: models.Range{Min: 500, Max: 1500},
				},
			},
			Features: []models.Feature{
				{Name: "AI Chatbot", Description: "Automated answers"},
				{Name: "Ticketing", Description: "Shared inbox"},
			},
			Integrations: models.Integrations{
				HasAPI:          true,
				TopIntegrations: []string{"Salesforce CRM", "Slack", "Shopify"},
			},
			Reputation:         models.Reputation{G2Rating: 4.6, G2ReviewsCount: 1200},
			SecurityCompliance: &models.SecurityCompliance{Certifications: []string{"SOC 2 Type II", "GDPR"}},
			Suitability: &models.Suitability{
				CompanySize:            []string{"11-50", "51-200"},
				Industries:             []string{"SaaS", "Retail"},
				SupportVolume:          []string{"100-1K", "1K-10K"},
				ComplexityScore:        4,
				ImplementationTimeDays: 14,
			},
			LastVerified: "2025-02-01",
		},
		{
			CompanyName:     "Chat Lite LLC",
			TradeName:       "Chat Lite",
			Description:     "Live chat widget for small shops",
			CategoryPrimary: "Live Chat",
			WebsiteURL:      "https://chatlite.example",
			Pricing: models.Pricing{
				Model:    "per agent",
				FreePlan: true,
				Plans: []models.PricingPlan{
					{Name: "Free", Price: str("$0")},
					{Name: "Basic", PriceMonthly: str("$10/agent/month")},
				},
			},
			Integrations: models.Integrations{TopIntegrations: []string{"Shopify"}},
			Reputation:   models.Reputation{G2Rating: 4.1, G2ReviewsCount: 90},
			Suitability: &models.Suitability{
				CompanySize:            []string{"1-10"},
				Industries:             []string{"Retail", "E-commerce"},
				SupportVolume:          []string{"<100"},
				ComplexityScore:        2,
				ImplementationTimeDays: 2,
			},
			LastVerified: "2025-01-15",
		},
		{
			CompanyName:     "Enterprise Suite Corp.",
			TradeName:       "Enterprise Suite",
			Description:     "Omnichannel contact center for large organisations",
			CategoryPrimary: "Contact Center",
			WebsiteURL:      "https://enterprisesuite.example",
			Pricing: models.Pricing{
				Model: "per agent",
				Plans: []models.PricingPlan{
					{Name: "Enterprise", PriceAnnual: str("$150/agent/month")},
				},
				HiddenCosts: &models.HiddenCosts{
					ImplementationFee:     models.Range{Min: 10000, Max: 30000},
					TrainingHoursEstimate: 40,
					MigrationEstimate:     models.Range{Min: 5000, Max: 15000},
				},
			},
			Features: []models.Feature{
				{Name: "Smart Routing", Description: "AI-powered routing"},
			},
			Integrations: models.Integrations{
				HasAPI:          true,
				TopIntegrations: []string{"Salesforce", "SAP", "Microsoft Teams"},
			},
			Reputation:         models.Reputation{G2Rating: 4.3, G2ReviewsCount: 800},
			SecurityCompliance: &models.SecurityCompliance{Certifications: []string{"SOC 2", "ISO 27001", "HIPAA"}},
			Suitability: &models.Suitability{
				CompanySize:            []string{"1001+"},
				Industries:             []string{"Finance", "Healthcare"},
				SupportVolume:          []string{"10K+"},
				ComplexityScore:        8,
				ImplementationTimeDays: 90,
			},
			LastVerified: "2025-02-10",
		},
	}
}

// New builds a catalog over Platforms.
func New() *catalog.Catalog {
	return catalog.New(Platforms(), LoadedAt)
}

// Loader returns a fixed catalog or error from Load.
type Loader struct {
	Catalog *catalog.Catalog
	Err     error
	Calls   int
}

func (l *Loader) Load(ctx context.Context) (*catalog.Catalog, error) {
	l.Calls++
	if l.Err != nil {
		return nil, l.Err
	}
	if l.Catalog == nil {
		return New(), nil
	}
	return l.Catalog, nil
}

// SmallTeamAnswers describes a SaaS team of ten that fits Help Desk Pro.
func SmallTeamAnswers() models.WizardAnswers {
	return models.WizardAnswers{
		WizardStep1: models.WizardStep1{
			CompanySize:   "11-50",
			Industry:      "SaaS",
			SupportVolume: "100-1K",
			Channels:      []string{"Email", "Live Chat"},
			TeamSize:      "10",
			Budget:        "<$500",
		},
		WizardStep2: models.WizardStep2{
			RequiredIntegrations:   []string{"Salesforce"},
			AICapabilities:         []string{"AI Chatbot"},
			Deployment:             models.DeploymentCloudOnly,
			SecurityCerts:          []string{"SOC 2"},
			ImplementationTimeline: models.TimelineWeeks,
		},
		WizardStep3: models.WizardStep3{
			Priorities: []string{"Price", "Ease of Use"},
		},
	}
}
