// internal/matching/matching_test.go
package matching

import (
	"math"
	"testing"

	"platform-finder/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func strPtr(s string) *string { return &s }

func createTestPlatform() *models.Platform {
	return &models.Platform{
		TradeName:   "Help Desk Pro",
		Description: "Cloud help desk for growing support teams",
		Pricing: models.Pricing{
			FreeTrial:         true,
			FreeTrialDuration: strPtr("14 days"),
			Plans: []models.PricingPlan{
				{Name: "Starter", PriceAnnual: strPtr("$15/agent/month")},
				{Name: "Professional", PriceAnnual: strPtr("$49/agent/month")},
				{Name: "Enterprise", PriceAnnual: strPtr("$79/agent/month")},
			},
		},
		Features: []models.Feature{
			{Name: "AI Chatbot", Description: "Automated answers"},
			{Name: "Ticketing", Description: "Shared inbox"},
		},
		Integrations: models.Integrations{
			TopIntegrations: []string{"Salesforce CRM", "Slack", "Shopify"},
		},
		Reputation:         models.Reputation{G2Rating: 4.6},
		SecurityCompliance: &models.SecurityCompliance{Certifications: []string{"SOC 2 Type II", "GDPR"}},
		Suitability: &models.Suitability{
			CompanySize:            []string{"11-50", "51-200"},
			Industries:             []string{"SaaS", "Retail"},
			SupportVolume:          []string{"100-1K", "1K-10K"},
			ComplexityScore:        4,
			ImplementationTimeDays: 14,
		},
		RiskAssessment: &models.RiskAssessment{
			CommonComplaints: []string{"Reporting is limited", "Add-ons are priced separately", "Mobile app is basic"},
		},
	}
}

func createTestAnswers() *models.WizardAnswers {
	return &models.WizardAnswers{
		WizardStep1: models.WizardStep1{
			CompanySize:   "11-50",
			Industry:      "SaaS",
			SupportVolume: "100-1K",
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
	}
}

// ==========================
// Score Tests
// ==========================

func TestWeightsSumToHundred(t *testing.T) {
	total := WeightCompanySize + WeightIndustry + WeightBudget + WeightIntegrations +
		WeightSupportVolume + WeightAICapabilities + WeightDeployment + WeightSecurity
	assert.Equal(t, 100.0, total)
}

func TestCalculateMatchScore(t *testing.T) {
	tests := []struct {
		name     string
		platform func(p *models.Platform)
		answers  func(a *models.WizardAnswers)
		expected float64
	}{
		{
			name:     "every factor matches",
			expected: 100,
		},
		{
			name:     "adjacent company size earns half",
			answers:  func(a *models.WizardAnswers) { a.CompanySize = "1-10" },
			expected: 87.5,
		},
		{
			name:     "company size two buckets away earns a quarter",
			answers:  func(a *models.WizardAnswers) { a.CompanySize = "1001+" },
			expected: 81.25,
		},
		{
			name: "company size three buckets away earns nothing",
			platform: func(p *models.Platform) {
				p.Suitability.CompanySize = []string{"1-10"}
			},
			answers:  func(a *models.WizardAnswers) { a.CompanySize = "201-1000" },
			expected: 75,
		},
		{
			name:     "industry not served",
			answers:  func(a *models.WizardAnswers) { a.Industry = "Healthcare" },
			expected: 80,
		},
		{
			name: "platform serving all industries",
			platform: func(p *models.Platform) {
				p.Suitability.Industries = []string{"All"}
			},
			answers:  func(a *models.WizardAnswers) { a.Industry = "Healthcare" },
			expected: 100,
		},
		{
			name:     "estimate within budget margin is a close fit",
			answers:  func(a *models.WizardAnswers) { a.TeamSize = "11" },
			expected: 90,
		},
		{
			name:     "estimate far above budget",
			answers:  func(a *models.WizardAnswers) { a.TeamSize = "20" },
			expected: 80,
		},
		{
			name:     "missing required integration applies penalty",
			answers:  func(a *models.WizardAnswers) { a.RequiredIntegrations = []string{"Salesforce", "Zendesk"} },
			expected: 35,
		},
		{
			name:     "no integrations required earns full weight",
			answers:  func(a *models.WizardAnswers) { a.RequiredIntegrations = nil },
			expected: 100,
		},
		{
			name:     "support volume not served",
			answers:  func(a *models.WizardAnswers) { a.SupportVolume = "10K+" },
			expected: 90,
		},
		{
			name: "ai requested but no ai features",
			platform: func(p *models.Platform) {
				p.Features = []models.Feature{{Name: "Ticketing", Description: "Shared inbox"}}
			},
			expected: 95,
		},
		{
			name: "ai mentioned only in description",
			platform: func(p *models.Platform) {
				p.Features = []models.Feature{{Name: "Assist", Description: "Artificial Intelligence triage"}}
			},
			expected: 100,
		},
		{
			name:     "on-premise without self-hosted offering",
			answers:  func(a *models.WizardAnswers) { a.Deployment = models.DeploymentOnPremise },
			expected: 97,
		},
		{
			name: "on-premise with self-hosted offering",
			platform: func(p *models.Platform) {
				p.Description = "Self-hosted help desk"
			},
			answers:  func(a *models.WizardAnswers) { a.Deployment = models.DeploymentOnPremise },
			expected: 100,
		},
		{
			name:     "hybrid always earns half",
			answers:  func(a *models.WizardAnswers) { a.Deployment = models.DeploymentHybrid },
			expected: 98.5,
		},
		{
			name:     "missing certification",
			answers:  func(a *models.WizardAnswers) { a.SecurityCerts = []string{"SOC 2", "HIPAA"} },
			expected: 98,
		},
		{
			name:     "no certifications required",
			answers:  func(a *models.WizardAnswers) { a.SecurityCerts = []string{models.SecurityNoneRequired} },
			expected: 100,
		},
		{
			name:     "empty certification list earns nothing",
			answers:  func(a *models.WizardAnswers) { a.SecurityCerts = nil },
			expected: 98,
		},
		{
			name:     "none required without compliance data",
			platform: func(p *models.Platform) { p.SecurityCompliance = nil },
			answers:  func(a *models.WizardAnswers) { a.SecurityCerts = []string{models.SecurityNoneRequired} },
			expected: 100,
		},
		{
			name:     "certifications required without compliance data",
			platform: func(p *models.Platform) { p.SecurityCompliance = nil },
			expected: 98,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			platform := createTestPlatform()
			answers := createTestAnswers()
			if tt.platform != nil {
				tt.platform(platform)
			}
			if tt.answers != nil {
				tt.answers(answers)
			}

			assert.InDelta(t, tt.expected, CalculateMatchScore(platform, answers), 1e-9)
		})
	}
}

func TestCalculateMatchScore_SalesforceSubstringMatch(t *testing.T) {
	platform := createTestPlatform()
	answers := createTestAnswers()
	answers.RequiredIntegrations = []string{"salesforce"}

	b := Breakdown(platform, answers)
	assert.Equal(t, WeightIntegrations, b.Integrations)
}

func TestCalculateMatchScore_PenaltyClampsToZero(t *testing.T) {
	platform := &models.Platform{
		TradeName:    "Bare Vendor",
		Integrations: models.Integrations{TopIntegrations: []string{"Slack"}},
	}
	answers := createTestAnswers()
	answers.Budget = "$10K-$50K"
	answers.AICapabilities = nil

	b := Breakdown(platform, answers)
	assert.Equal(t, MissingIntegrationPenalty, b.Integrations)
	assert.Equal(t, -42.0, b.Sum())
	assert.Equal(t, 0.0, CalculateMatchScore(platform, answers))

	assert.Empty(t, FindTopMatches([]models.Platform{*platform}, answers, 5))
}

func TestCalculateMatchScore_NoSuitabilityIsNeutral(t *testing.T) {
	platform := createTestPlatform()
	platform.Suitability = nil

	b := Breakdown(platform, createTestAnswers())
	assert.Zero(t, b.CompanySize)
	assert.Zero(t, b.Industry)
	assert.Zero(t, b.SupportVolume)
	assert.Equal(t, 45.0, b.Score())
}

func TestClassifyBudget(t *testing.T) {
	tests := []struct {
		cost   float64
		budget string
		want   BudgetFit
	}{
		{490, "<$500", BudgetExact},
		{500, "$500-$2K", BudgetExact},
		{600, "<$500", BudgetClose},
		{601, "<$500", BudgetNone},
		{200, "$500-$2K", BudgetClose},
		{100000, "$50K+", BudgetExact},
		{1000, "$50K+", BudgetClose},
		{490, "unknown", BudgetNone},
	}

	for _, tt := range tests {
		t.Run(tt.budget, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyBudget(tt.cost, tt.budget))
		})
	}
}

// ==========================
// Reasons And Concerns
// ==========================

func TestGenerateMatchReasons_RuleOrderAndCap(t *testing.T) {
	reasons := GenerateMatchReasons(createTestPlatform(), createTestAnswers(), 100)

	assert.Equal(t, []string{
		"Perfect fit for 11-50 employee companies",
		"Proven track record in SaaS industry",
		"Strong AI capabilities match your requirements",
		"Integrates with Salesforce",
		"Handles 100-1K tickets/month efficiently",
	}, reasons)
}

func TestGenerateMatchReasons_TrialAndRating(t *testing.T) {
	answers := createTestAnswers()
	answers.CompanySize = "1001+"
	answers.Industry = "Healthcare"
	answers.AICapabilities = nil
	answers.RequiredIntegrations = []string{"Zendesk"}
	answers.SupportVolume = "10K+"
	answers.ImplementationTimeline = models.TimelineUnderWeek

	reasons := GenerateMatchReasons(createTestPlatform(), answers, 0)

	assert.Equal(t, []string{
		"Free trial available (14 days)",
		"Highly rated (4.6/5 on G2)",
	}, reasons)
}

func TestGenerateMatchReasons_Details(t *testing.T) {
	platform := createTestPlatform()
	platform.Pricing.FreeTrialDuration = nil
	platform.Reputation.G2Rating = 5
	answers := createTestAnswers()
	answers.CompanySize = "1001+"
	answers.Industry = "All"
	answers.AICapabilities = nil
	answers.RequiredIntegrations = []string{"slack", "Zendesk"}
	answers.SupportVolume = "10K+"

	reasons := GenerateMatchReasons(platform, answers, 0)

	assert.Equal(t, []string{
		"Integrates with slack",
		"Quick implementation (14 days typical)",
		"Free trial available (available)",
		"Highly rated (5/5 on G2)",
	}, reasons)
}

func TestGenerateConcerns(t *testing.T) {
	t.Run("complaints only when budget fits", func(t *testing.T) {
		concerns := GenerateConcerns(createTestPlatform(), createTestAnswers())
		assert.Equal(t, []string{"Reporting is limited", "Add-ons are priced separately"}, concerns)
	})

	t.Run("budget complexity and timeline first", func(t *testing.T) {
		platform := createTestPlatform()
		platform.Suitability.ComplexityScore = 8
		platform.Suitability.ImplementationTimeDays = 45
		answers := createTestAnswers()
		answers.TeamSize = "20"
		answers.ImplementationTimeline = models.TimelineUnderWeek

		concerns := GenerateConcerns(platform, answers)

		assert.Equal(t, []string{
			"Estimated cost ($980/mo) may exceed your budget",
			"Higher complexity - may require technical expertise to set up",
			"Implementation typically takes 45 days",
		}, concerns)
	})

	t.Run("no risk assessment", func(t *testing.T) {
		platform := createTestPlatform()
		platform.RiskAssessment = nil
		assert.Empty(t, GenerateConcerns(platform, createTestAnswers()))
	})
}

// ==========================
// Ranking Tests
// ==========================

func TestPlatformID(t *testing.T) {
	assert.Equal(t, "help-desk-pro", PlatformID("Help Desk Pro"))
	assert.Equal(t, "zoho-desk", PlatformID("Zoho   Desk"))
	assert.Equal(t, "freshdesk", PlatformID("Freshdesk"))
}

func TestFindTopMatches(t *testing.T) {
	best := *createTestPlatform()

	good := *createTestPlatform()
	good.TradeName = "Good Fit"
	good.Suitability = &models.Suitability{
		CompanySize:   []string{"1-10"},
		Industries:    []string{"SaaS"},
		SupportVolume: []string{"100-1K"},
	}

	tie := *createTestPlatform()
	tie.TradeName = "Tied Fit"
	tie.Suitability = good.Suitability

	missing := models.Platform{
		TradeName:    "No Salesforce",
		Integrations: models.Integrations{TopIntegrations: []string{"Slack"}},
	}

	platforms := []models.Platform{good, missing, best, tie}
	answers := createTestAnswers()

	t.Run("sorted descending with stable ties", func(t *testing.T) {
		matches := FindTopMatches(platforms, answers, 0)

		require.Len(t, matches, 3)
		assert.Equal(t, "help-desk-pro", matches[0].PlatformID)
		assert.Equal(t, "Good Fit", matches[1].TradeName)
		assert.Equal(t, "Tied Fit", matches[2].TradeName)
		for i := 1; i < len(matches); i++ {
			assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
		}
		for _, m := range matches {
			assert.Greater(t, m.Score, 0.0)
		}
	})

	t.Run("limit truncates", func(t *testing.T) {
		matches := FindTopMatches(platforms, answers, 1)
		require.Len(t, matches, 1)
		assert.Equal(t, 100.0, matches[0].Score)
	})

	t.Run("pricing summary", func(t *testing.T) {
		matches := FindTopMatches(platforms, answers, 1)
		require.Len(t, matches, 1)
		assert.Equal(t, 490.0, matches[0].Pricing.EstimatedMonthly)
		assert.Equal(t, "Professional", matches[0].Pricing.Tier)
	})

	t.Run("empty catalog", func(t *testing.T) {
		assert.Empty(t, FindTopMatches(nil, answers, 5))
	})
}

func TestFindTopMatches_ScoresAreBounded(t *testing.T) {
	answers := createTestAnswers()
	for _, p := range []*models.Platform{createTestPlatform(), {}, {Suitability: &models.Suitability{}}} {
		score := CalculateMatchScore(p, answers)
		assert.False(t, math.IsNaN(score))
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}
