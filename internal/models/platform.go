// internal/models/platform.go
package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// PlatformsDirectory is the root document of the platform catalog.
type PlatformsDirectory struct {
	Systems []Platform `json:"systems"`
}

// Platform is a customer-service vendor listed in the directory.
type Platform struct {
	CompanyName         string              `json:"company_name"`
	TradeName           string              `json:"trade_name"`
	Tagline             string              `json:"tagline"`
	Description         string              `json:"description"`
	CategoryPrimary     string              `json:"category_primary"`
	CategoriesSecondary []string            `json:"categories_secondary"`
	LogoURL             *string             `json:"logo_url"`
	WebsiteURL          string              `json:"website_url"`
	PricingURL          *string             `json:"pricing_url"`
	FoundedYear         int                 `json:"founded_year"`
	Pricing             Pricing             `json:"pricing"`
	Features            []Feature           `json:"features"`
	Integrations        Integrations        `json:"integrations"`
	UniqueSellingPoints []string            `json:"unique_selling_points"`
	TargetAudience      []string            `json:"target_audience"`
	Reputation          Reputation          `json:"reputation"`
	SecurityCompliance  *SecurityCompliance `json:"security_compliance"`
	Suitability         *Suitability        `json:"suitability"`
	RiskAssessment      *RiskAssessment     `json:"risk_assessment"`
	LastVerified        string              `json:"last_verified"`
}

type Pricing struct {
	Model                     string        `json:"model"`
	FreeTrial                 bool          `json:"free_trial"`
	FreeTrialDuration         *string       `json:"free_trial_duration"`
	FreePlan                  bool          `json:"free_plan"`
	Currency                  *string       `json:"currency"`
	BillingPeriod             *string       `json:"billing_period"`
	Plans                     []PricingPlan `json:"plans"`
	AddOns                    *AddOns       `json:"add_ons"`
	EnterpriseCustom          *bool         `json:"enterprise_custom"`
	ContactSalesForEnterprise *bool         `json:"contact_sales_for_enterprise"`
	HiddenCosts               *HiddenCosts  `json:"hidden_costs"`
}

// PricingPlan prices are free-form strings such as "$49/agent/month".
type PricingPlan struct {
	Name           string   `json:"name"`
	Price          *string  `json:"price"`
	PriceAnnual    *string  `json:"price_annual"`
	PriceMonthly   *string  `json:"price_monthly"`
	BillingPeriod  *string  `json:"billing_period"`
	BillingUnit    *string  `json:"billing_unit"`
	AgentsIncluded *string  `json:"agents_included"`
	KeyFeatures    []string `json:"key_features"`
}

type AddOns struct {
	FreddyAIAgent *string `json:"freddy_ai_agent"`
	Note          *string `json:"note"`
}

// HasAIAgent reports whether the vendor sells the AI agent add-on.
func (a *AddOns) HasAIAgent() bool {
	return a != nil && a.FreddyAIAgent != nil && *a.FreddyAIAgent != ""
}

type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type PremiumIntegration struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
	Per  string  `json:"per"` // month, year, one-time
}

type APILimits struct {
	IncludedCalls float64 `json:"included_calls"`
	OveragePer10K float64 `json:"overage_per_10k"`
}

type StorageLimits struct {
	IncludedGB   float64 `json:"included_gb"`
	OveragePerGB float64 `json:"overage_per_gb"`
}

type HiddenCosts struct {
	ImplementationFee     Range                `json:"implementation_fee"`
	TrainingHoursEstimate float64              `json:"training_hours_estimate"`
	TrainingCostPerHour   *float64             `json:"training_cost_per_hour"`
	PremiumIntegrations   []PremiumIntegration `json:"premium_integrations"`
	APILimits             *APILimits           `json:"api_limits"`
	DataStorageLimits     *StorageLimits       `json:"data_storage_limits"`
	MigrationEstimate     Range                `json:"migration_estimate"`
}

type Feature struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	AvailableInPlans []string `json:"available_in_plans"`
	Category         *string  `json:"category"`
}

type Integrations struct {
	HasAPI            bool       `json:"has_api"`
	APIDocsURL        *string    `json:"api_docs_url"`
	APIType           *string    `json:"api_type"`
	TotalIntegrations FlexString `json:"total_integrations"`
	TopIntegrations   []string   `json:"top_integrations"`
}

type Reputation struct {
	G2Rating       float64  `json:"g2_rating"`
	G2ReviewsCount int      `json:"g2_reviews_count"`
	CapterraRating *float64 `json:"capterra_rating"`
	Awards         []string `json:"awards"`
}

type SecurityCompliance struct {
	Certifications   []string `json:"certifications"`
	SecurityFeatures []string `json:"security_features"`
}

type Suitability struct {
	CompanySize            []string `json:"company_size"`
	Industries             []string `json:"industries"`
	SupportVolume          []string `json:"support_volume"`
	ComplexityScore        int      `json:"complexity_score"`
	ImplementationTimeDays int      `json:"implementation_time_days"`
	BestFor                []string `json:"best_for"`
	NotIdealFor            []string `json:"not_ideal_for"`
}

type RiskAssessment struct {
	SwitchingDifficulty string   `json:"switching_difficulty"`
	LockInRisk          string   `json:"lock_in_risk"`
	ContractFlexibility string   `json:"contract_flexibility"`
	DataExport          string   `json:"data_export"`
	CommonComplaints    []string `json:"common_complaints"`
	Mitigation          []string `json:"mitigation"`
}

// FlexString accepts either a JSON number or a JSON string ("1000+").
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) MarshalJSON() ([]byte, error) {
	s := string(f)
	if s != "" && strings.Trim(s, "0123456789") == "" {
		return []byte(s), nil
	}
	return json.Marshal(s)
}

// Str dereferences an optional string.
func Str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
