// internal/models/wizard.go
package models

import "time"

// CompanySizes is ordered from smallest to largest; distance between
// buckets drives partial size credit in the matcher.
var CompanySizes = []string{"1-10", "11-50", "51-200", "201-1000", "1001+"}

var Industries = []string{
	"All", "Healthcare", "Finance", "Retail", "E-commerce", "SaaS", "Technology",
	"Education", "Manufacturing", "Professional Services", "Other",
}

var SupportVolumes = []string{"<100", "100-1K", "1K-10K", "10K+"}

var BudgetRanges = []string{"<$500", "$500-$2K", "$2K-$10K", "$10K-$50K", "$50K+"}

var SupportChannels = []string{"Email", "Live Chat", "Phone", "Social Media", "SMS", "WhatsApp", "Mobile App"}

var AICapabilities = []string{
	"AI Chatbot", "Smart Routing", "Sentiment Analysis", "Predictive Analytics",
	"Auto-responses", "Knowledge Base AI",
}

const (
	DeploymentCloudOnly  = "Cloud Only"
	DeploymentOnPremise  = "On-Premise"
	DeploymentHybrid     = "Hybrid"
	SecurityNoneRequired = "None Required"
)

var Deployments = []string{DeploymentCloudOnly, DeploymentOnPremise, DeploymentHybrid}

var SecurityCerts = []string{"SOC 2", "ISO 27001", "HIPAA", "PCI-DSS", "GDPR Compliant", SecurityNoneRequired}

const (
	TimelineUnderWeek   = "<1 week"
	TimelineWeeks       = "1-4 weeks"
	TimelineMonths      = "1-3 months"
	TimelineLongRunning = "3+ months"
)

var ImplementationTimelines = []string{TimelineUnderWeek, TimelineWeeks, TimelineMonths, TimelineLongRunning}

var Priorities = []string{"Price", "Features", "Ease of Use", "Integrations", "Support"}

// MaxPriorities is how many ranked priorities step 3 keeps.
const MaxPriorities = 3

type WizardStep1 struct {
	CompanySize   string   `json:"companySize"`
	Industry      string   `json:"industry"`
	SupportVolume string   `json:"supportVolume"`
	Channels      []string `json:"channels"`
	TeamSize      string   `json:"teamSize"`
	Budget        string   `json:"budget"`
}

type WizardStep2 struct {
	RequiredIntegrations   []string `json:"requiredIntegrations"`
	AICapabilities         []string `json:"aiCapabilities"`
	Deployment             string   `json:"deployment"`
	SecurityCerts          []string `json:"securityCerts"`
	ImplementationTimeline string   `json:"implementationTimeline"`
}

type WizardStep3 struct {
	Priorities       []string `json:"priorities"`
	DealBreakers     []string `json:"dealBreakers"`
	SimilarCompanies bool     `json:"similarCompanies,omitempty"`
}

// WizardAnswers is the flat merge of the three questionnaire steps.
type WizardAnswers struct {
	WizardStep1
	WizardStep2
	WizardStep3
}

type MatchPricing struct {
	EstimatedMonthly float64 `json:"estimatedMonthly"`
	Tier             string  `json:"tier"`
}

type PlatformMatch struct {
	PlatformID   string       `json:"platformId"`
	TradeName    string       `json:"tradeName"`
	Score        float64      `json:"score"`
	MatchReasons []string     `json:"matchReasons"`
	Concerns     []string     `json:"concerns"`
	Pricing      MatchPricing `json:"pricing"`
}

type WizardResults struct {
	Answers     WizardAnswers   `json:"answers"`
	Matches     []PlatformMatch `json:"matches"`
	Timestamp   time.Time       `json:"timestamp"`
	ShortlistID string          `json:"shortlistId,omitempty"`
}

// Contains reports whether values holds s exactly.
func Contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
