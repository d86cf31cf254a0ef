// internal/models/momentum.go
package models

import "time"

// FeatureCategory groups vendor feature releases.
type FeatureCategory string

const (
	FeatureCategoryAI          FeatureCategory = "AI"
	FeatureCategoryAutomation  FeatureCategory = "Automation"
	FeatureCategoryIntegration FeatureCategory = "Integration"
	FeatureCategoryReporting   FeatureCategory = "Reporting"
)

// FeatureCategories lists every category in display order.
var FeatureCategories = []FeatureCategory{
	FeatureCategoryAI,
	FeatureCategoryAutomation,
	FeatureCategoryIntegration,
	FeatureCategoryReporting,
}

// SystemFeature is one feature release announced by a vendor.
type SystemFeature struct {
	FeatureName     string          `json:"feature_name"`
	ReleaseDate     string          `json:"release_date"` // YYYY-MM-DD
	Description     string          `json:"description"`
	Category        FeatureCategory `json:"category"`
	KeyCapabilities []string        `json:"key_capabilities"`
	TargetUsers     string          `json:"target_users"`
}

// SystemFeatures holds the releases found for one vendor.
type SystemFeatures struct {
	CompanyName  string          `json:"company_name"`
	LastUpdated  string          `json:"last_updated"`
	SearchPeriod string          `json:"search_period"`
	Features     []SystemFeature `json:"features"`
}

// FeaturesDirectory is the root of features-by-system.json.
type FeaturesDirectory struct {
	FeaturesBySystem []SystemFeatures `json:"features_by_system"`
}

// Trend compares release counts in the two halves of a window.
type Trend string

const (
	TrendTrending Trend = "trending"
	TrendStable   Trend = "stable"
	TrendSlowing  Trend = "slowing"
)

type ToolFeatureCount struct {
	ToolName      string          `json:"toolName"`
	Count         int             `json:"count"`
	Features      []SystemFeature `json:"features"`
	Trend         Trend           `json:"trend"`
	SparklineData []int           `json:"sparklineData"`
}

type CategoryDistribution struct {
	Category   FeatureCategory `json:"category"`
	Count      int             `json:"count"`
	Percentage int             `json:"percentage"`
}

// VelocityScore is the percentage change between the earlier and later half of a window.
type VelocityScore struct {
	ToolName      string `json:"toolName"`
	Score         int    `json:"score"`
	Trend         Trend  `json:"trend"`
	RecentCount   int    `json:"recentCount"`
	PreviousCount int    `json:"previousCount"`
}

type TimelineFeature struct {
	ToolName    string          `json:"toolName"`
	FeatureName string          `json:"featureName"`
	Category    FeatureCategory `json:"category"`
}

// TimelineDataPoint collects the releases sharing one release date.
type TimelineDataPoint struct {
	Date     string            `json:"date"`
	Count    int               `json:"count"`
	Features []TimelineFeature `json:"features"`
}

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Days  int       `json:"days"`
}

// MomentumData is everything the feature momentum tracker shows for one window.
type MomentumData struct {
	ToolFeatureCounts    []ToolFeatureCount     `json:"toolFeatureCounts"`
	CategoryDistribution []CategoryDistribution `json:"categoryDistribution"`
	FastestGrowingTools  []VelocityScore        `json:"fastestGrowingTools"`
	TimelineData         []TimelineDataPoint    `json:"timelineData"`
	DateRange            DateRange              `json:"dateRange"`
}
