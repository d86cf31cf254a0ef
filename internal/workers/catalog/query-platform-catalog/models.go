// internal/workers/catalog/query-platform-catalog/models.go
package queryplatformcatalog

import (
	"time"

	"platform-finder/internal/models"
)

const (
	OperationList  = "list"
	OperationGet   = "get"
	OperationPlans = "plans"
)

type Input struct {
	Operation  string `json:"operation"`
	PlatformID string `json:"platformId"`
}

// PlatformSummary is the list view of a platform; full records are only
// returned by the get operation.
type PlatformSummary struct {
	ID              string  `json:"id"`
	TradeName       string  `json:"tradeName"`
	CompanyName     string  `json:"companyName"`
	CategoryPrimary string  `json:"categoryPrimary"`
	G2Rating        float64 `json:"g2Rating"`
	FreeTrial       bool    `json:"freeTrial"`
	FreePlan        bool    `json:"freePlan"`
	StartingPrice   string  `json:"startingPrice"`
}

type Output struct {
	Operation   string            `json:"operation"`
	Platforms   []PlatformSummary `json:"platforms,omitempty"`
	Platform    *models.Platform  `json:"platform,omitempty"`
	PlatformID  string            `json:"platformId,omitempty"`
	Plans       []string          `json:"plans,omitempty"`
	Total       int               `json:"total"`
	LastUpdated time.Time         `json:"lastUpdated"`
}
