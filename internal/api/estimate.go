// internal/api/estimate.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"platform-finder/internal/common/errors"
	"platform-finder/internal/matching"
	"platform-finder/internal/models"
	"platform-finder/internal/pricing"
	"platform-finder/internal/tco"
	"platform-finder/internal/wizard"
)

type matchRequest struct {
	Answers models.WizardAnswers `json:"answers"`
	Limit   int                  `json:"limit"`
}

type tcoRequest struct {
	PlatformID    string           `json:"platformId"`
	Inputs        models.TCOInputs `json:"inputs"`
	IncludeReport bool             `json:"includeReport"`
}

type tcoResponse struct {
	PlatformID     string                `json:"platformId"`
	PlatformName   string                `json:"platformName"`
	Breakdown      models.TCOBreakdown   `json:"breakdown"`
	Year1Total     string                `json:"year1Total"`
	ThreeYearTotal string                `json:"threeYearTotal"`
	Report         *models.TCOReportData `json:"report,omitempty"`
}

type compareRequest struct {
	PlatformIDs []string         `json:"platformIds"`
	Inputs      models.TCOInputs `json:"inputs"`
}

type compareResponse struct {
	Comparisons []models.TCOComparison `json:"comparisons"`
	Cheapest    models.TCOComparison   `json:"cheapest"`
	MaxSavings  string                 `json:"maxSavings"`
}

func decodeBody(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.NewInputParsingFailedError(fmt.Errorf("missing body"))
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.NewInputParsingFailedError(err)
	}
	return nil
}

// match ranks the catalog against one set of answers. An empty match list is
// a valid answer here, unlike the find-top-matches worker.
func (s *Server) match(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := wizard.ValidateAnswers(&req.Answers); err != nil {
		s.writeError(w, r, err)
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.matchLimit
	}
	if limit > maxMatchLimit {
		limit = maxMatchLimit
	}

	cat, err := s.catalog.Load(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	matches := matching.FindTopMatches(cat.Platforms(), &req.Answers, limit)
	if matches == nil {
		matches = []models.PlatformMatch{}
	}

	writeData(w, models.WizardResults{
		Answers:   req.Answers,
		Matches:   matches,
		Timestamp: s.now().UTC(),
	}, map[string]int{"total": len(matches), "evaluated": cat.Len()})
}

func (s *Server) calculateTCO(w http.ResponseWriter, r *http.Request) {
	var req tcoRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := tco.ValidateInputs(&req.Inputs); err != nil {
		s.writeError(w, r, err)
		return
	}

	platform, err := s.findPlatform(r.Context(), req.PlatformID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	b := tco.CalculateTCO(platform, &req.Inputs)
	resp := tcoResponse{
		PlatformID:     req.PlatformID,
		PlatformName:   platform.TradeName,
		Breakdown:      b,
		Year1Total:     pricing.FormatCurrency(b.Year1Total),
		ThreeYearTotal: pricing.FormatCurrency(b.ThreeYearTotal),
	}
	if req.IncludeReport {
		report := tco.BuildReport(platform, &req.Inputs, s.now())
		resp.Report = &report
	}
	writeData(w, resp, nil)
}

func (s *Server) compareTCO(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := tco.ValidateInputs(&req.Inputs); err != nil {
		s.writeError(w, r, err)
		return
	}
	if n := len(req.PlatformIDs); n == 0 || n > tco.MaxComparedPlatforms {
		s.writeError(w, r, errors.NewInvalidTCOInputsError(tco.ErrComparisonSize.Error()))
		return
	}

	cat, err := s.catalog.Load(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	platforms, err := cat.FindAll(req.PlatformIDs)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	comparisons, err := tco.Compare(platforms, req.PlatformIDs, &req.Inputs)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	cheapest, _ := tco.Cheapest(comparisons)
	dearest := cheapest.Total3Year
	for _, c := range comparisons {
		if c.Total3Year > dearest {
			dearest = c.Total3Year
		}
	}
	writeData(w, compareResponse{
		Comparisons: comparisons,
		Cheapest:    cheapest,
		MaxSavings:  pricing.FormatCurrency(dearest - cheapest.Total3Year),
	}, nil)
}
