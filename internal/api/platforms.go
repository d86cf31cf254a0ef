// internal/api/platforms.go
package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"platform-finder/internal/models"
	"platform-finder/internal/pricing"
)

// plansResponse lists the plan names a TCO request may select.
type plansResponse struct {
	PlatformID   string   `json:"platformId"`
	PlatformName string   `json:"platformName"`
	Plans        []string `json:"plans"`
}

func (s *Server) listPlatforms(w http.ResponseWriter, r *http.Request) {
	cat, err := s.catalog.Load(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeData(w, cat.Platforms(), cat.Meta())
}

func (s *Server) getPlatform(w http.ResponseWriter, r *http.Request) {
	platform, err := s.findPlatform(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeData(w, platform, nil)
}

func (s *Server) getPlans(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	platform, err := s.findPlatform(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeData(w, plansResponse{
		PlatformID:   id,
		PlatformName: platform.TradeName,
		Plans:        pricing.AvailablePlans(platform),
	}, nil)
}

func (s *Server) findPlatform(ctx context.Context, id string) (*models.Platform, error) {
	cat, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	return cat.Find(id)
}
