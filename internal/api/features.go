// internal/api/features.go
package api

import (
	"net/http"
	"strconv"

	"platform-finder/internal/common/errors"
	"platform-finder/internal/momentum"
)

func (s *Server) listFeatures(w http.ResponseWriter, r *http.Request) {
	dir, err := s.features.Load(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeData(w, dir.Systems(), dir.Meta())
}

// featureMomentum serves the tracker data for ?days= (default 90).
func (s *Server) featureMomentum(w http.ResponseWriter, r *http.Request) {
	days, err := windowDays(r.URL.Query().Get("days"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	dir, err := s.features.Load(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeData(w, momentum.Calculate(dir.Systems(), days, s.now()), dir.Meta())
}

func windowDays(raw string) (int, error) {
	if raw == "" {
		return momentum.DefaultWindowDays, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 || days > momentum.MaxWindowDays {
		return 0, errors.NewInvalidMomentumWindowError(raw, momentum.MaxWindowDays)
	}
	return days, nil
}
