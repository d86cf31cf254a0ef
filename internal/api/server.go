// internal/api/server.go
package api

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"platform-finder/internal/catalog"
	"platform-finder/internal/common/logger"
	"platform-finder/internal/momentum"
)

const (
	// readyTimeout bounds a single readiness probe.
	readyTimeout = 2 * time.Second

	DefaultMatchLimit = 5
	maxMatchLimit     = 50
)

// CatalogLoader returns the current platform catalog snapshot.
type CatalogLoader interface {
	Load(ctx context.Context) (*catalog.Catalog, error)
}

// FeatureLoader returns the current feature release catalog snapshot.
type FeatureLoader interface {
	Load(ctx context.Context) (*momentum.Directory, error)
}

// ReadinessCheck reports whether a dependency can serve traffic.
type ReadinessCheck func(ctx context.Context) error

// Server serves the read API over the platform catalog.
type Server struct {
	catalog    CatalogLoader
	features   FeatureLoader
	checks     map[string]ReadinessCheck
	matchLimit int
	logger     logger.Logger
	now        func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithReadinessCheck adds a named dependency probe to /ready.
func WithReadinessCheck(name string, check ReadinessCheck) Option {
	return func(s *Server) { s.checks[name] = check }
}

// WithFeatures serves the feature momentum routes from loader.
func WithFeatures(loader FeatureLoader) Option {
	return func(s *Server) { s.features = loader }
}

// WithMatchLimit sets how many matches /api/match returns when the request omits a limit.
func WithMatchLimit(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.matchLimit = n
		}
	}
}

func New(loader CatalogLoader, log logger.Logger, opts ...Option) *Server {
	s := &Server{
		catalog:    loader,
		checks:     map[string]ReadinessCheck{},
		matchLimit: DefaultMatchLimit,
		logger:     log.WithFields(map[string]interface{}{"component": "api"}),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Routes returns the router for the read API, health probes and metrics.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/health", s.health)
	r.Get("/ready", s.ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/platforms", func(r chi.Router) {
			r.Get("/", s.listPlatforms)
			r.Get("/{id}", s.getPlatform)
			r.Get("/{id}/plans", s.getPlans)
		})
		r.Post("/match", s.match)
		r.Post("/tco", s.calculateTCO)
		r.Post("/tco/compare", s.compareTCO)
		if s.features != nil {
			r.Get("/features", s.listFeatures)
			r.Get("/features/momentum", s.featureMomentum)
		}
	})
	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   s.now().UTC().Format(time.RFC3339),
	})
}

// ready runs every readiness check and reports 503 if any fails.
func (s *Server) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := http.StatusOK
	results := make(map[string]string, len(names))
	for _, name := range names {
		if err := s.checks[name](ctx); err != nil {
			s.logger.Warn("readiness check failed", map[string]interface{}{
				"check": name,
				"error": err.Error(),
			})
			results[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = "ok"
	}

	state := "ready"
	if status != http.StatusOK {
		state = "not ready"
	}
	writeJSON(w, status, map[string]interface{}{
		"status": state,
		"checks": results,
		"time":   s.now().UTC().Format(time.RFC3339),
	})
}
