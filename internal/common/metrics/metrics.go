// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)
)

var (
	CatalogLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_loads_total",
			Help: "Platform catalog loads by outcome",
		},
		[]string{"status"},
	)

	CatalogPlatforms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_platforms",
			Help: "Number of platforms in the most recently loaded catalog",
		},
	)

	FeatureCatalogLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feature_catalog_loads_total",
			Help: "Feature release catalog loads by outcome",
		},
		[]string{"status"},
	)

	MatchScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "match_score",
			Help:    "Distribution of computed platform match scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	TCOThreeYearTotals = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tco_three_year_total_dollars",
			Help:    "Distribution of estimated three-year total cost of ownership",
			Buckets: prometheus.ExponentialBuckets(1000, 2, 12),
		},
	)

	WizardSessionEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wizard_session_events_total",
			Help: "Wizard session lifecycle events",
		},
		[]string{"event"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Read API requests by route and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Read API request latency",
		},
		[]string{"route", "method"},
	)
)
