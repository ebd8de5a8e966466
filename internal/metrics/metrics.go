package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values for link creation and resolution.
const (
	SourceCustom    = "custom"
	SourceGenerated = "generated"

	FailureInvalidURL       = "invalid_url"
	FailureInvalidCode      = "invalid_code"
	FailureCodeConflict     = "code_conflict"
	FailureExhaustedRetries = "exhausted_retries"
	FailureInternal         = "internal"

	ResolveFound    = "found"
	ResolveNotFound = "not_found"
	ResolveError    = "error"
)

var (
	// HTTPRequestDuration tracks request latency per huma operation.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "linx_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "operation", "status"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "linx_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	LinksCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linx_links_created_total",
			Help: "Total number of links created, by code source",
		},
		[]string{"source"},
	)

	CreateFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linx_create_failures_total",
			Help: "Total number of rejected or failed create requests, by reason",
		},
		[]string{"reason"},
	)

	// CodeCollisionsTotal counts generated codes that were already taken.
	CodeCollisionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "linx_code_collisions_total",
			Help: "Total number of generated codes that collided with an existing link",
		},
	)

	ResolvesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linx_resolves_total",
			Help: "Total number of code lookups, by result",
		},
		[]string{"result"},
	)

	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "linx_cache_hits_total",
			Help: "Total number of link cache hits",
		},
	)

	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "linx_cache_misses_total",
			Help: "Total number of link cache misses",
		},
	)
)

func RecordLinkCreated(source string) {
	LinksCreatedTotal.WithLabelValues(source).Inc()
}

func RecordCreateFailure(reason string) {
	CreateFailuresTotal.WithLabelValues(reason).Inc()
}

func RecordCodeCollision() {
	CodeCollisionsTotal.Inc()
}

func RecordResolve(result string) {
	ResolvesTotal.WithLabelValues(result).Inc()
}

func RecordCacheHit() {
	CacheHitsTotal.Inc()
}

func RecordCacheMiss() {
	CacheMissesTotal.Inc()
}
