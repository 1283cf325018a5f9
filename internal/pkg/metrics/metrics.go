package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	// TransitAPIRequests counts upstream transit API calls by operation and outcome
	TransitAPIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transit_api_requests_total",
			Help: "Number of signed requests sent to the transit API",
		},
		[]string{"operation", "outcome"},
	)

	TransitAPIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "transit_api_request_duration_seconds",
			Help:    "Latency of transit API requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

var (
	// CacheLookups counts caller-level cache hits and misses by kind (stops, routes)
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "transit_cache_lookups_total",
		Help: "Cache lookups for transit data source results",
	}, []string{"kind", "result"})

	StopLookupsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stop_lookup_events_processed_total",
		Help: "Stop lookup stream events processed by the worker",
	}, []string{"outcome"})
)
