// Package metrics provides Prometheus metrics for thumbgate.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SignedURLsTotal counts proxy URLs signed by the API.
	SignedURLsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "thumbgate",
			Name:      "signed_urls_total",
			Help:      "Total number of signed proxy URLs",
		},
		[]string{"source_type"},
	)

	// LoadsTotal counts loader attempts by backend and result.
	LoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "thumbgate",
			Name:      "loads_total",
			Help:      "Total number of loader attempts",
		},
		[]string{"source_type", "result"},
	)

	// LoadDuration measures loader attempt duration.
	LoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "thumbgate",
			Name:      "load_duration_seconds",
			Help:      "Duration of loader attempts in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"source_type"},
	)

	// RetriesTotal counts fallback retries issued by the dispatcher.
	RetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "thumbgate",
			Name:      "retries_total",
			Help:      "Total number of fallback loader retries",
		},
		[]string{"source_type"},
	)

	// CacheLookupsTotal counts thumbnail cache lookups.
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "thumbgate",
			Name:      "cache_lookups_total",
			Help:      "Total number of thumbnail cache lookups",
		},
		[]string{"backend", "result"},
	)
)

func RecordSignedURL(sourceType string) {
	SignedURLsTotal.WithLabelValues(sourceType).Inc()
}

func RecordLoad(sourceType, result string, duration float64) {
	LoadsTotal.WithLabelValues(sourceType, result).Inc()
	LoadDuration.WithLabelValues(sourceType).Observe(duration)
}

func RecordRetry(sourceType string) {
	RetriesTotal.WithLabelValues(sourceType).Inc()
}

func RecordCacheLookup(backend string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookupsTotal.WithLabelValues(backend, result).Inc()
}
