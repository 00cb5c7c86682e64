package prometheus

import (
	"sync"
	"time"

	"catalog-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Catalog query metrics
	CatalogQueriesCounter *prometheus.CounterVec

	// Filter derivation metrics
	FilterDerivationsCounter  prometheus.Counter
	FilterDerivationDuration  prometheus.Histogram
	FilterResultSizeHistogram prometheus.Histogram
	ActiveFiltersHistogram    prometheus.Histogram

	initOnce sync.Once
)

// InitMetrics registers the Prometheus metrics with the configured prefix.
// Only the first call has any effect.
func InitMetrics(config *config.Config) {
	initOnce.Do(func() {
		register(promauto.With(prometheus.DefaultRegisterer), config.Metrics.Prefix)
	})
}

func register(factory promauto.Factory, prefix string) {
	// HTTP request metrics
	HttpRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Catalog query metrics
	CatalogQueriesCounter = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_catalog_queries_total",
			Help: "Total number of catalog queries by operation",
		},
		[]string{"operation"},
	)

	// Filter derivation metrics
	FilterDerivationsCounter = factory.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_filter_derivations_total",
			Help: "Total number of derived product views",
		},
	)

	FilterDerivationDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_filter_derivation_duration_seconds",
			Help:    "Duration of filter and sort derivations in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
	)

	FilterResultSizeHistogram = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_filter_result_size",
			Help:    "Number of products in derived views",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	ActiveFiltersHistogram = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_active_filters",
			Help:    "Number of active filter categories per derived view",
			Buckets: []float64{0, 1, 2, 3, 4},
		},
	)
}

// RecordHTTPRequest records one served request
func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	if HttpRequestsTotal == nil {
		return
	}
	HttpRequestsTotal.WithLabelValues(method, path, status).Inc()
	HttpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordCatalogQuery increments the counter for catalog query operations
func RecordCatalogQuery(operation string) {
	if CatalogQueriesCounter == nil {
		return
	}
	CatalogQueriesCounter.WithLabelValues(operation).Inc()
}

// TrackDerivation returns a function that records a finished derivation
func TrackDerivation(startTime time.Time) func(resultSize, activeFilters int) {
	return func(resultSize, activeFilters int) {
		if FilterDerivationsCounter == nil {
			return
		}
		FilterDerivationsCounter.Inc()
		FilterDerivationDuration.Observe(time.Since(startTime).Seconds())
		FilterResultSizeHistogram.Observe(float64(resultSize))
		ActiveFiltersHistogram.Observe(float64(activeFilters))
	}
}
