// Package metrics provides Prometheus metrics for the disbursal reporting service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Report pipeline metrics
	reportsServed   *prometheus.CounterVec
	recordsFiltered prometheus.Histogram

	// Upstream fetch metrics
	fetchAttempts   prometheus.Counter
	fetchFailures   *prometheus.CounterVec
	fetchFallbacks  prometheus.Counter
	recordsFetched  prometheus.Histogram
	fetchDurationMs prometheus.Histogram

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec
	authRejections      prometheus.Counter

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "disburse",
		subsystem:        "reports",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.reportsServed = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "served_total",
		Help:      "Total number of report projections served, by report type",
	}, []string{"report"})

	m.recordsFiltered = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "filtered_records",
		Help:      "Distribution of record counts surviving the filter stage",
		Buckets:   []float64{0, 1, 10, 50, 100, 500, 1000, 5000, 10000},
	})

	m.fetchAttempts = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "upstream",
		Name:      "fetch_attempts_total",
		Help:      "Total number of candidate-window requests issued to the upstream",
	})

	m.fetchFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "upstream",
		Name:      "fetch_failures_total",
		Help:      "Candidate-window requests that failed, by failure kind",
	}, []string{"kind"})

	m.fetchFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "upstream",
		Name:      "fetch_fallbacks_total",
		Help:      "Fetches answered by a fallback candidate window rather than the first",
	})

	m.recordsFetched = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "upstream",
		Name:      "fetched_records",
		Help:      "Distribution of raw record counts returned by successful fetches",
		Buckets:   []float64{0, 1, 10, 50, 100, 500, 1000, 5000, 10000},
	})

	m.fetchDurationMs = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "upstream",
		Name:      "fetch_duration_milliseconds",
		Help:      "Histogram of end-to-end fetch latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.httpErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "errors_total",
		Help:      "HTTP responses with an error status, by endpoint and error type",
	}, []string{"endpoint", "error_type"})

	m.authRejections = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "auth_rejections_total",
		Help:      "Requests rejected by the authorization gate",
	})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "memory_usage_bytes",
		Help:      "Current allocated heap memory in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "goroutine_count",
		Help:      "Current number of goroutines",
	})
}

// Package-level helpers delegating to the global manager.

// RecordReportServed increments the served counter for a report type.
func RecordReportServed(report string) {
	globalManager.reportsServed.WithLabelValues(report).Inc()
}

// RecordFilteredRecords observes how many records survived filtering.
func RecordFilteredRecords(count int) {
	globalManager.recordsFiltered.Observe(float64(count))
}

// RecordFetchAttempt counts one candidate-window request.
func RecordFetchAttempt() {
	globalManager.fetchAttempts.Inc()
}

// RecordFetchFailure counts a failed candidate-window request.
// kind is one of "transport", "status", "decode".
func RecordFetchFailure(kind string) {
	globalManager.fetchFailures.WithLabelValues(kind).Inc()
}

// RecordFetchFallback counts a fetch answered by a non-primary candidate.
func RecordFetchFallback() {
	globalManager.fetchFallbacks.Inc()
}

// RecordFetchedRecords observes the raw record count of a successful fetch.
func RecordFetchedRecords(count int) {
	globalManager.recordsFetched.Observe(float64(count))
}

// RecordFetchDuration observes end-to-end fetch latency in milliseconds.
func RecordFetchDuration(ms float64) {
	globalManager.fetchDurationMs.Observe(ms)
}

// RecordHTTPRequest counts an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes HTTP request latency in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
}

// RecordHTTPError counts an error response.
func RecordHTTPError(endpoint, errorType string) {
	globalManager.httpErrors.WithLabelValues(endpoint, errorType).Inc()
}

// RecordAuthRejection counts a request rejected by the authorization gate.
func RecordAuthRejection() {
	globalManager.authRejections.Inc()
}

// UpdateSystemMemoryUsage sets the current heap allocation gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine count gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom registry serving /healthz.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
