package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce       sync.Once
	httpRequestsTotal  *prometheus.CounterVec
	httpLatencySeconds *prometheus.HistogramVec
	httpErrorsTotal    *prometheus.CounterVec
	mutationsTotal     *prometheus.CounterVec
	loginAttemptsTotal *prometheus.CounterVec
	uploadRequests     *prometheus.CounterVec
	uploadRejected     *prometheus.CounterVec
	uploadLatency      prometheus.Histogram
	dashboardCache     *prometheus.CounterVec
	eventsPublished    *prometheus.CounterVec
	eventSubscribers   prometheus.Gauge
)

// RegisterMetrics initialises the Prometheus collectors exposed on /metrics.
func RegisterMetrics() {
	registerOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		httpLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "api_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		httpErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		mutationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "resource_mutations_total",
			Help: "Successful create, update and delete operations per resource.",
		}, []string{"resource", "action"})

		loginAttemptsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Login attempts grouped by account kind and outcome.",
		}, []string{"role", "outcome"})

		uploadRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "upload_requests_total",
			Help: "Stored uploads grouped by detected type.",
		}, []string{"type"})

		uploadRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "upload_rejected_total",
			Help: "Rejected uploads grouped by reason.",
		}, []string{"reason"})

		uploadLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "upload_latency_seconds",
			Help:    "Time spent validating and storing uploads.",
			Buckets: prometheus.DefBuckets,
		})

		dashboardCache = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_cache_total",
			Help: "Dashboard cache lookups grouped by result.",
		}, []string{"result"})

		eventsPublished = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "change_events_published_total",
			Help: "Change events published grouped by transport.",
		}, []string{"transport"})

		eventSubscribers = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "change_event_subscribers",
			Help: "Currently connected change event subscribers.",
		})

		prometheus.MustRegister(
			httpRequestsTotal,
			httpLatencySeconds,
			httpErrorsTotal,
			mutationsTotal,
			loginAttemptsTotal,
			uploadRequests,
			uploadRejected,
			uploadLatency,
			dashboardCache,
			eventsPublished,
			eventSubscribers,
		)
	})
}

// HTTPRequests exposes the counter for API requests.
func HTTPRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}

// HTTPLatency exposes the latency histogram for API requests.
func HTTPLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return httpLatencySeconds
}

// HTTPErrors exposes the counter for API error responses.
func HTTPErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return httpErrorsTotal
}

// Mutations exposes the counter of successful resource mutations.
func Mutations() *prometheus.CounterVec {
	RegisterMetrics()
	return mutationsTotal
}

// LoginAttempts exposes the login outcome counter.
func LoginAttempts() *prometheus.CounterVec {
	RegisterMetrics()
	return loginAttemptsTotal
}

// UploadRequests exposes the counter of stored uploads.
func UploadRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return uploadRequests
}

// UploadRejected exposes the counter of rejected uploads.
func UploadRejected() *prometheus.CounterVec {
	RegisterMetrics()
	return uploadRejected
}

// UploadLatency exposes the upload latency histogram.
func UploadLatency() prometheus.Histogram {
	RegisterMetrics()
	return uploadLatency
}

// DashboardCache exposes the dashboard cache hit/miss counter.
func DashboardCache() *prometheus.CounterVec {
	RegisterMetrics()
	return dashboardCache
}

// EventsPublished exposes the change event publish counter.
func EventsPublished() *prometheus.CounterVec {
	RegisterMetrics()
	return eventsPublished
}

// EventSubscribers exposes the gauge of connected websocket subscribers.
func EventSubscribers() prometheus.Gauge {
	RegisterMetrics()
	return eventSubscribers
}
