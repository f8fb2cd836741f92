package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the Prometheus instruments of the evaluation service.
// Each Metrics value owns its registry, so constructing a second instance
// (as tests do) never trips duplicate registration.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	activeRequests prometheus.Gauge
	requestsTotal  prometheus.Counter
	evalTotal      *prometheus.CounterVec
	evalDuration   *prometheus.HistogramVec
}

// NewMetrics creates the service metrics on a fresh registry, including
// the Go runtime collectors.
//
// Returns:
//   - *Metrics: The initialized metrics set.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "cerf",
			Name:      "active_requests",
			Help:      "Number of HTTP requests currently being served.",
		}),
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cerf",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests served.",
		}),
		evalTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cerf",
			Name:      "evaluations_total",
			Help:      "Total number of function evaluations by function name.",
		}, []string{"function"}),
		evalDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cerf",
			Name:      "evaluation_duration_seconds",
			Help:      "Function evaluation latency by function name.",
			Buckets:   prometheus.ExponentialBuckets(50e-9, 4, 10),
		}, []string{"function"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		m.activeRequests,
		m.requestsTotal,
		m.evalTotal,
		m.evalDuration,
	)

	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveRequests increments the in-flight request gauge.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
}

// DecrementActiveRequests decrements the in-flight request gauge.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// CountRequest increments the total request counter.
func (m *Metrics) CountRequest() {
	m.requestsTotal.Inc()
}

// ObserveEvaluation records one evaluation of the named function.
//
// Parameters:
//   - function: The evaluated function name.
//   - d: The evaluation wall time.
func (m *Metrics) ObserveEvaluation(function string, d time.Duration) {
	m.evalTotal.WithLabelValues(function).Inc()
	m.evalDuration.WithLabelValues(function).Observe(d.Seconds())
}

// WritePrometheus serves the registry in the Prometheus text format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
