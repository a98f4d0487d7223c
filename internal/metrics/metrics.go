// Package metrics holds the Prometheus collectors of the service. All
// methods are safe on a nil *Metrics, which records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "andromeda"

// Outcome label values.
const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeAuth    = "auth_expired"
	OutcomeSkipped = "skipped"
)

// Metrics owns a private registry so tests can build as many instances as
// they need.
type Metrics struct {
	registry *prometheus.Registry

	vendorCalls   *prometheus.CounterVec
	vendorLatency *prometheus.HistogramVec
	ruleActions   *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpLatency   *prometheus.HistogramVec
}

// New registers every collector plus the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		vendorCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "vendor",
			Name:      "requests_total",
			Help:      "Outbound vendor API calls by vendor, operation and outcome.",
		}, []string{"vendor", "operation", "outcome"}),
		vendorLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "vendor",
			Name:      "request_duration_seconds",
			Help:      "Outbound vendor API call latency.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"vendor"}),
		ruleActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "optimizer",
			Name:      "rule_actions_total",
			Help:      "Actions fired by rule evaluation.",
		}, []string{"platform", "action", "outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Handled HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP handler latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.vendorCalls,
		m.vendorLatency,
		m.ruleActions,
		m.httpRequests,
		m.httpLatency,
	)
	return m
}

// Registry exposes the registry for tests and custom handlers.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{ErrorHandling: promhttp.ContinueOnError})
}

// ObserveVendorCall records one outbound call.
func (m *Metrics) ObserveVendorCall(vendor, operation, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.vendorCalls.WithLabelValues(vendor, operation, outcome).Inc()
	m.vendorLatency.WithLabelValues(vendor).Observe(d.Seconds())
}

// ObserveRuleAction records one attempted rule action.
func (m *Metrics) ObserveRuleAction(platform, action, outcome string) {
	if m == nil {
		return
	}
	m.ruleActions.WithLabelValues(platform, action, outcome).Inc()
}

// ObserveHTTP records one handled request. route is the chi route pattern,
// never the raw path.
func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpLatency.WithLabelValues(route).Observe(d.Seconds())
}
