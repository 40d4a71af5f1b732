package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

// Registry owns the service's collectors. A nil *Registry is valid and
// records nothing.
type Registry struct {
	reg *prometheus.Registry

	requests      *prometheus.CounterVec
	latencyMS     *prometheus.HistogramVec
	ordersCreated *prometheus.CounterVec
	transitions   *prometheus.CounterVec
	verifications *prometheus.CounterVec
}

// New creates a Registry with all collectors registered
func New() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"handler", "status"}),
		latencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"handler"}),
		ordersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Orders created, by source.",
		}, []string{"source"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "transitions_total",
			Help:      "Order mutations, by operation and result kind.",
		}, []string{"operation", "result"}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "signature_verifications_total",
			Help:      "Payment signature checks, by outcome.",
		}, []string{"outcome"}),
	}
	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.requests, r.latencyMS, r.ordersCreated, r.transitions, r.verifications,
	)
	return r
}

// Handler exposes the registry in the prometheus text format
func (r *Registry) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Gatherer returns the underlying gatherer, mainly for tests
func (r *Registry) Gatherer() prometheus.Gatherer {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.reg
}

// ObserveRequest records one HTTP request
func (r *Registry) ObserveRequest(handler string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(handler, strconv.Itoa(status)).Inc()
	r.latencyMS.WithLabelValues(handler).Observe(float64(elapsed.Milliseconds()))
}

// OrderCreated counts a persisted order; source is "checkout" or "direct"
func (r *Registry) OrderCreated(source string) {
	if r == nil {
		return
	}
	r.ordersCreated.WithLabelValues(source).Inc()
}

// Transition counts a mutation attempt; result is "ok" or an error kind
func (r *Registry) Transition(operation, result string) {
	if r == nil {
		return
	}
	r.transitions.WithLabelValues(operation, result).Inc()
}

// SignatureVerification counts a payment signature check outcome
func (r *Registry) SignatureVerification(outcome string) {
	if r == nil {
		return
	}
	r.verifications.WithLabelValues(outcome).Inc()
}
