// Package metrics provides Prometheus metrics for upstream calls and
// dashboard outcomes.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors registered for one process. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec

	weatherLookups *prometheus.CounterVec
	circuitState   *prometheus.GaugeVec
	predictions    *prometheus.CounterVec
	submissions    *prometheus.CounterVec
}

// New creates and registers the collectors on a fresh registry.
func New() (*Metrics, error) {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.upstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fisherman_upstream_requests_total",
			Help: "Requests sent to upstream services",
		},
		[]string{"client", "code", "method"},
	)
	m.upstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fisherman_upstream_request_duration_seconds",
			Help:    "Latency of upstream requests",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"client", "code", "method"},
	)
	m.weatherLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fisherman_weather_lookups_total",
			Help: "Weather lookups by where the reading came from",
		},
		[]string{"source"}, // openweather, cache, fallback
	)
	m.circuitState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fisherman_circuit_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"service"},
	)
	m.predictions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fisherman_predictions_total",
			Help: "Prediction requests by outcome",
		},
		[]string{"outcome"}, // model, heuristic, unavailable
	)
	m.submissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fisherman_submissions_total",
			Help: "Form submissions forwarded to the backend",
		},
		[]string{"kind", "status"},
	)

	for _, c := range []prometheus.Collector{
		m.upstreamRequests, m.upstreamDuration, m.weatherLookups,
		m.circuitState, m.predictions, m.submissions,
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// InstrumentTransport wraps next so every request is counted and timed
// under the given client name.
func (m *Metrics) InstrumentTransport(client string, next http.RoundTripper) http.RoundTripper {
	if m == nil {
		return next
	}
	if next == nil {
		next = http.DefaultTransport
	}
	labels := prometheus.Labels{"client": client}
	return promhttp.InstrumentRoundTripperCounter(
		m.upstreamRequests.MustCurryWith(labels),
		promhttp.InstrumentRoundTripperDuration(m.upstreamDuration.MustCurryWith(labels), next),
	)
}

// WeatherLookup counts a lookup served from the given source.
func (m *Metrics) WeatherLookup(source string) {
	if m == nil {
		return
	}
	m.weatherLookups.WithLabelValues(source).Inc()
}

// CircuitState records the numeric state of a named breaker.
func (m *Metrics) CircuitState(service string, state int) {
	if m == nil {
		return
	}
	m.circuitState.WithLabelValues(service).Set(float64(state))
}

// Prediction counts a prediction outcome.
func (m *Metrics) Prediction(outcome string) {
	if m == nil {
		return
	}
	m.predictions.WithLabelValues(outcome).Inc()
}

// Submission counts a form submission by kind ("catch_report", "edna") and status.
func (m *Metrics) Submission(kind, status string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(kind, status).Inc()
}
