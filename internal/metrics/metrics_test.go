package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	t.Parallel()

	m, err := New()
	require.NoError(t, err)

	m.WeatherLookup("fallback")
	m.WeatherLookup("fallback")
	m.Prediction("unavailable")
	m.Submission("catch_report", "success")
	m.CircuitState("openweather", 1)

	assert.InDelta(t, 2, testutil.ToFloat64(m.weatherLookups.WithLabelValues("fallback")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.predictions.WithLabelValues("unavailable")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.submissions.WithLabelValues("catch_report", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.circuitState.WithLabelValues("openweather")), 0)
}

func TestNilMetrics_NoPanic(t *testing.T) {
	t.Parallel()

	var m *Metrics
	assert.NotPanics(t, func() {
		m.WeatherLookup("cache")
		m.Prediction("model")
		m.Submission("edna", "failed")
		m.CircuitState("openweather", 0)
	})
	assert.Equal(t, http.DefaultTransport, m.InstrumentTransport("oceanapi", http.DefaultTransport))
}

func TestInstrumentTransport_CountsRequests(t *testing.T) {
	t.Parallel()

	m, err := New()
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	hc := &http.Client{Transport: m.InstrumentTransport("oceanapi", nil)}
	resp, err := hc.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.InDelta(t, 1, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("oceanapi", "418", "get")), 0)
}

func TestHandler_Exposition(t *testing.T) {
	t.Parallel()

	m, err := New()
	require.NoError(t, err)
	m.Prediction("heuristic")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `fisherman_predictions_total{outcome="heuristic"} 1`))
}
