package weather

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceandata/fisherman-cli/internal/model"
	"github.com/oceandata/fisherman-cli/internal/resilience"
	"github.com/oceandata/fisherman-cli/pkg/openweather"
)

type stubClient struct {
	calls atomic.Int32
	cond  *openweather.Conditions
	err   error
}

func (s *stubClient) Current(_ context.Context, _, _ float64) (*openweather.Conditions, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.cond, nil
}

func conditions() *openweather.Conditions {
	return &openweather.Conditions{
		Temperature: 29.4,
		WindSpeed:   5.2,
		Humidity:    80,
		Pressure:    1009,
		Description: "scattered clouds",
		ObservedAt:  time.Date(2026, 5, 1, 6, 0, 0, 0, time.UTC),
	}
}

func TestCurrent_FromProvider(t *testing.T) {
	t.Parallel()

	svc := NewService(&stubClient{cond: conditions()}, DefaultConfig(), nil)
	r := svc.Current(context.Background(), 12.5, 74.5)

	assert.Equal(t, model.WeatherFromOpenWeather, r.Source)
	assert.InDelta(t, 29.4, r.SST, 1e-9)
	assert.InDelta(t, 5.2, r.WindSpeed, 1e-9)
	assert.InDelta(t, 80.0, r.Humidity, 1e-9)
	assert.InDelta(t, 1009.0, r.Pressure, 1e-9)
	assert.Equal(t, "scattered clouds", r.Description)
	require.NotNil(t, r.ObservedAt)
	assert.Equal(t, time.Date(2026, 5, 1, 6, 0, 0, 0, time.UTC), *r.ObservedAt)
}

func TestCurrent_FallbackOnError(t *testing.T) {
	t.Parallel()

	svc := NewService(&stubClient{err: errors.New("boom")}, DefaultConfig(), nil)
	r := svc.Current(context.Background(), 12.5, 74.5)

	assert.Equal(t, model.WeatherFromFallback, r.Source)
	assert.InDelta(t, 28.05, r.SST, 1e-9)
	assert.InDelta(t, FallbackWindSpeed, r.WindSpeed, 1e-9)
	assert.InDelta(t, FallbackHumidity, r.Humidity, 1e-9)
	assert.InDelta(t, FallbackPressure, r.Pressure, 1e-9)
	assert.Empty(t, r.Description)
	assert.Nil(t, r.ObservedAt)
}

func TestCurrent_NoClient(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, DefaultConfig(), nil)
	assert.Equal(t, Fallback(10), svc.Current(context.Background(), 10, 70))

	_, err := svc.Temperature(context.Background(), 10, 70)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestTemperature_CachedPerCell(t *testing.T) {
	t.Parallel()

	stub := &stubClient{cond: conditions()}
	svc := NewService(stub, DefaultConfig(), nil)

	for _, p := range [][2]float64{{12.501, 74.499}, {12.504, 74.503}, {12.5, 74.5}} {
		v, err := svc.Temperature(context.Background(), p[0], p[1])
		require.NoError(t, err)
		assert.InDelta(t, 29.4, v, 1e-9)
	}
	assert.Equal(t, int32(1), stub.calls.Load())

	_, err := svc.Temperature(context.Background(), 13.5, 74.5)
	require.NoError(t, err)
	assert.Equal(t, int32(2), stub.calls.Load())
}

func TestTemperature_RateLimited(t *testing.T) {
	t.Parallel()

	stub := &stubClient{cond: conditions()}
	svc := NewService(stub, Config{RatePerMinute: 1}, nil)

	_, err := svc.Temperature(context.Background(), 1, 1)
	require.NoError(t, err)

	_, err = svc.Temperature(context.Background(), 2, 2)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, int32(1), stub.calls.Load())
}

func TestTemperature_BreakerSkipsProvider(t *testing.T) {
	t.Parallel()

	stub := &stubClient{err: errors.New("timeout")}
	svc := NewService(stub, Config{
		Breaker: resilience.CircuitBreakerConfig{FailureThreshold: 2, ResetTimeout: time.Hour},
	}, nil)

	for i := 0; i < 2; i++ {
		_, err := svc.Temperature(context.Background(), float64(i), 0)
		require.Error(t, err)
	}

	_, err := svc.Temperature(context.Background(), 5, 0)
	assert.ErrorIs(t, err, resilience.ErrCircuitOpen)
	assert.Equal(t, int32(2), stub.calls.Load())
}

func TestCacheKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12.50,74.50", cacheKey(12.5, 74.5))
	assert.Equal(t, "-3.14,0.00", cacheKey(-3.1415, 0.001))
}
