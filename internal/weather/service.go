// Package weather turns OpenWeather lookups into the readings used by the
// dashboard. Readings are cached per ~1 km cell, the provider is rate
// limited, and a circuit breaker skips it while it is failing. Callers that
// need a value regardless get the deterministic latitude fallback.
package weather

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/oceandata/fisherman-cli/internal/features"
	"github.com/oceandata/fisherman-cli/internal/metrics"
	"github.com/oceandata/fisherman-cli/internal/model"
	"github.com/oceandata/fisherman-cli/internal/resilience"
	"github.com/oceandata/fisherman-cli/pkg/openweather"
)

// Values reported alongside the fallback temperature.
const (
	FallbackWindSpeed = 12.0
	FallbackHumidity  = 75.0
	FallbackPressure  = 1013.0
)

var (
	// ErrNotConfigured is returned when no provider client is set.
	ErrNotConfigured = eris.New("weather: provider not configured")
	// ErrRateLimited is returned when the provider budget is spent.
	ErrRateLimited = eris.New("weather: provider rate limit reached")
)

// Config tunes the lookup path.
type Config struct {
	CacheTTL      time.Duration
	RatePerMinute int
	Breaker       resilience.CircuitBreakerConfig
}

// DefaultConfig matches the OpenWeather free tier.
func DefaultConfig() Config {
	return Config{
		CacheTTL:      10 * time.Minute,
		RatePerMinute: 60,
		Breaker:       resilience.DefaultCircuitBreakerConfig(),
	}
}

// Service looks up current conditions. It is safe for concurrent use.
type Service struct {
	client  openweather.Client
	cache   *gocache.Cache
	limiter *rate.Limiter
	breaker *resilience.CircuitBreaker
	metrics *metrics.Metrics
}

// NewService creates a Service. client may be nil, in which case every
// lookup falls back.
func NewService(client openweather.Client, cfg Config, m *metrics.Metrics) *Service {
	def := DefaultConfig()
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = def.CacheTTL
	}
	if cfg.RatePerMinute <= 0 {
		cfg.RatePerMinute = def.RatePerMinute
	}

	breakerCfg := cfg.Breaker
	breakerCfg.OnStateChange = func(from, to resilience.CircuitState) {
		zap.L().Warn("weather circuit state changed",
			zap.String("from", from.String()),
			zap.String("to", to.String()),
		)
		m.CircuitState("openweather", int(to))
	}

	return &Service{
		client:  client,
		cache:   gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		limiter: rate.NewLimiter(rate.Limit(float64(cfg.RatePerMinute)/60.0), cfg.RatePerMinute),
		breaker: resilience.NewCircuitBreaker(breakerCfg),
		metrics: m,
	}
}

// Temperature returns the provider's current temperature for the point.
// It does not fall back; the feature deriver owns that decision.
func (s *Service) Temperature(ctx context.Context, lat, lon float64) (float64, error) {
	c, err := s.lookup(ctx, lat, lon)
	if err != nil {
		s.metrics.WeatherLookup(string(model.WeatherFromFallback))
		return 0, err
	}
	return c.Temperature, nil
}

// Current returns a reading for the point, falling back to the latitude
// approximation when the provider cannot answer.
func (s *Service) Current(ctx context.Context, lat, lon float64) model.WeatherReading {
	c, err := s.lookup(ctx, lat, lon)
	if err != nil {
		zap.L().Info("weather lookup failed, using fallback",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Error(err),
		)
		s.metrics.WeatherLookup(string(model.WeatherFromFallback))
		return Fallback(lat)
	}
	r := model.WeatherReading{
		SST:         c.Temperature,
		WindSpeed:   c.WindSpeed,
		Humidity:    c.Humidity,
		Pressure:    c.Pressure,
		Source:      model.WeatherFromOpenWeather,
		Description: c.Description,
	}
	if !c.ObservedAt.IsZero() {
		at := c.ObservedAt
		r.ObservedAt = &at
	}
	return r
}

// Fallback is the reading used when the provider is unavailable.
func Fallback(lat float64) model.WeatherReading {
	return model.WeatherReading{
		SST:       features.FallbackSST(lat),
		WindSpeed: FallbackWindSpeed,
		Humidity:  FallbackHumidity,
		Pressure:  FallbackPressure,
		Source:    model.WeatherFromFallback,
	}
}

func (s *Service) lookup(ctx context.Context, lat, lon float64) (*openweather.Conditions, error) {
	key := cacheKey(lat, lon)
	if v, ok := s.cache.Get(key); ok {
		s.metrics.WeatherLookup("cache")
		return v.(*openweather.Conditions), nil
	}

	if s.client == nil {
		return nil, ErrNotConfigured
	}
	if !s.limiter.Allow() {
		return nil, ErrRateLimited
	}

	c, err := resilience.ExecuteVal(ctx, s.breaker, func(ctx context.Context) (*openweather.Conditions, error) {
		return s.client.Current(ctx, lat, lon)
	})
	if err != nil {
		return nil, eris.Wrap(err, "weather: lookup")
	}

	s.cache.Set(key, c, gocache.DefaultExpiration)
	s.metrics.WeatherLookup(string(model.WeatherFromOpenWeather))
	return c, nil
}

// cacheKey buckets coordinates to two decimals (~1.1 km at the equator).
func cacheKey(lat, lon float64) string {
	return fmt.Sprintf("%.2f,%.2f", lat, lon)
}
