package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/oceandata/fisherman-cli/internal/dashboard"
	"github.com/oceandata/fisherman-cli/internal/metrics"
	"github.com/oceandata/fisherman-cli/internal/resilience"
	"github.com/oceandata/fisherman-cli/internal/weather"
	"github.com/oceandata/fisherman-cli/internal/zones"
	"github.com/oceandata/fisherman-cli/pkg/oceanapi"
	"github.com/oceandata/fisherman-cli/pkg/openweather"
)

// dashboardEnv holds the initialized clients and the dashboard service
// shared by every command.
type dashboardEnv struct {
	Service dashboard.Service
	Metrics *metrics.Metrics
	Zones   *zones.Set
}

// initDashboard builds the gateway, weather lookup, zone set and dashboard
// from cfg. mode is passed to cfg.Validate.
func initDashboard(mode string) (*dashboardEnv, error) {
	if err := cfg.Validate(mode); err != nil {
		return nil, err
	}

	m, err := metrics.New()
	if err != nil {
		return nil, eris.Wrap(err, "init metrics")
	}

	api := oceanapi.NewClient(
		oceanapi.WithBaseURL(cfg.API.BaseURL),
		oceanapi.WithPredictBaseURL(cfg.API.PredictURL),
		oceanapi.WithHTTPClient(&http.Client{
			Timeout:   time.Duration(cfg.API.TimeoutSecs) * time.Second,
			Transport: m.InstrumentTransport("oceanapi", http.DefaultTransport),
		}),
	)

	// Without a key the weather service always falls back.
	var owm openweather.Client
	if cfg.OpenWeather.Key != "" {
		owm = openweather.NewClient(cfg.OpenWeather.Key,
			openweather.WithBaseURL(cfg.OpenWeather.BaseURL),
			openweather.WithUnits(cfg.OpenWeather.Units),
			openweather.WithHTTPClient(&http.Client{
				Timeout:   time.Duration(cfg.OpenWeather.TimeoutSecs) * time.Second,
				Transport: m.InstrumentTransport("openweather", http.DefaultTransport),
			}),
		)
	} else {
		zap.L().Debug("openweather key not set, using fallback readings")
	}

	ws := weather.NewService(owm, weather.Config{
		CacheTTL:      time.Duration(cfg.OpenWeather.CacheTTLMins) * time.Minute,
		RatePerMinute: cfg.OpenWeather.RatePerMin,
		Breaker:       resilience.FromCircuitConfig(cfg.OpenWeather.FailureThreshold, cfg.OpenWeather.ResetSecs),
	}, m)

	zs, err := zones.Load(cfg.Zones.File)
	if err != nil {
		return nil, err
	}

	return &dashboardEnv{
		Service: dashboard.New(api, ws, dashboard.WithZones(zs), dashboard.WithMetrics(m)),
		Metrics: m,
		Zones:   zs,
	}, nil
}

// session resolves the session for a command: --token, then --email and
// --password, then api.token. An empty session is allowed; the backend
// decides whether it needs one.
func (e *dashboardEnv) session(ctx context.Context) (oceanapi.Session, error) {
	switch {
	case flagToken != "":
		return oceanapi.Session{Token: flagToken}, nil
	case flagEmail != "":
		return e.Service.Login(ctx, flagEmail, flagPassword)
	default:
		return oceanapi.Session{Token: cfg.API.Token}, nil
	}
}
