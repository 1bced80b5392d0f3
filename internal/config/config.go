package config

import (
	"net/url"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	API         APIConfig         `yaml:"api" mapstructure:"api"`
	OpenWeather OpenWeatherConfig `yaml:"openweather" mapstructure:"openweather"`
	Zones       ZonesConfig       `yaml:"zones" mapstructure:"zones"`
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Log         LogConfig         `yaml:"log" mapstructure:"log"`
}

// APIConfig points at the ocean data platform backend.
type APIConfig struct {
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	PredictURL  string `yaml:"predict_url" mapstructure:"predict_url"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	Token       string `yaml:"token" mapstructure:"token"`
}

// OpenWeatherConfig configures the current-weather lookup. An empty key
// disables it and every reading uses the fallback.
type OpenWeatherConfig struct {
	Key              string `yaml:"key" mapstructure:"key"`
	BaseURL          string `yaml:"base_url" mapstructure:"base_url"`
	Units            string `yaml:"units" mapstructure:"units"`
	TimeoutSecs      int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	CacheTTLMins     int    `yaml:"cache_ttl_mins" mapstructure:"cache_ttl_mins"`
	RatePerMin       int    `yaml:"rate_per_min" mapstructure:"rate_per_min"`
	FailureThreshold int    `yaml:"failure_threshold" mapstructure:"failure_threshold"`
	ResetSecs        int    `yaml:"reset_secs" mapstructure:"reset_secs"`
}

// ZonesConfig points at an optional zone definitions file.
type ZonesConfig struct {
	File string `yaml:"file" mapstructure:"file"`
}

// ServerConfig configures the JSON API server.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("FISHERMAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unprefixed names used by existing deployments.
	for key, envs := range map[string][]string{
		"api.base_url":    {"FISHERMAN_API_BASE_URL", "API_BASE_URL"},
		"api.predict_url": {"FISHERMAN_API_PREDICT_URL", "PREDICT_API_URL"},
		"openweather.key": {"FISHERMAN_OPENWEATHER_KEY", "OPENWEATHER_API_KEY"},
	} {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, eris.Wrapf(err, "config: bind env %s", key)
		}
	}

	// Defaults
	v.SetDefault("api.base_url", "https://ocean-mvp-backend.onrender.com")
	v.SetDefault("api.timeout_secs", 30)
	v.SetDefault("openweather.base_url", "http://api.openweathermap.org/data/2.5/weather")
	v.SetDefault("openweather.units", "metric")
	v.SetDefault("openweather.timeout_secs", 5)
	v.SetDefault("openweather.cache_ttl_mins", 10)
	v.SetDefault("openweather.rate_per_min", 60)
	v.SetDefault("openweather.failure_threshold", 3)
	v.SetDefault("openweather.reset_secs", 60)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if cfg.API.PredictURL == "" {
		cfg.API.PredictURL = cfg.API.BaseURL
	}

	return &cfg, nil
}

// Validate checks the values needed by a command mode ("cli" or "serve").
func (c *Config) Validate(mode string) error {
	var errs []string

	switch mode {
	case "cli":
	case "serve":
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			errs = append(errs, "server.port must be > 0 and <= 65535")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	for key, raw := range map[string]string{
		"api.base_url":    c.API.BaseURL,
		"api.predict_url": c.API.PredictURL,
	} {
		if raw == "" {
			errs = append(errs, key+" is required")
			continue
		}
		if u, err := url.Parse(raw); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, key+" must be an absolute URL")
		}
	}
	if c.API.TimeoutSecs <= 0 {
		errs = append(errs, "api.timeout_secs must be > 0")
	}

	switch c.OpenWeather.Units {
	case "", "metric", "imperial", "standard":
	default:
		errs = append(errs, "openweather.units must be metric, imperial or standard")
	}
	if c.OpenWeather.RatePerMin < 0 {
		errs = append(errs, "openweather.rate_per_min must be >= 0")
	}
	if c.OpenWeather.CacheTTLMins < 0 {
		errs = append(errs, "openweather.cache_ttl_mins must be >= 0")
	}

	if len(errs) > 0 {
		return eris.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
