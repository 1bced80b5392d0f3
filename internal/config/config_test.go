package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://ocean-mvp-backend.onrender.com", cfg.API.BaseURL)
	assert.Equal(t, cfg.API.BaseURL, cfg.API.PredictURL)
	assert.Equal(t, 30, cfg.API.TimeoutSecs)
	assert.Empty(t, cfg.API.Token)
	assert.Equal(t, "http://api.openweathermap.org/data/2.5/weather", cfg.OpenWeather.BaseURL)
	assert.Equal(t, "metric", cfg.OpenWeather.Units)
	assert.Equal(t, 10, cfg.OpenWeather.CacheTTLMins)
	assert.Equal(t, 60, cfg.OpenWeather.RatePerMin)
	assert.Equal(t, 3, cfg.OpenWeather.FailureThreshold)
	assert.Equal(t, 60, cfg.OpenWeather.ResetSecs)
	assert.Empty(t, cfg.OpenWeather.Key)
	assert.Empty(t, cfg.Zones.File)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
api:
  base_url: http://localhost:8000
  predict_url: http://localhost:9000
log:
  level: debug
  format: console
server:
  port: 9090
  allowed_origins:
    - https://app.example.org
zones:
  file: zones.yaml
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, "http://localhost:9000", cfg.API.PredictURL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://app.example.org"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "zones.yaml", cfg.Zones.File)
	// Defaults still apply for unset values
	assert.Equal(t, 30, cfg.API.TimeoutSecs)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
api:
  base_url: http://from-file
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("FISHERMAN_API_BASE_URL", "http://from-env")
	t.Setenv("FISHERMAN_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, "http://from-env", cfg.API.BaseURL)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	chdirTemp(t)

	t.Setenv("FISHERMAN_SERVER_PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestLoadUnprefixedEnv(t *testing.T) {
	chdirTemp(t)

	t.Setenv("API_BASE_URL", "http://base")
	t.Setenv("PREDICT_API_URL", "http://predict")
	t.Setenv("OPENWEATHER_API_KEY", "owm-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://base", cfg.API.BaseURL)
	assert.Equal(t, "http://predict", cfg.API.PredictURL)
	assert.Equal(t, "owm-key", cfg.OpenWeather.Key)
}

func TestLoadPredictURLFollowsBase(t *testing.T) {
	chdirTemp(t)

	t.Setenv("API_BASE_URL", "http://base")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://base", cfg.API.PredictURL)
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}

// validDefaults returns a Config with all defaults populated for validation tests.
func validDefaults() *Config {
	cfg := &Config{}
	cfg.API.BaseURL = "https://ocean-mvp-backend.onrender.com"
	cfg.API.PredictURL = "https://ocean-mvp-backend.onrender.com"
	cfg.API.TimeoutSecs = 30
	cfg.OpenWeather.Units = "metric"
	cfg.OpenWeather.RatePerMin = 60
	cfg.OpenWeather.CacheTTLMins = 10
	cfg.Server.Port = 8080
	return cfg
}

func TestValidateCLI(t *testing.T) {
	cfg := validDefaults()
	cfg.Server.Port = 0

	assert.NoError(t, cfg.Validate("cli"))
}

func TestValidateServe_ValidPort(t *testing.T) {
	cfg := validDefaults()
	cfg.Server.Port = 9090

	assert.NoError(t, cfg.Validate("serve"))
}

func TestValidateServe_InvalidPort(t *testing.T) {
	cfg := validDefaults()
	cfg.Server.Port = 0

	err := cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server.port must be > 0")
}

func TestValidateUnknownMode(t *testing.T) {
	cfg := validDefaults()
	err := cfg.Validate("unknown")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestValidateAPIURLs(t *testing.T) {
	cfg := validDefaults()
	cfg.API.BaseURL = ""
	cfg.API.PredictURL = "not a url"

	err := cfg.Validate("cli")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "api.base_url is required")
	assert.Contains(t, err.Error(), "api.predict_url must be an absolute URL")
}

func TestValidateOpenWeather(t *testing.T) {
	cfg := validDefaults()
	cfg.OpenWeather.Units = "kelvin"
	cfg.OpenWeather.RatePerMin = -1

	err := cfg.Validate("cli")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "openweather.units")
	assert.Contains(t, err.Error(), "rate_per_min")

	cfg.OpenWeather.Units = ""
	cfg.OpenWeather.RatePerMin = 0
	assert.NoError(t, cfg.Validate("cli"))
}

func TestValidateTimeout(t *testing.T) {
	cfg := validDefaults()
	cfg.API.TimeoutSecs = 0

	err := cfg.Validate("cli")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "api.timeout_secs")
}
