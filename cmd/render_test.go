package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oceandata/fisherman-cli/internal/dashboard"
	"github.com/oceandata/fisherman-cli/internal/model"
)

func TestRenderWeather(t *testing.T) {
	at := time.Date(2026, 5, 1, 6, 0, 0, 0, time.UTC)
	out := &dashboard.WeatherOutcome{
		Reading: model.WeatherReading{
			SST: 29.4, WindSpeed: 5.2, Humidity: 80, Pressure: 1009,
			Source:      model.WeatherFromOpenWeather,
			Description: "scattered clouds",
			ObservedAt:  &at,
		},
	}

	var buf bytes.Buffer
	renderWeather(&buf, out)

	assert.Contains(t, buf.String(), "Temperature: 29.4°C")
	assert.Contains(t, buf.String(), "Conditions: scattered clouds")
	assert.Contains(t, buf.String(), "Observed: 2026-05-01T06:00:00Z")

	buf.Reset()
	renderWeather(&buf, &dashboard.WeatherOutcome{Reading: model.WeatherReading{SST: 28, Source: model.WeatherFromFallback}})
	assert.NotContains(t, buf.String(), "Conditions:")
	assert.NotContains(t, buf.String(), "Observed:")
}
