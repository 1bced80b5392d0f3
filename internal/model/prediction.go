package model

import "time"

// PredictionSource identifies who produced a prediction.
type PredictionSource string

const (
	// PredictionFromModel is a prediction returned by the remote ML service.
	PredictionFromModel PredictionSource = "model"
	// PredictionFromHeuristic is a local estimate used when the model is unavailable.
	PredictionFromHeuristic PredictionSource = "heuristic"
)

// PredictionResult is the species abundance prediction shown to the user.
type PredictionResult struct {
	Prediction       float64          `json:"prediction"`
	Confidence       float64          `json:"confidence"`
	ModelVersion     string           `json:"model_version"`
	PredictedSpecies string           `json:"predicted_species"`
	Source           PredictionSource `json:"source"`
}

// WeatherSource identifies where a weather reading came from.
type WeatherSource string

const (
	WeatherFromOpenWeather WeatherSource = "openweather"
	WeatherFromFallback    WeatherSource = "fallback"
)

// WeatherReading is the subset of current conditions the dashboard uses.
// SST is approximated by the air temperature reported by the provider.
type WeatherReading struct {
	SST       float64       `json:"sst"`
	WindSpeed float64       `json:"wind_speed"`
	Humidity  float64       `json:"humidity"`
	Pressure  float64       `json:"pressure"`
	Source    WeatherSource `json:"source"`

	// Set only for provider readings.
	Description string     `json:"description,omitempty"`
	ObservedAt  *time.Time `json:"observed_at,omitempty"`
}
