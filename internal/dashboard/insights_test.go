package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oceandata/fisherman-cli/internal/model"
)

func TestInsightsFor(t *testing.T) {
	t.Parallel()

	calm := model.EnvironmentalFeatures{MeanSST: 28, BiodiversityIndex: 0.75}

	tests := []struct {
		name      string
		pred      float64
		f         model.EnvironmentalFeatures
		abundance Abundance
		hints     int
	}{
		{"excellent", 20.5, calm, AbundanceExcellent, 0},
		{"twenty is good", 20, calm, AbundanceGood, 0},
		{"fifteen is challenging", 15, calm, AbundanceChallenging, 0},
		{"hot water", 18, model.EnvironmentalFeatures{MeanSST: 30.1, BiodiversityIndex: 0.75}, AbundanceGood, 1},
		{"overfished", 18, model.EnvironmentalFeatures{MeanSST: 28, BiodiversityIndex: 0.59}, AbundanceGood, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ins := InsightsFor(model.PredictionResult{Prediction: tt.pred, Source: model.PredictionFromModel}, tt.f)
			assert.Equal(t, tt.abundance, ins.Abundance)
			assert.Len(t, ins.Recommendations, tt.hints)
			assert.NotEmpty(t, ins.Summary)
		})
	}
}

func TestHeuristic(t *testing.T) {
	t.Parallel()

	p := Heuristic(model.EnvironmentalFeatures{MeanSST: 28, BiodiversityIndex: 0.75})
	assert.InDelta(t, 22.5, p.Prediction, 1e-9)
	assert.Equal(t, model.PredictionFromHeuristic, p.Source)

	ins := InsightsFor(p, model.EnvironmentalFeatures{MeanSST: 28, BiodiversityIndex: 0.75})
	assert.Contains(t, ins.Recommendations, "Model unavailable: this is a local estimate.")
}

func TestWeatherAdvisories(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Strong winds: small vessels should stay in port."},
		WeatherAdvisories(model.WeatherReading{WindSpeed: 11, SST: 28, Source: model.WeatherFromOpenWeather}))

	got := WeatherAdvisories(model.WeatherReading{WindSpeed: 12, SST: 31, Source: model.WeatherFromFallback})
	assert.Len(t, got, 3)

	assert.Equal(t, []string{"Moderate wind conditions."},
		WeatherAdvisories(model.WeatherReading{WindSpeed: 6, SST: 25, Source: model.WeatherFromOpenWeather}))
}
