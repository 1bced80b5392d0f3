package dashboard

import (
	"github.com/oceandata/fisherman-cli/internal/model"
	"github.com/oceandata/fisherman-cli/pkg/oceanapi"
)

// Abundance is the fishing outlook implied by a prediction.
type Abundance string

const (
	AbundanceExcellent   Abundance = "excellent"
	AbundanceGood        Abundance = "good"
	AbundanceChallenging Abundance = "challenging"
)

// Thresholds for the insight rules.
const (
	excellentAbove   = 20.0
	goodAbove        = 15.0
	highSSTAbove     = 30.0
	lowBiodivBelow   = 0.6
	strongWindAbove  = 10.0 // m/s
	moderateWindFrom = 6.0  // m/s
)

// Insights are the recommendations shown under a prediction.
type Insights struct {
	Abundance       Abundance `json:"abundance"`
	Summary         string    `json:"summary"`
	Recommendations []string  `json:"recommendations,omitempty"`
}

// InsightsFor rates a prediction and adds hints from the environment.
func InsightsFor(p model.PredictionResult, f model.EnvironmentalFeatures) Insights {
	var ins Insights
	switch {
	case p.Prediction > excellentAbove:
		ins.Abundance = AbundanceExcellent
		ins.Summary = "Excellent fishing conditions. High species abundance predicted."
	case p.Prediction > goodAbove:
		ins.Abundance = AbundanceGood
		ins.Summary = "Good fishing conditions. Moderate species abundance expected."
	default:
		ins.Abundance = AbundanceChallenging
		ins.Summary = "Challenging conditions. Lower species abundance predicted."
	}

	if f.MeanSST > highSSTAbove {
		ins.Recommendations = append(ins.Recommendations, "High SST detected: consider fishing in deeper waters.")
	}
	if f.BiodiversityIndex < lowBiodivBelow {
		ins.Recommendations = append(ins.Recommendations, "Low biodiversity: this area may be overfished.")
	}
	if p.Source == model.PredictionFromHeuristic {
		ins.Recommendations = append(ins.Recommendations, "Model unavailable: this is a local estimate.")
	}
	return ins
}

// Heuristic is the local abundance estimate used for manual predictions
// when the model cannot answer.
func Heuristic(f model.EnvironmentalFeatures) model.PredictionResult {
	return model.PredictionResult{
		Prediction:       15 + (f.MeanSST-28)*2 + f.BiodiversityIndex*10,
		Confidence:       oceanapi.DefaultConfidence,
		ModelVersion:     "heuristic",
		PredictedSpecies: oceanapi.DefaultPredictedSpecies,
		Source:           model.PredictionFromHeuristic,
	}
}

// WeatherAdvisories turns a reading into short advisories for small vessels.
func WeatherAdvisories(r model.WeatherReading) []string {
	var out []string
	switch {
	case r.WindSpeed > strongWindAbove:
		out = append(out, "Strong winds: small vessels should stay in port.")
	case r.WindSpeed >= moderateWindFrom:
		out = append(out, "Moderate wind conditions.")
	default:
		out = append(out, "Calm winds, safe for small vessels.")
	}
	if r.SST > highSSTAbove {
		out = append(out, "High sea surface temperature: fish may be holding deeper.")
	}
	if r.Source == model.WeatherFromFallback {
		out = append(out, "Live weather unavailable: values are estimates.")
	}
	return out
}
