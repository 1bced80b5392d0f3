package oceanapi

import (
	"encoding/json"
	"math"

	"github.com/rotisserie/eris"

	"github.com/oceandata/fisherman-cli/internal/model"
)

// Defaults applied to fields missing from a prediction response.
const (
	DefaultConfidence       = 0.85
	DefaultModelVersion     = "1.0.0"
	DefaultPredictedSpecies = "Unknown"
	DefaultPrediction       = 15.0
)

// predictRequest is the body of POST /api/predict. SST is rounded to one
// decimal and the indices to two.
type predictRequest struct {
	MeanSST              float64 `json:"mean_sst"`
	BiodiversityIndex    float64 `json:"biodiversity_index"`
	GeneticDiversity     float64 `json:"genetic_diversity"`
	SpeciesRichness      int     `json:"species_richness"`
	Season               string  `json:"season"`
	SSTCategory          string  `json:"sst_category"`
	BiodiversityCategory string  `json:"biodiversity_category"`
}

func newPredictRequest(f model.EnvironmentalFeatures) predictRequest {
	return predictRequest{
		MeanSST:              round(f.MeanSST, 1),
		BiodiversityIndex:    round(f.BiodiversityIndex, 2),
		GeneticDiversity:     round(f.GeneticDiversity, 2),
		SpeciesRichness:      f.SpeciesRichness,
		Season:               string(f.Season),
		SSTCategory:          string(f.SSTCategory),
		BiodiversityCategory: string(f.BiodiversityCategory),
	}
}

// predictResponse accepts both shapes the service has been seen to return:
// {"predicted_species_count": n, ...} and {"prediction": n, ...}.
type predictResponse struct {
	PredictedSpeciesCount *float64 `json:"predicted_species_count"`
	Prediction            *float64 `json:"prediction"`
	Confidence            *float64 `json:"confidence"`
	ModelVersion          string   `json:"model_version"`
	PredictedSpecies      string   `json:"predicted_species"`
}

func parsePrediction(body []byte) (*model.PredictionResult, error) {
	var raw predictResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, eris.Wrap(err, "oceanapi: unmarshal prediction")
	}

	count := DefaultPrediction
	switch {
	case raw.PredictedSpeciesCount != nil:
		count = *raw.PredictedSpeciesCount
	case raw.Prediction != nil:
		count = *raw.Prediction
	}

	result := &model.PredictionResult{
		Prediction:       count,
		Confidence:       DefaultConfidence,
		ModelVersion:     DefaultModelVersion,
		PredictedSpecies: DefaultPredictedSpecies,
		Source:           model.PredictionFromModel,
	}
	if raw.Confidence != nil {
		result.Confidence = *raw.Confidence
	}
	if raw.ModelVersion != "" {
		result.ModelVersion = raw.ModelVersion
	}
	if raw.PredictedSpecies != "" {
		result.PredictedSpecies = raw.PredictedSpecies
	}
	return result, nil
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
