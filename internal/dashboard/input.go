package dashboard

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/oceandata/fisherman-cli/internal/model"
)

// CatchInput is a catch report as entered in a form or request body, with
// enums as free text.
type CatchInput struct {
	Species         string  `json:"species"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	CatchWeight     float64 `json:"catch_weight"`
	IndividualCount int     `json:"individual_count"`
	GearType        string  `json:"gear_type"`
	VesselType      string  `json:"vessel_type"`
	FishingDepth    float64 `json:"fishing_depth"`
	Timestamp       string  `json:"timestamp,omitempty"`
}

// Report converts the input. A blank timestamp means now.
func (in CatchInput) Report(now time.Time) (model.CatchReport, error) {
	gear, err := model.ParseGearType(in.GearType)
	if err != nil {
		return model.CatchReport{}, invalid(err)
	}
	vessel, err := model.ParseVesselType(in.VesselType)
	if err != nil {
		return model.CatchReport{}, invalid(err)
	}
	ts, err := parseTime(in.Timestamp, now)
	if err != nil {
		return model.CatchReport{}, invalid(err)
	}

	return model.CatchReport{
		Species:         strings.TrimSpace(in.Species),
		Latitude:        in.Latitude,
		Longitude:       in.Longitude,
		CatchWeight:     in.CatchWeight,
		IndividualCount: in.IndividualCount,
		GearType:        gear,
		VesselType:      vessel,
		FishingDepth:    in.FishingDepth,
		Timestamp:       ts,
	}, nil
}

// FeatureInput is a hand-entered feature record. Numeric fields left out
// (nil) take their defaults; a zero that was entered is kept.
type FeatureInput struct {
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
	MeanSST           *float64 `json:"mean_sst"`
	BiodiversityIndex *float64 `json:"biodiversity_index"`
	GeneticDiversity  *float64 `json:"genetic_diversity"`
	SpeciesRichness   *int     `json:"species_richness"`
	Season            string   `json:"season"`
	SSTCategory       string   `json:"sst_category"`
}

// Features converts the input, filling blanks with defaults.
func (in FeatureInput) Features() (model.EnvironmentalFeatures, error) {
	f := model.EnvironmentalFeatures{
		Latitude:          in.Latitude,
		Longitude:         in.Longitude,
		MeanSST:           valueOr(in.MeanSST, model.DefaultMeanSST),
		BiodiversityIndex: valueOr(in.BiodiversityIndex, model.DefaultBiodiversityIndex),
		GeneticDiversity:  valueOr(in.GeneticDiversity, model.DefaultGeneticDiversity),
		SpeciesRichness:   valueOr(in.SpeciesRichness, model.DefaultSpeciesRichness),
	}
	if in.Season != "" {
		s, err := model.ParseSeason(in.Season)
		if err != nil {
			return f, invalid(err)
		}
		f.Season = s
	}
	if in.SSTCategory != "" {
		c, err := model.ParseSSTCategory(in.SSTCategory)
		if err != nil {
			return f, invalid(err)
		}
		f.SSTCategory = c
	}
	return f, nil
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// EDNAInput is an eDNA sample as entered.
type EDNAInput struct {
	SampleID          string  `json:"sample_id"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	SampleDate        string  `json:"sample_date"`
	BiodiversityIndex float64 `json:"biodiversity_index"`
	SpeciesRichness   int     `json:"species_richness"`
	GeneticDiversity  float64 `json:"genetic_diversity"`
	DominantSpecies   string  `json:"dominant_species"`
}

// Sample converts the input. A blank date means today.
func (in EDNAInput) Sample(now time.Time) (model.EDNASample, error) {
	date, err := parseTime(in.SampleDate, now)
	if err != nil {
		return model.EDNASample{}, invalid(err)
	}
	return model.EDNASample{
		SampleID:          strings.TrimSpace(in.SampleID),
		Latitude:          in.Latitude,
		Longitude:         in.Longitude,
		SampleDate:        date,
		BiodiversityIndex: in.BiodiversityIndex,
		SpeciesRichness:   in.SpeciesRichness,
		GeneticDiversity:  in.GeneticDiversity,
		DominantSpecies:   strings.TrimSpace(in.DominantSpecies),
	}, nil
}

// parseTime accepts RFC 3339 or a bare date.
func parseTime(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, eris.Errorf("unrecognized time %q, want RFC 3339 or YYYY-MM-DD", s)
}
