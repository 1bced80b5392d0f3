package model

import (
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Season is the meteorological season of the northern hemisphere.
type Season string

const (
	SeasonWinter Season = "Winter"
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonAutumn Season = "Autumn"
)

// SSTCategory bands a sea surface temperature.
type SSTCategory string

const (
	SSTCool     SSTCategory = "Cool"
	SSTModerate SSTCategory = "Moderate"
	SSTWarm     SSTCategory = "Warm"
	SSTHot      SSTCategory = "Hot"
)

// BiodiversityCategory bands a biodiversity index.
type BiodiversityCategory string

const (
	BiodiversityLow    BiodiversityCategory = "Low"
	BiodiversityMedium BiodiversityCategory = "Medium"
	BiodiversityHigh   BiodiversityCategory = "High"
)

var titleCaser = cases.Title(language.English)

func titleWord(s string) string {
	return titleCaser.String(strings.ToLower(strings.TrimSpace(s)))
}

// ParseSeason accepts any casing ("summer", "SUMMER") and returns the Season.
func ParseSeason(s string) (Season, error) {
	switch v := Season(titleWord(s)); v {
	case SeasonWinter, SeasonSpring, SeasonSummer, SeasonAutumn:
		return v, nil
	}
	return "", eris.Errorf("model: unknown season %q", s)
}

// ParseSSTCategory accepts any casing and returns the SSTCategory.
func ParseSSTCategory(s string) (SSTCategory, error) {
	switch v := SSTCategory(titleWord(s)); v {
	case SSTCool, SSTModerate, SSTWarm, SSTHot:
		return v, nil
	}
	return "", eris.Errorf("model: unknown sst category %q", s)
}

// EnvironmentalFeatures is the derived feature record consumed by a
// prediction request. Values are unrounded; the wire encoding rounds.
type EnvironmentalFeatures struct {
	Latitude             float64              `json:"latitude"`
	Longitude            float64              `json:"longitude"`
	MeanSST              float64              `json:"mean_sst"`
	BiodiversityIndex    float64              `json:"biodiversity_index"`
	GeneticDiversity     float64              `json:"genetic_diversity"`
	SpeciesRichness      int                  `json:"species_richness"`
	Season               Season               `json:"season"`
	SSTCategory          SSTCategory          `json:"sst_category"`
	BiodiversityCategory BiodiversityCategory `json:"biodiversity_category"`
}

// Defaults for features left blank in hand-entered input. Derived
// features never need them.
const (
	DefaultMeanSST           = 28.0
	DefaultBiodiversityIndex = 0.75
	DefaultGeneticDiversity  = 0.68
	DefaultSpeciesRichness   = 12
	DefaultSeason            = SeasonSummer
)
