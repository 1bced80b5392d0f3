package features

import (
	"math"
	"time"

	"github.com/oceandata/fisherman-cli/internal/model"
)

// DefaultSpeciesRichness applies to gear types missing from the table.
const DefaultSpeciesRichness = 10

var gearRichness = map[model.GearType]int{
	model.GearLongline:   8,
	model.GearGillnet:    12,
	model.GearPurseSeine: 15,
	model.GearTrawl:      20,
	model.GearHandline:   6,
}

var monthSeason = [12]model.Season{
	model.SeasonWinter, model.SeasonWinter, // Jan, Feb
	model.SeasonSpring, model.SeasonSpring, model.SeasonSpring,
	model.SeasonSummer, model.SeasonSummer, model.SeasonSummer,
	model.SeasonAutumn, model.SeasonAutumn, model.SeasonAutumn,
	model.SeasonWinter, // Dec
}

// FallbackSST approximates sea surface temperature from latitude alone.
// It is deterministic so that lookups failing in tests are reproducible.
func FallbackSST(lat float64) float64 {
	return 28.0 + (lat-12)*0.1
}

// BiodiversityIndex scores catch success on [0.5, 1.0].
func BiodiversityIndex(catchWeight float64, individualCount int) float64 {
	return math.Min(1.0, 0.5+catchWeight/10+float64(individualCount)/20)
}

// GeneticDiversity is a linear function of the biodiversity index.
func GeneticDiversity(biodiversityIndex float64) float64 {
	return 0.6 + (biodiversityIndex-0.5)*0.4
}

// SpeciesRichness returns the expected richness for the gear type.
func SpeciesRichness(g model.GearType) int {
	if r, ok := gearRichness[g]; ok {
		return r
	}
	return DefaultSpeciesRichness
}

// SeasonFor maps a calendar month to its season.
func SeasonFor(m time.Month) model.Season {
	if m < time.January || m > time.December {
		return model.SeasonSummer
	}
	return monthSeason[m-1]
}

// SSTCategoryFor bands a temperature: <26 Cool, [26,29) Moderate, [29,31) Warm, >=31 Hot.
func SSTCategoryFor(sst float64) model.SSTCategory {
	switch {
	case sst < 26:
		return model.SSTCool
	case sst < 29:
		return model.SSTModerate
	case sst < 31:
		return model.SSTWarm
	default:
		return model.SSTHot
	}
}

// BiodiversityCategoryFor bands a biodiversity index.
func BiodiversityCategoryFor(index float64) model.BiodiversityCategory {
	switch {
	case index > 0.8:
		return model.BiodiversityHigh
	case index > 0.6:
		return model.BiodiversityMedium
	default:
		return model.BiodiversityLow
	}
}

// Complete fills the categorical fields of a feature record: missing
// categories are derived from the values, a missing season takes the default.
// Numeric values are kept as given, zero included.
func Complete(f model.EnvironmentalFeatures) model.EnvironmentalFeatures {
	if f.SSTCategory == "" {
		f.SSTCategory = SSTCategoryFor(f.MeanSST)
	}
	if f.BiodiversityCategory == "" {
		f.BiodiversityCategory = BiodiversityCategoryFor(f.BiodiversityIndex)
	}
	if f.Season == "" {
		f.Season = model.DefaultSeason
	}
	return f
}
