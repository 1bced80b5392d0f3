package dashboard

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceandata/fisherman-cli/internal/model"
)

var fixedNow = time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)

func TestCatchInput_Report(t *testing.T) {
	t.Parallel()

	r, err := CatchInput{
		Species:         " Sardine ",
		Latitude:        12.1,
		Longitude:       74.9,
		CatchWeight:     3,
		IndividualCount: 40,
		GearType:        "Purse Seine",
		VesselType:      "ARTISANAL",
		FishingDepth:    15,
	}.Report(fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "Sardine", r.Species)
	assert.Equal(t, model.GearPurseSeine, r.GearType)
	assert.Equal(t, model.VesselArtisanal, r.VesselType)
	assert.Equal(t, fixedNow, r.Timestamp)
}

func TestCatchInput_Errors(t *testing.T) {
	t.Parallel()

	base := CatchInput{GearType: "trawl", VesselType: "commercial"}

	bad := base
	bad.GearType = "dynamite"
	_, err := bad.Report(fixedNow)
	assert.ErrorIs(t, err, ErrInvalidInput)

	bad = base
	bad.VesselType = "submarine"
	_, err = bad.Report(fixedNow)
	assert.ErrorIs(t, err, ErrInvalidInput)

	bad = base
	bad.Timestamp = "yesterday"
	_, err = bad.Report(fixedNow)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFeatureInput_Features(t *testing.T) {
	t.Parallel()

	sst, bio := 29.0, 0.7
	f, err := FeatureInput{MeanSST: &sst, BiodiversityIndex: &bio, Season: "winter", SSTCategory: "hot"}.Features()
	require.NoError(t, err)
	assert.Equal(t, model.SeasonWinter, f.Season)
	assert.Equal(t, model.SSTHot, f.SSTCategory)
	assert.InDelta(t, 29.0, f.MeanSST, 1e-9)
	assert.InDelta(t, model.DefaultGeneticDiversity, f.GeneticDiversity, 1e-9)
	assert.Equal(t, model.DefaultSpeciesRichness, f.SpeciesRichness)

	_, err = FeatureInput{Season: "monsoon"}.Features()
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFeatureInput_ZeroIsNotBlank(t *testing.T) {
	t.Parallel()

	var in FeatureInput
	require.NoError(t, json.Unmarshal([]byte(`{"mean_sst": 0, "biodiversity_index": 0, "species_richness": 0}`), &in))

	f, err := in.Features()
	require.NoError(t, err)
	assert.Zero(t, f.MeanSST)
	assert.Zero(t, f.BiodiversityIndex)
	assert.Zero(t, f.SpeciesRichness)
	assert.InDelta(t, model.DefaultGeneticDiversity, f.GeneticDiversity, 1e-9)

	blank, err := FeatureInput{}.Features()
	require.NoError(t, err)
	assert.InDelta(t, model.DefaultMeanSST, blank.MeanSST, 1e-9)
	assert.InDelta(t, model.DefaultBiodiversityIndex, blank.BiodiversityIndex, 1e-9)
}

func TestEDNAInput_Sample(t *testing.T) {
	t.Parallel()

	s, err := EDNAInput{SampleDate: "2026-02-01", DominantSpecies: "Rastrelliger kanagurta"}.Sample(fixedNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), s.SampleDate)

	s, err = EDNAInput{}.Sample(fixedNow)
	require.NoError(t, err)
	assert.Equal(t, fixedNow, s.SampleDate)
}
