package model

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReport() CatchReport {
	return CatchReport{
		Species:         "Thunnus albacares",
		Latitude:        12.5,
		Longitude:       77.2,
		CatchWeight:     45.2,
		IndividualCount: 3,
		GearType:        GearLongline,
		VesselType:      VesselArtisanal,
		FishingDepth:    50,
		Timestamp:       time.Date(2026, 3, 14, 6, 30, 0, 0, time.UTC),
	}
}

func TestCatchReport_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(r *CatchReport)
		wantErr string
	}{
		{"valid", func(_ *CatchReport) {}, ""},
		{"zero weight allowed", func(r *CatchReport) { r.CatchWeight = 0 }, ""},
		{"blank species", func(r *CatchReport) { r.Species = "  " }, "species"},
		{"latitude too high", func(r *CatchReport) { r.Latitude = 91 }, "latitude"},
		{"longitude too low", func(r *CatchReport) { r.Longitude = -181 }, "longitude"},
		{"negative weight", func(r *CatchReport) { r.CatchWeight = -1 }, "catch weight"},
		{"zero count", func(r *CatchReport) { r.IndividualCount = 0 }, "individual count"},
		{"unknown gear", func(r *CatchReport) { r.GearType = "dynamite" }, "gear type"},
		{"unknown vessel", func(r *CatchReport) { r.VesselType = "submarine" }, "vessel type"},
		{"negative depth", func(r *CatchReport) { r.FishingDepth = -5 }, "fishing depth"},
		{"NaN latitude", func(r *CatchReport) { r.Latitude = math.NaN() }, "latitude"},
		{"infinite longitude", func(r *CatchReport) { r.Longitude = math.Inf(1) }, "longitude"},
		{"NaN weight", func(r *CatchReport) { r.CatchWeight = math.NaN() }, "catch weight"},
		{"infinite depth", func(r *CatchReport) { r.FishingDepth = math.Inf(1) }, "fishing depth"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := validReport()
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseGearType(t *testing.T) {
	t.Parallel()

	g, err := ParseGearType("Purse Seine")
	require.NoError(t, err)
	assert.Equal(t, GearPurseSeine, g)

	g, err = ParseGearType("purse-seine")
	require.NoError(t, err)
	assert.Equal(t, GearPurseSeine, g)

	_, err = ParseGearType("harpoon")
	assert.Error(t, err)
}

func TestParseVesselType(t *testing.T) {
	t.Parallel()

	v, err := ParseVesselType(" Commercial ")
	require.NoError(t, err)
	assert.Equal(t, VesselCommercial, v)

	_, err = ParseVesselType("yacht")
	assert.Error(t, err)
}

func TestEDNASample_Validate(t *testing.T) {
	t.Parallel()

	s := EDNASample{
		SampleID:          "EDNA001",
		Latitude:          12.5,
		Longitude:         77.2,
		SampleDate:        time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		BiodiversityIndex: 0.75,
		SpeciesRichness:   12,
		GeneticDiversity:  0.65,
		DominantSpecies:   "Thunnus albacares",
	}
	require.NoError(t, s.Validate())

	bad := s
	bad.BiodiversityIndex = 1.2
	assert.Error(t, bad.Validate())

	bad = s
	bad.SpeciesRichness = 0
	assert.Error(t, bad.Validate())

	bad = s
	bad.DominantSpecies = ""
	assert.Error(t, bad.Validate())

	bad = s
	bad.SampleDate = time.Time{}
	assert.Error(t, bad.Validate())
}
