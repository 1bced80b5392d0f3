// Package features derives the environmental feature record sent with a
// prediction request from the values entered on a catch report.
package features

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/oceandata/fisherman-cli/internal/model"
)

// TemperatureSource returns the current sea surface temperature near a point.
type TemperatureSource interface {
	Temperature(ctx context.Context, lat, lon float64) (float64, error)
}

// Input holds the catch report values used for derivation.
type Input struct {
	Latitude        float64
	Longitude       float64
	CatchWeight     float64
	IndividualCount int
	GearType        model.GearType
}

// InputFromReport extracts the derivation inputs from a catch report.
func InputFromReport(r model.CatchReport) Input {
	return Input{
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		CatchWeight:     r.CatchWeight,
		IndividualCount: r.IndividualCount,
		GearType:        r.GearType,
	}
}

// Deriver computes EnvironmentalFeatures. A nil source always uses the
// fallback temperature.
type Deriver struct {
	source TemperatureSource
	now    func() time.Time
}

// Option configures a Deriver.
type Option func(*Deriver)

// WithClock overrides the clock used to pick the season.
func WithClock(now func() time.Time) Option {
	return func(d *Deriver) {
		d.now = now
	}
}

// NewDeriver creates a Deriver backed by the given temperature source.
func NewDeriver(source TemperatureSource, opts ...Option) *Deriver {
	d := &Deriver{source: source, now: time.Now}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Derive never fails: every lookup has a defined fallback.
func (d *Deriver) Derive(ctx context.Context, in Input) model.EnvironmentalFeatures {
	sst := d.temperature(ctx, in.Latitude, in.Longitude)
	bio := BiodiversityIndex(in.CatchWeight, in.IndividualCount)

	return model.EnvironmentalFeatures{
		Latitude:             in.Latitude,
		Longitude:            in.Longitude,
		MeanSST:              sst,
		BiodiversityIndex:    bio,
		GeneticDiversity:     GeneticDiversity(bio),
		SpeciesRichness:      SpeciesRichness(in.GearType),
		Season:               SeasonFor(d.now().Month()),
		SSTCategory:          SSTCategoryFor(sst),
		BiodiversityCategory: BiodiversityCategoryFor(bio),
	}
}

func (d *Deriver) temperature(ctx context.Context, lat, lon float64) float64 {
	if d.source == nil {
		return FallbackSST(lat)
	}
	t, err := d.source.Temperature(ctx, lat, lon)
	if err != nil {
		zap.L().Debug("temperature lookup failed, using fallback",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Error(err),
		)
		return FallbackSST(lat)
	}
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return FallbackSST(lat)
	}
	return t
}
