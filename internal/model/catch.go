package model

import (
	"math"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

// GearType is the fishing gear used for a catch.
type GearType string

const (
	GearLongline   GearType = "longline"
	GearGillnet    GearType = "gillnet"
	GearPurseSeine GearType = "purse_seine"
	GearTrawl      GearType = "trawl"
	GearHandline   GearType = "handline"
)

// GearTypes lists the gear types accepted by the catch report form.
var GearTypes = []GearType{GearLongline, GearGillnet, GearPurseSeine, GearTrawl, GearHandline}

// Valid reports whether g is one of the known gear types.
func (g GearType) Valid() bool {
	for _, known := range GearTypes {
		if g == known {
			return true
		}
	}
	return false
}

// VesselType classifies the reporting vessel.
type VesselType string

const (
	VesselCommercial   VesselType = "commercial"
	VesselArtisanal    VesselType = "artisanal"
	VesselRecreational VesselType = "recreational"
)

// VesselTypes lists the vessel types accepted by the catch report form.
var VesselTypes = []VesselType{VesselCommercial, VesselArtisanal, VesselRecreational}

// Valid reports whether v is one of the known vessel types.
func (v VesselType) Valid() bool {
	for _, known := range VesselTypes {
		if v == known {
			return true
		}
	}
	return false
}

// ParseGearType normalizes user input ("Purse Seine", "purse-seine") to a GearType.
func ParseGearType(s string) (GearType, error) {
	g := GearType(normalizeEnum(s))
	if !g.Valid() {
		return "", eris.Errorf("model: unknown gear type %q", s)
	}
	return g, nil
}

// ParseVesselType normalizes user input to a VesselType.
func ParseVesselType(s string) (VesselType, error) {
	v := VesselType(normalizeEnum(s))
	if !v.Valid() {
		return "", eris.Errorf("model: unknown vessel type %q", s)
	}
	return v, nil
}

func normalizeEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ReplaceAll(s, " ", "_")
}

// CatchReport is a single catch submitted from the report form. It is sent
// to the backend once and never stored locally.
type CatchReport struct {
	Species         string     `json:"species"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
	CatchWeight     float64    `json:"catch_weight"`
	IndividualCount int        `json:"individual_count"`
	GearType        GearType   `json:"gear_type"`
	VesselType      VesselType `json:"vessel_type"`
	FishingDepth    float64    `json:"fishing_depth"`
	Timestamp       time.Time  `json:"timestamp"`
}

// Validate checks field ranges and enum membership.
func (r CatchReport) Validate() error {
	if strings.TrimSpace(r.Species) == "" {
		return eris.New("model: species is required")
	}
	if err := ValidateCoordinates(r.Latitude, r.Longitude); err != nil {
		return err
	}
	if !finite(r.CatchWeight) || r.CatchWeight < 0 {
		return eris.Errorf("model: catch weight must be >= 0, got %v", r.CatchWeight)
	}
	if r.IndividualCount < 1 {
		return eris.Errorf("model: individual count must be >= 1, got %d", r.IndividualCount)
	}
	if !r.GearType.Valid() {
		return eris.Errorf("model: unknown gear type %q", r.GearType)
	}
	if !r.VesselType.Valid() {
		return eris.Errorf("model: unknown vessel type %q", r.VesselType)
	}
	if !finite(r.FishingDepth) || r.FishingDepth < 0 {
		return eris.Errorf("model: fishing depth must be >= 0, got %v", r.FishingDepth)
	}
	return nil
}

// ValidateCoordinates checks that lat/lon are valid decimal degrees.
func ValidateCoordinates(lat, lon float64) error {
	if !finite(lat) || lat < -90 || lat > 90 {
		return eris.Errorf("model: latitude out of range: %v", lat)
	}
	if !finite(lon) || lon < -180 || lon > 180 {
		return eris.Errorf("model: longitude out of range: %v", lon)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
