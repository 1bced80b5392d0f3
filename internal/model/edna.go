package model

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

// EDNASample is an environmental DNA sample entered by a researcher.
type EDNASample struct {
	SampleID          string    `json:"sample_id"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	SampleDate        time.Time `json:"sample_date"`
	BiodiversityIndex float64   `json:"biodiversity_index"`
	SpeciesRichness   int       `json:"species_richness"`
	GeneticDiversity  float64   `json:"genetic_diversity"`
	DominantSpecies   string    `json:"dominant_species"`
}

// Validate checks ranges on the sample fields. SampleID may be blank; the
// caller assigns one before submission.
func (s EDNASample) Validate() error {
	if err := ValidateCoordinates(s.Latitude, s.Longitude); err != nil {
		return err
	}
	if !finite(s.BiodiversityIndex) || s.BiodiversityIndex < 0 || s.BiodiversityIndex > 1 {
		return eris.Errorf("model: biodiversity index must be within [0,1], got %v", s.BiodiversityIndex)
	}
	if !finite(s.GeneticDiversity) || s.GeneticDiversity < 0 || s.GeneticDiversity > 1 {
		return eris.Errorf("model: genetic diversity must be within [0,1], got %v", s.GeneticDiversity)
	}
	if s.SpeciesRichness < 1 {
		return eris.Errorf("model: species richness must be >= 1, got %d", s.SpeciesRichness)
	}
	if strings.TrimSpace(s.DominantSpecies) == "" {
		return eris.New("model: dominant species is required")
	}
	if s.SampleDate.IsZero() {
		return eris.New("model: sample date is required")
	}
	return nil
}
