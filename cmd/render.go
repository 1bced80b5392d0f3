package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/oceandata/fisherman-cli/internal/dashboard"
	"github.com/oceandata/fisherman-cli/internal/model"
	"github.com/oceandata/fisherman-cli/internal/zones"
)

// printResult writes v as JSON when --json is set, otherwise calls text.
func printResult(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)
	return nil
}

func renderCatch(w io.Writer, out *dashboard.CatchOutcome) {
	fmt.Fprintf(w, "Catch report submitted: %s, %.1f kg, %d individuals\n",
		out.Report.Species, out.Report.CatchWeight, out.Report.IndividualCount)
	for _, z := range out.Zones {
		fmt.Fprintf(w, "Zone: %s (%s)\n", z.Zone.Name, z.Zone.Status)
	}
	for _, warn := range out.Warnings {
		fmt.Fprintf(w, "WARNING: %s\n", warn)
	}
	renderFeatures(w, out.Features)

	if out.Prediction == nil {
		fmt.Fprintf(w, "Prediction: %s\n", out.Unavailable)
		return
	}
	renderPrediction(w, *out.Prediction, out.Insights)
}

func renderFeatures(w io.Writer, f model.EnvironmentalFeatures) {
	fmt.Fprintf(w, "Sea surface temperature: %.1f°C (%s)\n", f.MeanSST, f.SSTCategory)
	fmt.Fprintf(w, "Biodiversity index: %.2f (%s)\n", f.BiodiversityIndex, f.BiodiversityCategory)
	fmt.Fprintf(w, "Genetic diversity: %.2f\n", f.GeneticDiversity)
	fmt.Fprintf(w, "Species richness: %d\n", f.SpeciesRichness)
	fmt.Fprintf(w, "Season: %s\n", f.Season)
}

func renderPrediction(w io.Writer, p model.PredictionResult, ins *dashboard.Insights) {
	label := ""
	if p.Source == model.PredictionFromHeuristic {
		label = " (local estimate)"
	}
	fmt.Fprintf(w, "Predicted abundance: %.1f individuals%s\n", p.Prediction, label)
	fmt.Fprintf(w, "Confidence: %.0f%%  Model: %s  Species: %s\n", p.Confidence*100, p.ModelVersion, p.PredictedSpecies)
	if ins == nil {
		return
	}
	fmt.Fprintln(w, ins.Summary)
	for _, r := range ins.Recommendations {
		fmt.Fprintf(w, "  - %s\n", r)
	}
}

func renderWeather(w io.Writer, out *dashboard.WeatherOutcome) {
	r := out.Reading
	fmt.Fprintf(w, "Temperature: %.1f°C\nWind: %.1f m/s\nHumidity: %.0f%%\nPressure: %.0f hPa\nSource: %s\n",
		r.SST, r.WindSpeed, r.Humidity, r.Pressure, r.Source)
	if r.Description != "" {
		fmt.Fprintf(w, "Conditions: %s\n", r.Description)
	}
	if r.ObservedAt != nil {
		fmt.Fprintf(w, "Observed: %s\n", r.ObservedAt.Format(time.RFC3339))
	}
	for _, a := range out.Advisories {
		fmt.Fprintf(w, "  - %s\n", a)
	}
}

func renderZones(w io.Writer, zs []zones.Zone) {
	for _, z := range zs {
		fmt.Fprintf(w, "%-32s %-9s %8.4f %8.4f %7.1f km\n", z.Name, z.Status, z.Latitude, z.Longitude, z.RadiusM/1000)
	}
}

func renderMatches(w io.Writer, ms []zones.Match) {
	if len(ms) == 0 {
		fmt.Fprintln(w, "Not inside any fishing zone")
		return
	}
	for _, m := range ms {
		fmt.Fprintf(w, "%s (%s), %.1f km from center\n", m.Zone.Name, m.Zone.Status, m.DistanceM/1000)
	}
}

func renderAnalytics(w io.Writer, a *dashboard.Analytics) {
	line := func(name string, c dashboard.Count) {
		if c.Available {
			fmt.Fprintf(w, "%s records: %d\n", name, c.Records)
			return
		}
		fmt.Fprintf(w, "%s records: unavailable (%s)\n", name, strings.TrimSpace(c.Error))
	}
	line("Species", a.Species)
	line("Vessel", a.Vessels)
}
