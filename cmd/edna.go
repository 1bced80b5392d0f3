package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/oceandata/fisherman-cli/internal/dashboard"
)

var ednaIn dashboard.EDNAInput

var ednaCmd = &cobra.Command{
	Use:   "edna",
	Short: "Submit an eDNA sample",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		sample, err := ednaIn.Sample(time.Now().UTC())
		if err != nil {
			return err
		}

		env, err := initDashboard("cli")
		if err != nil {
			return err
		}
		sess, err := env.session(ctx)
		if err != nil {
			return err
		}

		out, err := env.Service.SubmitEDNA(ctx, sess, sample)
		if err != nil {
			return err
		}

		return printResult(cmd, out, func(w io.Writer) {
			fmt.Fprintf(w, "eDNA sample %s submitted\n", out.SampleID)
		})
	},
}

func init() {
	f := ednaCmd.Flags()
	f.StringVar(&ednaIn.SampleID, "id", "", "sample ID (generated when empty)")
	f.Float64Var(&ednaIn.Latitude, "lat", 0, "latitude in decimal degrees")
	f.Float64Var(&ednaIn.Longitude, "lon", 0, "longitude in decimal degrees")
	f.StringVar(&ednaIn.SampleDate, "date", "", "sample date, YYYY-MM-DD (default today)")
	f.Float64Var(&ednaIn.BiodiversityIndex, "biodiversity", 0.75, "biodiversity index (0-1)")
	f.IntVar(&ednaIn.SpeciesRichness, "richness", 12, "species richness")
	f.Float64Var(&ednaIn.GeneticDiversity, "genetic-diversity", 0.65, "genetic diversity (0-1)")
	f.StringVar(&ednaIn.DominantSpecies, "dominant-species", "", "dominant species")
	_ = ednaCmd.MarkFlagRequired("lat")
	_ = ednaCmd.MarkFlagRequired("lon")
	_ = ednaCmd.MarkFlagRequired("dominant-species")
	rootCmd.AddCommand(ednaCmd)
}
