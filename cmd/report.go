package main

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/oceandata/fisherman-cli/internal/dashboard"
)

var reportIn dashboard.CatchInput

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Submit a catch report and get a species abundance prediction",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		report, err := reportIn.Report(time.Now().UTC())
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

		out, err := env.Service.ReportCatch(ctx, sess, report)
		if err != nil {
			return err
		}

		return printResult(cmd, out, func(w io.Writer) {
			renderCatch(w, out)
		})
	},
}

func init() {
	f := reportCmd.Flags()
	f.StringVar(&reportIn.Species, "species", "", "species caught")
	f.Float64Var(&reportIn.Latitude, "lat", 0, "latitude in decimal degrees")
	f.Float64Var(&reportIn.Longitude, "lon", 0, "longitude in decimal degrees")
	f.Float64Var(&reportIn.CatchWeight, "weight", 0, "catch weight in kg")
	f.IntVar(&reportIn.IndividualCount, "count", 1, "number of individuals")
	f.StringVar(&reportIn.GearType, "gear", "", "gear type: longline, gillnet, purse_seine, trawl, handline")
	f.StringVar(&reportIn.VesselType, "vessel", "artisanal", "vessel type: commercial, artisanal, recreational")
	f.Float64Var(&reportIn.FishingDepth, "depth", 0, "fishing depth in m")
	f.StringVar(&reportIn.Timestamp, "time", "", "catch time, RFC 3339 (default now)")
	_ = reportCmd.MarkFlagRequired("species")
	_ = reportCmd.MarkFlagRequired("lat")
	_ = reportCmd.MarkFlagRequired("lon")
	_ = reportCmd.MarkFlagRequired("gear")
	rootCmd.AddCommand(reportCmd)
}
