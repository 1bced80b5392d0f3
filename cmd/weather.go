package main

import (
	"io"

	"github.com/spf13/cobra"
)

var weatherLat, weatherLon float64

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Show current conditions and advisories for a location",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initDashboard("cli")
		if err != nil {
			return err
		}

		out := env.Service.Weather(cmd.Context(), weatherLat, weatherLon)
		return printResult(cmd, out, func(w io.Writer) {
			renderWeather(w, out)
		})
	},
}

func init() {
	weatherCmd.Flags().Float64Var(&weatherLat, "lat", 12.5, "latitude in decimal degrees")
	weatherCmd.Flags().Float64Var(&weatherLon, "lon", 74.5, "longitude in decimal degrees")
	rootCmd.AddCommand(weatherCmd)
}
