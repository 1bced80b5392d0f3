package main

import (
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	zonesLat    float64
	zonesLon    float64
	zonesFormat string
	zonesOut    string
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "Fishing zone advisories",
}

var zonesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List fishing zones and their status",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initDashboard("cli")
		if err != nil {
			return err
		}
		zs := env.Service.Zones()
		return printResult(cmd, zs, func(w io.Writer) {
			renderZones(w, zs)
		})
	},
}

var zonesLocateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Show the zones containing a location",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initDashboard("cli")
		if err != nil {
			return err
		}
		ms := env.Service.LocateZone(zonesLat, zonesLon)
		return printResult(cmd, ms, func(w io.Writer) {
			renderMatches(w, ms)
		})
	},
}

var zonesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export zone boundaries as GeoJSON, shapefile or XLSX",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initDashboard("cli")
		if err != nil {
			return err
		}

		format := strings.ToLower(zonesFormat)
		switch format {
		case "geojson":
			data, err := env.Zones.GeoJSON()
			if err != nil {
				return err
			}
			if zonesOut == "" {
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			if err := os.WriteFile(zonesOut, data, 0o644); err != nil {
				return eris.Wrapf(err, "write %s", zonesOut)
			}
		case "shp", "shapefile":
			if zonesOut == "" {
				return eris.New("shapefile export requires --out")
			}
			if err := env.Zones.WriteShapefile(zonesOut); err != nil {
				return err
			}
		case "xlsx":
			if zonesOut == "" {
				return eris.New("xlsx export requires --out")
			}
			f, err := os.Create(zonesOut)
			if err != nil {
				return eris.Wrapf(err, "create %s", zonesOut)
			}
			if err := env.Zones.WriteXLSX(f); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return eris.Wrapf(err, "close %s", zonesOut)
			}
		default:
			return eris.Errorf("unknown export format %q (want geojson, shp or xlsx)", zonesFormat)
		}

		if zonesOut != "" {
			zap.L().Info("zones exported", zap.String("format", format), zap.String("path", zonesOut))
		}
		return nil
	},
}

func init() {
	zonesLocateCmd.Flags().Float64Var(&zonesLat, "lat", 0, "latitude in decimal degrees")
	zonesLocateCmd.Flags().Float64Var(&zonesLon, "lon", 0, "longitude in decimal degrees")
	_ = zonesLocateCmd.MarkFlagRequired("lat")
	_ = zonesLocateCmd.MarkFlagRequired("lon")

	zonesExportCmd.Flags().StringVar(&zonesFormat, "format", "geojson", "geojson, shp or xlsx")
	zonesExportCmd.Flags().StringVarP(&zonesOut, "out", "o", "", "output path (geojson defaults to stdout)")

	zonesCmd.AddCommand(zonesListCmd, zonesLocateCmd, zonesExportCmd)
	rootCmd.AddCommand(zonesCmd)
}
