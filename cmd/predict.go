package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/oceandata/fisherman-cli/internal/dashboard"
	"github.com/oceandata/fisherman-cli/internal/model"
)

var (
	predictIn dashboard.FeatureInput

	predictSST, predictBiodiversity, predictGenetic float64
	predictRichness                                 int
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict species abundance from environmental parameters",
	Long:  "Sends hand-entered features to the prediction model. When the model is unavailable a local estimate is printed and labeled as such.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		flags := cmd.Flags()
		if flags.Changed("sst") {
			predictIn.MeanSST = &predictSST
		}
		if flags.Changed("biodiversity") {
			predictIn.BiodiversityIndex = &predictBiodiversity
		}
		if flags.Changed("genetic-diversity") {
			predictIn.GeneticDiversity = &predictGenetic
		}
		if flags.Changed("richness") {
			predictIn.SpeciesRichness = &predictRichness
		}

		f, err := predictIn.Features()
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

		out, err := env.Service.Predict(ctx, sess, f)
		if err != nil {
			return err
		}

		return printResult(cmd, out, func(w io.Writer) {
			renderFeatures(w, out.Features)
			renderPrediction(w, out.Prediction, &out.Insights)
		})
	},
}

func init() {
	f := predictCmd.Flags()
	f.Float64Var(&predictIn.Latitude, "lat", 0, "latitude in decimal degrees")
	f.Float64Var(&predictIn.Longitude, "lon", 0, "longitude in decimal degrees")
	f.Float64Var(&predictSST, "sst", model.DefaultMeanSST, "sea surface temperature in °C")
	f.Float64Var(&predictBiodiversity, "biodiversity", model.DefaultBiodiversityIndex, "biodiversity index (0-1)")
	f.Float64Var(&predictGenetic, "genetic-diversity", model.DefaultGeneticDiversity, "genetic diversity (0-1)")
	f.IntVar(&predictRichness, "richness", model.DefaultSpeciesRichness, "species richness")
	f.StringVar(&predictIn.Season, "season", "", "Winter, Spring, Summer or Autumn")
	f.StringVar(&predictIn.SSTCategory, "sst-category", "", "Cool, Moderate, Warm or Hot (default derived from --sst)")
	rootCmd.AddCommand(predictCmd)
}
