package main

import (
	"io"

	"github.com/spf13/cobra"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show species and vessel record counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initDashboard("cli")
		if err != nil {
			return err
		}
		sess, err := env.session(ctx)
		if err != nil {
			return err
		}

		out := env.Service.Analytics(ctx, sess)
		return printResult(cmd, out, func(w io.Writer) {
			renderAnalytics(w, out)
		})
	},
}

func init() {
	rootCmd.AddCommand(analyticsCmd)
}
