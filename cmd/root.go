package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oceandata/fisherman-cli/internal/config"
)

var cfg *config.Config

var (
	flagToken    string
	flagEmail    string
	flagPassword string
	flagJSON     bool
)

var rootCmd = &cobra.Command{
	Use:          "fisherman",
	Short:        "Fisherman dashboard for the ocean data platform",
	Long:         "Reports catches and eDNA samples to the ocean data platform, derives environmental features from catch data, and requests species abundance predictions.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagToken, "token", "", "bearer token (default from api.token)")
	pf.StringVar(&flagEmail, "email", "", "log in with this email before the command")
	pf.StringVar(&flagPassword, "password", "", "password for --email")
	pf.BoolVar(&flagJSON, "json", false, "print results as JSON")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
