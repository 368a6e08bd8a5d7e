// fxctl runs the offline jobs of the FX rates service: bulk ingestion, pair
// seeding, CSV export, coverage checks and schema migration.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/fx_rates_app/internal/middleware"
	"github.com/SscSPs/fx_rates_app/internal/platform/bootstrap"
	"github.com/SscSPs/fx_rates_app/internal/platform/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "fxctl",
	Short:         "Maintenance CLI for the FX rates store",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cmd.SetContext(middleware.WithLogger(cmd.Context(), logger))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(ingestPairCmd)
	rootCmd.AddCommand(seedPairsCmd)
	rootCmd.AddCommand(exportCSVCmd)
	rootCmd.AddCommand(checkMissingCmd)
	rootCmd.AddCommand(migrateCmd)
}

// openStore builds a live runtime regardless of MOCK.
func openStore(cmd *cobra.Command) (*bootstrap.Runtime, error) {
	return bootstrap.Build(cmd.Context(), cfg, logger, bootstrap.Options{RequireStore: true})
}
