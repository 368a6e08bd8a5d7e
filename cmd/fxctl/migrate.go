package main

import (
	"errors"

	"github.com/SscSPs/fx_rates_app/pkg/database"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.DatabaseURL == "" {
			return errors.New("PGSQL_URL is required for this operation")
		}
		applied, err := database.RunMigrations(cfg.DatabaseURL, cfg.DatabaseName, cfg.MigrationsPath, logger)
		if err != nil {
			return err
		}
		if applied {
			color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "Migrations applied")
		} else {
			color.New(color.FgCyan).Fprintln(cmd.OutOrStdout(), "Schema already up to date")
		}
		return nil
	},
}
