package main

import (
	"fmt"
	"io"
	"os"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportCSVCmd = &cobra.Command{
	Use:   "export-csv",
	Short: "Write every stored rate as CSV",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath, _ := cmd.Flags().GetString("out")

		rt, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		var w io.Writer = cmd.OutOrStdout()
		if outPath != "" && outPath != "-" {
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outPath, err)
			}
			defer f.Close() //nolint:errcheck
			w = f
		}

		n, err := rt.Services.Maintenance.ExportCSV(cmd.Context(), w)
		if err != nil {
			return err
		}
		if outPath != "" && outPath != "-" {
			color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "Exported %d rows to %s\n", n, outPath)
		}
		return nil
	},
}

var checkMissingCmd = &cobra.Command{
	Use:   "check-missing",
	Short: "Report per-pair row counts and missing weekdays",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		cov, err := rt.Services.Maintenance.Coverage(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		color.New(color.Bold).Fprintf(out, "%-12s %8s  %-10s  %-10s  %s\n", "PAIR", "ROWS", "FIRST", "LAST", "MISSING WEEKDAYS")
		for _, c := range cov {
			line := fmt.Sprintf("%-12s %8d  %-10s  %-10s  %d", c.Pair, c.Count, domain.FormatDate(c.FirstDate), domain.FormatDate(c.LastDate), c.MissingWeekdays)
			if c.MissingWeekdays > 0 {
				color.New(color.FgYellow).Fprintln(out, line)
				continue
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

func init() {
	exportCSVCmd.Flags().StringP("out", "o", "exchange_rates.csv", "output file, - for stdout")
}
