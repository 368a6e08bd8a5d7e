package main

import (
	"errors"
	"fmt"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Backfill every pair of the active vocabulary",
	Long: `Fetches every ordered pair of the configured currencies from the external
provider one calendar year at a time and upserts the rescaled rates.
Without --start/--end the last ten years up to today (UTC) are ingested.
Failed chunks are reported and skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		span, err := spanFromFlags(cmd)
		if err != nil {
			return err
		}

		rt, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		report, err := rt.Services.Ingestion.IngestAll(cmd.Context(), span)
		if report != nil {
			printReport(cmd, report)
		}
		return err
	},
}

var ingestPairCmd = &cobra.Command{
	Use:   "ingest-pair PAIR",
	Short: "Ingest a single pair over a date range",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		span, err := spanFromFlags(cmd)
		if err != nil {
			return err
		}

		rt, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		var total int64
		for _, chunk := range domain.YearChunks(span.Start, span.End) {
			n, err := rt.Services.Ingestion.IngestPair(cmd.Context(), args[0], chunk.Start, chunk.End)
			if err != nil {
				return fmt.Errorf("%s %s: %w", args[0], chunk, err)
			}
			total += n
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%s: %d rows upserted (%s)\n", args[0], total, span)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{ingestCmd, ingestPairCmd} {
		c.Flags().String("start", "", "first date to ingest (YYYY-MM-DD)")
		c.Flags().String("end", "", "last date to ingest (YYYY-MM-DD, default today)")
	}
}

// spanFromFlags reads --start/--end. A missing end is today and a missing
// start is ten years before end.
func spanFromFlags(cmd *cobra.Command) (domain.DateSpan, error) {
	startRaw, _ := cmd.Flags().GetString("start")
	endRaw, _ := cmd.Flags().GetString("end")

	end := domain.Today()
	if endRaw != "" {
		d, err := domain.ParseDate(endRaw)
		if err != nil {
			return domain.DateSpan{}, errors.New("--end must be YYYY-MM-DD")
		}
		end = d
	}
	span := domain.TenYearSpan(end)
	if startRaw != "" {
		d, err := domain.ParseDate(startRaw)
		if err != nil {
			return domain.DateSpan{}, errors.New("--start must be YYYY-MM-DD")
		}
		span.Start = d
	}
	if span.Start.After(span.End) {
		return domain.DateSpan{}, errors.New("--start must not be after --end")
	}
	return span, nil
}

func printReport(cmd *cobra.Command, report *domain.IngestReport) {
	out := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	bold.Fprintf(out, "Ingestion %s\n", report.Span)
	for _, p := range report.Pairs {
		line := fmt.Sprintf("  %-12s %8d upserted", p.Pair, p.Upserted)
		if p.Failed > 0 {
			red.Fprintf(out, "%s, %d chunk(s) failed\n", line, p.Failed)
			continue
		}
		fmt.Fprintln(out, line)
	}
	green.Fprintf(out, "Total upserted: %d\n", report.Total)
	if len(report.Failures) > 0 {
		red.Fprintf(out, "Failures (%d):\n", len(report.Failures))
		for _, f := range report.Failures {
			red.Fprintf(out, "  %s %s: %s\n", f.Pair, f.Span, f.Error)
		}
	}
}

