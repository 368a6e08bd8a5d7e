package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var seedPairsCmd = &cobra.Command{
	Use:   "seed-pairs",
	Short: "Upsert the default pair definitions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		n, err := rt.Services.Pairs.SeedPairs(cmd.Context())
		if err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Seeded %d pairs\n", n)
		return nil
	},
}
