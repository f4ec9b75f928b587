package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moneypot/moneypot/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the default currency directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := seed.Currencies(cliCtx, svcContainer.Currency); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Currency directory seeded.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
