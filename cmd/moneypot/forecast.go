package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var (
	forecastStart   string
	forecastEnd     string
	forecastAccount string
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Expand scheduled transactions into a dated forecast",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := time.Parse(time.DateOnly, forecastStart)
		if err != nil {
			return fmt.Errorf("invalid start date %q: %w", forecastStart, err)
		}
		end, err := time.Parse(time.DateOnly, forecastEnd)
		if err != nil {
			return fmt.Errorf("invalid end date %q: %w", forecastEnd, err)
		}

		if forecastAccount != "" {
			account, err := svcContainer.Account.GetAccountByName(cliCtx, forecastAccount)
			if err != nil {
				return err
			}
			points, err := svcContainer.Forecast.AccountProjection(cliCtx, account.AccountID, start, end)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tBALANCE")
			for _, p := range points {
				fmt.Fprintf(w, "%s\t%s %s\n", p.Date.Format(time.DateOnly), p.Balance, account.CurrencyCode)
			}
			return w.Flush()
		}

		entries, err := svcContainer.Forecast.Forecast(cliCtx, start, end)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tNAME\tAMOUNT\tFROM\tTO")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				e.Date.Format(time.DateOnly), e.Name, e.Amount, e.FromAccountID, e.ToAccountID)
		}
		return w.Flush()
	},
}

func init() {
	forecastCmd.Flags().StringVar(&forecastStart, "start", "", "range start (YYYY-MM-DD)")
	forecastCmd.Flags().StringVar(&forecastEnd, "end", "", "range end (YYYY-MM-DD)")
	forecastCmd.Flags().StringVar(&forecastAccount, "account", "", "project this account's balance instead of listing entries")
	forecastCmd.MarkFlagRequired("start")
	forecastCmd.MarkFlagRequired("end")

	rootCmd.AddCommand(forecastCmd)
}
