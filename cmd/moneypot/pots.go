package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/moneypot/moneypot/internal/dto"
	"github.com/moneypot/moneypot/internal/utils"
)

var (
	potAccountID string
	potName      string
	potTarget    string
	potInitial   string
)

var potsCmd = &cobra.Command{
	Use:   "pots",
	Short: "Manage savings pots",
}

var potsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pots with their balances",
	RunE: func(cmd *cobra.Command, args []string) error {
		var accountID *string
		if potAccountID != "" {
			accountID = &potAccountID
		}
		pots, err := svcContainer.Account.ListPots(cliCtx, accountID)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tBALANCE\tTARGET\tACCOUNT\tID")
		for _, pot := range pots {
			balance, err := svcContainer.Ledger.PotBalance(cliCtx, pot.PotID, nil)
			if err != nil {
				return err
			}
			account, err := svcContainer.Account.GetAccountByID(cliCtx, pot.AccountID)
			if err != nil {
				return err
			}
			currency, err := svcContainer.Currency.GetCurrencyByCode(cliCtx, account.CurrencyCode)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				pot.Name,
				utils.FormatWithCurrencyPrecision(balance, *currency),
				utils.FormatWithCurrencyPrecision(pot.TargetAmount, *currency),
				account.Name,
				pot.PotID,
			)
		}
		return w.Flush()
	},
}

var potsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a pot, optionally funding it from the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := dto.CreatePotRequest{
			AccountID: potAccountID,
			Name:      potName,
		}
		if potTarget != "" {
			target, err := decimal.NewFromString(potTarget)
			if err != nil {
				return fmt.Errorf("invalid target amount %q: %w", potTarget, err)
			}
			req.TargetAmount = &target
		}
		if potInitial != "" {
			initial, err := decimal.NewFromString(potInitial)
			if err != nil {
				return fmt.Errorf("invalid initial amount %q: %w", potInitial, err)
			}
			req.InitialAmount = &initial
		}

		pot, err := svcContainer.Account.CreatePot(cliCtx, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created pot %s (%s)\n", pot.Name, pot.PotID)
		return nil
	},
}

func init() {
	potsListCmd.Flags().StringVar(&potAccountID, "account", "", "restrict to one account ID")

	potsCreateCmd.Flags().StringVar(&potAccountID, "account", "", "owning account ID")
	potsCreateCmd.Flags().StringVar(&potName, "name", "", "pot name")
	potsCreateCmd.Flags().StringVar(&potTarget, "target", "", "savings target amount")
	potsCreateCmd.Flags().StringVar(&potInitial, "initial", "", "amount to move into the pot on creation")
	potsCreateCmd.MarkFlagRequired("account")
	potsCreateCmd.MarkFlagRequired("name")

	potsCmd.AddCommand(potsListCmd, potsCreateCmd)
	rootCmd.AddCommand(potsCmd)
}
