package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/moneypot/moneypot/internal/dto"
)

var (
	transferFrom        string
	transferTo          string
	transferAmount      string
	transferDescription string
)

var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Transfer between two accounts by name",
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := decimal.NewFromString(transferAmount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", transferAmount, err)
		}

		from, err := svcContainer.Account.GetAccountByName(cliCtx, transferFrom)
		if err != nil {
			return err
		}
		to, err := svcContainer.Account.GetAccountByName(cliCtx, transferTo)
		if err != nil {
			return err
		}

		txn, err := svcContainer.Transfer.TransferBetweenAccounts(cliCtx, dto.TransferRequest{
			FromAccountID: from.AccountID,
			ToAccountID:   to.AccountID,
			Amount:        amount,
			Description:   transferDescription,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Transferred %s %s from %s to %s (transaction %s)\n",
			amount, from.CurrencyCode, from.Name, to.Name, txn.TransactionID)
		return nil
	},
}

func init() {
	transferCmd.Flags().StringVar(&transferFrom, "from", "", "source account name")
	transferCmd.Flags().StringVar(&transferTo, "to", "", "destination account name")
	transferCmd.Flags().StringVar(&transferAmount, "amount", "", "amount in the source account's currency")
	transferCmd.Flags().StringVar(&transferDescription, "description", "", "transaction description")
	transferCmd.MarkFlagRequired("from")
	transferCmd.MarkFlagRequired("to")
	transferCmd.MarkFlagRequired("amount")

	rootCmd.AddCommand(transferCmd)
}
