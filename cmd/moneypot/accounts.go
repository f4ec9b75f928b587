package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/moneypot/moneypot/internal/core/domain"
	"github.com/moneypot/moneypot/internal/dto"
	"github.com/moneypot/moneypot/internal/utils"
)

var (
	accountName     string
	accountType     string
	accountCurrency string
	accountExternal bool
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Manage accounts",
}

var accountsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts with their balances",
	RunE: func(cmd *cobra.Command, args []string) error {
		accounts, err := svcContainer.Account.ListAccounts(cliCtx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTYPE\tCURRENCY\tBALANCE\tAVAILABLE\tID")
		for _, account := range accounts {
			balance, err := svcContainer.Ledger.AccountBalance(cliCtx, account.AccountID, nil)
			if err != nil {
				return err
			}
			available, err := svcContainer.Ledger.AvailableBalance(cliCtx, account.AccountID)
			if err != nil {
				return err
			}
			currency, err := svcContainer.Currency.GetCurrencyByCode(cliCtx, account.CurrencyCode)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				account.Name,
				account.AccountType,
				account.CurrencyCode,
				utils.FormatWithCurrencyPrecision(balance, *currency),
				utils.FormatWithCurrencyPrecision(available, *currency),
				account.AccountID,
			)
		}
		return w.Flush()
	},
}

var accountsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := svcContainer.Account.CreateAccount(cliCtx, dto.CreateAccountRequest{
			Name:         accountName,
			AccountType:  domain.AccountType(accountType),
			CurrencyCode: accountCurrency,
			IsExternal:   accountExternal,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created account %s (%s)\n", account.Name, account.AccountID)
		return nil
	},
}

func init() {
	accountsCreateCmd.Flags().StringVar(&accountName, "name", "", "account name")
	accountsCreateCmd.Flags().StringVar(&accountType, "type", "CURRENT", "CURRENT, SAVINGS, CREDIT_CARD, LOAN, MORTGAGE or CRYPTO")
	accountsCreateCmd.Flags().StringVar(&accountCurrency, "currency", "", "currency code, e.g. GBP")
	accountsCreateCmd.Flags().BoolVar(&accountExternal, "external", false, "mark as an external counterparty")
	accountsCreateCmd.MarkFlagRequired("name")
	accountsCreateCmd.MarkFlagRequired("currency")

	accountsCmd.AddCommand(accountsListCmd, accountsCreateCmd)
	rootCmd.AddCommand(accountsCmd)
}
