package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies an account. It is informational for the ledger;
// legality of operations never depends on it, except that overdraft-capable
// types are exempt from the strict sufficient-funds check.
type AccountType string

const (
	Current    AccountType = "CURRENT"
	Savings    AccountType = "SAVINGS"
	CreditCard AccountType = "CREDIT_CARD"
	Loan       AccountType = "LOAN"
	Mortgage   AccountType = "MORTGAGE"
	CryptoAcct AccountType = "CRYPTO"
)

// Account represents a financial account. Its currency is fixed at creation.
// Balance is never stored authoritatively: the persisted balance column is a
// denormalized cache, and the ledger fold over legs is the source of truth.
type Account struct {
	AccountID    string      `json:"accountID"` // Primary Key (UUID)
	Name         string      `json:"name"`
	AccountType  AccountType `json:"accountType"`
	CurrencyCode string      `json:"currencyCode"` // FK -> currencies.code, immutable
	Description  string      `json:"description"`
	// IsExternal marks counterparties outside the ledger's own money supply
	// (an employer, a merchant). Transfers touching an external account
	// inject or remove money from the closed system.
	IsExternal bool `json:"isExternal"`
	IsActive   bool `json:"isActive"`

	// Interest and overdraft configuration, consumed by the interest accrual
	// calculations, not by the transfer engine.
	InterestRate          decimal.Decimal `json:"interestRate"`          // e.g. 0.0750 for 7.5% APR
	InterestCompounding   string          `json:"interestCompounding"`   // "daily" or "monthly"
	OverdraftLimit        decimal.Decimal `json:"overdraftLimit"`        // how far below zero is allowed
	OverdraftInterestRate decimal.Decimal `json:"overdraftInterestRate"` // e.g. 0.19 for 19% APR
	MinimumPayment        decimal.Decimal `json:"minimumPayment"`        // for debts

	AuditFields
}

// AllowsOverdraft reports whether the strict sufficient-funds check should be
// skipped for this account: debt-type accounts and external counterparties
// legitimately go negative, as do current accounts with an overdraft limit.
func (a Account) AllowsOverdraft() bool {
	if a.IsExternal {
		return true
	}
	switch a.AccountType {
	case CreditCard, Loan, Mortgage:
		return true
	}
	return a.OverdraftLimit.IsPositive()
}

// Pot is a named, ring-fenced sub-partition of an account's funds. A pot
// shares its account's currency and cannot be reassigned to another account.
type Pot struct {
	PotID        string          `json:"potID"` // Primary Key (UUID)
	AccountID    string          `json:"accountID"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"` // optional savings target, zero = none
	IsActive     bool            `json:"isActive"`
	AuditFields
}
