package models

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies an account; informational for the ledger.
type AccountType string

const (
	Current    AccountType = "CURRENT"
	Savings    AccountType = "SAVINGS"
	CreditCard AccountType = "CREDIT_CARD"
	Loan       AccountType = "LOAN"
	Mortgage   AccountType = "MORTGAGE"
	CryptoAcct AccountType = "CRYPTO"
)

// Account represents an account row. The balance column is a denormalized
// cache maintained in the same transaction as every leg append; the ledger
// fold over legs is authoritative.
type Account struct {
	AccountID    string      `db:"account_id"` // Primary Key (UUID)
	Name         string      `db:"name"`
	AccountType  AccountType `db:"account_type"`
	CurrencyCode string      `db:"currency_code"`
	Description  string      `db:"description"`
	IsExternal   bool        `db:"is_external"`
	IsActive     bool        `db:"is_active"`

	InterestRate          decimal.Decimal `db:"interest_rate"`
	InterestCompounding   string          `db:"interest_compounding"`
	OverdraftLimit        decimal.Decimal `db:"overdraft_limit"`
	OverdraftInterestRate decimal.Decimal `db:"overdraft_interest_rate"`
	MinimumPayment        decimal.Decimal `db:"minimum_payment"`

	Balance decimal.Decimal `db:"balance"` // cache, never served as truth
	AuditFields
}

// Pot represents a savings pot row, owned by exactly one account.
type Pot struct {
	PotID        string          `db:"pot_id"` // Primary Key (UUID)
	AccountID    string          `db:"account_id"`
	Name         string          `db:"name"`
	TargetAmount decimal.Decimal `db:"target_amount"`
	IsActive     bool            `db:"is_active"`
	AuditFields
}
