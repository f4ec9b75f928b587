package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LegType indicates whether a transaction leg is a debit or a credit.
type LegType string

const (
	Debit  LegType = "DEBIT"
	Credit LegType = "CREDIT"
)

// Transaction is a balanced financial event composed of two or more legs.
// It is immutable once committed; corrections are new offsetting transactions.
type Transaction struct {
	TransactionID string    `json:"transactionID"` // Primary Key (UUID)
	Description   string    `json:"description"`
	Date          time.Time `json:"date"` // calendar date; ordering ties broken by ID
	// CurrencyCode is the settlement currency the transaction is denominated
	// in, typically the source leg's account currency.
	CurrencyCode string           `json:"currencyCode"`
	CategoryID   *string          `json:"categoryID,omitempty"`
	Legs         []TransactionLeg `json:"legs,omitempty"`
	AuditFields
}

// TransactionLeg is one side of a double-entry transaction, tied to exactly
// one account and optionally one pot of that same account. Exactly one of
// Debit/Credit is set, strictly positive, in the leg's own currency.
type TransactionLeg struct {
	LegID         string  `json:"legID"` // Primary Key (UUID)
	TransactionID string  `json:"transactionID"`
	AccountID     string  `json:"accountID"`
	PotID         *string `json:"potID,omitempty"` // must belong to AccountID when set

	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`

	CurrencyCode string `json:"currencyCode"` // equals the account's currency
	// ExchangeRate converts the transaction's settlement currency into this
	// leg's currency; 1 when they match.
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	AuditFields
}

// Type returns the leg's side based on which amount is set.
func (l TransactionLeg) Type() LegType {
	if l.Debit.IsPositive() {
		return Debit
	}
	return Credit
}

// Amount returns the positive amount of whichever side is set.
func (l TransactionLeg) Amount() decimal.Decimal {
	if l.Debit.IsPositive() {
		return l.Debit
	}
	return l.Credit
}

// Delta returns the leg's effect on its account balance: credit - debit.
func (l TransactionLeg) Delta() decimal.Decimal {
	return l.Credit.Sub(l.Debit)
}
