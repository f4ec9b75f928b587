package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a transaction row. Immutable once inserted.
type Transaction struct {
	TransactionID string    `db:"transaction_id"` // Primary Key (UUID)
	Description   string    `db:"description"`
	Date          time.Time `db:"txn_date"`      // calendar date
	CurrencyCode  string    `db:"currency_code"` // settlement currency
	CategoryID    *string   `db:"category_id"`   // nullable
	AuditFields
}

// TransactionLeg represents one leg row. Exactly one of debit/credit is
// positive; the other is zero. ExchangeRate converts the transaction's
// settlement currency into this leg's currency.
type TransactionLeg struct {
	LegID         string          `db:"leg_id"` // Primary Key (UUID)
	TransactionID string          `db:"transaction_id"`
	AccountID     string          `db:"account_id"`
	PotID         *string         `db:"pot_id"` // nullable
	Debit         decimal.Decimal `db:"debit"`
	Credit        decimal.Decimal `db:"credit"`
	CurrencyCode  string          `db:"currency_code"`
	ExchangeRate  decimal.Decimal `db:"exchange_rate"`
	AuditFields
}
