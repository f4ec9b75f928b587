package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores one conversion rate for an ordered currency pair.
// Rates accumulate over time; lookups pick the latest at or before a time.
type ExchangeRate struct {
	ExchangeRateID   string          `db:"exchange_rate_id"` // Primary Key (UUID)
	FromCurrencyCode string          `db:"from_currency_code"`
	ToCurrencyCode   string          `db:"to_currency_code"`
	Rate             decimal.Decimal `db:"rate"`
	Timestamp        time.Time       `db:"rate_timestamp"`
	AuditFields
}
