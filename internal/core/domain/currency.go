package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyKind distinguishes fiat currencies from crypto assets.
type CurrencyKind string

const (
	Fiat   CurrencyKind = "FIAT"
	Crypto CurrencyKind = "CRYPTO"
)

// Currency represents a registered currency in the directory.
// Decimals governs display rounding only, never internal arithmetic.
type Currency struct {
	CurrencyCode string       `json:"currencyCode"` // Primary Key (e.g., "USD", "BTC")
	Name         string       `json:"name"`         // e.g., "US Dollar"
	Symbol       string       `json:"symbol"`       // e.g., "$"
	Kind         CurrencyKind `json:"kind"`
	Decimals     int          `json:"decimals"` // display precision (2 fiat, 8 crypto by default)
	IsActive     bool         `json:"isActive"`
	AuditFields
}

// ExchangeRate stores the conversion rate for an ordered currency pair at a
// point in time. Multiple rates per pair accumulate; the most recent rate at
// or before a query time wins. Inverse rates are never derived automatically.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"` // Primary Key (UUID)
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"` // strictly positive
	Timestamp        time.Time       `json:"timestamp"`
	AuditFields
}
