package utils

import (
	"github.com/moneypot/moneypot/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrencyPrecision formats an amount with the display precision of
// a currency, prefixed by its symbol.
// Example: 12.3456 with USD (decimals 2) returns "$12.35".
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return currency.Symbol + amount.StringFixed(int32(currency.Decimals))
}

// FormatWithPrecision formats an amount with the given precision.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
