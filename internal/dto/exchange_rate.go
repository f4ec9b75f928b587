package dto

import (
	"time"

	"github.com/moneypot/moneypot/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the data needed to set a rate for an
// ordered currency pair. Timestamp defaults to now. When SetInverse is true
// the reciprocal rate is posted for the reverse pair as a second record; the
// store itself never derives inverses.
type CreateExchangeRateRequest struct {
	FromCurrencyCode string          `json:"fromCurrencyCode" binding:"required"`
	ToCurrencyCode   string          `json:"toCurrencyCode" binding:"required"`
	Rate             decimal.Decimal `json:"rate" binding:"required"`
	Timestamp        *time.Time      `json:"timestamp"`
	SetInverse       bool            `json:"setInverse"`
}

// ExchangeRateResponse defines the data returned for an exchange rate.
type ExchangeRateResponse struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	Timestamp        time.Time       `json:"timestamp"`
}

// ConvertResponse is the result of a currency conversion query.
type ConvertResponse struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Amount           decimal.Decimal `json:"amount"`
	Converted        decimal.Decimal `json:"converted"`
	Rate             decimal.Decimal `json:"rate"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to its response DTO.
func ToExchangeRateResponse(r *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID:   r.ExchangeRateID,
		FromCurrencyCode: r.FromCurrencyCode,
		ToCurrencyCode:   r.ToCurrencyCode,
		Rate:             r.Rate,
		Timestamp:        r.Timestamp,
	}
}
