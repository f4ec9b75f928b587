package dto

import (
	"time"

	"github.com/moneypot/moneypot/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to register a currency.
// Decimals is optional: it defaults to 2 for fiat and 8 for crypto.
type CreateCurrencyRequest struct {
	CurrencyCode string              `json:"currencyCode" binding:"required,min=2,max=10"`
	Name         string              `json:"name" binding:"required"`
	Symbol       string              `json:"symbol" binding:"required"`
	Kind         domain.CurrencyKind `json:"kind" binding:"required,oneof=FIAT CRYPTO"`
	Decimals     *int                `json:"decimals" binding:"omitempty,min=0,max=18"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string              `json:"currencyCode"`
	Name         string              `json:"name"`
	Symbol       string              `json:"symbol"`
	Kind         domain.CurrencyKind `json:"kind"`
	Decimals     int                 `json:"decimals"`
	IsActive     bool                `json:"isActive"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// ToCurrencyResponse converts a domain.Currency to its response DTO.
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: c.CurrencyCode,
		Name:         c.Name,
		Symbol:       c.Symbol,
		Kind:         c.Kind,
		Decimals:     c.Decimals,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
	}
}

// ToListCurrencyResponse converts a slice of currencies.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		res[i] = ToCurrencyResponse(&c)
	}
	return res
}
