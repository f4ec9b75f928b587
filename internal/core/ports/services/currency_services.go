package services

import (
	"context"
	"time"

	"github.com/moneypot/moneypot/internal/core/domain"
	"github.com/moneypot/moneypot/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencySvcFacade is the currency directory: currency registration, rate
// storage, and point-in-time conversion.
type CurrencySvcFacade interface {
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error)
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context, kind *domain.CurrencyKind) ([]domain.Currency, error)
	// DeactivateCurrency soft-deletes a currency. Legs already referencing it
	// are untouched; the code just stops being accepted for new accounts and
	// rates.
	DeactivateCurrency(ctx context.Context, code string) error

	// SetExchangeRate stores a rate for an ordered pair; when req.SetInverse
	// is set, the reciprocal is stored for the reverse pair as well. The
	// returned slice holds one or two rates accordingly.
	SetExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) ([]domain.ExchangeRate, error)
	// RateAt returns the conversion rate from->to effective at `at` (latest
	// overall when nil). A same-currency pair is 1 by definition, without a
	// store lookup. Missing rates are apperrors.ErrExchangeRateMissing, never
	// silently 1.
	RateAt(ctx context.Context, fromCode, toCode string, at *time.Time) (decimal.Decimal, error)
	// Convert returns amount * RateAt(fromCode, toCode, at).
	Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string, at *time.Time) (decimal.Decimal, error)
}
