package repositories

import (
	"context"
	"time"

	"github.com/moneypot/moneypot/internal/core/domain"
)

// ExchangeRateRepositoryFacade defines persistence operations for exchange rates.
type ExchangeRateRepositoryFacade interface {
	// SaveExchangeRate appends a new rate for an ordered pair. The store
	// never derives the inverse pair.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
	// FindRateAt returns the most recent rate for the pair with timestamp at
	// or before `at`, or the latest rate overall when `at` is nil. Returns
	// apperrors.ErrExchangeRateMissing when no such rate exists.
	FindRateAt(ctx context.Context, fromCode, toCode string, at *time.Time) (*domain.ExchangeRate, error)
	// ListRates returns the rate history for a pair, newest first.
	ListRates(ctx context.Context, fromCode, toCode string, limit int) ([]domain.ExchangeRate, error)
}
