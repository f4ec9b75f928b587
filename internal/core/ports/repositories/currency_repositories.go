package repositories

import (
	"context"

	"github.com/moneypot/moneypot/internal/core/domain"
)

// CurrencyRepositoryFacade defines persistence operations for currencies.
type CurrencyRepositoryFacade interface {
	// SaveCurrency inserts a new currency. Returns an error wrapping
	// apperrors.ErrDuplicate if the code is already registered.
	SaveCurrency(ctx context.Context, currency domain.Currency) error
	// FindCurrencyByCode looks a currency up by its (case-insensitive) code.
	// Returns apperrors.ErrNotFound when missing.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
	// ListCurrencies returns active currencies, optionally filtered by kind.
	ListCurrencies(ctx context.Context, kind *domain.CurrencyKind) ([]domain.Currency, error)
	// DeactivateCurrency soft-deletes a currency.
	DeactivateCurrency(ctx context.Context, code string) error
}
