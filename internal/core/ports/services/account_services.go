package services

import (
	"context"

	"github.com/moneypot/moneypot/internal/core/domain"
	"github.com/moneypot/moneypot/internal/dto"
)

// AccountSvcFacade is the account and pot registry.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccountByName(ctx context.Context, name string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// CreatePot registers a pot under an existing account. A positive
	// initial amount is moved from the account into the pot atomically with
	// the pot row, guarded by the account's folded balance.
	CreatePot(ctx context.Context, req dto.CreatePotRequest) (*domain.Pot, error)
	GetPotByID(ctx context.Context, potID string) (*domain.Pot, error)
	ListPots(ctx context.Context, accountID *string) ([]domain.Pot, error)
	DeactivatePot(ctx context.Context, potID string) error
}
