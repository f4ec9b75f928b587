package repositories

import (
	"context"

	"github.com/moneypot/moneypot/internal/core/domain"
)

// PotFunding describes the initial funding of a new pot: a two-leg
// transaction moving the amount from the account into the pot, persisted
// atomically with the pot row so the pot never exists with an amount that is
// not backed by legs.
type PotFunding struct {
	Transaction domain.Transaction
	Legs        []domain.TransactionLeg
	Guard       BalanceGuard
}

// AccountRepositoryFacade defines persistence operations for accounts and pots.
type AccountRepositoryFacade interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	// FindAccountsByIDs returns the accounts found keyed by ID; missing IDs
	// are simply absent from the map.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	FindAccountByName(ctx context.Context, name string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	// UpdateAccount persists name/description and interest/overdraft config.
	// Currency and type are immutable and never written.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// SavePot inserts a pot, together with its funding transaction when
	// funding is non-nil, as one atomic unit.
	SavePot(ctx context.Context, pot domain.Pot, funding *PotFunding) error
	FindPotByID(ctx context.Context, potID string) (*domain.Pot, error)
	ListPotsByAccount(ctx context.Context, accountID string) ([]domain.Pot, error)
	ListPots(ctx context.Context) ([]domain.Pot, error)
	DeactivatePot(ctx context.Context, potID string) error
}
