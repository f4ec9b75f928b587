package repositories

import (
	"context"
	"time"

	"github.com/moneypot/moneypot/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceGuard is a precondition checked inside the same database transaction
// that appends the legs, after row-locking the guarded account. The append
// fails with apperrors.ErrInsufficientFunds unless the guarded balance is at
// least Required. With PotID set the guard folds the pot's legs; with PotID
// nil it folds the account's untagged legs, the spendable amount outside pots.
type BalanceGuard struct {
	AccountID string
	PotID     *string
	Required  decimal.Decimal
}

// ListLegsParams narrows and paginates transaction history queries.
type ListLegsParams struct {
	From      *time.Time
	To        *time.Time
	Limit     int
	NextToken *string
}

// LedgerRepositoryFacade is the append-only transaction store and the
// read-side balance fold. Balances are always derived by folding legs; the
// accounts.balance column is only a cache maintained alongside the append.
type LedgerRepositoryFacade interface {
	// SaveTransaction durably appends a transaction with all of its legs as
	// one atomic unit, evaluating every guard under row locks first. Nothing
	// is persisted when any guard or insert fails.
	SaveTransaction(ctx context.Context, txn domain.Transaction, legs []domain.TransactionLeg, guards []BalanceGuard) error

	// FindTransactionByID returns a transaction with its legs populated.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	// FindLegsByTransactionID returns the legs of one transaction.
	FindLegsByTransactionID(ctx context.Context, transactionID string) ([]domain.TransactionLeg, error)

	// ListTransactionsByAccount returns transactions having at least one leg
	// on the account, newest first, with cursor pagination. Legs are populated.
	ListTransactionsByAccount(ctx context.Context, accountID string, params ListLegsParams) ([]domain.Transaction, *string, error)
	// ListTransactionsByPot is the same fold restricted to pot-tagged legs.
	ListTransactionsByPot(ctx context.Context, potID string, params ListLegsParams) ([]domain.Transaction, *string, error)
	// ListTransactionsByCategory returns transactions tagged with the
	// category, newest first, with cursor pagination. Legs are populated.
	ListTransactionsByCategory(ctx context.Context, categoryID string, params ListLegsParams) ([]domain.Transaction, *string, error)

	// AccountBalance folds credit-debit over every leg of the account (pot
	// tagged legs included), restricted to transactions dated at or before
	// asOf when given.
	AccountBalance(ctx context.Context, accountID string, asOf *time.Time) (decimal.Decimal, error)
	// PotBalance is the same fold restricted to legs tagged with the pot.
	PotBalance(ctx context.Context, potID string, asOf *time.Time) (decimal.Decimal, error)
	// SumPotBalances folds all pot-tagged legs of the account's pots.
	SumPotBalances(ctx context.Context, accountID string) (decimal.Decimal, error)
}
