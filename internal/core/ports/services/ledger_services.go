package services

import (
	"context"
	"time"

	"github.com/moneypot/moneypot/internal/core/domain"
	"github.com/moneypot/moneypot/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade is the read side of the ledger: balances derived by folding
// legs, and transaction history queries. It never mutates state.
type LedgerSvcFacade interface {
	AccountBalance(ctx context.Context, accountID string, asOf *time.Time) (decimal.Decimal, error)
	PotBalance(ctx context.Context, potID string, asOf *time.Time) (decimal.Decimal, error)
	// AvailableBalance is the spendable amount outside pots:
	// AccountBalance - sum of the account's pot balances.
	AvailableBalance(ctx context.Context, accountID string) (decimal.Decimal, error)

	AccountTransactions(ctx context.Context, accountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
	PotTransactions(ctx context.Context, potID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
	// CategoryTransactions filters the history on the transaction's category
	// tag.
	CategoryTransactions(ctx context.Context, categoryID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}
