package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneypot/moneypot/internal/core/domain"
	portsrepo "github.com/moneypot/moneypot/internal/core/ports/repositories"
	portssvc "github.com/moneypot/moneypot/internal/core/ports/services"
	"github.com/moneypot/moneypot/internal/dto"
)

// ledgerService implements the read side of the ledger: balance folds and
// transaction history. All balances derive from legs; it never mutates state.
type ledgerService struct {
	ledgerRepo   portsrepo.LedgerRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewLedgerService creates a new ledger read service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:   ledgerRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) AccountBalance(ctx context.Context, accountID string, asOf *time.Time) (decimal.Decimal, error) {
	// Existence check first so an unknown ID is ErrNotFound, not zero.
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return decimal.Zero, fmt.Errorf("failed to get account %s for balance: %w", accountID, err)
	}
	balance, err := s.ledgerRepo.AccountBalance(ctx, accountID, asOf)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fold balance for account %s: %w", accountID, err)
	}
	return balance, nil
}

func (s *ledgerService) PotBalance(ctx context.Context, potID string, asOf *time.Time) (decimal.Decimal, error) {
	if _, err := s.accountRepo.FindPotByID(ctx, potID); err != nil {
		return decimal.Zero, fmt.Errorf("failed to get pot %s for balance: %w", potID, err)
	}
	balance, err := s.ledgerRepo.PotBalance(ctx, potID, asOf)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fold balance for pot %s: %w", potID, err)
	}
	return balance, nil
}

func (s *ledgerService) AvailableBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	balance, err := s.AccountBalance(ctx, accountID, nil)
	if err != nil {
		return decimal.Zero, err
	}
	potTotal, err := s.ledgerRepo.SumPotBalances(ctx, accountID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum pot balances for account %s: %w", accountID, err)
	}
	return balance.Sub(potTotal), nil
}

func (s *ledgerService) AccountTransactions(ctx context.Context, accountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, fmt.Errorf("failed to get account %s for history: %w", accountID, err)
	}
	txns, nextToken, err := s.ledgerRepo.ListTransactionsByAccount(ctx, accountID, toListLegsParams(params))
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for account %s: %w", accountID, err)
	}
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

func (s *ledgerService) PotTransactions(ctx context.Context, potID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if _, err := s.accountRepo.FindPotByID(ctx, potID); err != nil {
		return nil, fmt.Errorf("failed to get pot %s for history: %w", potID, err)
	}
	txns, nextToken, err := s.ledgerRepo.ListTransactionsByPot(ctx, potID, toListLegsParams(params))
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for pot %s: %w", potID, err)
	}
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

func (s *ledgerService) CategoryTransactions(ctx context.Context, categoryID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		return nil, fmt.Errorf("failed to get category %s for history: %w", categoryID, err)
	}
	txns, nextToken, err := s.ledgerRepo.ListTransactionsByCategory(ctx, categoryID, toListLegsParams(params))
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for category %s: %w", categoryID, err)
	}
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

func (s *ledgerService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.ledgerRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func toListLegsParams(params dto.ListTransactionsParams) portsrepo.ListLegsParams {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	return portsrepo.ListLegsParams{
		From:      params.From,
		To:        params.To,
		Limit:     limit,
		NextToken: params.NextToken,
	}
}
