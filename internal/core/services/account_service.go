package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneypot/moneypot/internal/apperrors"
	"github.com/moneypot/moneypot/internal/core/domain"
	portsrepo "github.com/moneypot/moneypot/internal/core/ports/repositories"
	portssvc "github.com/moneypot/moneypot/internal/core/ports/services"
	"github.com/moneypot/moneypot/internal/dto"
	"github.com/moneypot/moneypot/internal/middleware"
	"github.com/moneypot/moneypot/internal/utils/accounting"
)

// accountService implements account and pot management.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	currencySvc portssvc.CurrencySvcFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryFacade, currencySvc portssvc.CurrencySvcFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		currencySvc: currencySvc,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: account name must not be empty", apperrors.ErrValidation)
	}

	// The account currency must be registered; it is immutable afterwards.
	currency, err := s.currencySvc.GetCurrencyByCode(ctx, req.CurrencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to verify account currency: %w", err)
	}

	// Duplicate names make CLI lookups ambiguous, so reject them outright.
	existing, err := s.accountRepo.FindAccountByName(ctx, name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check account name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: account named %q already exists", apperrors.ErrDuplicate, name)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:    uuid.NewString(),
		Name:         name,
		AccountType:  req.AccountType,
		CurrencyCode: currency.CurrencyCode,
		Description:  req.Description,
		IsExternal:   req.IsExternal,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if req.InterestRate != nil {
		account.InterestRate = *req.InterestRate
	}
	if req.InterestCompounding != "" {
		account.InterestCompounding = req.InterestCompounding
	}
	if req.OverdraftLimit != nil {
		account.OverdraftLimit = *req.OverdraftLimit
	}
	if req.OverdraftInterestRate != nil {
		account.OverdraftInterestRate = *req.OverdraftInterestRate
	}
	if req.MinimumPayment != nil {
		account.MinimumPayment = *req.MinimumPayment
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("name", name), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	logger.Info("Account created",
		slog.String("account_id", account.AccountID),
		slog.String("name", account.Name),
		slog.String("type", string(account.AccountType)),
		slog.String("currency", account.CurrencyCode))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %s: %w", accountID, err)
	}
	return account, nil
}

func (s *accountService) GetAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("failed to get account %q: %w", name, err)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %s for update: %w", accountID, err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: account name must not be empty", apperrors.ErrValidation)
		}
		account.Name = name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	if req.InterestRate != nil {
		account.InterestRate = *req.InterestRate
	}
	if req.InterestCompounding != nil {
		account.InterestCompounding = *req.InterestCompounding
	}
	if req.OverdraftLimit != nil {
		account.OverdraftLimit = *req.OverdraftLimit
	}
	if req.OverdraftInterestRate != nil {
		account.OverdraftInterestRate = *req.OverdraftInterestRate
	}
	if req.MinimumPayment != nil {
		account.MinimumPayment = *req.MinimumPayment
	}
	account.LastUpdatedAt = time.Now().UTC()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update account %s: %w", accountID, err)
	}
	return account, nil
}

// CreatePot registers a pot under an existing account. A positive initial
// amount becomes a two-leg transaction moving funds from the account into
// the pot, committed atomically with the pot row itself.
func (s *accountService) CreatePot(ctx context.Context, req dto.CreatePotRequest) (*domain.Pot, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %s for pot: %w", req.AccountID, err)
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, req.AccountID)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: pot name must not be empty", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	pot := domain.Pot{
		PotID:     uuid.NewString(),
		AccountID: account.AccountID,
		Name:      name,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if req.TargetAmount != nil {
		if req.TargetAmount.IsNegative() {
			return nil, fmt.Errorf("%w: pot target amount must not be negative", apperrors.ErrValidation)
		}
		pot.TargetAmount = *req.TargetAmount
	}

	var funding *portsrepo.PotFunding
	if req.InitialAmount != nil && !req.InitialAmount.IsZero() {
		if req.InitialAmount.IsNegative() {
			return nil, fmt.Errorf("%w: pot initial amount must not be negative", apperrors.ErrValidation)
		}
		funding = s.buildInitialFunding(*account, pot, *req.InitialAmount, now)
	}

	if err := s.accountRepo.SavePot(ctx, pot, funding); err != nil {
		logger.Error("Failed to save pot",
			slog.String("account_id", account.AccountID),
			slog.String("name", name),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create pot: %w", err)
	}

	logger.Info("Pot created",
		slog.String("pot_id", pot.PotID),
		slog.String("account_id", account.AccountID),
		slog.Bool("funded", funding != nil))
	return &pot, nil
}

// buildInitialFunding constructs the account->pot funding transaction. The
// move is internal to the account: one leg debits the unassigned portion,
// one credits the pot.
func (s *accountService) buildInitialFunding(account domain.Account, pot domain.Pot, amount decimal.Decimal, now time.Time) *portsrepo.PotFunding {
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Description:   fmt.Sprintf("Initial funding of pot %s", pot.Name),
		Date:          accounting.DateOnly(now),
		CurrencyCode:  account.CurrencyCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	potID := pot.PotID
	legs := []domain.TransactionLeg{
		{
			LegID:         uuid.NewString(),
			TransactionID: txn.TransactionID,
			AccountID:     account.AccountID,
			Debit:         amount,
			CurrencyCode:  account.CurrencyCode,
			ExchangeRate:  one,
			AuditFields:   txn.AuditFields,
		},
		{
			LegID:         uuid.NewString(),
			TransactionID: txn.TransactionID,
			AccountID:     account.AccountID,
			PotID:         &potID,
			Credit:        amount,
			CurrencyCode:  account.CurrencyCode,
			ExchangeRate:  one,
			AuditFields:   txn.AuditFields,
		},
	}

	// The available (outside-pot) balance must cover the move regardless of
	// overdraft config: pots only ring-fence money the account actually holds.
	return &portsrepo.PotFunding{
		Transaction: txn,
		Legs:        legs,
		Guard: portsrepo.BalanceGuard{
			AccountID: account.AccountID,
			Required:  amount,
		},
	}
}

func (s *accountService) GetPotByID(ctx context.Context, potID string) (*domain.Pot, error) {
	pot, err := s.accountRepo.FindPotByID(ctx, potID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pot %s: %w", potID, err)
	}
	return pot, nil
}

func (s *accountService) ListPots(ctx context.Context, accountID *string) ([]domain.Pot, error) {
	var (
		pots []domain.Pot
		err  error
	)
	if accountID != nil {
		pots, err = s.accountRepo.ListPotsByAccount(ctx, *accountID)
	} else {
		pots, err = s.accountRepo.ListPots(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list pots: %w", err)
	}
	if pots == nil {
		return []domain.Pot{}, nil
	}
	return pots, nil
}

// DeactivatePot soft-deletes a pot. A pot holding a non-zero balance must be
// emptied first so that ring-fenced money never silently disappears.
func (s *accountService) DeactivatePot(ctx context.Context, potID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	pot, err := s.accountRepo.FindPotByID(ctx, potID)
	if err != nil {
		return fmt.Errorf("failed to get pot %s for deactivation: %w", potID, err)
	}

	balance, err := s.ledgerRepo.PotBalance(ctx, pot.PotID, nil)
	if err != nil {
		return fmt.Errorf("failed to check pot balance: %w", err)
	}
	if !balance.IsZero() {
		return fmt.Errorf("%w: pot %s still holds %s, transfer it out first", apperrors.ErrValidation, potID, balance)
	}

	if err := s.accountRepo.DeactivatePot(ctx, potID); err != nil {
		logger.Error("Failed to deactivate pot", slog.String("pot_id", potID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to deactivate pot %s: %w", potID, err)
	}
	logger.Info("Pot deactivated", slog.String("pot_id", potID))
	return nil
}
