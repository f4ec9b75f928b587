package services

import (
	"context"
	"fmt"
	"log/slog"
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

var one = decimal.NewFromInt(1)

// transferService is the transfer engine. Every operation builds a balanced
// multi-leg transaction and hands it to the ledger repository together with
// the balance guards it must evaluate under row locks; nothing is persisted
// when any check fails.
type transferService struct {
	ledgerRepo   portsrepo.LedgerRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
	currencySvc  portssvc.CurrencySvcFacade
	strictFunds  bool
}

// NewTransferService creates a new transfer service. strictFunds enables the
// sufficient-funds guard on accounts that do not allow overdrafts.
func NewTransferService(ledgerRepo portsrepo.LedgerRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade, currencySvc portssvc.CurrencySvcFacade, strictFunds bool) portssvc.TransferSvcFacade {
	return &transferService{
		ledgerRepo:   ledgerRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		currencySvc:  currencySvc,
		strictFunds:  strictFunds,
	}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// TransferBetweenAccounts moves req.Amount, denominated in the source
// account's currency, to the destination account. When the currencies differ
// the credited amount is converted using the rate effective at the transfer
// date; no rate for the pair fails the transfer.
func (s *transferService) TransferBetweenAccounts(ctx context.Context, req dto.TransferRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.FromAccountID == req.ToAccountID {
		return nil, fmt.Errorf("%w: cannot transfer from an account to itself", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: transfer amount must be positive, got %s", apperrors.ErrValidation, req.Amount)
	}

	from, err := s.activeAccount(ctx, req.FromAccountID)
	if err != nil {
		return nil, err
	}
	to, err := s.activeAccount(ctx, req.ToAccountID)
	if err != nil {
		return nil, err
	}
	categoryID, err := s.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	date := s.transferDate(req.Date)
	rateAt := date

	// Settlement currency is the source account's. The destination leg
	// carries the settlement->destination rate; 1 when currencies match.
	rate := one
	credited := req.Amount
	if from.CurrencyCode != to.CurrencyCode {
		rate, err = s.currencySvc.RateAt(ctx, from.CurrencyCode, to.CurrencyCode, &rateAt)
		if err != nil {
			return nil, err
		}
		credited = req.Amount.Mul(rate)
	}

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Transfer from %s to %s", from.Name, to.Name)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Description:   description,
		Date:          date,
		CurrencyCode:  from.CurrencyCode,
		CategoryID:    categoryID,
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	legs := []domain.TransactionLeg{
		{
			LegID:         uuid.NewString(),
			TransactionID: txn.TransactionID,
			AccountID:     from.AccountID,
			Debit:         req.Amount,
			CurrencyCode:  from.CurrencyCode,
			ExchangeRate:  one,
			AuditFields:   txn.AuditFields,
		},
		{
			LegID:         uuid.NewString(),
			TransactionID: txn.TransactionID,
			AccountID:     to.AccountID,
			Credit:        credited,
			CurrencyCode:  to.CurrencyCode,
			ExchangeRate:  rate,
			AuditFields:   txn.AuditFields,
		},
	}

	var guards []portsrepo.BalanceGuard
	if s.strictFunds && !from.AllowsOverdraft() {
		guards = append(guards, portsrepo.BalanceGuard{AccountID: from.AccountID, Required: req.Amount})
	}

	if err := s.commit(ctx, &txn, legs, guards); err != nil {
		return nil, err
	}

	logger.Info("Transfer committed",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("from", from.AccountID),
		slog.String("to", to.AccountID),
		slog.String("amount", req.Amount.String()),
		slog.String("rate", rate.String()))
	return &txn, nil
}

// TransferToPot moves funds from an account's unassigned portion into one of
// its pots. The account's total balance is unchanged.
func (s *transferService) TransferToPot(ctx context.Context, req dto.PotTransferRequest) (*domain.Transaction, error) {
	account, pot, err := s.accountAndPot(ctx, req.AccountID, req.PotID)
	if err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: transfer amount must be positive, got %s", apperrors.ErrValidation, req.Amount)
	}

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Move to pot %s", pot.Name)
	}

	txn, legs := s.buildPotMove(account, description, s.transferDate(req.Date), req.Amount, nil, &pot.PotID)

	// The unassigned portion must cover the move regardless of overdraft
	// config: pots only ever ring-fence money the account actually holds.
	guards := []portsrepo.BalanceGuard{{AccountID: account.AccountID, Required: req.Amount}}

	if err := s.commit(ctx, &txn, legs, guards); err != nil {
		return nil, err
	}
	return &txn, nil
}

// TransferFromPot moves funds out of a pot back into the account's unassigned
// portion. The pot balance can never go negative, strict mode or not.
func (s *transferService) TransferFromPot(ctx context.Context, req dto.PotTransferRequest) (*domain.Transaction, error) {
	account, pot, err := s.accountAndPot(ctx, req.AccountID, req.PotID)
	if err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: transfer amount must be positive, got %s", apperrors.ErrValidation, req.Amount)
	}

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Withdraw from pot %s", pot.Name)
	}

	txn, legs := s.buildPotMove(account, description, s.transferDate(req.Date), req.Amount, &pot.PotID, nil)

	potID := pot.PotID
	guards := []portsrepo.BalanceGuard{{AccountID: account.AccountID, PotID: &potID, Required: req.Amount}}

	if err := s.commit(ctx, &txn, legs, guards); err != nil {
		return nil, err
	}
	return &txn, nil
}

// TransferBetweenPots moves funds between two pots of the same account.
func (s *transferService) TransferBetweenPots(ctx context.Context, req dto.PotToPotTransferRequest) (*domain.Transaction, error) {
	if req.FromPotID == req.ToPotID {
		return nil, fmt.Errorf("%w: cannot transfer from a pot to itself", apperrors.ErrValidation)
	}
	account, fromPot, err := s.accountAndPot(ctx, req.AccountID, req.FromPotID)
	if err != nil {
		return nil, err
	}
	_, toPot, err := s.accountAndPot(ctx, req.AccountID, req.ToPotID)
	if err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: transfer amount must be positive, got %s", apperrors.ErrValidation, req.Amount)
	}

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Move from pot %s to pot %s", fromPot.Name, toPot.Name)
	}

	txn, legs := s.buildPotMove(account, description, s.transferDate(req.Date), req.Amount, &fromPot.PotID, &toPot.PotID)

	fromPotID := fromPot.PotID
	guards := []portsrepo.BalanceGuard{{AccountID: account.AccountID, PotID: &fromPotID, Required: req.Amount}}

	if err := s.commit(ctx, &txn, legs, guards); err != nil {
		return nil, err
	}
	return &txn, nil
}

// CreateMultiLegTransaction is the general primitive: any number of legs
// across any accounts, balanced in the settlement currency. Each leg is
// denominated in its own account's currency; the rate recorded on a leg is
// the settlement->leg-currency rate effective at the transaction date.
func (s *transferService) CreateMultiLegTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Legs) < 2 {
		return nil, fmt.Errorf("%w: transaction must have at least two legs", apperrors.ErrValidation)
	}
	if req.Description == "" {
		return nil, fmt.Errorf("%w: transaction description is required", apperrors.ErrValidation)
	}

	settlement, err := s.currencySvc.GetCurrencyByCode(ctx, req.CurrencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to verify settlement currency: %w", err)
	}
	categoryID, err := s.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	accountIDs := make([]string, 0, len(req.Legs))
	for _, leg := range req.Legs {
		accountIDs = append(accountIDs, leg.AccountID)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load leg accounts: %w", err)
	}

	date := s.transferDate(req.Date)
	rateAt := date
	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Description:   req.Description,
		Date:          date,
		CurrencyCode:  settlement.CurrencyCode,
		CategoryID:    categoryID,
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	legs := make([]domain.TransactionLeg, len(req.Legs))
	for i, legReq := range req.Legs {
		account, ok := accounts[legReq.AccountID]
		if !ok {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, legReq.AccountID)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, account.AccountID)
		}

		if legReq.PotID != nil {
			pot, err := s.accountRepo.FindPotByID(ctx, *legReq.PotID)
			if err != nil {
				return nil, fmt.Errorf("failed to get pot %s: %w", *legReq.PotID, err)
			}
			if pot.AccountID != account.AccountID {
				return nil, fmt.Errorf("%w: pot %s belongs to account %s", apperrors.ErrPotOwnership, pot.PotID, pot.AccountID)
			}
		}

		rate := one
		if account.CurrencyCode != settlement.CurrencyCode {
			rate, err = s.currencySvc.RateAt(ctx, settlement.CurrencyCode, account.CurrencyCode, &rateAt)
			if err != nil {
				return nil, err
			}
		}

		legs[i] = domain.TransactionLeg{
			LegID:         uuid.NewString(),
			TransactionID: txn.TransactionID,
			AccountID:     account.AccountID,
			PotID:         legReq.PotID,
			CurrencyCode:  account.CurrencyCode,
			ExchangeRate:  rate,
			AuditFields:   txn.AuditFields,
		}
		if legReq.Debit != nil {
			legs[i].Debit = *legReq.Debit
		}
		if legReq.Credit != nil {
			legs[i].Credit = *legReq.Credit
		}
	}

	if err := accounting.ValidateLegs(legs); err != nil {
		return nil, err
	}

	guards, err := s.buildGuards(legs, accounts)
	if err != nil {
		return nil, err
	}

	if err := s.commit(ctx, &txn, legs, guards); err != nil {
		return nil, err
	}

	logger.Info("Multi-leg transaction committed",
		slog.String("transaction_id", txn.TransactionID),
		slog.Int("legs", len(legs)),
		slog.String("currency", txn.CurrencyCode))
	return &txn, nil
}

// buildGuards derives one guard per net-debited position. Pot positions are
// always guarded; untagged positions only under strict funds on accounts
// without overdraft room.
func (s *transferService) buildGuards(legs []domain.TransactionLeg, accounts map[string]domain.Account) ([]portsrepo.BalanceGuard, error) {
	type position struct {
		accountID string
		potID     *string
	}
	net := make(map[string]decimal.Decimal)
	positions := make(map[string]position)
	for _, leg := range legs {
		key := leg.AccountID
		if leg.PotID != nil {
			key = leg.AccountID + "/" + *leg.PotID
		}
		net[key] = net[key].Add(leg.Delta())
		positions[key] = position{accountID: leg.AccountID, potID: leg.PotID}
	}

	var guards []portsrepo.BalanceGuard
	for key, delta := range net {
		if !delta.IsNegative() {
			continue
		}
		pos := positions[key]
		required := delta.Neg()
		if pos.potID != nil {
			potID := *pos.potID
			guards = append(guards, portsrepo.BalanceGuard{AccountID: pos.accountID, PotID: &potID, Required: required})
			continue
		}
		account := accounts[pos.accountID]
		if s.strictFunds && !account.AllowsOverdraft() {
			guards = append(guards, portsrepo.BalanceGuard{AccountID: pos.accountID, Required: required})
		}
	}
	return guards, nil
}

// buildPotMove assembles the two legs of an intra-account pot move. A nil
// pot ID on either side means the account's unassigned portion.
func (s *transferService) buildPotMove(account *domain.Account, description string, date time.Time, amount decimal.Decimal, fromPotID, toPotID *string) (domain.Transaction, []domain.TransactionLeg) {
	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Description:   description,
		Date:          date,
		CurrencyCode:  account.CurrencyCode,
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	legs := []domain.TransactionLeg{
		{
			LegID:         uuid.NewString(),
			TransactionID: txn.TransactionID,
			AccountID:     account.AccountID,
			PotID:         fromPotID,
			Debit:         amount,
			CurrencyCode:  account.CurrencyCode,
			ExchangeRate:  one,
			AuditFields:   txn.AuditFields,
		},
		{
			LegID:         uuid.NewString(),
			TransactionID: txn.TransactionID,
			AccountID:     account.AccountID,
			PotID:         toPotID,
			Credit:        amount,
			CurrencyCode:  account.CurrencyCode,
			ExchangeRate:  one,
			AuditFields:   txn.AuditFields,
		},
	}
	return txn, legs
}

// commit validates the leg set and appends it through the repository; the
// legs are attached to the returned transaction on success.
func (s *transferService) commit(ctx context.Context, txn *domain.Transaction, legs []domain.TransactionLeg, guards []portsrepo.BalanceGuard) error {
	if err := accounting.ValidateLegs(legs); err != nil {
		return err
	}
	if err := s.ledgerRepo.SaveTransaction(ctx, *txn, legs, guards); err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	txn.Legs = legs
	return nil
}

// resolveCategory verifies a category tag when one is given; nil passes
// through untouched.
func (s *transferService) resolveCategory(ctx context.Context, categoryID *string) (*string, error) {
	if categoryID == nil {
		return nil, nil
	}
	category, err := s.categoryRepo.FindCategoryByID(ctx, *categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify category %s: %w", *categoryID, err)
	}
	return &category.CategoryID, nil
}

func (s *transferService) activeAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %s: %w", accountID, err)
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, accountID)
	}
	return account, nil
}

// accountAndPot loads an active account and one of its active pots, checking
// the pot actually belongs to the account.
func (s *transferService) accountAndPot(ctx context.Context, accountID, potID string) (*domain.Account, *domain.Pot, error) {
	account, err := s.activeAccount(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	pot, err := s.accountRepo.FindPotByID(ctx, potID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get pot %s: %w", potID, err)
	}
	if pot.AccountID != account.AccountID {
		return nil, nil, fmt.Errorf("%w: pot %s belongs to account %s", apperrors.ErrPotOwnership, pot.PotID, pot.AccountID)
	}
	if !pot.IsActive {
		return nil, nil, fmt.Errorf("%w: pot %s is inactive", apperrors.ErrValidation, potID)
	}
	return account, pot, nil
}

func (s *transferService) transferDate(date *time.Time) time.Time {
	if date != nil {
		return accounting.DateOnly(*date)
	}
	return accounting.DateOnly(time.Now())
}
