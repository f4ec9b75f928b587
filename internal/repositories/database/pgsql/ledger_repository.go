package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/moneypot/moneypot/internal/apperrors"
	"github.com/moneypot/moneypot/internal/core/domain"
	portsrepo "github.com/moneypot/moneypot/internal/core/ports/repositories"
	"github.com/moneypot/moneypot/internal/models"
	"github.com/moneypot/moneypot/internal/utils/mapping"
	"github.com/moneypot/moneypot/internal/utils/pagination"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates the append-only transaction store.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// SaveTransaction appends a transaction with its legs as one atomic unit:
// lock the touched accounts, evaluate every guard against the folded legs,
// insert the header and legs, refresh the balance cache, commit. Nothing is
// persisted when any step fails.
func (r *PgxLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, legs []domain.TransactionLeg, guards []portsrepo.BalanceGuard) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	accountIDs := make(map[string]struct{})
	for _, leg := range legs {
		accountIDs[leg.AccountID] = struct{}{}
	}
	for _, guard := range guards {
		accountIDs[guard.AccountID] = struct{}{}
	}
	if err := lockAccountsTx(ctx, tx, accountIDs); err != nil {
		return err
	}

	if err := checkGuardsTx(ctx, tx, guards); err != nil {
		return err
	}

	if err := insertTransactionTx(ctx, tx, txn, legs); err != nil {
		return err
	}

	if err := applyBalanceDeltasTx(ctx, tx, legs, txn.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// lockAccountsTx row-locks the given accounts in a stable order so two
// concurrent appends touching the same accounts serialize instead of
// deadlocking. Every account must exist.
func lockAccountsTx(ctx context.Context, tx pgx.Tx, accountIDs map[string]struct{}) error {
	ids := make([]string, 0, len(accountIDs))
	for id := range accountIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	query := `
		SELECT account_id FROM accounts
		WHERE account_id = ANY($1)
		ORDER BY account_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to lock accounts: %w", err)
	}
	locked, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return fmt.Errorf("failed to scan locked accounts: %w", err)
	}
	if len(locked) != len(ids) {
		found := make(map[string]struct{}, len(locked))
		for _, id := range locked {
			found[id] = struct{}{}
		}
		for _, id := range ids {
			if _, ok := found[id]; !ok {
				return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
			}
		}
	}
	return nil
}

// checkGuardsTx evaluates balance guards against the folded legs, inside the
// caller's transaction so the locks taken above make the check race-free.
func checkGuardsTx(ctx context.Context, tx pgx.Tx, guards []portsrepo.BalanceGuard) error {
	const potQuery = `
		SELECT COALESCE(SUM(credit - debit), 0) FROM transaction_legs
		WHERE account_id = $1 AND pot_id = $2;
	`
	const availableQuery = `
		SELECT COALESCE(SUM(credit - debit), 0) FROM transaction_legs
		WHERE account_id = $1 AND pot_id IS NULL;
	`
	for _, guard := range guards {
		var balance decimal.Decimal
		var err error
		if guard.PotID != nil {
			err = tx.QueryRow(ctx, potQuery, guard.AccountID, *guard.PotID).Scan(&balance)
		} else {
			err = tx.QueryRow(ctx, availableQuery, guard.AccountID).Scan(&balance)
		}
		if err != nil {
			return fmt.Errorf("failed to fold guarded balance for account %s: %w", guard.AccountID, err)
		}
		if balance.LessThan(guard.Required) {
			return fmt.Errorf("%w: account %s holds %s, needs %s", apperrors.ErrInsufficientFunds, guard.AccountID, balance, guard.Required)
		}
	}
	return nil
}

// insertTransactionTx inserts the header row and batch-inserts the legs.
func insertTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction, legs []domain.TransactionLeg) error {
	modelTxn := mapping.ToModelTransaction(txn)

	headerQuery := `
		INSERT INTO transactions (transaction_id, description, txn_date, currency_code, category_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, headerQuery,
		modelTxn.TransactionID,
		modelTxn.Description,
		modelTxn.Date,
		modelTxn.CurrencyCode,
		modelTxn.CategoryID,
		modelTxn.CreatedAt,
		modelTxn.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", modelTxn.TransactionID, err)
	}

	batch := &pgx.Batch{}
	legQuery := `
		INSERT INTO transaction_legs (leg_id, transaction_id, account_id, pot_id, debit, credit, currency_code, exchange_rate, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, leg := range legs {
		modelLeg := mapping.ToModelLeg(leg)
		batch.Queue(legQuery,
			modelLeg.LegID,
			modelLeg.TransactionID,
			modelLeg.AccountID,
			modelLeg.PotID,
			modelLeg.Debit,
			modelLeg.Credit,
			modelLeg.CurrencyCode,
			modelLeg.ExchangeRate,
			modelLeg.CreatedAt,
			modelLeg.LastUpdatedAt,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert legs for transaction %s: %w", modelTxn.TransactionID, err)
	}
	return nil
}

// applyBalanceDeltasTx refreshes the denormalized balance cache on accounts.
// The fold over legs stays authoritative; the cache only serves list views.
func applyBalanceDeltasTx(ctx context.Context, tx pgx.Tx, legs []domain.TransactionLeg, now time.Time) error {
	deltas := make(map[string]decimal.Decimal)
	for _, leg := range legs {
		deltas[leg.AccountID] = deltas[leg.AccountID].Add(leg.Delta())
	}

	query := `
		UPDATE accounts SET balance = balance + $2, last_updated_at = $3
		WHERE account_id = $1;
	`
	for accountID, delta := range deltas {
		if delta.IsZero() {
			continue
		}
		if _, err := tx.Exec(ctx, query, accountID, delta, now); err != nil {
			return fmt.Errorf("failed to update balance cache for account %s: %w", accountID, err)
		}
	}
	return nil
}

const transactionColumns = `transaction_id, description, txn_date, currency_code, category_id, created_at, last_updated_at`
const legColumns = `leg_id, transaction_id, account_id, pot_id, debit, credit, currency_code, exchange_rate, created_at, last_updated_at`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.TransactionID,
		&t.Description,
		&t.Date,
		&t.CurrencyCode,
		&t.CategoryID,
		&t.CreatedAt,
		&t.LastUpdatedAt,
	)
	return t, err
}

func collectLegs(rows pgx.Rows) ([]models.TransactionLeg, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.TransactionLeg, error) {
		var l models.TransactionLeg
		err := row.Scan(
			&l.LegID,
			&l.TransactionID,
			&l.AccountID,
			&l.PotID,
			&l.Debit,
			&l.Credit,
			&l.CurrencyCode,
			&l.ExchangeRate,
			&l.CreatedAt,
			&l.LastUpdatedAt,
		)
		return l, err
	})
}

// FindTransactionByID returns a transaction with its legs populated.
func (r *PgxLedgerRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	modelTxn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	legs, err := r.FindLegsByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	domainTxn.Legs = legs
	return &domainTxn, nil
}

// FindLegsByTransactionID returns the legs of one transaction.
func (r *PgxLedgerRepository) FindLegsByTransactionID(ctx context.Context, transactionID string) ([]domain.TransactionLeg, error) {
	query := `SELECT ` + legColumns + ` FROM transaction_legs WHERE transaction_id = $1 ORDER BY created_at, leg_id;`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query legs for transaction %s: %w", transactionID, err)
	}
	defer rows.Close()

	modelLegs, err := collectLegs(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan legs: %w", err)
	}
	return mapping.ToDomainLegSlice(modelLegs), nil
}

// ListTransactionsByAccount returns transactions touching the account, newest
// first, cursor-paginated on (txn_date, created_at, transaction_id).
func (r *PgxLedgerRepository) ListTransactionsByAccount(ctx context.Context, accountID string, params portsrepo.ListLegsParams) ([]domain.Transaction, *string, error) {
	return r.listTransactions(ctx, `
		SELECT DISTINCT t.transaction_id, t.description, t.txn_date, t.currency_code, t.category_id, t.created_at, t.last_updated_at
		FROM transactions t
		JOIN transaction_legs l ON l.transaction_id = t.transaction_id
		WHERE l.account_id = $1`, accountID, params)
}

// ListTransactionsByPot is the account query restricted to pot-tagged legs.
func (r *PgxLedgerRepository) ListTransactionsByPot(ctx context.Context, potID string, params portsrepo.ListLegsParams) ([]domain.Transaction, *string, error) {
	return r.listTransactions(ctx, `
		SELECT DISTINCT t.transaction_id, t.description, t.txn_date, t.currency_code, t.category_id, t.created_at, t.last_updated_at
		FROM transactions t
		JOIN transaction_legs l ON l.transaction_id = t.transaction_id
		WHERE l.pot_id = $1`, potID, params)
}

// ListTransactionsByCategory filters the history on the header's category tag.
func (r *PgxLedgerRepository) ListTransactionsByCategory(ctx context.Context, categoryID string, params portsrepo.ListLegsParams) ([]domain.Transaction, *string, error) {
	return r.listTransactions(ctx, `
		SELECT t.transaction_id, t.description, t.txn_date, t.currency_code, t.category_id, t.created_at, t.last_updated_at
		FROM transactions t
		WHERE t.category_id = $1`, categoryID, params)
}

func (r *PgxLedgerRepository) listTransactions(ctx context.Context, baseQuery, filterID string, params portsrepo.ListLegsParams) ([]domain.Transaction, *string, error) {
	query := baseQuery
	args := []any{filterID}

	if params.From != nil {
		args = append(args, *params.From)
		query += fmt.Sprintf(" AND t.txn_date >= $%d", len(args))
	}
	if params.To != nil {
		args = append(args, *params.To)
		query += fmt.Sprintf(" AND t.txn_date <= $%d", len(args))
	}
	if params.NextToken != nil {
		txnDate, createdAt, transactionID, err := pagination.DecodeToken(*params.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		// The row comparison matches the full ORDER BY key so rows sharing
		// both timestamps at a page boundary are neither skipped nor repeated.
		args = append(args, txnDate, createdAt, transactionID)
		query += fmt.Sprintf(" AND (t.txn_date, t.created_at, t.transaction_id) < ($%d, $%d, $%d)", len(args)-2, len(args)-1, len(args))
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to know whether a next page exists.
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY t.txn_date DESC, t.created_at DESC, t.transaction_id DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	var nextToken *string
	if len(modelTxns) > limit {
		modelTxns = modelTxns[:limit]
		last := modelTxns[len(modelTxns)-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt, last.TransactionID)
		nextToken = &token
	}

	txns := make([]domain.Transaction, len(modelTxns))
	for i, m := range modelTxns {
		txns[i] = mapping.ToDomainTransaction(m)
		legs, err := r.FindLegsByTransactionID(ctx, m.TransactionID)
		if err != nil {
			return nil, nil, err
		}
		txns[i].Legs = legs
	}
	return txns, nextToken, nil
}

// AccountBalance folds credit-debit over every leg of the account, pot-tagged
// legs included, up to asOf when given.
func (r *PgxLedgerRepository) AccountBalance(ctx context.Context, accountID string, asOf *time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(l.credit - l.debit), 0)
		FROM transaction_legs l
		JOIN transactions t ON t.transaction_id = l.transaction_id
		WHERE l.account_id = $1 AND ($2::timestamptz IS NULL OR t.txn_date <= $2);
	`
	var balance decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, accountID, asOf).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("failed to fold balance for account %s: %w", accountID, err)
	}
	return balance, nil
}

// PotBalance folds the legs tagged with the pot.
func (r *PgxLedgerRepository) PotBalance(ctx context.Context, potID string, asOf *time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(l.credit - l.debit), 0)
		FROM transaction_legs l
		JOIN transactions t ON t.transaction_id = l.transaction_id
		WHERE l.pot_id = $1 AND ($2::timestamptz IS NULL OR t.txn_date <= $2);
	`
	var balance decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, potID, asOf).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("failed to fold balance for pot %s: %w", potID, err)
	}
	return balance, nil
}

// SumPotBalances folds every pot-tagged leg of the account's pots.
func (r *PgxLedgerRepository) SumPotBalances(ctx context.Context, accountID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(credit - debit), 0)
		FROM transaction_legs
		WHERE account_id = $1 AND pot_id IS NOT NULL;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, accountID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum pot balances for account %s: %w", accountID, err)
	}
	return total, nil
}
