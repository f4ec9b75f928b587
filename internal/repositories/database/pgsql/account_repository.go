package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moneypot/moneypot/internal/apperrors"
	"github.com/moneypot/moneypot/internal/core/domain"
	portsrepo "github.com/moneypot/moneypot/internal/core/ports/repositories"
	"github.com/moneypot/moneypot/internal/models"
	"github.com/moneypot/moneypot/internal/utils/mapping"
)

const accountColumns = `account_id, name, account_type, currency_code, description, is_external, is_active,
	interest_rate, interest_compounding, overdraft_limit, overdraft_interest_rate, minimum_payment,
	balance, created_at, last_updated_at`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for accounts and pots.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (models.Account, error) {
	var a models.Account
	err := row.Scan(
		&a.AccountID,
		&a.Name,
		&a.AccountType,
		&a.CurrencyCode,
		&a.Description,
		&a.IsExternal,
		&a.IsActive,
		&a.InterestRate,
		&a.InterestCompounding,
		&a.OverdraftLimit,
		&a.OverdraftInterestRate,
		&a.MinimumPayment,
		&a.Balance,
		&a.CreatedAt,
		&a.LastUpdatedAt,
	)
	return a, err
}

// SaveAccount inserts a new account with a zero balance cache.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, name, account_type, currency_code, description, is_external, is_active,
			interest_rate, interest_compounding, overdraft_limit, overdraft_interest_rate, minimum_payment,
			balance, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 0, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.Name,
		modelAcc.AccountType,
		modelAcc.CurrencyCode,
		modelAcc.Description,
		modelAcc.IsExternal,
		modelAcc.IsActive,
		modelAcc.InterestRate,
		modelAcc.InterestCompounding,
		modelAcc.OverdraftLimit,
		modelAcc.OverdraftInterestRate,
		modelAcc.MinimumPayment,
		modelAcc.CreatedAt,
		modelAcc.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: account %s", apperrors.ErrDuplicate, modelAcc.Name)
		}
		return fmt.Errorf("failed to save account %s: %w", modelAcc.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	modelAcc, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	domainAcc := mapping.ToDomainAccount(modelAcc)
	return &domainAcc, nil
}

// FindAccountsByIDs returns the accounts found keyed by ID.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	defer rows.Close()

	modelAccs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Account, error) {
		return scanAccount(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}

	accounts := make(map[string]domain.Account, len(modelAccs))
	for _, m := range modelAccs {
		accounts[m.AccountID] = mapping.ToDomainAccount(m)
	}
	return accounts, nil
}

// FindAccountByName retrieves an account by its unique name.
func (r *PgxAccountRepository) FindAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE name = $1;`
	modelAcc, err := scanAccount(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %q", apperrors.ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to find account %q: %w", name, err)
	}
	domainAcc := mapping.ToDomainAccount(modelAcc)
	return &domainAcc, nil
}

// ListAccounts retrieves all accounts ordered by name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	modelAccs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Account, error) {
		return scanAccount(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}
	return mapping.ToDomainAccountSlice(modelAccs), nil
}

// UpdateAccount persists the mutable account fields. Currency, type and the
// balance cache are never written here.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		UPDATE accounts SET
			name = $2, description = $3, is_active = $4,
			interest_rate = $5, interest_compounding = $6,
			overdraft_limit = $7, overdraft_interest_rate = $8, minimum_payment = $9,
			last_updated_at = $10
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.Name,
		modelAcc.Description,
		modelAcc.IsActive,
		modelAcc.InterestRate,
		modelAcc.InterestCompounding,
		modelAcc.OverdraftLimit,
		modelAcc.OverdraftInterestRate,
		modelAcc.MinimumPayment,
		modelAcc.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: account %s", apperrors.ErrDuplicate, modelAcc.Name)
		}
		return fmt.Errorf("failed to update account %s: %w", modelAcc.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, modelAcc.AccountID)
	}
	return nil
}

// SavePot inserts a pot and, when funding is given, its initial funding
// transaction in the same database transaction. The funding guard is
// evaluated after row-locking the account, exactly like a leg append.
func (r *PgxAccountRepository) SavePot(ctx context.Context, pot domain.Pot, funding *portsrepo.PotFunding) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := lockAccountsTx(ctx, tx, map[string]struct{}{pot.AccountID: {}}); err != nil {
		return err
	}

	modelPot := mapping.ToModelPot(pot)
	potQuery := `
		INSERT INTO pots (pot_id, account_id, name, target_amount, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, potQuery,
		modelPot.PotID,
		modelPot.AccountID,
		modelPot.Name,
		modelPot.TargetAmount,
		modelPot.IsActive,
		modelPot.CreatedAt,
		modelPot.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: pot %s on account %s", apperrors.ErrDuplicate, modelPot.Name, modelPot.AccountID)
		}
		return fmt.Errorf("failed to save pot %s: %w", modelPot.PotID, err)
	}

	if funding != nil {
		if !funding.Guard.Required.IsZero() {
			if err := checkGuardsTx(ctx, tx, []portsrepo.BalanceGuard{funding.Guard}); err != nil {
				return err
			}
		}
		if err := insertTransactionTx(ctx, tx, funding.Transaction, funding.Legs); err != nil {
			return err
		}
		if err := applyBalanceDeltasTx(ctx, tx, funding.Legs, funding.Transaction.LastUpdatedAt); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// FindPotByID retrieves a pot by ID.
func (r *PgxAccountRepository) FindPotByID(ctx context.Context, potID string) (*domain.Pot, error) {
	query := `
		SELECT pot_id, account_id, name, target_amount, is_active, created_at, last_updated_at
		FROM pots WHERE pot_id = $1;
	`
	var modelPot models.Pot
	err := r.Pool.QueryRow(ctx, query, potID).Scan(
		&modelPot.PotID,
		&modelPot.AccountID,
		&modelPot.Name,
		&modelPot.TargetAmount,
		&modelPot.IsActive,
		&modelPot.CreatedAt,
		&modelPot.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: pot %s", apperrors.ErrNotFound, potID)
		}
		return nil, fmt.Errorf("failed to find pot %s: %w", potID, err)
	}
	domainPot := mapping.ToDomainPot(modelPot)
	return &domainPot, nil
}

// ListPotsByAccount retrieves the active pots of one account.
func (r *PgxAccountRepository) ListPotsByAccount(ctx context.Context, accountID string) ([]domain.Pot, error) {
	query := `
		SELECT pot_id, account_id, name, target_amount, is_active, created_at, last_updated_at
		FROM pots WHERE account_id = $1 AND is_active = TRUE ORDER BY name;
	`
	return r.queryPots(ctx, query, accountID)
}

// ListPots retrieves all active pots.
func (r *PgxAccountRepository) ListPots(ctx context.Context) ([]domain.Pot, error) {
	query := `
		SELECT pot_id, account_id, name, target_amount, is_active, created_at, last_updated_at
		FROM pots WHERE is_active = TRUE ORDER BY account_id, name;
	`
	return r.queryPots(ctx, query)
}

func (r *PgxAccountRepository) queryPots(ctx context.Context, query string, args ...any) ([]domain.Pot, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pots: %w", err)
	}
	defer rows.Close()

	modelPots, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Pot, error) {
		var p models.Pot
		err := row.Scan(
			&p.PotID,
			&p.AccountID,
			&p.Name,
			&p.TargetAmount,
			&p.IsActive,
			&p.CreatedAt,
			&p.LastUpdatedAt,
		)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan pots: %w", err)
	}
	return mapping.ToDomainPotSlice(modelPots), nil
}

// DeactivatePot soft-deletes a pot.
func (r *PgxAccountRepository) DeactivatePot(ctx context.Context, potID string) error {
	query := `UPDATE pots SET is_active = FALSE, last_updated_at = NOW() WHERE pot_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, potID)
	if err != nil {
		return fmt.Errorf("failed to deactivate pot %s: %w", potID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: pot %s", apperrors.ErrNotFound, potID)
	}
	return nil
}
