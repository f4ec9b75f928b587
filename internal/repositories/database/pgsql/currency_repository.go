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

// uniqueViolation is the Postgres error code for duplicate keys.
const uniqueViolation = "23505"

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// SaveCurrency inserts a new currency. Duplicate codes map to ErrDuplicate.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currencies (currency_code, name, symbol, kind, decimals, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCurr.CurrencyCode,
		modelCurr.Name,
		modelCurr.Symbol,
		modelCurr.Kind,
		modelCurr.Decimals,
		modelCurr.IsActive,
		modelCurr.CreatedAt,
		modelCurr.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: currency %s", apperrors.ErrDuplicate, modelCurr.CurrencyCode)
		}
		return fmt.Errorf("failed to save currency %s: %w", modelCurr.CurrencyCode, err)
	}
	return nil
}

// FindCurrencyByCode retrieves a currency by its code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `
		SELECT currency_code, name, symbol, kind, decimals, is_active, created_at, last_updated_at
		FROM currencies
		WHERE currency_code = $1;
	`
	var modelCurr models.Currency
	err := r.Pool.QueryRow(ctx, query, code).Scan(
		&modelCurr.CurrencyCode,
		&modelCurr.Name,
		&modelCurr.Symbol,
		&modelCurr.Kind,
		&modelCurr.Decimals,
		&modelCurr.IsActive,
		&modelCurr.CreatedAt,
		&modelCurr.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, code)
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", code, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves active currencies, optionally filtered by kind.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context, kind *domain.CurrencyKind) ([]domain.Currency, error) {
	query := `
		SELECT currency_code, name, symbol, kind, decimals, is_active, created_at, last_updated_at
		FROM currencies
		WHERE is_active = TRUE AND ($1::text IS NULL OR kind = $1)
		ORDER BY currency_code;
	`
	var kindArg *string
	if kind != nil {
		k := string(*kind)
		kindArg = &k
	}

	rows, err := r.Pool.Query(ctx, query, kindArg)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var currency models.Currency
		err := row.Scan(
			&currency.CurrencyCode,
			&currency.Name,
			&currency.Symbol,
			&currency.Kind,
			&currency.Decimals,
			&currency.IsActive,
			&currency.CreatedAt,
			&currency.LastUpdatedAt,
		)
		return currency, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

// DeactivateCurrency soft-deletes a currency.
func (r *PgxCurrencyRepository) DeactivateCurrency(ctx context.Context, code string) error {
	query := `
		UPDATE currencies SET is_active = FALSE, last_updated_at = NOW()
		WHERE currency_code = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, code)
	if err != nil {
		return fmt.Errorf("failed to deactivate currency %s: %w", code, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, code)
	}
	return nil
}
