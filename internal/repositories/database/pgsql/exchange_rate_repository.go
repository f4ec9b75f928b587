package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moneypot/moneypot/internal/apperrors"
	"github.com/moneypot/moneypot/internal/core/domain"
	portsrepo "github.com/moneypot/moneypot/internal/core/ports/repositories"
	"github.com/moneypot/moneypot/internal/models"
	"github.com/moneypot/moneypot/internal/utils/mapping"
)

type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new repository for exchange rates.
func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// SaveExchangeRate appends a new rate record. Rates are never updated in
// place; history accumulates per pair.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	modelRate := mapping.ToModelExchangeRate(rate)

	query := `
		INSERT INTO exchange_rates (exchange_rate_id, from_currency_code, to_currency_code, rate, rate_timestamp, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelRate.ExchangeRateID,
		modelRate.FromCurrencyCode,
		modelRate.ToCurrencyCode,
		modelRate.Rate,
		modelRate.Timestamp,
		modelRate.CreatedAt,
		modelRate.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save exchange rate %s->%s: %w", modelRate.FromCurrencyCode, modelRate.ToCurrencyCode, err)
	}
	return nil
}

// FindRateAt returns the most recent rate for the pair at or before `at`, or
// the latest overall when `at` is nil. Ties on timestamp are broken by
// creation time so a re-posted rate wins.
func (r *PgxExchangeRateRepository) FindRateAt(ctx context.Context, fromCode, toCode string, at *time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT exchange_rate_id, from_currency_code, to_currency_code, rate, rate_timestamp, created_at, last_updated_at
		FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2
		  AND ($3::timestamptz IS NULL OR rate_timestamp <= $3)
		ORDER BY rate_timestamp DESC, created_at DESC
		LIMIT 1;
	`
	var modelRate models.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, fromCode, toCode, at).Scan(
		&modelRate.ExchangeRateID,
		&modelRate.FromCurrencyCode,
		&modelRate.ToCurrencyCode,
		&modelRate.Rate,
		&modelRate.Timestamp,
		&modelRate.CreatedAt,
		&modelRate.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no rate for %s->%s", apperrors.ErrExchangeRateMissing, fromCode, toCode)
		}
		return nil, fmt.Errorf("failed to find rate %s->%s: %w", fromCode, toCode, err)
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// ListRates returns the rate history for a pair, newest first.
func (r *PgxExchangeRateRepository) ListRates(ctx context.Context, fromCode, toCode string, limit int) ([]domain.ExchangeRate, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT exchange_rate_id, from_currency_code, to_currency_code, rate, rate_timestamp, created_at, last_updated_at
		FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2
		ORDER BY rate_timestamp DESC, created_at DESC
		LIMIT $3;
	`
	rows, err := r.Pool.Query(ctx, query, fromCode, toCode, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query rates %s->%s: %w", fromCode, toCode, err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		var rate models.ExchangeRate
		err := row.Scan(
			&rate.ExchangeRateID,
			&rate.FromCurrencyCode,
			&rate.ToCurrencyCode,
			&rate.Rate,
			&rate.Timestamp,
			&rate.CreatedAt,
			&rate.LastUpdatedAt,
		)
		return rate, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan rates: %w", err)
	}

	return mapping.ToDomainExchangeRateSlice(modelRates), nil
}
