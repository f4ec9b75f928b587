package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moneypot/moneypot/internal/apperrors"
	"github.com/moneypot/moneypot/internal/core/domain"
	portsrepo "github.com/moneypot/moneypot/internal/core/ports/repositories"
	"github.com/moneypot/moneypot/internal/models"
	"github.com/moneypot/moneypot/internal/utils/mapping"
)

const scheduledColumns = `scheduled_id, description, amount, from_account_id, to_account_id, recurrence, start_date, end_date, is_active, created_at, last_updated_at`

type PgxScheduledRepository struct {
	BaseRepository
}

// newPgxScheduledRepository creates a new repository for scheduled transactions.
func newPgxScheduledRepository(pool *pgxpool.Pool) portsrepo.ScheduledRepositoryFacade {
	return &PgxScheduledRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ScheduledRepositoryFacade = (*PgxScheduledRepository)(nil)

func scanScheduled(row pgx.Row) (models.ScheduledTransaction, error) {
	var s models.ScheduledTransaction
	err := row.Scan(
		&s.ScheduledID,
		&s.Description,
		&s.Amount,
		&s.FromAccountID,
		&s.ToAccountID,
		&s.Recurrence,
		&s.StartDate,
		&s.EndDate,
		&s.IsActive,
		&s.CreatedAt,
		&s.LastUpdatedAt,
	)
	return s, err
}

// SaveScheduled inserts a new scheduled transaction.
func (r *PgxScheduledRepository) SaveScheduled(ctx context.Context, scheduled domain.ScheduledTransaction) error {
	modelSched := mapping.ToModelScheduled(scheduled)

	query := `
		INSERT INTO scheduled_transactions (scheduled_id, description, amount, from_account_id, to_account_id, recurrence, start_date, end_date, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelSched.ScheduledID,
		modelSched.Description,
		modelSched.Amount,
		modelSched.FromAccountID,
		modelSched.ToAccountID,
		modelSched.Recurrence,
		modelSched.StartDate,
		modelSched.EndDate,
		modelSched.IsActive,
		modelSched.CreatedAt,
		modelSched.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save scheduled transaction %s: %w", modelSched.ScheduledID, err)
	}
	return nil
}

// FindScheduledByID retrieves a scheduled transaction by ID.
func (r *PgxScheduledRepository) FindScheduledByID(ctx context.Context, scheduledID string) (*domain.ScheduledTransaction, error) {
	query := `SELECT ` + scheduledColumns + ` FROM scheduled_transactions WHERE scheduled_id = $1;`
	modelSched, err := scanScheduled(r.Pool.QueryRow(ctx, query, scheduledID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: scheduled transaction %s", apperrors.ErrNotFound, scheduledID)
		}
		return nil, fmt.Errorf("failed to find scheduled transaction %s: %w", scheduledID, err)
	}
	domainSched := mapping.ToDomainScheduled(modelSched)
	return &domainSched, nil
}

// ListScheduled retrieves scheduled transactions, optionally only active ones.
func (r *PgxScheduledRepository) ListScheduled(ctx context.Context, onlyActive bool) ([]domain.ScheduledTransaction, error) {
	query := `SELECT ` + scheduledColumns + ` FROM scheduled_transactions WHERE ($1 = FALSE OR is_active = TRUE) ORDER BY start_date, scheduled_id;`
	rows, err := r.Pool.Query(ctx, query, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduled transactions: %w", err)
	}
	defer rows.Close()

	modelScheds, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ScheduledTransaction, error) {
		return scanScheduled(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan scheduled transactions: %w", err)
	}
	return mapping.ToDomainScheduledSlice(modelScheds), nil
}

// DeactivateScheduled soft-deletes a scheduled transaction.
func (r *PgxScheduledRepository) DeactivateScheduled(ctx context.Context, scheduledID string) error {
	query := `UPDATE scheduled_transactions SET is_active = FALSE, last_updated_at = NOW() WHERE scheduled_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, scheduledID)
	if err != nil {
		return fmt.Errorf("failed to deactivate scheduled transaction %s: %w", scheduledID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: scheduled transaction %s", apperrors.ErrNotFound, scheduledID)
	}
	return nil
}
