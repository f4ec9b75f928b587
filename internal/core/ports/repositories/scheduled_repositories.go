package repositories

import (
	"context"

	"github.com/moneypot/moneypot/internal/core/domain"
)

// ScheduledRepositoryFacade defines persistence for scheduled transactions.
type ScheduledRepositoryFacade interface {
	SaveScheduled(ctx context.Context, scheduled domain.ScheduledTransaction) error
	FindScheduledByID(ctx context.Context, scheduledID string) (*domain.ScheduledTransaction, error)
	ListScheduled(ctx context.Context, onlyActive bool) ([]domain.ScheduledTransaction, error)
	DeactivateScheduled(ctx context.Context, scheduledID string) error
}
