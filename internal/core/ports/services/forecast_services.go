package services

import (
	"context"
	"time"

	"github.com/moneypot/moneypot/internal/core/domain"
	"github.com/moneypot/moneypot/internal/dto"
)

// ForecastSvcFacade projects scheduled transactions into a date range. It
// reads the ledger for starting balances and never posts to the engine.
type ForecastSvcFacade interface {
	CreateScheduled(ctx context.Context, req dto.CreateScheduledRequest) (*domain.ScheduledTransaction, error)
	ListScheduled(ctx context.Context) ([]domain.ScheduledTransaction, error)
	DeactivateScheduled(ctx context.Context, scheduledID string) error

	// Forecast expands every active schedule into dated entries within
	// [start, end], clamped to each schedule's own start/end.
	Forecast(ctx context.Context, start, end time.Time) ([]domain.ForecastEntry, error)
	// AccountProjection applies forecast entries touching the account to its
	// current balance, producing a dated balance series.
	AccountProjection(ctx context.Context, accountID string, start, end time.Time) ([]domain.ProjectionPoint, error)
}
