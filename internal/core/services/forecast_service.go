package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
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

// forecastService projects scheduled transactions forward. It reads the
// ledger for starting balances and never posts anything to it.
type forecastService struct {
	scheduledRepo portsrepo.ScheduledRepositoryFacade
	accountRepo   portsrepo.AccountRepositoryFacade
	ledgerRepo    portsrepo.LedgerRepositoryFacade
	currencySvc   portssvc.CurrencySvcFacade
}

// NewForecastService creates a new forecast service.
func NewForecastService(scheduledRepo portsrepo.ScheduledRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryFacade, currencySvc portssvc.CurrencySvcFacade) portssvc.ForecastSvcFacade {
	return &forecastService{
		scheduledRepo: scheduledRepo,
		accountRepo:   accountRepo,
		ledgerRepo:    ledgerRepo,
		currencySvc:   currencySvc,
	}
}

var _ portssvc.ForecastSvcFacade = (*forecastService)(nil)

func (s *forecastService) CreateScheduled(ctx context.Context, req dto.CreateScheduledRequest) (*domain.ScheduledTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: scheduled amount must be positive, got %s", apperrors.ErrValidation, req.Amount)
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, fmt.Errorf("%w: scheduled transfer endpoints must differ", apperrors.ErrValidation)
	}

	start := accounting.DateOnly(req.StartDate)
	var end *time.Time
	if req.EndDate != nil {
		e := accounting.DateOnly(*req.EndDate)
		if e.Before(start) {
			return nil, fmt.Errorf("%w: scheduled end date precedes its start date", apperrors.ErrValidation)
		}
		end = &e
	}

	// Both endpoints must be real accounts; expansion never re-checks.
	for _, accountID := range []string{req.FromAccountID, req.ToAccountID} {
		if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
			return nil, fmt.Errorf("failed to verify scheduled account %s: %w", accountID, err)
		}
	}

	now := time.Now().UTC()
	scheduled := domain.ScheduledTransaction{
		ScheduledID:   uuid.NewString(),
		Description:   req.Description,
		Amount:        req.Amount,
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Recurrence:    req.Recurrence,
		StartDate:     start,
		EndDate:       end,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.scheduledRepo.SaveScheduled(ctx, scheduled); err != nil {
		logger.Error("Failed to save scheduled transaction", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create scheduled transaction: %w", err)
	}

	logger.Info("Scheduled transaction created",
		slog.String("scheduled_id", scheduled.ScheduledID),
		slog.String("recurrence", string(scheduled.Recurrence)))
	return &scheduled, nil
}

func (s *forecastService) ListScheduled(ctx context.Context) ([]domain.ScheduledTransaction, error) {
	scheduled, err := s.scheduledRepo.ListScheduled(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled transactions: %w", err)
	}
	if scheduled == nil {
		return []domain.ScheduledTransaction{}, nil
	}
	return scheduled, nil
}

func (s *forecastService) DeactivateScheduled(ctx context.Context, scheduledID string) error {
	if _, err := s.scheduledRepo.FindScheduledByID(ctx, scheduledID); err != nil {
		return fmt.Errorf("failed to get scheduled transaction %s: %w", scheduledID, err)
	}
	if err := s.scheduledRepo.DeactivateScheduled(ctx, scheduledID); err != nil {
		return fmt.Errorf("failed to deactivate scheduled transaction %s: %w", scheduledID, err)
	}
	return nil
}

// Forecast expands every active schedule into dated entries within
// [start, end], both inclusive, clamped to each schedule's own bounds.
// Entries come back sorted by date, then name.
func (s *forecastService) Forecast(ctx context.Context, start, end time.Time) ([]domain.ForecastEntry, error) {
	start = accounting.DateOnly(start)
	end = accounting.DateOnly(end)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: forecast end precedes its start", apperrors.ErrValidation)
	}

	scheduled, err := s.scheduledRepo.ListScheduled(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled transactions for forecast: %w", err)
	}

	entries := []domain.ForecastEntry{}
	for _, sched := range scheduled {
		for _, date := range expandOccurrences(sched, start, end) {
			entries = append(entries, domain.ForecastEntry{
				Date:          date,
				Name:          sched.Description,
				Amount:        sched.Amount,
				FromAccountID: sched.FromAccountID,
				ToAccountID:   sched.ToAccountID,
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// AccountProjection folds forecast entries touching the account onto its
// current balance, producing one point per date that has activity, preceded
// by a starting point at `start`. Entries sourced from accounts in another
// currency are converted at the rate effective on the entry date.
func (s *forecastService) AccountProjection(ctx context.Context, accountID string, start, end time.Time) ([]domain.ProjectionPoint, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %s for projection: %w", accountID, err)
	}

	balance, err := s.ledgerRepo.AccountBalance(ctx, accountID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fold balance for projection: %w", err)
	}

	entries, err := s.Forecast(ctx, start, end)
	if err != nil {
		return nil, err
	}

	// Scheduled amounts are denominated in their source account's currency.
	sourceIDs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.FromAccountID == accountID || e.ToAccountID == accountID {
			sourceIDs = append(sourceIDs, e.FromAccountID)
		}
	}
	sources, err := s.accountRepo.FindAccountsByIDs(ctx, sourceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load projection source accounts: %w", err)
	}

	points := []domain.ProjectionPoint{{Date: accounting.DateOnly(start), Balance: balance}}
	for _, e := range entries {
		var delta decimal.Decimal
		switch accountID {
		case e.FromAccountID:
			delta = e.Amount.Neg()
		case e.ToAccountID:
			delta = e.Amount
		default:
			continue
		}

		source, ok := sources[e.FromAccountID]
		if !ok {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, e.FromAccountID)
		}
		if source.CurrencyCode != account.CurrencyCode {
			entryDate := e.Date
			delta, err = s.currencySvc.Convert(ctx, delta, source.CurrencyCode, account.CurrencyCode, &entryDate)
			if err != nil {
				return nil, err
			}
		}

		balance = balance.Add(delta)
		last := &points[len(points)-1]
		if last.Date.Equal(e.Date) {
			last.Balance = balance
		} else {
			points = append(points, domain.ProjectionPoint{Date: e.Date, Balance: balance})
		}
	}
	return points, nil
}

// expandOccurrences lists the occurrence dates of one schedule within
// [start, end]. Monthly and yearly steps use calendar arithmetic from the
// schedule's own start date, so a Jan 31 monthly schedule lands on the dates
// time.AddDate yields rather than clamping to month ends.
func expandOccurrences(sched domain.ScheduledTransaction, start, end time.Time) []time.Time {
	if sched.EndDate != nil && sched.EndDate.Before(start) {
		return nil
	}
	if sched.StartDate.After(end) {
		return nil
	}

	limit := end
	if sched.EndDate != nil && sched.EndDate.Before(end) {
		limit = *sched.EndDate
	}

	var dates []time.Time
	for i := 0; ; i++ {
		var date time.Time
		switch sched.Recurrence {
		case domain.Daily:
			date = sched.StartDate.AddDate(0, 0, i)
		case domain.Weekly:
			date = sched.StartDate.AddDate(0, 0, 7*i)
		case domain.Monthly:
			date = sched.StartDate.AddDate(0, i, 0)
		case domain.Yearly:
			date = sched.StartDate.AddDate(i, 0, 0)
		default:
			return nil
		}
		if date.After(limit) {
			return dates
		}
		if !date.Before(start) {
			dates = append(dates, date)
		}
	}
}
