package dto

import (
	"time"

	"github.com/moneypot/moneypot/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateScheduledRequest defines a recurring transfer for forecasting.
type CreateScheduledRequest struct {
	Description   string                `json:"description" binding:"required"`
	Amount        decimal.Decimal       `json:"amount" binding:"required"`
	FromAccountID string                `json:"fromAccountID" binding:"required"`
	ToAccountID   string                `json:"toAccountID" binding:"required"`
	Recurrence    domain.RecurrenceType `json:"recurrence" binding:"required,oneof=DAILY WEEKLY MONTHLY YEARLY"`
	StartDate     time.Time             `json:"startDate" binding:"required"`
	EndDate       *time.Time            `json:"endDate"`
}

// ScheduledResponse defines the data returned for a scheduled transaction.
type ScheduledResponse struct {
	ScheduledID   string                `json:"scheduledID"`
	Description   string                `json:"description"`
	Amount        decimal.Decimal       `json:"amount"`
	FromAccountID string                `json:"fromAccountID"`
	ToAccountID   string                `json:"toAccountID"`
	Recurrence    domain.RecurrenceType `json:"recurrence"`
	StartDate     time.Time             `json:"startDate"`
	EndDate       *time.Time            `json:"endDate,omitempty"`
	IsActive      bool                  `json:"isActive"`
}

// ForecastParams bounds a forecast expansion.
type ForecastParams struct {
	Start time.Time `form:"start" time_format:"2006-01-02" binding:"required"`
	End   time.Time `form:"end" time_format:"2006-01-02" binding:"required"`
}

// ForecastEntryResponse is one projected occurrence.
type ForecastEntryResponse struct {
	Date          time.Time       `json:"date"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	FromAccountID string          `json:"fromAccountID"`
	ToAccountID   string          `json:"toAccountID"`
}

// ProjectionPointResponse is a dated balance along an account projection.
type ProjectionPointResponse struct {
	Date    time.Time       `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// ToScheduledResponse converts a domain.ScheduledTransaction.
func ToScheduledResponse(s *domain.ScheduledTransaction) ScheduledResponse {
	return ScheduledResponse{
		ScheduledID:   s.ScheduledID,
		Description:   s.Description,
		Amount:        s.Amount,
		FromAccountID: s.FromAccountID,
		ToAccountID:   s.ToAccountID,
		Recurrence:    s.Recurrence,
		StartDate:     s.StartDate,
		EndDate:       s.EndDate,
		IsActive:      s.IsActive,
	}
}

// ToForecastEntryResponses converts forecast entries.
func ToForecastEntryResponses(entries []domain.ForecastEntry) []ForecastEntryResponse {
	res := make([]ForecastEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ForecastEntryResponse{
			Date:          e.Date,
			Name:          e.Name,
			Amount:        e.Amount,
			FromAccountID: e.FromAccountID,
			ToAccountID:   e.ToAccountID,
		}
	}
	return res
}
