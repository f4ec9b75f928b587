package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurrenceType is the repeat frequency of a scheduled transaction.
type RecurrenceType string

const (
	Daily   RecurrenceType = "DAILY"
	Weekly  RecurrenceType = "WEEKLY"
	Monthly RecurrenceType = "MONTHLY"
	Yearly  RecurrenceType = "YEARLY"
)

// ScheduledTransaction is a recurring transfer definition consumed by the
// forecast expander. It never posts to the ledger by itself.
type ScheduledTransaction struct {
	ScheduledID   string          `json:"scheduledID"` // Primary Key (UUID)
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	FromAccountID string          `json:"fromAccountID"`
	ToAccountID   string          `json:"toAccountID"`
	Recurrence    RecurrenceType  `json:"recurrence"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       *time.Time      `json:"endDate,omitempty"` // nil = open-ended
	IsActive      bool            `json:"isActive"`
	AuditFields
}

// ForecastEntry is one projected occurrence of a scheduled transaction.
type ForecastEntry struct {
	Date          time.Time       `json:"date"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	FromAccountID string          `json:"fromAccountID"`
	ToAccountID   string          `json:"toAccountID"`
}

// ProjectionPoint is a dated balance along an account projection.
type ProjectionPoint struct {
	Date    time.Time       `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}
