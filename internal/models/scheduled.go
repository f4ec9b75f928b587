package models

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

// ScheduledTransaction represents a recurring transfer definition row.
type ScheduledTransaction struct {
	ScheduledID   string          `db:"scheduled_id"` // Primary Key (UUID)
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	FromAccountID string          `db:"from_account_id"`
	ToAccountID   string          `db:"to_account_id"`
	Recurrence    RecurrenceType  `db:"recurrence"`
	StartDate     time.Time       `db:"start_date"`
	EndDate       *time.Time      `db:"end_date"` // nullable
	IsActive      bool            `db:"is_active"`
	AuditFields
}
