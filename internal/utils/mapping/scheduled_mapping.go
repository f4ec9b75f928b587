package mapping

import (
	"github.com/moneypot/moneypot/internal/core/domain"
	"github.com/moneypot/moneypot/internal/models"
)

// ToModelScheduled converts a domain ScheduledTransaction to a model.
func ToModelScheduled(d domain.ScheduledTransaction) models.ScheduledTransaction {
	return models.ScheduledTransaction{
		ScheduledID:   d.ScheduledID,
		Description:   d.Description,
		Amount:        d.Amount,
		FromAccountID: d.FromAccountID,
		ToAccountID:   d.ToAccountID,
		Recurrence:    models.RecurrenceType(d.Recurrence),
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainScheduled converts a model ScheduledTransaction to a domain one.
func ToDomainScheduled(m models.ScheduledTransaction) domain.ScheduledTransaction {
	return domain.ScheduledTransaction{
		ScheduledID:   m.ScheduledID,
		Description:   m.Description,
		Amount:        m.Amount,
		FromAccountID: m.FromAccountID,
		ToAccountID:   m.ToAccountID,
		Recurrence:    domain.RecurrenceType(m.Recurrence),
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainScheduledSlice converts a slice of model ScheduledTransactions.
func ToDomainScheduledSlice(ms []models.ScheduledTransaction) []domain.ScheduledTransaction {
	ds := make([]domain.ScheduledTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainScheduled(m)
	}
	return ds
}
