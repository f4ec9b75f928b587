package mapping

import (
	"github.com/moneypot/moneypot/internal/core/domain"
	"github.com/moneypot/moneypot/internal/models"
)

// ToModelTransaction converts a domain Transaction (header only) to a model.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		Description:   d.Description,
		Date:          d.Date,
		CurrencyCode:  d.CurrencyCode,
		CategoryID:    d.CategoryID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction (header only) to a domain
// Transaction; legs are attached separately by the repository.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Description:   m.Description,
		Date:          m.Date,
		CurrencyCode:  m.CurrencyCode,
		CategoryID:    m.CategoryID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLeg converts a domain TransactionLeg to a model TransactionLeg.
func ToModelLeg(d domain.TransactionLeg) models.TransactionLeg {
	return models.TransactionLeg{
		LegID:         d.LegID,
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		PotID:         d.PotID,
		Debit:         d.Debit,
		Credit:        d.Credit,
		CurrencyCode:  d.CurrencyCode,
		ExchangeRate:  d.ExchangeRate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLeg converts a model TransactionLeg to a domain TransactionLeg.
func ToDomainLeg(m models.TransactionLeg) domain.TransactionLeg {
	return domain.TransactionLeg{
		LegID:         m.LegID,
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		PotID:         m.PotID,
		Debit:         m.Debit,
		Credit:        m.Credit,
		CurrencyCode:  m.CurrencyCode,
		ExchangeRate:  m.ExchangeRate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLegSlice converts a slice of model TransactionLegs.
func ToDomainLegSlice(ms []models.TransactionLeg) []domain.TransactionLeg {
	ds := make([]domain.TransactionLeg, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLeg(m)
	}
	return ds
}
