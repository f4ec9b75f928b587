package mapping

import (
	"github.com/moneypot/moneypot/internal/core/domain"
	"github.com/moneypot/moneypot/internal/models"
)

// ToModelAccount converts a domain Account to a model Account. The cached
// balance column is owned by the repository and not mapped here.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:             d.AccountID,
		Name:                  d.Name,
		AccountType:           models.AccountType(d.AccountType),
		CurrencyCode:          d.CurrencyCode,
		Description:           d.Description,
		IsExternal:            d.IsExternal,
		IsActive:              d.IsActive,
		InterestRate:          d.InterestRate,
		InterestCompounding:   d.InterestCompounding,
		OverdraftLimit:        d.OverdraftLimit,
		OverdraftInterestRate: d.OverdraftInterestRate,
		MinimumPayment:        d.MinimumPayment,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:             m.AccountID,
		Name:                  m.Name,
		AccountType:           domain.AccountType(m.AccountType),
		CurrencyCode:          m.CurrencyCode,
		Description:           m.Description,
		IsExternal:            m.IsExternal,
		IsActive:              m.IsActive,
		InterestRate:          m.InterestRate,
		InterestCompounding:   m.InterestCompounding,
		OverdraftLimit:        m.OverdraftLimit,
		OverdraftInterestRate: m.OverdraftInterestRate,
		MinimumPayment:        m.MinimumPayment,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts.
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

// ToModelPot converts a domain Pot to a model Pot.
func ToModelPot(d domain.Pot) models.Pot {
	return models.Pot{
		PotID:        d.PotID,
		AccountID:    d.AccountID,
		Name:         d.Name,
		TargetAmount: d.TargetAmount,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPot converts a model Pot to a domain Pot.
func ToDomainPot(m models.Pot) domain.Pot {
	return domain.Pot{
		PotID:        m.PotID,
		AccountID:    m.AccountID,
		Name:         m.Name,
		TargetAmount: m.TargetAmount,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPotSlice converts a slice of model Pots.
func ToDomainPotSlice(ms []models.Pot) []domain.Pot {
	ds := make([]domain.Pot, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPot(m)
	}
	return ds
}
