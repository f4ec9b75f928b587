package dto

import (
	"time"

	"github.com/moneypot/moneypot/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePotRequest defines the data needed to create a savings pot.
// InitialAmount, when positive, is moved from the account into the pot as a
// two-leg transaction committed atomically with the pot itself.
type CreatePotRequest struct {
	AccountID     string           `json:"accountID" binding:"required"`
	Name          string           `json:"name" binding:"required"`
	TargetAmount  *decimal.Decimal `json:"targetAmount"`
	InitialAmount *decimal.Decimal `json:"initialAmount"`
}

// PotResponse defines the data returned for a pot.
type PotResponse struct {
	PotID        string          `json:"potID"`
	AccountID    string          `json:"accountID"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	IsActive     bool            `json:"isActive"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// PotBalanceResponse is returned for pot balance queries.
type PotBalanceResponse struct {
	PotID        string          `json:"potID"`
	AccountID    string          `json:"accountID"`
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	AsOf         *time.Time      `json:"asOf,omitempty"`
}

// ToPotResponse converts a domain.Pot to its response DTO.
func ToPotResponse(p *domain.Pot) PotResponse {
	return PotResponse{
		PotID:        p.PotID,
		AccountID:    p.AccountID,
		Name:         p.Name,
		TargetAmount: p.TargetAmount,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
	}
}

// ToListPotResponse converts a slice of pots.
func ToListPotResponse(pots []domain.Pot) []PotResponse {
	res := make([]PotResponse, len(pots))
	for i, p := range pots {
		res[i] = ToPotResponse(&p)
	}
	return res
}
