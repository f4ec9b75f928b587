package dto

import (
	"time"

	"github.com/moneypot/moneypot/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create an account.
// The currency is fixed for the lifetime of the account.
type CreateAccountRequest struct {
	Name         string             `json:"name" binding:"required"`
	AccountType  domain.AccountType `json:"accountType" binding:"required,oneof=CURRENT SAVINGS CREDIT_CARD LOAN MORTGAGE CRYPTO"`
	CurrencyCode string             `json:"currencyCode" binding:"required"`
	Description  string             `json:"description"`
	IsExternal   bool               `json:"isExternal"`

	InterestRate          *decimal.Decimal `json:"interestRate"`
	InterestCompounding   string           `json:"interestCompounding" binding:"omitempty,oneof=daily monthly"`
	OverdraftLimit        *decimal.Decimal `json:"overdraftLimit"`
	OverdraftInterestRate *decimal.Decimal `json:"overdraftInterestRate"`
	MinimumPayment        *decimal.Decimal `json:"minimumPayment"`
}

// UpdateAccountRequest defines the fields that may be updated on an account.
// Pointers distinguish "not provided" from zero values. Currency and type are
// deliberately absent: both are immutable.
type UpdateAccountRequest struct {
	Name                  *string          `json:"name"`
	Description           *string          `json:"description"`
	IsActive              *bool            `json:"isActive"`
	InterestRate          *decimal.Decimal `json:"interestRate"`
	InterestCompounding   *string          `json:"interestCompounding" binding:"omitempty,oneof=daily monthly"`
	OverdraftLimit        *decimal.Decimal `json:"overdraftLimit"`
	OverdraftInterestRate *decimal.Decimal `json:"overdraftInterestRate"`
	MinimumPayment        *decimal.Decimal `json:"minimumPayment"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string             `json:"accountID"`
	Name          string             `json:"name"`
	AccountType   domain.AccountType `json:"accountType"`
	CurrencyCode  string             `json:"currencyCode"`
	Description   string             `json:"description"`
	IsExternal    bool               `json:"isExternal"`
	IsActive      bool               `json:"isActive"`
	CreatedAt     time.Time          `json:"createdAt"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
}

// AccountBalanceResponse is returned for balance queries. Available is the
// spendable amount outside pots: balance minus the sum of pot balances.
type AccountBalanceResponse struct {
	AccountID    string          `json:"accountID"`
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"`
	PotTotal     decimal.Decimal `json:"potTotal"`
	Available    decimal.Decimal `json:"available"`
	AsOf         *time.Time      `json:"asOf,omitempty"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     a.AccountID,
		Name:          a.Name,
		AccountType:   a.AccountType,
		CurrencyCode:  a.CurrencyCode,
		Description:   a.Description,
		IsExternal:    a.IsExternal,
		IsActive:      a.IsActive,
		CreatedAt:     a.CreatedAt,
		LastUpdatedAt: a.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of accounts.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		res[i] = ToAccountResponse(&a)
	}
	return res
}
