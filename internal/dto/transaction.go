package dto

import (
	"time"

	"github.com/moneypot/moneypot/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLegRequest is one leg of a multi-leg transaction. Exactly one of
// Debit/Credit must be set and strictly positive.
type CreateLegRequest struct {
	AccountID string           `json:"accountID" binding:"required"`
	PotID     *string          `json:"potID"`
	Debit     *decimal.Decimal `json:"debit"`
	Credit    *decimal.Decimal `json:"credit"`
}

// CreateTransactionRequest is the general multi-leg primitive. CurrencyCode
// is the settlement currency; legs in other currencies are converted using
// the rate effective at Date for the balance check.
type CreateTransactionRequest struct {
	Description  string             `json:"description" binding:"required"`
	CurrencyCode string             `json:"currencyCode" binding:"required"`
	CategoryID   *string            `json:"categoryID"`
	Date         *time.Time         `json:"date"`
	Legs         []CreateLegRequest `json:"legs" binding:"required,min=2,dive"`
}

// LegResponse defines the data returned for a transaction leg.
type LegResponse struct {
	LegID        string          `json:"legID"`
	AccountID    string          `json:"accountID"`
	PotID        *string         `json:"potID,omitempty"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string        `json:"transactionID"`
	Description   string        `json:"description"`
	Date          time.Time     `json:"date"`
	CurrencyCode  string        `json:"currencyCode"`
	CategoryID    *string       `json:"categoryID,omitempty"`
	Legs          []LegResponse `json:"legs,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// ListTransactionsParams defines query parameters for history queries.
type ListTransactionsParams struct {
	From      *time.Time `form:"from" time_format:"2006-01-02"`
	To        *time.Time `form:"to" time_format:"2006-01-02"`
	Limit     int        `form:"limit,default=20"`
	NextToken *string    `form:"nextToken"`
}

// ListTransactionsResponse is a page of transactions plus the next cursor.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToLegResponse converts a domain.TransactionLeg to its response DTO.
func ToLegResponse(l *domain.TransactionLeg) LegResponse {
	return LegResponse{
		LegID:        l.LegID,
		AccountID:    l.AccountID,
		PotID:        l.PotID,
		Debit:        l.Debit,
		Credit:       l.Credit,
		CurrencyCode: l.CurrencyCode,
		ExchangeRate: l.ExchangeRate,
	}
}

// ToTransactionResponse converts a domain.Transaction, legs included.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	legs := make([]LegResponse, len(t.Legs))
	for i, l := range t.Legs {
		legs[i] = ToLegResponse(&l)
	}
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Description:   t.Description,
		Date:          t.Date,
		CurrencyCode:  t.CurrencyCode,
		CategoryID:    t.CategoryID,
		Legs:          legs,
		CreatedAt:     t.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(&t)
	}
	return res
}
