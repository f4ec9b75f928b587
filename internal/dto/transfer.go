package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRequest moves an amount between two accounts. When the account
// currencies differ the engine converts using the rate effective at the
// transfer date. Description defaults to "Transfer from X to Y"; Date
// defaults to today.
type TransferRequest struct {
	FromAccountID string          `json:"fromAccountID" binding:"required"`
	ToAccountID   string          `json:"toAccountID" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Description   string          `json:"description"`
	CategoryID    *string         `json:"categoryID"`
	Date          *time.Time      `json:"date"`
}

// PotTransferRequest moves an amount between an account and one of its pots.
type PotTransferRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	PotID       string          `json:"potID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Date        *time.Time      `json:"date"`
}

// PotToPotTransferRequest moves an amount between two pots of one account.
type PotToPotTransferRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	FromPotID   string          `json:"fromPotID" binding:"required"`
	ToPotID     string          `json:"toPotID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Date        *time.Time      `json:"date"`
}
