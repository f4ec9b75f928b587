package services

import (
	"context"

	"github.com/moneypot/moneypot/internal/core/domain"
	"github.com/moneypot/moneypot/internal/dto"
)

// TransferSvcFacade is the transfer engine. Every operation validates its
// preconditions, performs currency conversion when needed, constructs a
// balanced multi-leg transaction, and commits it atomically; nothing is
// persisted on any failure path.
type TransferSvcFacade interface {
	TransferBetweenAccounts(ctx context.Context, req dto.TransferRequest) (*domain.Transaction, error)
	TransferToPot(ctx context.Context, req dto.PotTransferRequest) (*domain.Transaction, error)
	TransferFromPot(ctx context.Context, req dto.PotTransferRequest) (*domain.Transaction, error)
	TransferBetweenPots(ctx context.Context, req dto.PotToPotTransferRequest) (*domain.Transaction, error)
	// CreateMultiLegTransaction is the general primitive underlying the
	// specific transfers. Balancing is checked currency-aware: every leg is
	// converted to the settlement currency before summing.
	CreateMultiLegTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
}
