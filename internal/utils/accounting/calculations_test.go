package accounting_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneypot/moneypot/internal/apperrors"
	"github.com/moneypot/moneypot/internal/core/domain"
	"github.com/moneypot/moneypot/internal/utils/accounting"
)

func leg(accountID string, debit, credit, rate decimal.Decimal) domain.TransactionLeg {
	return domain.TransactionLeg{
		LegID:        accountID + "-leg",
		AccountID:    accountID,
		Debit:        debit,
		Credit:       credit,
		ExchangeRate: rate,
	}
}

func TestValidateLegs(t *testing.T) {
	one := decimal.NewFromInt(1)

	tests := []struct {
		name    string
		legs    []domain.TransactionLeg
		wantErr error
	}{
		{
			name: "balanced pair",
			legs: []domain.TransactionLeg{
				leg("a", decimal.NewFromInt(100), decimal.Zero, one),
				leg("b", decimal.Zero, decimal.NewFromInt(100), one),
			},
		},
		{
			name: "balanced split across three legs",
			legs: []domain.TransactionLeg{
				leg("a", decimal.NewFromInt(100), decimal.Zero, one),
				leg("b", decimal.Zero, decimal.NewFromInt(60), one),
				leg("c", decimal.Zero, decimal.NewFromInt(40), one),
			},
		},
		{
			name: "cross-currency balanced via rate",
			legs: []domain.TransactionLeg{
				leg("usd", decimal.NewFromInt(10), decimal.Zero, one),
				// 12.50 EUR at 1.25 settles back to 10 USD
				leg("eur", decimal.Zero, decimal.NewFromFloat(12.50), decimal.NewFromFloat(1.25)),
			},
		},
		{
			name: "unbalanced",
			legs: []domain.TransactionLeg{
				leg("a", decimal.NewFromInt(100), decimal.Zero, one),
				leg("b", decimal.Zero, decimal.NewFromInt(90), one),
			},
			wantErr: apperrors.ErrUnbalanced,
		},
		{
			name: "cross-currency unbalanced",
			legs: []domain.TransactionLeg{
				leg("usd", decimal.NewFromInt(10), decimal.Zero, one),
				leg("eur", decimal.Zero, decimal.NewFromFloat(12.50), decimal.NewFromFloat(1.30)),
			},
			wantErr: apperrors.ErrUnbalanced,
		},
		{
			name: "single leg",
			legs: []domain.TransactionLeg{
				leg("a", decimal.NewFromInt(100), decimal.Zero, one),
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "both sides set",
			legs: []domain.TransactionLeg{
				leg("a", decimal.NewFromInt(100), decimal.NewFromInt(100), one),
				leg("b", decimal.Zero, decimal.NewFromInt(100), one),
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "neither side set",
			legs: []domain.TransactionLeg{
				leg("a", decimal.Zero, decimal.Zero, one),
				leg("b", decimal.Zero, decimal.NewFromInt(100), one),
			},
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "non-positive rate",
			legs: []domain.TransactionLeg{
				leg("a", decimal.NewFromInt(100), decimal.Zero, decimal.Zero),
				leg("b", decimal.Zero, decimal.NewFromInt(100), one),
			},
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := accounting.ValidateLegs(tt.legs)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSettlementAmount(t *testing.T) {
	l := leg("eur", decimal.Zero, decimal.NewFromFloat(12.50), decimal.NewFromFloat(1.25))

	settled, err := accounting.SettlementAmount(l)

	require.NoError(t, err)
	assert.True(t, settled.Equal(decimal.NewFromInt(10)), "12.50 at rate 1.25 should settle to 10, got %s", settled)
}

func TestSettlementAmount_NonPositiveRate(t *testing.T) {
	l := leg("a", decimal.NewFromInt(5), decimal.Zero, decimal.NewFromInt(-1))

	_, err := accounting.SettlementAmount(l)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	instant := time.Date(2026, 3, 10, 2, 30, 0, 0, loc) // 2026-03-09T21:30Z

	got := accounting.DateOnly(instant)

	assert.True(t, got.Equal(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.UTC, got.Location())
}
