package accounting

import (
	"fmt"
	"time"

	"github.com/moneypot/moneypot/internal/apperrors"
	"github.com/moneypot/moneypot/internal/core/domain"
	"github.com/shopspring/decimal"
)

// settlementScale is the number of fractional digits kept when converting a
// leg amount into the settlement currency. Display rounding happens later,
// per currency; internal accumulation keeps this precision to avoid drift.
const settlementScale = 12

// balanceTolerance is the fixed rounding tolerance for the balancing check.
// Legs constructed pairwise are exactly balanced; the tolerance only absorbs
// rounding from cross-currency conversion.
var balanceTolerance = decimal.New(1, -9)

// SettlementAmount converts a leg's amount back into the transaction's
// settlement currency using the rate recorded on the leg.
func SettlementAmount(leg domain.TransactionLeg) (decimal.Decimal, error) {
	if !leg.ExchangeRate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: leg %s has non-positive exchange rate %s", apperrors.ErrValidation, leg.LegID, leg.ExchangeRate)
	}
	return leg.Amount().DivRound(leg.ExchangeRate, settlementScale), nil
}

// ValidateLegs checks the double-entry invariants for a set of legs:
// at least two legs, exactly one strictly positive side per leg, and
// debit and credit totals equal in the settlement currency. The check is
// currency-aware: every leg is converted using its recorded rate before
// summing.
func ValidateLegs(legs []domain.TransactionLeg) error {
	if len(legs) < 2 {
		return fmt.Errorf("%w: transaction must have at least two legs", apperrors.ErrValidation)
	}

	debits := decimal.Zero
	credits := decimal.Zero
	for _, leg := range legs {
		hasDebit := leg.Debit.IsPositive()
		hasCredit := leg.Credit.IsPositive()
		if hasDebit == hasCredit {
			return fmt.Errorf("%w: leg on account %s must carry exactly one of debit/credit as a positive amount", apperrors.ErrValidation, leg.AccountID)
		}
		if leg.Debit.IsNegative() || leg.Credit.IsNegative() {
			return fmt.Errorf("%w: leg on account %s carries a negative amount", apperrors.ErrValidation, leg.AccountID)
		}

		settled, err := SettlementAmount(leg)
		if err != nil {
			return err
		}
		if hasDebit {
			debits = debits.Add(settled)
		} else {
			credits = credits.Add(settled)
		}
	}

	if debits.Sub(credits).Abs().GreaterThan(balanceTolerance) {
		return fmt.Errorf("%w: debits sum to %s and credits sum to %s in the settlement currency",
			apperrors.ErrUnbalanced, debits.String(), credits.String())
	}
	return nil
}

// DateOnly truncates a timestamp to its calendar date in UTC. Transaction
// dates are dates, not instants; ordering ties are broken by ID.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
