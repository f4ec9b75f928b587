package accounting

import (
	"github.com/moneypot/moneypot/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	one         = decimal.NewFromInt(1)
	daysPerYear = decimal.NewFromInt(365)
	// flat 30-day months for monthly compounding
	monthlyDivisor = decimal.NewFromInt(12 * 30)
)

// AccrueInterest returns the compound interest earned on balance over the
// given number of days, using the account's configured rate and compounding
// scheme. An account without interest configuration accrues nothing.
// Consumed by reporting/forecast callers; the transfer engine never calls it.
func AccrueInterest(account domain.Account, balance decimal.Decimal, days int) decimal.Decimal {
	if !account.InterestRate.IsPositive() || days <= 0 {
		return decimal.Zero
	}

	var dailyRate decimal.Decimal
	switch account.InterestCompounding {
	case "daily":
		dailyRate = account.InterestRate.Div(daysPerYear)
	case "monthly":
		dailyRate = account.InterestRate.Div(monthlyDivisor)
	default:
		return decimal.Zero
	}

	growth := one.Add(dailyRate).Pow(decimal.NewFromInt(int64(days))).Sub(one)
	return balance.Mul(growth)
}

// AccrueOverdraftInterest returns the interest charged on the overdrawn part
// of a current account over the given number of days. Zero when the balance
// is non-negative or no overdraft rate is configured.
func AccrueOverdraftInterest(account domain.Account, balance decimal.Decimal, days int) decimal.Decimal {
	if account.AccountType != domain.Current || days <= 0 {
		return decimal.Zero
	}
	if balance.Sign() >= 0 || !account.OverdraftInterestRate.IsPositive() {
		return decimal.Zero
	}

	overdrawn := balance.Abs()
	if account.OverdraftLimit.IsPositive() && overdrawn.GreaterThan(account.OverdraftLimit) {
		overdrawn = account.OverdraftLimit
	}

	dailyRate := account.OverdraftInterestRate.Div(daysPerYear)
	growth := one.Add(dailyRate).Pow(decimal.NewFromInt(int64(days))).Sub(one)
	return overdrawn.Mul(growth)
}
