// Package seed loads the default currency directory into an empty database.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/moneypot/moneypot/internal/apperrors"
	"github.com/moneypot/moneypot/internal/core/domain"
	portssvc "github.com/moneypot/moneypot/internal/core/ports/services"
	"github.com/moneypot/moneypot/internal/dto"
	"github.com/moneypot/moneypot/internal/middleware"
)

type seedCurrency struct {
	Code     string
	Name     string
	Symbol   string
	Kind     domain.CurrencyKind
	Decimals int
}

var defaultCurrencies = []seedCurrency{
	{"USD", "US Dollar", "$", domain.Fiat, 2},
	{"GBP", "Pound Sterling", "£", domain.Fiat, 2},
	{"EUR", "Euro", "€", domain.Fiat, 2},
	{"JPY", "Japanese Yen", "¥", domain.Fiat, 0},
	{"AUD", "Australian Dollar", "A$", domain.Fiat, 2},
	{"CAD", "Canadian Dollar", "C$", domain.Fiat, 2},
	{"CHF", "Swiss Franc", "Fr", domain.Fiat, 2},
	{"CNY", "Chinese Yuan", "¥", domain.Fiat, 2},
	{"BTC", "Bitcoin", "₿", domain.Crypto, 8},
	{"ETH", "Ether", "Ξ", domain.Crypto, 18},
	{"USDT", "Tether", "₮", domain.Crypto, 6},
}

// Currencies registers the default currency set. Already-registered codes are
// skipped, so seeding is idempotent.
func Currencies(ctx context.Context, currencySvc portssvc.CurrencySvcFacade) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	seeded := 0
	for _, c := range defaultCurrencies {
		decimals := c.Decimals
		_, err := currencySvc.CreateCurrency(ctx, dto.CreateCurrencyRequest{
			CurrencyCode: c.Code,
			Name:         c.Name,
			Symbol:       c.Symbol,
			Kind:         c.Kind,
			Decimals:     &decimals,
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				continue
			}
			return fmt.Errorf("failed to seed currency %s: %w", c.Code, err)
		}
		seeded++
	}

	logger.Info("Currency directory seeded", slog.Int("new", seeded), slog.Int("total", len(defaultCurrencies)))
	return nil
}
