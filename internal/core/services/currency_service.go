package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneypot/moneypot/internal/apperrors"
	"github.com/moneypot/moneypot/internal/core/domain"
	portsrepo "github.com/moneypot/moneypot/internal/core/ports/repositories"
	portssvc "github.com/moneypot/moneypot/internal/core/ports/services"
	"github.com/moneypot/moneypot/internal/dto"
	"github.com/moneypot/moneypot/internal/middleware"
)

const (
	defaultFiatDecimals   = 2
	defaultCryptoDecimals = 8
)

// currencyService implements the currency directory: currency registration,
// rate storage, and point-in-time conversion.
type currencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, rateRepo portsrepo.ExchangeRateRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{
		currencyRepo: currencyRepo,
		rateRepo:     rateRepo,
	}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	code := strings.ToUpper(strings.TrimSpace(req.CurrencyCode))
	if code == "" {
		return nil, fmt.Errorf("%w: currency code must not be empty", apperrors.ErrValidation)
	}

	decimals := defaultFiatDecimals
	if req.Kind == domain.Crypto {
		decimals = defaultCryptoDecimals
	}
	if req.Decimals != nil {
		decimals = *req.Decimals
	}

	now := time.Now().UTC()
	currency := domain.Currency{
		CurrencyCode: code,
		Name:         req.Name,
		Symbol:       req.Symbol,
		Kind:         req.Kind,
		Decimals:     decimals,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		logger.Error("Failed to save currency", slog.String("currency_code", code), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}

	logger.Info("Currency created", slog.String("currency_code", code), slog.String("kind", string(currency.Kind)))
	return &currency, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %s: %w", code, err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context, kind *domain.CurrencyKind) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// DeactivateCurrency soft-deletes a currency. Historic legs keep their code;
// the directory simply stops offering it for new accounts and rates.
func (s *currencyService) DeactivateCurrency(ctx context.Context, code string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	normalized := strings.ToUpper(strings.TrimSpace(code))
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, normalized); err != nil {
		return fmt.Errorf("failed to get currency %s for deactivation: %w", code, err)
	}

	if err := s.currencyRepo.DeactivateCurrency(ctx, normalized); err != nil {
		logger.Error("Failed to deactivate currency", slog.String("currency_code", normalized), slog.String("error", err.Error()))
		return fmt.Errorf("failed to deactivate currency %s: %w", normalized, err)
	}
	logger.Info("Currency deactivated", slog.String("currency_code", normalized))
	return nil
}

// SetExchangeRate stores a rate for an ordered pair, and the reciprocal for
// the reverse pair when requested. Both endpoints must be registered
// currencies; the pair must be distinct; the rate strictly positive.
func (s *currencyService) SetExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) ([]domain.ExchangeRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	from := strings.ToUpper(strings.TrimSpace(req.FromCurrencyCode))
	to := strings.ToUpper(strings.TrimSpace(req.ToCurrencyCode))
	if from == to {
		return nil, fmt.Errorf("%w: cannot set an exchange rate from a currency to itself", apperrors.ErrValidation)
	}
	if !req.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: exchange rate must be positive, got %s", apperrors.ErrValidation, req.Rate)
	}

	// Both currencies must exist in the directory before a rate is accepted.
	for _, code := range []string{from, to} {
		if _, err := s.currencyRepo.FindCurrencyByCode(ctx, code); err != nil {
			return nil, fmt.Errorf("failed to verify currency %s: %w", code, err)
		}
	}

	now := time.Now().UTC()
	ts := now
	if req.Timestamp != nil {
		ts = req.Timestamp.UTC()
	}

	rates := []domain.ExchangeRate{{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             req.Rate,
		Timestamp:        ts,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}}

	if req.SetInverse {
		rates = append(rates, domain.ExchangeRate{
			ExchangeRateID:   uuid.NewString(),
			FromCurrencyCode: to,
			ToCurrencyCode:   from,
			Rate:             decimal.NewFromInt(1).DivRound(req.Rate, 12),
			Timestamp:        ts,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		})
	}

	for _, rate := range rates {
		if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
			logger.Error("Failed to save exchange rate",
				slog.String("from", rate.FromCurrencyCode),
				slog.String("to", rate.ToCurrencyCode),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to save exchange rate %s->%s: %w", rate.FromCurrencyCode, rate.ToCurrencyCode, err)
		}
	}

	logger.Info("Exchange rate set",
		slog.String("from", from),
		slog.String("to", to),
		slog.String("rate", req.Rate.String()),
		slog.Bool("inverse", req.SetInverse))
	return rates, nil
}

// RateAt returns the conversion rate from->to effective at `at`. A
// same-currency pair is 1 by definition. A missing rate propagates
// apperrors.ErrExchangeRateMissing from the store; it is never defaulted.
func (s *currencyService) RateAt(ctx context.Context, fromCode, toCode string, at *time.Time) (decimal.Decimal, error) {
	from := strings.ToUpper(strings.TrimSpace(fromCode))
	to := strings.ToUpper(strings.TrimSpace(toCode))
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	rate, err := s.rateRepo.FindRateAt(ctx, from, to, at)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to resolve rate %s->%s: %w", from, to, err)
	}
	return rate.Rate, nil
}

func (s *currencyService) Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string, at *time.Time) (decimal.Decimal, error) {
	rate, err := s.RateAt(ctx, fromCode, toCode, at)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate), nil
}
