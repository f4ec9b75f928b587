package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/moneypot/moneypot/internal/apperrors"
	"github.com/moneypot/moneypot/internal/core/domain"
	portssvc "github.com/moneypot/moneypot/internal/core/ports/services"
	"github.com/moneypot/moneypot/internal/core/services"
	"github.com/moneypot/moneypot/internal/dto"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockCurrencyRepo *MockCurrencyRepository
	mockRateRepo     *MockExchangeRateRepository
	service          portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.service = services.NewCurrencyService(suite.mockCurrencyRepo, suite.mockRateRepo)
}

func (suite *CurrencyServiceTestSuite) expectCurrency(code string, kind domain.CurrencyKind) {
	currency := &domain.Currency{CurrencyCode: code, Kind: kind, IsActive: true}
	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, code).Return(currency, nil).Once()
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_FiatDefaults() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("SaveCurrency", mock.Anything,
		mock.MatchedBy(func(c domain.Currency) bool {
			return c.CurrencyCode == "GBP" && c.Decimals == 2 && c.IsActive
		}),
	).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, dto.CreateCurrencyRequest{
		CurrencyCode: "gbp",
		Name:         "Pound Sterling",
		Symbol:       "£",
		Kind:         domain.Fiat,
	})

	suite.Require().NoError(err)
	suite.Equal("GBP", currency.CurrencyCode)
	suite.Equal(2, currency.Decimals)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_CryptoDefaults() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("SaveCurrency", mock.Anything, mock.AnythingOfType("domain.Currency")).
		Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, dto.CreateCurrencyRequest{
		CurrencyCode: "BTC",
		Name:         "Bitcoin",
		Symbol:       "₿",
		Kind:         domain.Crypto,
	})

	suite.Require().NoError(err)
	suite.Equal(8, currency.Decimals)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_ExplicitDecimals() {
	ctx := context.Background()
	decimals := 18

	suite.mockCurrencyRepo.On("SaveCurrency", mock.Anything, mock.AnythingOfType("domain.Currency")).
		Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, dto.CreateCurrencyRequest{
		CurrencyCode: "ETH",
		Name:         "Ether",
		Symbol:       "Ξ",
		Kind:         domain.Crypto,
		Decimals:     &decimals,
	})

	suite.Require().NoError(err)
	suite.Equal(18, currency.Decimals)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Duplicate() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("SaveCurrency", mock.Anything, mock.AnythingOfType("domain.Currency")).
		Return(apperrors.ErrDuplicate).Once()

	currency, err := suite.service.CreateCurrency(ctx, dto.CreateCurrencyRequest{
		CurrencyCode: "USD",
		Name:         "US Dollar",
		Symbol:       "$",
		Kind:         domain.Fiat,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(currency)
}

func (suite *CurrencyServiceTestSuite) TestSetExchangeRate_Success() {
	ctx := context.Background()
	ts := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	suite.expectCurrency("USD", domain.Fiat)
	suite.expectCurrency("EUR", domain.Fiat)
	suite.mockRateRepo.On("SaveExchangeRate", mock.Anything,
		mock.MatchedBy(func(r domain.ExchangeRate) bool {
			return r.FromCurrencyCode == "USD" && r.ToCurrencyCode == "EUR" &&
				r.Rate.Equal(decimal.NewFromFloat(1.25)) && r.Timestamp.Equal(ts)
		}),
	).Return(nil).Once()

	rates, err := suite.service.SetExchangeRate(ctx, dto.CreateExchangeRateRequest{
		FromCurrencyCode: "usd",
		ToCurrencyCode:   "eur",
		Rate:             decimal.NewFromFloat(1.25),
		Timestamp:        &ts,
	})

	suite.Require().NoError(err)
	suite.Len(rates, 1)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestSetExchangeRate_WithInverse() {
	ctx := context.Background()
	rate := decimal.NewFromFloat(1.25)

	suite.expectCurrency("USD", domain.Fiat)
	suite.expectCurrency("EUR", domain.Fiat)
	suite.mockRateRepo.On("SaveExchangeRate", mock.Anything, mock.AnythingOfType("domain.ExchangeRate")).
		Return(nil).Twice()

	rates, err := suite.service.SetExchangeRate(ctx, dto.CreateExchangeRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "EUR",
		Rate:             rate,
		SetInverse:       true,
	})

	suite.Require().NoError(err)
	suite.Require().Len(rates, 2)
	suite.Equal("EUR", rates[1].FromCurrencyCode)
	suite.Equal("USD", rates[1].ToCurrencyCode)
	suite.True(rates[1].Rate.Equal(decimal.NewFromFloat(0.8)), "inverse of 1.25 should be 0.8, got %s", rates[1].Rate)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestSetExchangeRate_SamePair() {
	ctx := context.Background()

	rates, err := suite.service.SetExchangeRate(ctx, dto.CreateExchangeRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "usd",
		Rate:             decimal.NewFromInt(1),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(rates)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveExchangeRate")
}

func (suite *CurrencyServiceTestSuite) TestSetExchangeRate_NonPositiveRate() {
	ctx := context.Background()

	_, err := suite.service.SetExchangeRate(ctx, dto.CreateExchangeRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.Zero,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveExchangeRate")
}

func (suite *CurrencyServiceTestSuite) TestSetExchangeRate_UnknownCurrency() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "USD").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.SetExchangeRate(ctx, dto.CreateExchangeRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.NewFromFloat(1.25),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveExchangeRate")
}

func (suite *CurrencyServiceTestSuite) TestRateAt_SameCurrency() {
	ctx := context.Background()

	rate, err := suite.service.RateAt(ctx, "USD", "usd", nil)

	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.NewFromInt(1)))
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindRateAt")
}

func (suite *CurrencyServiceTestSuite) TestRateAt_Missing() {
	ctx := context.Background()

	suite.mockRateRepo.On("FindRateAt", mock.Anything, "USD", "JPY", (*time.Time)(nil)).
		Return(nil, apperrors.ErrExchangeRateMissing).Once()

	_, err := suite.service.RateAt(ctx, "USD", "JPY", nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrExchangeRateMissing)
}

func (suite *CurrencyServiceTestSuite) TestRateAt_PointInTime() {
	ctx := context.Background()
	at := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	stored := &domain.ExchangeRate{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.NewFromFloat(1.10),
		Timestamp:        time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
	}

	suite.mockRateRepo.On("FindRateAt", mock.Anything, "USD", "EUR", &at).
		Return(stored, nil).Once()

	rate, err := suite.service.RateAt(ctx, "USD", "EUR", &at)

	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.NewFromFloat(1.10)))
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestConvert() {
	ctx := context.Background()
	stored := &domain.ExchangeRate{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.NewFromFloat(1.25),
	}

	suite.mockRateRepo.On("FindRateAt", mock.Anything, "USD", "EUR", (*time.Time)(nil)).
		Return(stored, nil).Once()

	converted, err := suite.service.Convert(ctx, decimal.NewFromInt(10), "USD", "EUR", nil)

	suite.Require().NoError(err)
	suite.True(converted.Equal(decimal.NewFromFloat(12.50)), "10 USD at 1.25 should be 12.50 EUR, got %s", converted)
}

func (suite *CurrencyServiceTestSuite) TestDeactivateCurrency_Success() {
	ctx := context.Background()

	suite.expectCurrency("GBP", domain.Fiat)
	suite.mockCurrencyRepo.On("DeactivateCurrency", mock.Anything, "GBP").Return(nil).Once()

	err := suite.service.DeactivateCurrency(ctx, "gbp")

	suite.Require().NoError(err)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestDeactivateCurrency_Unknown() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "XYZ").
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateCurrency(ctx, "XYZ")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "DeactivateCurrency")
}

func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
