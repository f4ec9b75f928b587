package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/moneypot/moneypot/internal/apperrors"
	"github.com/moneypot/moneypot/internal/core/domain"
	portsrepo "github.com/moneypot/moneypot/internal/core/ports/repositories"
	portssvc "github.com/moneypot/moneypot/internal/core/ports/services"
	"github.com/moneypot/moneypot/internal/core/services"
	"github.com/moneypot/moneypot/internal/dto"
)

type TransferServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo   *MockLedgerRepository
	mockAccountRepo  *MockAccountRepository
	mockCategoryRepo *MockCategoryRepository
	mockCurrencySvc  *MockCurrencyService
	service          portssvc.TransferSvcFacade

	checking domain.Account // USD, no overdraft
	savings  domain.Account // USD
	eurAcct  domain.Account // EUR
	employer domain.Account // USD, external
	holiday  domain.Pot     // pot on checking
	rainyDay domain.Pot     // second pot on checking
}

func (suite *TransferServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockCurrencySvc = new(MockCurrencyService)
	suite.service = services.NewTransferService(suite.mockLedgerRepo, suite.mockAccountRepo, suite.mockCategoryRepo, suite.mockCurrencySvc, true)

	suite.checking = domain.Account{
		AccountID:    uuid.NewString(),
		Name:         "Checking",
		AccountType:  domain.Current,
		CurrencyCode: "USD",
		IsActive:     true,
	}
	suite.savings = domain.Account{
		AccountID:    uuid.NewString(),
		Name:         "Savings",
		AccountType:  domain.Savings,
		CurrencyCode: "USD",
		IsActive:     true,
	}
	suite.eurAcct = domain.Account{
		AccountID:    uuid.NewString(),
		Name:         "Euro Account",
		AccountType:  domain.Current,
		CurrencyCode: "EUR",
		IsActive:     true,
	}
	suite.employer = domain.Account{
		AccountID:    uuid.NewString(),
		Name:         "Employer",
		AccountType:  domain.Current,
		CurrencyCode: "USD",
		IsExternal:   true,
		IsActive:     true,
	}
	suite.holiday = domain.Pot{
		PotID:     uuid.NewString(),
		AccountID: suite.checking.AccountID,
		Name:      "Holiday",
		IsActive:  true,
	}
	suite.rainyDay = domain.Pot{
		PotID:     uuid.NewString(),
		AccountID: suite.checking.AccountID,
		Name:      "Rainy Day",
		IsActive:  true,
	}
}

func (suite *TransferServiceTestSuite) expectAccount(account domain.Account) {
	acc := account
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, account.AccountID).Return(&acc, nil).Once()
}

func (suite *TransferServiceTestSuite) expectPot(pot domain.Pot) {
	p := pot
	suite.mockAccountRepo.On("FindPotByID", mock.Anything, pot.PotID).Return(&p, nil).Once()
}

func (suite *TransferServiceTestSuite) TestTransferBetweenAccounts_Success() {
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 15, 4, 5, 0, time.UTC)
	amount := decimal.NewFromFloat(25.50)

	suite.expectAccount(suite.checking)
	suite.expectAccount(suite.savings)

	suite.mockLedgerRepo.On("SaveTransaction", mock.Anything,
		mock.MatchedBy(func(txn domain.Transaction) bool {
			return txn.CurrencyCode == "USD" &&
				txn.Date.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
		}),
		mock.MatchedBy(func(legs []domain.TransactionLeg) bool {
			if len(legs) != 2 {
				return false
			}
			debit, credit := legs[0], legs[1]
			return debit.AccountID == suite.checking.AccountID &&
				debit.Debit.Equal(amount) &&
				credit.AccountID == suite.savings.AccountID &&
				credit.Credit.Equal(amount) &&
				credit.ExchangeRate.Equal(decimal.NewFromInt(1))
		}),
		mock.MatchedBy(func(guards []portsrepo.BalanceGuard) bool {
			return len(guards) == 1 &&
				guards[0].AccountID == suite.checking.AccountID &&
				guards[0].PotID == nil &&
				guards[0].Required.Equal(amount)
		}),
	).Return(nil).Once()

	txn, err := suite.service.TransferBetweenAccounts(ctx, dto.TransferRequest{
		FromAccountID: suite.checking.AccountID,
		ToAccountID:   suite.savings.AccountID,
		Amount:        amount,
		Date:          &date,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Len(txn.Legs, 2)
	suite.Equal("Transfer from Checking to Savings", txn.Description)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockCurrencySvc.AssertNotCalled(suite.T(), "RateAt")
}

func (suite *TransferServiceTestSuite) TestTransferBetweenAccounts_CrossCurrency() {
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	amount := decimal.NewFromInt(10)
	rate := decimal.NewFromFloat(1.25)

	suite.expectAccount(suite.checking)
	suite.expectAccount(suite.eurAcct)

	suite.mockCurrencySvc.On("RateAt", mock.Anything, "USD", "EUR",
		mock.MatchedBy(func(at *time.Time) bool { return at != nil && at.Equal(date) }),
	).Return(rate, nil).Once()

	suite.mockLedgerRepo.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction"),
		mock.MatchedBy(func(legs []domain.TransactionLeg) bool {
			if len(legs) != 2 {
				return false
			}
			credit := legs[1]
			return credit.AccountID == suite.eurAcct.AccountID &&
				credit.CurrencyCode == "EUR" &&
				credit.Credit.Equal(decimal.NewFromFloat(12.50)) &&
				credit.ExchangeRate.Equal(rate)
		}),
		mock.Anything,
	).Return(nil).Once()

	txn, err := suite.service.TransferBetweenAccounts(ctx, dto.TransferRequest{
		FromAccountID: suite.checking.AccountID,
		ToAccountID:   suite.eurAcct.AccountID,
		Amount:        amount,
		Date:          &date,
	})

	suite.Require().NoError(err)
	suite.Equal("USD", txn.CurrencyCode)
	suite.mockCurrencySvc.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestTransferBetweenAccounts_MissingRate() {
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	suite.expectAccount(suite.checking)
	suite.expectAccount(suite.eurAcct)

	suite.mockCurrencySvc.On("RateAt", mock.Anything, "USD", "EUR", mock.Anything).
		Return(decimal.Zero, apperrors.ErrExchangeRateMissing).Once()

	txn, err := suite.service.TransferBetweenAccounts(ctx, dto.TransferRequest{
		FromAccountID: suite.checking.AccountID,
		ToAccountID:   suite.eurAcct.AccountID,
		Amount:        decimal.NewFromInt(10),
		Date:          &date,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrExchangeRateMissing)
	suite.Nil(txn)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransferServiceTestSuite) TestTransferBetweenAccounts_SelfTransfer() {
	ctx := context.Background()

	txn, err := suite.service.TransferBetweenAccounts(ctx, dto.TransferRequest{
		FromAccountID: suite.checking.AccountID,
		ToAccountID:   suite.checking.AccountID,
		Amount:        decimal.NewFromInt(10),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByID")
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransferServiceTestSuite) TestTransferBetweenAccounts_NonPositiveAmount() {
	ctx := context.Background()

	_, err := suite.service.TransferBetweenAccounts(ctx, dto.TransferRequest{
		FromAccountID: suite.checking.AccountID,
		ToAccountID:   suite.savings.AccountID,
		Amount:        decimal.NewFromInt(-5),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransferServiceTestSuite) TestTransferBetweenAccounts_CategoryTagged() {
	ctx := context.Background()
	category := domain.Category{CategoryID: uuid.NewString(), Name: "Groceries"}

	suite.expectAccount(suite.checking)
	suite.expectAccount(suite.savings)
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, category.CategoryID).
		Return(&category, nil).Once()

	suite.mockLedgerRepo.On("SaveTransaction", mock.Anything,
		mock.MatchedBy(func(txn domain.Transaction) bool {
			return txn.CategoryID != nil && *txn.CategoryID == category.CategoryID
		}),
		mock.Anything, mock.Anything,
	).Return(nil).Once()

	txn, err := suite.service.TransferBetweenAccounts(ctx, dto.TransferRequest{
		FromAccountID: suite.checking.AccountID,
		ToAccountID:   suite.savings.AccountID,
		Amount:        decimal.NewFromInt(30),
		CategoryID:    &category.CategoryID,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(txn.CategoryID)
	suite.Equal(category.CategoryID, *txn.CategoryID)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestTransferBetweenAccounts_UnknownCategory() {
	ctx := context.Background()
	categoryID := uuid.NewString()

	suite.expectAccount(suite.checking)
	suite.expectAccount(suite.savings)
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, categoryID).
		Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.TransferBetweenAccounts(ctx, dto.TransferRequest{
		FromAccountID: suite.checking.AccountID,
		ToAccountID:   suite.savings.AccountID,
		Amount:        decimal.NewFromInt(30),
		CategoryID:    &categoryID,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(txn)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransferServiceTestSuite) TestTransferBetweenAccounts_ExternalSourceSkipsGuard() {
	ctx := context.Background()

	suite.expectAccount(suite.employer)
	suite.expectAccount(suite.checking)

	suite.mockLedgerRepo.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction"),
		mock.AnythingOfType("[]domain.TransactionLeg"),
		mock.MatchedBy(func(guards []portsrepo.BalanceGuard) bool {
			return len(guards) == 0
		}),
	).Return(nil).Once()

	_, err := suite.service.TransferBetweenAccounts(ctx, dto.TransferRequest{
		FromAccountID: suite.employer.AccountID,
		ToAccountID:   suite.checking.AccountID,
		Amount:        decimal.NewFromInt(2500),
		Description:   "Salary",
	})

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestTransferBetweenAccounts_InsufficientFunds() {
	ctx := context.Background()

	suite.expectAccount(suite.checking)
	suite.expectAccount(suite.savings)

	suite.mockLedgerRepo.On("SaveTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(apperrors.ErrInsufficientFunds).Once()

	txn, err := suite.service.TransferBetweenAccounts(ctx, dto.TransferRequest{
		FromAccountID: suite.checking.AccountID,
		ToAccountID:   suite.savings.AccountID,
		Amount:        decimal.NewFromInt(1000000),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.Nil(txn)
}

func (suite *TransferServiceTestSuite) TestTransferToPot_Success() {
	ctx := context.Background()
	amount := decimal.NewFromInt(100)

	suite.expectAccount(suite.checking)
	suite.expectPot(suite.holiday)

	suite.mockLedgerRepo.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction"),
		mock.MatchedBy(func(legs []domain.TransactionLeg) bool {
			if len(legs) != 2 {
				return false
			}
			debit, credit := legs[0], legs[1]
			return debit.AccountID == suite.checking.AccountID &&
				debit.PotID == nil && debit.Debit.Equal(amount) &&
				credit.AccountID == suite.checking.AccountID &&
				credit.PotID != nil && *credit.PotID == suite.holiday.PotID &&
				credit.Credit.Equal(amount)
		}),
		mock.MatchedBy(func(guards []portsrepo.BalanceGuard) bool {
			return len(guards) == 1 && guards[0].PotID == nil && guards[0].Required.Equal(amount)
		}),
	).Return(nil).Once()

	txn, err := suite.service.TransferToPot(ctx, dto.PotTransferRequest{
		AccountID: suite.checking.AccountID,
		PotID:     suite.holiday.PotID,
		Amount:    amount,
	})

	suite.Require().NoError(err)
	suite.Equal("Move to pot Holiday", txn.Description)

	// Two legs on the same account net to zero: the account total is unchanged.
	suite.True(txn.Legs[0].Delta().Add(txn.Legs[1].Delta()).IsZero())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestTransferToPot_GuardedDespiteOverdraft() {
	// Overdraft room covers account spending, not pot funding: a pot can
	// only ring-fence money the unassigned balance actually holds.
	lenientSvc := services.NewTransferService(suite.mockLedgerRepo, suite.mockAccountRepo, suite.mockCategoryRepo, suite.mockCurrencySvc, false)
	ctx := context.Background()
	amount := decimal.NewFromInt(50)

	overdraftAcct := suite.checking
	overdraftAcct.OverdraftLimit = decimal.NewFromInt(500)
	suite.expectAccount(overdraftAcct)
	suite.expectPot(suite.holiday)

	suite.mockLedgerRepo.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction"),
		mock.AnythingOfType("[]domain.TransactionLeg"),
		mock.MatchedBy(func(guards []portsrepo.BalanceGuard) bool {
			return len(guards) == 1 &&
				guards[0].AccountID == overdraftAcct.AccountID &&
				guards[0].PotID == nil &&
				guards[0].Required.Equal(amount)
		}),
	).Return(nil).Once()

	_, err := lenientSvc.TransferToPot(ctx, dto.PotTransferRequest{
		AccountID: overdraftAcct.AccountID,
		PotID:     suite.holiday.PotID,
		Amount:    amount,
	})

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestTransferFromPot_AlwaysGuarded() {
	// Even with strict funds off, a pot can never be overdrawn.
	lenientSvc := services.NewTransferService(suite.mockLedgerRepo, suite.mockAccountRepo, suite.mockCategoryRepo, suite.mockCurrencySvc, false)
	ctx := context.Background()
	amount := decimal.NewFromInt(40)

	suite.expectAccount(suite.checking)
	suite.expectPot(suite.holiday)

	suite.mockLedgerRepo.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction"),
		mock.AnythingOfType("[]domain.TransactionLeg"),
		mock.MatchedBy(func(guards []portsrepo.BalanceGuard) bool {
			return len(guards) == 1 &&
				guards[0].AccountID == suite.checking.AccountID &&
				guards[0].PotID != nil && *guards[0].PotID == suite.holiday.PotID &&
				guards[0].Required.Equal(amount)
		}),
	).Return(nil).Once()

	_, err := lenientSvc.TransferFromPot(ctx, dto.PotTransferRequest{
		AccountID: suite.checking.AccountID,
		PotID:     suite.holiday.PotID,
		Amount:    amount,
	})

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestTransferToPot_WrongAccount() {
	ctx := context.Background()

	suite.expectAccount(suite.savings)
	suite.expectPot(suite.holiday) // belongs to checking

	txn, err := suite.service.TransferToPot(ctx, dto.PotTransferRequest{
		AccountID: suite.savings.AccountID,
		PotID:     suite.holiday.PotID,
		Amount:    decimal.NewFromInt(10),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPotOwnership)
	suite.Nil(txn)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransferServiceTestSuite) TestTransferBetweenPots_Success() {
	ctx := context.Background()
	amount := decimal.NewFromInt(15)

	suite.expectAccount(suite.checking)
	suite.expectPot(suite.holiday)
	suite.expectAccount(suite.checking)
	suite.expectPot(suite.rainyDay)

	suite.mockLedgerRepo.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction"),
		mock.MatchedBy(func(legs []domain.TransactionLeg) bool {
			if len(legs) != 2 {
				return false
			}
			debit, credit := legs[0], legs[1]
			return debit.PotID != nil && *debit.PotID == suite.holiday.PotID &&
				credit.PotID != nil && *credit.PotID == suite.rainyDay.PotID
		}),
		mock.MatchedBy(func(guards []portsrepo.BalanceGuard) bool {
			return len(guards) == 1 &&
				guards[0].PotID != nil && *guards[0].PotID == suite.holiday.PotID
		}),
	).Return(nil).Once()

	txn, err := suite.service.TransferBetweenPots(ctx, dto.PotToPotTransferRequest{
		AccountID: suite.checking.AccountID,
		FromPotID: suite.holiday.PotID,
		ToPotID:   suite.rainyDay.PotID,
		Amount:    amount,
	})

	suite.Require().NoError(err)
	suite.Equal("Move from pot Holiday to pot Rainy Day", txn.Description)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestTransferBetweenPots_SamePot() {
	ctx := context.Background()

	_, err := suite.service.TransferBetweenPots(ctx, dto.PotToPotTransferRequest{
		AccountID: suite.checking.AccountID,
		FromPotID: suite.holiday.PotID,
		ToPotID:   suite.holiday.PotID,
		Amount:    decimal.NewFromInt(10),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransferServiceTestSuite) TestCreateMultiLegTransaction_Success() {
	ctx := context.Background()
	usd := domain.Currency{CurrencyCode: "USD", Name: "US Dollar", Symbol: "$", Kind: domain.Fiat, Decimals: 2, IsActive: true}
	amount := decimal.NewFromFloat(45.99)

	suite.mockCurrencySvc.On("GetCurrencyByCode", mock.Anything, "USD").Return(&usd, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", mock.Anything, mock.AnythingOfType("[]string")).
		Return(map[string]domain.Account{
			suite.checking.AccountID: suite.checking,
			suite.employer.AccountID: suite.employer,
		}, nil).Once()

	suite.mockLedgerRepo.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction"),
		mock.MatchedBy(func(legs []domain.TransactionLeg) bool {
			return len(legs) == 2 &&
				legs[0].Debit.Equal(amount) && legs[1].Credit.Equal(amount)
		}),
		mock.MatchedBy(func(guards []portsrepo.BalanceGuard) bool {
			return len(guards) == 1 && guards[0].AccountID == suite.checking.AccountID
		}),
	).Return(nil).Once()

	txn, err := suite.service.CreateMultiLegTransaction(ctx, dto.CreateTransactionRequest{
		Description:  "Groceries",
		CurrencyCode: "USD",
		Legs: []dto.CreateLegRequest{
			{AccountID: suite.checking.AccountID, Debit: &amount},
			{AccountID: suite.employer.AccountID, Credit: &amount},
		},
	})

	suite.Require().NoError(err)
	suite.Len(txn.Legs, 2)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestCreateMultiLegTransaction_Unbalanced() {
	ctx := context.Background()
	usd := domain.Currency{CurrencyCode: "USD", Kind: domain.Fiat, Decimals: 2, IsActive: true}
	debit := decimal.NewFromInt(100)
	credit := decimal.NewFromInt(90)

	suite.mockCurrencySvc.On("GetCurrencyByCode", mock.Anything, "USD").Return(&usd, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", mock.Anything, mock.AnythingOfType("[]string")).
		Return(map[string]domain.Account{
			suite.checking.AccountID: suite.checking,
			suite.savings.AccountID:  suite.savings,
		}, nil).Once()

	txn, err := suite.service.CreateMultiLegTransaction(ctx, dto.CreateTransactionRequest{
		Description:  "Broken split",
		CurrencyCode: "USD",
		Legs: []dto.CreateLegRequest{
			{AccountID: suite.checking.AccountID, Debit: &debit},
			{AccountID: suite.savings.AccountID, Credit: &credit},
		},
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnbalanced)
	suite.Nil(txn)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransferServiceTestSuite) TestCreateMultiLegTransaction_CrossCurrencyBalanced() {
	ctx := context.Background()
	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	usd := domain.Currency{CurrencyCode: "USD", Kind: domain.Fiat, Decimals: 2, IsActive: true}
	rate := decimal.NewFromFloat(1.25)
	debit := decimal.NewFromInt(10)      // USD
	credit := decimal.NewFromFloat(12.5) // EUR at 1.25

	suite.mockCurrencySvc.On("GetCurrencyByCode", mock.Anything, "USD").Return(&usd, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", mock.Anything, mock.AnythingOfType("[]string")).
		Return(map[string]domain.Account{
			suite.checking.AccountID: suite.checking,
			suite.eurAcct.AccountID:  suite.eurAcct,
		}, nil).Once()
	suite.mockCurrencySvc.On("RateAt", mock.Anything, "USD", "EUR",
		mock.MatchedBy(func(at *time.Time) bool { return at != nil && at.Equal(date) }),
	).Return(rate, nil).Once()

	suite.mockLedgerRepo.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction"),
		mock.MatchedBy(func(legs []domain.TransactionLeg) bool {
			return len(legs) == 2 && legs[1].ExchangeRate.Equal(rate)
		}),
		mock.Anything,
	).Return(nil).Once()

	txn, err := suite.service.CreateMultiLegTransaction(ctx, dto.CreateTransactionRequest{
		Description:  "EUR top-up",
		CurrencyCode: "USD",
		Date:         &date,
		Legs: []dto.CreateLegRequest{
			{AccountID: suite.checking.AccountID, Debit: &debit},
			{AccountID: suite.eurAcct.AccountID, Credit: &credit},
		},
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.mockCurrencySvc.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestCreateMultiLegTransaction_PotOwnership() {
	ctx := context.Background()
	usd := domain.Currency{CurrencyCode: "USD", Kind: domain.Fiat, Decimals: 2, IsActive: true}
	amount := decimal.NewFromInt(10)
	potID := suite.holiday.PotID // belongs to checking, not savings

	suite.mockCurrencySvc.On("GetCurrencyByCode", mock.Anything, "USD").Return(&usd, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", mock.Anything, mock.AnythingOfType("[]string")).
		Return(map[string]domain.Account{
			suite.checking.AccountID: suite.checking,
			suite.savings.AccountID:  suite.savings,
		}, nil).Once()
	suite.expectPot(suite.holiday)

	txn, err := suite.service.CreateMultiLegTransaction(ctx, dto.CreateTransactionRequest{
		Description:  "Bad pot tag",
		CurrencyCode: "USD",
		Legs: []dto.CreateLegRequest{
			{AccountID: suite.checking.AccountID, Debit: &amount},
			{AccountID: suite.savings.AccountID, PotID: &potID, Credit: &amount},
		},
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPotOwnership)
	suite.Nil(txn)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransferServiceTestSuite) TestCreateMultiLegTransaction_TooFewLegs() {
	ctx := context.Background()
	amount := decimal.NewFromInt(10)

	_, err := suite.service.CreateMultiLegTransaction(ctx, dto.CreateTransactionRequest{
		Description:  "One-sided",
		CurrencyCode: "USD",
		Legs: []dto.CreateLegRequest{
			{AccountID: suite.checking.AccountID, Debit: &amount},
		},
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCurrencySvc.AssertNotCalled(suite.T(), "GetCurrencyByCode")
}

func TestTransferService(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}
