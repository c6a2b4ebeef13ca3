package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/bank_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_app/internal/core/services"
	"github.com/SscSPs/bank_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockAccountRepository
	mockLedger *MockLedgerRepository
	service    portssvc.AccountSvcFacade
	ctx        context.Context
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.mockLedger = new(MockLedgerRepository)
	suite.service = services.NewAccountService(suite.mockRepo, services.WithLedgerReader(suite.mockLedger))
	suite.ctx = context.Background()
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	suite.mockRepo.On("SaveAccount", suite.ctx, domain.Account{OwnerName: "Joseph Smith"}).
		Return(&domain.Account{AccountID: 1, OwnerName: "Joseph Smith"}, nil).Once()

	account, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{OwnerName: "  Joseph Smith "})

	suite.Require().NoError(err)
	suite.Equal(int64(1), account.AccountID)
	suite.Equal("Joseph Smith", account.OwnerName)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Validation() {
	_, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{OwnerName: "   "})
	var vErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &vErr)
	suite.Equal("is required", vErr.Fields["ownerName"])

	_, err = suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{OwnerName: strings.Repeat("a", domain.MaxOwnerNameLength+1)})
	suite.Require().ErrorAs(err, &vErr)
	suite.Equal("must be at most 50 characters", vErr.Fields["ownerName"])

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	expectedErr := errors.New("database error")
	suite.mockRepo.On("SaveAccount", suite.ctx, mock.AnythingOfType("domain.Account")).Return(nil, expectedErr).Once()

	account, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{OwnerName: "Joseph Smith"})

	suite.Nil(account)
	suite.ErrorIs(err, expectedErr)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	suite.mockRepo.On("FindAccountByID", suite.ctx, int64(7)).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(suite.ctx, 7)

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestListAccounts_ClampsPaging() {
	suite.mockRepo.On("ListAccounts", suite.ctx, 20, 0).Return(nil, nil).Once()
	suite.mockRepo.On("ListAccounts", suite.ctx, 100, 5).Return([]domain.Account{{AccountID: 6, OwnerName: "x"}}, nil).Once()

	accounts, err := suite.service.ListAccounts(suite.ctx, 0, -3)
	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)

	accounts, err = suite.service.ListAccounts(suite.ctx, 1000, 5)
	suite.Require().NoError(err)
	suite.Len(accounts, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount() {
	suite.mockRepo.On("FindAccountByID", suite.ctx, int64(1)).Return(&domain.Account{AccountID: 1, OwnerName: "Joseph Smith"}, nil).Once()
	suite.mockRepo.On("UpdateAccount", suite.ctx, domain.Account{AccountID: 1, OwnerName: "Joseph A. Smith"}).Return(nil).Once()

	account, err := suite.service.UpdateAccount(suite.ctx, 1, dto.UpdateAccountRequest{OwnerName: "Joseph A. Smith"})

	suite.Require().NoError(err)
	suite.Equal("Joseph A. Smith", account.OwnerName)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_ConstraintViolation() {
	suite.mockRepo.On("FindAccountByID", suite.ctx, int64(1)).Return(&domain.Account{AccountID: 1}, nil).Once()
	suite.mockRepo.On("DeleteAccount", suite.ctx, int64(1)).Return(apperrors.ErrConstraintViolation).Once()

	err := suite.service.DeleteAccount(suite.ctx, 1)

	suite.ErrorIs(err, apperrors.ErrConstraintViolation)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_NotFoundSkipsDelete() {
	suite.mockRepo.On("FindAccountByID", suite.ctx, int64(3)).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteAccount(suite.ctx, 3)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCalculateAccountBalance() {
	suite.mockRepo.On("FindAccountByID", suite.ctx, int64(1)).Return(&domain.Account{AccountID: 1}, nil).Once()
	suite.mockLedger.On("QueryTransactions", suite.ctx, mock.Anything, 0).Return([]domain.Transaction{
		{Amount: decimal.NewFromInt(100), TransactionType: domain.Deposit},
		{Amount: decimal.NewFromInt(-50), TransactionType: domain.Transfer},
		{Amount: decimal.RequireFromString("-12.5"), TransactionType: domain.Withdraw},
	}, nil).Once()

	balance, err := suite.service.CalculateAccountBalance(suite.ctx, 1)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.RequireFromString("37.5")), balance.String())
}
