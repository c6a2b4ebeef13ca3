package services

import (
	"context"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/SscSPs/bank_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount replaces the owner name of an existing account.
	UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account that no ledger entry references.
	DeleteAccount(ctx context.Context, accountID int64) error
}

// AccountCalculatorSvc defines calculation operations for account data
type AccountCalculatorSvc interface {
	// CalculateAccountBalance sums every ledger entry of the account.
	CalculateAccountBalance(ctx context.Context, accountID int64) (decimal.Decimal, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountCalculatorSvc
}
