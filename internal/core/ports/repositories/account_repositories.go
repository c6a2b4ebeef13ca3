package repositories

import (
	"context"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
)

// AccountReader defines read operations of the account directory.
type AccountReader interface {
	// FindAccountByID retrieves an account by its store-assigned ID.
	// It returns apperrors.ErrNotFound when no such account exists.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts retrieves a page of accounts ordered by ID.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations of the account directory.
type AccountWriter interface {
	// SaveAccount persists a new account and returns it with its assigned ID.
	SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// UpdateAccount replaces the owner name of an existing account.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account. It returns apperrors.ErrConstraintViolation
	// while ledger entries still reference the account.
	DeleteAccount(ctx context.Context, accountID int64) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
