package services

import (
	"context"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/SscSPs/bank_ledger_app/internal/dto"
)

// LedgerSvc turns monetary operations into committed ledger entries.
type LedgerSvc interface {
	// Deposit credits the account and returns the created entry.
	Deposit(ctx context.Context, accountID int64, req dto.OperationRequest) (*domain.Transaction, error)

	// Withdraw debits the account and returns the created entry.
	Withdraw(ctx context.Context, accountID int64, req dto.OperationRequest) (*domain.Transaction, error)

	// Transfer moves value between two accounts as one atomic pair of entries
	// and returns the entry on the source account.
	Transfer(ctx context.Context, sourceAccountID int64, req dto.TransferRequest) (*domain.Transaction, error)
}

// StatementSvc answers ledger history queries for one account.
type StatementSvc interface {
	// GetStatement returns every matching entry of the account in creation order.
	GetStatement(ctx context.Context, accountID int64, filter domain.StatementFilter) ([]domain.Transaction, error)

	// GetStatementPage returns at most limit matching entries after nextToken.
	GetStatementPage(ctx context.Context, accountID int64, filter domain.StatementFilter, limit int, nextToken *string) (*domain.StatementPage, error)
}
