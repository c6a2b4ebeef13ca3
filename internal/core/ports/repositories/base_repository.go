package repositories

import "context"

// UnitOfWork exposes the repositories bound to a single store transaction.
// Everything done through it commits or aborts together.
type UnitOfWork interface {
	Accounts() AccountReader
	Ledger() LedgerWriter
}

// TransactionManager runs a function inside one atomic store transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type TransactionManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error
}
