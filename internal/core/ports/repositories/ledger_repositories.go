package repositories

import (
	"context"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/SscSPs/bank_ledger_app/internal/core/query"
)

// LedgerReader defines read operations of the ledger store.
type LedgerReader interface {
	// QueryTransactions returns the entries matching spec ordered ascending by
	// (timestamp, id). A limit <= 0 returns every match.
	QueryTransactions(ctx context.Context, spec query.Spec, limit int) ([]domain.Transaction, error)
}

// LedgerWriter defines append operations of the ledger store. Entries are never
// updated or deleted.
type LedgerWriter interface {
	// AppendTransaction persists one entry and returns it with ID and timestamp assigned.
	AppendTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// AppendTransactions persists all entries as one atomic unit.
	AppendTransactions(ctx context.Context, txns []domain.Transaction) ([]domain.Transaction, error)
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
