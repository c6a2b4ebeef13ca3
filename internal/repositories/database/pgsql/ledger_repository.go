package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/bank_ledger_app/internal/core/query"
	"github.com/SscSPs/bank_ledger_app/internal/models"
	"github.com/SscSPs/bank_ledger_app/internal/utils/mapping"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entries.
func newPgxLedgerRepository(db querier) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// AppendTransaction inserts one ledger entry. The database assigns the id and
// the creation timestamp.
func (r *PgxLedgerRepository) AppendTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	return r.insert(ctx, r.db, txn)
}

// AppendTransactions inserts all entries in one transaction (a savepoint when
// called inside a unit of work). Either every entry is stored or none is.
func (r *PgxLedgerRepository) AppendTransactions(ctx context.Context, txns []domain.Transaction) ([]domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	saved := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		stored, err := r.insert(ctx, tx, txn)
		if err != nil {
			return nil, err
		}
		saved = append(saved, *stored)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *PgxLedgerRepository) insert(ctx context.Context, db querier, txn domain.Transaction) (*domain.Transaction, error) {
	modelTxn := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (amount, transaction_type, counterparty_name, account_id)
		VALUES ($1, $2, $3, $4)
		RETURNING transaction_id, created_at, amount;
	`
	err := db.QueryRow(ctx, query,
		modelTxn.Amount,
		modelTxn.TransactionType,
		modelTxn.CounterpartyName,
		modelTxn.AccountID,
	).Scan(&modelTxn.TransactionID, &modelTxn.CreatedAt, &modelTxn.Amount)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("append %s entry for account %d", modelTxn.TransactionType, modelTxn.AccountID))
	}

	modelTxn.CreatedAt = modelTxn.CreatedAt.UTC()
	stored := mapping.ToDomainTransaction(modelTxn)
	return &stored, nil
}

// QueryTransactions returns the entries matching spec in (created_at, transaction_id) order.
func (r *PgxLedgerRepository) QueryTransactions(ctx context.Context, spec query.Spec, limit int) ([]domain.Transaction, error) {
	sql, args, err := buildTransactionQuery(spec, limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateError(err, "query transactions")
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.CreatedAt,
			&m.Amount,
			&m.TransactionType,
			&m.CounterpartyName,
			&m.AccountID,
		); err != nil {
			return nil, fmt.Errorf("error scanning transaction row: %w", err)
		}
		m.CreatedAt = m.CreatedAt.UTC()
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return mapping.ToDomainTransactions(modelTxns), nil
}
