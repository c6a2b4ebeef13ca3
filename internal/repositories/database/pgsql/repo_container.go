package pgsql

import (
	"context"

	portsrepo "github.com/SscSPs/bank_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// unitOfWork binds both repositories to one open pgx.Tx.
type unitOfWork struct {
	accounts *PgxAccountRepository
	ledger   *PgxLedgerRepository
}

func (u *unitOfWork) Accounts() portsrepo.AccountReader { return u.accounts }
func (u *unitOfWork) Ledger() portsrepo.LedgerWriter    { return u.ledger }

// pgxTransactionManager runs units of work on the pool.
type pgxTransactionManager struct {
	BaseRepository
}

var _ portsrepo.TransactionManager = (*pgxTransactionManager)(nil)

// RunInTx commits when fn returns nil and rolls back otherwise.
func (m *pgxTransactionManager) RunInTx(ctx context.Context, fn func(ctx context.Context, uow portsrepo.UnitOfWork) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	defer m.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	uow := &unitOfWork{
		accounts: newPgxAccountRepository(tx),
		ledger:   newPgxLedgerRepository(tx),
	}
	if err := fn(ctx, uow); err != nil {
		return err
	}
	return m.Commit(ctx, tx)
}

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newPgxAccountRepository(dbPool),
		LedgerRepo:  newPgxLedgerRepository(dbPool),
		TxManager:   &pgxTransactionManager{BaseRepository: BaseRepository{db: dbPool}},
		Close: func() error {
			dbPool.Close()
			return nil
		},
	}
}
