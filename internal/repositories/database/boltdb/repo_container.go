package boltdb

import (
	"context"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/bank_ledger_app/internal/core/query"
)

// accountRepository runs each call in its own bbolt transaction.
type accountRepository struct {
	store *Store
}

// NewAccountRepository creates the bbolt account directory.
func NewAccountRepository(store *Store) portsrepo.AccountRepositoryFacade {
	return &accountRepository{store: store}
}

func (r *accountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	var account *domain.Account
	err := r.store.view(func(tx *txRepository) error {
		var err error
		account, err = tx.FindAccountByID(ctx, accountID)
		return err
	})
	return account, err
}

func (r *accountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	var accounts []domain.Account
	err := r.store.view(func(tx *txRepository) error {
		var err error
		accounts, err = tx.ListAccounts(ctx, limit, offset)
		return err
	})
	return accounts, err
}

func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	var saved *domain.Account
	err := r.store.update(func(tx *txRepository) error {
		var err error
		saved, err = tx.SaveAccount(ctx, account)
		return err
	})
	return saved, err
}

func (r *accountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	return r.store.update(func(tx *txRepository) error {
		return tx.UpdateAccount(ctx, account)
	})
}

func (r *accountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	return r.store.update(func(tx *txRepository) error {
		return tx.DeleteAccount(ctx, accountID)
	})
}

// ledgerRepository runs each call in its own bbolt transaction.
type ledgerRepository struct {
	store *Store
}

// NewLedgerRepository creates the bbolt ledger store.
func NewLedgerRepository(store *Store) portsrepo.LedgerRepositoryFacade {
	return &ledgerRepository{store: store}
}

func (r *ledgerRepository) QueryTransactions(ctx context.Context, spec query.Spec, limit int) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	err := r.store.view(func(tx *txRepository) error {
		var err error
		txns, err = tx.QueryTransactions(ctx, spec, limit)
		return err
	})
	return txns, err
}

func (r *ledgerRepository) AppendTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	var saved *domain.Transaction
	err := r.store.update(func(tx *txRepository) error {
		var err error
		saved, err = tx.AppendTransaction(ctx, txn)
		return err
	})
	return saved, err
}

func (r *ledgerRepository) AppendTransactions(ctx context.Context, txns []domain.Transaction) ([]domain.Transaction, error) {
	var saved []domain.Transaction
	err := r.store.update(func(tx *txRepository) error {
		var err error
		saved, err = tx.AppendTransactions(ctx, txns)
		return err
	})
	return saved, err
}

// RunInTx runs fn inside one writable bbolt transaction. bbolt allows a single
// writer at a time, so concurrent units of work are serialized.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context, uow portsrepo.UnitOfWork) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.update(func(tx *txRepository) error {
		return fn(ctx, tx)
	})
}

var _ portsrepo.TransactionManager = (*Store)(nil)

// NewRepositoryProvider wires every repository port to the store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: NewAccountRepository(store),
		LedgerRepo:  NewLedgerRepository(store),
		TxManager:   store,
		Close:       store.Close,
	}
}
