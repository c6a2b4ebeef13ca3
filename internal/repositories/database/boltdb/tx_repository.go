package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/bank_ledger_app/internal/core/query"
	"github.com/SscSPs/bank_ledger_app/internal/models"
	"github.com/SscSPs/bank_ledger_app/internal/utils/mapping"
	bolt "go.etcd.io/bbolt"
)

// txRepository implements every repository port against one bbolt transaction.
type txRepository struct {
	tx  *bolt.Tx
	now func() time.Time
}

func (r *txRepository) bucket(name string) (*bolt.Bucket, error) {
	b := r.tx.Bucket([]byte(name))
	if b == nil {
		return nil, fmt.Errorf("bucket %s not found", name)
	}
	return b, nil
}

func (r *txRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := r.bucket(BucketAccounts)
	if err != nil {
		return nil, err
	}
	data := b.Get(itob(accountID))
	if data == nil {
		return nil, apperrors.ErrNotFound
	}
	var m models.Account
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode account %d: %w", accountID, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

func (r *txRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := r.bucket(BucketAccounts)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		return []domain.Account{}, nil
	}
	accounts := make([]domain.Account, 0, limit)
	skipped := 0
	c := b.Cursor()
	for k, v := c.First(); k != nil && len(accounts) < limit; k, v = c.Next() {
		if skipped < offset {
			skipped++
			continue
		}
		var m models.Account
		if err := json.Unmarshal(v, &m); err != nil {
			return nil, fmt.Errorf("failed to decode account %d: %w", btoi(k), err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	return accounts, nil
}

func (r *txRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := r.bucket(BucketAccounts)
	if err != nil {
		return nil, err
	}
	seq, err := b.NextSequence()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate account id: %w", err)
	}
	account.AccountID = int64(seq)
	if err := r.putAccount(b, account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *txRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := r.bucket(BucketAccounts)
	if err != nil {
		return err
	}
	if b.Get(itob(account.AccountID)) == nil {
		return apperrors.ErrNotFound
	}
	return r.putAccount(b, account)
}

func (r *txRepository) putAccount(b *bolt.Bucket, account domain.Account) error {
	data, err := json.Marshal(mapping.ToModelAccount(account))
	if err != nil {
		return fmt.Errorf("failed to marshal account: %w", err)
	}
	if err := b.Put(itob(account.AccountID), data); err != nil {
		return fmt.Errorf("failed to save account %d: %w", account.AccountID, err)
	}
	return nil
}

func (r *txRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	accounts, err := r.bucket(BucketAccounts)
	if err != nil {
		return err
	}
	if accounts.Get(itob(accountID)) == nil {
		return apperrors.ErrNotFound
	}

	index, err := r.bucket(BucketAccountTransactions)
	if err != nil {
		return err
	}
	if entries := index.Bucket(itob(accountID)); entries != nil {
		if k, _ := entries.Cursor().First(); k != nil {
			return fmt.Errorf("%w: account %d is referenced by ledger entries", apperrors.ErrConstraintViolation, accountID)
		}
		if err := index.DeleteBucket(itob(accountID)); err != nil {
			return fmt.Errorf("failed to drop index of account %d: %w", accountID, err)
		}
	}
	if err := accounts.Delete(itob(accountID)); err != nil {
		return fmt.Errorf("failed to delete account %d: %w", accountID, err)
	}
	return nil
}

func (r *txRepository) AppendTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	accounts, err := r.bucket(BucketAccounts)
	if err != nil {
		return nil, err
	}
	if accounts.Get(itob(txn.AccountID)) == nil {
		return nil, fmt.Errorf("%w: account %d does not exist", apperrors.ErrConstraintViolation, txn.AccountID)
	}

	txns, err := r.bucket(BucketTransactions)
	if err != nil {
		return nil, err
	}
	seq, err := txns.NextSequence()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate transaction id: %w", err)
	}
	txn.TransactionID = int64(seq)
	txn.Timestamp = r.now().UTC()

	data, err := json.Marshal(mapping.ToModelTransaction(txn))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction: %w", err)
	}
	if err := txns.Put(itob(txn.TransactionID), data); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	index, err := r.bucket(BucketAccountTransactions)
	if err != nil {
		return nil, err
	}
	entries, err := index.CreateBucketIfNotExists(itob(txn.AccountID))
	if err != nil {
		return nil, fmt.Errorf("failed to create index of account %d: %w", txn.AccountID, err)
	}
	if err := entries.Put(itob(txn.TransactionID), []byte{}); err != nil {
		return nil, fmt.Errorf("failed to index transaction %d: %w", txn.TransactionID, err)
	}
	return &txn, nil
}

func (r *txRepository) AppendTransactions(ctx context.Context, txns []domain.Transaction) ([]domain.Transaction, error) {
	saved := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		created, err := r.AppendTransaction(ctx, txn)
		if err != nil {
			return nil, err
		}
		saved = append(saved, *created)
	}
	return saved, nil
}

func (r *txRepository) QueryTransactions(ctx context.Context, spec query.Spec, limit int) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	txns, err := r.bucket(BucketTransactions)
	if err != nil {
		return nil, err
	}

	var matched []domain.Transaction
	collect := func(k, v []byte) error {
		var m models.Transaction
		if err := json.Unmarshal(v, &m); err != nil {
			return fmt.Errorf("failed to decode transaction %d: %w", btoi(k), err)
		}
		txn := mapping.ToDomainTransaction(m)
		if spec.Matches(txn) {
			matched = append(matched, txn)
		}
		return nil
	}

	if accountID, ok := spec.AccountID(); ok {
		index, err := r.bucket(BucketAccountTransactions)
		if err != nil {
			return nil, err
		}
		entries := index.Bucket(itob(accountID))
		if entries == nil {
			return []domain.Transaction{}, nil
		}
		err = entries.ForEach(func(k, _ []byte) error {
			v := txns.Get(k)
			if v == nil {
				return fmt.Errorf("index of account %d references missing transaction %d", accountID, btoi(k))
			}
			return collect(k, v)
		})
		if err != nil {
			return nil, err
		}
	} else if err := txns.ForEach(collect); err != nil {
		return nil, err
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Timestamp.Equal(matched[j].Timestamp) {
			return matched[i].TransactionID < matched[j].TransactionID
		}
		return matched[i].Timestamp.Before(matched[j].Timestamp)
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	if matched == nil {
		matched = []domain.Transaction{}
	}
	return matched, nil
}

// Accounts returns the account reader of the unit of work.
func (r *txRepository) Accounts() portsrepo.AccountReader { return r }

// Ledger returns the ledger writer of the unit of work.
func (r *txRepository) Ledger() portsrepo.LedgerWriter { return r }

var (
	_ portsrepo.UnitOfWork              = (*txRepository)(nil)
	_ portsrepo.AccountRepositoryFacade = (*txRepository)(nil)
	_ portsrepo.LedgerRepositoryFacade  = (*txRepository)(nil)
)
