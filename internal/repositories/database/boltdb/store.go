// Package boltdb implements the account directory and the ledger store on an
// embedded bbolt file. Each bbolt write transaction is one unit of work.
package boltdb

import (
	"encoding/binary"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Bucket names.
const (
	BucketAccounts            = "accounts"
	BucketTransactions        = "transactions"
	BucketAccountTransactions = "account_transactions"
)

// Store represents the bbolt database wrapper.
type Store struct {
	db  *bolt.DB
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to timestamp appended entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Open creates a new Store instance and initializes buckets.
func Open(dbPath string, opts ...Option) (*Store, error) {
	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range []string{BucketAccounts, BucketTransactions, BucketAccountTransactions} {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// view runs fn against a read-only repository bound to one bbolt transaction.
func (s *Store) view(fn func(r *txRepository) error) error {
	return s.db.View(func(tx *bolt.Tx) error {
		return fn(&txRepository{tx: tx, now: s.now})
	})
}

// update runs fn against a writable repository bound to one bbolt transaction.
// Returning an error rolls back everything fn wrote.
func (s *Store) update(fn func(r *txRepository) error) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return fn(&txRepository{tx: tx, now: s.now})
	})
}

// itob returns an 8-byte big endian representation of v.
func itob(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

// btoi decodes an itob key.
func btoi(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b))
}
