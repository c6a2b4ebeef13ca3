package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes the repositories translate.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so every repository
// can run either on the pool or inside a unit of work. Begin on a pgx.Tx opens
// a savepoint.
type querier interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db querier
}

// Begin starts a new database transaction, or a savepoint when already inside one.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction. Rolling back a committed transaction is a no-op.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// translateError maps driver errors onto the application sentinels.
func translateError(err error, action string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s: %s", apperrors.ErrConstraintViolation, action, pgErr.ConstraintName)
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s: %s", apperrors.ErrDuplicate, action, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
