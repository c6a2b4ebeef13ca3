// Package cache decorates the account directory with a Redis read-through cache.
// Ledger entries are never cached: statements always come from the store.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/bank_ledger_app/internal/middleware"
	"github.com/SscSPs/bank_ledger_app/internal/models"
	"github.com/SscSPs/bank_ledger_app/internal/utils/mapping"
	"github.com/redis/go-redis/v9"
)

const accountKeyPrefix = "account:"

// Client is the subset of redis.Cmdable the cache needs. *redis.Client satisfies it.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type cachedAccountRepository struct {
	next   portsrepo.AccountRepositoryFacade
	client Client
	ttl    time.Duration
}

// NewAccountRepository wraps next so that single-account lookups are served
// from Redis. Writes go to next first and then invalidate the cached entry.
// Redis failures are logged and never fail the call.
func NewAccountRepository(next portsrepo.AccountRepositoryFacade, client Client, ttl time.Duration) portsrepo.AccountRepositoryFacade {
	return &cachedAccountRepository{next: next, client: client, ttl: ttl}
}

var _ portsrepo.AccountRepositoryFacade = (*cachedAccountRepository)(nil)

func accountKey(accountID int64) string {
	return accountKeyPrefix + strconv.FormatInt(accountID, 10)
}

func (r *cachedAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	key := accountKey(accountID)

	data, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var m models.Account
		jsonErr := json.Unmarshal(data, &m)
		if jsonErr == nil {
			account := mapping.ToDomainAccount(m)
			logger.Debug("Account cache hit", slog.String("key", key))
			return &account, nil
		}
		logger.Warn("Discarding undecodable cached account", slog.String("key", key), slog.String("error", jsonErr.Error()))
	case errors.Is(err, redis.Nil):
		logger.Debug("Account cache miss", slog.String("key", key))
	default:
		logger.Warn("Account cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	account, err := r.next.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	r.store(ctx, *account)
	return account, nil
}

func (r *cachedAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	return r.next.ListAccounts(ctx, limit, offset)
}

func (r *cachedAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	saved, err := r.next.SaveAccount(ctx, account)
	if err != nil {
		return nil, err
	}
	r.store(ctx, *saved)
	return saved, nil
}

func (r *cachedAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	if err := r.next.UpdateAccount(ctx, account); err != nil {
		return err
	}
	r.invalidate(ctx, account.AccountID)
	return nil
}

func (r *cachedAccountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	if err := r.next.DeleteAccount(ctx, accountID); err != nil {
		return err
	}
	r.invalidate(ctx, accountID)
	return nil
}

func (r *cachedAccountRepository) store(ctx context.Context, account domain.Account) {
	data, err := json.Marshal(mapping.ToModelAccount(account))
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to encode account for cache", slog.Int64("account_id", account.AccountID), slog.String("error", err.Error()))
		return
	}
	if err := r.client.Set(ctx, accountKey(account.AccountID), data, r.ttl).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Account cache write failed", slog.Int64("account_id", account.AccountID), slog.String("error", err.Error()))
	}
}

func (r *cachedAccountRepository) invalidate(ctx context.Context, accountID int64) {
	if err := r.client.Del(ctx, accountKey(accountID)).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Account cache invalidation failed",
			slog.String("key", accountKey(accountID)), slog.String("error", err.Error()))
	}
}
