// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"kintai_backend/internal/feature/clock/domain/entity"
	"kintai_backend/internal/feature/clock/usecase"
)

// CachingEventRepository decorates an EventRepository with Redis caching of
// per-user history queries. It implements the decorator pattern, transparently
// adding caching without modifying the underlying repository.
type CachingEventRepository struct {
	inner     usecase.EventRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingEventRepositoryがEventRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.EventRepository = (*CachingEventRepository)(nil)

// NewCachingEventRepository decorates an EventRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "clock".
func NewCachingEventRepository(rdb *redis.Client, ttl time.Duration, inner usecase.EventRepository, namespace string) *CachingEventRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "clock"
	}
	return &CachingEventRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// userKeyPrefix returns the cache key prefix for a user's history entries.
func (c *CachingEventRepository) userKeyPrefix(userID string) string {
	return fmt.Sprintf("%s:user:%s:", c.namespace, userID)
}

// historyKey returns the cache key for a user's history in a given order.
func (c *CachingEventRepository) historyKey(userID string, order usecase.Order) string {
	return fmt.Sprintf("%sorder-%d", c.userKeyPrefix(userID), order)
}

// deleteByPattern removes every key matching the pattern. Best effort.
func (c *CachingEventRepository) deleteByPattern(ctx context.Context, pattern string) error {
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Create persists the event and invalidates the user's cached history.
func (c *CachingEventRepository) Create(ctx context.Context, event *entity.ClockEvent) error {
	// 先に下位リポジトリへ書き込む
	if err := c.inner.Create(ctx, event); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	// 影響を受けるユーザーのキャッシュを無効化（失敗しても本体の書き込みは成功扱い）
	_ = c.deleteByPattern(ctx, c.userKeyPrefix(event.UserID)+"*")
	return nil
}

// FindByUser retrieves a user's history, checking cache first then falling back to the store.
func (c *CachingEventRepository) FindByUser(ctx context.Context, userID string, order usecase.Order) ([]entity.ClockEvent, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByUser(ctx, userID, order)
	}

	key := c.historyKey(userID, order)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.ClockEvent
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the store
	out, err := c.inner.FindByUser(ctx, userID, order)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// ListByDate is a passthrough: the cross-user daily view is an administrative
// query whose invalidation would touch every user's punches, so it always
// reads from the store.
func (c *CachingEventRepository) ListByDate(ctx context.Context, date string) ([]entity.ClockEvent, error) {
	return c.inner.ListByDate(ctx, date)
}

// DeleteByUser deletes a user's events and invalidates the user's cached history.
func (c *CachingEventRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	n, err := c.inner.DeleteByUser(ctx, userID)
	if err != nil {
		return n, err
	}
	if c.rdb != nil {
		_ = c.deleteByPattern(ctx, c.userKeyPrefix(userID)+"*")
	}
	return n, nil
}

// DeleteAll deletes every event and drops the whole cache namespace.
func (c *CachingEventRepository) DeleteAll(ctx context.Context) (int64, error) {
	n, err := c.inner.DeleteAll(ctx)
	if err != nil {
		return n, err
	}
	if c.rdb != nil {
		_ = c.deleteByPattern(ctx, c.namespace+":*")
	}
	return n, nil
}
