// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fitness_backend/internal/feature/records/domain/entity"
	"fitness_backend/internal/feature/records/usecase"
)

// CachingRecordRepository decorates a RecordRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. The per-user record list is cached as
// a whole and invalidated on every append, so readers never observe a stale
// list after their own write.
type CachingRecordRepository struct {
	inner     usecase.RecordRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingRecordRepository decorates a RecordRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "records".
func NewCachingRecordRepository(rdb *redis.Client, ttl time.Duration, inner usecase.RecordRepository, namespace string) *CachingRecordRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "records"
	}
	return &CachingRecordRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

var _ usecase.RecordRepository = (*CachingRecordRepository)(nil)

// Append appends the record and invalidates the owner's cached list.
func (c *CachingRecordRepository) Append(ctx context.Context, userID uint, record entity.Record) error {
	// First append to the underlying repository
	if err := c.inner.Append(ctx, userID, record); err != nil {
		return err
	}
	// Exit early if Redis is not configured
	if c.rdb == nil {
		return nil
	}

	// Best effort: don't fail the append if cache invalidation fails
	_ = c.rdb.Del(ctx, c.cacheKey(userID)).Err()
	return nil
}

// ListByUser retrieves records, checking cache first then falling back to the database.
func (c *CachingRecordRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Record, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListByUser(ctx, userID)
	}

	key := c.cacheKey(userID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Record
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates the cache key holding a user's full record list.
func (c *CachingRecordRepository) cacheKey(userID uint) string {
	return fmt.Sprintf("%s:user:%d", c.namespace, userID)
}
