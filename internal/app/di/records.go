package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	recordadapters "fitness_backend/internal/feature/records/adapters"
	"fitness_backend/internal/feature/records/usecase"
	"fitness_backend/internal/platform/cache"
)

// NewRecordRepository creates a RecordRepository implementation.
// If Redis is available, the GORM repository is wrapped with a caching
// decorator. Otherwise the plain GORM repository is returned.
func NewRecordRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.RecordRepository {
	repo := recordadapters.NewRecordRepository(db)
	if rdb != nil {
		return cache.NewCachingRecordRepository(rdb, ttl, repo, "records")
	}
	return repo
}
