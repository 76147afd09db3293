// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	clockadapters "kintai_backend/internal/feature/clock/adapters"
	clockusecase "kintai_backend/internal/feature/clock/usecase"
	"kintai_backend/internal/platform/cache"
)

// NewEventRepository creates an EventRepository implementation.
// If Redis is available, the GORM repository is wrapped with a caching
// decorator whose entries expire at the next midnight (JST).
func NewEventRepository(rdb *redis.Client, db *gorm.DB) clockusecase.EventRepository {
	repo := clockadapters.NewEventRepository(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingEventRepository(rdb, cache.TimeUntilNextMidnight(), repo, "clock")
}
