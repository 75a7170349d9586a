// Package di provides dependency injection factories for creating application components.
package di

import (
	"log/slog"
	"time"

	authadapters "cleanneat_backend/internal/feature/auth/adapters"
	authusecase "cleanneat_backend/internal/feature/auth/usecase"
	settingsadapters "cleanneat_backend/internal/feature/settings/adapters"
	settingsusecase "cleanneat_backend/internal/feature/settings/usecase"
	testimonialsadapters "cleanneat_backend/internal/feature/testimonials/adapters"
	testimonialsusecase "cleanneat_backend/internal/feature/testimonials/usecase"
	"cleanneat_backend/internal/platform/cache"
	jwtmw "cleanneat_backend/internal/platform/jwt"
	"cleanneat_backend/internal/platform/session"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NewTestimonialRepository creates a TestimonialRepository implementation.
// If Redis is available, the published list is cached in Redis.
// Otherwise, it falls back to MySQL only.
func NewTestimonialRepository(rdb *redis.Client, ttl time.Duration, db *gorm.DB) testimonialsusecase.TestimonialRepository {
	repo := testimonialsadapters.NewTestimonialMySQL(db)
	if rdb != nil {
		return cache.NewCachingTestimonialRepository(rdb, ttl, repo, "testimonials")
	}
	return repo
}

// NewSettingsRepository creates a SettingsRepository implementation with the same Redis fallback.
func NewSettingsRepository(rdb *redis.Client, ttl time.Duration, db *gorm.DB) settingsusecase.SettingsRepository {
	repo := settingsadapters.NewSettingsMySQL(db)
	if rdb != nil {
		return cache.NewCachingSettingsRepository(rdb, ttl, repo, "settings")
	}
	return repo
}

// NewUserRepository はユーザーリポジトリとトークン失効チェッカーを返します。
// Redis がない場合は失効を記録できないため、チェッカーは nil です。
func NewUserRepository(rdb *redis.Client, tokenTTL time.Duration, db *gorm.DB) (authusecase.UserRepository, jwtmw.RevocationChecker) {
	repo := authadapters.NewUserMySQL(db)
	if rdb == nil {
		slog.Warn("Redis unavailable; deactivated users keep valid tokens until they expire")
		return repo, nil
	}
	revocations := session.NewRevocationRedis(rdb, "auth", tokenTTL)
	return session.NewRevokingUserRepository(repo, revocations), revocations
}
