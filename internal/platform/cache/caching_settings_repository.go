package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"cleanneat_backend/internal/feature/settings/domain/entity"
	"cleanneat_backend/internal/feature/settings/usecase"
)

// CachingSettingsRepository caches the single settings row. The public
// settings and who-we-support endpoints are read on every page load.
type CachingSettingsRepository struct {
	inner     usecase.SettingsRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	group     singleflight.Group
}

var _ usecase.SettingsRepository = (*CachingSettingsRepository)(nil)

// NewCachingSettingsRepository は設定リポジトリをRedisキャッシュでデコレートします。
func NewCachingSettingsRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SettingsRepository, namespace string) *CachingSettingsRepository {
	if namespace == "" {
		namespace = "settings"
	}
	return &CachingSettingsRepository{inner: inner, rdb: rdb, ttl: orDefault(ttl), namespace: namespace}
}

func (c *CachingSettingsRepository) key() string {
	return c.namespace + ":" + entity.DefaultID
}

// Get は未作成（ErrSettingsNotFound）をキャッシュしません。
func (c *CachingSettingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	if c.rdb == nil {
		return c.inner.Get(ctx)
	}
	return readThrough(ctx, c.rdb, &c.group, c.key(), c.ttl, c.inner.Get)
}

func (c *CachingSettingsRepository) Upsert(ctx context.Context, s *entity.Settings) error {
	if err := c.inner.Upsert(ctx, s); err != nil {
		return err
	}
	invalidate(ctx, c.rdb, c.key())
	return nil
}
