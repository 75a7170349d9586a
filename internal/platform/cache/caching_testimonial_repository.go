package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"cleanneat_backend/internal/feature/testimonials/domain/entity"
	"cleanneat_backend/internal/feature/testimonials/usecase"
)

// CachingTestimonialRepository decorates a TestimonialRepository so that the
// public published list is served from Redis. Writes that can change the
// published set invalidate it.
type CachingTestimonialRepository struct {
	inner     usecase.TestimonialRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	group     singleflight.Group
}

var _ usecase.TestimonialRepository = (*CachingTestimonialRepository)(nil)

// NewCachingTestimonialRepository はキャッシュ付きリポジトリを生成します。
// rdb が nil の場合はキャッシュをバイパスします。
func NewCachingTestimonialRepository(rdb *redis.Client, ttl time.Duration, inner usecase.TestimonialRepository, namespace string) *CachingTestimonialRepository {
	if namespace == "" {
		namespace = "testimonials"
	}
	return &CachingTestimonialRepository{inner: inner, rdb: rdb, ttl: orDefault(ttl), namespace: namespace}
}

func (c *CachingTestimonialRepository) publishedKey() string {
	return c.namespace + ":published"
}

// Create does not touch the cache: new testimonials are never published.
func (c *CachingTestimonialRepository) Create(ctx context.Context, t *entity.Testimonial) error {
	return c.inner.Create(ctx, t)
}

func (c *CachingTestimonialRepository) FindByID(ctx context.Context, id string) (*entity.Testimonial, error) {
	return c.inner.FindByID(ctx, id)
}

func (c *CachingTestimonialRepository) List(ctx context.Context) ([]entity.Testimonial, error) {
	return c.inner.List(ctx)
}

// ListPublished checks Redis first, then falls back to the inner repository.
func (c *CachingTestimonialRepository) ListPublished(ctx context.Context) ([]entity.Testimonial, error) {
	if c.rdb == nil {
		return c.inner.ListPublished(ctx)
	}
	return readThrough(ctx, c.rdb, &c.group, c.publishedKey(), c.ttl, c.inner.ListPublished)
}

func (c *CachingTestimonialRepository) Save(ctx context.Context, t *entity.Testimonial) error {
	if err := c.inner.Save(ctx, t); err != nil {
		return err
	}
	invalidate(ctx, c.rdb, c.publishedKey())
	return nil
}

func (c *CachingTestimonialRepository) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, c.rdb, c.publishedKey())
	return nil
}
