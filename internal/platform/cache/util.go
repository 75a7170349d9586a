// Package cache provides Redis caching decorators for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL is used when a decorator is constructed with a non-positive ttl.
const DefaultTTL = 5 * time.Minute

// readThrough はキャッシュを確認し、ミス時は load の結果を保存して返します。
// 同一キーへの同時ミスは singleflight で1回のDB問い合わせにまとめます。
func readThrough[T any](ctx context.Context, rdb *redis.Client, group *singleflight.Group, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	// 1) Check cache
	if b, err := rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out T
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	// 結果は待機中の他の呼び出し元にも共有されるため、最初の呼び出し元のキャンセルを引き継がない
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := group.Do(key, func() (any, error) {
		out, err := load(loadCtx)
		if err != nil {
			return out, err
		}
		// 3) Store in cache (best effort)
		if b, err := json.Marshal(out); err == nil {
			if err := rdb.Set(loadCtx, key, b, ttl).Err(); err != nil {
				slog.Warn("cache write failed", "key", key, "error", err)
			}
		}
		return out, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// invalidate deletes keys; failures are logged and otherwise ignored.
func invalidate(ctx context.Context, rdb *redis.Client, keys ...string) {
	if rdb == nil || len(keys) == 0 {
		return
	}
	if err := rdb.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("cache invalidation failed", "keys", keys, "error", err)
	}
}

func orDefault(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return DefaultTTL
	}
	return ttl
}
