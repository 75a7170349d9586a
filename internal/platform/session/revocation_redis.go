// Package session は発行済みトークンの失効状態を Redis で管理します。
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationRedis はユーザー単位の失効時刻を保持します。
// その時刻以前に発行されたトークンは無効になります。
type RevocationRedis struct {
	client *redis.Client
	prefix string
	// ttl はトークンの寿命と同じにします。それより古いトークンは期限切れのため記録は不要です。
	ttl    time.Duration
}

// NewRevocationRedis creates a new RevocationRedis instance.
func NewRevocationRedis(client *redis.Client, prefix string, ttl time.Duration) *RevocationRedis {
	return &RevocationRedis{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// revokedKey returns the Redis key for a user's revocation time.
func (r *RevocationRedis) revokedKey(userID string) string {
	return fmt.Sprintf("%s:revoked:%s", r.prefix, userID)
}

// Revoke は userID のトークンを at 以前の発行分まで無効にします。
func (r *RevocationRedis) Revoke(ctx context.Context, userID string, at time.Time) error {
	if err := r.client.Set(ctx, r.revokedKey(userID), at.Unix(), r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke tokens: %w", err)
	}
	return nil
}

// RevokedAt は失効時刻を返します。記録がなければ ok は false です。
func (r *RevocationRedis) RevokedAt(ctx context.Context, userID string) (time.Time, bool, error) {
	val, err := r.client.Get(ctx, r.revokedKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to read revocation: %w", err)
	}
	sec, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("corrupt revocation entry: %w", err)
	}
	return time.Unix(sec, 0), true, nil
}
