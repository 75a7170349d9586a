package ratelimiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiterInterface は、キーごとにリクエスト頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	Allow(key string) bool
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter はクライアントキー（通常はIP）ごとのトークンバケットを管理します。
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration // この期間アクセスのないキーは破棄
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
// limit は1秒あたりの許容リクエスト数、burst は瞬間的に許容する最大数です。
func NewRateLimiter(limit rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		burst:    burst,
		idleTTL:  10 * time.Minute,
		now:      time.Now,
	}
}

// PerMinute は1分あたりn回を rate.Limit に変換します。
func PerMinute(n int) rate.Limit {
	return rate.Every(time.Minute / time.Duration(n))
}

// Allow はkeyのリクエストを許可するか判定します。
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now

	// 古いキーの掃除は idleTTL ごとに1回だけ行う
	if now.Sub(rl.lastSweep) >= rl.idleTTL {
		for k, other := range rl.visitors {
			if now.Sub(other.lastSeen) > rl.idleTTL {
				delete(rl.visitors, k)
			}
		}
		rl.lastSweep = now
	}
	return v.limiter.AllowN(now, 1)
}

// Middleware はクライアントIP単位で制限するGinミドルウェアを返します。
// 上限超過時は429を返します。
func Middleware(rl RateLimiterInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message":    "Too many requests, please try again later",
				"statusCode": http.StatusTooManyRequests,
			})
			return
		}
		c.Next()
	}
}
