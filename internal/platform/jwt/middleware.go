package jwtmw

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
)

// Verifier validates a bearer token.
type Verifier interface {
	Verify(token string) (*Claims, error)
}

// RevocationChecker reports the time before which a user's tokens are void.
type RevocationChecker interface {
	RevokedAt(ctx context.Context, userID string) (time.Time, bool, error)
}

type middlewareOptions struct {
	revocations RevocationChecker
}

// MiddlewareOption configures AuthRequired.
type MiddlewareOption func(*middlewareOptions)

// WithRevocations は無効化・削除されたユーザーの既存トークンを拒否します。
// チェッカーのエラー時は検証済みトークンを通します。
func WithRevocations(rc RevocationChecker) MiddlewareOption {
	return func(o *middlewareOptions) { o.revocations = rc }
}

// AuthRequired returns a Gin middleware function that validates JWT tokens
// and restricts access to authenticated users only.
func AuthRequired(v Verifier, opts ...MiddlewareOption) gin.HandlerFunc {
	var o middlewareOptions
	for _, opt := range opts {
		opt(&o)
	}
	return func(c *gin.Context) {
		// 1. Authorizationヘッダーを取得
		auth := c.GetHeader("Authorization")
		if auth == "" {
			unauthorized(c, "Authorization header is missing")
			return
		}
		if !strings.HasPrefix(auth, "Bearer ") {
			unauthorized(c, "Authorization header must start with Bearer")
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. 署名・有効期限・構造を検証
		claims, err := v.Verify(tokenStr)
		if err != nil {
			// 原因（改ざん/期限切れ/不正形式）はログのみに残す
			slog.Warn("token verification failed", "error", err, "remote_addr", c.ClientIP())
			unauthorized(c, "Invalid or expired token")
			return
		}

		// 3. 失効済みトークンを拒否
		if o.revocations != nil && revoked(c, o.revocations, claims) {
			unauthorized(c, "Invalid or expired token")
			return
		}

		// 4. 後続ハンドラーのためにユーザー情報を設定
		c.Set(ContextUserID, claims.UserID())
		c.Set(ContextUserEmail, claims.Email)
		c.Next()
	}
}

func revoked(c *gin.Context, rc RevocationChecker, claims *Claims) bool {
	at, ok, err := rc.RevokedAt(c.Request.Context(), claims.UserID())
	if err != nil {
		slog.Warn("revocation check failed", "error", err, "user_id", claims.UserID())
		return false
	}
	if !ok {
		return false
	}
	// iat は秒精度のため失効時刻も秒に丸めて比較
	return claims.IssuedAt == nil || !claims.IssuedAt.Time.After(at.Truncate(time.Second))
}

// UserID returns the authenticated user id set by AuthRequired.
func UserID(c *gin.Context) (string, bool) {
	id := c.GetString(ContextUserID)
	return id, id != ""
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"message":    msg,
		"statusCode": http.StatusUnauthorized,
	})
}
