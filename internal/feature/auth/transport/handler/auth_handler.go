// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cleanneat_backend/internal/feature/auth/transport/http/dto"
	"cleanneat_backend/internal/feature/auth/usecase"
	"cleanneat_backend/internal/platform/http/respond"
	"cleanneat_backend/internal/shared/outcome"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Login はユーザーを認証し、成功時にJWTトークンを返します。
	Login(ctx context.Context, in usecase.LoginInput) outcome.Result[usecase.LoginResult]
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginInputにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却（原因は区別しない）
// - 認証成功時はユーザー概要とJWTトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req usecase.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}
	res := h.auth.Login(c.Request.Context(), req)
	if !res.IsOK() {
		// ユーザー列挙攻撃を防止するため、原因はログにのみ残す
		slog.Warn("login failed", "kind", res.Kind().String(), "email", req.Email, "remote_addr", c.ClientIP())
	}
	respond.Result(c, res, http.StatusOK, func(r usecase.LoginResult) any {
		return dto.LoginResponse{User: dto.NewUserSummary(r.User), Token: r.Token}
	})
}
