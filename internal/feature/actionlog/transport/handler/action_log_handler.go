// Package handler はactionlogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cleanneat_backend/internal/feature/actionlog/domain/entity"
	"cleanneat_backend/internal/feature/actionlog/transport/http/dto"
	"cleanneat_backend/internal/platform/http/respond"
	"cleanneat_backend/internal/shared/outcome"
)

// ActionLogUsecase は監査ログ一覧のユースケースです。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type ActionLogUsecase interface {
	List(ctx context.Context, userID string, limit *int) outcome.Result[[]entity.ActionLogView]
}

type ActionLogHandler struct {
	uc ActionLogUsecase
}

func NewActionLogHandler(uc ActionLogUsecase) *ActionLogHandler {
	return &ActionLogHandler{uc: uc}
}

// List は GET /api/v1/action-logs?user_id=&limit= を処理します。
func (h *ActionLogHandler) List(c *gin.Context) {
	var limit *int
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respond.Problem(c, outcome.Problem{Kind: outcome.KindInvalid, Message: "limit: must be an integer"})
			return
		}
		limit = &n
	}

	res := h.uc.List(c.Request.Context(), c.Query("user_id"), limit)
	respond.Result(c, res, http.StatusOK, func(logs []entity.ActionLogView) any {
		return dto.NewActionLogListResponse(logs)
	})
}
