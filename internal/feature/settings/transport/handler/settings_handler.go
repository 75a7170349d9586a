// Package handler はsettingsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"cleanneat_backend/internal/feature/settings/domain/entity"
	"cleanneat_backend/internal/feature/settings/transport/http/dto"
	"cleanneat_backend/internal/feature/settings/usecase"
	"cleanneat_backend/internal/platform/http/respond"
	jwtmw "cleanneat_backend/internal/platform/jwt"
	"cleanneat_backend/internal/shared/outcome"
)

type SettingsUsecase interface {
	Get(ctx context.Context) outcome.Result[entity.Settings]
	GetWhoWeSupport(ctx context.Context) outcome.Result[entity.WhoWeSupport]
	Update(ctx context.Context, actorID string, patch usecase.SettingsPatch) outcome.Result[entity.Settings]
	UpdateWhoWeSupport(ctx context.Context, actorID string, in entity.WhoWeSupport) outcome.Result[entity.WhoWeSupport]
}

type SettingsHandler struct {
	settings SettingsUsecase
}

func NewSettingsHandler(settings SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func renderSettings(s entity.Settings) any {
	return dto.NewSettingsResponse(s)
}

func renderSection(w entity.WhoWeSupport) any {
	return w
}

// Public は GET /settings/public（公開）を処理します。
func (h *SettingsHandler) Public(c *gin.Context) {
	respond.Result(c, h.settings.Get(c.Request.Context()), http.StatusOK, renderSettings)
}

// WhoWeSupport は GET /settings/who-we-support（公開）を処理します。
func (h *SettingsHandler) WhoWeSupport(c *gin.Context) {
	respond.Result(c, h.settings.GetWhoWeSupport(c.Request.Context()), http.StatusOK, renderSection)
}

// Get は GET /settings（認証必須）を処理します。
func (h *SettingsHandler) Get(c *gin.Context) {
	if _, ok := jwtmw.UserID(c); !ok {
		respond.Unauthorized(c)
		return
	}
	respond.Result(c, h.settings.Get(c.Request.Context()), http.StatusOK, renderSettings)
}

// Update は POST /settings を処理します。未知のキーは 400 です。
func (h *SettingsHandler) Update(c *gin.Context) {
	actorID, ok := jwtmw.UserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}
	var patch usecase.SettingsPatch
	if !decodeStrict(c, &patch) {
		return
	}
	respond.Result(c, h.settings.Update(c.Request.Context(), actorID, patch), http.StatusOK, renderSettings)
}

// UpdateWhoWeSupport は PATCH /settings/who-we-support を処理します。
func (h *SettingsHandler) UpdateWhoWeSupport(c *gin.Context) {
	actorID, ok := jwtmw.UserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}
	var in entity.WhoWeSupport
	if !decodeStrict(c, &in) {
		return
	}
	respond.Result(c, h.settings.UpdateWhoWeSupport(c.Request.Context(), actorID, in), http.StatusOK, renderSection)
}

// decodeStrict は閉じたスキーマとしてボディを読み込みます。
func decodeStrict(c *gin.Context, dst any) bool {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		respond.Problem(c, outcome.Problem{Kind: outcome.KindInvalid, Message: err.Error()})
		return false
	}
	return true
}
