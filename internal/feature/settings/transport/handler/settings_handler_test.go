package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"cleanneat_backend/internal/feature/settings/domain/entity"
	"cleanneat_backend/internal/feature/settings/usecase"
	"cleanneat_backend/internal/shared/outcome"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type mockSettingsUsecase struct {
	patched *usecase.SettingsPatch
	row     *entity.Settings
}

func (m *mockSettingsUsecase) Get(context.Context) outcome.Result[entity.Settings] {
	if m.row == nil {
		return outcome.NotFound[entity.Settings]("Settings not found")
	}
	return outcome.OK(*m.row)
}

func (m *mockSettingsUsecase) GetWhoWeSupport(context.Context) outcome.Result[entity.WhoWeSupport] {
	if m.row == nil || m.row.WhoWeSupport == nil {
		return outcome.NotFound[entity.WhoWeSupport]("Who we support settings not found")
	}
	return outcome.OK(*m.row.WhoWeSupport)
}

func (m *mockSettingsUsecase) Update(_ context.Context, _ string, patch usecase.SettingsPatch) outcome.Result[entity.Settings] {
	m.patched = &patch
	return outcome.OK(entity.Settings{HeroHeadline: patch.HeroHeadline.Value})
}

func (m *mockSettingsUsecase) UpdateWhoWeSupport(_ context.Context, _ string, in entity.WhoWeSupport) outcome.Result[entity.WhoWeSupport] {
	return outcome.OK(in)
}

func withActor(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id != "" {
			c.Set("userID", id)
		}
		c.Next()
	}
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newRouter(uc SettingsUsecase) *gin.Engine {
	h := NewSettingsHandler(uc)
	router := gin.New()
	router.GET("/settings/public", h.Public)
	router.GET("/settings/who-we-support", h.WhoWeSupport)
	router.GET("/settings", withActor("admin"), h.Get)
	router.POST("/settings", withActor("admin"), h.Update)
	router.PATCH("/settings/who-we-support", withActor("admin"), h.UpdateWhoWeSupport)
	return router
}

func TestSettingsHandler_Update(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"known keys", `{"hero_headline":"Hi","logo_url":null}`, http.StatusOK},
		{"unknown key", `{"hero_headline":"Hi","colour":"red"}`, http.StatusBadRequest},
		{"malformed", `{"hero_headline":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockSettingsUsecase{}
			w := serve(newRouter(uc), http.MethodPost, "/settings", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.True(t, uc.patched.LogoURL.Set)
				assert.Nil(t, uc.patched.LogoURL.Value)
				assert.False(t, uc.patched.FaviconURL.Set)
				assert.Contains(t, w.Body.String(), `"hero_headline":"Hi"`)
			} else {
				assert.Nil(t, uc.patched)
			}
		})
	}
}

func TestSettingsHandler_Public(t *testing.T) {
	w := serve(newRouter(&mockSettingsUsecase{}), http.MethodGet, "/settings/public", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Settings not found","statusCode":404}`, w.Body.String())

	row := &entity.Settings{WhoWeSupport: &entity.WhoWeSupport{SectionTitle: "T", SectionIntro: "I", Groups: []entity.SupportGroup{}}}
	w = serve(newRouter(&mockSettingsUsecase{row: row}), http.MethodGet, "/settings/who-we-support", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"section_title":"T","section_intro":"I","groups":[]}`, w.Body.String())
}

func TestSettingsHandler_UpdateWhoWeSupport_ClosedSchema(t *testing.T) {
	w := serve(newRouter(&mockSettingsUsecase{}), http.MethodPatch, "/settings/who-we-support",
		`{"section_title":"T","section_intro":"I","groups":[],"extra":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
