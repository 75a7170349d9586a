// Package handler はservicesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"cleanneat_backend/internal/feature/services/domain/entity"
	"cleanneat_backend/internal/feature/services/transport/http/dto"
	"cleanneat_backend/internal/feature/services/usecase"
	"cleanneat_backend/internal/platform/http/respond"
	jwtmw "cleanneat_backend/internal/platform/jwt"
	"cleanneat_backend/internal/shared/outcome"
)

// ServiceUsecase はサービスカタログのユースケースを定義します。
type ServiceUsecase interface {
	Create(ctx context.Context, actorID string, in usecase.CreateServiceInput) outcome.Result[entity.Service]
	List(ctx context.Context, userID string) outcome.Result[[]entity.Service]
	Get(ctx context.Context, id string) outcome.Result[entity.Service]
	Update(ctx context.Context, actorID, id string, in usecase.UpdateServiceInput) outcome.Result[entity.Service]
	Delete(ctx context.Context, actorID, id string) outcome.Result[struct{}]
}

// ServiceHandler は /services のHTTPリクエストを処理します。一覧と詳細は公開です。
type ServiceHandler struct {
	services ServiceUsecase
}

func NewServiceHandler(services ServiceUsecase) *ServiceHandler {
	return &ServiceHandler{services: services}
}

func render(s entity.Service) any {
	return dto.ServiceResponse{Service: dto.NewServiceBody(s)}
}

// Create は POST /services を処理します。
func (h *ServiceHandler) Create(c *gin.Context) {
	actorID, ok := jwtmw.UserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}
	var req usecase.CreateServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}
	respond.Result(c, h.services.Create(c.Request.Context(), actorID, req), http.StatusCreated, render)
}

// List は GET /services?user_id= を処理します。
func (h *ServiceHandler) List(c *gin.Context) {
	res := h.services.List(c.Request.Context(), c.Query("user_id"))
	respond.Result(c, res, http.StatusOK, func(list []entity.Service) any {
		return dto.NewServiceListResponse(list)
	})
}

// Get は GET /services/:id を処理します。
func (h *ServiceHandler) Get(c *gin.Context) {
	respond.Result(c, h.services.Get(c.Request.Context(), c.Param("id")), http.StatusOK, render)
}

// Update は PUT /services/:id を処理します。
func (h *ServiceHandler) Update(c *gin.Context) {
	actorID, ok := jwtmw.UserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}
	var req usecase.UpdateServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}
	res := h.services.Update(c.Request.Context(), actorID, c.Param("id"), req)
	respond.Result(c, res, http.StatusOK, render)
}

// Delete は DELETE /services/:id を処理します。
func (h *ServiceHandler) Delete(c *gin.Context) {
	actorID, ok := jwtmw.UserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}
	res := h.services.Delete(c.Request.Context(), actorID, c.Param("id"))
	respond.Result(c, res, http.StatusOK, func(struct{}) any {
		return dto.MessageResponse{Message: "Service deleted successfully"}
	})
}
