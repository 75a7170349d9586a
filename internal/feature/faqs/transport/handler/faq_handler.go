// Package handler はfaqsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"cleanneat_backend/internal/feature/faqs/domain/entity"
	"cleanneat_backend/internal/feature/faqs/transport/http/dto"
	"cleanneat_backend/internal/feature/faqs/usecase"
	"cleanneat_backend/internal/platform/http/respond"
	jwtmw "cleanneat_backend/internal/platform/jwt"
	"cleanneat_backend/internal/shared/outcome"
)

type FaqUsecase interface {
	Create(ctx context.Context, actorID string, in usecase.CreateFaqInput) outcome.Result[entity.Faq]
	List(ctx context.Context) outcome.Result[[]entity.Faq]
	Get(ctx context.Context, id string) outcome.Result[entity.Faq]
	Update(ctx context.Context, actorID, id string, in usecase.UpdateFaqInput) outcome.Result[entity.Faq]
	Delete(ctx context.Context, actorID, id string) outcome.Result[struct{}]
}

// FaqHandler は /faqs のHTTPリクエストを処理します。
type FaqHandler struct {
	faqs FaqUsecase
}

func NewFaqHandler(faqs FaqUsecase) *FaqHandler {
	return &FaqHandler{faqs: faqs}
}

func render(f entity.Faq) any {
	return dto.FaqResponse{Faq: dto.NewFaqBody(f)}
}

func (h *FaqHandler) List(c *gin.Context) {
	respond.Result(c, h.faqs.List(c.Request.Context()), http.StatusOK, func(list []entity.Faq) any {
		return dto.NewFaqListResponse(list)
	})
}

func (h *FaqHandler) Get(c *gin.Context) {
	respond.Result(c, h.faqs.Get(c.Request.Context(), c.Param("id")), http.StatusOK, render)
}

func (h *FaqHandler) Create(c *gin.Context) {
	actorID, ok := jwtmw.UserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}
	var req usecase.CreateFaqInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}
	respond.Result(c, h.faqs.Create(c.Request.Context(), actorID, req), http.StatusCreated, render)
}

func (h *FaqHandler) Update(c *gin.Context) {
	actorID, ok := jwtmw.UserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}
	var req usecase.UpdateFaqInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}
	respond.Result(c, h.faqs.Update(c.Request.Context(), actorID, c.Param("id"), req), http.StatusOK, render)
}

func (h *FaqHandler) Delete(c *gin.Context) {
	actorID, ok := jwtmw.UserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}
	res := h.faqs.Delete(c.Request.Context(), actorID, c.Param("id"))
	respond.Result(c, res, http.StatusOK, func(struct{}) any {
		return dto.MessageResponse{Message: "FAQ deleted successfully"}
	})
}
