// Package handler はtestimonialsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"cleanneat_backend/internal/feature/testimonials/domain/entity"
	"cleanneat_backend/internal/feature/testimonials/transport/http/dto"
	"cleanneat_backend/internal/feature/testimonials/usecase"
	"cleanneat_backend/internal/platform/http/respond"
	jwtmw "cleanneat_backend/internal/platform/jwt"
	"cleanneat_backend/internal/shared/outcome"
)

type TestimonialUsecase interface {
	Create(ctx context.Context, in usecase.CreateTestimonialInput) outcome.Result[string]
	ListPublished(ctx context.Context) outcome.Result[[]entity.Testimonial]
	List(ctx context.Context) outcome.Result[[]entity.Testimonial]
	Update(ctx context.Context, actorID, id string, in usecase.UpdateTestimonialInput) outcome.Result[entity.Testimonial]
	Delete(ctx context.Context, actorID, id string) outcome.Result[struct{}]
}

type TestimonialHandler struct {
	testimonials TestimonialUsecase
}

func NewTestimonialHandler(testimonials TestimonialUsecase) *TestimonialHandler {
	return &TestimonialHandler{testimonials: testimonials}
}

func renderList(list []entity.Testimonial) any {
	return dto.NewTestimonialListResponse(list)
}

// Create は POST /testimonials（公開）を処理します。
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req usecase.CreateTestimonialInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}
	respond.Result(c, h.testimonials.Create(c.Request.Context(), req), http.StatusCreated, func(id string) any {
		return dto.CreatedResponse{ID: id}
	})
}

// ListPublished は GET /testimonials/public を処理します。
func (h *TestimonialHandler) ListPublished(c *gin.Context) {
	respond.Result(c, h.testimonials.ListPublished(c.Request.Context()), http.StatusOK, renderList)
}

func (h *TestimonialHandler) List(c *gin.Context) {
	if _, ok := jwtmw.UserID(c); !ok {
		respond.Unauthorized(c)
		return
	}
	respond.Result(c, h.testimonials.List(c.Request.Context()), http.StatusOK, renderList)
}

// Update は PATCH /testimonials/:id を処理します。
func (h *TestimonialHandler) Update(c *gin.Context) {
	actorID, ok := jwtmw.UserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}
	var req usecase.UpdateTestimonialInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}
	res := h.testimonials.Update(c.Request.Context(), actorID, c.Param("id"), req)
	respond.Result(c, res, http.StatusOK, func(t entity.Testimonial) any {
		return dto.TestimonialResponse{Testimonial: dto.NewTestimonialBody(t)}
	})
}

// Delete は成功時 204 を返します。
func (h *TestimonialHandler) Delete(c *gin.Context) {
	actorID, ok := jwtmw.UserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}
	res := h.testimonials.Delete(c.Request.Context(), actorID, c.Param("id"))
	respond.Result(c, res, http.StatusNoContent, func(struct{}) any { return nil })
}
