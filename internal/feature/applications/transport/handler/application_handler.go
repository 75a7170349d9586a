// Package handler はapplicationsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"cleanneat_backend/internal/feature/applications/domain/entity"
	"cleanneat_backend/internal/feature/applications/transport/http/dto"
	"cleanneat_backend/internal/feature/applications/usecase"
	"cleanneat_backend/internal/platform/http/respond"
	jwtmw "cleanneat_backend/internal/platform/jwt"
	"cleanneat_backend/internal/shared/outcome"
)

type ApplicationUsecase interface {
	Create(ctx context.Context, in usecase.CreateApplicationInput) outcome.Result[string]
	List(ctx context.Context) outcome.Result[[]entity.Application]
	MarkRead(ctx context.Context, actorID, id string) outcome.Result[entity.Application]
	UpdateStatus(ctx context.Context, actorID, id string, in usecase.UpdateStatusInput) outcome.Result[entity.Application]
	AddNote(ctx context.Context, actorID, id string, in usecase.AddNoteInput) outcome.Result[entity.Application]
	DeleteNote(ctx context.Context, actorID, id, index string) outcome.Result[entity.Application]
}

type ApplicationHandler struct {
	applications ApplicationUsecase
}

func NewApplicationHandler(applications ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

func renderApplication(a entity.Application) any {
	return dto.ApplicationResponse{Application: dto.NewApplicationBody(a)}
}

// Create は POST /applications（公開）を処理します。
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req usecase.CreateApplicationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}
	respond.Result(c, h.applications.Create(c.Request.Context(), req), http.StatusCreated, func(id string) any {
		return dto.CreatedResponse{ID: id}
	})
}

func (h *ApplicationHandler) List(c *gin.Context) {
	if _, ok := jwtmw.UserID(c); !ok {
		respond.Unauthorized(c)
		return
	}
	respond.Result(c, h.applications.List(c.Request.Context()), http.StatusOK, func(list []entity.Application) any {
		return dto.NewApplicationListResponse(list)
	})
}

func (h *ApplicationHandler) MarkRead(c *gin.Context) {
	actorID, ok := jwtmw.UserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}
	respond.Result(c, h.applications.MarkRead(c.Request.Context(), actorID, c.Param("id")), http.StatusOK, renderApplication)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	actorID, ok := jwtmw.UserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}
	var req usecase.UpdateStatusInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}
	res := h.applications.UpdateStatus(c.Request.Context(), actorID, c.Param("id"), req)
	respond.Result(c, res, http.StatusOK, renderApplication)
}

func (h *ApplicationHandler) AddNote(c *gin.Context) {
	actorID, ok := jwtmw.UserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}
	var req usecase.AddNoteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}
	res := h.applications.AddNote(c.Request.Context(), actorID, c.Param("id"), req)
	respond.Result(c, res, http.StatusOK, renderApplication)
}

func (h *ApplicationHandler) DeleteNote(c *gin.Context) {
	actorID, ok := jwtmw.UserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}
	res := h.applications.DeleteNote(c.Request.Context(), actorID, c.Param("id"), c.Param("index"))
	respond.Result(c, res, http.StatusOK, renderApplication)
}
