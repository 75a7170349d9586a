// Package handler はinquiriesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"cleanneat_backend/internal/feature/inquiries/domain/entity"
	"cleanneat_backend/internal/feature/inquiries/transport/http/dto"
	"cleanneat_backend/internal/feature/inquiries/usecase"
	"cleanneat_backend/internal/platform/http/respond"
	jwtmw "cleanneat_backend/internal/platform/jwt"
	"cleanneat_backend/internal/shared/outcome"
)

type InquiryUsecase interface {
	Create(ctx context.Context, in usecase.CreateInquiryInput) outcome.Result[string]
	List(ctx context.Context) outcome.Result[[]entity.Inquiry]
	MarkRead(ctx context.Context, actorID, id string) outcome.Result[entity.Inquiry]
	UpdateStatus(ctx context.Context, actorID, id string, in usecase.UpdateStatusInput) outcome.Result[entity.Inquiry]
	AddNote(ctx context.Context, actorID, id string, in usecase.AddNoteInput) outcome.Result[entity.Inquiry]
	DeleteNote(ctx context.Context, actorID, id, index string) outcome.Result[entity.Inquiry]
}

type InquiryHandler struct {
	inquiries InquiryUsecase
}

func NewInquiryHandler(inquiries InquiryUsecase) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries}
}

func renderOne(inq entity.Inquiry) any {
	return dto.InquiryResponse{Inquiry: dto.NewInquiryBody(inq)}
}

// Create は POST /inquiries（公開）を処理します。
func (h *InquiryHandler) Create(c *gin.Context) {
	var req usecase.CreateInquiryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}
	respond.Result(c, h.inquiries.Create(c.Request.Context(), req), http.StatusCreated, func(id string) any {
		return dto.CreatedResponse{ID: id}
	})
}

func (h *InquiryHandler) List(c *gin.Context) {
	if _, ok := jwtmw.UserID(c); !ok {
		respond.Unauthorized(c)
		return
	}
	respond.Result(c, h.inquiries.List(c.Request.Context()), http.StatusOK, func(list []entity.Inquiry) any {
		return dto.NewInquiryListResponse(list)
	})
}

// MarkRead は PATCH /inquiries/:id/read を処理します。
func (h *InquiryHandler) MarkRead(c *gin.Context) {
	actorID, ok := jwtmw.UserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}
	respond.Result(c, h.inquiries.MarkRead(c.Request.Context(), actorID, c.Param("id")), http.StatusOK, renderOne)
}

func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
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
	respond.Result(c, h.inquiries.UpdateStatus(c.Request.Context(), actorID, c.Param("id"), req), http.StatusOK, renderOne)
}

func (h *InquiryHandler) AddNote(c *gin.Context) {
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
	respond.Result(c, h.inquiries.AddNote(c.Request.Context(), actorID, c.Param("id"), req), http.StatusOK, renderOne)
}

// DeleteNote は DELETE /inquiries/:id/notes/:index を処理します。
func (h *InquiryHandler) DeleteNote(c *gin.Context) {
	actorID, ok := jwtmw.UserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}
	res := h.inquiries.DeleteNote(c.Request.Context(), actorID, c.Param("id"), c.Param("index"))
	respond.Result(c, res, http.StatusOK, renderOne)
}
