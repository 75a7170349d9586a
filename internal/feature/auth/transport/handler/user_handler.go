package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"cleanneat_backend/internal/feature/auth/domain/entity"
	"cleanneat_backend/internal/feature/auth/transport/http/dto"
	"cleanneat_backend/internal/feature/auth/usecase"
	"cleanneat_backend/internal/platform/http/respond"
	jwtmw "cleanneat_backend/internal/platform/jwt"
	"cleanneat_backend/internal/shared/outcome"
)

// UserUsecase はユーザー管理のユースケースを定義します。
type UserUsecase interface {
	Create(ctx context.Context, actorID string, in usecase.CreateUserInput) outcome.Result[entity.User]
	List(ctx context.Context) outcome.Result[[]entity.User]
	Deactivate(ctx context.Context, actorID, id string) outcome.Result[entity.User]
	Reactivate(ctx context.Context, actorID, id string) outcome.Result[entity.User]
	Delete(ctx context.Context, actorID, id string) outcome.Result[struct{}]
	ChangePassword(ctx context.Context, actorID string, in usecase.ChangePasswordInput) outcome.Result[struct{}]
}

// UserHandler はユーザー管理のHTTPリクエストを処理します。すべて認証必須です。
type UserHandler struct {
	users UserUsecase
}

func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Create は POST /users を処理します。
func (h *UserHandler) Create(c *gin.Context) {
	actorID, ok := jwtmw.UserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}
	var req usecase.CreateUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}
	res := h.users.Create(c.Request.Context(), actorID, req)
	respond.Result(c, res, http.StatusCreated, func(u entity.User) any {
		return dto.UserResponse{User: dto.NewUserSummary(u)}
	})
}

// List は GET /users を処理します。
func (h *UserHandler) List(c *gin.Context) {
	respond.Result(c, h.users.List(c.Request.Context()), http.StatusOK, func(users []entity.User) any {
		return dto.NewUserListResponse(users)
	})
}

// Deactivate は PATCH /users/:id/deactivate を処理します。
func (h *UserHandler) Deactivate(c *gin.Context) {
	h.status(c, h.users.Deactivate)
}

// Reactivate は PATCH /users/:id/reactivate を処理します。
func (h *UserHandler) Reactivate(c *gin.Context) {
	h.status(c, h.users.Reactivate)
}

func (h *UserHandler) status(c *gin.Context, op func(ctx context.Context, actorID, id string) outcome.Result[entity.User]) {
	actorID, ok := jwtmw.UserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}
	res := op(c.Request.Context(), actorID, c.Param("id"))
	respond.Result(c, res, http.StatusOK, func(u entity.User) any {
		return dto.UserResponse{User: dto.NewUserStatus(u)}
	})
}

// Delete は DELETE /users/:id を処理します。
func (h *UserHandler) Delete(c *gin.Context) {
	actorID, ok := jwtmw.UserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}
	res := h.users.Delete(c.Request.Context(), actorID, c.Param("id"))
	respond.Result(c, res, http.StatusOK, func(struct{}) any {
		return dto.MessageResponse{Message: "User deleted successfully"}
	})
}

// ChangePassword は PUT /users/me/password を処理します。
func (h *UserHandler) ChangePassword(c *gin.Context) {
	actorID, ok := jwtmw.UserID(c)
	if !ok {
		respond.Unauthorized(c)
		return
	}
	var req usecase.ChangePasswordInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}
	res := h.users.ChangePassword(c.Request.Context(), actorID, req)
	respond.Result(c, res, http.StatusOK, func(struct{}) any {
		return dto.MessageResponse{Message: "Password changed successfully"}
	})
}
