// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"time"

	"cleanneat_backend/internal/feature/auth/domain/entity"
)

// UserSummary は認証情報を含まないユーザー表現です。
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserStatus は有効化・無効化の応答で使うユーザー表現です。
type UserStatus struct {
	UserSummary
	IsActive bool `json:"is_active"`
}

// UserDetail は一覧で使うユーザー表現です。
type UserDetail struct {
	UserStatus
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse は /login の応答です。
type LoginResponse struct {
	User  UserSummary `json:"user"`
	Token string      `json:"token"`
}

type UserResponse struct {
	User any `json:"user"`
}

type UserListResponse struct {
	Users []UserDetail `json:"users"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func NewUserSummary(u entity.User) UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

func NewUserStatus(u entity.User) UserStatus {
	return UserStatus{UserSummary: NewUserSummary(u), IsActive: u.IsActive}
}

func NewUserListResponse(users []entity.User) UserListResponse {
	out := make([]UserDetail, 0, len(users))
	for _, u := range users {
		out = append(out, UserDetail{UserStatus: NewUserStatus(u), CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt})
	}
	return UserListResponse{Users: out}
}
