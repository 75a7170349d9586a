// Package dto はactionlogフィーチャーのレスポンスを定義します。
package dto

import (
	"time"

	"cleanneat_backend/internal/feature/actionlog/domain/entity"
)

// ActionLogResponse は一覧の1要素です。
type ActionLogResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	UserName   *string   `json:"user_name"`
	UserEmail  *string   `json:"user_email"`
	Action     string    `json:"action"`
	EntityType *string   `json:"entityType"`
	EntityID   *string   `json:"entityId"`
	Details    *string   `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}

type ActionLogListResponse struct {
	Logs []ActionLogResponse `json:"logs"`
}

func NewActionLogListResponse(logs []entity.ActionLogView) ActionLogListResponse {
	out := make([]ActionLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, ActionLogResponse{
			ID:         l.ID,
			UserID:     l.UserID,
			UserName:   l.UserName,
			UserEmail:  l.UserEmail,
			Action:     l.Action,
			EntityType: l.EntityType,
			EntityID:   l.EntityID,
			Details:    l.Details,
			CreatedAt:  l.CreatedAt,
		})
	}
	return ActionLogListResponse{Logs: out}
}
