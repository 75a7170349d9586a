// Package adapters はactionlogフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"cleanneat_backend/internal/feature/actionlog/domain/entity"
	"cleanneat_backend/internal/feature/actionlog/usecase"
)

// actionLogMySQL はActionLogRepositoryのGORM実装です。
type actionLogMySQL struct {
	db *gorm.DB
}

var _ usecase.ActionLogRepository = (*actionLogMySQL)(nil)

func NewActionLogMySQL(db *gorm.DB) *actionLogMySQL {
	return &actionLogMySQL{db: db}
}

func (r *actionLogMySQL) Create(ctx context.Context, log *entity.ActionLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

type actionLogRow struct {
	entity.ActionLog `gorm:"embedded"`
	UserName         *string
	UserEmail        *string
}

// List はユーザーテーブルとLEFT JOINし、削除済みユーザーのログも返します。
func (r *actionLogMySQL) List(ctx context.Context, userID string, limit int) ([]entity.ActionLogView, error) {
	q := r.db.WithContext(ctx).
		Table("action_logs").
		Select("action_logs.*, users.name AS user_name, users.email AS user_email").
		Joins("LEFT JOIN users ON users.id = action_logs.user_id")
	if userID != "" {
		q = q.Where("action_logs.user_id = ?", userID)
	}

	var rows []actionLogRow
	if err := q.Order("action_logs.created_at DESC").Limit(limit).Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.ActionLogView, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.ActionLogView{ActionLog: row.ActionLog, UserName: row.UserName, UserEmail: row.UserEmail})
	}
	return out, nil
}
