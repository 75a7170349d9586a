// Package adapters はapplicationsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cleanneat_backend/internal/feature/applications/domain/entity"
	"cleanneat_backend/internal/feature/applications/usecase"
)

type applicationMySQL struct {
	db *gorm.DB
}

var _ usecase.ApplicationRepository = (*applicationMySQL)(nil)

func NewApplicationMySQL(db *gorm.DB) *applicationMySQL {
	return &applicationMySQL{db: db}
}

func (r *applicationMySQL) Create(ctx context.Context, app *entity.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *applicationMySQL) FindByID(ctx context.Context, id string) (*entity.Application, error) {
	var app entity.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationMySQL) List(ctx context.Context) ([]entity.Application, error) {
	var list []entity.Application
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *applicationMySQL) Save(ctx context.Context, app *entity.Application) error {
	return r.db.WithContext(ctx).Save(app).Error
}
