// Package adapters はservicesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cleanneat_backend/internal/feature/services/domain/entity"
	"cleanneat_backend/internal/feature/services/usecase"
)

// serviceMySQL はServiceRepositoryインターフェースのGORM実装です。
type serviceMySQL struct {
	db *gorm.DB
}

var _ usecase.ServiceRepository = (*serviceMySQL)(nil)

// NewServiceMySQL は指定されたgorm.DB接続でserviceMySQLの新しいインスタンスを生成します。
func NewServiceMySQL(db *gorm.DB) *serviceMySQL {
	return &serviceMySQL{db: db}
}

// Create はサービスを追加します。
func (r *serviceMySQL) Create(ctx context.Context, s *entity.Service) error {
	return translate(r.db.WithContext(ctx).Create(s).Error)
}

func (r *serviceMySQL) FindByID(ctx context.Context, id string) (*entity.Service, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *serviceMySQL) FindBySlug(ctx context.Context, slug string) (*entity.Service, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *serviceMySQL) first(ctx context.Context, cond string, arg any) (*entity.Service, error) {
	var s entity.Service
	if err := r.db.WithContext(ctx).Where(cond, arg).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrServiceNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List は sort_order 昇順、同順位は新しい順で返します。
func (r *serviceMySQL) List(ctx context.Context, userID string) ([]entity.Service, error) {
	q := r.db.WithContext(ctx).Order("sort_order ASC").Order("created_at DESC")
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	var list []entity.Service
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Save は1回のUPDATEで全カラムを書き換えます。
func (r *serviceMySQL) Save(ctx context.Context, s *entity.Service) error {
	return translate(r.db.WithContext(ctx).Save(s).Error)
}

func (r *serviceMySQL) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Service{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrServiceNotFound
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return usecase.ErrSlugTaken
	}
	return err
}
