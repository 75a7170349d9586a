// Package adapters はfaqsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cleanneat_backend/internal/feature/faqs/domain/entity"
	"cleanneat_backend/internal/feature/faqs/usecase"
)

type faqMySQL struct {
	db *gorm.DB
}

var _ usecase.FaqRepository = (*faqMySQL)(nil)

func NewFaqMySQL(db *gorm.DB) *faqMySQL {
	return &faqMySQL{db: db}
}

func (r *faqMySQL) Create(ctx context.Context, f *entity.Faq) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *faqMySQL) FindByID(ctx context.Context, id string) (*entity.Faq, error) {
	var f entity.Faq
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrFaqNotFound
		}
		return nil, err
	}
	return &f, nil
}

// List は sort_order 昇順、同順位は新しい順で返します。
func (r *faqMySQL) List(ctx context.Context) ([]entity.Faq, error) {
	var list []entity.Faq
	err := r.db.WithContext(ctx).Order("sort_order ASC").Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *faqMySQL) Save(ctx context.Context, f *entity.Faq) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *faqMySQL) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Faq{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrFaqNotFound
	}
	return nil
}
