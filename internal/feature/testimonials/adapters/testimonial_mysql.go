// Package adapters はtestimonialsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cleanneat_backend/internal/feature/testimonials/domain/entity"
	"cleanneat_backend/internal/feature/testimonials/usecase"
)

type testimonialMySQL struct {
	db *gorm.DB
}

var _ usecase.TestimonialRepository = (*testimonialMySQL)(nil)

func NewTestimonialMySQL(db *gorm.DB) *testimonialMySQL {
	return &testimonialMySQL{db: db}
}

func (r *testimonialMySQL) Create(ctx context.Context, t *entity.Testimonial) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *testimonialMySQL) FindByID(ctx context.Context, id string) (*entity.Testimonial, error) {
	var t entity.Testimonial
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTestimonialNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *testimonialMySQL) List(ctx context.Context) ([]entity.Testimonial, error) {
	var list []entity.Testimonial
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *testimonialMySQL) ListPublished(ctx context.Context) ([]entity.Testimonial, error) {
	var list []entity.Testimonial
	err := r.db.WithContext(ctx).Where("is_published = ?", true).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *testimonialMySQL) Save(ctx context.Context, t *entity.Testimonial) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *testimonialMySQL) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Testimonial{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTestimonialNotFound
	}
	return nil
}
