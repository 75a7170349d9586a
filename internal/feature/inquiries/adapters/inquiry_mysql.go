// Package adapters はinquiriesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cleanneat_backend/internal/feature/inquiries/domain/entity"
	"cleanneat_backend/internal/feature/inquiries/usecase"
)

type inquiryMySQL struct {
	db *gorm.DB
}

var _ usecase.InquiryRepository = (*inquiryMySQL)(nil)

func NewInquiryMySQL(db *gorm.DB) *inquiryMySQL {
	return &inquiryMySQL{db: db}
}

func (r *inquiryMySQL) Create(ctx context.Context, inq *entity.Inquiry) error {
	return r.db.WithContext(ctx).Create(inq).Error
}

func (r *inquiryMySQL) FindByID(ctx context.Context, id string) (*entity.Inquiry, error) {
	var inq entity.Inquiry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&inq).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrInquiryNotFound
		}
		return nil, err
	}
	return &inq, nil
}

func (r *inquiryMySQL) List(ctx context.Context) ([]entity.Inquiry, error) {
	var list []entity.Inquiry
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *inquiryMySQL) Save(ctx context.Context, inq *entity.Inquiry) error {
	return r.db.WithContext(ctx).Save(inq).Error
}
