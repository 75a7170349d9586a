// Package adapters はsettingsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cleanneat_backend/internal/feature/settings/domain/entity"
	"cleanneat_backend/internal/feature/settings/usecase"
)

// SettingsModel はsettingsテーブルの行です。配列とセクションはJSONカラムに保存し、
// 未設定は NULL になります。
type SettingsModel struct {
	ID                    string  `gorm:"primaryKey;size:20"`
	PrimaryPhone          *string `gorm:"size:50"`
	PrimaryEmail          *string `gorm:"size:255"`
	OfficeHoursText       *string `gorm:"size:1000"`
	ServiceAreaText       *string `gorm:"size:1000"`
	ServiceAreaPostcodes  datatypes.JSON
	HeroBadgeText         *string `gorm:"size:255"`
	HeroHeadline          *string `gorm:"size:500"`
	HeroHeadlineHighlight *string `gorm:"size:255"`
	HeroSubtext           *string `gorm:"size:2000"`
	HeroImages            datatypes.JSON
	SocialFacebook        *string `gorm:"size:500"`
	SocialInstagram       *string `gorm:"size:500"`
	SocialTwitter         *string `gorm:"size:500"`
	SocialLinkedin        *string `gorm:"size:500"`
	LogoURL               *string `gorm:"size:500"`
	FaviconURL            *string `gorm:"size:500"`
	WhoWeSupport          datatypes.JSON
	UpdatedAt             time.Time
}

func (SettingsModel) TableName() string { return "settings" }

type settingsMySQL struct {
	db *gorm.DB
}

var _ usecase.SettingsRepository = (*settingsMySQL)(nil)

func NewSettingsMySQL(db *gorm.DB) *settingsMySQL {
	return &settingsMySQL{db: db}
}

func (r *settingsMySQL) Get(ctx context.Context) (*entity.Settings, error) {
	var m SettingsModel
	if err := r.db.WithContext(ctx).Where("id = ?", entity.DefaultID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSettingsNotFound
		}
		return nil, err
	}
	return toEntity(m)
}

// Upsert は INSERT ... ON CONFLICT DO UPDATE の1文で書き込みます。
func (r *settingsMySQL) Upsert(ctx context.Context, s *entity.Settings) error {
	m, err := toModel(s)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&m).Error
}

func toModel(s *entity.Settings) (SettingsModel, error) {
	m := SettingsModel{
		ID:                    entity.DefaultID,
		PrimaryPhone:          s.PrimaryPhone,
		PrimaryEmail:          s.PrimaryEmail,
		OfficeHoursText:       s.OfficeHoursText,
		ServiceAreaText:       s.ServiceAreaText,
		HeroBadgeText:         s.HeroBadgeText,
		HeroHeadline:          s.HeroHeadline,
		HeroHeadlineHighlight: s.HeroHeadlineHighlight,
		HeroSubtext:           s.HeroSubtext,
		SocialFacebook:        s.SocialFacebook,
		SocialInstagram:       s.SocialInstagram,
		SocialTwitter:         s.SocialTwitter,
		SocialLinkedin:        s.SocialLinkedin,
		LogoURL:               s.LogoURL,
		FaviconURL:            s.FaviconURL,
		UpdatedAt:             s.UpdatedAt,
	}
	var err error
	if m.ServiceAreaPostcodes, err = encode(s.ServiceAreaPostcodes, s.ServiceAreaPostcodes == nil); err != nil {
		return m, err
	}
	if m.HeroImages, err = encode(s.HeroImages, s.HeroImages == nil); err != nil {
		return m, err
	}
	if m.WhoWeSupport, err = encode(s.WhoWeSupport, s.WhoWeSupport == nil); err != nil {
		return m, err
	}
	return m, nil
}

func toEntity(m SettingsModel) (*entity.Settings, error) {
	s := &entity.Settings{
		PrimaryPhone:          m.PrimaryPhone,
		PrimaryEmail:          m.PrimaryEmail,
		OfficeHoursText:       m.OfficeHoursText,
		ServiceAreaText:       m.ServiceAreaText,
		HeroBadgeText:         m.HeroBadgeText,
		HeroHeadline:          m.HeroHeadline,
		HeroHeadlineHighlight: m.HeroHeadlineHighlight,
		HeroSubtext:           m.HeroSubtext,
		SocialFacebook:        m.SocialFacebook,
		SocialInstagram:       m.SocialInstagram,
		SocialTwitter:         m.SocialTwitter,
		SocialLinkedin:        m.SocialLinkedin,
		LogoURL:               m.LogoURL,
		FaviconURL:            m.FaviconURL,
		UpdatedAt:             m.UpdatedAt,
	}
	if err := decode(m.ServiceAreaPostcodes, &s.ServiceAreaPostcodes); err != nil {
		return nil, fmt.Errorf("service_area_postcodes: %w", err)
	}
	if err := decode(m.HeroImages, &s.HeroImages); err != nil {
		return nil, fmt.Errorf("hero_images: %w", err)
	}
	if err := decode(m.WhoWeSupport, &s.WhoWeSupport); err != nil {
		return nil, fmt.Errorf("who_we_support: %w", err)
	}
	return s, nil
}

// encode は null のとき空の datatypes.JSON（NULL として保存）を返します。
func encode(v any, null bool) (datatypes.JSON, error) {
	if null {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func decode(raw datatypes.JSON, dst any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
