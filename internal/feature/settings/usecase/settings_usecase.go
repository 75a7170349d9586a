// Package usecase はsettingsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cleanneat_backend/internal/feature/settings/domain/entity"
	"cleanneat_backend/internal/shared/audit"
	"cleanneat_backend/internal/shared/nullable"
	"cleanneat_backend/internal/shared/outcome"
	"cleanneat_backend/internal/shared/validation"
)

// ErrSettingsNotFound is returned while the settings row has never been written.
var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository は単一行の設定を読み書きします。
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.Settings, error)
	// Upsert は行が無ければ作成し、あれば全カラムを上書きします。
	Upsert(ctx context.Context, s *entity.Settings) error
}

// SettingsPatch は POST /settings のボディです。キー省略は「変更なし」、null は「クリア」です。
type SettingsPatch struct {
	PrimaryPhone          nullable.Field[string]   `json:"primary_phone"`
	PrimaryEmail          nullable.Field[string]   `json:"primary_email"`
	OfficeHoursText       nullable.Field[string]   `json:"office_hours_text"`
	ServiceAreaText       nullable.Field[string]   `json:"service_area_text"`
	ServiceAreaPostcodes  nullable.Field[[]string] `json:"service_area_postcodes"`
	HeroBadgeText         nullable.Field[string]   `json:"hero_badge_text"`
	HeroHeadline          nullable.Field[string]   `json:"hero_headline"`
	HeroHeadlineHighlight nullable.Field[string]   `json:"hero_headline_highlight"`
	HeroSubtext           nullable.Field[string]   `json:"hero_subtext"`
	HeroImages            nullable.Field[[]string] `json:"hero_images"`
	SocialFacebook        nullable.Field[string]   `json:"social_facebook"`
	SocialInstagram       nullable.Field[string]   `json:"social_instagram"`
	SocialTwitter         nullable.Field[string]   `json:"social_twitter"`
	SocialLinkedin        nullable.Field[string]   `json:"social_linkedin"`
	LogoURL               nullable.Field[string]   `json:"logo_url"`
	FaviconURL            nullable.Field[string]   `json:"favicon_url"`
}

type stringRule struct {
	name  string
	field nullable.Field[string]
	tag   string
	dst   func(*entity.Settings) **string
}

type listRule struct {
	name  string
	field nullable.Field[[]string]
	tag   string
	dst   func(*entity.Settings) *[]string
}

func (p SettingsPatch) strings() []stringRule {
	const url500 = "url,max=500"
	return []stringRule{
		{"primary_phone", p.PrimaryPhone, "max=50", func(s *entity.Settings) **string { return &s.PrimaryPhone }},
		{"primary_email", p.PrimaryEmail, "email,max=255", func(s *entity.Settings) **string { return &s.PrimaryEmail }},
		{"office_hours_text", p.OfficeHoursText, "max=1000", func(s *entity.Settings) **string { return &s.OfficeHoursText }},
		{"service_area_text", p.ServiceAreaText, "max=1000", func(s *entity.Settings) **string { return &s.ServiceAreaText }},
		{"hero_badge_text", p.HeroBadgeText, "max=255", func(s *entity.Settings) **string { return &s.HeroBadgeText }},
		{"hero_headline", p.HeroHeadline, "max=500", func(s *entity.Settings) **string { return &s.HeroHeadline }},
		{"hero_headline_highlight", p.HeroHeadlineHighlight, "max=255", func(s *entity.Settings) **string { return &s.HeroHeadlineHighlight }},
		{"hero_subtext", p.HeroSubtext, "max=2000", func(s *entity.Settings) **string { return &s.HeroSubtext }},
		{"social_facebook", p.SocialFacebook, url500, func(s *entity.Settings) **string { return &s.SocialFacebook }},
		{"social_instagram", p.SocialInstagram, url500, func(s *entity.Settings) **string { return &s.SocialInstagram }},
		{"social_twitter", p.SocialTwitter, url500, func(s *entity.Settings) **string { return &s.SocialTwitter }},
		{"social_linkedin", p.SocialLinkedin, url500, func(s *entity.Settings) **string { return &s.SocialLinkedin }},
		{"logo_url", p.LogoURL, url500, func(s *entity.Settings) **string { return &s.LogoURL }},
		{"favicon_url", p.FaviconURL, url500, func(s *entity.Settings) **string { return &s.FaviconURL }},
	}
}

func (p SettingsPatch) lists() []listRule {
	return []listRule{
		{"service_area_postcodes", p.ServiceAreaPostcodes, "dive,max=20", func(s *entity.Settings) *[]string { return &s.ServiceAreaPostcodes }},
		{"hero_images", p.HeroImages, "dive,url", func(s *entity.Settings) *[]string { return &s.HeroImages }},
	}
}

// validate checks every field that carries a value; null always passes.
func (p SettingsPatch) validate() error {
	for _, r := range p.strings() {
		if r.field.Value != nil {
			if err := validation.Var(r.name, *r.field.Value, r.tag); err != nil {
				return err
			}
		}
	}
	for _, r := range p.lists() {
		if r.field.Value != nil {
			if err := validation.Var(r.name, *r.field.Value, r.tag); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p SettingsPatch) applyTo(s *entity.Settings) {
	for _, r := range p.strings() {
		if r.field.Set {
			*r.dst(s) = r.field.Value
		}
	}
	for _, r := range p.lists() {
		if !r.field.Set {
			continue
		}
		if r.field.Value == nil {
			*r.dst(s) = nil
		} else {
			*r.dst(s) = *r.field.Value
		}
	}
}

type settingsUsecase struct {
	settings SettingsRepository
	audit    audit.Recorder
	now      func() time.Time
}

func NewSettingsUsecase(settings SettingsRepository, rec audit.Recorder) *settingsUsecase {
	return &settingsUsecase{settings: settings, audit: rec, now: time.Now}
}

// Get は設定を返します。未作成なら NotFound です。
func (u *settingsUsecase) Get(ctx context.Context) outcome.Result[entity.Settings] {
	s, err := u.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrSettingsNotFound) {
			return outcome.NotFound[entity.Settings]("Settings not found")
		}
		slog.Error("failed to load settings", "error", err)
		return outcome.Internal[entity.Settings]()
	}
	return outcome.OK(*s)
}

// GetWhoWeSupport returns NotFound while the section has never been written.
func (u *settingsUsecase) GetWhoWeSupport(ctx context.Context) outcome.Result[entity.WhoWeSupport] {
	s, err := u.settings.Get(ctx)
	if err != nil && !errors.Is(err, ErrSettingsNotFound) {
		slog.Error("failed to load settings", "error", err)
		return outcome.Internal[entity.WhoWeSupport]()
	}
	if s == nil || s.WhoWeSupport == nil {
		return outcome.NotFound[entity.WhoWeSupport]("Who we support settings not found")
	}
	return outcome.OK(*s.WhoWeSupport)
}

// Update は存在するキーだけを反映して保存します。
func (u *settingsUsecase) Update(ctx context.Context, actorID string, patch SettingsPatch) outcome.Result[entity.Settings] {
	if err := patch.validate(); err != nil {
		slog.Warn("settings validation failed", "error", err)
		return outcome.Invalid[entity.Settings](err.Error())
	}
	s, res, ok := u.current(ctx)
	if !ok {
		return res
	}
	patch.applyTo(s)
	if res, ok := u.save(ctx, s); !ok {
		return res
	}

	u.audit.Record(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     "update_settings",
		EntityType: "settings",
		EntityID:   entity.DefaultID,
		Details:    "Updated site settings",
	})
	return outcome.OK(*s)
}

// UpdateWhoWeSupport はセクション全体を置き換えます。
func (u *settingsUsecase) UpdateWhoWeSupport(ctx context.Context, actorID string, in entity.WhoWeSupport) outcome.Result[entity.WhoWeSupport] {
	if err := validation.Struct(in); err != nil {
		return outcome.Invalid[entity.WhoWeSupport](err.Error())
	}
	if in.Groups == nil {
		in.Groups = []entity.SupportGroup{}
	}
	s, res, ok := u.current(ctx)
	if !ok {
		return outcome.Convert[entity.WhoWeSupport](res)
	}
	s.WhoWeSupport = &in
	if res, ok := u.save(ctx, s); !ok {
		return outcome.Convert[entity.WhoWeSupport](res)
	}

	u.audit.Record(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     "update_who_we_support",
		EntityType: "settings",
		EntityID:   entity.DefaultID,
		Details:    "Updated who we support section",
	})
	return outcome.OK(in)
}

// current は既存の設定、未作成なら空の設定を返します。
func (u *settingsUsecase) current(ctx context.Context) (*entity.Settings, outcome.Result[entity.Settings], bool) {
	s, err := u.settings.Get(ctx)
	switch {
	case err == nil:
		return s, outcome.Result[entity.Settings]{}, true
	case errors.Is(err, ErrSettingsNotFound):
		return &entity.Settings{}, outcome.Result[entity.Settings]{}, true
	default:
		slog.Error("failed to load settings", "error", err)
		return nil, outcome.Internal[entity.Settings](), false
	}
}

func (u *settingsUsecase) save(ctx context.Context, s *entity.Settings) (outcome.Result[entity.Settings], bool) {
	s.UpdatedAt = u.now().UTC()
	if err := u.settings.Upsert(ctx, s); err != nil {
		slog.Error("failed to upsert settings", "error", err)
		return outcome.Internal[entity.Settings](), false
	}
	return outcome.Result[entity.Settings]{}, true
}
