// Package dto はsettingsフィーチャーのHTTPレスポンス型を定義します。
package dto

import "cleanneat_backend/internal/feature/settings/domain/entity"

// SettingsBody omits the row id and timestamps.
type SettingsBody struct {
	PrimaryPhone          *string              `json:"primary_phone"`
	PrimaryEmail          *string              `json:"primary_email"`
	OfficeHoursText       *string              `json:"office_hours_text"`
	ServiceAreaText       *string              `json:"service_area_text"`
	ServiceAreaPostcodes  []string             `json:"service_area_postcodes"`
	HeroBadgeText         *string              `json:"hero_badge_text"`
	HeroHeadline          *string              `json:"hero_headline"`
	HeroHeadlineHighlight *string              `json:"hero_headline_highlight"`
	HeroSubtext           *string              `json:"hero_subtext"`
	HeroImages            []string             `json:"hero_images"`
	SocialFacebook        *string              `json:"social_facebook"`
	SocialInstagram       *string              `json:"social_instagram"`
	SocialTwitter         *string              `json:"social_twitter"`
	SocialLinkedin        *string              `json:"social_linkedin"`
	LogoURL               *string              `json:"logo_url"`
	FaviconURL            *string              `json:"favicon_url"`
	WhoWeSupport          *entity.WhoWeSupport `json:"who_we_support"`
}

type SettingsResponse struct {
	Settings SettingsBody `json:"settings"`
}

func NewSettingsResponse(s entity.Settings) SettingsResponse {
	return SettingsResponse{Settings: SettingsBody{
		PrimaryPhone:          s.PrimaryPhone,
		PrimaryEmail:          s.PrimaryEmail,
		OfficeHoursText:       s.OfficeHoursText,
		ServiceAreaText:       s.ServiceAreaText,
		ServiceAreaPostcodes:  s.ServiceAreaPostcodes,
		HeroBadgeText:         s.HeroBadgeText,
		HeroHeadline:          s.HeroHeadline,
		HeroHeadlineHighlight: s.HeroHeadlineHighlight,
		HeroSubtext:           s.HeroSubtext,
		HeroImages:            s.HeroImages,
		SocialFacebook:        s.SocialFacebook,
		SocialInstagram:       s.SocialInstagram,
		SocialTwitter:         s.SocialTwitter,
		SocialLinkedin:        s.SocialLinkedin,
		LogoURL:               s.LogoURL,
		FaviconURL:            s.FaviconURL,
		WhoWeSupport:          s.WhoWeSupport,
	}}
}
