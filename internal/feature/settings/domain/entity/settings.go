// Package entity defines the site-wide settings entity.
package entity

import "time"

// DefaultID is the id of the only settings row.
const DefaultID = "default"

// SupportGroup is one entry of the "who we support" section.
type SupportGroup struct {
	Label       string `json:"label" validate:"min=1,max=255"`
	Description string `json:"description" validate:"min=1,max=2000"`
}

// WhoWeSupport is the landing page section describing the people served.
type WhoWeSupport struct {
	SectionTitle string         `json:"section_title" validate:"min=1,max=255"`
	SectionIntro string         `json:"section_intro" validate:"min=1,max=5000"`
	Groups       []SupportGroup `json:"groups" validate:"max=100,dive"`
}

// Settings holds the editable content of the public site. Every field is
// optional; nil means "not set".
type Settings struct {
	PrimaryPhone          *string       `json:"primary_phone"`
	PrimaryEmail          *string       `json:"primary_email"`
	OfficeHoursText       *string       `json:"office_hours_text"`
	ServiceAreaText       *string       `json:"service_area_text"`
	ServiceAreaPostcodes  []string      `json:"service_area_postcodes"`
	HeroBadgeText         *string       `json:"hero_badge_text"`
	HeroHeadline          *string       `json:"hero_headline"`
	HeroHeadlineHighlight *string       `json:"hero_headline_highlight"`
	HeroSubtext           *string       `json:"hero_subtext"`
	HeroImages            []string      `json:"hero_images"`
	SocialFacebook        *string       `json:"social_facebook"`
	SocialInstagram       *string       `json:"social_instagram"`
	SocialTwitter         *string       `json:"social_twitter"`
	SocialLinkedin        *string       `json:"social_linkedin"`
	LogoURL               *string       `json:"logo_url"`
	FaviconURL            *string       `json:"favicon_url"`
	WhoWeSupport          *WhoWeSupport `json:"who_we_support"`
	UpdatedAt             time.Time     `json:"updated_at"`
}
