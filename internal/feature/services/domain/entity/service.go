// Package entity defines the domain entities for the services feature.
package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Service is one entry of the public services catalog. It is owned by the
// user who created it; only the owner may change or delete it.
type Service struct {
	ID               string                      `gorm:"primaryKey;size:36"`
	Title            string                      `gorm:"size:255;not null"`
	Slug             string                      `gorm:"uniqueIndex;size:255;not null"`
	ShortDescription string                      `gorm:"size:500;not null"`
	LongDescription  string                      `gorm:"type:text;not null"`
	WhatsIncluded    datatypes.JSONSlice[string] `gorm:"not null"`
	WhatsNotIncluded datatypes.JSONSlice[string] `gorm:"not null"`
	TypicalDuration  string                      `gorm:"size:100;not null"`
	PriceFrom        string                      `gorm:"size:50;not null"`
	ImageURL         *string                     `gorm:"size:2000"`
	IsPublished      bool                        `gorm:"not null"`
	SortOrder        int                         `gorm:"not null;index"`
	UserID           string                      `gorm:"size:36;not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
