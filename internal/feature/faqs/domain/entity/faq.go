// Package entity defines the domain entities for the faqs feature.
package entity

import "time"

// Faq is one question/answer pair on the public FAQ page.
type Faq struct {
	ID          string `gorm:"primaryKey;size:36"`
	Question    string `gorm:"type:text;not null"`
	Answer      string `gorm:"type:text;not null"`
	Category    string `gorm:"size:255;not null;index"`
	IsPublished bool   `gorm:"not null"`
	SortOrder   int    `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
