// Package entity defines the domain entities for the testimonials feature.
package entity

import "time"

// StatusPending is the status every visitor submission starts in.
const StatusPending = "pending"

// Testimonial is a visitor-submitted review. It is only shown on the public
// site once an admin publishes it.
type Testimonial struct {
	ID             string    `gorm:"primaryKey;size:64" json:"id"`
	NamePublic     string    `gorm:"size:255;not null" json:"name_public"`
	LocationPublic string    `gorm:"size:255;not null" json:"location_public"`
	Rating         int       `gorm:"not null" json:"rating"`
	Text           string    `gorm:"type:text;not null" json:"text"`
	Status         string    `gorm:"size:50;not null;default:pending" json:"status"`
	IsPublished    bool      `gorm:"not null;index" json:"is_published"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
