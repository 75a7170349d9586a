// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User is an admin-side principal.
type User struct {
	// ID is a UUID assigned at creation.
	ID string `gorm:"primaryKey;size:36"`

	Name string `gorm:"size:255;not null"`

	// Email must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// PasswordHash is the bcrypt digest. Plaintext is never stored.
	PasswordHash string `gorm:"size:255;not null"`

	// IsActive is false once the user has been deactivated; such users
	// cannot log in.
	IsActive bool `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
