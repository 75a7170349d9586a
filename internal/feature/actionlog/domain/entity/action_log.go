// Package entity defines the domain entities for the actionlog feature.
package entity

import "time"

// ActionLog is one append-only audit record.
type ActionLog struct {
	ID         string    `gorm:"primaryKey;size:36"`
	UserID     string    `gorm:"size:36;not null;index"`
	Action     string    `gorm:"size:100;not null"`
	EntityType *string   `gorm:"size:50"`
	EntityID   *string   `gorm:"size:255"`
	Details    *string   `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"index"`
}

// ActionLogView is an ActionLog joined with its actor. UserName and
// UserEmail are nil when the actor has since been deleted.
type ActionLogView struct {
	ActionLog
	UserName  *string
	UserEmail *string
}
