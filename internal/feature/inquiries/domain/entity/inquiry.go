// Package entity defines the domain entities for the inquiries feature.
package entity

import (
	"time"

	"gorm.io/datatypes"

	"cleanneat_backend/internal/shared/notes"
)

// Triage statuses. Every inquiry starts as StatusNew.
const (
	StatusNew       = "new"
	StatusRead      = "read"
	StatusContacted = "contacted"
)

// Inquiry is a quote request sent from the public site.
type Inquiry struct {
	ID                       string                          `gorm:"primaryKey;size:64"`
	RequesterType            string                          `gorm:"size:50;not null"`
	FullName                 string                          `gorm:"size:255;not null"`
	Email                    string                          `gorm:"size:255;not null"`
	Phone                    string                          `gorm:"size:50;not null"`
	PreferredContactMethod   string                          `gorm:"size:20;not null"`
	AddressLine              string                          `gorm:"size:500;not null"`
	Postcode                 string                          `gorm:"size:20;not null"`
	ServiceType              datatypes.JSONSlice[string]     `gorm:"not null"`
	PropertyType             string                          `gorm:"size:20;not null"`
	Bedrooms                 int                             `gorm:"not null"`
	Bathrooms                int                             `gorm:"not null"`
	PreferredStartDate       *string                         `gorm:"size:10"`
	Frequency                string                          `gorm:"size:20;not null"`
	CleaningScopeNotes       string                          `gorm:"type:text;not null"`
	AccessNeedsOrPreferences *string                         `gorm:"type:text"`
	ConsentToContact         bool                            `gorm:"not null"`
	ConsentDataProcessing    bool                            `gorm:"not null"`
	Status                   string                          `gorm:"size:20;not null;default:new;index"`
	InternalNotes            datatypes.JSONSlice[notes.Note] `gorm:"not null"`
	CreatedAt                time.Time                       `gorm:"index"`
	UpdatedAt                time.Time
}
