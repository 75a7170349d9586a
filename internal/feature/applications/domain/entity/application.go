// Package entity defines the domain entities for the applications feature.
package entity

import (
	"time"

	"gorm.io/datatypes"

	"cleanneat_backend/internal/shared/notes"
)

const (
	StatusNew       = "new"
	StatusRead      = "read"
	StatusContacted = "contacted"
)

// Application is a job application from a prospective cleaner. The CV and
// optional ID document are uploaded first and referenced by URL.
type Application struct {
	ID                               string                          `gorm:"primaryKey;size:64"`
	FullName                         string                          `gorm:"size:255;not null"`
	Email                            string                          `gorm:"size:255;not null"`
	Phone                            string                          `gorm:"size:50;not null"`
	LocationPostcode                 string                          `gorm:"size:20;not null"`
	RoleType                         datatypes.JSONSlice[string]     `gorm:"not null"`
	Availability                     datatypes.JSONSlice[string]     `gorm:"not null"`
	ExperienceSummary                string                          `gorm:"type:text;not null"`
	RightToWorkUK                    bool                            `gorm:"column:right_to_work_uk;not null"`
	DBSStatus                        string                          `gorm:"column:dbs_status;size:30;not null"`
	ReferencesContactDetails         string                          `gorm:"type:text;not null"`
	CVFileURL                        string                          `gorm:"column:cv_file_url;size:2000;not null"`
	IDFileURL                        *string                         `gorm:"column:id_file_url;size:2000"`
	ConsentRecruitmentDataProcessing bool                            `gorm:"not null"`
	Status                           string                          `gorm:"size:20;not null;default:new;index"`
	InternalNotes                    datatypes.JSONSlice[notes.Note] `gorm:"not null"`
	CreatedAt                        time.Time                       `gorm:"index"`
	UpdatedAt                        time.Time
}
