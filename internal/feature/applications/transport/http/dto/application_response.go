// Package dto はapplicationsフィーチャーのHTTPレスポンス型を定義します。
package dto

import (
	"time"

	"cleanneat_backend/internal/feature/applications/domain/entity"
	"cleanneat_backend/internal/shared/notes"
)

type ApplicationBody struct {
	ID                               string       `json:"id"`
	FullName                         string       `json:"full_name"`
	Email                            string       `json:"email"`
	Phone                            string       `json:"phone"`
	LocationPostcode                 string       `json:"location_postcode"`
	RoleType                         []string     `json:"role_type"`
	Availability                     []string     `json:"availability"`
	ExperienceSummary                string       `json:"experience_summary"`
	RightToWorkUK                    bool         `json:"right_to_work_uk"`
	DBSStatus                        string       `json:"dbs_status"`
	ReferencesContactDetails         string       `json:"references_contact_details"`
	CVFileURL                        string       `json:"cv_file_url"`
	IDFileURL                        *string      `json:"id_file_url"`
	ConsentRecruitmentDataProcessing bool         `json:"consent_recruitment_data_processing"`
	Status                           string       `json:"status"`
	InternalNotes                    []notes.Note `json:"internal_notes"`
	CreatedAt                        time.Time    `json:"created_at"`
	UpdatedAt                        time.Time    `json:"updated_at"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type ApplicationResponse struct {
	Application ApplicationBody `json:"application"`
}

type ApplicationListResponse struct {
	Applications []ApplicationBody `json:"applications"`
}

// orEmpty は nil スライスを空配列として出力させます。
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func NewApplicationBody(a entity.Application) ApplicationBody {
	return ApplicationBody{
		ID:                               a.ID,
		FullName:                         a.FullName,
		Email:                            a.Email,
		Phone:                            a.Phone,
		LocationPostcode:                 a.LocationPostcode,
		RoleType:                         orEmpty(a.RoleType),
		Availability:                     orEmpty(a.Availability),
		ExperienceSummary:                a.ExperienceSummary,
		RightToWorkUK:                    a.RightToWorkUK,
		DBSStatus:                        a.DBSStatus,
		ReferencesContactDetails:         a.ReferencesContactDetails,
		CVFileURL:                        a.CVFileURL,
		IDFileURL:                        a.IDFileURL,
		ConsentRecruitmentDataProcessing: a.ConsentRecruitmentDataProcessing,
		Status:                           a.Status,
		InternalNotes:                    orEmpty(a.InternalNotes),
		CreatedAt:                        a.CreatedAt,
		UpdatedAt:                        a.UpdatedAt,
	}
}

func NewApplicationListResponse(list []entity.Application) ApplicationListResponse {
	out := make([]ApplicationBody, 0, len(list))
	for _, a := range list {
		out = append(out, NewApplicationBody(a))
	}
	return ApplicationListResponse{Applications: out}
}
