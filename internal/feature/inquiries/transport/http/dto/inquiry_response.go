// Package dto はinquiriesフィーチャーのHTTPレスポンス型を定義します。
package dto

import (
	"time"

	"cleanneat_backend/internal/feature/inquiries/domain/entity"
	"cleanneat_backend/internal/shared/notes"
)

type InquiryBody struct {
	ID                       string       `json:"id"`
	RequesterType            string       `json:"requester_type"`
	FullName                 string       `json:"full_name"`
	Email                    string       `json:"email"`
	Phone                    string       `json:"phone"`
	PreferredContactMethod   string       `json:"preferred_contact_method"`
	AddressLine              string       `json:"address_line"`
	Postcode                 string       `json:"postcode"`
	ServiceType              []string     `json:"service_type"`
	PropertyType             string       `json:"property_type"`
	Bedrooms                 int          `json:"bedrooms"`
	Bathrooms                int          `json:"bathrooms"`
	PreferredStartDate       *string      `json:"preferred_start_date"`
	Frequency                string       `json:"frequency"`
	CleaningScopeNotes       string       `json:"cleaning_scope_notes"`
	AccessNeedsOrPreferences *string      `json:"access_needs_or_preferences"`
	ConsentToContact         bool         `json:"consent_to_contact"`
	ConsentDataProcessing    bool         `json:"consent_data_processing"`
	Status                   string       `json:"status"`
	InternalNotes            []notes.Note `json:"internal_notes"`
	CreatedAt                time.Time    `json:"created_at"`
	UpdatedAt                time.Time    `json:"updated_at"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type InquiryResponse struct {
	Inquiry InquiryBody `json:"inquiry"`
}

type InquiryListResponse struct {
	Inquiries []InquiryBody `json:"inquiries"`
}

func NewInquiryBody(inq entity.Inquiry) InquiryBody {
	serviceType := []string(inq.ServiceType)
	if serviceType == nil {
		serviceType = []string{}
	}
	internal := []notes.Note(inq.InternalNotes)
	if internal == nil {
		internal = []notes.Note{}
	}
	return InquiryBody{
		ID:                       inq.ID,
		RequesterType:            inq.RequesterType,
		FullName:                 inq.FullName,
		Email:                    inq.Email,
		Phone:                    inq.Phone,
		PreferredContactMethod:   inq.PreferredContactMethod,
		AddressLine:              inq.AddressLine,
		Postcode:                 inq.Postcode,
		ServiceType:              serviceType,
		PropertyType:             inq.PropertyType,
		Bedrooms:                 inq.Bedrooms,
		Bathrooms:                inq.Bathrooms,
		PreferredStartDate:       inq.PreferredStartDate,
		Frequency:                inq.Frequency,
		CleaningScopeNotes:       inq.CleaningScopeNotes,
		AccessNeedsOrPreferences: inq.AccessNeedsOrPreferences,
		ConsentToContact:         inq.ConsentToContact,
		ConsentDataProcessing:    inq.ConsentDataProcessing,
		Status:                   inq.Status,
		InternalNotes:            internal,
		CreatedAt:                inq.CreatedAt,
		UpdatedAt:                inq.UpdatedAt,
	}
}

func NewInquiryListResponse(list []entity.Inquiry) InquiryListResponse {
	out := make([]InquiryBody, 0, len(list))
	for _, inq := range list {
		out = append(out, NewInquiryBody(inq))
	}
	return InquiryListResponse{Inquiries: out}
}
