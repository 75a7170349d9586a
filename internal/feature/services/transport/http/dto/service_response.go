// Package dto はservicesフィーチャーのHTTPレスポンス型を定義します。
package dto

import (
	"time"

	"cleanneat_backend/internal/feature/services/domain/entity"
)

type ServiceBody struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	ShortDescription string    `json:"short_description"`
	LongDescription  string    `json:"long_description"`
	WhatsIncluded    []string  `json:"whats_included"`
	WhatsNotIncluded []string  `json:"whats_not_included"`
	TypicalDuration  string    `json:"typical_duration"`
	PriceFrom        string    `json:"price_from"`
	ImageURL         *string   `json:"image_url"`
	IsPublished      bool      `json:"is_published"`
	SortOrder        int       `json:"sort_order"`
	UserID           string    `json:"user_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ServiceResponse struct {
	Service ServiceBody `json:"service"`
}

type ServiceListResponse struct {
	Services []ServiceBody `json:"services"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// NewServiceBody は空のリストを null ではなく [] として返します。
func NewServiceBody(s entity.Service) ServiceBody {
	included := []string(s.WhatsIncluded)
	if included == nil {
		included = []string{}
	}
	excluded := []string(s.WhatsNotIncluded)
	if excluded == nil {
		excluded = []string{}
	}
	return ServiceBody{
		ID:               s.ID,
		Title:            s.Title,
		Slug:             s.Slug,
		ShortDescription: s.ShortDescription,
		LongDescription:  s.LongDescription,
		WhatsIncluded:    included,
		WhatsNotIncluded: excluded,
		TypicalDuration:  s.TypicalDuration,
		PriceFrom:        s.PriceFrom,
		ImageURL:         s.ImageURL,
		IsPublished:      s.IsPublished,
		SortOrder:        s.SortOrder,
		UserID:           s.UserID,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func NewServiceListResponse(list []entity.Service) ServiceListResponse {
	out := make([]ServiceBody, 0, len(list))
	for _, s := range list {
		out = append(out, NewServiceBody(s))
	}
	return ServiceListResponse{Services: out}
}
