// Package dto はtestimonialsフィーチャーのHTTPレスポンス型を定義します。
package dto

import (
	"time"

	"cleanneat_backend/internal/feature/testimonials/domain/entity"
)

type TestimonialBody struct {
	ID             string    `json:"id"`
	NamePublic     string    `json:"name_public"`
	LocationPublic string    `json:"location_public"`
	Rating         int       `json:"rating"`
	Text           string    `json:"text"`
	Status         string    `json:"status"`
	IsPublished    bool      `json:"is_published"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type TestimonialResponse struct {
	Testimonial TestimonialBody `json:"testimonial"`
}

type TestimonialListResponse struct {
	Testimonials []TestimonialBody `json:"testimonials"`
}

func NewTestimonialBody(t entity.Testimonial) TestimonialBody {
	return TestimonialBody{
		ID:             t.ID,
		NamePublic:     t.NamePublic,
		LocationPublic: t.LocationPublic,
		Rating:         t.Rating,
		Text:           t.Text,
		Status:         t.Status,
		IsPublished:    t.IsPublished,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func NewTestimonialListResponse(list []entity.Testimonial) TestimonialListResponse {
	out := make([]TestimonialBody, 0, len(list))
	for _, t := range list {
		out = append(out, NewTestimonialBody(t))
	}
	return TestimonialListResponse{Testimonials: out}
}
