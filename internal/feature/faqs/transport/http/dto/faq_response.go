// Package dto はfaqsフィーチャーのHTTPレスポンス型を定義します。
package dto

import "cleanneat_backend/internal/feature/faqs/domain/entity"

type FaqBody struct {
	ID          string `json:"id"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Category    string `json:"category"`
	IsPublished bool   `json:"is_published"`
	SortOrder   int    `json:"sort_order"`
}

type FaqResponse struct {
	Faq FaqBody `json:"faq"`
}

type FaqListResponse struct {
	Faqs []FaqBody `json:"faqs"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func NewFaqBody(f entity.Faq) FaqBody {
	return FaqBody{
		ID:          f.ID,
		Question:    f.Question,
		Answer:      f.Answer,
		Category:    f.Category,
		IsPublished: f.IsPublished,
		SortOrder:   f.SortOrder,
	}
}

func NewFaqListResponse(list []entity.Faq) FaqListResponse {
	out := make([]FaqBody, 0, len(list))
	for _, f := range list {
		out = append(out, NewFaqBody(f))
	}
	return FaqListResponse{Faqs: out}
}
