// Package usecase はfaqsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"cleanneat_backend/internal/feature/faqs/domain/entity"
	"cleanneat_backend/internal/shared/audit"
	"cleanneat_backend/internal/shared/outcome"
	"cleanneat_backend/internal/shared/validation"
)

// ErrFaqNotFound is returned by the store when the id does not exist.
var ErrFaqNotFound = errors.New("faq not found")

// FaqRepository はFAQの永続化層を抽象化します。
type FaqRepository interface {
	Create(ctx context.Context, f *entity.Faq) error
	FindByID(ctx context.Context, id string) (*entity.Faq, error)
	List(ctx context.Context) ([]entity.Faq, error)
	Save(ctx context.Context, f *entity.Faq) error
	Delete(ctx context.Context, id string) error
}

type CreateFaqInput struct {
	Question    string `json:"question" validate:"min=1"`
	Answer      string `json:"answer" validate:"min=1"`
	Category    string `json:"category" validate:"min=1,max=255"`
	IsPublished bool   `json:"is_published"`
	SortOrder   int    `json:"sort_order"`
}

type UpdateFaqInput struct {
	Question    *string `json:"question" validate:"omitempty,min=1"`
	Answer      *string `json:"answer" validate:"omitempty,min=1"`
	Category    *string `json:"category" validate:"omitempty,min=1,max=255"`
	IsPublished *bool   `json:"is_published"`
	SortOrder   *int    `json:"sort_order"`
}

type faqUsecase struct {
	faqs  FaqRepository
	audit audit.Recorder
	now   func() time.Time
}

// NewFaqUsecase はfaqUsecaseの新しいインスタンスを生成します。
func NewFaqUsecase(faqs FaqRepository, rec audit.Recorder) *faqUsecase {
	return &faqUsecase{faqs: faqs, audit: rec, now: time.Now}
}

func (u *faqUsecase) Create(ctx context.Context, actorID string, in CreateFaqInput) outcome.Result[entity.Faq] {
	if err := validation.Struct(in); err != nil {
		return outcome.Invalid[entity.Faq](err.Error())
	}

	now := u.now().UTC()
	f := &entity.Faq{
		ID:          uuid.NewString(),
		Question:    in.Question,
		Answer:      in.Answer,
		Category:    in.Category,
		IsPublished: in.IsPublished,
		SortOrder:   in.SortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.faqs.Create(ctx, f); err != nil {
		slog.Error("failed to create faq", "error", err, "category", in.Category)
		return outcome.Internal[entity.Faq]()
	}

	u.audit.Record(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     "create_faq",
		EntityType: "faq",
		EntityID:   f.ID,
		Details:    fmt.Sprintf("Created FAQ in %q", f.Category),
	})
	return outcome.OK(*f)
}

// List は公開一覧です。
func (u *faqUsecase) List(ctx context.Context) outcome.Result[[]entity.Faq] {
	list, err := u.faqs.List(ctx)
	if err != nil {
		slog.Error("failed to list faqs", "error", err)
		return outcome.Internal[[]entity.Faq]()
	}
	return outcome.OK(list)
}

func (u *faqUsecase) Get(ctx context.Context, id string) outcome.Result[entity.Faq] {
	if err := validation.Var("id", id, "uuid"); err != nil {
		return outcome.Invalid[entity.Faq](err.Error())
	}
	f, err := u.faqs.FindByID(ctx, id)
	if err != nil {
		return notFoundOrInternal[entity.Faq](err, id)
	}
	return outcome.OK(*f)
}

func (u *faqUsecase) Update(ctx context.Context, actorID, id string, in UpdateFaqInput) outcome.Result[entity.Faq] {
	if err := validation.Var("id", id, "uuid"); err != nil {
		return outcome.Invalid[entity.Faq](err.Error())
	}
	if err := validation.Struct(in); err != nil {
		return outcome.Invalid[entity.Faq](err.Error())
	}

	f, err := u.faqs.FindByID(ctx, id)
	if err != nil {
		return notFoundOrInternal[entity.Faq](err, id)
	}
	if in.Question != nil {
		f.Question = *in.Question
	}
	if in.Answer != nil {
		f.Answer = *in.Answer
	}
	if in.Category != nil {
		f.Category = *in.Category
	}
	if in.IsPublished != nil {
		f.IsPublished = *in.IsPublished
	}
	if in.SortOrder != nil {
		f.SortOrder = *in.SortOrder
	}
	f.UpdatedAt = u.now().UTC()

	if err := u.faqs.Save(ctx, f); err != nil {
		slog.Error("failed to update faq", "error", err, "faq_id", id)
		return outcome.Internal[entity.Faq]()
	}

	u.audit.Record(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     "update_faq",
		EntityType: "faq",
		EntityID:   f.ID,
		Details:    fmt.Sprintf("Updated FAQ in %q", f.Category),
	})
	return outcome.OK(*f)
}

func (u *faqUsecase) Delete(ctx context.Context, actorID, id string) outcome.Result[struct{}] {
	if err := validation.Var("id", id, "uuid"); err != nil {
		return outcome.Invalid[struct{}](err.Error())
	}
	if err := u.faqs.Delete(ctx, id); err != nil {
		return notFoundOrInternal[struct{}](err, id)
	}

	u.audit.Record(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     "delete_faq",
		EntityType: "faq",
		EntityID:   id,
		Details:    "Deleted FAQ",
	})
	return outcome.OK(struct{}{})
}

func notFoundOrInternal[T any](err error, id string) outcome.Result[T] {
	if errors.Is(err, ErrFaqNotFound) {
		return outcome.NotFound[T]("FAQ not found")
	}
	slog.Error("faq store failure", "error", err, "faq_id", id)
	return outcome.Internal[T]()
}
