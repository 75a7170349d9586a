// Package usecase はtestimonialsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"cleanneat_backend/internal/feature/testimonials/domain/entity"
	"cleanneat_backend/internal/shared/audit"
	"cleanneat_backend/internal/shared/outcome"
	"cleanneat_backend/internal/shared/validation"
)

// IDPrefix is prepended to the nanoid of every testimonial.
const IDPrefix = "test_"

var ErrTestimonialNotFound = errors.New("testimonial not found")

// TestimonialRepository はお客様の声の永続化層を抽象化します。
// 公開一覧はキャッシュ層（platform/cache）でデコレートされます。
type TestimonialRepository interface {
	Create(ctx context.Context, t *entity.Testimonial) error
	FindByID(ctx context.Context, id string) (*entity.Testimonial, error)
	// List は全件を新しい順で返します。
	List(ctx context.Context) ([]entity.Testimonial, error)
	// ListPublished は公開済みのみを新しい順で返します。
	ListPublished(ctx context.Context) ([]entity.Testimonial, error)
	Save(ctx context.Context, t *entity.Testimonial) error
	Delete(ctx context.Context, id string) error
}

// CreateTestimonialInput は訪問者からの投稿です。
type CreateTestimonialInput struct {
	NamePublic     string `json:"name_public" validate:"min=1,max=255"`
	LocationPublic string `json:"location_public" validate:"min=1,max=255"`
	Rating         int    `json:"rating" validate:"min=1,max=5"`
	Text           string `json:"text" validate:"min=1,max=5000"`
}

// UpdateTestimonialInput は管理者による公開切り替えです。少なくとも1項目が必要です。
type UpdateTestimonialInput struct {
	IsPublished *bool   `json:"is_published,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,min=1,max=50"`
}

type testimonialUsecase struct {
	testimonials TestimonialRepository
	audit        audit.Recorder
	newID        func() (string, error)
	now          func() time.Time
}

func NewTestimonialUsecase(testimonials TestimonialRepository, rec audit.Recorder) *testimonialUsecase {
	return &testimonialUsecase{
		testimonials: testimonials,
		audit:        rec,
		newID:        func() (string, error) { return gonanoid.New() },
		now:          time.Now,
	}
}

// Create は未公開・pending 状態で保存し、IDのみを返します。
func (u *testimonialUsecase) Create(ctx context.Context, in CreateTestimonialInput) outcome.Result[string] {
	if err := validation.Struct(in); err != nil {
		slog.Warn("testimonial validation failed", "error", err)
		return outcome.Invalid[string](err.Error())
	}

	suffix, err := u.newID()
	if err != nil {
		slog.Error("failed to generate testimonial id", "error", err)
		return outcome.Internal[string]()
	}
	now := u.now().UTC()
	t := &entity.Testimonial{
		ID:             IDPrefix + suffix,
		NamePublic:     in.NamePublic,
		LocationPublic: in.LocationPublic,
		Rating:         in.Rating,
		Text:           in.Text,
		Status:         entity.StatusPending,
		IsPublished:    false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := u.testimonials.Create(ctx, t); err != nil {
		slog.Error("failed to create testimonial", "error", err, "testimonial_id", t.ID)
		return outcome.Internal[string]()
	}
	slog.Info("testimonial created", "testimonial_id", t.ID)
	return outcome.OK(t.ID)
}

func (u *testimonialUsecase) ListPublished(ctx context.Context) outcome.Result[[]entity.Testimonial] {
	list, err := u.testimonials.ListPublished(ctx)
	if err != nil {
		slog.Error("failed to list published testimonials", "error", err)
		return outcome.Internal[[]entity.Testimonial]()
	}
	return outcome.OK(list)
}

func (u *testimonialUsecase) List(ctx context.Context) outcome.Result[[]entity.Testimonial] {
	list, err := u.testimonials.List(ctx)
	if err != nil {
		slog.Error("failed to list testimonials", "error", err)
		return outcome.Internal[[]entity.Testimonial]()
	}
	return outcome.OK(list)
}

func (u *testimonialUsecase) Update(ctx context.Context, actorID, id string, in UpdateTestimonialInput) outcome.Result[entity.Testimonial] {
	if err := validation.Var("id", id, "min=1,max=100"); err != nil {
		return outcome.Invalid[entity.Testimonial](err.Error())
	}
	if in.IsPublished == nil && in.Status == nil {
		return outcome.Invalid[entity.Testimonial]("At least one of is_published or status is required")
	}
	if err := validation.Struct(in); err != nil {
		return outcome.Invalid[entity.Testimonial](err.Error())
	}

	t, err := u.testimonials.FindByID(ctx, id)
	if err != nil {
		return notFoundOrInternal[entity.Testimonial](err, id)
	}
	if in.IsPublished != nil {
		t.IsPublished = *in.IsPublished
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	t.UpdatedAt = u.now().UTC()
	if err := u.testimonials.Save(ctx, t); err != nil {
		slog.Error("failed to update testimonial", "error", err, "testimonial_id", id)
		return outcome.Internal[entity.Testimonial]()
	}

	changes, _ := json.Marshal(in)
	u.audit.Record(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     "update_testimonial",
		EntityType: "testimonial",
		EntityID:   t.ID,
		Details:    fmt.Sprintf("Updated testimonial %s: %s", t.ID, changes),
	})
	slog.Info("testimonial updated", "testimonial_id", t.ID, "user_id", actorID)
	return outcome.OK(*t)
}

func (u *testimonialUsecase) Delete(ctx context.Context, actorID, id string) outcome.Result[struct{}] {
	if err := validation.Var("id", id, "min=1,max=100"); err != nil {
		return outcome.Invalid[struct{}](err.Error())
	}
	if err := u.testimonials.Delete(ctx, id); err != nil {
		return notFoundOrInternal[struct{}](err, id)
	}

	u.audit.Record(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     "delete_testimonial",
		EntityType: "testimonial",
		EntityID:   id,
		Details:    "Deleted testimonial " + id,
	})
	return outcome.OK(struct{}{})
}

func notFoundOrInternal[T any](err error, id string) outcome.Result[T] {
	if errors.Is(err, ErrTestimonialNotFound) {
		return outcome.NotFound[T]("Testimonial not found")
	}
	slog.Error("testimonial store failure", "error", err, "testimonial_id", id)
	return outcome.Internal[T]()
}
