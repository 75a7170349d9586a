package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"cleanneat_backend/internal/feature/services/domain/entity"
	"cleanneat_backend/internal/shared/actor"
	"cleanneat_backend/internal/shared/audit"
	"cleanneat_backend/internal/shared/nullable"
	"cleanneat_backend/internal/shared/outcome"
	"cleanneat_backend/internal/shared/validation"
)

// ServiceRepository はサービスエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ServiceRepository interface {
	// Create はサービスを追加します。スラッグ重複時は ErrSlugTaken を返します。
	Create(ctx context.Context, s *entity.Service) error
	// FindByID は存在しない場合 ErrServiceNotFound を返します。
	FindByID(ctx context.Context, id string) (*entity.Service, error)
	// FindBySlug は存在しない場合 ErrServiceNotFound を返します。
	FindBySlug(ctx context.Context, slug string) (*entity.Service, error)
	// List は sort_order 昇順、作成日時の新しい順に返します。userID が空なら全件です。
	List(ctx context.Context, userID string) ([]entity.Service, error)
	// Save は全カラムを上書きします。
	Save(ctx context.Context, s *entity.Service) error
	// Delete は存在しない場合 ErrServiceNotFound を返します。
	Delete(ctx context.Context, id string) error
}

// CreateServiceInput は POST /services のリクエストボディです。
type CreateServiceInput struct {
	Title            string   `json:"title" validate:"min=1,max=255"`
	Slug             string   `json:"slug" validate:"min=1,max=255,slug"`
	ShortDescription string   `json:"short_description" validate:"min=1,max=500"`
	LongDescription  string   `json:"long_description" validate:"min=1"`
	WhatsIncluded    []string `json:"whats_included" validate:"dive,min=1"`
	WhatsNotIncluded []string `json:"whats_not_included" validate:"dive,min=1"`
	TypicalDuration  string   `json:"typical_duration" validate:"min=1,max=100"`
	PriceFrom        string   `json:"price_from" validate:"min=1,max=50"`
	ImageURL         *string  `json:"image_url" validate:"omitempty,url"`
	IsPublished      bool     `json:"is_published"`
	SortOrder        int      `json:"sort_order"`
}

// UpdateServiceInput は PUT /services/:id のリクエストボディです。省略したフィールドは変更されません。
type UpdateServiceInput struct {
	Title            *string                `json:"title" validate:"omitempty,min=1,max=255"`
	Slug             *string                `json:"slug" validate:"omitempty,min=1,max=255,slug"`
	ShortDescription *string                `json:"short_description" validate:"omitempty,min=1,max=500"`
	LongDescription  *string                `json:"long_description" validate:"omitempty,min=1"`
	WhatsIncluded    *[]string              `json:"whats_included" validate:"omitempty,dive,min=1"`
	WhatsNotIncluded *[]string              `json:"whats_not_included" validate:"omitempty,dive,min=1"`
	TypicalDuration  *string                `json:"typical_duration" validate:"omitempty,min=1,max=100"`
	PriceFrom        *string                `json:"price_from" validate:"omitempty,min=1,max=50"`
	ImageURL         nullable.Field[string] `json:"image_url"`
	IsPublished      *bool                  `json:"is_published"`
	SortOrder        *int                   `json:"sort_order"`
}

// serviceUsecase はサービスカタログのビジネスロジックを実装します。
type serviceUsecase struct {
	services ServiceRepository
	users    actor.Directory
	audit    audit.Recorder
	now      func() time.Time
}

// NewServiceUsecase はserviceUsecaseの新しいインスタンスを生成します。
func NewServiceUsecase(services ServiceRepository, users actor.Directory, rec audit.Recorder) *serviceUsecase {
	return &serviceUsecase{services: services, users: users, audit: rec, now: time.Now}
}

// Create は操作ユーザーを所有者としてサービスを作成します。
func (u *serviceUsecase) Create(ctx context.Context, actorID string, in CreateServiceInput) outcome.Result[entity.Service] {
	if err := validation.Struct(in); err != nil {
		return outcome.Invalid[entity.Service](err.Error())
	}

	if _, err := u.users.DisplayName(ctx, actorID); err != nil {
		if errors.Is(err, actor.ErrUnknown) {
			slog.Warn("service creation attempted with non-existent user", "user_id", actorID)
			return outcome.NotFound[entity.Service]("User not found")
		}
		slog.Error("failed to resolve user", "error", err, "user_id", actorID)
		return outcome.Internal[entity.Service]()
	}
	if res, ok := u.ensureSlugFree(ctx, in.Slug); !ok {
		return res
	}

	now := u.now().UTC()
	s := &entity.Service{
		ID:               uuid.NewString(),
		Title:            in.Title,
		Slug:             in.Slug,
		ShortDescription: in.ShortDescription,
		LongDescription:  in.LongDescription,
		WhatsIncluded:    orEmpty(in.WhatsIncluded),
		WhatsNotIncluded: orEmpty(in.WhatsNotIncluded),
		TypicalDuration:  in.TypicalDuration,
		PriceFrom:        in.PriceFrom,
		ImageURL:         in.ImageURL,
		IsPublished:      in.IsPublished,
		SortOrder:        in.SortOrder,
		UserID:           actorID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := u.services.Create(ctx, s); err != nil {
		if errors.Is(err, ErrSlugTaken) {
			return outcome.Conflict[entity.Service]("Slug already taken")
		}
		slog.Error("failed to create service", "error", err, "slug", in.Slug)
		return outcome.Internal[entity.Service]()
	}

	u.audit.Record(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     "create_service",
		EntityType: "service",
		EntityID:   s.ID,
		Details:    fmt.Sprintf("Created service %q (%s)", s.Title, s.Slug),
	})
	slog.Info("service created", "service_id", s.ID, "user_id", actorID)
	return outcome.OK(*s)
}

// List は公開一覧です。userID を指定するとその所有者のサービスに絞り込みます。
func (u *serviceUsecase) List(ctx context.Context, userID string) outcome.Result[[]entity.Service] {
	if userID != "" {
		if err := validation.Var("user_id", userID, "uuid"); err != nil {
			return outcome.Invalid[[]entity.Service](err.Error())
		}
	}
	list, err := u.services.List(ctx, userID)
	if err != nil {
		slog.Error("failed to list services", "error", err)
		return outcome.Internal[[]entity.Service]()
	}
	return outcome.OK(list)
}

// Get はIDでサービスを取得します。
func (u *serviceUsecase) Get(ctx context.Context, id string) outcome.Result[entity.Service] {
	if err := validation.Var("id", id, "uuid"); err != nil {
		return outcome.Invalid[entity.Service](err.Error())
	}
	s, res, ok := u.load(ctx, id)
	if !ok {
		return res
	}
	return outcome.OK(*s)
}

// Update は所有者のみが実行できる部分更新です。所有者確認は更新の前に行います。
func (u *serviceUsecase) Update(ctx context.Context, actorID, id string, in UpdateServiceInput) outcome.Result[entity.Service] {
	if err := validation.Var("id", id, "uuid"); err != nil {
		return outcome.Invalid[entity.Service](err.Error())
	}
	if err := validation.Struct(in); err != nil {
		return outcome.Invalid[entity.Service](err.Error())
	}
	if in.ImageURL.Value != nil {
		if err := validation.Var("image_url", *in.ImageURL.Value, "url"); err != nil {
			return outcome.Invalid[entity.Service](err.Error())
		}
	}

	s, res, ok := u.load(ctx, id)
	if !ok {
		return res
	}
	if s.UserID != actorID {
		slog.Warn("service update by non-owner refused", "service_id", id, "user_id", actorID)
		return outcome.Forbidden[entity.Service]("Forbidden: You can only update your own services")
	}
	if in.Slug != nil && *in.Slug != s.Slug {
		if res, ok := u.ensureSlugFree(ctx, *in.Slug); !ok {
			return res
		}
	}

	apply(s, in)
	s.UpdatedAt = u.now().UTC()
	if err := u.services.Save(ctx, s); err != nil {
		if errors.Is(err, ErrSlugTaken) {
			return outcome.Conflict[entity.Service]("Slug already taken")
		}
		slog.Error("failed to update service", "error", err, "service_id", id)
		return outcome.Internal[entity.Service]()
	}

	u.audit.Record(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     "update_service",
		EntityType: "service",
		EntityID:   s.ID,
		Details:    fmt.Sprintf("Updated service %q (%s)", s.Title, s.Slug),
	})
	return outcome.OK(*s)
}

// Delete は所有者のみが実行できる削除です。
func (u *serviceUsecase) Delete(ctx context.Context, actorID, id string) outcome.Result[struct{}] {
	if err := validation.Var("id", id, "uuid"); err != nil {
		return outcome.Invalid[struct{}](err.Error())
	}
	s, res, ok := u.load(ctx, id)
	if !ok {
		return outcome.Convert[struct{}](res)
	}
	if s.UserID != actorID {
		slog.Warn("service delete by non-owner refused", "service_id", id, "user_id", actorID)
		return outcome.Forbidden[struct{}]("Forbidden: You can only delete your own services")
	}

	if err := u.services.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			return outcome.NotFound[struct{}]("Service not found")
		}
		slog.Error("failed to delete service", "error", err, "service_id", id)
		return outcome.Internal[struct{}]()
	}

	u.audit.Record(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     "delete_service",
		EntityType: "service",
		EntityID:   s.ID,
		Details:    fmt.Sprintf("Deleted service %q (%s)", s.Title, s.Slug),
	})
	return outcome.OK(struct{}{})
}

func (u *serviceUsecase) load(ctx context.Context, id string) (*entity.Service, outcome.Result[entity.Service], bool) {
	s, err := u.services.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			return nil, outcome.NotFound[entity.Service]("Service not found"), false
		}
		slog.Error("failed to load service", "error", err, "service_id", id)
		return nil, outcome.Internal[entity.Service](), false
	}
	return s, outcome.Result[entity.Service]{}, true
}

func (u *serviceUsecase) ensureSlugFree(ctx context.Context, slug string) (outcome.Result[entity.Service], bool) {
	_, err := u.services.FindBySlug(ctx, slug)
	switch {
	case err == nil:
		slog.Warn("service slug already taken", "slug", slug)
		return outcome.Conflict[entity.Service]("Slug already taken"), false
	case errors.Is(err, ErrServiceNotFound):
		return outcome.Result[entity.Service]{}, true
	default:
		slog.Error("failed to check slug", "error", err, "slug", slug)
		return outcome.Internal[entity.Service](), false
	}
}

func apply(s *entity.Service, in UpdateServiceInput) {
	if in.Title != nil {
		s.Title = *in.Title
	}
	if in.Slug != nil {
		s.Slug = *in.Slug
	}
	if in.ShortDescription != nil {
		s.ShortDescription = *in.ShortDescription
	}
	if in.LongDescription != nil {
		s.LongDescription = *in.LongDescription
	}
	if in.WhatsIncluded != nil {
		s.WhatsIncluded = orEmpty(*in.WhatsIncluded)
	}
	if in.WhatsNotIncluded != nil {
		s.WhatsNotIncluded = orEmpty(*in.WhatsNotIncluded)
	}
	if in.TypicalDuration != nil {
		s.TypicalDuration = *in.TypicalDuration
	}
	if in.PriceFrom != nil {
		s.PriceFrom = *in.PriceFrom
	}
	if in.ImageURL.Set {
		s.ImageURL = in.ImageURL.Value
	}
	if in.IsPublished != nil {
		s.IsPublished = *in.IsPublished
	}
	if in.SortOrder != nil {
		s.SortOrder = *in.SortOrder
	}
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
