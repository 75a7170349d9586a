// Package usecase はapplicationsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"cleanneat_backend/internal/feature/applications/domain/entity"
	"cleanneat_backend/internal/shared/actor"
	"cleanneat_backend/internal/shared/audit"
	"cleanneat_backend/internal/shared/notes"
	"cleanneat_backend/internal/shared/outcome"
	"cleanneat_backend/internal/shared/validation"
)

const IDPrefix = "app_"

var (
	ErrApplicationNotFound = errors.New("application not found")

	errNoteNotFound = errors.New("note not found")
)

// ApplicationRepository は求人応募の永続化層を抽象化します。
type ApplicationRepository interface {
	Create(ctx context.Context, app *entity.Application) error
	FindByID(ctx context.Context, id string) (*entity.Application, error)
	List(ctx context.Context) ([]entity.Application, error)
	Save(ctx context.Context, app *entity.Application) error
}

// ConfirmationSender は応募受付メールを送信します（ベストエフォート）。
type ConfirmationSender interface {
	SendApplicationConfirmation(ctx context.Context, to, fullName, applicationID string) error
}

type CreateApplicationInput struct {
	FullName                         string   `json:"full_name" validate:"min=1,max=255"`
	Email                            string   `json:"email" validate:"email,max=255"`
	Phone                            string   `json:"phone" validate:"min=1,max=50"`
	LocationPostcode                 string   `json:"location_postcode" validate:"min=1,max=20"`
	RoleType                         []string `json:"role_type" validate:"min=1,dive,oneof=self_employed employed part_time full_time"`
	Availability                     []string `json:"availability" validate:"min=1,dive,oneof=weekdays weekends evenings"`
	ExperienceSummary                string   `json:"experience_summary" validate:"min=1,max=10000"`
	RightToWorkUK                    *bool    `json:"right_to_work_uk" validate:"required"`
	DBSStatus                        string   `json:"dbs_status" validate:"oneof=have_dbs need_dbs willing_to_obtain"`
	ReferencesContactDetails         string   `json:"references_contact_details" validate:"min=1,max=2000"`
	CVFileURL                        string   `json:"cv_file_url" validate:"url,max=2000"`
	IDFileURL                        *string  `json:"id_file_url,omitempty" validate:"omitempty,url,max=2000"`
	ConsentRecruitmentDataProcessing *bool    `json:"consent_recruitment_data_processing" validate:"required"`
}

type UpdateStatusInput struct {
	Status string `json:"status" validate:"oneof=new read contacted"`
}

type AddNoteInput struct {
	Note string `json:"note" validate:"min=1,max=5000"`
}

type applicationUsecase struct {
	applications ApplicationRepository
	mailer       ConfirmationSender
	users        actor.Directory
	audit        audit.Recorder
	newID        func() (string, error)
	now          func() time.Time
}

func NewApplicationUsecase(applications ApplicationRepository, mailer ConfirmationSender, users actor.Directory, rec audit.Recorder) *applicationUsecase {
	return &applicationUsecase{
		applications: applications,
		mailer:       mailer,
		users:        users,
		audit:        rec,
		newID:        func() (string, error) { return gonanoid.New() },
		now:          time.Now,
	}
}

func (u *applicationUsecase) Create(ctx context.Context, in CreateApplicationInput) outcome.Result[string] {
	if err := validation.Struct(in); err != nil {
		slog.Warn("application validation failed", "error", err)
		return outcome.Invalid[string](err.Error())
	}

	suffix, err := u.newID()
	if err != nil {
		slog.Error("failed to generate application id", "error", err)
		return outcome.Internal[string]()
	}
	now := u.now().UTC()
	app := &entity.Application{
		ID:                               IDPrefix + suffix,
		FullName:                         in.FullName,
		Email:                            in.Email,
		Phone:                            in.Phone,
		LocationPostcode:                 in.LocationPostcode,
		RoleType:                         in.RoleType,
		Availability:                     in.Availability,
		ExperienceSummary:                in.ExperienceSummary,
		RightToWorkUK:                    *in.RightToWorkUK,
		DBSStatus:                        in.DBSStatus,
		ReferencesContactDetails:         in.ReferencesContactDetails,
		CVFileURL:                        in.CVFileURL,
		IDFileURL:                        in.IDFileURL,
		ConsentRecruitmentDataProcessing: *in.ConsentRecruitmentDataProcessing,
		Status:                           entity.StatusNew,
		InternalNotes:                    []notes.Note{},
		CreatedAt:                        now,
		UpdatedAt:                        now,
	}
	if err := u.applications.Create(ctx, app); err != nil {
		slog.Error("failed to create application", "error", err, "email", in.Email)
		return outcome.Internal[string]()
	}
	slog.Info("job application submitted", "application_id", app.ID, "email", app.Email)

	// 応募は保存済みのため、メール送信失敗は警告のみ
	if err := u.mailer.SendApplicationConfirmation(ctx, app.Email, app.FullName, app.ID); err != nil {
		slog.Warn("application confirmation email failed; application already saved",
			"error", err, "application_id", app.ID, "email", app.Email)
	}
	return outcome.OK(app.ID)
}

func (u *applicationUsecase) List(ctx context.Context) outcome.Result[[]entity.Application] {
	list, err := u.applications.List(ctx)
	if err != nil {
		slog.Error("failed to list applications", "error", err)
		return outcome.Internal[[]entity.Application]()
	}
	return outcome.OK(list)
}

func (u *applicationUsecase) MarkRead(ctx context.Context, actorID, id string) outcome.Result[entity.Application] {
	return u.update(ctx, actorID, id, "mark_application_read", func(app *entity.Application) (string, error) {
		app.Status = entity.StatusRead
		return fmt.Sprintf("Marked application %s (%s) as read", app.ID, app.Email), nil
	})
}

func (u *applicationUsecase) UpdateStatus(ctx context.Context, actorID, id string, in UpdateStatusInput) outcome.Result[entity.Application] {
	if err := validation.Struct(in); err != nil {
		return outcome.Invalid[entity.Application](err.Error())
	}
	return u.update(ctx, actorID, id, "update_application_status", func(app *entity.Application) (string, error) {
		app.Status = in.Status
		return fmt.Sprintf("Updated application %s status to %s", app.ID, in.Status), nil
	})
}

func (u *applicationUsecase) AddNote(ctx context.Context, actorID, id string, in AddNoteInput) outcome.Result[entity.Application] {
	if err := validation.Struct(in); err != nil {
		return outcome.Invalid[entity.Application](err.Error())
	}
	writer, err := u.users.DisplayName(ctx, actorID)
	if err != nil {
		slog.Warn("note writer could not be resolved", "error", err, "user_id", actorID)
		writer = notes.UnknownWriter
	}
	return u.update(ctx, actorID, id, "add_application_note", func(app *entity.Application) (string, error) {
		app.InternalNotes = notes.Append(app.InternalNotes, in.Note, writer, u.now())
		return "Added note to application " + app.ID, nil
	})
}

func (u *applicationUsecase) DeleteNote(ctx context.Context, actorID, id, index string) outcome.Result[entity.Application] {
	i, err := strconv.Atoi(index)
	if err != nil || i < 0 {
		return outcome.Invalid[entity.Application]("index: must be a non-negative integer")
	}
	return u.update(ctx, actorID, id, "delete_application_note", func(app *entity.Application) (string, error) {
		rest, ok := notes.Remove(app.InternalNotes, i)
		if !ok {
			return "", errNoteNotFound
		}
		app.InternalNotes = rest
		return fmt.Sprintf("Deleted note index %d from application %s", i, app.ID), nil
	})
}

// update は1件を読み込み、change を適用して保存し、action として監査します。
// change は監査の details を返します。エラーを返した場合は何も保存しません。
func (u *applicationUsecase) update(
	ctx context.Context,
	actorID, id, action string,
	change func(app *entity.Application) (string, error),
) outcome.Result[entity.Application] {
	if err := validation.Var("id", id, "min=1,max=100"); err != nil {
		return outcome.Invalid[entity.Application](err.Error())
	}
	app, err := u.applications.FindByID(ctx, id)
	if errors.Is(err, ErrApplicationNotFound) {
		return outcome.NotFound[entity.Application]("Application not found")
	}
	if err != nil {
		slog.Error("failed to load application", "error", err, "application_id", id)
		return outcome.Internal[entity.Application]()
	}

	details, err := change(app)
	if errors.Is(err, errNoteNotFound) {
		return outcome.NotFound[entity.Application]("Note not found")
	}
	if err != nil {
		slog.Error("failed to apply application change", "error", err, "application_id", id, "action", action)
		return outcome.Internal[entity.Application]()
	}
	app.UpdatedAt = u.now().UTC()
	if err := u.applications.Save(ctx, app); err != nil {
		slog.Error("failed to save application", "error", err, "application_id", id, "action", action)
		return outcome.Internal[entity.Application]()
	}

	u.audit.Record(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     action,
		EntityType: "application",
		EntityID:   app.ID,
		Details:    details,
	})
	slog.Info("application updated", "application_id", app.ID, "action", action, "user_id", actorID)
	return outcome.OK(*app)
}
