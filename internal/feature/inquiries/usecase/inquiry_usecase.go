// Package usecase はinquiriesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"cleanneat_backend/internal/feature/inquiries/domain/entity"
	"cleanneat_backend/internal/shared/actor"
	"cleanneat_backend/internal/shared/audit"
	"cleanneat_backend/internal/shared/notes"
	"cleanneat_backend/internal/shared/outcome"
	"cleanneat_backend/internal/shared/validation"
)

// IDPrefix is prepended to the nanoid of every inquiry.
const IDPrefix = "inq_"

var (
	ErrInquiryNotFound = errors.New("inquiry not found")

	errNoteNotFound = errors.New("note not found")
)

// InquiryRepository は見積もり依頼の永続化層を抽象化します。
type InquiryRepository interface {
	Create(ctx context.Context, inq *entity.Inquiry) error
	FindByID(ctx context.Context, id string) (*entity.Inquiry, error)
	// List は全件を新しい順で返します。
	List(ctx context.Context) ([]entity.Inquiry, error)
	Save(ctx context.Context, inq *entity.Inquiry) error
}

// ConfirmationSender は受付確認メールを送信します。
// 失敗しても依頼の登録は取り消しません。
type ConfirmationSender interface {
	SendInquiryConfirmation(ctx context.Context, to, fullName, inquiryID string) error
}

// CreateInquiryInput は公開フォームから送信される見積もり依頼です。
type CreateInquiryInput struct {
	RequesterType            string   `json:"requester_type" validate:"oneof=client family advocate support_worker commissioner other"`
	FullName                 string   `json:"full_name" validate:"min=1,max=255"`
	Email                    string   `json:"email" validate:"email,max=255"`
	Phone                    string   `json:"phone" validate:"min=1,max=50"`
	PreferredContactMethod   string   `json:"preferred_contact_method" validate:"oneof=phone email"`
	AddressLine              string   `json:"address_line" validate:"min=1,max=500"`
	Postcode                 string   `json:"postcode" validate:"min=1,max=20"`
	ServiceType              []string `json:"service_type" validate:"min=1,dive,oneof=regular deep kitchen_bath move_in_out other"`
	PropertyType             string   `json:"property_type" validate:"oneof=flat house other"`
	Bedrooms                 *int     `json:"bedrooms" validate:"required,min=0"`
	Bathrooms                *int     `json:"bathrooms" validate:"required,min=0"`
	PreferredStartDate       *string  `json:"preferred_start_date,omitempty" validate:"omitempty,ymd"`
	Frequency                string   `json:"frequency" validate:"oneof=one_off weekly fortnightly monthly"`
	CleaningScopeNotes       string   `json:"cleaning_scope_notes" validate:"min=1,max=5000"`
	AccessNeedsOrPreferences *string  `json:"access_needs_or_preferences,omitempty" validate:"omitempty,max=2000"`
	ConsentToContact         *bool    `json:"consent_to_contact" validate:"required"`
	ConsentDataProcessing    *bool    `json:"consent_data_processing" validate:"required"`
}

type UpdateStatusInput struct {
	Status string `json:"status" validate:"oneof=new read contacted"`
}

type AddNoteInput struct {
	Note string `json:"note" validate:"min=1,max=5000"`
}

type inquiryUsecase struct {
	inquiries InquiryRepository
	mailer    ConfirmationSender
	users     actor.Directory
	audit     audit.Recorder
	newID     func() (string, error)
	now       func() time.Time
}

func NewInquiryUsecase(inquiries InquiryRepository, mailer ConfirmationSender, users actor.Directory, rec audit.Recorder) *inquiryUsecase {
	return &inquiryUsecase{
		inquiries: inquiries,
		mailer:    mailer,
		users:     users,
		audit:     rec,
		newID:     func() (string, error) { return gonanoid.New() },
		now:       time.Now,
	}
}

// Create は依頼を保存してから確認メールを送ります。
func (u *inquiryUsecase) Create(ctx context.Context, in CreateInquiryInput) outcome.Result[string] {
	if err := validation.Struct(in); err != nil {
		slog.Warn("inquiry validation failed", "error", err)
		return outcome.Invalid[string](err.Error())
	}

	suffix, err := u.newID()
	if err != nil {
		slog.Error("failed to generate inquiry id", "error", err)
		return outcome.Internal[string]()
	}
	now := u.now().UTC()
	inq := &entity.Inquiry{
		ID:                       IDPrefix + suffix,
		RequesterType:            in.RequesterType,
		FullName:                 in.FullName,
		Email:                    in.Email,
		Phone:                    in.Phone,
		PreferredContactMethod:   in.PreferredContactMethod,
		AddressLine:              in.AddressLine,
		Postcode:                 in.Postcode,
		ServiceType:              in.ServiceType,
		PropertyType:             in.PropertyType,
		Bedrooms:                 *in.Bedrooms,
		Bathrooms:                *in.Bathrooms,
		PreferredStartDate:       in.PreferredStartDate,
		Frequency:                in.Frequency,
		CleaningScopeNotes:       in.CleaningScopeNotes,
		AccessNeedsOrPreferences: in.AccessNeedsOrPreferences,
		ConsentToContact:         *in.ConsentToContact,
		ConsentDataProcessing:    *in.ConsentDataProcessing,
		Status:                   entity.StatusNew,
		InternalNotes:            []notes.Note{},
		CreatedAt:                now,
		UpdatedAt:                now,
	}
	if err := u.inquiries.Create(ctx, inq); err != nil {
		slog.Error("failed to create inquiry", "error", err, "email", in.Email)
		return outcome.Internal[string]()
	}
	slog.Info("inquiry submitted", "inquiry_id", inq.ID, "email", inq.Email)

	if err := u.mailer.SendInquiryConfirmation(ctx, inq.Email, inq.FullName, inq.ID); err != nil {
		slog.Warn("inquiry confirmation email failed; inquiry already saved",
			"error", err, "inquiry_id", inq.ID, "email", inq.Email)
	}
	return outcome.OK(inq.ID)
}

func (u *inquiryUsecase) List(ctx context.Context) outcome.Result[[]entity.Inquiry] {
	list, err := u.inquiries.List(ctx)
	if err != nil {
		slog.Error("failed to list inquiries", "error", err)
		return outcome.Internal[[]entity.Inquiry]()
	}
	return outcome.OK(list)
}

// MarkRead は状態を read にします。
func (u *inquiryUsecase) MarkRead(ctx context.Context, actorID, id string) outcome.Result[entity.Inquiry] {
	return u.mutate(ctx, id, func(inq *entity.Inquiry) (audit.Entry, error) {
		inq.Status = entity.StatusRead
		return audit.Entry{
			ActorID: actorID,
			Action:  "mark_inquiry_read",
			Details: fmt.Sprintf("Marked inquiry %s (%s) as read", inq.ID, inq.Email),
		}, nil
	})
}

func (u *inquiryUsecase) UpdateStatus(ctx context.Context, actorID, id string, in UpdateStatusInput) outcome.Result[entity.Inquiry] {
	if err := validation.Struct(in); err != nil {
		return outcome.Invalid[entity.Inquiry](err.Error())
	}
	return u.mutate(ctx, id, func(inq *entity.Inquiry) (audit.Entry, error) {
		inq.Status = in.Status
		return audit.Entry{
			ActorID: actorID,
			Action:  "update_inquiry_status",
			Details: fmt.Sprintf("Updated inquiry %s status to %s", inq.ID, in.Status),
		}, nil
	})
}

// AddNote は操作ユーザー名を記入者としてメモを追記します。
func (u *inquiryUsecase) AddNote(ctx context.Context, actorID, id string, in AddNoteInput) outcome.Result[entity.Inquiry] {
	if err := validation.Struct(in); err != nil {
		return outcome.Invalid[entity.Inquiry](err.Error())
	}
	writer, err := u.users.DisplayName(ctx, actorID)
	if err != nil {
		slog.Warn("note writer could not be resolved", "error", err, "user_id", actorID)
		writer = notes.UnknownWriter
	}
	return u.mutate(ctx, id, func(inq *entity.Inquiry) (audit.Entry, error) {
		inq.InternalNotes = notes.Append(inq.InternalNotes, in.Note, writer, u.now())
		return audit.Entry{
			ActorID: actorID,
			Action:  "add_inquiry_note",
			Details: "Added note to inquiry " + inq.ID,
		}, nil
	})
}

// DeleteNote は位置 index のメモを削除します。index はパスパラメータの文字列です。
func (u *inquiryUsecase) DeleteNote(ctx context.Context, actorID, id, index string) outcome.Result[entity.Inquiry] {
	i, err := strconv.Atoi(index)
	if err != nil || i < 0 {
		return outcome.Invalid[entity.Inquiry]("index: must be a non-negative integer")
	}
	return u.mutate(ctx, id, func(inq *entity.Inquiry) (audit.Entry, error) {
		rest, ok := notes.Remove(inq.InternalNotes, i)
		if !ok {
			return audit.Entry{}, errNoteNotFound
		}
		inq.InternalNotes = rest
		return audit.Entry{
			ActorID: actorID,
			Action:  "delete_inquiry_note",
			Details: fmt.Sprintf("Deleted note index %d from inquiry %s", i, inq.ID),
		}, nil
	})
}

// mutate は読み込み、変更、保存、監査の順で1件を更新します。
// apply がエラーを返した場合は何も保存しません。
func (u *inquiryUsecase) mutate(
	ctx context.Context,
	id string,
	apply func(inq *entity.Inquiry) (audit.Entry, error),
) outcome.Result[entity.Inquiry] {
	if err := validation.Var("id", id, "min=1,max=100"); err != nil {
		return outcome.Invalid[entity.Inquiry](err.Error())
	}
	inq, err := u.inquiries.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrInquiryNotFound) {
			return outcome.NotFound[entity.Inquiry]("Inquiry not found")
		}
		slog.Error("failed to load inquiry", "error", err, "inquiry_id", id)
		return outcome.Internal[entity.Inquiry]()
	}

	entry, err := apply(inq)
	if errors.Is(err, errNoteNotFound) {
		return outcome.NotFound[entity.Inquiry]("Note not found")
	}
	if err != nil {
		slog.Error("failed to apply inquiry change", "error", err, "inquiry_id", id)
		return outcome.Internal[entity.Inquiry]()
	}
	inq.UpdatedAt = u.now().UTC()
	if err := u.inquiries.Save(ctx, inq); err != nil {
		slog.Error("failed to save inquiry", "error", err, "inquiry_id", id, "action", entry.Action)
		return outcome.Internal[entity.Inquiry]()
	}

	entry.EntityType = "inquiry"
	entry.EntityID = inq.ID
	u.audit.Record(ctx, entry)
	slog.Info("inquiry updated", "inquiry_id", inq.ID, "action", entry.Action, "user_id", entry.ActorID)
	return outcome.OK(*inq)
}
