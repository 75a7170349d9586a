// Package usecase はactionlogフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"cleanneat_backend/internal/feature/actionlog/domain/entity"
	"cleanneat_backend/internal/shared/audit"
	"cleanneat_backend/internal/shared/outcome"
	"cleanneat_backend/internal/shared/validation"
)

const (
	// DefaultListLimit は limit 未指定時の取得件数です。
	DefaultListLimit = 100
	// MaxListLimit は一度に取得できる最大件数です。
	MaxListLimit = 500
)

// ActionLogRepository は監査ログの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ActionLogRepository interface {
	// Create は監査ログを1件追加します。更新・削除は提供しません。
	Create(ctx context.Context, log *entity.ActionLog) error

	// List は新しい順に最大limit件を返します。userIDが空の場合は全ユーザーが対象です。
	List(ctx context.Context, userID string, limit int) ([]entity.ActionLogView, error)
}

// FailureCounter は書き込み失敗を計測するメトリクスです。
type FailureCounter interface {
	IncrementAuditWriteFailures()
}

type recordInput struct {
	ActorID    string `json:"user_id" validate:"required,uuid"`
	Action     string `json:"action" validate:"min=1,max=100"`
	EntityType string `json:"entity_type" validate:"max=50"`
	EntityID   string `json:"entity_id" validate:"max=255"`
}

// actionLogUsecase は監査ログの記録と一覧を担います。
type actionLogUsecase struct {
	repo     ActionLogRepository
	failures FailureCounter
	now      func() time.Time
}

var _ audit.Recorder = (*actionLogUsecase)(nil)

// NewActionLogUsecase はactionLogUsecaseの新しいインスタンスを生成します。
// failures は nil でも構いません。
func NewActionLogUsecase(repo ActionLogRepository, failures FailureCounter) *actionLogUsecase {
	return &actionLogUsecase{repo: repo, failures: failures, now: time.Now}
}

// Record は監査ログを書き込みます。
// 失敗（検証エラー・保存エラー）は警告ログとメトリクスにのみ残し、呼び出し元には返しません。
func (u *actionLogUsecase) Record(ctx context.Context, e audit.Entry) {
	in := recordInput{ActorID: e.ActorID, Action: e.Action, EntityType: e.EntityType, EntityID: e.EntityID}
	if err := validation.Struct(in); err != nil {
		u.fail(e, err)
		return
	}

	log := &entity.ActionLog{
		ID:         uuid.NewString(),
		UserID:     e.ActorID,
		Action:     e.Action,
		EntityType: optional(e.EntityType),
		EntityID:   optional(e.EntityID),
		Details:    optional(e.Details),
		CreatedAt:  u.now().UTC(),
	}
	// 本体の処理はすでに完了しているため、キャンセルされたリクエストでも書き込む
	if err := u.repo.Create(context.WithoutCancel(ctx), log); err != nil {
		u.fail(e, err)
	}
}

func (u *actionLogUsecase) fail(e audit.Entry, err error) {
	slog.Warn("failed to write action log", "error", err, "action", e.Action, "user_id", e.ActorID)
	if u.failures != nil {
		u.failures.IncrementAuditWriteFailures()
	}
}

// List は監査ログを新しい順に返します。
// userID は空文字で全件、limit は nil で DefaultListLimit を使用します。
func (u *actionLogUsecase) List(ctx context.Context, userID string, limit *int) outcome.Result[[]entity.ActionLogView] {
	if userID != "" {
		if err := validation.Var("user_id", userID, "uuid"); err != nil {
			return outcome.Invalid[[]entity.ActionLogView](err.Error())
		}
	}
	n := DefaultListLimit
	if limit != nil {
		if *limit < 1 || *limit > MaxListLimit {
			return outcome.Invalid[[]entity.ActionLogView]("limit: must be between 1 and 500")
		}
		n = *limit
	}

	logs, err := u.repo.List(ctx, userID, n)
	if err != nil {
		slog.Error("failed to list action logs", "error", err, "user_id", userID)
		return outcome.Internal[[]entity.ActionLogView]()
	}
	return outcome.OK(logs)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
