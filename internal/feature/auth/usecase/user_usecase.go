package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"cleanneat_backend/internal/feature/auth/domain/entity"
	"cleanneat_backend/internal/platform/password"
	"cleanneat_backend/internal/shared/audit"
	"cleanneat_backend/internal/shared/outcome"
	"cleanneat_backend/internal/shared/validation"
)

// GeneratedPasswordLength は新規ユーザーに発行するパスワードの長さです。
const GeneratedPasswordLength = 16

// CredentialsNotifier は新規ユーザーへの認証情報送信です。
// 送信失敗はユーザー作成の失敗として扱うため、エラーを返します。
type CredentialsNotifier interface {
	SendUserCredentials(ctx context.Context, to, name, loginEmail, plainPassword string) error
}

// CreateUserInput は POST /users のリクエストボディです。
type CreateUserInput struct {
	Name  string `json:"name" validate:"min=1,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
}

// ChangePasswordInput は PUT /users/me/password のリクエストボディです。
type ChangePasswordInput struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// userUsecase はユーザー管理（管理画面側）を実装します。
type userUsecase struct {
	users    UserRepository
	hasher   PasswordHasher
	notifier CredentialsNotifier
	audit    audit.Recorder
	generate func(n int) (string, error)
	now      func() time.Time
}

// NewUserUsecase はuserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(users UserRepository, hasher PasswordHasher, notifier CredentialsNotifier, rec audit.Recorder) *userUsecase {
	return &userUsecase{
		users:    users,
		hasher:   hasher,
		notifier: notifier,
		audit:    rec,
		generate: password.Generate,
		now:      time.Now,
	}
}

// Create はユーザーを作成し、生成したパスワードをメールで送信します。
// 送信に失敗した場合は作成したユーザーを削除し、Internalを返します。
func (u *userUsecase) Create(ctx context.Context, actorID string, in CreateUserInput) outcome.Result[entity.User] {
	if err := validation.Struct(in); err != nil {
		return outcome.Invalid[entity.User](err.Error())
	}

	if _, err := u.users.FindByEmail(ctx, in.Email); err == nil {
		slog.Warn("create user attempted with existing email", "email", in.Email)
		return outcome.Conflict[entity.User]("Email already registered")
	} else if !errors.Is(err, ErrUserNotFound) {
		slog.Error("failed to check email", "error", err, "email", in.Email)
		return outcome.Internal[entity.User]()
	}

	plain, err := u.generate(GeneratedPasswordLength)
	if err != nil {
		slog.Error("failed to generate password", "error", err)
		return outcome.Internal[entity.User]()
	}
	hash, err := u.hasher.Hash(plain)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		return outcome.Internal[entity.User]()
	}

	now := u.now().UTC()
	user := &entity.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return outcome.Conflict[entity.User]("Email already registered")
		}
		slog.Error("failed to create user", "error", err, "email", in.Email)
		return outcome.Internal[entity.User]()
	}

	if err := u.notifier.SendUserCredentials(ctx, user.Email, user.Name, user.Email, plain); err != nil {
		slog.Error("failed to send credentials, rolling back user", "error", err, "user_id", user.ID)
		if delErr := u.users.Delete(context.WithoutCancel(ctx), user.ID); delErr != nil {
			slog.Error("failed to roll back user", "error", delErr, "user_id", user.ID)
		}
		return outcome.Internal[entity.User]()
	}

	u.audit.Record(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     "create_user",
		EntityType: "user",
		EntityID:   user.ID,
		Details:    "Created user " + user.Email,
	})
	slog.Info("user created", "user_id", user.ID, "created_by", actorID)
	return outcome.OK(*user)
}

// List は全ユーザーを返します。
func (u *userUsecase) List(ctx context.Context) outcome.Result[[]entity.User] {
	users, err := u.users.List(ctx)
	if err != nil {
		slog.Error("failed to list users", "error", err)
		return outcome.Internal[[]entity.User]()
	}
	return outcome.OK(users)
}

// Deactivate はユーザーを無効化します。無効化されたユーザーはログインできません。
func (u *userUsecase) Deactivate(ctx context.Context, actorID, id string) outcome.Result[entity.User] {
	return u.setActive(ctx, actorID, id, false)
}

// Reactivate は無効化されたユーザーを再度有効にします。
func (u *userUsecase) Reactivate(ctx context.Context, actorID, id string) outcome.Result[entity.User] {
	return u.setActive(ctx, actorID, id, true)
}

func (u *userUsecase) setActive(ctx context.Context, actorID, id string, active bool) outcome.Result[entity.User] {
	if err := validation.Var("id", id, "uuid"); err != nil {
		return outcome.Invalid[entity.User](err.Error())
	}
	if !active && id == actorID {
		return outcome.Invalid[entity.User]("You cannot deactivate your own account")
	}

	user, res, ok := u.load(ctx, id)
	if !ok {
		return res
	}
	if user.IsActive == active {
		if active {
			return outcome.Conflict[entity.User]("User is already active")
		}
		return outcome.Conflict[entity.User]("User is already inactive")
	}

	updated, err := u.users.SetActive(ctx, id, active)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return outcome.NotFound[entity.User]("User not found")
		}
		slog.Error("failed to update user status", "error", err, "user_id", id)
		return outcome.Internal[entity.User]()
	}

	action, verb := "deactivate_user", "Deactivated"
	if active {
		action, verb = "reactivate_user", "Reactivated"
	}
	u.audit.Record(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     action,
		EntityType: "user",
		EntityID:   updated.ID,
		Details:    verb + " user " + updated.Email,
	})
	return outcome.OK(*updated)
}

// Delete はユーザーを削除します。自分自身は削除できません。
func (u *userUsecase) Delete(ctx context.Context, actorID, id string) outcome.Result[struct{}] {
	if err := validation.Var("id", id, "uuid"); err != nil {
		return outcome.Invalid[struct{}](err.Error())
	}
	if id == actorID {
		return outcome.Invalid[struct{}]("You cannot delete your own account")
	}

	user, res, ok := u.load(ctx, id)
	if !ok {
		return outcome.Convert[struct{}](res)
	}
	if err := u.users.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return outcome.NotFound[struct{}]("User not found")
		}
		slog.Error("failed to delete user", "error", err, "user_id", id)
		return outcome.Internal[struct{}]()
	}

	u.audit.Record(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     "delete_user",
		EntityType: "user",
		EntityID:   user.ID,
		Details:    "Deleted user " + user.Email,
	})
	return outcome.OK(struct{}{})
}

// ChangePassword はログイン中のユーザー自身のパスワードを変更します。
func (u *userUsecase) ChangePassword(ctx context.Context, actorID string, in ChangePasswordInput) outcome.Result[struct{}] {
	if err := validation.Struct(in); err != nil {
		return outcome.Invalid[struct{}](err.Error())
	}
	if err := password.CheckStrength(in.NewPassword); err != nil {
		return outcome.Invalid[struct{}]("new_password: " + err.Error())
	}
	if in.OldPassword == in.NewPassword {
		return outcome.Invalid[struct{}]("New password must differ from the old password")
	}

	user, res, ok := u.load(ctx, actorID)
	if !ok {
		return outcome.Convert[struct{}](res)
	}
	if !u.hasher.Verify(in.OldPassword, user.PasswordHash) {
		return outcome.Unauthorized[struct{}]("Old password is incorrect")
	}

	hash, err := u.hasher.Hash(in.NewPassword)
	if err != nil {
		slog.Error("failed to hash password", "error", err, "user_id", actorID)
		return outcome.Internal[struct{}]()
	}
	if err := u.users.UpdatePassword(ctx, actorID, hash); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return outcome.NotFound[struct{}]("User not found")
		}
		slog.Error("failed to update password", "error", err, "user_id", actorID)
		return outcome.Internal[struct{}]()
	}

	u.audit.Record(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     "change_password",
		EntityType: "user",
		EntityID:   actorID,
		Details:    "User changed their own password",
	})
	slog.Info("user password changed", "user_id", actorID)
	return outcome.OK(struct{}{})
}

func (u *userUsecase) load(ctx context.Context, id string) (*entity.User, outcome.Result[entity.User], bool) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, outcome.NotFound[entity.User]("User not found"), false
		}
		slog.Error("failed to load user", "error", err, "user_id", id)
		return nil, outcome.Internal[entity.User](), false
	}
	return user, outcome.Result[entity.User]{}, true
}
