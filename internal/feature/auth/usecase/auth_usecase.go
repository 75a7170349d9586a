package usecase

import (
	"context"
	"errors"
	"log/slog"

	"cleanneat_backend/internal/feature/auth/domain/entity"
	"cleanneat_backend/internal/platform/password"
	"cleanneat_backend/internal/shared/audit"
	"cleanneat_backend/internal/shared/outcome"
	"cleanneat_backend/internal/shared/validation"
)

// invalidCredentials は未登録・無効化・パスワード不一致のすべてで同じ文言を返し、ユーザー列挙を防ぎます。
const invalidCredentials = "Invalid email or password"

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーを永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail はメールアドレスに一致するユーザーを取得します。
	// 存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID はIDに一致するユーザーを取得します。
	// 存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// List は全ユーザーを作成日時の新しい順に返します。
	List(ctx context.Context) ([]entity.User, error)

	// SetActive は有効フラグを更新し、更新後のユーザーを返します。
	SetActive(ctx context.Context, id string, active bool) (*entity.User, error)

	// UpdatePassword はパスワードハッシュを置き換えます。
	UpdatePassword(ctx context.Context, id, passwordHash string) error

	// Delete はユーザーを削除します。存在しない場合、ErrUserNotFoundを返します。
	Delete(ctx context.Context, id string) error
}

// TokenIssuer はJWTトークン発行のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}

// PasswordHasher はパスワードのハッシュ化と照合を抽象化します。
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

// LoginFailureCounter はログイン失敗を計測するメトリクスです。
type LoginFailureCounter interface {
	IncrementLoginFailures()
}

// LoginInput は /login のリクエストボディです。
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult はログイン成功時の応答です。
type LoginResult struct {
	User  entity.User
	Token string
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users    UserRepository
	tokens   TokenIssuer
	hasher   PasswordHasher
	audit    audit.Recorder
	failures LoginFailureCounter
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。failures は nil でも構いません。
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, hasher PasswordHasher, rec audit.Recorder, failures LoginFailureCounter) *authUsecase {
	return &authUsecase{users: users, tokens: tokens, hasher: hasher, audit: rec, failures: failures}
}

// Login はユーザーを認証し、成功時にJWTトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, in LoginInput) outcome.Result[LoginResult] {
	if err := validation.Struct(in); err != nil {
		return outcome.Invalid[LoginResult](err.Error())
	}

	user, err := u.users.FindByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		slog.Error("failed to load user for login", "error", err, "email", in.Email)
		return outcome.Internal[LoginResult]()
	}

	// ユーザーが存在しない場合はダミーハッシュと比較する
	digest := password.DummyHash
	if user != nil {
		digest = user.PasswordHash
	}
	matched := u.hasher.Verify(in.Password, digest)

	switch {
	case user == nil:
		slog.Warn("login attempted with non-existent email", "email", in.Email)
		return u.reject()
	case !user.IsActive:
		slog.Warn("login attempted with deactivated account", "email", in.Email, "user_id", user.ID)
		return u.reject()
	case !matched:
		slog.Warn("login attempted with incorrect password", "email", in.Email, "user_id", user.ID)
		return u.reject()
	}

	token, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		slog.Error("failed to issue token", "error", err, "user_id", user.ID)
		return outcome.Internal[LoginResult]()
	}

	u.audit.Record(ctx, audit.Entry{
		ActorID: user.ID,
		Action:  "login",
		Details: "Logged in as " + user.Email,
	})
	slog.Info("user logged in", "user_id", user.ID)
	return outcome.OK(LoginResult{User: *user, Token: token})
}

func (u *authUsecase) reject() outcome.Result[LoginResult] {
	if u.failures != nil {
		u.failures.IncrementLoginFailures()
	}
	return outcome.Unauthorized[LoginResult](invalidCredentials)
}
