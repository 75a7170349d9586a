// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cleanneat_backend/internal/feature/auth/domain/entity"
	"cleanneat_backend/internal/feature/auth/usecase"
	"cleanneat_backend/internal/shared/actor"
)

// userMySQL はUserRepositoryインターフェースのGORM実装です。
// MySQL・PostgreSQL・SQLiteのいずれでも動作します。
type userMySQL struct {
	db *gorm.DB
}

// userMySQLがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userMySQL)(nil)

// 他フィーチャーからのユーザー参照にも使用します。
var _ actor.Directory = (*userMySQL)(nil)

// NewUserMySQL は指定されたgorm.DB接続でuserMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserMySQL(db *gorm.DB) *userMySQL {
	return &userMySQL{db: db}
}

// Create はユーザーをデータベースに追加します。
// 同じメールアドレスのユーザーが既に存在する場合、usecase.ErrEmailAlreadyExistsを返します。
func (r *userMySQL) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		// TranslateError により各ドライバーの一意制約違反が ErrDuplicatedKey になる
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail はメールアドレスでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userMySQL) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(ctx, "email = ?", email)
}

// FindByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userMySQL) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *userMySQL) first(ctx context.Context, cond string, arg any) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where(cond, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// List は全ユーザーを作成日時の新しい順に返します。
func (r *userMySQL) List(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// SetActive は有効フラグを更新します。
func (r *userMySQL) SetActive(ctx context.Context, id string, active bool) (*entity.User, error) {
	// bool のゼロ値も更新されるよう map ではなく Update を使う
	res := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

// UpdatePassword はパスワードハッシュを置き換えます。
func (r *userMySQL) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	res := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Update("password_hash", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// Delete はユーザーを削除します。
func (r *userMySQL) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// DisplayName はユーザー名を返します。存在しない場合、actor.ErrUnknownを返します。
func (r *userMySQL) DisplayName(ctx context.Context, id string) (string, error) {
	u, err := r.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return "", actor.ErrUnknown
		}
		return "", err
	}
	return u.Name, nil
}
