package session

import (
	"context"
	"log/slog"
	"time"

	"cleanneat_backend/internal/feature/auth/domain/entity"
	"cleanneat_backend/internal/feature/auth/usecase"
)

// Revoker records that a user's existing tokens must be rejected.
type Revoker interface {
	Revoke(ctx context.Context, userID string, at time.Time) error
}

// RevokingUserRepository はユーザーの無効化・削除時にトークンを失効させるデコレーターです。
// 失効の記録はベストエフォートで、失敗しても元の操作は成功として返します。
type RevokingUserRepository struct {
	usecase.UserRepository
	revoker Revoker
	now     func() time.Time
}

var _ usecase.UserRepository = (*RevokingUserRepository)(nil)

func NewRevokingUserRepository(inner usecase.UserRepository, revoker Revoker) *RevokingUserRepository {
	return &RevokingUserRepository{UserRepository: inner, revoker: revoker, now: time.Now}
}

func (r *RevokingUserRepository) SetActive(ctx context.Context, id string, active bool) (*entity.User, error) {
	u, err := r.UserRepository.SetActive(ctx, id, active)
	if err == nil && !active {
		r.revoke(ctx, id)
	}
	return u, err
}

func (r *RevokingUserRepository) Delete(ctx context.Context, id string) error {
	err := r.UserRepository.Delete(ctx, id)
	if err == nil {
		r.revoke(ctx, id)
	}
	return err
}

func (r *RevokingUserRepository) revoke(ctx context.Context, id string) {
	if err := r.revoker.Revoke(ctx, id, r.now()); err != nil {
		slog.Warn("failed to revoke tokens", "user_id", id, "error", err)
	}
}
