// Command seed creates the demo admin account if it does not exist yet.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	authadapters "cleanneat_backend/internal/feature/auth/adapters"
	"cleanneat_backend/internal/feature/auth/domain/entity"
	"cleanneat_backend/internal/feature/auth/usecase"
	"cleanneat_backend/internal/platform/config"
	"cleanneat_backend/internal/platform/db"
	"cleanneat_backend/internal/platform/logger"
	"cleanneat_backend/internal/platform/password"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

const (
	adminEmail = "admin@admin.com"
	adminName  = "Admin"
)

type hasher interface {
	Hash(plain string) (string, error)
}

// seedAdmin は管理者が未登録のときだけ作成します。作成した場合 true を返します。
func seedAdmin(ctx context.Context, users usecase.UserRepository, h hasher, plain string) (bool, error) {
	_, err := users.FindByEmail(ctx, adminEmail)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, usecase.ErrUserNotFound) {
		return false, fmt.Errorf("failed to look up admin: %w", err)
	}

	digest, err := h.Hash(plain)
	if err != nil {
		return false, fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := &entity.User{
		ID:           uuid.NewString(),
		Name:         adminName,
		Email:        adminEmail,
		PasswordHash: digest,
		IsActive:     true,
	}
	if err := users.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("failed to create admin: %w", err)
	}
	return true, nil
}

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	cfg, err := config.LoadSeed()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger.Setup(cfg.LogLevel, false)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	gdb, err := db.OpenDB(ctx, db.Config{Driver: cfg.Database.Driver, DSN: cfg.Database.URL})
	if err != nil {
		slog.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(gdb); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	created, err := seedAdmin(ctx, authadapters.NewUserMySQL(gdb), password.NewHasher(password.DefaultCost), cfg.AdminPassword)
	if err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
	if !created {
		slog.Info("admin already exists", "email", adminEmail)
		return
	}
	slog.Info("admin created", "email", adminEmail)
}
