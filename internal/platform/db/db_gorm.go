package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config describes the database connection.
type Config struct {
	Driver string // mysql | postgres | sqlite
	DSN    string

	// ConnectTimeout bounds the retry loop; zero means 60s.
	ConnectTimeout time.Duration
	// RetryInterval is the pause between attempts; zero means 3s.
	RetryInterval time.Duration
}

// Dialector returns the gorm dialector for cfg.Driver.
func Dialector(cfg Config) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "mysql", "":
		return gmysql.Open(cfg.DSN), nil
	case "postgres":
		return postgres.Open(cfg.DSN), nil
	case "sqlite":
		return sqlite.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// GormConfig returns the gorm settings shared by the server, the seed
// command and tests. Driver errors are translated so adapters can match
// gorm.ErrDuplicatedKey.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
}

// OpenDB connects to the database, retrying until the connect timeout
// elapses (the database container often starts after the API).
func OpenDB(ctx context.Context, cfg Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	interval := cfg.RetryInterval
	if interval <= 0 {
		interval = 3 * time.Second
	}

	deadline := time.Now().Add(timeout)
	for {
		db, err := gorm.Open(dialector, GormConfig())
		if err == nil {
			if err = ping(ctx, db); err == nil {
				slog.Info("database connection successful", "driver", cfg.Driver)
				return db, nil
			}
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "driver", cfg.Driver, "error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}
}

func ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
