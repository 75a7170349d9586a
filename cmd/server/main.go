package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"cleanneat_backend/internal/app/di"
	"cleanneat_backend/internal/app/router"
	actionlogadapters "cleanneat_backend/internal/feature/actionlog/adapters"
	actionloghandler "cleanneat_backend/internal/feature/actionlog/transport/handler"
	actionlogusecase "cleanneat_backend/internal/feature/actionlog/usecase"
	applicationsadapters "cleanneat_backend/internal/feature/applications/adapters"
	applicationshandler "cleanneat_backend/internal/feature/applications/transport/handler"
	applicationsusecase "cleanneat_backend/internal/feature/applications/usecase"
	authadapters "cleanneat_backend/internal/feature/auth/adapters"
	authhandler "cleanneat_backend/internal/feature/auth/transport/handler"
	authusecase "cleanneat_backend/internal/feature/auth/usecase"
	faqsadapters "cleanneat_backend/internal/feature/faqs/adapters"
	faqshandler "cleanneat_backend/internal/feature/faqs/transport/handler"
	faqsusecase "cleanneat_backend/internal/feature/faqs/usecase"
	inquiriesadapters "cleanneat_backend/internal/feature/inquiries/adapters"
	inquirieshandler "cleanneat_backend/internal/feature/inquiries/transport/handler"
	inquiriesusecase "cleanneat_backend/internal/feature/inquiries/usecase"
	servicesadapters "cleanneat_backend/internal/feature/services/adapters"
	serviceshandler "cleanneat_backend/internal/feature/services/transport/handler"
	servicesusecase "cleanneat_backend/internal/feature/services/usecase"
	settingshandler "cleanneat_backend/internal/feature/settings/transport/handler"
	settingsusecase "cleanneat_backend/internal/feature/settings/usecase"
	testimonialshandler "cleanneat_backend/internal/feature/testimonials/transport/handler"
	testimonialsusecase "cleanneat_backend/internal/feature/testimonials/usecase"
	uploadadapters "cleanneat_backend/internal/feature/upload/adapters"
	uploadhandler "cleanneat_backend/internal/feature/upload/transport/handler"
	uploadusecase "cleanneat_backend/internal/feature/upload/usecase"
	"cleanneat_backend/internal/platform/config"
	infradb "cleanneat_backend/internal/platform/db"
	"cleanneat_backend/internal/platform/http/handler"
	jwtmw "cleanneat_backend/internal/platform/jwt"
	"cleanneat_backend/internal/platform/logger"
	"cleanneat_backend/internal/platform/metrics"
	"cleanneat_backend/internal/platform/password"
	infraredis "cleanneat_backend/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Server.LogLevel, cfg.Server.IsProduction())
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	db, err := infradb.OpenDB(ctx, infradb.Config{Driver: cfg.Database.Driver, DSN: cfg.Database.URL})
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()
	if cfg.Database.RunMigrations {
		if err := infradb.Migrate(db); err != nil {
			return err
		}
	}

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		tmp, err := infraredis.NewRedisClient(ctx, infraredis.Options{Addr: cfg.Redis.Addr(), Password: cfg.Redis.Password})
		if err != nil {
			slog.Warn("Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	m := metrics.New()
	mail, err := di.NewMailer(cfg.Mail, m)
	if err != nil {
		return err
	}
	issuer, err := jwtmw.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)
	if err != nil {
		return err
	}
	hasher := password.NewHasher(password.DefaultCost)

	// Repository
	userRepo, revocations := di.NewUserRepository(rdb, cfg.Auth.JWTTTL, db)
	directory := authadapters.NewUserMySQL(db)
	testimonialRepo := di.NewTestimonialRepository(rdb, cfg.Redis.CacheTTL, db)
	settingsRepo := di.NewSettingsRepository(rdb, cfg.Redis.CacheTTL, db)

	// Usecase
	actionLogUC := actionlogusecase.NewActionLogUsecase(actionlogadapters.NewActionLogMySQL(db), m)
	authUC := authusecase.NewAuthUsecase(userRepo, issuer, hasher, actionLogUC, m)
	userUC := authusecase.NewUserUsecase(userRepo, hasher, mail, actionLogUC)
	serviceUC := servicesusecase.NewServiceUsecase(servicesadapters.NewServiceMySQL(db), directory, actionLogUC)
	faqUC := faqsusecase.NewFaqUsecase(faqsadapters.NewFaqMySQL(db), actionLogUC)
	testimonialUC := testimonialsusecase.NewTestimonialUsecase(testimonialRepo, actionLogUC)
	inquiryUC := inquiriesusecase.NewInquiryUsecase(inquiriesadapters.NewInquiryMySQL(db), mail, directory, actionLogUC)
	applicationUC := applicationsusecase.NewApplicationUsecase(applicationsadapters.NewApplicationMySQL(db), mail, directory, actionLogUC)
	settingsUC := settingsusecase.NewSettingsUsecase(settingsRepo, actionLogUC)
	uploadUC := uploadusecase.NewUploadUsecase(uploadadapters.NewLocalStore(cfg.Upload.Dir))

	// 依存先の疎通確認
	checks := map[string]handler.Pinger{"database": handler.PingFunc(sqlDB.PingContext)}
	if rdb != nil {
		checks["redis"] = handler.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	}

	// ルータ生成
	r := router.NewRouter(router.Handlers{
		Auth:         authhandler.NewAuthHandler(authUC),
		Users:        authhandler.NewUserHandler(userUC),
		Services:     serviceshandler.NewServiceHandler(serviceUC),
		Faqs:         faqshandler.NewFaqHandler(faqUC),
		Testimonials: testimonialshandler.NewTestimonialHandler(testimonialUC),
		Inquiries:    inquirieshandler.NewInquiryHandler(inquiryUC),
		Applications: applicationshandler.NewApplicationHandler(applicationUC),
		Settings:     settingshandler.NewSettingsHandler(settingsUC),
		Upload:       uploadhandler.NewUploadHandler(uploadUC, cfg.Upload.PublicURL),
		ActionLogs:   actionloghandler.NewActionLogHandler(actionLogUC),
		Readiness:    handler.NewReadinessHandler(checks),
	}, router.Options{
		Verifier:    issuer,
		Revocations: revocations,
		Metrics:     m,
		CORSOrigins: cfg.CORSOrigins,
		RateLimit:   cfg.RateLimit,
		Production:  cfg.Server.IsProduction(),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
