package router

import (
	actionloghandler "cleanneat_backend/internal/feature/actionlog/transport/handler"
	applicationshandler "cleanneat_backend/internal/feature/applications/transport/handler"
	authhandler "cleanneat_backend/internal/feature/auth/transport/handler"
	faqshandler "cleanneat_backend/internal/feature/faqs/transport/handler"
	inquirieshandler "cleanneat_backend/internal/feature/inquiries/transport/handler"
	serviceshandler "cleanneat_backend/internal/feature/services/transport/handler"
	settingshandler "cleanneat_backend/internal/feature/settings/transport/handler"
	testimonialshandler "cleanneat_backend/internal/feature/testimonials/transport/handler"
	uploadhandler "cleanneat_backend/internal/feature/upload/transport/handler"
	"cleanneat_backend/internal/platform/config"
	"cleanneat_backend/internal/platform/http/handler"
	"cleanneat_backend/internal/platform/http/respond"
	jwtmw "cleanneat_backend/internal/platform/jwt"
	"cleanneat_backend/internal/platform/logger"
	"cleanneat_backend/internal/platform/metrics"
	"cleanneat_backend/internal/shared/ratelimiter"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Handlers はルーターに登録する全ハンドラーです。
type Handlers struct {
	Auth         *authhandler.AuthHandler
	Users        *authhandler.UserHandler
	Services     *serviceshandler.ServiceHandler
	Faqs         *faqshandler.FaqHandler
	Testimonials *testimonialshandler.TestimonialHandler
	Inquiries    *inquirieshandler.InquiryHandler
	Applications *applicationshandler.ApplicationHandler
	Settings     *settingshandler.SettingsHandler
	Upload       *uploadhandler.UploadHandler
	ActionLogs   *actionloghandler.ActionLogHandler
	Readiness    *handler.ReadinessHandler
}

// Options はミドルウェアの設定です。
type Options struct {
	Verifier    jwtmw.Verifier
	// Revocations is nil when Redis is not configured.
	Revocations jwtmw.RevocationChecker
	Metrics     *metrics.Metrics
	CORSOrigins []string
	RateLimit   config.RateLimitConfig
	Production  bool
}

func NewRouter(h Handlers, o Options) *gin.Engine {
	r := gin.New()

	r.Use(gin.CustomRecovery(respond.Recovery))
	r.Use(o.Metrics.Middleware())
	if o.Production {
		r.Use(logger.AccessLog())
	} else {
		r.Use(gin.Logger())
	}
	r.Use(newCORS(o.CORSOrigins, o.Production))
	r.NoRoute(respond.NotFound)

	// 認証不要
	// 導通確認用
	r.Any("/healthz", handler.Health)
	r.GET("/readyz", h.Readiness.Ready)
	r.GET("/metrics", o.Metrics.Handler())

	var authOpts []jwtmw.MiddlewareOption
	if o.Revocations != nil {
		authOpts = append(authOpts, jwtmw.WithRevocations(o.Revocations))
	}
	authRequired := jwtmw.AuthRequired(o.Verifier, authOpts...)

	// アップロード済みファイルは /api/v1 の外で配信
	r.GET("/uploads/:filename", authRequired, h.Upload.Serve)

	api := r.Group("/api/v1")
	api.Use(ratelimiter.Middleware(ratelimiter.NewRateLimiter(rate.Limit(o.RateLimit.RPS), o.RateLimit.Burst)))

	// ログイン（JWT 発行）はブルートフォース対策で別枠の制限
	loginLimit := ratelimiter.NewRateLimiter(ratelimiter.PerMinute(o.RateLimit.LoginPerMinute), o.RateLimit.LoginPerMinute)
	api.POST("/login", ratelimiter.Middleware(loginLimit), h.Auth.Login)

	// 公開フォーム・公開コンテンツ
	api.GET("/services", h.Services.List)
	api.GET("/services/:id", h.Services.Get)
	api.GET("/faqs", h.Faqs.List)
	api.GET("/faqs/:id", h.Faqs.Get)
	api.POST("/testimonials", h.Testimonials.Create)
	api.GET("/testimonials/public", h.Testimonials.ListPublished)
	api.POST("/inquiries", h.Inquiries.Create)
	api.POST("/applications", h.Applications.Create)
	api.GET("/settings/public", h.Settings.Public)
	api.GET("/settings/who-we-support", h.Settings.WhoWeSupport)
	api.POST("/upload", h.Upload.Upload)

	// 認証必須のルート
	auth := api.Group("")
	auth.Use(authRequired)
	{
		auth.POST("/users", h.Users.Create)
		auth.GET("/users", h.Users.List)
		auth.PUT("/users/me/password", h.Users.ChangePassword)
		auth.PATCH("/users/:id/deactivate", h.Users.Deactivate)
		auth.PATCH("/users/:id/reactivate", h.Users.Reactivate)
		auth.DELETE("/users/:id", h.Users.Delete)

		auth.POST("/services", h.Services.Create)
		auth.PUT("/services/:id", h.Services.Update)
		auth.DELETE("/services/:id", h.Services.Delete)

		auth.POST("/faqs", h.Faqs.Create)
		auth.PUT("/faqs/:id", h.Faqs.Update)
		auth.DELETE("/faqs/:id", h.Faqs.Delete)

		auth.GET("/testimonials", h.Testimonials.List)
		auth.PATCH("/testimonials/:id", h.Testimonials.Update)
		auth.DELETE("/testimonials/:id", h.Testimonials.Delete)

		auth.GET("/inquiries", h.Inquiries.List)
		auth.PATCH("/inquiries/:id/read", h.Inquiries.MarkRead)
		auth.PATCH("/inquiries/:id/status", h.Inquiries.UpdateStatus)
		auth.POST("/inquiries/:id/notes", h.Inquiries.AddNote)
		auth.DELETE("/inquiries/:id/notes/:index", h.Inquiries.DeleteNote)

		auth.GET("/applications", h.Applications.List)
		auth.PATCH("/applications/:id/read", h.Applications.MarkRead)
		auth.PATCH("/applications/:id/status", h.Applications.UpdateStatus)
		auth.POST("/applications/:id/notes", h.Applications.AddNote)
		auth.DELETE("/applications/:id/notes/:index", h.Applications.DeleteNote)

		auth.GET("/settings", h.Settings.Get)
		auth.POST("/settings", h.Settings.Update)
		auth.PATCH("/settings/who-we-support", h.Settings.UpdateWhoWeSupport)

		auth.GET("/action-logs", h.ActionLogs.List)
	}

	return r
}
