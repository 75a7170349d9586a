package router

import (
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// newCORS は許可オリジンを要求元にそのまま返すCORSミドルウェアを作成します。
// "*.example.com" は example.com 自身とそのサブドメインに一致します。
func newCORS(origins []string, production bool) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc: originAllowed(origins, production),
		AllowMethods:    []string{"GET", "HEAD", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin",
			"Access-Control-Request-Method", "Access-Control-Request-Headers",
		},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}

func originAllowed(origins []string, production bool) func(string) bool {
	return func(origin string) bool {
		u, err := url.Parse(origin)
		if err != nil || u.Host == "" {
			return false
		}
		host := strings.ToLower(u.Hostname())

		// 開発中は任意ポートの localhost を許可
		if !production && host == "localhost" {
			return true
		}
		for _, o := range origins {
			if domain, ok := strings.CutPrefix(o, "*."); ok {
				domain = strings.ToLower(domain)
				if host == domain || strings.HasSuffix(host, "."+domain) {
					return true
				}
				continue
			}
			if strings.EqualFold(strings.TrimSuffix(o, "/"), origin) {
				return true
			}
		}
		return false
	}
}
