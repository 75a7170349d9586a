// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	AuditWriteFailures prometheus.Counter
	MailFailures       *prometheus.CounterVec
	LoginFailures      prometheus.Counter
}

// New creates and registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cleanneat_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cleanneat_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		AuditWriteFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "cleanneat_audit_write_failures_total",
			Help: "Total number of action log entries that could not be written",
		}),
		MailFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cleanneat_mail_failures_total",
			Help: "Total number of e-mails that could not be sent, by kind",
		}, []string{"kind"}),
		LoginFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "cleanneat_login_failures_total",
			Help: "Total number of rejected login attempts",
		}),
	}
}

// IncrementAuditWriteFailures increments the audit failure counter by 1
func (m *Metrics) IncrementAuditWriteFailures() {
	m.AuditWriteFailures.Inc()
}

// IncrementMailFailures increments the mail failure counter for kind.
func (m *Metrics) IncrementMailFailures(kind string) {
	m.MailFailures.WithLabelValues(kind).Inc()
}

// IncrementLoginFailures increments the login failure counter by 1
func (m *Metrics) IncrementLoginFailures() {
	m.LoginFailures.Inc()
}

// Middleware records request count and latency per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
