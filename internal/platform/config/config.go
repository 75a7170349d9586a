// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// MinJWTSecretLength is enforced once, at startup.
const MinJWTSecretLength = 32

// Config is the fully validated process configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Redis     RedisConfig
	Mail      MailConfig
	Upload    UploadConfig
	RateLimit RateLimitConfig
	// CORSOrigins lists allowed origins; "*.example.com" matches subdomains.
	CORSOrigins []string
}

type ServerConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// IsProduction reports whether APP_ENV is production.
func (s ServerConfig) IsProduction() bool { return s.Env == "production" }

type DatabaseConfig struct {
	Driver        string
	URL           string
	RunMigrations bool
}

type AuthConfig struct {
	JWTSecret string
	JWTTTL    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	CacheTTL time.Duration
}

// Enabled reports whether a Redis host was configured.
func (r RedisConfig) Enabled() bool { return r.Host != "" }

// Addr returns host:port.
func (r RedisConfig) Addr() string { return fmt.Sprintf("%s:%d", r.Host, r.Port) }

type MailConfig struct {
	Provider       string
	From           string
	FromName       string
	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPass       string
	MailgunDomain  string
	MailgunAPIKey  string
	SendGridAPIKey string
	Timeout        time.Duration
}

type UploadConfig struct {
	Dir       string
	PublicURL string
}

type RateLimitConfig struct {
	RPS            float64
	Burst          int
	LoginPerMinute int
}

var (
	envs      = []string{"development", "production", "test"}
	levels    = []string{"debug", "info", "warn", "error"}
	drivers   = []string{"mysql", "postgres", "sqlite"}
	providers = []string{"none", "smtp", "mailgun", "sendgrid"}
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", "mysql")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("RUN_MIGRATIONS", false)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", "168h")
	v.SetDefault("REDIS_HOST", "")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("CACHE_TTL", "5m")
	v.SetDefault("CORS_ORIGIN", "http://localhost:5173")
	v.SetDefault("MAIL_PROVIDER", "none")
	v.SetDefault("MAIL_FROM", "")
	v.SetDefault("MAIL_FROM_NAME", "Clean Neat")
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USER", "")
	v.SetDefault("SMTP_PASS", "")
	v.SetDefault("MAILGUN_DOMAIN", "")
	v.SetDefault("MAILGUN_API_KEY", "")
	v.SetDefault("SENDGRID_API_KEY", "")
	v.SetDefault("MAIL_TIMEOUT", "30s")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("PUBLIC_URL", "")
	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("LOGIN_RATE_LIMIT_PER_MIN", 10)
}

// Load reads the environment and validates it.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

// SeedConfig is what cmd/seed needs. JWT and mail settings are not required.
type SeedConfig struct {
	Database      DatabaseConfig
	LogLevel      string
	AdminPassword string
}

// LoadSeed reads the environment for the seed command.
func LoadSeed() (*SeedConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetDefault("SEED_ADMIN_PASSWORD", "password")
	v.AutomaticEnv()

	cfg := &SeedConfig{
		Database: DatabaseConfig{
			Driver: strings.ToLower(v.GetString("DB_DRIVER")),
			URL:    v.GetString("DATABASE_URL"),
		},
		LogLevel:      strings.ToLower(v.GetString("LOG_LEVEL")),
		AdminPassword: v.GetString("SEED_ADMIN_PASSWORD"),
	}
	if !slices.Contains(drivers, cfg.Database.Driver) {
		return nil, fmt.Errorf("DB_DRIVER must be one of %v", drivers)
	}
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "password"
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:     v.GetInt("PORT"),
			Env:      strings.ToLower(v.GetString("APP_ENV")),
			LogLevel: strings.ToLower(v.GetString("LOG_LEVEL")),
		},
		Database: DatabaseConfig{
			Driver:        strings.ToLower(v.GetString("DB_DRIVER")),
			URL:           v.GetString("DATABASE_URL"),
			RunMigrations: v.GetBool("RUN_MIGRATIONS"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
			JWTTTL:    v.GetDuration("JWT_TTL"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			CacheTTL: v.GetDuration("CACHE_TTL"),
		},
		Mail: MailConfig{
			Provider:       strings.ToLower(v.GetString("MAIL_PROVIDER")),
			From:           v.GetString("MAIL_FROM"),
			FromName:       v.GetString("MAIL_FROM_NAME"),
			SMTPHost:       v.GetString("SMTP_HOST"),
			SMTPPort:       v.GetInt("SMTP_PORT"),
			SMTPUser:       v.GetString("SMTP_USER"),
			SMTPPass:       v.GetString("SMTP_PASS"),
			MailgunDomain:  v.GetString("MAILGUN_DOMAIN"),
			MailgunAPIKey:  v.GetString("MAILGUN_API_KEY"),
			SendGridAPIKey: v.GetString("SENDGRID_API_KEY"),
			Timeout:        v.GetDuration("MAIL_TIMEOUT"),
		},
		Upload: UploadConfig{
			Dir:       v.GetString("UPLOAD_DIR"),
			PublicURL: strings.TrimRight(v.GetString("PUBLIC_URL"), "/"),
		},
		RateLimit: RateLimitConfig{
			RPS:            v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:          v.GetInt("RATE_LIMIT_BURST"),
			LoginPerMinute: v.GetInt("LOGIN_RATE_LIMIT_PER_MIN"),
		},
		CORSOrigins: splitList(v.GetString("CORS_ORIGIN")),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if !slices.Contains(envs, c.Server.Env) {
		return fmt.Errorf("APP_ENV must be one of %v", envs)
	}
	if !slices.Contains(levels, c.Server.LogLevel) {
		return fmt.Errorf("LOG_LEVEL must be one of %v", levels)
	}
	if !slices.Contains(drivers, c.Database.Driver) {
		return fmt.Errorf("DB_DRIVER must be one of %v", drivers)
	}
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if len(c.Auth.JWTSecret) < MinJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters", MinJWTSecretLength)
	}
	if c.Auth.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	if !slices.Contains(providers, c.Mail.Provider) {
		return fmt.Errorf("MAIL_PROVIDER must be one of %v", providers)
	}
	if err := c.Mail.validate(); err != nil {
		return err
	}
	for _, o := range c.CORSOrigins {
		if strings.HasPrefix(o, "*.") {
			continue
		}
		if u, err := url.Parse(o); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("CORS_ORIGIN entry %q is not a URL", o)
		}
	}
	if c.Upload.PublicURL != "" {
		if u, err := url.Parse(c.Upload.PublicURL); err != nil || u.Scheme == "" {
			return fmt.Errorf("PUBLIC_URL must be an absolute URL")
		}
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 || c.RateLimit.LoginPerMinute <= 0 {
		return fmt.Errorf("rate limits must be positive")
	}
	return nil
}

func (m MailConfig) validate() error {
	if m.Provider == "none" {
		return nil
	}
	if m.From == "" {
		return fmt.Errorf("MAIL_FROM is required when MAIL_PROVIDER=%s", m.Provider)
	}
	switch m.Provider {
	case "smtp":
		if m.SMTPHost == "" {
			return fmt.Errorf("SMTP_HOST is required when MAIL_PROVIDER=smtp")
		}
	case "mailgun":
		if m.MailgunDomain == "" || m.MailgunAPIKey == "" {
			return fmt.Errorf("MAILGUN_DOMAIN and MAILGUN_API_KEY are required when MAIL_PROVIDER=mailgun")
		}
	case "sendgrid":
		if m.SendGridAPIKey == "" {
			return fmt.Errorf("SENDGRID_API_KEY is required when MAIL_PROVIDER=sendgrid")
		}
	}
	if m.Timeout <= 0 {
		return fmt.Errorf("MAIL_TIMEOUT must be positive")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
