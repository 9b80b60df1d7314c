package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	TempLog   TempLogConfig   `yaml:"templog"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token signing and login settings.
// An empty JWTSecret keeps the server up but every authenticated route
// answers "service not configured".
type AuthConfig struct {
	JWTSecret         string        `yaml:"jwt_secret"          env:"AUTH_JWT_SECRET"`
	JWTIssuer         string        `yaml:"jwt_issuer"          env:"AUTH_JWT_ISSUER"          env-default:"raptor-portal"`
	AdminTokenTTL     time.Duration `yaml:"admin_token_ttl"     env:"AUTH_ADMIN_TOKEN_TTL"     env-default:"12h"`
	DriverTokenTTL    time.Duration `yaml:"driver_token_ttl"    env:"AUTH_DRIVER_TOKEN_TTL"    env-default:"168h"`
	AdminPasswordHash string        `yaml:"admin_password_hash" env:"AUTH_ADMIN_PASSWORD_HASH"`
}

// SigningConfigured reports whether tokens can be issued and verified.
func (c AuthConfig) SigningConfigured() bool {
	return c.JWTSecret != ""
}

// AdminLoginConfigured reports whether password login for admins is possible.
func (c AuthConfig) AdminLoginConfigured() bool {
	return c.SigningConfigured() && strings.HasPrefix(c.AdminPasswordHash, "$2")
}

// LogConfig holds logging settings. File is optional; when set, output is
// written there with size-based rotation instead of stderr.
type LogConfig struct {
	Level      string `yaml:"level"        env:"LOG_LEVEL"        env-default:"info"`
	Format     string `yaml:"format"       env:"LOG_FORMAT"       env-default:"json"`
	File       string `yaml:"file"         env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"  env:"LOG_MAX_SIZE_MB"  env-default:"100"`
	MaxBackups int    `yaml:"max_backups"  env:"LOG_MAX_BACKUPS"  env-default:"5"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS" env-default:"30"`
}

// RateLimitConfig bounds unauthenticated traffic per client IP.
type RateLimitConfig struct {
	PublicPerMinute int `yaml:"public_per_minute" env:"RATELIMIT_PUBLIC_PER_MINUTE" env-default:"60"`
	LoginPerMinute  int `yaml:"login_per_minute"  env:"RATELIMIT_LOGIN_PER_MINUTE"  env-default:"10"`
}

// TempLogConfig holds driver temperature-log settings.
type TempLogConfig struct {
	// AllowMultipleActive permits a driver to hold several in_progress
	// sessions at once. When false, createSession fails while one is open.
	AllowMultipleActive  bool `yaml:"allow_multiple_active"   env:"TEMPLOG_ALLOW_MULTIPLE_ACTIVE"   env-default:"true"`
	HistoryWindowDays    int  `yaml:"history_window_days"     env:"TEMPLOG_HISTORY_WINDOW_DAYS"     env-default:"30"`
	MaxHistoryWindowDays int  `yaml:"max_history_window_days" env:"TEMPLOG_MAX_HISTORY_WINDOW_DAYS" env-default:"365"`
	StaleAfterHours      int  `yaml:"stale_after_hours"       env:"TEMPLOG_STALE_AFTER_HOURS"       env-default:"36"`
}
