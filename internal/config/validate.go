package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("ratelimit: %w", err)
	}
	if err := c.TempLog.validate(); err != nil {
		return fmt.Errorf("templog: %w", err)
	}
	return nil
}

func (s *ServerConfig) validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535 (got %d)", s.Port)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	if strings.TrimSpace(d.DSN) == "" {
		return fmt.Errorf("dsn is required")
	}
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be in 0..max_conns (got %d)", d.MinConns)
	}
	return nil
}

// The secret may be absent; requests then fail closed with 503.
func (a *AuthConfig) validate() error {
	if a.JWTSecret != "" && len(a.JWTSecret) < 32 {
		return fmt.Errorf("jwt_secret must be at least 32 characters (got %d)", len(a.JWTSecret))
	}
	if a.AdminTokenTTL <= 0 || a.DriverTokenTTL <= 0 {
		return fmt.Errorf("token ttls must be > 0")
	}
	if a.AdminPasswordHash != "" && !strings.HasPrefix(a.AdminPasswordHash, "$2") {
		return fmt.Errorf("admin_password_hash must be a bcrypt hash")
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("format must be json or console (got %q)", l.Format)
	}
	if l.File != "" && l.MaxSizeMB <= 0 {
		return fmt.Errorf("max_size_mb must be > 0 when file is set (got %d)", l.MaxSizeMB)
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if r.PublicPerMinute <= 0 {
		return fmt.Errorf("public_per_minute must be > 0 (got %d)", r.PublicPerMinute)
	}
	if r.LoginPerMinute <= 0 {
		return fmt.Errorf("login_per_minute must be > 0 (got %d)", r.LoginPerMinute)
	}
	return nil
}

func (t *TempLogConfig) validate() error {
	if t.MaxHistoryWindowDays <= 0 {
		return fmt.Errorf("max_history_window_days must be > 0 (got %d)", t.MaxHistoryWindowDays)
	}
	if t.HistoryWindowDays <= 0 || t.HistoryWindowDays > t.MaxHistoryWindowDays {
		return fmt.Errorf("history_window_days must be in 1..%d (got %d)", t.MaxHistoryWindowDays, t.HistoryWindowDays)
	}
	if t.StaleAfterHours <= 0 {
		return fmt.Errorf("stale_after_hours must be > 0 (got %d)", t.StaleAfterHours)
	}
	return nil
}
