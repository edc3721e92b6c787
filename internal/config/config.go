// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/olegiv/portfolio-go/internal/scheduler"
)

// Environments
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Default API base URLs per environment.
const (
	ProductionAPIURL  = "https://portfolio-backend1-fcev.onrender.com/api"
	DevelopmentAPIURL = "http://localhost:5000/api"
)

// knownWeakSecrets contains default/example secrets that must be rejected in production.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	Env            string `env:"PORTFOLIO_ENV" envDefault:"development"`
	APIURLOverride string `env:"PORTFOLIO_API_URL"` // empty selects the default for Env
	SessionSecret  string `env:"PORTFOLIO_SESSION_SECRET,required"`
	ServerHost     string `env:"PORTFOLIO_SERVER_HOST" envDefault:"localhost"`
	ServerPort     int    `env:"PORTFOLIO_SERVER_PORT" envDefault:"8080"`
	LogLevel       string `env:"PORTFOLIO_LOG_LEVEL" envDefault:"info"`

	// Backend
	APITimeout time.Duration `env:"PORTFOLIO_API_TIMEOUT" envDefault:"30s"` // per-request timeout

	// Optional cron spec for re-fetching projects, e.g. "*/15 * * * *"
	RefreshSchedule string `env:"PORTFOLIO_REFRESH_SCHEDULE"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// APIURL returns the REST backend base URL: the override when set,
// otherwise the default for the environment.
func (c Config) APIURL() string {
	if u := strings.TrimSpace(c.APIURLOverride); u != "" {
		return strings.TrimRight(u, "/")
	}
	if c.Env == EnvProduction {
		return ProductionAPIURL
	}
	return DevelopmentAPIURL
}

// RefreshEnabled returns true if a projects refresh schedule is configured.
func (c Config) RefreshEnabled() bool {
	return strings.TrimSpace(c.RefreshSchedule) != ""
}

// MinSessionSecretLength is the minimum required length for the session secret.
// The CSRF protection keys on it and needs 32 bytes.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Env != EnvDevelopment && cfg.Env != EnvProduction {
		return nil, fmt.Errorf("PORTFOLIO_ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, cfg.Env)
	}

	// Validate session secret length
	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("PORTFOLIO_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	// Reject known weak/default secrets
	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("PORTFOLIO_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	// Warn about low-entropy secrets
	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("PORTFOLIO_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	if u, err := url.Parse(cfg.APIURL()); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("PORTFOLIO_API_URL must be an absolute http(s) URL, got %q", cfg.APIURLOverride)
	}

	if cfg.APITimeout <= 0 {
		return nil, fmt.Errorf("PORTFOLIO_API_TIMEOUT must be positive, got %s", cfg.APITimeout)
	}

	if cfg.RefreshEnabled() {
		if err := scheduler.ValidateSchedule(cfg.RefreshSchedule); err != nil {
			return nil, fmt.Errorf("PORTFOLIO_REFRESH_SCHEDULE: %w", err)
		}
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
