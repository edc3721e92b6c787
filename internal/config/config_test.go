// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"os"
	"testing"
	"time"
)

const testSecret = "test-secret-key-32-bytes-long!!!"

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set %s: %v", key, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	// Clear environment and set only required var
	os.Clearenv()
	setEnv(t, "PORTFOLIO_SESSION_SECRET", testSecret)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Check defaults
	if cfg.ServerHost != "localhost" {
		t.Errorf("ServerHost = %q, want %q", cfg.ServerHost, "localhost")
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 8080)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.APITimeout != 30*time.Second {
		t.Errorf("APITimeout = %v, want %v", cfg.APITimeout, 30*time.Second)
	}
	if cfg.APIURL() != DevelopmentAPIURL {
		t.Errorf("APIURL() = %q, want %q", cfg.APIURL(), DevelopmentAPIURL)
	}
	if cfg.RefreshEnabled() {
		t.Error("RefreshEnabled() = true, want false")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	customSecret := "custom-secret-key-32-bytes-long!"
	setEnv(t, "PORTFOLIO_SESSION_SECRET", customSecret)
	setEnv(t, "PORTFOLIO_SERVER_HOST", "0.0.0.0")
	setEnv(t, "PORTFOLIO_SERVER_PORT", "3000")
	setEnv(t, "PORTFOLIO_ENV", "production")
	setEnv(t, "PORTFOLIO_LOG_LEVEL", "debug")
	setEnv(t, "PORTFOLIO_API_URL", "https://api.example.com/v1/")
	setEnv(t, "PORTFOLIO_API_TIMEOUT", "5s")
	setEnv(t, "PORTFOLIO_REFRESH_SCHEDULE", "*/15 * * * *")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.SessionSecret != customSecret {
		t.Errorf("SessionSecret = %q, want %q", cfg.SessionSecret, customSecret)
	}
	if cfg.ServerHost != "0.0.0.0" {
		t.Errorf("ServerHost = %q, want %q", cfg.ServerHost, "0.0.0.0")
	}
	if cfg.ServerPort != 3000 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 3000)
	}
	if cfg.Env != "production" {
		t.Errorf("Env = %q, want %q", cfg.Env, "production")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.APIURL() != "https://api.example.com/v1" {
		t.Errorf("APIURL() = %q, want %q", cfg.APIURL(), "https://api.example.com/v1")
	}
	if cfg.APITimeout != 5*time.Second {
		t.Errorf("APITimeout = %v, want %v", cfg.APITimeout, 5*time.Second)
	}
	if !cfg.RefreshEnabled() {
		t.Error("RefreshEnabled() = false, want true")
	}
}

func TestLoad_RequiredSessionSecret(t *testing.T) {
	os.Clearenv()
	// Don't set PORTFOLIO_SESSION_SECRET

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should fail when PORTFOLIO_SESSION_SECRET is not set")
	}
}

func TestLoad_SessionSecretTooShort(t *testing.T) {
	tests := []struct {
		name   string
		secret string
	}{
		{"empty", ""},
		{"short", "short"},
		{"31_bytes", "1234567890123456789012345678901"}, // 31 bytes
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			setEnv(t, "PORTFOLIO_SESSION_SECRET", tt.secret)

			_, err := Load()
			if err == nil {
				t.Fatalf("Load() should fail with %d-byte secret", len(tt.secret))
			}
		})
	}
}

func TestLoad_SessionSecretMinimumLength(t *testing.T) {
	os.Clearenv()
	// Exactly 32 bytes should work
	secret32 := "12345678901234567890123456789012"
	setEnv(t, "PORTFOLIO_SESSION_SECRET", secret32)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should succeed with 32-byte secret: %v", err)
	}
	if cfg.SessionSecret != secret32 {
		t.Errorf("SessionSecret = %q, want %q", cfg.SessionSecret, secret32)
	}
}

func TestLoad_WeakSecretRejected(t *testing.T) {
	for _, weak := range knownWeakSecrets {
		os.Clearenv()
		setEnv(t, "PORTFOLIO_SESSION_SECRET", weak)
		if _, err := Load(); err == nil {
			t.Errorf("Load() should reject %q", weak)
		}
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown env", "PORTFOLIO_ENV", "staging"},
		{"relative api url", "PORTFOLIO_API_URL", "/api"},
		{"ftp api url", "PORTFOLIO_API_URL", "ftp://example.com/api"},
		{"bad timeout", "PORTFOLIO_API_TIMEOUT", "soon"},
		{"zero timeout", "PORTFOLIO_API_TIMEOUT", "0s"},
		{"bad port", "PORTFOLIO_SERVER_PORT", "http"},
		{"bad schedule", "PORTFOLIO_REFRESH_SCHEDULE", "every minute"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			setEnv(t, "PORTFOLIO_SESSION_SECRET", testSecret)
			setEnv(t, tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Fatalf("Load() should fail with %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"development", true},
		{"production", false},
		{"staging", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := Config{Env: tt.env}
			if got := cfg.IsDevelopment(); got != tt.want {
				t.Errorf("IsDevelopment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_ServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"localhost", 8080, "localhost:8080"},
		{"0.0.0.0", 3000, "0.0.0.0:3000"},
		{"127.0.0.1", 443, "127.0.0.1:443"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			cfg := Config{ServerHost: tt.host, ServerPort: tt.port}
			if got := cfg.ServerAddr(); got != tt.want {
				t.Errorf("ServerAddr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfig_APIURL(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		override string
		want     string
	}{
		{"development default", "development", "", DevelopmentAPIURL},
		{"production default", "production", "", ProductionAPIURL},
		{"override", "production", "http://backend:9000/api", "http://backend:9000/api"},
		{"override trailing slash", "development", "http://backend/api/", "http://backend/api"},
		{"blank override", "production", "  ", ProductionAPIURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Env: tt.env, APIURLOverride: tt.override}
			if got := cfg.APIURL(); got != tt.want {
				t.Errorf("APIURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasMinimumEntropy(t *testing.T) {
	tests := []struct {
		secret string
		want   bool
	}{
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", false},
		{"abcdefABCDEF0123456789abcdefABCD", true},
		{"lowercase-and-symbols-only-here!", false},
		{testSecret, true},
	}

	for _, tt := range tests {
		if got := hasMinimumEntropy(tt.secret); got != tt.want {
			t.Errorf("hasMinimumEntropy(%q) = %v, want %v", tt.secret, got, tt.want)
		}
	}
}
