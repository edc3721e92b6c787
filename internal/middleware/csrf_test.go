// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

var testAuthKey = []byte("12345678901234567890123456789012") // 32-byte key

func TestDefaultCSRFConfig_Development(t *testing.T) {
	cfg := DefaultCSRFConfig(testAuthKey, true, "0.0.0.0:3000")

	if len(cfg.AuthKey) != 32 {
		t.Errorf("expected 32-byte AuthKey, got %d bytes", len(cfg.AuthKey))
	}

	expectedOrigins := map[string]bool{
		"0.0.0.0:3000":   true,
		"localhost:8080": true,
		"127.0.0.1:8080": true,
	}
	if len(cfg.TrustedOrigins) != len(expectedOrigins) {
		t.Errorf("expected %d TrustedOrigins in dev mode, got %v", len(expectedOrigins), cfg.TrustedOrigins)
	}
	for _, origin := range cfg.TrustedOrigins {
		if !expectedOrigins[origin] {
			t.Errorf("unexpected TrustedOrigin: %s", origin)
		}
		// csrf library expects host:port, not full URLs
		if strings.HasPrefix(origin, "http") {
			t.Errorf("TrustedOrigin should be host:port, not full URL: %s", origin)
		}
	}
}

func TestDefaultCSRFConfig_DevelopmentDeduplicates(t *testing.T) {
	cfg := DefaultCSRFConfig(testAuthKey, true, "localhost:8080")
	if len(cfg.TrustedOrigins) != 2 {
		t.Errorf("expected 2 TrustedOrigins, got %v", cfg.TrustedOrigins)
	}
}

func TestDefaultCSRFConfig_Production(t *testing.T) {
	cfg := DefaultCSRFConfig(testAuthKey, false, "localhost:8080")

	if len(cfg.TrustedOrigins) != 0 {
		t.Errorf("expected no TrustedOrigins in production, got %d", len(cfg.TrustedOrigins))
	}
}

func TestCSRF_Protect(t *testing.T) {
	handler := CSRF(DefaultCSRFConfig(testAuthKey, false, "localhost:8080"))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	tests := []struct {
		name         string
		method       string
		secFetchSite string
		expectedCode int
	}{
		{"same-origin post", http.MethodPost, "same-origin", http.StatusOK},
		{"cross-site post", http.MethodPost, "cross-site", http.StatusForbidden},
		{"cross-site get", http.MethodGet, "cross-site", http.StatusOK},
		{"user navigation post", http.MethodPost, "none", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/projects", nil)
			req.Header.Set("Sec-Fetch-Site", tt.secFetchSite)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != tt.expectedCode {
				t.Errorf("status = %d, want %d", rr.Code, tt.expectedCode)
			}
		})
	}
}

func TestCSRF_CustomErrorHandler(t *testing.T) {
	cfg := DefaultCSRFConfig(testAuthKey, false, "")
	cfg.ErrorHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := CSRF(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodPost, "/projects", nil)
	req.Header.Set("Sec-Fetch-Site", "cross-site")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusTeapot)
	}
}
