// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStripTrailingSlash(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantCode int
		wantLoc  string
	}{
		{"root untouched", "/", http.StatusOK, ""},
		{"no slash untouched", "/projects", http.StatusOK, ""},
		{"trailing slash", "/projects/", http.StatusMovedPermanently, "/projects"},
		{"keeps query", "/projects/?q=go&category=AI%2FML", http.StatusMovedPermanently, "/projects?q=go&category=AI%2FML"},
		{"nested", "/projects/1/edit/", http.StatusMovedPermanently, "/projects/1/edit"},
		{"protocol relative", "//evil.example.com/", http.StatusMovedPermanently, "/evil.example.com"},
	}

	handler := StripTrailingSlash(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if rr.Code != tt.wantCode {
				t.Errorf("Status = %d, want %d", rr.Code, tt.wantCode)
			}
			if loc := rr.Header().Get("Location"); loc != tt.wantLoc {
				t.Errorf("Location = %q, want %q", loc, tt.wantLoc)
			}
		})
	}
}
