// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/olegiv/portfolio-go/internal/apiclient"
	"github.com/olegiv/portfolio-go/internal/devapi"
	"github.com/olegiv/portfolio-go/internal/logging"
	"github.com/olegiv/portfolio-go/internal/store"
	"github.com/olegiv/portfolio-go/internal/testutil"
)

func newTestHealthHandler(t *testing.T, load bool) (*HealthHandler, *testutil.Backend, *store.Store) {
	t.Helper()
	backend := testutil.NewBackend(t, devapi.DemoSeed())
	st := store.New(apiclient.New(backend.URL), testutil.TestLoggerSilent())
	if load {
		_ = st.LoadAll(t.Context())
	}
	return NewHealthHandler(st, "v1.2.3", nil), backend, st
}

func decodeHealth(t *testing.T, w *httptest.ResponseRecorder) HealthStatus {
	t.Helper()
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	var status HealthStatus
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return status
}

func TestHealthHandler_Health(t *testing.T) {
	handler, _, _ := newTestHealthHandler(t, true)

	w := httptest.NewRecorder()
	handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assertStatus(t, w.Code, http.StatusOK)
	status := decodeHealth(t, w)
	if status.Status != healthStatusHealthy {
		t.Errorf("status = %q, want %q", status.Status, healthStatusHealthy)
	}
	if status.Version != "v1.2.3" {
		t.Errorf("version = %q, want v1.2.3", status.Version)
	}
	if status.System != nil {
		t.Error("system info should be omitted without verbose")
	}

	want := map[string]int{"projects": 2, "certificates": 1, "accomplishments": 1}
	for tab, count := range want {
		c, ok := status.Collections[tab]
		if !ok {
			t.Errorf("missing collection %q", tab)
			continue
		}
		if c.Count != count {
			t.Errorf("%s count = %d, want %d", tab, c.Count, count)
		}
		if c.LoadedAt == nil {
			t.Errorf("%s loaded_at should be set", tab)
		}
	}
}

func TestHealthHandler_Health_Starting(t *testing.T) {
	handler, _, _ := newTestHealthHandler(t, false)

	w := httptest.NewRecorder()
	handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assertStatus(t, w.Code, http.StatusServiceUnavailable)
	if status := decodeHealth(t, w); status.Status != healthStatusStarting {
		t.Errorf("status = %q, want %q", status.Status, healthStatusStarting)
	}
}

func TestHealthHandler_Health_Degraded(t *testing.T) {
	handler, backend, st := newTestHealthHandler(t, false)
	backend.Fail(http.MethodGet, "/api/certificates", http.StatusInternalServerError)
	_ = st.LoadAll(t.Context())

	w := httptest.NewRecorder()
	handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assertStatus(t, w.Code, http.StatusServiceUnavailable)
	status := decodeHealth(t, w)
	if status.Status != healthStatusDegraded {
		t.Errorf("status = %q, want %q", status.Status, healthStatusDegraded)
	}
	certs := status.Collections["certificates"]
	if certs.Status != healthStatusDegraded || certs.Message == "" {
		t.Errorf("certificates = %+v, want degraded with a message", certs)
	}
	if certs.LoadedAt != nil {
		t.Error("certificates were never loaded")
	}
	if status.Collections["projects"].Status != healthStatusHealthy {
		t.Errorf("projects = %+v, want healthy", status.Collections["projects"])
	}
}

func TestHealthHandler_Health_Verbose(t *testing.T) {
	backend := testutil.NewBackend(t, devapi.DemoSeed())
	backend.Fail(http.MethodGet, "/api/projects", http.StatusInternalServerError)

	events := logging.NewEventLog(10)
	logger := slog.New(logging.NewEventLogHandler(testutil.TestLoggerSilent().Handler(), events))
	st := store.New(apiclient.New(backend.URL), logger)
	_ = st.LoadAll(t.Context())
	handler := NewHealthHandler(st, "v1.2.3", events)

	w := httptest.NewRecorder()
	handler.Health(w, httptest.NewRequest(http.MethodGet, "/health?verbose=true", nil))

	status := decodeHealth(t, w)
	if status.System == nil {
		t.Fatal("system info missing")
	}
	if status.System.GoVersion == "" || status.System.NumCPU == 0 {
		t.Errorf("system = %+v", status.System)
	}
	if len(status.Events) == 0 {
		t.Fatal("recent events missing")
	}
	if status.Events[0].Category != logging.CategorySync {
		t.Errorf("event = %+v, want a sync failure", status.Events[0])
	}
}

func TestHealthHandler_Liveness(t *testing.T) {
	handler, _, _ := newTestHealthHandler(t, false)

	w := httptest.NewRecorder()
	handler.Liveness(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assertStatus(t, w.Code, http.StatusOK)
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["status"] != "alive" {
		t.Errorf("status = %q, want alive", resp["status"])
	}
}

func TestHealthHandler_StartTime(t *testing.T) {
	handler, _, _ := newTestHealthHandler(t, false)
	if handler.StartTime().IsZero() {
		t.Error("StartTime should be set")
	}
}
