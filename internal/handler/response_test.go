// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/olegiv/portfolio-go/internal/model"
)

func TestLogAndHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		statusCode int
		logMsg     string
	}{
		{"bad request", "Bad Request", http.StatusBadRequest, "validation failed"},
		{"not found", "Not Found", http.StatusNotFound, "resource missing"},
		{"bad gateway", "Bad Gateway", http.StatusBadGateway, "backend unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			logAndHTTPError(w, tt.message, tt.statusCode, tt.logMsg)

			if w.Code != tt.statusCode {
				t.Errorf("status code = %d, want %d", w.Code, tt.statusCode)
			}
			if body := w.Body.String(); body == "" {
				t.Error("body should not be empty")
			}
		})
	}
}

func TestLogAndInternalError(t *testing.T) {
	w := httptest.NewRecorder()
	logAndInternalError(w, "template failed", "error", errors.New("boom"))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status code = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestRequireKind(t *testing.T) {
	tests := []struct {
		tab    string
		want   model.Kind
		wantOK bool
	}{
		{"projects", model.KindProject, true},
		{"certificates", model.KindCertificate, true},
		{"accomplishments", model.KindAccomplishment, true},
		{"project", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := requestWithURLParams(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"tab": tt.tab})

			kind, ok := requireKind(w, r)
			if ok != tt.wantOK || kind != tt.want {
				t.Errorf("requireKind(%q) = (%q, %v), want (%q, %v)", tt.tab, kind, ok, tt.want, tt.wantOK)
			}
			if !ok {
				assertStatus(t, w.Code, http.StatusNotFound)
			}
		})
	}
}

func TestRequireItemWithRedirect(t *testing.T) {
	sm := testSessionManager(t)
	renderer := testRenderer(t, sm)
	project := model.Project{ID: "1", Title: "Alpha"}
	find := func(kind model.Kind, id model.ID) (model.Item, bool) {
		if kind == model.KindProject && id == project.ID {
			return project, true
		}
		return nil, false
	}

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := requestWithURLParams(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "1"})
		r = requestWithSession(sm, r)

		item, ok := requireItemWithRedirect(w, r, renderer, model.KindProject, find)
		if !ok || item.ItemID() != "1" {
			t.Errorf("got (%v, %v), want project 1", item, ok)
		}
	})

	t.Run("missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := requestWithURLParams(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "9"})
		r = requestWithSession(sm, r)

		if _, ok := requireItemWithRedirect(w, r, renderer, model.KindProject, find); ok {
			t.Fatal("expected ok to be false")
		}
		assertStatus(t, w.Code, http.StatusSeeOther)
		if loc := w.Header().Get("Location"); loc != "/projects" {
			t.Errorf("Location = %q, want /projects", loc)
		}
		if msg := sm.GetString(r.Context(), "flash"); msg != "Project not found" {
			t.Errorf("flash = %q, want %q", msg, "Project not found")
		}
	})
}

func TestParseFormOrRedirect(t *testing.T) {
	sm := testSessionManager(t)
	renderer := testRenderer(t, sm)

	t.Run("valid form", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/projects", strings.NewReader("title=Alpha"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r = requestWithSession(sm, r)

		if !parseFormOrRedirect(w, r, renderer, "/projects/new") {
			t.Fatal("expected parse to succeed")
		}
		if r.PostForm.Get("title") != "Alpha" {
			t.Errorf("title = %q, want Alpha", r.PostForm.Get("title"))
		}
	})

	t.Run("malformed form", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/projects", strings.NewReader("title=%zz"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r = requestWithSession(sm, r)

		if parseFormOrRedirect(w, r, renderer, "/projects/new") {
			t.Fatal("expected parse to fail")
		}
		assertStatus(t, w.Code, http.StatusSeeOther)
		if loc := w.Header().Get("Location"); loc != "/projects/new" {
			t.Errorf("Location = %q, want /projects/new", loc)
		}
	})
}

func TestSingular(t *testing.T) {
	if got := singular(model.KindAccomplishment); got != "Accomplishment" {
		t.Errorf("singular = %q, want Accomplishment", got)
	}
}
