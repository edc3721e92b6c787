// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"io"
	"io/fs"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/olegiv/portfolio-go/internal/apiclient"
	"github.com/olegiv/portfolio-go/internal/devapi"
	"github.com/olegiv/portfolio-go/internal/render"
	"github.com/olegiv/portfolio-go/internal/store"
	"github.com/olegiv/portfolio-go/internal/testutil"
	"github.com/olegiv/portfolio-go/web"
)

// testSessionManager creates a session manager for testing.
func testSessionManager(t *testing.T) *scs.SessionManager {
	t.Helper()
	sm := scs.New()
	sm.Lifetime = 24 * time.Hour
	return sm
}

// testRenderer parses the embedded page templates.
func testRenderer(t *testing.T, sm *scs.SessionManager) *render.Renderer {
	t.Helper()
	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("fs.Sub: %v", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sm,
		Version:        "test",
	})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return renderer
}

// testApp is a running portfolio UI backed by a fake REST backend.
type testApp struct {
	backend *testutil.Backend
	store   *store.Store
	server  *httptest.Server
	client  *http.Client
}

// newTestApp starts the UI on an httptest server. When load is set the
// collections are fetched before it returns.
func newTestApp(t *testing.T, seed devapi.Seed, load bool) *testApp {
	t.Helper()

	backend := testutil.NewBackend(t, seed)
	st := store.New(apiclient.New(backend.URL, apiclient.WithTimeout(5*time.Second)), testutil.TestLoggerSilent())
	if load {
		_ = st.LoadAll(context.Background())
	}

	sm := testSessionManager(t)
	renderer := testRenderer(t, sm)

	r := chi.NewRouter()
	RegisterRoutes(r,
		NewPortfolioHandler(st, renderer, testutil.TestLoggerSilent()),
		NewHealthHandler(st, "test", nil),
	)
	server := httptest.NewServer(sm.LoadAndSave(r))
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar.New: %v", err)
	}
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &testApp{backend: backend, store: st, server: server, client: client}
}

// get performs a GET request and returns the status, Location header and body.
func (a *testApp) get(t *testing.T, path string) (int, string, string) {
	t.Helper()
	resp, err := a.client.Get(a.server.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return readResponse(t, resp)
}

// post submits form to path.
func (a *testApp) post(t *testing.T, path string, form url.Values) (int, string, string) {
	t.Helper()
	resp, err := a.client.Post(a.server.URL+path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return readResponse(t, resp)
}

func readResponse(t *testing.T, resp *http.Response) (int, string, string) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return resp.StatusCode, resp.Header.Get("Location"), string(body)
}

// requestWithURLParams adds chi URL parameters to a request.
func requestWithURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// requestWithSession wraps a request with session context.
func requestWithSession(sm *scs.SessionManager, r *http.Request) *http.Request {
	ctx, err := sm.Load(r.Context(), "")
	if err != nil {
		return r
	}
	return r.WithContext(ctx)
}

// assertStatus checks if the response status code matches the expected value.
func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("status = %d; want %d", got, want)
	}
}

// assertContains checks that body contains every substring.
func assertContains(t *testing.T, body string, subs ...string) {
	t.Helper()
	for _, s := range subs {
		if !strings.Contains(body, s) {
			t.Errorf("body does not contain %q", s)
		}
	}
}

// validProjectForm returns a complete add form for a project.
func validProjectForm(title string) url.Values {
	return url.Values{
		"token":       {"tok-" + title},
		"title":       {title},
		"description": {"A description"},
		"category":    {"AI/ML"},
		"tags":        {"go, web"},
		"status":      {"planned"},
		"imageUrl":    {""},
		"date":        {"2025-01"},
	}
}
