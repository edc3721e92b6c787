// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package testutil provides shared test helpers for the portfolio project.
package testutil

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/olegiv/portfolio-go/internal/devapi"
)

// TestLoggerSilent creates a completely silent test logger (error level only).
func TestLoggerSilent() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// Backend is a fake portfolio REST backend served over httptest.
type Backend struct {
	*devapi.Server
	URL string // API root, e.g. http://127.0.0.1:1234/api

	mu       sync.Mutex
	failures map[string]int // "METHOD /path" -> status code
	requests []string
}

// NewBackend starts a fake backend seeded with seed. It is closed when
// the test ends.
func NewBackend(t *testing.T, seed devapi.Seed) *Backend {
	t.Helper()

	b := &Backend{
		Server:   devapi.New(seed),
		failures: make(map[string]int),
	}
	api := b.Server.Handler("/api")
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		b.mu.Lock()
		b.requests = append(b.requests, key)
		status, fail := b.failures[key]
		b.mu.Unlock()

		if fail {
			http.Error(w, `{"error":"injected failure"}`, status)
			return
		}
		api.ServeHTTP(w, r)
	}))
	t.Cleanup(ts.Close)

	b.URL = ts.URL + "/api"
	return b
}

// Fail makes every request matching method and path (including the /api
// prefix) answer with status until Recover is called.
func (b *Backend) Fail(method, path string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method+" "+path] = status
}

// Recover clears all injected failures.
func (b *Backend) Recover() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = make(map[string]int)
}

// Requests returns the "METHOD /path" of every request received so far.
func (b *Backend) Requests() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.requests...)
}

// CountRequests returns how many requests matched method and path.
func (b *Backend) CountRequests(method, path string) int {
	key := method + " " + path
	n := 0
	for _, r := range b.Requests() {
		if r == key {
			n++
		}
	}
	return n
}
