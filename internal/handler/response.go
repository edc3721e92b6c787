// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/render"
)

// flashAndRedirect sets a flash message and redirects to the given URL.
// Uses http.StatusSeeOther (303) for POST redirects.
func flashAndRedirect(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url, message, messageType string) {
	renderer.SetFlash(r, message, messageType)
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// flashError sets an error flash message and redirects to the given URL.
func flashError(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url, message string) {
	flashAndRedirect(w, r, renderer, url, message, flashTypeError)
}

// flashSuccess sets a success flash message and redirects to the given URL.
func flashSuccess(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url, message string) {
	flashAndRedirect(w, r, renderer, url, message, flashTypeSuccess)
}

// parseFormOrRedirect parses the request form and redirects with an error message on failure.
// Returns true if parsing succeeded, false if it failed (and redirect was performed).
func parseFormOrRedirect(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, redirectURL string) bool {
	if err := r.ParseForm(); err != nil {
		flashError(w, r, renderer, redirectURL, "Invalid form data")
		return false
	}
	return true
}

// logAndHTTPError logs an error and writes an HTTP error response.
func logAndHTTPError(w http.ResponseWriter, message string, statusCode int, logMsg string, args ...any) {
	slog.Error(logMsg, args...)
	http.Error(w, message, statusCode)
}

// logAndInternalError logs an error and writes a 500 Internal Server Error response.
func logAndInternalError(w http.ResponseWriter, logMsg string, args ...any) {
	logAndHTTPError(w, "Internal Server Error", http.StatusInternalServerError, logMsg, args...)
}

// requireKind resolves the {tab} URL parameter. Unknown tabs get a 404.
func requireKind(w http.ResponseWriter, r *http.Request) (model.Kind, bool) {
	kind, ok := model.ParseTab(chi.URLParam(r, "tab"))
	if !ok {
		http.NotFound(w, r)
		return "", false
	}
	return kind, true
}

// requireItemWithRedirect looks up the {id} record of kind. If it does not
// exist, a flash message is set and the browser is sent back to the tab.
func requireItemWithRedirect(
	w http.ResponseWriter,
	r *http.Request,
	renderer *render.Renderer,
	kind model.Kind,
	find func(model.Kind, model.ID) (model.Item, bool),
) (model.Item, bool) {
	id := model.ID(chi.URLParam(r, "id"))
	item, ok := find(kind, id)
	if !ok {
		flashError(w, r, renderer, render.TabURL(kind), singular(kind)+" not found")
		return nil, false
	}
	return item, true
}

// singular returns the capitalized kind name, e.g. "Project".
func singular(kind model.Kind) string {
	return render.CategoryLabel(string(kind))
}
