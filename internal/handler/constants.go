// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteTab is a collection page; {tab} is the plural kind name.
	RouteTab = "/{tab}"
	// RouteSuffixNew is the suffix for "new" routes.
	RouteSuffixNew = "/new"
	// RouteParamID is the ID parameter pattern.
	RouteParamID = "/{id}"
	// RouteSuffixEdit is the suffix for edit form routes.
	RouteSuffixEdit = "/edit"
	// RouteSuffixDelete is the suffix for delete routes.
	RouteSuffixDelete = "/delete"

	// RouteReload re-fetches every collection.
	RouteReload = "/reload"
	// RouteHealth is the health check route.
	RouteHealth = "/health"
	// RouteHealthLive is the liveness probe route.
	RouteHealthLive = "/health/live"
)

// Template names.
const (
	templateIndex   = "index"
	templateForm    = "form"
	templateConfirm = "confirm_delete"
)

// Flash message types.
const (
	flashTypeSuccess = "success"
	flashTypeError   = "error"
	flashTypeWarning = "warning"
	flashTypeInfo    = "info"
)

// Query parameters of the index page.
const (
	paramSearch   = "q"
	paramCategory = "category"
)
