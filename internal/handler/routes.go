// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the portfolio pages and health checks on r.
// Static routes are registered first; chi prefers them over {tab}.
func RegisterRoutes(r chi.Router, portfolio *PortfolioHandler, health *HealthHandler) {
	r.Get(RouteHealth, health.Health)
	r.Get(RouteHealthLive, health.Liveness)
	r.Post(RouteReload, portfolio.Reload)

	r.Get(RouteRoot, portfolio.Home)
	r.Route(RouteTab, func(r chi.Router) {
		r.Get(RouteRoot, portfolio.Index)
		r.Post(RouteRoot, portfolio.Create)
		r.Get(RouteSuffixNew, portfolio.NewForm)
		r.Route(RouteParamID, func(r chi.Router) {
			r.Post(RouteRoot, portfolio.Update)
			r.Get(RouteSuffixEdit, portfolio.EditForm)
			r.Get(RouteSuffixDelete, portfolio.ConfirmDelete)
			r.Post(RouteSuffixDelete, portfolio.Delete)
		})
	})
}
