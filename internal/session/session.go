// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package session

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
)

// CookieName is the name of the session cookie.
const CookieName = "portfolio_session"

// New creates a new session manager backed by an in-memory store.
// Sessions only carry flash notices, so nothing needs to survive a restart.
func New(isDev bool) *scs.SessionManager {
	sm := scs.New()

	sm.Store = memstore.NewWithCleanupInterval(10 * time.Minute)

	// Configure session
	sm.Lifetime = 24 * time.Hour
	sm.Cookie.Name = CookieName
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !isDev // Secure cookies in production only

	return sm
}
