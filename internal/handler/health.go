// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/olegiv/portfolio-go/internal/logging"
	"github.com/olegiv/portfolio-go/internal/store"
)

// Health states.
const (
	healthStatusHealthy  = "healthy"
	healthStatusDegraded = "degraded"
	healthStatusStarting = "starting"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	store     *store.Store
	events    *logging.EventLog
	version   string
	startTime time.Time
}

// NewHealthHandler creates a new health handler. events may be nil.
func NewHealthHandler(s *store.Store, version string, events *logging.EventLog) *HealthHandler {
	return &HealthHandler{
		store:     s,
		events:    events,
		version:   version,
		startTime: time.Now(),
	}
}

// StartTime returns when the handler (and application) was started.
func (h *HealthHandler) StartTime() time.Time {
	return h.startTime
}

// HealthStatus represents the overall health status.
type HealthStatus struct {
	Status      string                `json:"status"`
	Timestamp   time.Time             `json:"timestamp"`
	Uptime      string                `json:"uptime"`
	Version     string                `json:"version"`
	Collections map[string]Collection `json:"collections"`
	System      *SystemInfo           `json:"system,omitempty"`
	Events      []logging.Event       `json:"recent_events,omitempty"`
}

// Collection reports the load state of one collection.
type Collection struct {
	Status   string     `json:"status"`
	Count    int        `json:"count"`
	LoadedAt *time.Time `json:"loaded_at,omitempty"`
	Message  string     `json:"message,omitempty"`
}

// SystemInfo contains system-level information.
type SystemInfo struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutines"`
	NumCPU       int    `json:"num_cpus"`
}

// Health handles GET /health requests.
// A collection whose last load failed marks the service degraded.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:      healthStatusHealthy,
		Timestamp:   time.Now().UTC(),
		Uptime:      time.Since(h.startTime).Round(time.Second).String(),
		Version:     h.version,
		Collections: make(map[string]Collection),
	}

	for _, ls := range h.store.LoadStatuses() {
		c := Collection{
			Status: healthStatusHealthy,
			Count:  len(h.store.Items(ls.Kind)),
		}
		switch {
		case !ls.Attempted:
			c.Status = healthStatusStarting
			if status.Status == healthStatusHealthy {
				status.Status = healthStatusStarting
			}
		case ls.Err != "":
			c.Status = healthStatusDegraded
			c.Message = ls.Err
			status.Status = healthStatusDegraded
		}
		if !ls.LoadedAt.IsZero() {
			loadedAt := ls.LoadedAt.UTC()
			c.LoadedAt = &loadedAt
		}
		status.Collections[ls.Kind.Tab()] = c
	}

	if r.URL.Query().Get("verbose") == "true" {
		status.System = &SystemInfo{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			NumCPU:       runtime.NumCPU(),
		}
		if h.events != nil {
			status.Events = h.events.Entries()
		}
	}

	code := http.StatusOK
	if status.Status != healthStatusHealthy {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, status)
}

// Liveness handles GET /health/live - simple liveness check.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "alive",
	})
}
