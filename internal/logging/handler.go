// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging provides a slog handler that keeps recent warnings and
// errors in an in-memory event log for the health report.
package logging

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Event categories
const (
	CategorySync     = "sync"
	CategoryRecord   = "record"
	CategorySecurity = "security"
	CategorySystem   = "system"
)

// Event levels
const (
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
)

// DefaultEventLogSize is the number of events an EventLog keeps.
const DefaultEventLogSize = 50

// Event is one recorded log entry.
type Event struct {
	Time     time.Time         `json:"time"`
	Level    string            `json:"level"`
	Category string            `json:"category"`
	Message  string            `json:"message"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// EventLog is a fixed-size ring of the most recent events.
type EventLog struct {
	mu     sync.Mutex
	events []Event
	next   int
	full   bool
}

// NewEventLog creates an event log holding at most size events.
func NewEventLog(size int) *EventLog {
	if size <= 0 {
		size = DefaultEventLogSize
	}
	return &EventLog{events: make([]Event, size)}
}

func (l *EventLog) add(e Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events[l.next] = e
	l.next = (l.next + 1) % len(l.events)
	if l.next == 0 {
		l.full = true
	}
}

// Entries returns the recorded events, newest first.
func (l *EventLog) Entries() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := l.next
	if l.full {
		n = len(l.events)
	}
	out := make([]Event, 0, n)
	for i := 1; i <= n; i++ {
		idx := (l.next - i + len(l.events)) % len(l.events)
		out = append(out, l.events[idx])
	}
	return out
}

// EventLogHandler is a slog.Handler that wraps another handler and also
// records WARN and ERROR level logs in an EventLog.
type EventLogHandler struct {
	inner slog.Handler
	log   *EventLog
	level slog.Level // Minimum level to record (default: WARN)
	attrs []slog.Attr
}

// NewEventLogHandler creates a new EventLogHandler that wraps the given handler.
// Logs at WARN level and above are written to both the wrapped handler and the event log.
func NewEventLogHandler(inner slog.Handler, log *EventLog) *EventLogHandler {
	return NewEventLogHandlerWithLevel(inner, log, slog.LevelWarn)
}

// NewEventLogHandlerWithLevel creates a new EventLogHandler with a custom minimum level.
func NewEventLogHandlerWithLevel(inner slog.Handler, log *EventLog, level slog.Level) *EventLogHandler {
	return &EventLogHandler{
		inner: inner,
		log:   log,
		level: level,
	}
}

// Enabled implements slog.Handler.
func (h *EventLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *EventLogHandler) Handle(ctx context.Context, r slog.Record) error {
	// Always forward to the inner handler first
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}

	if r.Level >= h.level {
		h.record(r)
	}
	return nil
}

// WithAttrs implements slog.Handler.
func (h *EventLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &EventLogHandler{
		inner: h.inner.WithAttrs(attrs),
		log:   h.log,
		level: h.level,
		attrs: append(append([]slog.Attr(nil), h.attrs...), attrs...),
	}
}

// WithGroup implements slog.Handler.
func (h *EventLogHandler) WithGroup(name string) slog.Handler {
	return &EventLogHandler{
		inner: h.inner.WithGroup(name),
		log:   h.log,
		level: h.level,
		attrs: h.attrs,
	}
}

func (h *EventLogHandler) record(r slog.Record) {
	metadata := make(map[string]string, len(h.attrs)+r.NumAttrs())
	category := ""
	collect := func(a slog.Attr) bool {
		if a.Key == "category" {
			category = a.Value.String()
			return true
		}
		metadata[a.Key] = a.Value.String()
		return true
	}
	for _, a := range h.attrs {
		collect(a)
	}
	r.Attrs(collect)

	if category == "" {
		category = inferCategory(r.Message)
	}
	if len(metadata) == 0 {
		metadata = nil
	}

	h.log.add(Event{
		Time:     r.Time,
		Level:    eventLevel(r.Level),
		Category: category,
		Message:  r.Message,
		Metadata: metadata,
	})
}

// eventLevel converts a slog.Level to an event level.
func eventLevel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return LevelError
	case level >= slog.LevelWarn:
		return LevelWarning
	default:
		return LevelInfo
	}
}

// inferCategory guesses a category from the log message.
func inferCategory(message string) string {
	msg := strings.ToLower(message)
	switch {
	case strings.Contains(msg, "load") || strings.Contains(msg, "refresh") || strings.Contains(msg, "reload"):
		return CategorySync
	case strings.Contains(msg, "record") || strings.Contains(msg, "save") || strings.Contains(msg, "delete"):
		return CategoryRecord
	case strings.Contains(msg, "csrf") || strings.Contains(msg, "rate limit"):
		return CategorySecurity
	default:
		return CategorySystem
	}
}

// ParseLevel converts a configured level name to a slog.Level.
// Unknown names map to INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
