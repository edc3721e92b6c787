// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"sync"
	"time"
)

// submittedTTL is how long a used create token is remembered.
const submittedTTL = 30 * time.Minute

// tracker records outstanding mutations per key and remembers create
// tokens that already produced a record.
type tracker struct {
	mu        sync.Mutex
	active    map[string]struct{}
	submitted map[string]time.Time
	now       func() time.Time
}

func newTracker(now func() time.Time) *tracker {
	return &tracker{
		active:    make(map[string]struct{}),
		submitted: make(map[string]time.Time),
		now:       now,
	}
}

// begin marks key as in flight. The returned release func must be called
// once the mutation finishes. An empty key is never tracked.
func (t *tracker) begin(key string) (func(), error) {
	if key == "" {
		return func() {}, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.prune()
	if _, ok := t.submitted[key]; ok {
		return nil, ErrDuplicateSubmission
	}
	if _, ok := t.active[key]; ok {
		return nil, ErrInFlight
	}
	t.active[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.active, key)
			t.mu.Unlock()
		})
	}, nil
}

// markSubmitted makes later begin calls for key fail with
// ErrDuplicateSubmission.
func (t *tracker) markSubmitted(key string) {
	if key == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.submitted[key] = t.now()
}

// inFlight reports whether key is currently tracked.
func (t *tracker) inFlight(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.active[key]
	return ok
}

// prune drops expired tokens. Caller holds t.mu.
func (t *tracker) prune() {
	cutoff := t.now().Add(-submittedTTL)
	for key, at := range t.submitted {
		if at.Before(cutoff) {
			delete(t.submitted, key)
		}
	}
}
