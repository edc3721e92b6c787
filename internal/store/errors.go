// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "errors"

var (
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("record not found")

	// ErrInFlight is returned when a mutation for the same record is
	// still outstanding.
	ErrInFlight = errors.New("a request for this record is already in progress")

	// ErrDuplicateSubmission is returned when a create token was already used.
	ErrDuplicateSubmission = errors.New("this form was already submitted")

	// ErrKindMismatch is returned when a record does not match the target kind.
	ErrKindMismatch = errors.New("record kind does not match collection")
)
