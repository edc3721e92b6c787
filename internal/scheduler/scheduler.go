// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler periodically re-fetches remote collections.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/olegiv/portfolio-go/internal/model"
)

// Loader reloads one collection from its source.
type Loader interface {
	Load(ctx context.Context, kind model.Kind) error
}

// Scheduler runs the collection refresh job.
type Scheduler struct {
	loader  Loader
	kinds   []model.Kind
	timeout time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// New creates a scheduler that refreshes the given kinds. Each run is
// bounded by timeout.
func New(loader Loader, timeout time.Duration, logger *slog.Logger, kinds ...model.Kind) *Scheduler {
	return &Scheduler{
		loader:  loader,
		kinds:   kinds,
		timeout: timeout,
		cron:    cron.New(),
		logger:  logger,
	}
}

// ValidateSchedule checks a standard five-field cron spec or descriptor.
func ValidateSchedule(spec string) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return nil
}

// Start registers the refresh job on spec and starts the cron runner.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.Refresh); err != nil {
		return fmt.Errorf("adding refresh job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "schedule", spec, "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler, waiting for a running refresh.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// Next returns the time of the next refresh, or zero if none is scheduled.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

// Refresh reloads every configured kind once. Failures are logged and
// leave the previous contents in place.
func (s *Scheduler) Refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	for _, kind := range s.kinds {
		if err := s.loader.Load(ctx, kind); err != nil {
			s.logger.Error("scheduled refresh failed", "kind", kind, "error", err)
			continue
		}
		s.logger.Debug("scheduled refresh complete", "kind", kind)
	}
}
