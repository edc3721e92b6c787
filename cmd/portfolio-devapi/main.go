// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Command portfolio-devapi serves an in-memory portfolio backend so the
// development default API URL works without the hosted service.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/olegiv/portfolio-go/internal/devapi"
	"github.com/olegiv/portfolio-go/internal/logging"
)

func main() {
	addr := flag.String("addr", "localhost:5000", "Listen address")
	empty := flag.Bool("empty", false, "Start with empty collections instead of demo data")
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logging.ParseLevel(os.Getenv("PORTFOLIO_LOG_LEVEL")),
	}))
	slog.SetDefault(logger)

	if err := run(*addr, *empty); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(addr string, empty bool) error {
	seed := devapi.DemoSeed()
	if empty {
		seed = devapi.Seed{}
	}
	backend := devapi.New(seed)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Mount("/", backend.Handler("/api"))

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("starting dev backend", "addr", addr, "projects", len(seed.Projects))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	slog.Info("dev backend stopped")
	return nil
}
