// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/olegiv/portfolio-go/internal/apiclient"
	"github.com/olegiv/portfolio-go/internal/config"
	"github.com/olegiv/portfolio-go/internal/handler"
	"github.com/olegiv/portfolio-go/internal/logging"
	"github.com/olegiv/portfolio-go/internal/middleware"
	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/render"
	"github.com/olegiv/portfolio-go/internal/scheduler"
	"github.com/olegiv/portfolio-go/internal/session"
	"github.com/olegiv/portfolio-go/internal/store"
	"github.com/olegiv/portfolio-go/internal/version"
	"github.com/olegiv/portfolio-go/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "portfolio - Portfolio management UI\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_SESSION_SECRET    Session and CSRF key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_ENV               Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_API_URL           Backend base URL (default depends on environment)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_SERVER_PORT       Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_API_TIMEOUT       Backend request timeout (default: 30s)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_REFRESH_SCHEDULE  Cron schedule for re-fetching projects (optional)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	versionInfo := version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	if *showVersion {
		_, _ = fmt.Printf("portfolio %s\n", versionInfo)
		os.Exit(0)
	}

	if err := run(versionInfo); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(versionInfo version.Info) error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Text logs to stdout; warnings and errors are also kept for /health
	logLevel := logging.ParseLevel(cfg.LogLevel)
	events := logging.NewEventLog(logging.DefaultEventLogSize)
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(logging.NewEventLogHandler(textHandler, events))
	slog.SetDefault(logger)

	// Backend client and collection store
	client := apiclient.New(cfg.APIURL(), apiclient.WithTimeout(cfg.APITimeout))
	st := store.New(client, logger)
	slog.Info("portfolio backend configured", "url", client.BaseURL(), "timeout", cfg.APITimeout)

	// Initial load runs in the background; pages show a loading state until it finishes
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.APITimeout)
		defer cancel()
		if err := st.LoadAll(ctx); err != nil {
			slog.Warn("initial load incomplete", "error", err)
			return
		}
		slog.Info("portfolio loaded")
	}()

	// Optional scheduled refresh of the remote collection
	if cfg.RefreshEnabled() {
		sched := scheduler.New(st, cfg.APITimeout, logger, model.KindProject)
		if err := sched.Start(cfg.RefreshSchedule); err != nil {
			return fmt.Errorf("starting scheduler: %w", err)
		}
		defer sched.Stop()
		slog.Info("projects refresh scheduled", "next", sched.Next())
	}

	sessionManager := session.New(cfg.IsDevelopment())
	slog.Info("session manager initialized")

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
		Version:        versionInfo.AssetVersion(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	portfolioHandler := handler.NewPortfolioHandler(st, renderer, logger)
	healthHandler := handler.NewHealthHandler(st, versionInfo.Version, events)

	// Form submissions: 2 per second per client, bursts of 10
	formRateLimiter := middleware.NewFormRateLimiter(2, 10)
	stopCleanup := make(chan struct{})
	defer close(stopCleanup)
	formRateLimiter.StartCleanup(10*time.Minute, stopCleanup)

	httpMetrics := middleware.NewHTTPMetrics(prometheus.DefaultRegisterer)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))             // Gzip compression with level 5
	r.Use(chimw.GetHead)                 // Handle HEAD requests for uptime monitoring
	r.Use(middleware.StripTrailingSlash) // Redirect /path/ to /path (301)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(httpMetrics.Middleware)

	// Static assets: cache for 1 week
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("getting static fs: %w", err)
	}
	r.Handle("/static/*", middleware.StaticCache(604800)(http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(cfg.APITimeout + 5*time.Second))
		r.Use(middleware.NoStore)
		r.Use(sessionManager.LoadAndSave)
		r.Use(middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment(), cfg.ServerAddr())))
		r.Use(formRateLimiter.Middleware())

		handler.RegisterRoutes(r, portfolioHandler, healthHandler)
	})

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.APITimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB max header size
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", versionInfo.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
