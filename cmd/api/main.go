package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quran-explorer/internal/config"
	"quran-explorer/internal/http"
	"quran-explorer/internal/service"
	"quran-explorer/internal/storage"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API serves read-only access to the Quran corpus: chapters, verses and the word root index.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: Quran Explorer API
//   description: |
//     Read API over an imported Quran corpus. Chapters can be listed by number,
//     revelation order or revelation place; verses can be paged, fetched and searched
//     in Arabic or French; words can be looked up by root with their verse context.
//   version: 1.0.0
// schemes:
//   - http
//   - https
// produces:
//   - application/json

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	storage.SetPatternCacheSize(cfg.PatternCacheSize)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	suraRepo := storage.NewSuraRepo(db)
	verseRepo := storage.NewVerseRepo(db)
	wordRepo := storage.NewWordRepo(db)

	matcher := storage.NewMatcher(cfg.SearchMode == config.SearchModeRegex)
	slog.Info("Search configured", "mode", cfg.SearchMode, "regex", matcher.Raw(), "max_page_limit", cfg.MaxPageLimit)

	// Create router with dependencies
	deps := &http.Deps{
		SuraService:  service.NewSuraService(suraRepo, matcher),
		VerseService: service.NewVerseService(verseRepo, matcher, cfg.MaxPageLimit),
		WordService:  service.NewWordService(wordRepo, verseRepo, matcher, cfg.MaxPageLimit),
		DB:           db,
	}
	router := http.NewRouter(deps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.APIPort
	srv := &nethttp.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting API server", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("API server failed to start: %v", err)
		}
	case <-ctx.Done():
		slog.Info("Shutting down API server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
		}
	}
}
