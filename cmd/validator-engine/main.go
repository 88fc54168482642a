package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beamx-labs/validator-engine/internal/analytics"
	"github.com/beamx-labs/validator-engine/internal/api"
	"github.com/beamx-labs/validator-engine/internal/catalog"
	"github.com/beamx-labs/validator-engine/internal/cleanup"
	"github.com/beamx-labs/validator-engine/internal/config"
	"github.com/beamx-labs/validator-engine/internal/email"
	"github.com/beamx-labs/validator-engine/internal/recommend"
	"github.com/beamx-labs/validator-engine/internal/report"
	"github.com/beamx-labs/validator-engine/internal/session"
	"github.com/beamx-labs/validator-engine/internal/storage"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.Info("starting validator-engine",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Create context for initialization
	initCtx, initCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer initCancel()

	// Run database migrations
	slog.Info("running database migrations")
	if err := storage.MigrateFromDSN(initCtx, cfg.Database.DSN, cfg.Database.MigrationsDir); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize database repository
	repo, err := storage.NewPostgresRepository(initCtx, storage.PostgresConfig{
		DSN:          cfg.Database.DSN,
		MaxOpenConns: int32(cfg.Database.MaxOpenConns),
		MaxIdleConns: int32(cfg.Database.MaxIdleConns),
	})
	if err != nil {
		slog.Error("failed to create database repository", "error", err)
		os.Exit(1)
	}
	slog.Info("database connected successfully")

	// Initialize Redis-backed draft session store
	sessions, err := session.NewStore(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.SessionTTL)
	if err != nil {
		slog.Error("failed to create session store", "error", err)
		os.Exit(1)
	}
	slog.Info("session store connected successfully")

	// Load the question catalog
	cat := catalog.LoadOrDefault(cfg.Catalog.Dir)
	slog.Info("question catalog loaded", "questions", cat.Len())

	// Initialize AI recommendation service
	recommender := recommend.NewService(recommend.NewClient(recommend.Config{
		APIKey:    cfg.AI.APIKey,
		BaseURL:   cfg.AI.BaseURL,
		Model:     cfg.AI.Model,
		MaxTokens: cfg.AI.MaxTokens,
		Timeout:   cfg.AI.Timeout,
	}))

	// Email rendering and delivery
	renderer := report.NewEmailRenderer(cfg.App.BaseURL)
	mailer := email.NewMailer(cfg.Email)

	// Funnel analytics
	tracker := analytics.NewTracker(repo)

	// Initialize retention worker
	cleaner := cleanup.NewCleaner(repo, cfg.Cleanup.Interval, cfg.Cleanup.Retention)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start retention worker
	cleaner.Start(ctx)

	// Setup HTTP server
	server := api.NewServer(cfg.Server, cat, sessions, repo, recommender, renderer, mailer, tracker)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 180 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down gracefully...")

	// Cancel context to stop background workers
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	// Close external connections
	if err := sessions.Close(); err != nil {
		slog.Error("session store close error", "error", err)
	}
	if err := repo.Close(); err != nil {
		slog.Error("repository close error", "error", err)
	}

	slog.Info("validator-engine stopped")
}
