// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

// Command api is the entry point for the Demirhan Çelik corporate API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Connect to the object store (MinIO).
//  6. Run database migrations (idempotent).
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/demirhancelik/corporate-api/internal/api"
	"github.com/demirhancelik/corporate-api/internal/auth"
	"github.com/demirhancelik/corporate-api/internal/certificate"
	"github.com/demirhancelik/corporate-api/internal/contact"
	"github.com/demirhancelik/corporate-api/internal/content"
	"github.com/demirhancelik/corporate-api/internal/gallery"
	"github.com/demirhancelik/corporate-api/internal/machine"
	"github.com/demirhancelik/corporate-api/internal/platform/cache"
	"github.com/demirhancelik/corporate-api/internal/platform/config"
	"github.com/demirhancelik/corporate-api/internal/platform/constants"
	"github.com/demirhancelik/corporate-api/internal/platform/migration"
	pgstore "github.com/demirhancelik/corporate-api/internal/platform/postgres"
	redisstore "github.com/demirhancelik/corporate-api/internal/platform/redis"
	"github.com/demirhancelik/corporate-api/internal/platform/sec"
	"github.com/demirhancelik/corporate-api/internal/platform/storage"
	"github.com/demirhancelik/corporate-api/internal/project"
	"github.com/demirhancelik/corporate-api/internal/slide"
	"github.com/demirhancelik/corporate-api/internal/upload"
	"github.com/demirhancelik/corporate-api/internal/users"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Object Store ───────────────────────────────────────────────────
	objectStore, err := storage.NewClient(startupCtx, storage.Options{
		Endpoint:      cfg.StorageEndpoint,
		AccessKey:     cfg.StorageAccessKey,
		SecretKey:     cfg.StorageSecretKey,
		Bucket:        cfg.StorageBucket,
		UseSSL:        cfg.StorageUseSSL,
		PublicBaseURL: cfg.StoragePublicBaseURL,
	}, log)
	must(log, err, "connect to object store")

	// ── 6. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 7. Auth Service ───────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
		CheckStorage: func() error {
			return objectStore.Ping(context.Background())
		},
	}, log)

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	publicCache := cache.New(rdb, log)

	userRepository := users.NewPostgresRepository(pool)
	usersService := users.NewService(userRepository, log)
	authService := auth.NewService(userRepository, jwtSvc, log)

	contentService := content.NewService(content.NewPostgresRepository(pool), publicCache, log)
	projectService := project.NewService(project.NewPostgresRepository(pool), publicCache, log)
	machineService := machine.NewService(machine.NewPostgresRepository(pool), log)
	certificateService := certificate.NewService(certificate.NewPostgresRepository(pool), publicCache, log)
	slideService := slide.NewService(slide.NewPostgresRepository(pool), publicCache, log)
	galleryService := gallery.NewService(gallery.NewPostgresRepository(pool), publicCache, log)
	contactService := contact.NewService(contact.NewPostgresRepository(pool), publicCache, log)
	uploadService := upload.NewService(objectStore, log)

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService),
		Content:   content.NewHandler(contentService),
		Project:   project.NewHandler(projectService),
		Machine:   machine.NewHandler(machineService),
		Quality:   certificate.NewHandler(certificateService, certificate.KindQuality),
		Safety:    certificate.NewHandler(certificateService, certificate.KindSafety),
		Slide:     slide.NewHandler(slideService),
		Gallery:   gallery.NewHandler(galleryService),
		Contact:   contact.NewHandler(contactService),
		Users:     users.NewHandler(usersService),
		Upload:    upload.NewHandler(uploadService),
	}

	server := api.NewServer(context.Background(), cfg, log, jwtSvc, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
