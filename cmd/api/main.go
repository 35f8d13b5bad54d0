// Copyright (c) 2026 VanCommunity. All rights reserved.
// Author: Francesca993 (VanCommunity)

// Command api is the entry point for the VanCommunity HTTP API server.
//
// # Startup Sequence
//
//  1. Load .env (if present) and configuration from environment variables.
//  2. Initialize structured logger.
//  3. Open the Catalog Store (memory, SQLite, or PostgreSQL with migrations).
//  4. Connect to Redis when a search cache is configured.
//  5. Seed the starter catalog into an empty store.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Francesca993/VanCommunity/internal/api"
	"github.com/Francesca993/VanCommunity/internal/core/group"
	"github.com/Francesca993/VanCommunity/internal/platform/config"
	"github.com/Francesca993/VanCommunity/internal/platform/constants"
	"github.com/Francesca993/VanCommunity/internal/platform/logging"
	"github.com/Francesca993/VanCommunity/internal/platform/metrics"
	"github.com/Francesca993/VanCommunity/internal/platform/migration"
	pgstore "github.com/Francesca993/VanCommunity/internal/platform/postgres"
	redisstore "github.com/Francesca993/VanCommunity/internal/platform/redis"
	sqlitestore "github.com/Francesca993/VanCommunity/internal/platform/sqlite"
)

func main() {
	// ── 1. Environment ────────────────────────────────────────────────────
	// A missing .env is normal outside local development.
	envErr := godotenv.Load()

	// ── 2. Logger & Configuration ─────────────────────────────────────────
	// Bootstrap logger so configuration errors are structured too.
	log := logging.New(os.Stdout, logging.FormatJSON, slog.LevelInfo, constants.AppName)

	cfg, err := config.Load()
	must(log, err, "load configuration")

	level := logging.ParseLevel(cfg.LogLevel)
	if cfg.Debug {
		level = slog.LevelDebug
	}
	log = logging.New(os.Stdout, cfg.LogFormat, level, constants.AppName)
	slog.SetDefault(log)

	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		log.Warn("dotenv_load_failed", slog.Any("error", envErr))
	}

	log.Info("configuration_loaded",
		slog.String("version", constants.AppVersion),
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("store", cfg.StoreBackend),
		slog.Bool("search_cache", cfg.RedisURL != ""),
	)

	// Root context for startup, so misconfiguration is caught quickly
	// rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer startupCancel()

	// ── 3. Catalog Store ──────────────────────────────────────────────────
	repository, checks, closeStore, err := openRepository(startupCtx, cfg, log)
	must(log, err, "open catalog store")
	defer closeStore()

	// ── 4. Observability & Search Cache ───────────────────────────────────
	registry := metrics.New()
	options := []group.Option{group.WithRecorder(registry)}

	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_error", slog.Any("error", cerr))
			}
		}()

		options = append(options, group.WithSearchCache(group.NewRedisSearchCache(rdb, cfg.SearchCacheTTL)))
		checks = append(checks, api.DependencyCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
		})
	}

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	groupService := group.NewService(repository, log, options...)

	if cfg.SeedCatalog {
		_, err := groupService.Seed(startupCtx)
		must(log, err, "seed catalog")
	}

	liveness, readiness := api.NewHealthHandlers(checks, log)

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, registry, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Metrics:   registry.Handler(),
		Group:     group.NewHandler(groupService),
	})

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	if exitCode := serveUntilSignal(server, quit, log); exitCode != 0 {
		closeStore()
		os.Exit(exitCode)
	}
}

// serveUntilSignal runs server until a signal arrives on quit or it fails to
// serve, then shuts it down. It returns the process exit code.
func serveUntilSignal(server *api.Server, quit <-chan os.Signal, log *slog.Logger) int {
	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	exitCode := 0
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
		exitCode = 1
	}

	// Give in-flight requests enough time to complete.
	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		exitCode = 1
	}

	if exitCode != 0 {
		log.Error("server_stopped_with_error", slog.Int("exit_code", exitCode))
		return exitCode
	}

	log.Info("server_stopped_cleanly")
	return 0
}

// openRepository builds the Catalog Store selected by STORE_BACKEND together
// with its readiness check and a close function.
func openRepository(ctx context.Context, cfg *config.Config, log *slog.Logger) (group.Repository, []api.DependencyCheck, func(), error) {
	switch cfg.StoreBackend {
	case config.StorePostgres:
		if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
			return nil, nil, nil, err
		}

		pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, nil, nil, err
		}

		checks := []api.DependencyCheck{{
			Name:  "postgres",
			Check: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		}}
		closeFn := func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		}
		return group.NewPostgresRepository(pool), checks, closeFn, nil

	case config.StoreSQLite:
		db, err := sqlitestore.Open(ctx, cfg.SQLitePath, log)
		if err != nil {
			return nil, nil, nil, err
		}

		repository, err := group.NewSQLiteRepository(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, nil, err
		}

		checks := []api.DependencyCheck{{
			Name:  "sqlite",
			Check: func(ctx context.Context) error { return sqlitestore.Ping(ctx, db) },
		}}
		closeFn := func() {
			log.Info("closing_sqlite_database")
			if cerr := db.Close(); cerr != nil {
				log.Error("sqlite_close_error", slog.Any("error", cerr))
			}
		}
		return repository, checks, closeFn, nil

	case config.StoreMemory:
		log.Warn("memory_store_selected",
			slog.String("note", "catalog changes are lost on restart"),
			slog.Bool("production", cfg.IsProduction()),
		)
		return group.NewMemoryRepository(), nil, func() {}, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
