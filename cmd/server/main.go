// Package main implements the entry point for the Shelfmark API server,
// a multi-user book catalog with password credentials and signed session
// tokens.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/shelfmark/shelfmark-api/internal/config"
	"github.com/shelfmark/shelfmark-api/internal/platform/logger"
	"github.com/shelfmark/shelfmark-api/internal/redact"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, status) and exit")
	flag.Parse()

	// Load a local .env if present; real environments set variables directly.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.Setup(cfg.Server.LogLevel)

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"require_token", cfg.Auth.RequireToken)

	// A store that cannot be reached at startup is fatal; the process
	// never serves degraded traffic.
	// Connection failures can echo the URL, so redact before logging.
	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", "error", redact.Error(err))
		log.Fatalf("Failed to connect to database: %v", redact.Error(err))
	}

	if *migrateCmd != "" {
		if err := runMigrations(db, *migrateCmd); err != nil {
			appLogger.Error("Migration failed", "error", err, "command", *migrateCmd)
			log.Fatalf("Migration failed: %v", err)
		}
		appLogger.Info("Migration command completed", "command", *migrateCmd)
		return
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		appLogger.Error("Failed to initialize application", "error", err)
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.router()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
