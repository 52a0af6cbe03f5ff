// Package main implements the entry point for the task API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/taskboard/internal/config"
	"github.com/phrazzld/taskboard/internal/platform/logger"
	"github.com/phrazzld/taskboard/internal/platform/sqlstore"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (default: ./config.yaml if present)")
	migrateCmd := flag.String("migrate", "", "Run a migration command (up, down, status, version) and exit")
	flag.Parse()

	if err := run(context.Background(), *configPath, *migrateCmd); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, opens the database, applies migrations and either
// executes a single migration command or serves HTTP until shutdown.
func run(ctx context.Context, configPath, migrateCmd string) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver,
		"allowed_origin", cfg.Server.AllowedOrigin)

	db, dialect, err := sqlstore.Open(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if migrateCmd != "" {
		defer func() { _ = db.Close() }()
		return sqlstore.Migrate(ctx, db, dialect, migrateCmd, log)
	}

	if err := sqlstore.Migrate(ctx, db, dialect, "up", log); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	app, err := newApplication(cfg, log, db, dialect)
	if err != nil {
		_ = db.Close()
		return err
	}
	return app.Run(ctx)
}
