// Package main implements the entry point for the card catalog API
// server: it loads configuration, sets up logging, connects to the
// database, applies migrations, and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/lmercier/pokecard-api/internal/config"
	"github.com/lmercier/pokecard-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// run wires the application together. Split from main so initialization
// errors propagate as values instead of os.Exit calls scattered around.
func run() error {
	// A local .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)
	if cfg.Auth.JWTSecret == "" {
		appLogger.Warn("JWT_SECRET is not set; login will fail until it is configured")
	}

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if err := runMigrations(db, appLogger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app := newApplication(cfg, appLogger, db)
	return app.Run(context.Background())
}
