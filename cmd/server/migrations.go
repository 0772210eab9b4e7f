package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/lmercier/pokecard-api/db/migrations"
)

// runMigrations applies any pending schema migrations from the embedded
// migration files. The server refuses to start if the schema cannot be
// brought up to date.
func runMigrations(db *sql.DB, logger *slog.Logger) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(&gooseSlogAdapter{logger: logger})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	logger.Info("Database migrations applied", "version", version)
	return nil
}

// gooseSlogAdapter routes goose's log output through the structured
// logger so migration output matches the rest of the server's logs.
type gooseSlogAdapter struct {
	logger *slog.Logger
}

func (a *gooseSlogAdapter) Fatalf(format string, v ...interface{}) {
	a.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (a *gooseSlogAdapter) Printf(format string, v ...interface{}) {
	a.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
