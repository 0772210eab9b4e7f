// Command seed populates the database with the baseline catalog data:
// the standard card types and a default administrator account. It is
// safe to run repeatedly; existing rows are left alone.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/joho/godotenv"

	"github.com/lmercier/pokecard-api/internal/config"
	"github.com/lmercier/pokecard-api/internal/domain"
	"github.com/lmercier/pokecard-api/internal/platform/logger"
	"github.com/lmercier/pokecard-api/internal/platform/postgres"
	"github.com/lmercier/pokecard-api/internal/service/auth"
	"github.com/lmercier/pokecard-api/internal/store"
)

// typeNames lists the standard card types seeded into an empty catalog.
var typeNames = []string{
	"Normal", "Fire", "Water", "Grass", "Electric", "Ice",
	"Fighting", "Poison", "Ground", "Flying", "Psychic", "Bug",
	"Rock", "Ghost", "Dragon", "Dark", "Steel", "Fairy",
}

const (
	defaultAdminEmail    = "admin@gmail.com"
	defaultAdminPassword = "admin"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("Failed to close database connection", "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	typeStore := postgres.NewPostgresTypeStore(db, appLogger)
	for _, name := range typeNames {
		if _, err := typeStore.GetOrCreateByName(ctx, name); err != nil {
			return fmt.Errorf("failed to seed type %q: %w", name, err)
		}
	}
	appLogger.Info("Card types seeded", "count", len(typeNames))

	userStore := postgres.NewPostgresUserStore(db, appLogger)
	if err := seedAdmin(ctx, userStore, appLogger); err != nil {
		return err
	}

	appLogger.Info("Seeding completed")
	return nil
}

// seedAdmin ensures the default administrator account exists. The
// credentials can be overridden with ADMIN_EMAIL and ADMIN_PASSWORD.
func seedAdmin(ctx context.Context, users store.UserStore, appLogger *slog.Logger) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = defaultAdminEmail
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = defaultAdminPassword
	}

	admin, err := domain.NewUser(email, password)
	if err != nil {
		return fmt.Errorf("invalid admin credentials: %w", err)
	}

	if _, err := users.GetByEmail(ctx, admin.Email); err == nil {
		appLogger.Info("Admin user already exists", "email", admin.Email)
		return nil
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hash, err := auth.NewBcryptHasher().Hash(admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin.HashedPassword = hash

	if err := users.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	appLogger.Info("Admin user created", "email", admin.Email)
	return nil
}
