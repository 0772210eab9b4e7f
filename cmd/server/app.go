package main

import (
	"database/sql"
	"log/slog"

	"github.com/lmercier/pokecard-api/internal/api"
	"github.com/lmercier/pokecard-api/internal/api/middleware"
	"github.com/lmercier/pokecard-api/internal/config"
	"github.com/lmercier/pokecard-api/internal/platform/postgres"
	"github.com/lmercier/pokecard-api/internal/service/auth"
)

// application holds the assembled dependencies of the running server.
type application struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *sql.DB

	cardHandler    *api.CardHandler
	typeHandler    *api.TypeHandler
	authHandler    *api.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// newApplication constructs the dependency graph: stores over the
// database handle, services over the stores, handlers over both.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	typeStore := postgres.NewPostgresTypeStore(db, logger)
	cardStore := postgres.NewPostgresCardStore(db, logger)
	userStore := postgres.NewPostgresUserStore(db, logger)

	jwtService := auth.NewJWTService(cfg.Auth)
	passwordHasher := auth.NewBcryptHasher()
	passwordVerifier := auth.NewBcryptVerifier()

	return &application{
		cfg:    cfg,
		logger: logger,
		db:     db,

		cardHandler:    api.NewCardHandler(cardStore, typeStore, logger),
		typeHandler:    api.NewTypeHandler(typeStore, logger),
		authHandler:    api.NewAuthHandler(userStore, jwtService, passwordHasher, passwordVerifier, logger),
		authMiddleware: middleware.NewAuthMiddleware(jwtService),
	}
}
