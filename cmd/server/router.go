package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	apiMiddleware "github.com/lmercier/pokecard-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// The API serves browser clients from any origin, including the
	// Authorization header for the protected routes.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(apiMiddleware.TraceMiddleware)

	r.Route("/api", func(r chi.Router) {
		// Card catalog endpoints (public)
		r.Get("/pokemons-cards", app.cardHandler.ListCards)
		r.Post("/pokemons-cards", app.cardHandler.CreateCard)
		r.Get("/pokemons-cards/{id}", app.cardHandler.GetCard)
		r.Patch("/pokemons-cards/{id}", app.cardHandler.UpdateCard)
		r.Delete("/pokemons-cards/{id}", app.cardHandler.DeleteCard)

		// Type lookup endpoint (public, read-only)
		r.Get("/types", app.typeHandler.ListTypes)

		// User account endpoints (public)
		r.Post("/users", app.authHandler.Register)
		r.Post("/users/login", app.authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(app.authMiddleware.Authenticate)
			r.Get("/users/me", app.authHandler.Me)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
