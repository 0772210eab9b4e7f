package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lmercier/pokecard-api/internal/domain"
	"github.com/lmercier/pokecard-api/internal/service/auth"
	"github.com/lmercier/pokecard-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"card not found", store.ErrCardNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get: %w", store.ErrTypeNotFound), http.StatusNotFound},
		{"duplicate card", store.ErrCardExists, http.StatusBadRequest},
		{"duplicate email", store.ErrEmailExists, http.StatusBadRequest},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"validation error", domain.ErrValidation, http.StatusBadRequest},
		{"empty card name", domain.ErrEmptyCardName, http.StatusBadRequest},
		{"negative measurement", domain.ErrNegativeMeasurement, http.StatusBadRequest},
		{"invalid pokedex ID", domain.ErrInvalidPokedexID, http.StatusBadRequest},
		{"invalid life points", domain.ErrInvalidLifePoints, http.StatusBadRequest},
		{"missing card type", domain.ErrMissingCardType, http.StatusBadRequest},
		{"invalid email", domain.ErrInvalidEmail, http.StatusBadRequest},
		{"invalid ID", domain.ErrInvalidID, http.StatusBadRequest},
		{"missing secret", auth.ErrMissingSecret, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"card not found", store.ErrCardNotFound, "Pokemon card not found"},
		{"type not found", store.ErrTypeNotFound, "Type does not exist"},
		{"user not found", store.ErrUserNotFound, "User not found"},
		{"duplicate card", store.ErrCardExists, "A Pokemon card with this name or pokedex ID already exists"},
		{"duplicate email", store.ErrEmailExists, "Email is already in use"},
		{"invalid credentials", auth.ErrInvalidCredentials, "Invalid credentials"},
		{"invalid token", auth.ErrInvalidToken, "Invalid token"},
		{"expired token", auth.ErrExpiredToken, "Token expired"},
		{"validation errors keep their message", domain.ErrEmptyCardName, domain.ErrEmptyCardName.Error()},
		{"internal details are hidden", errors.New("pq: relation does not exist"), "An unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}
