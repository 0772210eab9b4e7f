package api

import (
	"errors"
	"net/http"

	"github.com/lmercier/pokecard-api/internal/domain"
	"github.com/lmercier/pokecard-api/internal/service/auth"
	"github.com/lmercier/pokecard-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Duplicate business keys and bad credentials are 400, not 409/401: the
// API contract has always reported them as plain bad requests.
func MapErrorToStatusCode(err error) int {
	switch {
	// Token errors (auth middleware)
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict and validation errors
	case store.IsDuplicateError(err),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// An unset signing secret fails closed.
	case errors.Is(err, auth.ErrMissingSecret):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// for the given error. Internal details are never exposed.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken):
		return "Invalid token"
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, store.ErrCardNotFound):
		return "Pokemon card not found"
	case errors.Is(err, store.ErrTypeNotFound):
		return "Type does not exist"
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrCardExists):
		return "A Pokemon card with this name or pokedex ID already exists"
	case errors.Is(err, store.ErrEmailExists):
		return "Email is already in use"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	// Validation messages describe the caller's own input and are safe
	// to return verbatim.
	case errors.Is(err, domain.ErrValidation):
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}
