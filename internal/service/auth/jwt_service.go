// Package auth provides token signing and password hashing services.
package auth

import (
	"context"
	"time"

	"github.com/lmercier/pokecard-api/internal/domain"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT embedding the user's ID and email.
	// Returns ErrMissingSecret when no signing secret is configured.
	GenerateToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims carries the application-level token claims alongside the
// standard registered fields.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID int64 `json:"id"`

	// Email is the user's normalized email address.
	Email string `json:"email"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
