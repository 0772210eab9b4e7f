package store

import (
	"context"

	"github.com/lmercier/pokecard-api/internal/domain"
)

// UserStore defines the interface for user account persistence.
type UserStore interface {
	// Create saves a new user and fills in its generated ID.
	// The user's HashedPassword must already be set; plaintext passwords
	// are never stored. Returns ErrEmailExists if the email is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by their normalized email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
