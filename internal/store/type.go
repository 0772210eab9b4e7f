package store

import (
	"context"

	"github.com/lmercier/pokecard-api/internal/domain"
)

// TypeStore defines the interface for type lookup persistence.
type TypeStore interface {
	// List returns all types ordered by ID.
	List(ctx context.Context) ([]*domain.Type, error)

	// GetByName retrieves a type by its unique name.
	// Returns ErrTypeNotFound if the type does not exist.
	GetByName(ctx context.Context, name string) (*domain.Type, error)

	// GetOrCreateByName resolves a type by name, creating it if absent.
	// The operation is idempotent: concurrent calls with the same name
	// converge on a single row.
	GetOrCreateByName(ctx context.Context, name string) (*domain.Type, error)
}
