package store

import (
	"context"

	"github.com/lmercier/pokecard-api/internal/domain"
)

// CardStore defines the interface for card catalog persistence.
type CardStore interface {
	// List returns all cards in the catalog with their Type embedded,
	// ordered by ID. Returns an empty slice when the catalog is empty.
	List(ctx context.Context) ([]*domain.PokemonCard, error)

	// GetByID retrieves a card by its unique ID with its Type embedded.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id int64) (*domain.PokemonCard, error)

	// Create inserts a new card and fills in its generated ID.
	// Returns ErrCardExists if the name or pokedex ID is already taken
	// (the unique indexes are the authoritative conflict signal).
	// Returns ErrInvalidEntity if the referenced type does not exist.
	Create(ctx context.Context, card *domain.PokemonCard) error

	// Update saves changes to an existing card.
	// Returns ErrCardNotFound if the card does not exist and ErrCardExists
	// if the new name or pokedex ID collides with another card.
	Update(ctx context.Context, card *domain.PokemonCard) error

	// Delete removes a card by its ID.
	// Returns ErrCardNotFound if the card does not exist.
	Delete(ctx context.Context, id int64) error

	// FindConflicting looks for a card other than excludeID holding the
	// given name OR pokedex ID. Pass excludeID 0 to consider all cards.
	// Returns ErrCardNotFound when no conflicting card exists.
	FindConflicting(ctx context.Context, name string, pokedexID int32, excludeID int64) (*domain.PokemonCard, error)
}
