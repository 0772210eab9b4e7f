package domain

import (
	"fmt"
	"time"
)

// Card validation errors. Each wraps ErrValidation so callers can map
// the whole family with a single errors.Is check.
var (
	ErrEmptyCardName       = fmt.Errorf("%w: card name cannot be empty", ErrValidation)
	ErrInvalidPokedexID    = fmt.Errorf("%w: pokedex ID must be positive", ErrValidation)
	ErrInvalidLifePoints   = fmt.Errorf("%w: life points must be positive", ErrValidation)
	ErrMissingCardType     = fmt.Errorf("%w: card must reference a type", ErrValidation)
	ErrNegativeMeasurement = fmt.Errorf("%w: size and weight cannot be negative", ErrValidation)
)

// PokemonCard is a single collectible card in the catalog. Name and
// PokedexID are business keys: no two cards may share either value.
// TypeID references an existing Type row; Type is populated on reads
// that embed the lookup entity.
type PokemonCard struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	PokedexID  int32     `json:"pokedexId"`
	TypeID     int64     `json:"typeId"`
	LifePoints int32     `json:"lifePoints"`
	Size       *float64  `json:"size"`
	Weight     *float64  `json:"weight"`
	ImageURL   *string   `json:"imageUrl"`
	Type       *Type     `json:"type,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewPokemonCard assembles a card from its required fields, stamping
// creation and update times. Optional fields are applied by the caller.
// Returns an error if validation fails.
func NewPokemonCard(name string, pokedexID int32, typeID int64, lifePoints int32) (*PokemonCard, error) {
	now := time.Now().UTC()
	card := &PokemonCard{
		Name:       name,
		PokedexID:  pokedexID,
		TypeID:     typeID,
		LifePoints: lifePoints,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the PokemonCard has valid data.
// Returns an error if any field fails validation.
func (c *PokemonCard) Validate() error {
	if c.Name == "" {
		return ErrEmptyCardName
	}
	if c.PokedexID <= 0 {
		return ErrInvalidPokedexID
	}
	if c.LifePoints <= 0 {
		return ErrInvalidLifePoints
	}
	if c.TypeID <= 0 {
		return ErrMissingCardType
	}
	if c.Size != nil && *c.Size < 0 {
		return ErrNegativeMeasurement
	}
	if c.Weight != nil && *c.Weight < 0 {
		return ErrNegativeMeasurement
	}
	return nil
}
