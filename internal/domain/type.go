package domain

import "fmt"

// ErrEmptyTypeName is returned when a type is created without a name.
// It is part of the ErrValidation family.
var ErrEmptyTypeName = fmt.Errorf("%w: type name cannot be empty", ErrValidation)

// Type is a lookup entity describing the elemental type of a Pokémon card
// (Fire, Water, Electric, ...). Types are created by seed data or lazily
// when a card referencing an unknown type name is created. They are never
// updated and deletion is not exposed.
type Type struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Validate checks if the Type has valid data.
func (t *Type) Validate() error {
	if t.Name == "" {
		return ErrEmptyTypeName
	}
	return nil
}
