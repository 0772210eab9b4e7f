package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic form of the entity-specific not found
	// errors (e.g. ErrCardNotFound, ErrUserNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g. a card with an already-used pokedex ID).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation or a
	// referential constraint before being stored. Check the wrapped error
	// for details.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrCardNotFound indicates that the requested card does not exist.
	ErrCardNotFound = fmt.Errorf("%w: card", ErrNotFound)

	// ErrTypeNotFound indicates that the requested type does not exist.
	ErrTypeNotFound = fmt.Errorf("%w: type", ErrNotFound)

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrCardExists indicates that a card with the same name or pokedex ID
	// already exists. Both business keys are covered by this one error
	// because the API reports them with a single conflict message.
	ErrCardExists = fmt.Errorf("%w: card name or pokedex ID", ErrDuplicate)

	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
