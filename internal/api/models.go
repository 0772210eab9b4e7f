package api

import (
	"time"

	"github.com/lmercier/pokecard-api/internal/domain"
)

// Common request/response structures. Field names follow the wire
// contract the catalog has always exposed (camelCase, embedded type).

// CreateCardRequest defines the payload for creating a card.
// The required tags reject missing and zero values alike, matching the
// catalog's historical falsy-field check.
type CreateCardRequest struct {
	Name       string   `json:"name"       validate:"required"`
	PokedexID  int32    `json:"pokedexId"  validate:"required,gt=0"`
	Type       string   `json:"type"       validate:"required"`
	LifePoints int32    `json:"lifePoints" validate:"required,gt=0"`
	Size       *float64 `json:"size"`
	Weight     *float64 `json:"weight"`
	ImageURL   *string  `json:"imageUrl"`
}

// UpdateCardRequest defines the payload for partially updating a card.
// Every field is optional; nil means "keep the prior value".
type UpdateCardRequest struct {
	Name       *string  `json:"name"`
	PokedexID  *int32   `json:"pokedexId"  validate:"omitempty,gt=0"`
	Type       *string  `json:"type"`
	LifePoints *int32   `json:"lifePoints" validate:"omitempty,gt=0"`
	Size       *float64 `json:"size"`
	Weight     *float64 `json:"weight"`
	ImageURL   *string  `json:"imageUrl"`
}

// TypeResponse represents a type lookup row in API responses.
type TypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CardResponse represents a card in API responses, with its type embedded.
type CardResponse struct {
	ID         int64         `json:"id"`
	Name       string        `json:"name"`
	PokedexID  int32         `json:"pokedexId"`
	TypeID     int64         `json:"typeId"`
	LifePoints int32         `json:"lifePoints"`
	Size       *float64      `json:"size"`
	Weight     *float64      `json:"weight"`
	ImageURL   *string       `json:"imageUrl"`
	Type       *TypeResponse `json:"type,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// MessageResponse carries a confirmation message (e.g. after a delete).
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// UserResponse represents a user in API responses. The password hash is
// never included.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

// cardToResponse converts a domain.PokemonCard to a CardResponse.
func cardToResponse(card *domain.PokemonCard) CardResponse {
	resp := CardResponse{
		ID:         card.ID,
		Name:       card.Name,
		PokedexID:  card.PokedexID,
		TypeID:     card.TypeID,
		LifePoints: card.LifePoints,
		Size:       card.Size,
		Weight:     card.Weight,
		ImageURL:   card.ImageURL,
		CreatedAt:  card.CreatedAt,
		UpdatedAt:  card.UpdatedAt,
	}
	if card.Type != nil {
		resp.Type = &TypeResponse{ID: card.Type.ID, Name: card.Type.Name}
	}
	return resp
}

// cardsToResponse converts a slice of cards, never returning nil so the
// list endpoint serializes an empty array rather than null.
func cardsToResponse(cards []*domain.PokemonCard) []CardResponse {
	resp := make([]CardResponse, 0, len(cards))
	for _, card := range cards {
		resp = append(resp, cardToResponse(card))
	}
	return resp
}

// typesToResponse converts a slice of types, never returning nil so the
// list endpoint serializes an empty array rather than null.
func typesToResponse(types []*domain.Type) []TypeResponse {
	resp := make([]TypeResponse, 0, len(types))
	for _, t := range types {
		resp = append(resp, TypeResponse{ID: t.ID, Name: t.Name})
	}
	return resp
}

// userToResponse converts a domain.User to a UserResponse.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
