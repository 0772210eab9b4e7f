package mocks

import (
	"context"

	"github.com/lmercier/pokecard-api/internal/domain"
	"github.com/lmercier/pokecard-api/internal/store"
)

// MockCardStore implements store.CardStore for testing
type MockCardStore struct {
	// Function fields for customizable behavior
	ListFn            func(ctx context.Context) ([]*domain.PokemonCard, error)
	GetByIDFn         func(ctx context.Context, id int64) (*domain.PokemonCard, error)
	CreateFn          func(ctx context.Context, card *domain.PokemonCard) error
	UpdateFn          func(ctx context.Context, card *domain.PokemonCard) error
	DeleteFn          func(ctx context.Context, id int64) error
	FindConflictingFn func(ctx context.Context, name string, pokedexID int32, excludeID int64) (*domain.PokemonCard, error)

	// Data for the default implementation
	Cards  map[int64]*domain.PokemonCard
	NextID int64
}

// Ensure MockCardStore implements store.CardStore
var _ store.CardStore = (*MockCardStore)(nil)

// NewMockCardStore creates a new mock store with initialized defaults
func NewMockCardStore() *MockCardStore {
	return &MockCardStore{
		Cards:  make(map[int64]*domain.PokemonCard),
		NextID: 1,
	}
}

// List implements the CardStore interface
func (m *MockCardStore) List(ctx context.Context) ([]*domain.PokemonCard, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	cards := []*domain.PokemonCard{}
	for id := int64(1); id < m.NextID; id++ {
		if card, ok := m.Cards[id]; ok {
			cards = append(cards, card)
		}
	}
	return cards, nil
}

// GetByID implements the CardStore interface
func (m *MockCardStore) GetByID(ctx context.Context, id int64) (*domain.PokemonCard, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	card, ok := m.Cards[id]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	copied := *card
	return &copied, nil
}

// Create implements the CardStore interface
func (m *MockCardStore) Create(ctx context.Context, card *domain.PokemonCard) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, card)
	}

	for _, existing := range m.Cards {
		if existing.Name == card.Name || existing.PokedexID == card.PokedexID {
			return store.ErrCardExists
		}
	}

	card.ID = m.NextID
	m.NextID++
	copied := *card
	m.Cards[card.ID] = &copied
	return nil
}

// Update implements the CardStore interface
func (m *MockCardStore) Update(ctx context.Context, card *domain.PokemonCard) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, card)
	}

	if _, ok := m.Cards[card.ID]; !ok {
		return store.ErrCardNotFound
	}
	for id, existing := range m.Cards {
		if id != card.ID && (existing.Name == card.Name || existing.PokedexID == card.PokedexID) {
			return store.ErrCardExists
		}
	}

	copied := *card
	m.Cards[card.ID] = &copied
	return nil
}

// Delete implements the CardStore interface
func (m *MockCardStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Cards[id]; !ok {
		return store.ErrCardNotFound
	}
	delete(m.Cards, id)
	return nil
}

// FindConflicting implements the CardStore interface
func (m *MockCardStore) FindConflicting(
	ctx context.Context,
	name string,
	pokedexID int32,
	excludeID int64,
) (*domain.PokemonCard, error) {
	if m.FindConflictingFn != nil {
		return m.FindConflictingFn(ctx, name, pokedexID, excludeID)
	}

	for id, existing := range m.Cards {
		if id == excludeID {
			continue
		}
		if existing.Name == name || existing.PokedexID == pokedexID {
			copied := *existing
			return &copied, nil
		}
	}
	return nil, store.ErrCardNotFound
}
