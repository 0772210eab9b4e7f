package mocks

import (
	"context"

	"github.com/lmercier/pokecard-api/internal/domain"
	"github.com/lmercier/pokecard-api/internal/store"
)

// MockTypeStore implements store.TypeStore for testing
type MockTypeStore struct {
	// Function fields for customizable behavior
	ListFn              func(ctx context.Context) ([]*domain.Type, error)
	GetByNameFn         func(ctx context.Context, name string) (*domain.Type, error)
	GetOrCreateByNameFn func(ctx context.Context, name string) (*domain.Type, error)

	// Data for the default implementation
	Types  map[string]*domain.Type
	NextID int64
}

// Ensure MockTypeStore implements store.TypeStore
var _ store.TypeStore = (*MockTypeStore)(nil)

// NewMockTypeStore creates a new mock store with initialized defaults
func NewMockTypeStore() *MockTypeStore {
	return &MockTypeStore{
		Types:  make(map[string]*domain.Type),
		NextID: 1,
	}
}

// Add seeds the mock with a named type and returns it.
func (m *MockTypeStore) Add(name string) *domain.Type {
	t := &domain.Type{ID: m.NextID, Name: name}
	m.NextID++
	m.Types[name] = t
	return t
}

// List implements the TypeStore interface
func (m *MockTypeStore) List(ctx context.Context) ([]*domain.Type, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	types := []*domain.Type{}
	for id := int64(1); id < m.NextID; id++ {
		for _, t := range m.Types {
			if t.ID == id {
				types = append(types, t)
			}
		}
	}
	return types, nil
}

// GetByName implements the TypeStore interface
func (m *MockTypeStore) GetByName(ctx context.Context, name string) (*domain.Type, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}

	t, ok := m.Types[name]
	if !ok {
		return nil, store.ErrTypeNotFound
	}
	return t, nil
}

// GetOrCreateByName implements the TypeStore interface
func (m *MockTypeStore) GetOrCreateByName(ctx context.Context, name string) (*domain.Type, error) {
	if m.GetOrCreateByNameFn != nil {
		return m.GetOrCreateByNameFn(ctx, name)
	}

	if t, ok := m.Types[name]; ok {
		return t, nil
	}
	return m.Add(name), nil
}
