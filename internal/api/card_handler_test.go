package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmercier/pokecard-api/internal/api/shared"
	"github.com/lmercier/pokecard-api/internal/domain"
	"github.com/lmercier/pokecard-api/internal/mocks"
)

func newTestCardHandler(cardStore *mocks.MockCardStore, typeStore *mocks.MockTypeStore) *CardHandler {
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCardHandler(cardStore, typeStore, testLogger)
}

// newCardRequest builds a request with the chi route context populated,
// mirroring what the router does for path parameters.
func newCardRequest(t *testing.T, method, target, pathID string, body []byte) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewBuffer(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	rctx := chi.NewRouteContext()
	if pathID != "" {
		rctx.URLParams.Add("id", pathID)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func seedCard(t *testing.T, cardStore *mocks.MockCardStore, name string, pokedexID int32, typeID int64) *domain.PokemonCard {
	t.Helper()
	card, err := domain.NewPokemonCard(name, pokedexID, typeID, 50)
	require.NoError(t, err)
	require.NoError(t, cardStore.Create(context.Background(), card))
	return card
}

func TestListCards(t *testing.T) {
	t.Run("returns empty array when catalog is empty", func(t *testing.T) {
		handler := newTestCardHandler(mocks.NewMockCardStore(), mocks.NewMockTypeStore())

		rr := httptest.NewRecorder()
		handler.ListCards(rr, newCardRequest(t, http.MethodGet, "/pokemons-cards", "", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("returns all cards", func(t *testing.T) {
		cardStore := mocks.NewMockCardStore()
		typeStore := mocks.NewMockTypeStore()
		electric := typeStore.Add("Electric")
		fire := typeStore.Add("Fire")
		seedCard(t, cardStore, "Pikachu", 25, electric.ID)
		seedCard(t, cardStore, "Charmander", 4, fire.ID)

		handler := newTestCardHandler(cardStore, typeStore)

		rr := httptest.NewRecorder()
		handler.ListCards(rr, newCardRequest(t, http.MethodGet, "/pokemons-cards", "", nil))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []CardResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "Pikachu", resp[0].Name)
		assert.Equal(t, "Charmander", resp[1].Name)
	})

	t.Run("store failure yields 500", func(t *testing.T) {
		cardStore := mocks.NewMockCardStore()
		cardStore.ListFn = func(ctx context.Context) ([]*domain.PokemonCard, error) {
			return nil, errors.New("connection reset")
		}
		handler := newTestCardHandler(cardStore, mocks.NewMockTypeStore())

		rr := httptest.NewRecorder()
		handler.ListCards(rr, newCardRequest(t, http.MethodGet, "/pokemons-cards", "", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var errResp shared.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
		assert.NotContains(t, errResp.Error, "connection reset")
	})
}

func TestGetCard(t *testing.T) {
	cardStore := mocks.NewMockCardStore()
	typeStore := mocks.NewMockTypeStore()
	electric := typeStore.Add("Electric")
	card := seedCard(t, cardStore, "Pikachu", 25, electric.ID)

	handler := newTestCardHandler(cardStore, typeStore)

	tests := []struct {
		name           string
		pathID         string
		expectedStatus int
	}{
		{"existing card", "1", http.StatusOK},
		{"unknown card", "999", http.StatusNotFound},
		{"non-numeric ID", "abc", http.StatusBadRequest},
		{"negative ID", "-3", http.StatusBadRequest},
		{"zero ID", "0", http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handler.GetCard(rr, newCardRequest(t, http.MethodGet, "/pokemons-cards/"+tc.pathID, tc.pathID, nil))

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp CardResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, card.ID, resp.ID)
				assert.Equal(t, "Pikachu", resp.Name)
			}
		})
	}
}

func TestCreateCard(t *testing.T) {
	validBody := func() []byte {
		b, _ := json.Marshal(map[string]interface{}{
			"name":       "Bulbasaur",
			"pokedexId":  1,
			"type":       "Grass",
			"lifePoints": 45,
		})
		return b
	}

	t.Run("creates card and embeds type", func(t *testing.T) {
		cardStore := mocks.NewMockCardStore()
		typeStore := mocks.NewMockTypeStore()
		typeStore.Add("Grass")
		handler := newTestCardHandler(cardStore, typeStore)

		rr := httptest.NewRecorder()
		handler.CreateCard(rr, newCardRequest(t, http.MethodPost, "/pokemons-cards", "", validBody()))

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp CardResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Bulbasaur", resp.Name)
		assert.Equal(t, int32(1), resp.PokedexID)
		require.NotNil(t, resp.Type)
		assert.Equal(t, "Grass", resp.Type.Name)
	})

	t.Run("unknown type is created on the fly", func(t *testing.T) {
		cardStore := mocks.NewMockCardStore()
		typeStore := mocks.NewMockTypeStore()
		handler := newTestCardHandler(cardStore, typeStore)

		rr := httptest.NewRecorder()
		handler.CreateCard(rr, newCardRequest(t, http.MethodPost, "/pokemons-cards", "", validBody()))

		assert.Equal(t, http.StatusCreated, rr.Code)
		_, ok := typeStore.Types["Grass"]
		assert.True(t, ok, "type should have been created")
	})

	t.Run("optional fields are persisted", func(t *testing.T) {
		cardStore := mocks.NewMockCardStore()
		typeStore := mocks.NewMockTypeStore()
		handler := newTestCardHandler(cardStore, typeStore)

		body, _ := json.Marshal(map[string]interface{}{
			"name":       "Snorlax",
			"pokedexId":  143,
			"type":       "Normal",
			"lifePoints": 160,
			"size":       2.1,
			"weight":     460.0,
			"imageUrl":   "https://img.example/snorlax.png",
		})

		rr := httptest.NewRecorder()
		handler.CreateCard(rr, newCardRequest(t, http.MethodPost, "/pokemons-cards", "", body))

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp CardResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.NotNil(t, resp.Size)
		assert.Equal(t, 2.1, *resp.Size)
		require.NotNil(t, resp.Weight)
		assert.Equal(t, 460.0, *resp.Weight)
		require.NotNil(t, resp.ImageURL)
		assert.Equal(t, "https://img.example/snorlax.png", *resp.ImageURL)
	})

	t.Run("missing required fields yields 400", func(t *testing.T) {
		handler := newTestCardHandler(mocks.NewMockCardStore(), mocks.NewMockTypeStore())

		tests := []map[string]interface{}{
			{"pokedexId": 1, "type": "Grass", "lifePoints": 45},
			{"name": "Bulbasaur", "type": "Grass", "lifePoints": 45},
			{"name": "Bulbasaur", "pokedexId": 1, "lifePoints": 45},
			{"name": "Bulbasaur", "pokedexId": 1, "type": "Grass"},
			{"name": "Bulbasaur", "pokedexId": 0, "type": "Grass", "lifePoints": 45},
			{"name": "Bulbasaur", "pokedexId": 1, "type": "Grass", "lifePoints": 0},
		}

		for _, payload := range tests {
			body, _ := json.Marshal(payload)
			rr := httptest.NewRecorder()
			handler.CreateCard(rr, newCardRequest(t, http.MethodPost, "/pokemons-cards", "", body))
			assert.Equal(t, http.StatusBadRequest, rr.Code, "payload: %v", payload)
		}
	})

	t.Run("malformed JSON yields 400", func(t *testing.T) {
		handler := newTestCardHandler(mocks.NewMockCardStore(), mocks.NewMockTypeStore())

		rr := httptest.NewRecorder()
		handler.CreateCard(rr, newCardRequest(t, http.MethodPost, "/pokemons-cards", "", []byte("{not json")))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("duplicate name yields 400", func(t *testing.T) {
		cardStore := mocks.NewMockCardStore()
		typeStore := mocks.NewMockTypeStore()
		grass := typeStore.Add("Grass")
		seedCard(t, cardStore, "Bulbasaur", 99, grass.ID)
		handler := newTestCardHandler(cardStore, typeStore)

		rr := httptest.NewRecorder()
		handler.CreateCard(rr, newCardRequest(t, http.MethodPost, "/pokemons-cards", "", validBody()))

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var errResp shared.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
		assert.Contains(t, errResp.Error, "already exists")
	})

	t.Run("duplicate pokedex ID yields 400", func(t *testing.T) {
		cardStore := mocks.NewMockCardStore()
		typeStore := mocks.NewMockTypeStore()
		grass := typeStore.Add("Grass")
		seedCard(t, cardStore, "Ivysaur", 1, grass.ID)
		handler := newTestCardHandler(cardStore, typeStore)

		rr := httptest.NewRecorder()
		handler.CreateCard(rr, newCardRequest(t, http.MethodPost, "/pokemons-cards", "", validBody()))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("type resolution failure yields 500", func(t *testing.T) {
		typeStore := mocks.NewMockTypeStore()
		typeStore.GetOrCreateByNameFn = func(ctx context.Context, name string) (*domain.Type, error) {
			return nil, errors.New("db down")
		}
		handler := newTestCardHandler(mocks.NewMockCardStore(), typeStore)

		rr := httptest.NewRecorder()
		handler.CreateCard(rr, newCardRequest(t, http.MethodPost, "/pokemons-cards", "", validBody()))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestUpdateCard(t *testing.T) {
	setup := func(t *testing.T) (*mocks.MockCardStore, *mocks.MockTypeStore, *CardHandler, *domain.PokemonCard) {
		cardStore := mocks.NewMockCardStore()
		typeStore := mocks.NewMockTypeStore()
		electric := typeStore.Add("Electric")
		typeStore.Add("Fire")
		card := seedCard(t, cardStore, "Pikachu", 25, electric.ID)
		return cardStore, typeStore, newTestCardHandler(cardStore, typeStore), card
	}

	t.Run("updates supplied fields only", func(t *testing.T) {
		cardStore, _, handler, card := setup(t)

		body, _ := json.Marshal(map[string]interface{}{"lifePoints": 80})
		rr := httptest.NewRecorder()
		handler.UpdateCard(rr, newCardRequest(t, http.MethodPatch, "/pokemons-cards/1", "1", body))

		assert.Equal(t, http.StatusOK, rr.Code)

		stored := cardStore.Cards[card.ID]
		assert.Equal(t, int32(80), stored.LifePoints)
		assert.Equal(t, "Pikachu", stored.Name)
		assert.Equal(t, int32(25), stored.PokedexID)
	})

	t.Run("changes type to an existing one", func(t *testing.T) {
		cardStore, typeStore, handler, card := setup(t)

		body, _ := json.Marshal(map[string]interface{}{"type": "Fire"})
		rr := httptest.NewRecorder()
		handler.UpdateCard(rr, newCardRequest(t, http.MethodPatch, "/pokemons-cards/1", "1", body))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, typeStore.Types["Fire"].ID, cardStore.Cards[card.ID].TypeID)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		_, typeStore, handler, _ := setup(t)

		body, _ := json.Marshal(map[string]interface{}{"type": "Shadow"})
		rr := httptest.NewRecorder()
		handler.UpdateCard(rr, newCardRequest(t, http.MethodPatch, "/pokemons-cards/1", "1", body))

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var errResp shared.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
		assert.Equal(t, "Type does not exist", errResp.Error)

		// Unlike create, update never adds a type.
		_, ok := typeStore.Types["Shadow"]
		assert.False(t, ok)
	})

	t.Run("unknown card yields 404", func(t *testing.T) {
		_, _, handler, _ := setup(t)

		body, _ := json.Marshal(map[string]interface{}{"lifePoints": 80})
		rr := httptest.NewRecorder()
		handler.UpdateCard(rr, newCardRequest(t, http.MethodPatch, "/pokemons-cards/42", "42", body))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid path ID yields 400", func(t *testing.T) {
		_, _, handler, _ := setup(t)

		body, _ := json.Marshal(map[string]interface{}{"lifePoints": 80})
		rr := httptest.NewRecorder()
		handler.UpdateCard(rr, newCardRequest(t, http.MethodPatch, "/pokemons-cards/zero", "zero", body))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("conflicting name with another card yields 400", func(t *testing.T) {
		cardStore, typeStore, handler, _ := setup(t)
		seedCard(t, cardStore, "Raichu", 26, typeStore.Types["Electric"].ID)

		body, _ := json.Marshal(map[string]interface{}{"name": "Raichu"})
		rr := httptest.NewRecorder()
		handler.UpdateCard(rr, newCardRequest(t, http.MethodPatch, "/pokemons-cards/1", "1", body))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("keeping own name is not a conflict", func(t *testing.T) {
		_, _, handler, _ := setup(t)

		body, _ := json.Marshal(map[string]interface{}{"name": "Pikachu", "lifePoints": 70})
		rr := httptest.NewRecorder()
		handler.UpdateCard(rr, newCardRequest(t, http.MethodPatch, "/pokemons-cards/1", "1", body))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("store-level validation failure yields 400", func(t *testing.T) {
		cardStore, _, handler, _ := setup(t)
		// Mirror the real store: entities are validated before the write.
		cardStore.UpdateFn = func(ctx context.Context, card *domain.PokemonCard) error {
			return card.Validate()
		}

		for _, tc := range []struct {
			payload string
			want    string
		}{
			{`{"name":""}`, domain.ErrEmptyCardName.Error()},
			{`{"size":-1}`, domain.ErrNegativeMeasurement.Error()},
			{`{"weight":-0.5}`, domain.ErrNegativeMeasurement.Error()},
		} {
			rr := httptest.NewRecorder()
			handler.UpdateCard(rr, newCardRequest(t, http.MethodPatch, "/pokemons-cards/1", "1", []byte(tc.payload)))

			assert.Equal(t, http.StatusBadRequest, rr.Code, "payload: %s", tc.payload)

			var errResp shared.ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
			assert.Equal(t, tc.want, errResp.Error, "payload: %s", tc.payload)
		}
	})

	t.Run("non-positive field values yield 400", func(t *testing.T) {
		_, _, handler, _ := setup(t)

		for _, payload := range []map[string]interface{}{
			{"lifePoints": 0},
			{"lifePoints": -5},
			{"pokedexId": 0},
			{"pokedexId": -1},
		} {
			body, _ := json.Marshal(payload)
			rr := httptest.NewRecorder()
			handler.UpdateCard(rr, newCardRequest(t, http.MethodPatch, "/pokemons-cards/1", "1", body))
			assert.Equal(t, http.StatusBadRequest, rr.Code, "payload: %v", payload)
		}
	})
}

func TestDeleteCard(t *testing.T) {
	setup := func(t *testing.T) (*mocks.MockCardStore, *CardHandler) {
		cardStore := mocks.NewMockCardStore()
		typeStore := mocks.NewMockTypeStore()
		electric := typeStore.Add("Electric")
		seedCard(t, cardStore, "Pikachu", 25, electric.ID)
		return cardStore, newTestCardHandler(cardStore, typeStore)
	}

	t.Run("deletes an existing card", func(t *testing.T) {
		cardStore, handler := setup(t)

		rr := httptest.NewRecorder()
		handler.DeleteCard(rr, newCardRequest(t, http.MethodDelete, "/pokemons-cards/1", "1", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, cardStore.Cards)

		var resp MessageResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Pokemon card deleted", resp.Message)
	})

	t.Run("unknown card yields 404", func(t *testing.T) {
		_, handler := setup(t)

		rr := httptest.NewRecorder()
		handler.DeleteCard(rr, newCardRequest(t, http.MethodDelete, "/pokemons-cards/77", "77", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid path ID yields 400", func(t *testing.T) {
		_, handler := setup(t)

		rr := httptest.NewRecorder()
		handler.DeleteCard(rr, newCardRequest(t, http.MethodDelete, "/pokemons-cards/x", "x", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
