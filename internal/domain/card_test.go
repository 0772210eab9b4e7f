package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPokemonCard(t *testing.T) {
	t.Parallel()

	t.Run("valid card", func(t *testing.T) {
		t.Parallel()
		card, err := NewPokemonCard("Pikachu", 25, 5, 60)
		require.NoError(t, err)

		assert.Equal(t, "Pikachu", card.Name)
		assert.Equal(t, int32(25), card.PokedexID)
		assert.Equal(t, int64(5), card.TypeID)
		assert.Equal(t, int32(60), card.LifePoints)
		assert.False(t, card.CreatedAt.IsZero())
		assert.Equal(t, card.CreatedAt, card.UpdatedAt)
		assert.Nil(t, card.Size)
		assert.Nil(t, card.Weight)
		assert.Nil(t, card.ImageURL)
	})

	tests := []struct {
		name       string
		cardName   string
		pokedexID  int32
		typeID     int64
		lifePoints int32
		wantErr    error
	}{
		{"empty name", "", 25, 5, 60, ErrEmptyCardName},
		{"zero pokedex ID", "Pikachu", 0, 5, 60, ErrInvalidPokedexID},
		{"negative pokedex ID", "Pikachu", -1, 5, 60, ErrInvalidPokedexID},
		{"zero life points", "Pikachu", 25, 5, 0, ErrInvalidLifePoints},
		{"negative life points", "Pikachu", 25, 5, -10, ErrInvalidLifePoints},
		{"missing type", "Pikachu", 25, 0, 60, ErrMissingCardType},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := NewPokemonCard(tc.cardName, tc.pokedexID, tc.typeID, tc.lifePoints)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, card)
		})
	}
}

func TestPokemonCardValidateMeasurements(t *testing.T) {
	t.Parallel()

	card, err := NewPokemonCard("Snorlax", 143, 1, 160)
	require.NoError(t, err)

	size := -0.5
	card.Size = &size
	assert.ErrorIs(t, card.Validate(), ErrNegativeMeasurement)

	positive := 2.1
	card.Size = &positive
	assert.NoError(t, card.Validate())

	weight := -460.0
	card.Weight = &weight
	assert.ErrorIs(t, card.Validate(), ErrNegativeMeasurement)
}

func TestCardValidationErrorsWrapErrValidation(t *testing.T) {
	t.Parallel()

	for _, err := range []error{
		ErrEmptyCardName,
		ErrInvalidPokedexID,
		ErrInvalidLifePoints,
		ErrMissingCardType,
		ErrNegativeMeasurement,
		ErrEmptyTypeName,
	} {
		assert.ErrorIs(t, err, ErrValidation, "%v", err)
	}
}

func TestTypeValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&Type{ID: 1, Name: "Electric"}).Validate())
	assert.ErrorIs(t, (&Type{ID: 2}).Validate(), ErrEmptyTypeName)
}
