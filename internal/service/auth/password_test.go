package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	t.Run("hash verifies against the original password", func(t *testing.T) {
		t.Parallel()
		hash, err := hasher.Hash("pikachu123")
		require.NoError(t, err)
		require.NotEmpty(t, hash)
		assert.NotEqual(t, "pikachu123", hash)

		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pikachu123")))
	})

	t.Run("uses the expected cost", func(t *testing.T) {
		t.Parallel()
		hash, err := hasher.Hash("charmander")
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcryptCost, cost)
	})

	t.Run("same password yields different hashes", func(t *testing.T) {
		t.Parallel()
		first, err := hasher.Hash("squirtle")
		require.NoError(t, err)
		second, err := hasher.Hash("squirtle")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}

func TestBcryptVerifier(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()
	verifier := NewBcryptVerifier()

	hash, err := hasher.Hash("correct-password")
	require.NoError(t, err)

	t.Run("accepts a matching password", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, verifier.Compare(hash, "correct-password"))
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, verifier.Compare(hash, "wrong-password"))
	})

	t.Run("rejects a non-bcrypt hash", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, verifier.Compare("plaintext", "plaintext"))
	})
}
