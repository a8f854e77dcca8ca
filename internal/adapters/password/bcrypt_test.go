package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct-password")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-password", hash)

	ok, err := h.Verify("correct-password", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("correct-passworD", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_FreshSaltPerHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	for _, stored := range []string{"", "plaintext", "$2a$10$short"} {
		ok, err := h.Verify("anything", stored)
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrMalformedHash, "stored=%q", stored)
	}
}

func TestNewBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewBcryptHasher(99).(*BcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}
