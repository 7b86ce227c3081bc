package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, hasher.Check("s3cret-password", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	assert.False(t, hasher.Check("anything", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("anything", ""))
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	hasher := NewBcryptHasherWithCost(6)

	hash, err := hasher.Hash("password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}
