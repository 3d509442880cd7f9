package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hashed, err := hasher.Hash("admin123")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "admin123", hashed)

	assert.NoError(t, hasher.Compare(hashed, "admin123"))
	assert.Error(t, hasher.Compare(hashed, "wrong"))
}

func TestBcryptHashesDiffer(t *testing.T) {
	hasher := NewBcryptHasher(4)

	a, err := hasher.Hash("admin123")
	require.NoError(t, err)
	b, err := hasher.Hash("admin123")
	require.NoError(t, err)

	// Each hash carries its own salt.
	assert.NotEqual(t, a, b)
}

func TestBcryptCompareRejectsMalformedHash(t *testing.T) {
	hasher := NewBcryptHasher(0)
	assert.Error(t, hasher.Compare("not-a-bcrypt-hash", "admin123"))
}
