package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret1!")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1!", hash)

	ok, err := VerifyPassword("secret1!", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong1!", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	_, err := VerifyPassword("secret1!", "not-a-hash")
	assert.Error(t, err)
}

func TestHashPasswordSaltsEachCall(t *testing.T) {
	a, err := HashPassword("secret1!")
	require.NoError(t, err)
	b, err := HashPassword("secret1!")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
