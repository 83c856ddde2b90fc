package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, VerifyPassword("hunter22", hash))
	assert.False(t, VerifyPassword("hunter23", hash))
	assert.False(t, VerifyPassword("", hash))
}

func TestVerifyPasswordBadHash(t *testing.T) {
	assert.False(t, VerifyPassword("hunter22", "not-a-bcrypt-hash"))
	assert.False(t, VerifyPassword("hunter22", ""))
}

func TestHashIsSalted(t *testing.T) {
	first, err := HashPassword("hunter22")
	require.NoError(t, err)

	second, err := HashPassword("hunter22")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
