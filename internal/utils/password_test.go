package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("pw12345", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "pw12345", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"), "bcrypt hashes carry the $2 prefix")
	assert.True(t, VerifyPassword(hash, "pw12345"))
	assert.False(t, VerifyPassword(hash, "pw54321"))
	assert.False(t, VerifyPassword("not-a-hash", "pw12345"))
}

func TestHashPasswordSalts(t *testing.T) {
	a, err := HashPassword("pw12345", bcrypt.MinCost)
	require.NoError(t, err)
	b, err := HashPassword("pw12345", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "per-hash salt must differ")
}

func TestRandomHex(t *testing.T) {
	a, err := RandomHex(32)
	require.NoError(t, err)
	b, err := RandomHex(32)
	require.NoError(t, err)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
