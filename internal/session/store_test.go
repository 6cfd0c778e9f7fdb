package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken(t *testing.T) {
	a, err := NewToken()
	require.NoError(t, err)
	b, err := NewToken()
	require.NoError(t, err)

	assert.Len(t, a, 64) // 32 bytes hex encoded
	assert.NotEqual(t, a, b)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	d := Data{IsUser: true, User: "alice", Unum: 7}
	require.NoError(t, s.Set(ctx, "tok", d))

	got, ok, err := s.Get(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, d, got)

	// Last write wins.
	require.NoError(t, s.Set(ctx, "tok", Data{}))
	got, ok, err = s.Get(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, got.IsUser)

	require.NoError(t, s.Clear(ctx, "tok"))
	_, ok, err = s.Get(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing an unknown token is a no-op.
	require.NoError(t, s.Clear(ctx, "tok"))
}
