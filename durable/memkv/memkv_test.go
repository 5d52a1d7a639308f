package memkv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripAndRemove(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.SetItem(ctx, "k", []byte("v")))

	b, ok, err := s.GetItem(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v"), b)

	require.NoError(t, s.RemoveItem(ctx, "k"))
	_, ok, err = s.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMultiRemoveAndKeys(t *testing.T) {
	ctx := context.Background()
	s := New()

	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, s.SetItem(ctx, k, []byte("v")))
	}
	require.NoError(t, s.MultiRemove(ctx, []string{"a", "b"}))

	keys, err := s.GetAllKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, keys)
}
