package ristretto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(Config{NumCounters: 1 << 12, MaxCost: 1 << 20, BufferItems: 64})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestSetThenGetObservesValue(t *testing.T) {
	s := newStore(t)

	s.Set("k", []byte(`{"v":1}`))

	b, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"v":1}`), b)
}

func TestDeletePrunesIndex(t *testing.T) {
	s := newStore(t)

	s.Set("k", []byte("v"))
	s.Delete("k")

	_, ok := s.Get("k")
	assert.False(t, ok)
	assert.NotContains(t, s.Keys(), "k")
}

func TestKeysTracksAdmittedEntries(t *testing.T) {
	s := newStore(t)

	s.Set("a", []byte("1"))
	s.Set("b", []byte("2"))

	// admission is probabilistic under pressure, but a near-empty cache
	// admits everything
	assert.ElementsMatch(t, []string{"a", "b"}, s.Keys())
	assert.Equal(t, 2, s.Len())
}

func TestReset(t *testing.T) {
	s := newStore(t)

	s.Set("a", []byte("1"))
	s.Reset()

	_, ok := s.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}
