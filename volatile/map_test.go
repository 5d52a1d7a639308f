package volatile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRoundTrip(t *testing.T) {
	s := NewMap()
	defer s.Close()

	s.Set("k", []byte("v"))

	b, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), b)
}

func TestMapMiss(t *testing.T) {
	s := NewMap()
	_, ok := s.Get("nope")
	assert.False(t, ok)
}

func TestMapDeleteAndReset(t *testing.T) {
	s := NewMap()
	s.Set("a", []byte("1"))
	s.Set("b", []byte("2"))

	s.Delete("a")
	_, ok := s.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())

	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Keys())
}

func TestMapKeysSnapshot(t *testing.T) {
	s := NewMap()
	s.Set("a", []byte("1"))
	s.Set("b", []byte("2"))
	assert.ElementsMatch(t, []string{"a", "b"}, s.Keys())
}
