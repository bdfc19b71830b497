package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sungchun12/keyspan/internal/alphabet"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	assert.Equal(t, a.UUID(), b.UUID())
	assert.Equal(t, a.Alphanum(10), b.Alphanum(10))
	assert.Equal(t, a.Intn(1000), b.Intn(1000))
}

func TestRNG_Reset(t *testing.T) {
	r := NewRNG(7)
	first := r.UUID()
	r.Reset()
	assert.Equal(t, first, r.UUID())
	assert.Equal(t, int64(7), r.Seed())
}

func TestRNG_Alphanum(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 100; i++ {
		s := r.Alphanum(8)
		require.NotEmpty(t, s)
		require.LessOrEqual(t, len(s), 8)
		assert.NoError(t, alphabet.Valid(s))
	}
}
