package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamDeterministic(t *testing.T) {
	a := NewStream(1234)
	b := NewStream(1234)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(52), b.Intn(52))
	}
}

// A restored stream must continue exactly where the saved one left off,
// not restart from the seed.
func TestStateRoundTrip(t *testing.T) {
	s := NewStream(99)
	for i := 0; i < 37; i++ {
		s.Intn(52)
	}

	state, err := s.State()
	require.NoError(t, err)

	restored, err := Restore(state)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		assert.Equal(t, s.Intn(52), restored.Intn(52))
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	_, err := Restore([]byte{0x01})
	assert.Error(t, err)
}
