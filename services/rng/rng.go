package rng

import (
	"golang.org/x/exp/rand"
)

// Stream is the single seeded random stream a run consumes. Every shuffle,
// replenishment draw and shop roll advances it, so a run can be replayed
// bit-identically from the seed, and resumed mid-run from the marshaled
// generator position.
type Stream struct {
	src *rand.PCGSource
	*rand.Rand
}

func NewStream(seed uint64) *Stream {
	src := &rand.PCGSource{}
	src.Seed(seed)
	return &Stream{src: src, Rand: rand.New(src)}
}

// State captures the internal generator position (not just the seed).
func (s *Stream) State() ([]byte, error) {
	return s.src.MarshalBinary()
}

// Restore rebuilds a stream at an exact saved position.
func Restore(state []byte) (*Stream, error) {
	src := &rand.PCGSource{}
	if err := src.UnmarshalBinary(state); err != nil {
		return nil, err
	}
	return &Stream{src: src, Rand: rand.New(src)}, nil
}
