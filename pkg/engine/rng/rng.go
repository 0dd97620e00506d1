// Package rng provides the deterministic random stream threaded through
// map generation and in-turn effects. There is no package-level
// generator: every consumer receives a *Stream explicitly, so the same
// seed always replays the same sequence.
package rng

import "math/rand/v2"

// Stream is a seeded PCG generator whose cursor is plain value state.
// Copying a Stream copies the cursor, so a cloned snapshot continues
// the sequence without disturbing its parent.
type Stream struct {
	src rand.PCG
}

// NewStream returns a stream seeded from seed.
func NewStream(seed int64) Stream {
	var s Stream
	s.src.Seed(uint64(seed), uint64(seed)*0x9E3779B97F4A7C15+1)
	return s
}

// rand wraps the cursor in the stdlib helper for one draw.
func (s *Stream) rand() *rand.Rand {
	return rand.New(&s.src)
}

// Uint64 returns the next raw value and advances the cursor.
func (s *Stream) Uint64() uint64 {
	return s.src.Uint64()
}

// IntN returns a uniform value in [0, n). Panics if n <= 0.
func (s *Stream) IntN(n int) int {
	return s.rand().IntN(n)
}

// Between returns a uniform value in [lo, hi] inclusive. Panics if
// hi < lo.
func (s *Stream) Between(lo, hi int) int {
	return lo + s.IntN(hi-lo+1)
}

// Chance reports true with probability percent/100.
func (s *Stream) Chance(percent int) bool {
	return s.IntN(100) < percent
}

// Shuffle pseudo-randomizes the order of n elements via swap.
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	s.rand().Shuffle(n, swap)
}
