// Package seed provides a splittable pseudo-random seed abstraction.
//
// Generators never thread a single *rand.Rand through a draw the way
// math/rand-based code normally does; instead they split the incoming Seed
// into independent sub-streams so that composed generators (tuples, binds,
// lists of elements) each get their own reproducible randomness without
// stepping on each other's draws.
package seed

import "errors"

// ErrEmptyRange is returned by callers that build a [lo, hi] range
// dynamically and end up with no integers to choose from. UniformInRange
// itself never returns it: reversed bounds are normalized by swapping
// before any integer is chosen, so lo <= hi always holds by the time a
// value is drawn.
var ErrEmptyRange = errors.New("seed: empty range")

// Seed is opaque splittable PRNG state. The zero Seed is a valid seed,
// though not the same seed as New(0).
type Seed struct {
	s0, s1 uint64
}

// New derives a seed from an integer, typically the test framework's
// reproducibility seed.
func New(i int64) Seed {
	s := Seed{s0: uint64(i), s1: uint64(i) ^ goldenGamma}
	if s.s0 == 0 && s.s1 == 0 {
		s.s1 = goldenGamma
	}
	return s
}

// goldenGamma is the fractional part of the golden ratio times 2^64,
// the SplitMix64 increment constant.
const goldenGamma uint64 = 0x9E3779B97F4A7C15

// splitMix64 runs one step of the SplitMix64 generator, returning the next
// state and the value derived from it.
func splitMix64(state uint64) (next uint64, value uint64) {
	next = state + goldenGamma
	z := next
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z = z ^ (z >> 31)
	return next, z
}

// draw advances the seed deterministically and returns a fresh uint64,
// without mutating s (Seed is threaded by value).
func (s Seed) draw() (Seed, uint64) {
	s0, v0 := splitMix64(s.s0)
	s1, v1 := splitMix64(s.s1)
	out := v0 ^ (v1*0x2545F4914F6CDD1D + 1)
	return Seed{s0: s0, s1: s1}, out
}

// Split deterministically splits s into two independent streams. Given the
// same input seed, Split always returns the same pair; s1 and s2 are
// statistically independent streams in the SplitMix64 sense (distinct,
// odd-gamma-separated sub-generators).
func Split(s Seed) (Seed, Seed) {
	next, v := s.draw()
	left := Seed{s0: next.s0, s1: v | 1}
	right := Seed{s0: v ^ next.s1, s1: next.s1 | 1}
	return left, right
}

// UniformInRange returns an integer uniformly distributed in [lo, hi]
// inclusive. Reversed ranges (lo > hi) are normalized by swapping.
func UniformInRange(s Seed, lo, hi int64) int64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	span := uint64(hi - lo + 1)
	if span == 0 {
		// hi - lo + 1 overflowed: the full int64 range was requested.
		_, v := s.draw()
		return int64(v)
	}
	_, v := s.draw()
	return lo + int64(v%span)
}

// UniformFloat returns a float64 uniformly distributed in [0.0, 1.0).
func UniformFloat(s Seed) float64 {
	_, v := s.draw()
	// Use the top 53 bits for a uniform double in [0, 1), matching the
	// precision of float64's mantissa.
	return float64(v>>11) / (1 << 53)
}
