package gen

import (
	"github.com/lucaskalb/proptest/ltree"
	"github.com/lucaskalb/proptest/seed"
)

// Uint generates unsigned integers in 0..m, where m is the larger of sz and
// the runner's size (100 when both are 0), shrinking toward 0.
func Uint(sz Size) Generator[uint] {
	return From(func(s seed.Seed, runnerSz Size) ltree.Tree[uint] {
		m := effectiveMagnitude(sz, runnerSz)
		v := uint(seed.UniformInRange(s, 0, int64(m)))
		return uintShrinkTree(v, 0, uint(m))
	})
}

// UintRange generates unsigned integers uniformly in [lo, hi] inclusive.
func UintRange(lo, hi uint) Generator[uint] {
	if lo > hi {
		lo, hi = hi, lo
	}
	return From(func(s seed.Seed, _ Size) ltree.Tree[uint] {
		v := uint(seed.UniformInRange(s, int64(lo), int64(hi)))
		return uintShrinkTree(v, lo, hi)
	})
}

func uintShrinkTree(n, lo, hi uint) ltree.Tree[uint] {
	target := lo
	return ltree.Tree[uint]{
		Root: n,
		Children: func(yield func(ltree.Tree[uint]) bool) {
			if n == target {
				return
			}
			diff := n - target
			seen := map[uint]struct{}{n: {}}
			for shift := uint(0); ; shift++ {
				step := diff >> shift
				if step == 0 {
					break
				}
				candidate := n - step
				if candidate > hi || candidate < lo {
					continue
				}
				if _, dup := seen[candidate]; dup {
					continue
				}
				seen[candidate] = struct{}{}
				if !yield(uintShrinkTree(candidate, lo, hi)) {
					return
				}
			}
		},
	}
}

// Byte generates a single byte in [0, 255], shrinking toward 0.
func Byte() Generator[byte] {
	return Map(UintRange(0, 255), func(v uint) byte { return byte(v) })
}
