package gen

import (
	"github.com/lucaskalb/proptest/ltree"
	"github.com/lucaskalb/proptest/seed"
)

// Int generates signed integers in -m..m, where m is the larger of sz and
// the runner's size (100 when both are 0), shrinking toward 0.
func Int(sz Size) Generator[int] {
	return From(func(s seed.Seed, runnerSz Size) ltree.Tree[int] {
		m := effectiveMagnitude(sz, runnerSz)
		v := int(seed.UniformInRange(s, -int64(m), int64(m)))
		return intShrinkTree(v, -m, m)
	})
}

// IntRange generates integers uniformly in [lo, hi] inclusive, ignoring the
// ambient size. Reversed bounds are normalized by swapping.
func IntRange(lo, hi int) Generator[int] {
	if lo > hi {
		lo, hi = hi, lo
	}
	return From(func(s seed.Seed, _ Size) ltree.Tree[int] {
		v := int(seed.UniformInRange(s, int64(lo), int64(hi)))
		return intShrinkTree(v, lo, hi)
	})
}

// PositiveInt generates integers in 1..int(sz) (1..100 when sz < 1),
// shrinking toward 1. The runner's size is not consulted.
func PositiveInt(sz Size) Generator[int] {
	m := int(sz)
	if m < 1 {
		m = 100
	}
	return IntRange(1, m)
}

func effectiveMagnitude(sz, runnerSz Size) int {
	m := int(sz)
	if int(runnerSz) > m {
		m = int(runnerSz)
	}
	if m <= 0 {
		m = 100
	}
	return m
}

// shrinkTargetInt returns 0 when it lies in [lo, hi]; otherwise the bound
// nearest to 0.
func shrinkTargetInt(lo, hi int) int {
	if lo <= 0 && 0 <= hi {
		return 0
	}
	if lo > 0 {
		return lo
	}
	return hi
}

// intShrinkTree builds the integer shrink tree described by the "halve
// toward the target" construction: children are n - (n-target)/2^k for
// k = 0, 1, 2, ... (division truncating toward zero) while the subtrahend
// is non-zero, i.e. the sequence target, n - (n-target)/2,
// n - (n-target)/4, ... each of which
// recursively defines its own shrink tree. This converges to the target in
// logarithmic depth.
func intShrinkTree(n, lo, hi int) ltree.Tree[int] {
	target := shrinkTargetInt(lo, hi)
	return ltree.Tree[int]{
		Root: n,
		Children: func(yield func(ltree.Tree[int]) bool) {
			if n == target {
				return
			}
			diff := n - target
			seen := map[int]struct{}{n: {}}
			for shift := 0; ; shift++ {
				step := diff / (1 << shift)
				if step == 0 {
					break
				}
				candidate := n - step
				if _, dup := seen[candidate]; dup {
					continue
				}
				seen[candidate] = struct{}{}
				if !yield(intShrinkTree(candidate, lo, hi)) {
					return
				}
			}
		},
	}
}
