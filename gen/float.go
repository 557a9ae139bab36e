package gen

import (
	"math"

	"github.com/lucaskalb/proptest/ltree"
	"github.com/lucaskalb/proptest/seed"
)

// FloatOpts bounds a Float64 draw. A zero value means "use the default
// [-100, 100] range".
type FloatOpts struct {
	Min, Max float64
	HasMin   bool
	HasMax   bool
}

// Float64 generates an IEEE double honoring opts' optional bounds
// (defaulting to [-100, 100]), shrinking toward 0.0 clamped to the range.
func Float64(opts FloatOpts) Generator[float64] {
	lo, hi := floatBounds(opts)
	return From(func(s seed.Seed, _ Size) ltree.Tree[float64] {
		f := seed.UniformFloat(s)
		v := lo + f*(hi-lo)
		return floatShrinkTree(v, lo, hi)
	})
}

// Float64Range generates floats uniformly in [lo, hi].
func Float64Range(lo, hi float64) Generator[float64] {
	return Float64(FloatOpts{Min: lo, Max: hi, HasMin: true, HasMax: true})
}

func floatBounds(opts FloatOpts) (float64, float64) {
	lo, hi := -100.0, 100.0
	if opts.HasMin {
		lo = opts.Min
	}
	if opts.HasMax {
		hi = opts.Max
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

func floatTarget(lo, hi float64) float64 {
	if lo <= 0 && 0 <= hi {
		return 0
	}
	if math.Abs(lo) < math.Abs(hi) {
		return lo
	}
	return hi
}

func clampFloat(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func floatShrinkTree(v, lo, hi float64) ltree.Tree[float64] {
	v = clampFloat(v, lo, hi)
	target := floatTarget(lo, hi)
	return ltree.Tree[float64]{
		Root: v,
		Children: func(yield func(ltree.Tree[float64]) bool) {
			if v == target {
				return
			}
			seen := map[float64]struct{}{v: {}}
			cur := v
			for i := 0; i < 12; i++ {
				mid := cur + (target-cur)/2
				if mid == cur {
					break
				}
				cur = mid
				if _, dup := seen[cur]; dup {
					continue
				}
				seen[cur] = struct{}{}
				if !yield(floatShrinkTree(cur, lo, hi)) {
					return
				}
			}
			if _, dup := seen[target]; !dup {
				if !yield(floatShrinkTree(target, lo, hi)) {
					return
				}
			}
		},
	}
}
