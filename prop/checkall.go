package prop

import (
	"fmt"
	"time"

	"github.com/lucaskalb/proptest/gen"
	"github.com/lucaskalb/proptest/seed"
)

// Outcome is CheckAll's result: either a bare success count, or a failure
// carrying both the original and shrunk failure records.
type Outcome[T any] struct {
	Successes    int
	Failed       bool
	Original     *FailureRecord
	Shrunk       *FailureRecord
	ShrunkValue  T
	NodesVisited int
}

// CheckAll runs propertyFn against successive draws from g per cfg,
// exactly as spec.md §4.5's algorithm: loop while under MaxRuns and
// MaxRunTime, splitting the seed each iteration; on the first failure,
// descend the failing tree's shrink candidates (shrinkSearch) and return.
//
// A generator-level panic (gen.FilterTooNarrowError, gen.EmptyEnumError,
// gen.TooManyDuplicatesError, ...) aborts the run immediately and surfaces
// as err, per spec.md §4.5's filter-too-narrow propagation rule: these are
// never retried, because a different seed would not change the
// generator's shape. A panic inside propertyFn is instead recovered and
// treated as a property failure, shrunk like any other.
func CheckAll[T any](g gen.Generator[T], cfg Config, propertyFn PropertyFunc[T]) (out Outcome[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("prop: generator panic: %v", r)
			}
		}
	}()

	body := propertyFn
	propertyFn = func(v T) (perr error) {
		defer func() {
			if r := recover(); r != nil {
				perr = fmt.Errorf("prop: property panicked: %v", r)
			}
		}()
		return body(v)
	}

	s := seed.New(cfg.effectiveSeed())
	sz := cfg.effectiveInitialSize()
	maxRuns := cfg.effectiveMaxRuns()
	maxShrink := cfg.effectiveMaxShrink()
	successes := 0
	start := time.Now()

	for {
		if successes >= maxRuns {
			return Outcome[T]{Successes: successes}, nil
		}
		if cfg.HasMaxRunTime && time.Since(start) >= cfg.MaxRunTime {
			return Outcome[T]{Successes: successes}, nil
		}

		sDraw, sNext := seed.Split(s)
		tree := g(sDraw, sz)

		if propErr := propertyFn(tree.Root); propErr == nil {
			successes++
			sz = cfg.growSize(sz)
			s = sNext
			continue
		} else {
			original := &FailureRecord{
				Err:             propErr,
				GeneratedValues: []GeneratedBinding{{Clause: "value", Value: tree.Root}},
			}
			shrunk, shrunkValue, visited := shrinkSearch(tree, propErr, propertyFn, maxShrink)
			return Outcome[T]{
				Successes:    successes,
				Failed:       true,
				Original:     original,
				Shrunk:       shrunk,
				ShrunkValue:  shrunkValue,
				NodesVisited: visited,
			}, nil
		}
	}
}
