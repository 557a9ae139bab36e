package prop

import (
	"fmt"
	"testing"

	"github.com/lucaskalb/proptest/gen"
	"github.com/lucaskalb/proptest/seed"
)

// ForAll creates a property-based test that draws cfg.MaxRuns (default
// 100) examples from g and runs each against body as its own subtest, in
// the teacher's t.Run-per-example style. On the first failing example it
// descends the failing tree's shrink candidates — each shrink candidate is
// also its own subtest — and reports a minimal reproducer via t.Fatalf.
//
// Example usage:
//
//	ForAll(t, prop.Default(), gen.Int(0))(func(t *testing.T, x int) {
//	    if x+0 != x {
//	        t.Errorf("addition identity failed for %d", x)
//	    }
//	})
func ForAll[T any](t *testing.T, cfg Config, g gen.Generator[T]) func(func(*testing.T, T)) {
	return func(body func(*testing.T, T)) {
		effSeed := cfg.effectiveSeed()
		s := seed.New(effSeed)
		sz := cfg.effectiveInitialSize()
		maxRuns := cfg.effectiveMaxRuns()
		maxShrink := cfg.effectiveMaxShrink()

		t.Logf("[proptest] seed=%d examples=%d maxshrink=%d parallelism=%d",
			effSeed, maxRuns, maxShrink, cfg.Parallelism)

		for i := 0; i < maxRuns; i++ {
			sDraw, sNext := seed.Split(s)
			tree := g(sDraw, sz)
			name := fmt.Sprintf("ex#%d", i+1)

			passed := t.Run(name, func(st *testing.T) { body(st, tree.Root) })
			if passed {
				sz = cfg.growSize(sz)
				s = sNext
				continue
			}

			step := 0
			propertyFn := func(v T) error {
				step++
				sname := fmt.Sprintf("%s/shrink#%d", name, step)
				ok := t.Run(sname, func(st *testing.T) { body(st, v) })
				if ok {
					return nil
				}
				return NewAssertionError("property failed for %#v", v)
			}

			originalErr := NewAssertionError("property failed for %#v", tree.Root)
			shrunk, shrunkValue, visited := shrinkSearch(tree, originalErr, propertyFn, maxShrink)

			full := fmt.Sprintf("^%s$/%s(/|$)", t.Name(), name)
			t.Fatalf("[proptest] property failed; seed=%d; examples_run=%d; nodes_visited=%d\n"+
				"counterexample (original): %#v\ncounterexample (shrunk): %#v\n"+
				"error: %v\nreplay: go test -run '%s' -proptest.seed=%d",
				effSeed, i+1, visited, tree.Root, shrunkValue, shrunk.Err, full, effSeed)

			if cfg.StopOnFirstFailure {
				return
			}
		}
	}
}
