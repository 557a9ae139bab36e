package prop

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lucaskalb/proptest/gen"
	"github.com/lucaskalb/proptest/seed"
)

// CheckAllParallel runs independent examples concurrently via
// errgroup.Group, bounded by cfg.Parallelism workers — never parallel
// shrinking, which spec.md's concurrency model and Non-goals keep
// single-threaded per failure. Each example's seed is pre-derived by
// sequential splitting of the initial seed before any worker starts, so
// the assignment of seeds to example indices is independent of scheduling
// and the run stays reproducible. The first failing example (by index, not
// completion order) is shrunk and returned; StopOnFirstFailure is implied
// — callers wanting every failure should drive CheckAll in a loop instead.
func CheckAllParallel[T any](g gen.Generator[T], cfg Config, propertyFn PropertyFunc[T]) (Outcome[T], error) {
	body := propertyFn
	propertyFn = func(v T) (perr error) {
		defer func() {
			if r := recover(); r != nil {
				perr = fmt.Errorf("prop: property panicked: %v", r)
			}
		}()
		return body(v)
	}

	maxRuns := cfg.effectiveMaxRuns()
	maxShrink := cfg.effectiveMaxShrink()
	sz := cfg.effectiveInitialSize()

	draws := make([]seed.Seed, maxRuns)
	sizes := make([]gen.Size, maxRuns)
	cur := seed.New(cfg.effectiveSeed())
	for i := 0; i < maxRuns; i++ {
		sDraw, sNext := seed.Split(cur)
		draws[i] = sDraw
		sizes[i] = sz
		sz = cfg.growSize(sz)
		cur = sNext
	}

	type result struct {
		index       int
		rootVal     T
		originalErr error
		shrunkVal   T
		shrunkErr   error
		visited     int
	}

	var mu sync.Mutex
	var firstFailure *result
	start := time.Now()

	grp := &errgroup.Group{}
	if cfg.Parallelism > 1 {
		grp.SetLimit(cfg.Parallelism)
	} else {
		grp.SetLimit(1)
	}

	for i := 0; i < maxRuns; i++ {
		i := i
		grp.Go(func() (runErr error) {
			// A generator-level panic (gen.FilterTooNarrowError,
			// gen.EmptyEnumError, gen.TooManyDuplicatesError, ...) must abort
			// the run the same way it does in CheckAll, not crash the whole
			// test binary — errgroup.Group.Go does not recover goroutine
			// panics on its own.
			defer func() {
				if r := recover(); r != nil {
					if e, ok := r.(error); ok {
						runErr = e
					} else {
						runErr = fmt.Errorf("prop: generator panic: %v", r)
					}
				}
			}()

			mu.Lock()
			stop := (firstFailure != nil && firstFailure.index < i) || (cfg.HasMaxRunTime && time.Since(start) >= cfg.MaxRunTime)
			mu.Unlock()
			if stop {
				return nil
			}

			tree := g(draws[i], sizes[i])
			propErr := propertyFn(tree.Root)
			if propErr == nil {
				return nil
			}

			shrunk, shrunkValue, visited := shrinkSearch(tree, propErr, propertyFn, maxShrink)

			mu.Lock()
			defer mu.Unlock()
			if firstFailure == nil || i < firstFailure.index {
				firstFailure = &result{
					index:       i,
					rootVal:     tree.Root,
					originalErr: propErr,
					shrunkVal:   shrunkValue,
					shrunkErr:   shrunk.Err,
					visited:     visited,
				}
			}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return Outcome[T]{}, err
	}

	if firstFailure == nil {
		return Outcome[T]{Successes: maxRuns}, nil
	}

	original := &FailureRecord{
		Err:             firstFailure.originalErr,
		GeneratedValues: []GeneratedBinding{{Clause: "value", Value: firstFailure.rootVal}},
	}
	shrunk := &FailureRecord{
		Err:             firstFailure.shrunkErr,
		GeneratedValues: []GeneratedBinding{{Clause: "value", Value: firstFailure.shrunkVal}},
	}
	return Outcome[T]{
		Successes:    firstFailure.index,
		Failed:       true,
		Original:     original,
		Shrunk:       shrunk,
		ShrunkValue:  firstFailure.shrunkVal,
		NodesVisited: firstFailure.visited,
	}, nil
}
