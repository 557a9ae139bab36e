// Package stream exposes a gen.Generator as a finite or unbounded lazy
// sequence of sampled roots, for documentation, REPL, and fixture-data use
// outside the property runner.
package stream

import (
	"iter"
	"time"

	"github.com/lucaskalb/proptest/gen"
	"github.com/lucaskalb/proptest/seed"
)

// SampleConfig controls how Sample and Take walk a generator. The zero
// value means "start at seed.New(0) and size 1, grow by one each step, no
// cap on size".
type SampleConfig struct {
	Seed        seed.Seed
	HasSeed     bool
	InitialSize gen.Size
	MaxSize     gen.Size
	HasMaxSize  bool
}

func (cfg SampleConfig) resolve() (seed.Seed, gen.Size) {
	s := cfg.Seed
	if !cfg.HasSeed {
		s = seed.New(0)
	}
	sz := cfg.InitialSize
	if sz == 0 {
		sz = 1
	}
	return s, sz
}

func (cfg SampleConfig) growSize(sz gen.Size) gen.Size {
	next := sz + 1
	if cfg.HasMaxSize && next > cfg.MaxSize {
		return cfg.MaxSize
	}
	return next
}

// Sample walks g forever (or until the caller's range loop breaks): at
// each step it splits the current seed, draws g's root at the current
// size, yields it, and grows the size toward cfg's cap.
func Sample[T any](g gen.Generator[T], cfg SampleConfig) iter.Seq[T] {
	return func(yield func(T) bool) {
		cur, sz := cfg.resolve()
		for {
			s1, s2 := seed.Split(cur)
			t := g(s1, sz)
			if !yield(t.Root) {
				return
			}
			cur = s2
			sz = cfg.growSize(sz)
		}
	}
}

// Take draws exactly n roots from g, per cfg.
func Take[T any](g gen.Generator[T], n int, cfg SampleConfig) []T {
	out := make([]T, 0, n)
	for v := range Sample(g, cfg) {
		if len(out) >= n {
			break
		}
		out = append(out, v)
	}
	return out
}

// Pick draws a single root from g using an ambient, time-seeded Seed —
// convenient for documentation and REPL snippets where reproducibility
// doesn't matter. Prefer Take or Sample with an explicit seed in tests.
func Pick[T any](g gen.Generator[T]) T {
	s := seed.New(time.Now().UnixNano())
	return g(s, 1).Root
}
