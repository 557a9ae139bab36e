// Package gen provides generators for property-based testing in Go.
// Every generator produces a lazy rose tree (package ltree): a realized
// value plus a lazy sequence of progressively smaller candidates of the
// same type. Combinators operate on that tree, so shrink behavior is
// derived automatically from how a generator was built and survives
// composition (map, bind, filter, tuples, lists, frequency, ...).
package gen

import (
	"github.com/lucaskalb/proptest/ltree"
	"github.com/lucaskalb/proptest/seed"
)

// Size is a non-negative hint to generators for how "large" a value to
// produce. It starts at Config.InitialSize and grows by one per successful
// run, up to Config.MaxGenerationSize. It is not a hard limit, only a
// contract generators should honor monotonically: a bigger size should
// widen the range or length of values a generator can produce.
type Size int

// Generator is the public contract for all generators: a pure function of
// a seed and a size to a lazy rose tree of candidate values. Same (seed,
// size) must always produce a tree with the same root and the same k-th
// child root for any finite k, including forced grandchildren.
type Generator[T any] func(s seed.Seed, sz Size) ltree.Tree[T]

// From is a convenience constructor, useful when a combinator wants to
// return a Generator value built from a closure.
func From[T any](fn func(seed.Seed, Size) ltree.Tree[T]) Generator[T] {
	return Generator[T](fn)
}

// Generate runs the generator, a method-style wrapper kept for readability
// at call sites (g.Generate(s, sz) instead of g(s, sz)).
func (g Generator[T]) Generate(s seed.Seed, sz Size) ltree.Tree[T] {
	return g(s, sz)
}
