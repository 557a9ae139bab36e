package gen

import (
	"github.com/lucaskalb/proptest/ltree"
	"github.com/lucaskalb/proptest/seed"
)

// LengthOpts bounds the length of a generated list/binary/bitstring. The
// zero value means "use the generator's own default".
type LengthOpts struct {
	Min, Max       int
	HasMin, HasMax bool
}

func lengthBounds(opts LengthOpts, sz Size) (int, int) {
	lo, hi := 0, 16
	if int(sz) > hi {
		hi = int(sz)
	}
	if opts.HasMin {
		lo = opts.Min
	}
	if opts.HasMax {
		hi = opts.Max
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < 0 {
		lo = 0
	}
	return lo, hi
}

// ListOf generates []T from an element generator. Length defaults to
// 0..max(16, size); opts overrides either bound. Shrinking offers, for a
// list of length n, all n one-deletions first (so a failing list shrinks
// toward a shorter one), then element-wise shrinks that keep the length
// fixed — matching the list shrink-tree construction: remove a position,
// or shrink an element in place.
func ListOf[T any](elem Generator[T], opts LengthOpts) Generator[[]T] {
	return From(func(s seed.Seed, sz Size) ltree.Tree[[]T] {
		lo, hi := lengthBounds(opts, sz)
		s1, s2 := seed.Split(s)
		n := int(seed.UniformInRange(s1, int64(lo), int64(hi)))
		elems := make([]ltree.Tree[T], n)
		cur := s2
		for i := 0; i < n; i++ {
			si, rest := seed.Split(cur)
			elems[i] = elem(si, sz)
			cur = rest
		}
		return listTree(elems, lo)
	})
}

// listTree builds the shrink tree for a list from its elements' own
// shrink trees, recursively. Forcing it twice walks the same candidates,
// since it only closes over the immutable elems slice.
func listTree[T any](elems []ltree.Tree[T], minLen int) ltree.Tree[[]T] {
	roots := make([]T, len(elems))
	for i, e := range elems {
		roots[i] = e.Root
	}
	return ltree.Tree[[]T]{
		Root: roots,
		Children: func(yield func(ltree.Tree[[]T]) bool) {
			L := len(elems)
			if L > minLen {
				for i := L - 1; i >= 0; i-- {
					reduced := make([]ltree.Tree[T], 0, L-1)
					reduced = append(reduced, elems[:i]...)
					reduced = append(reduced, elems[i+1:]...)
					if !yield(listTree(reduced, minLen)) {
						return
					}
				}
			}
			for i := L - 1; i >= 0; i-- {
				for c := range elems[i].Children {
					replaced := make([]ltree.Tree[T], L)
					copy(replaced, elems)
					replaced[i] = c
					if !yield(listTree(replaced, minLen)) {
						return
					}
				}
			}
		},
	}
}

// UniqListOf generates a []T whose elements have pairwise-distinct keys
// under key. Colliding draws are retried (each from a fresh split) up to
// tries times per element before TooManyDuplicatesError. Shrinking behaves
// as ListOf, restricted to candidates that remain unique (a one-deletion
// trivially keeps uniqueness; an element-wise shrink candidate colliding
// with a sibling is skipped).
func UniqListOf[T any, K comparable](elem Generator[T], key func(T) K, opts LengthOpts, tries int) Generator[[]T] {
	if tries <= 0 {
		tries = DefaultFilterRetries
	}
	return From(func(s seed.Seed, sz Size) ltree.Tree[[]T] {
		lo, hi := lengthBounds(opts, sz)
		s1, s2 := seed.Split(s)
		n := int(seed.UniformInRange(s1, int64(lo), int64(hi)))
		elems := make([]ltree.Tree[T], 0, n)
		seen := make(map[K]struct{}, n)
		cur := s2
		for len(elems) < n {
			drew := false
			for attempt := 0; attempt < tries; attempt++ {
				si, rest := seed.Split(cur)
				cur = rest
				t := elem(si, sz)
				k := key(t.Root)
				if _, dup := seen[k]; dup {
					continue
				}
				seen[k] = struct{}{}
				elems = append(elems, t)
				drew = true
				break
			}
			if !drew {
				panic(&TooManyDuplicatesError{Tries: tries, WantCount: n, GotCount: len(elems)})
			}
		}
		return uniqListTree(elems, lo, key)
	})
}

func uniqListTree[T any, K comparable](elems []ltree.Tree[T], minLen int, key func(T) K) ltree.Tree[[]T] {
	roots := make([]T, len(elems))
	for i, e := range elems {
		roots[i] = e.Root
	}
	return ltree.Tree[[]T]{
		Root: roots,
		Children: func(yield func(ltree.Tree[[]T]) bool) {
			L := len(elems)
			if L > minLen {
				for i := L - 1; i >= 0; i-- {
					reduced := make([]ltree.Tree[T], 0, L-1)
					reduced = append(reduced, elems[:i]...)
					reduced = append(reduced, elems[i+1:]...)
					if !yield(uniqListTree(reduced, minLen, key)) {
						return
					}
				}
			}
			for i := L - 1; i >= 0; i-- {
				for c := range elems[i].Children {
					if collides(elems, i, c, key) {
						continue
					}
					replaced := make([]ltree.Tree[T], L)
					copy(replaced, elems)
					replaced[i] = c
					if !yield(uniqListTree(replaced, minLen, key)) {
						return
					}
				}
			}
		},
	}
}

func collides[T any, K comparable](elems []ltree.Tree[T], idx int, candidate ltree.Tree[T], key func(T) K) bool {
	k := key(candidate.Root)
	for i, e := range elems {
		if i == idx {
			continue
		}
		if key(e.Root) == k {
			return true
		}
	}
	return false
}

// Binary generates a []byte, as ListOf(Byte(), opts).
func Binary(opts LengthOpts) Generator[[]byte] {
	return ListOf(Byte(), opts)
}

// Bitstring generates a []bool, as ListOf(Bool(), opts).
func Bitstring(opts LengthOpts) Generator[[]bool] {
	return ListOf(Bool(), opts)
}
