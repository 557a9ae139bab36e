package gen

import (
	"github.com/lucaskalb/proptest/ltree"
	"github.com/lucaskalb/proptest/seed"
)

// Const builds a generator that always produces x, with no shrink
// candidates.
func Const[T any](x T) Generator[T] {
	return From(func(seed.Seed, Size) ltree.Tree[T] {
		return ltree.Constant(x)
	})
}

// NoShrink wraps g, keeping its generation behavior but discarding any
// shrink candidates it would otherwise offer. Useful when a value's
// internal structure is not meaningfully "smaller" for the property under
// test (e.g. an opaque handle).
func NoShrink[T any](g Generator[T]) Generator[T] {
	return From(func(s seed.Seed, sz Size) ltree.Tree[T] {
		t := g(s, sz)
		return ltree.Constant(t.Root)
	})
}

// Seeded fixes the seed a generator draws from, ignoring whatever seed the
// caller passes in. Handy for documentation examples and for pinning one
// sub-generator's randomness independent of the rest of a composition.
func Seeded[T any](g Generator[T], fixed seed.Seed) Generator[T] {
	return From(func(_ seed.Seed, sz Size) ltree.Tree[T] {
		return g(fixed, sz)
	})
}

// Map transforms every value a generator produces with f, preserving
// shrink structure: f is applied to the root eagerly and to each child
// lazily, as the caller iterates them.
func Map[A, B any](g Generator[A], f func(A) B) Generator[B] {
	return From(func(s seed.Seed, sz Size) ltree.Tree[B] {
		return ltree.Map(g(s, sz), f)
	})
}

// Bind (flatMap) makes the next generator depend on a previously generated
// value. The outer seed is split so the "chosen" generator and the
// generator it delegates to draw from independent streams. As in
// ltree.Flatten, shrinks of the inner (dependent) value are offered first,
// followed by shrinks of the outer value, each of which redraws the inner
// generator from the shrunk outer value.
func Bind[A, B any](g Generator[A], k func(A) Generator[B]) Generator[B] {
	return From(func(s seed.Seed, sz Size) ltree.Tree[B] {
		s1, s2 := seed.Split(s)
		ta := g(s1, sz)
		tt := ltree.Map(ta, func(a A) ltree.Tree[B] {
			return k(a)(s2, sz)
		})
		return ltree.Flatten(tt)
	})
}

// DefaultFilterRetries is the retry budget Filter and BindFilter use when
// the caller passes a non-positive value.
const DefaultFilterRetries = 25

// BindFilter is like Bind, except f may reject a draw (return ok=false),
// in which case the whole draw is retried from a fresh split, up to
// retries consecutive rejections before FilterTooNarrowError. retries <= 0
// means DefaultFilterRetries.
func BindFilter[A, B any](g Generator[A], f func(A) (Generator[B], bool), retries int) Generator[B] {
	if retries <= 0 {
		retries = DefaultFilterRetries
	}
	return From(func(s seed.Seed, sz Size) ltree.Tree[B] {
		cur := s
		var lastRejected any
		for attempt := 0; attempt < retries; attempt++ {
			s1, s2 := seed.Split(cur)
			ta := g(s1, sz)
			tt, ok := ltree.MapFilter(ta, func(a A) ltree.Decision[ltree.Tree[B]] {
				if gb, accept := f(a); accept {
					return ltree.Cont(gb(s2, sz))
				}
				return ltree.Skip[ltree.Tree[B]]()
			})
			if ok {
				return ltree.Flatten(tt)
			}
			lastRejected = ta.Root
			cur = s2
		}
		panic(&FilterTooNarrowError{Retries: retries, LastSeen: lastRejected})
	})
}

// Filter keeps only values satisfying pred, retrying up to retries times
// (retries <= 0 means DefaultFilterRetries) before panicking with
// FilterTooNarrowError.
func Filter[T any](g Generator[T], pred func(T) bool, retries int) Generator[T] {
	return BindFilter(g, func(x T) (Generator[T], bool) {
		if pred(x) {
			return Const(x), true
		}
		return nil, false
	}, retries)
}

// Resize ignores the incoming size and calls g with n instead. Useful to
// pin a sub-generator's scale independent of the ambient run size.
func Resize[T any](g Generator[T], n Size) Generator[T] {
	return From(func(s seed.Seed, _ Size) ltree.Tree[T] {
		return g(s, n)
	})
}

// Sized builds a generator whose shape depends on the incoming size.
func Sized[T any](f func(Size) Generator[T]) Generator[T] {
	return From(func(s seed.Seed, sz Size) ltree.Tree[T] {
		return f(sz)(s, sz)
	})
}

// Scale resizes g by applying f to the incoming size before generating.
func Scale[T any](g Generator[T], f func(Size) Size) Generator[T] {
	return Sized(func(sz Size) Generator[T] {
		return Resize(g, f(sz))
	})
}

// Weighted pairs a generator with an integer weight for Frequency.
type Weighted[T any] struct {
	Weight int
	Gen    Generator[T]
}

// Frequency picks one of the given generators with probability
// proportional to its weight, and shrinks toward the first element of the
// input list: list order (not weight) sets shrink priority, so ties and
// every weighting shrink toward index 0 of the slice the caller wrote.
func Frequency[T any](choices ...Weighted[T]) Generator[T] {
	if len(choices) == 0 {
		panic(&EmptyEnumError{Combinator: "Frequency"})
	}
	total := 0
	for _, c := range choices {
		total += c.Weight
	}
	return From(func(s seed.Seed, sz Size) ltree.Tree[T] {
		s1, s2 := seed.Split(s)
		pick := int(seed.UniformInRange(s1, 1, int64(total)))
		cum := 0
		idx := len(choices) - 1
		for i, c := range choices {
			cum += c.Weight
			if pick <= cum {
				idx = i
				break
			}
		}
		t := choices[idx].Gen(s2, sz)
		// Shrink candidates additionally consider every earlier-indexed
		// generator's own root, so a failure shrinks toward the front of
		// the caller's list before shrinking within the chosen branch.
		return ltree.Tree[T]{
			Root: t.Root,
			Children: func(yield func(ltree.Tree[T]) bool) {
				for i := 0; i < idx; i++ {
					fallback := choices[i].Gen(s2, sz)
					if !yield(fallback) {
						return
					}
				}
				for c := range t.Children {
					if !yield(c) {
						return
					}
				}
			},
		}
	})
}

// OneOf chooses uniformly among the given generators, as Frequency with
// equal weights: it shrinks toward the first generator, offering every
// earlier generator's tree before the chosen generator's own shrinks.
func OneOf[T any](gs ...Generator[T]) Generator[T] {
	choices := make([]Weighted[T], len(gs))
	for i, g := range gs {
		choices[i] = Weighted[T]{Weight: 1, Gen: g}
	}
	return Frequency(choices...)
}

// MemberOf builds a generator over a fixed enumeration of constants, as
// OneOf(Const(x0), Const(x1), ...). It returns an EmptyEnumError, rather
// than panicking, when xs is empty: unlike Frequency's zero-generators
// case (a pure construction-time misuse of the API), an empty enumeration
// routinely comes from caller-supplied data and is worth letting the
// caller branch on.
func MemberOf[T any](xs ...T) (Generator[T], error) {
	if len(xs) == 0 {
		return nil, &EmptyEnumError{Combinator: "MemberOf"}
	}
	gs := make([]Generator[T], len(xs))
	for i, x := range xs {
		gs[i] = Const(x)
	}
	return OneOf(gs...), nil
}

// mustMemberOf is MemberOf for call sites passing a literal, known-non-empty
// enumeration, where a construction error would indicate a bug in this
// package rather than bad caller input.
func mustMemberOf[T any](xs ...T) Generator[T] {
	g, err := MemberOf(xs...)
	if err != nil {
		panic(err)
	}
	return g
}

// Recursive builds a generator for self-referential structures (JSON-like
// trees, S-expressions, ...). At a given size, it chooses a branching
// depth logarithmic in size, alternating between the leaf generator and
// branch applied to a resized accumulator, so recursion depth is bounded
// by roughly log2(size)+1 and the result shrinks toward leaf.
func Recursive[T any](leaf Generator[T], branch func(Generator[T]) Generator[T]) Generator[T] {
	return Sized(func(sz Size) Generator[T] {
		maxDepth := logDepth(sz)
		var build func(depth int) Generator[T]
		build = func(depth int) Generator[T] {
			if depth >= maxDepth {
				return leaf
			}
			next := Scale(build(depth+1), func(s Size) Size {
				if s <= 1 {
					return s
				}
				return s / 2
			})
			return Frequency(
				Weighted[T]{Weight: 1, Gen: leaf},
				Weighted[T]{Weight: 2, Gen: branch(next)},
			)
		}
		return build(0)
	})
}

func logDepth(sz Size) int {
	depth := 1
	for n := int(sz); n > 1; n >>= 1 {
		depth++
	}
	return depth
}
