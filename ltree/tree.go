// Package ltree implements the lazy rose tree that every generator produces:
// a realized root value plus a lazy, possibly-infinite sequence of
// progressively "smaller" child trees. Combinators operate purely on this
// algebra, so shrinking falls out of composition instead of being supplied
// per type.
package ltree

import "iter"

// Tree is a rose tree with an eagerly-realized root and a lazy children
// sequence. Children must be re-derivable from the tree's own captured,
// immutable parameters: iterating it twice must yield equivalent (though not
// necessarily pointer-identical) subtrees, and iterating it must never
// require iterating it first.
type Tree[T any] struct {
	Root     T
	Children iter.Seq[Tree[T]]
}

// emptySeq is the canonical "no children" sequence, shared by every leaf.
func emptySeq[T any](func(T) bool) {}

// Constant builds a tree with no shrink candidates: root = x, children =
// empty.
func Constant[T any](x T) Tree[T] {
	return Tree[T]{Root: x, Children: emptySeq[Tree[T]]}
}

// Map applies f to every value in the tree: root = f(t.Root) (computed
// eagerly); children = map(c, f) for each c in t.Children (computed lazily,
// only as the caller ranges over the result).
func Map[A, B any](t Tree[A], f func(A) B) Tree[B] {
	return Tree[B]{
		Root: f(t.Root),
		Children: func(yield func(Tree[B]) bool) {
			for c := range t.Children {
				if !yield(Map(c, f)) {
					return
				}
			}
		},
	}
}

// Flatten collapses a tree-of-trees. For a tree whose root is itself a
// tree: root = tt.Root.Root; children = tt.Root's own children, followed by
// flatten(c) for each c in tt.Children. The inner tree's shrinks are
// offered before the outer tree's shrinks, so bound values shrink toward
// their minimal instances first.
func Flatten[T any](tt Tree[Tree[T]]) Tree[T] {
	inner := tt.Root
	return Tree[T]{
		Root: inner.Root,
		Children: func(yield func(Tree[T]) bool) {
			for c := range inner.Children {
				if !yield(c) {
					return
				}
			}
			for c := range tt.Children {
				if !yield(Flatten(c)) {
					return
				}
			}
		},
	}
}

// Filter keeps only children whose root satisfies pred, recursively. It
// does not apply pred to t.Root: the caller is responsible for guaranteeing
// the root already passes.
func Filter[T any](t Tree[T], pred func(T) bool) Tree[T] {
	return Tree[T]{
		Root: t.Root,
		Children: func(yield func(Tree[T]) bool) {
			for c := range t.Children {
				if !pred(c.Root) {
					continue
				}
				if !yield(Filter(c, pred)) {
					return
				}
			}
		},
	}
}

// Decision is the result of applying a map_filter function to a value: a
// kept value (Cont) or a dropped one (Skip).
type Decision[U any] struct {
	value U
	ok    bool
}

// Cont wraps a kept value.
func Cont[U any](v U) Decision[U] { return Decision[U]{value: v, ok: true} }

// Skip marks a value as rejected.
func Skip[U any]() Decision[U] { return Decision[U]{} }

// MapFilter applies f to the tree's root and every retained child. If
// f(t.Root) is Skip, MapFilter reports that via the second return value
// (false); callers (BindFilter) are expected to retry the whole draw in
// that case, per spec. If f(t.Root) is Cont(y), the result is a tree rooted
// at y whose children are map(t, f)'s children filtered down to the Cont
// cases and unwrapped.
func MapFilter[T, U any](t Tree[T], f func(T) Decision[U]) (Tree[U], bool) {
	d := f(t.Root)
	if !d.ok {
		var zero Tree[U]
		return zero, false
	}
	return Tree[U]{
		Root: d.value,
		Children: func(yield func(Tree[U]) bool) {
			for c := range t.Children {
				cu, ok := MapFilter(c, f)
				if !ok {
					continue
				}
				if !yield(cu) {
					return
				}
			}
		},
	}, true
}

// Zip combines a slice of trees into a tree whose root is the slice of
// child roots; children are all "one-position replacements" — for each
// index i, for each subchild of ts[i], emit the list with ts[i] replaced by
// that subchild. This lets a tuple/list built elementwise shrink each
// component independently.
func Zip[T any](ts []Tree[T]) Tree[[]T] {
	roots := make([]T, len(ts))
	for i, t := range ts {
		roots[i] = t.Root
	}
	return Tree[[]T]{
		Root: roots,
		Children: func(yield func(Tree[[]T]) bool) {
			for i, t := range ts {
				for c := range t.Children {
					replaced := make([]Tree[T], len(ts))
					copy(replaced, ts)
					replaced[i] = c
					if !yield(Zip(replaced)) {
						return
					}
				}
			}
		},
	}
}
