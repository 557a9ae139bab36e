package prop

import (
	"iter"

	"github.com/lucaskalb/proptest/ltree"
)

// PropertyFunc evaluates a property on a generated value: nil means pass,
// a non-nil error means fail (and drives the shrink search).
type PropertyFunc[T any] func(T) error

// nthChild pulls the n-th element (0-indexed) of seq by iterating from the
// start, since iter.Seq offers no random access and re-deriving it is
// always safe (see ltree.Tree's reiterability contract).
func nthChild[T any](seq iter.Seq[ltree.Tree[T]], n int) (ltree.Tree[T], bool) {
	i := 0
	var found ltree.Tree[T]
	ok := false
	seq(func(c ltree.Tree[T]) bool {
		if i == n {
			found = c
			ok = true
			return false
		}
		i++
		return true
	})
	return found, ok
}

// hasAnyChildren reports whether seq yields at least one element.
func hasAnyChildren[T any](seq iter.Seq[ltree.Tree[T]]) bool {
	found := false
	seq(func(ltree.Tree[T]) bool {
		found = true
		return false
	})
	return found
}

// shrinkSearch implements spec.md §4.5's greedy leftmost-first descent: it
// never backtracks past a sibling once skipped, and descends into the
// first failing child's own children whenever that child has any.
// smallestVal/smallestErr start at the root failure and are only updated
// on a further failing evaluation.
func shrinkSearch[T any](tree ltree.Tree[T], originalErr error, propertyFn PropertyFunc[T], maxSteps int) (shrunk *FailureRecord, shrunkValue T, visited int) {
	smallestVal := tree.Root
	smallestErr := originalErr
	cursor := tree.Children
	skip := 0
	depth := 0
	for depth < maxSteps {
		c, ok := nthChild(cursor, skip)
		if !ok {
			break
		}
		visited++
		if err := propertyFn(c.Root); err == nil {
			skip++
			continue
		} else {
			smallestVal = c.Root
			smallestErr = err
			if hasAnyChildren(c.Children) {
				cursor = c.Children
				skip = 0
				depth++
			} else {
				skip++
			}
		}
	}
	return &FailureRecord{
		Err:             smallestErr,
		GeneratedValues: []GeneratedBinding{{Clause: "value", Value: smallestVal}},
	}, smallestVal, visited
}
