package gen

import "github.com/lucaskalb/proptest/ltree"

// childRoots forces a tree's immediate children into a plain slice of
// roots, for easy comparison in tests.
func childRoots[T any](t ltree.Tree[T]) []T {
	var out []T
	for c := range t.Children {
		out = append(out, c.Root)
	}
	return out
}
