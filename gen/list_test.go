package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucaskalb/proptest/ltree"
	"github.com/lucaskalb/proptest/seed"
)

func TestListOfRespectsLengthBounds(t *testing.T) {
	s := seed.New(4)
	opts := LengthOpts{Min: 2, Max: 5, HasMin: true, HasMax: true}
	for i := 0; i < 50; i++ {
		s, _ = seed.Split(s)
		tr := ListOf(Byte(), opts)(s, 0)
		require.GreaterOrEqual(t, len(tr.Root), 2)
		require.LessOrEqual(t, len(tr.Root), 5)
	}
}

func TestListOfOffersOneDeletionsBeforeElementShrinks(t *testing.T) {
	tr := listTree(fixedIntTrees(3, 2), 0)
	require.Equal(t, []int{2, 2, 2}, tr.Root)

	var firstChild []int
	for c := range tr.Children {
		firstChild = c.Root
		break
	}
	require.Len(t, firstChild, 2, "first shrink candidate should be a one-deletion, not an element-wise shrink")
}

func TestListOfNeverShrinksShorterThanMinLen(t *testing.T) {
	tr := listTree(fixedIntTrees(2, 5), 2)
	for c := range tr.Children {
		require.GreaterOrEqual(t, len(c.Root), 2)
	}
}

func TestUniqListOfProducesDistinctKeys(t *testing.T) {
	s := seed.New(8)
	opts := LengthOpts{Min: 3, Max: 10, HasMin: true, HasMax: true}
	g := UniqListOf(IntRange(0, 1000), func(n int) int { return n }, opts, 0)
	for i := 0; i < 20; i++ {
		s, _ = seed.Split(s)
		tr := g(s, 0)
		seen := map[int]struct{}{}
		for _, v := range tr.Root {
			_, dup := seen[v]
			require.False(t, dup)
			seen[v] = struct{}{}
		}
	}
}

func TestUniqListOfTooManyDuplicatesPanics(t *testing.T) {
	s := seed.New(1)
	opts := LengthOpts{Min: 5, Max: 5, HasMin: true, HasMax: true}
	g := UniqListOf(IntRange(0, 1), func(n int) int { return n }, opts, 3)
	require.Panics(t, func() {
		g(s, 0)
	})
}

func TestBinaryAndBitstringAreListOfByteAndBool(t *testing.T) {
	s := seed.New(6)
	opts := LengthOpts{Max: 4, HasMax: true}
	btr := Binary(opts)(s, 0)
	require.LessOrEqual(t, len(btr.Root), 4)
	str := Bitstring(opts)(s, 0)
	require.LessOrEqual(t, len(str.Root), 4)
}

func fixedIntTrees(n, v int) []ltree.Tree[int] {
	out := make([]ltree.Tree[int], n)
	for i := range out {
		out[i] = intShrinkTree(v, 0, 100)
	}
	return out
}
