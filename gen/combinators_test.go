package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucaskalb/proptest/seed"
)

func TestConstAlwaysProducesSameValueNoChildren(t *testing.T) {
	s := seed.New(1)
	tr := Const(42)(s, 0)
	require.Equal(t, 42, tr.Root)
	require.Empty(t, childRoots(tr))
}

func TestNoShrinkDropsChildren(t *testing.T) {
	s := seed.New(2)
	tr := NoShrink(Int(100))(s, 0)
	require.Empty(t, childRoots(tr))
}

func TestSeededIgnoresIncomingSeed(t *testing.T) {
	fixed := seed.New(7)
	g := Seeded(Int(100), fixed)
	a := g(seed.New(1), 0)
	b := g(seed.New(999), 0)
	require.Equal(t, a.Root, b.Root)
}

func TestMapAppliesToRootAndChildren(t *testing.T) {
	s := seed.New(3)
	g := Map(IntRange(0, 10), func(n int) int { return n * 2 })
	tr := g(s, 0)
	require.Equal(t, 0, tr.Root%2)
	for c := range tr.Children {
		require.Equal(t, 0, c.Root%2)
	}
}

func TestBindDrawsDependentGenerator(t *testing.T) {
	s := seed.New(4)
	g := Bind(IntRange(1, 5), func(n int) Generator[int] {
		return IntRange(0, n)
	})
	for i := 0; i < 50; i++ {
		s, _ = seed.Split(s)
		tr := g(s, 0)
		require.GreaterOrEqual(t, tr.Root, 0)
		require.LessOrEqual(t, tr.Root, 5)
	}
}

func TestFilterOnlyYieldsMatchingValues(t *testing.T) {
	s := seed.New(5)
	g := Filter(IntRange(0, 20), func(n int) bool { return n%2 == 0 }, 0)
	for i := 0; i < 30; i++ {
		s, _ = seed.Split(s)
		tr := g(s, 0)
		require.Equal(t, 0, tr.Root%2)
	}
}

func TestFilterTooNarrowPanics(t *testing.T) {
	s := seed.New(6)
	g := Filter(IntRange(0, 1), func(n int) bool { return n > 100 }, 3)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		var fe *FilterTooNarrowError
		require.True(t, errors.As(r.(error), &fe))
	}()
	g(s, 0)
}

func TestResizeOverridesIncomingSize(t *testing.T) {
	s := seed.New(9)
	g := Resize(Int(0), 5)
	tr := g(s, 1000)
	require.GreaterOrEqual(t, tr.Root, -5)
	require.LessOrEqual(t, tr.Root, 5)
}

func TestScaleTransformsSize(t *testing.T) {
	s := seed.New(10)
	g := Scale(Int(0), func(sz Size) Size { return sz / 2 })
	tr := g(s, 100)
	require.GreaterOrEqual(t, tr.Root, -50)
	require.LessOrEqual(t, tr.Root, 50)
}

func TestFrequencyRespectsWeights(t *testing.T) {
	s := seed.New(11)
	g := Frequency(
		Weighted[string]{Weight: 100, Gen: Const("a")},
		Weighted[string]{Weight: 0, Gen: Const("b")},
	)
	for i := 0; i < 20; i++ {
		s, _ = seed.Split(s)
		tr := g(s, 0)
		require.Equal(t, "a", tr.Root)
	}
}

func TestFrequencyPanicsOnNoChoices(t *testing.T) {
	require.Panics(t, func() {
		Frequency[int]()
	})
}

func TestFrequencyShrinksTowardFirstListElement(t *testing.T) {
	s := seed.New(12)
	g := Frequency(
		Weighted[int]{Weight: 1, Gen: Const(1)},
		Weighted[int]{Weight: 100, Gen: Const(2)},
	)
	var tr = g(s, 0)
	for tr.Root != 2 {
		s, _ = seed.Split(s)
		tr = g(s, 0)
	}
	found := false
	for c := range tr.Children {
		if c.Root == 1 {
			found = true
		}
	}
	require.True(t, found, "shrinking from the second branch should offer the first branch's root")
}

func TestOneOfShrinksTowardFirstGenerator(t *testing.T) {
	s := seed.New(13)
	g := OneOf(Const("first"), Const("second"), Const("third"))
	var tr = g(s, 0)
	for tr.Root == "first" {
		s, _ = seed.Split(s)
		tr = g(s, 0)
	}
	var roots []string
	for c := range tr.Children {
		roots = append(roots, c.Root)
	}
	require.Contains(t, roots, "first")
}

func TestMemberOfEmptyReturnsError(t *testing.T) {
	_, err := MemberOf[int]()
	require.Error(t, err)
	var ee *EmptyEnumError
	require.True(t, errors.As(err, &ee))
}

func TestMemberOfNonEmptyProducesOneOfTheValues(t *testing.T) {
	g, err := MemberOf(1, 2, 3)
	require.NoError(t, err)
	s := seed.New(14)
	tr := g(s, 0)
	require.Contains(t, []int{1, 2, 3}, tr.Root)
}

func TestRecursiveBoundsDepthBySize(t *testing.T) {
	leaf := Const(0)
	branch := func(sub Generator[int]) Generator[int] {
		return Map(sub, func(n int) int { return n + 1 })
	}
	g := Recursive(leaf, branch)
	s := seed.New(15)
	for i := 0; i < 20; i++ {
		s, _ = seed.Split(s)
		tr := g(s, 8)
		require.LessOrEqual(t, tr.Root, logDepth(8))
	}
}
