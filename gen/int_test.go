package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucaskalb/proptest/seed"
)

func TestIntWithinMagnitude(t *testing.T) {
	s := seed.New(123)
	for i := 0; i < 200; i++ {
		s, _ = seed.Split(s)
		tr := Int(50)(s, 0)
		require.GreaterOrEqual(t, tr.Root, -50)
		require.LessOrEqual(t, tr.Root, 50)
	}
}

func TestIntRangeNormalizesReversedBounds(t *testing.T) {
	s := seed.New(7)
	a := IntRange(20, 10)(s, 0)
	b := IntRange(10, 20)(s, 0)
	require.Equal(t, a.Root, b.Root)
}

func TestIntRangeSingleValue(t *testing.T) {
	s := seed.New(1)
	tr := IntRange(5, 5)(s, 0)
	require.Equal(t, 5, tr.Root)
	require.Empty(t, childRoots(tr))
}

func TestPositiveIntNeverZeroOrNegative(t *testing.T) {
	s := seed.New(99)
	for i := 0; i < 100; i++ {
		s, _ = seed.Split(s)
		tr := PositiveInt(10)(s, 0)
		require.GreaterOrEqual(t, tr.Root, 1)
	}
}

func TestIntShrinkTreeConvergesTowardZero(t *testing.T) {
	tr := intShrinkTree(100, -200, 200)
	require.Equal(t, 100, tr.Root)
	for c := range tr.Children {
		require.Less(t, abs(c.Root-0), abs(tr.Root-0))
	}
}

func TestIntShrinkTreeRespectsNonZeroTarget(t *testing.T) {
	tr := intShrinkTree(50, 10, 100)
	require.Equal(t, 10, shrinkTargetInt(10, 100))
	for c := range tr.Children {
		require.GreaterOrEqual(t, c.Root, 10)
	}
}

func TestIntShrinkTreeAtTargetHasNoChildren(t *testing.T) {
	tr := intShrinkTree(0, -10, 10)
	require.Empty(t, childRoots(tr))
}

func TestIntShrinkTreeReiterable(t *testing.T) {
	tr := intShrinkTree(64, -1000, 1000)
	require.Equal(t, childRoots(tr), childRoots(tr))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
