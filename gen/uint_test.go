package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucaskalb/proptest/seed"
)

func TestUintWithinMagnitude(t *testing.T) {
	s := seed.New(5)
	for i := 0; i < 200; i++ {
		s, _ = seed.Split(s)
		tr := Uint(50)(s, 0)
		require.LessOrEqual(t, tr.Root, uint(50))
	}
}

func TestUintRangeNormalizesReversedBounds(t *testing.T) {
	s := seed.New(3)
	a := UintRange(20, 10)(s, 0)
	b := UintRange(10, 20)(s, 0)
	require.Equal(t, a.Root, b.Root)
}

func TestUintShrinkTreeConvergesTowardLowerBound(t *testing.T) {
	tr := uintShrinkTree(100, 10, 200)
	require.Equal(t, uint(100), tr.Root)
	for c := range tr.Children {
		require.GreaterOrEqual(t, c.Root, uint(10))
		require.Less(t, c.Root, tr.Root)
	}
}

func TestUintShrinkTreeAtTargetHasNoChildren(t *testing.T) {
	tr := uintShrinkTree(0, 0, 10)
	require.Empty(t, childRoots(tr))
}

func TestByteStaysInRange(t *testing.T) {
	s := seed.New(11)
	for i := 0; i < 300; i++ {
		s, _ = seed.Split(s)
		tr := Byte()(s, 0)
		require.LessOrEqual(t, tr.Root, byte(255))
	}
}

func TestByteShrinksTowardZero(t *testing.T) {
	s := seed.New(2)
	tr := Byte()(s, 0)
	for c := range tr.Children {
		require.LessOrEqual(t, c.Root, tr.Root)
	}
}
