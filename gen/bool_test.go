package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucaskalb/proptest/seed"
)

func TestBoolProducesBothValues(t *testing.T) {
	s := seed.New(10)
	seen := map[bool]bool{}
	for i := 0; i < 100; i++ {
		s, _ = seed.Split(s)
		tr := Bool()(s, 0)
		seen[tr.Root] = true
	}
	require.True(t, seen[true])
	require.True(t, seen[false])
}

func TestBoolShrinksTowardFalse(t *testing.T) {
	s := seed.New(10)
	var tr = Bool()(s, 0)
	for !tr.Root {
		s, _ = seed.Split(s)
		tr = Bool()(s, 0)
	}
	for c := range tr.Children {
		require.False(t, c.Root)
	}
}
