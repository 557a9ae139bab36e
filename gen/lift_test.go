package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucaskalb/proptest/seed"
)

func TestFromValueResolvesToConstant(t *testing.T) {
	s := seed.New(1)
	gi := FromValue(7)
	tr := gi.Resolve()(s, 0)
	require.Equal(t, 7, tr.Root)
	require.Empty(t, childRoots(tr))
}

func TestFromGenResolvesToUnderlyingGenerator(t *testing.T) {
	s := seed.New(2)
	gi := FromGen(IntRange(0, 5))
	tr := gi.Resolve()(s, 0)
	require.GreaterOrEqual(t, tr.Root, 0)
	require.LessOrEqual(t, tr.Root, 5)
}

func TestTupleInput2MixesLiteralAndGenerator(t *testing.T) {
	s := seed.New(3)
	g := TupleInput2(FromValue("fixed"), FromGen(IntRange(0, 10)))
	tr := g(s, 0)
	require.Equal(t, "fixed", tr.Root.First)
	require.GreaterOrEqual(t, tr.Root.Second, 0)
}

func TestTupleInput3And4Resolve(t *testing.T) {
	s := seed.New(4)
	g3 := TupleInput3(FromValue(1), FromValue(2), FromValue(3))
	tr3 := g3(s, 0)
	require.Equal(t, Tuple3Value[int, int, int]{1, 2, 3}, tr3.Root)

	g4 := TupleInput4(FromValue(1), FromValue(2), FromValue(3), FromValue(4))
	tr4 := g4(s, 0)
	require.Equal(t, Tuple4Value[int, int, int, int]{1, 2, 3, 4}, tr4.Root)
}
