package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucaskalb/proptest/ltree"
	"github.com/lucaskalb/proptest/seed"
)

func TestFixedMapHasExactlyTheGivenKeys(t *testing.T) {
	s := seed.New(1)
	g := FixedMap(map[string]Generator[int]{
		"a": Const(1),
		"b": Const(2),
	})
	tr := g(s, 0)
	require.Equal(t, map[string]int{"a": 1, "b": 2}, tr.Root)
}

func TestFixedMapKeySetNeverShrinks(t *testing.T) {
	s := seed.New(2)
	g := FixedMap(map[string]Generator[int]{
		"a": IntRange(0, 10),
	})
	tr := g(s, 0)
	for c := range tr.Children {
		require.Len(t, c.Root, 1)
		_, ok := c.Root["a"]
		require.True(t, ok)
	}
}

func TestOptionalMapAlwaysIncludesRequiredKeys(t *testing.T) {
	s := seed.New(3)
	g := OptionalMap(
		map[string]Generator[int]{"req": Const(1)},
		map[string]Generator[int]{"opt": Const(2)},
	)
	for i := 0; i < 30; i++ {
		s, _ = seed.Split(s)
		tr := g(s, 0)
		_, ok := tr.Root["req"]
		require.True(t, ok)
	}
}

func TestOptionalMapShrinkDropsOptionalKeysFirst(t *testing.T) {
	s := seed.New(6)
	g := OptionalMap(
		map[string]Generator[int]{"req": Const(1)},
		map[string]Generator[int]{"opt": Const(2)},
	)
	var tr ltree.Tree[map[string]int]
	for {
		s, _ = seed.Split(s)
		tr = g(s, 0)
		if _, ok := tr.Root["opt"]; ok {
			break
		}
	}
	found := false
	for c := range tr.Children {
		if _, ok := c.Root["opt"]; !ok {
			found = true
			break
		}
	}
	require.True(t, found, "dropping the optional key should be an available shrink")
}

func TestMapOfRespectsLengthBoundsAndUniqueKeys(t *testing.T) {
	s := seed.New(4)
	opts := LengthOpts{Min: 2, Max: 6, HasMin: true, HasMax: true}
	g := MapOf(IntRange(0, 1000), Const("v"), opts)
	for i := 0; i < 30; i++ {
		s, _ = seed.Split(s)
		tr := g(s, 0)
		require.GreaterOrEqual(t, len(tr.Root), 2)
		require.LessOrEqual(t, len(tr.Root), 6)
	}
}

func TestKeywordOfRespectsLengthBoundsAndUniqueKeys(t *testing.T) {
	s := seed.New(5)
	opts := LengthOpts{Min: 2, Max: 6, HasMin: true, HasMax: true}
	g := KeywordOf(IntRange(0, 1000), opts)
	for i := 0; i < 30; i++ {
		s, _ = seed.Split(s)
		tr := g(s, 0)
		require.GreaterOrEqual(t, len(tr.Root), 2)
		require.LessOrEqual(t, len(tr.Root), 6)
		seen := map[string]struct{}{}
		for _, kv := range tr.Root {
			_, dup := seen[kv.Key]
			require.False(t, dup)
			seen[kv.Key] = struct{}{}
		}
	}
}

func TestKeywordOfWithExplicitKeysOnlyUsesThoseKeys(t *testing.T) {
	s := seed.New(6)
	opts := LengthOpts{Min: 2, Max: 3, HasMin: true, HasMax: true}
	g := KeywordOf(Const(0), opts, "get", "post", "put")
	tr := g(s, 0)
	for _, kv := range tr.Root {
		require.Contains(t, []string{"get", "post", "put"}, kv.Key)
	}
}

func TestKeywordOfShrinkDropsEntriesBeforeValues(t *testing.T) {
	s := seed.New(7)
	opts := LengthOpts{Min: 3, Max: 3, HasMin: true, HasMax: true}
	g := KeywordOf(IntRange(0, 100), opts, "a", "b", "c")
	tr := g(s, 0)
	require.Len(t, tr.Root, 3)
	var firstChild []KeyValue[int]
	for c := range tr.Children {
		firstChild = c.Root
		break
	}
	require.Len(t, firstChild, 2, "first shrink candidate should be a dropped entry, not a value shrink")
}
