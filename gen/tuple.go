package gen

import (
	"github.com/lucaskalb/proptest/ltree"
	"github.com/lucaskalb/proptest/seed"
)

// Tuple2Value is a fixed pair of independently shrinkable components.
type Tuple2Value[A, B any] struct {
	First  A
	Second B
}

// Tuple3Value is a fixed triple of independently shrinkable components.
type Tuple3Value[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple4Value is a fixed quadruple of independently shrinkable components.
type Tuple4Value[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Tuple2 pairs ga and gb, splitting the incoming seed so the two draws are
// independent. Shrinking offers ga's shrinks with gb's root held fixed,
// then gb's shrinks with ga's root held fixed — each component shrinks on
// its own, as with ltree.Zip.
func Tuple2[A, B any](ga Generator[A], gb Generator[B]) Generator[Tuple2Value[A, B]] {
	return From(func(s seed.Seed, sz Size) ltree.Tree[Tuple2Value[A, B]] {
		sa, sb := seed.Split(s)
		return tuple2Tree(ga(sa, sz), gb(sb, sz))
	})
}

func tuple2Tree[A, B any](ta ltree.Tree[A], tb ltree.Tree[B]) ltree.Tree[Tuple2Value[A, B]] {
	return ltree.Tree[Tuple2Value[A, B]]{
		Root: Tuple2Value[A, B]{First: ta.Root, Second: tb.Root},
		Children: func(yield func(ltree.Tree[Tuple2Value[A, B]]) bool) {
			for c := range ta.Children {
				if !yield(tuple2Tree(c, tb)) {
					return
				}
			}
			for c := range tb.Children {
				if !yield(tuple2Tree(ta, c)) {
					return
				}
			}
		},
	}
}

// Tuple3 generates three independently shrinking components.
func Tuple3[A, B, C any](ga Generator[A], gb Generator[B], gc Generator[C]) Generator[Tuple3Value[A, B, C]] {
	return From(func(s seed.Seed, sz Size) ltree.Tree[Tuple3Value[A, B, C]] {
		sa, rest := seed.Split(s)
		sb, sc := seed.Split(rest)
		return tuple3Tree(ga(sa, sz), gb(sb, sz), gc(sc, sz))
	})
}

func tuple3Tree[A, B, C any](ta ltree.Tree[A], tb ltree.Tree[B], tc ltree.Tree[C]) ltree.Tree[Tuple3Value[A, B, C]] {
	return ltree.Tree[Tuple3Value[A, B, C]]{
		Root: Tuple3Value[A, B, C]{First: ta.Root, Second: tb.Root, Third: tc.Root},
		Children: func(yield func(ltree.Tree[Tuple3Value[A, B, C]]) bool) {
			for c := range ta.Children {
				if !yield(tuple3Tree(c, tb, tc)) {
					return
				}
			}
			for c := range tb.Children {
				if !yield(tuple3Tree(ta, c, tc)) {
					return
				}
			}
			for c := range tc.Children {
				if !yield(tuple3Tree(ta, tb, c)) {
					return
				}
			}
		},
	}
}

// Tuple4 generates four independently shrinking components.
func Tuple4[A, B, C, D any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D]) Generator[Tuple4Value[A, B, C, D]] {
	return From(func(s seed.Seed, sz Size) ltree.Tree[Tuple4Value[A, B, C, D]] {
		sa, r1 := seed.Split(s)
		sb, r2 := seed.Split(r1)
		sc, sd := seed.Split(r2)
		return tuple4Tree(ga(sa, sz), gb(sb, sz), gc(sc, sz), gd(sd, sz))
	})
}

func tuple4Tree[A, B, C, D any](ta ltree.Tree[A], tb ltree.Tree[B], tc ltree.Tree[C], td ltree.Tree[D]) ltree.Tree[Tuple4Value[A, B, C, D]] {
	return ltree.Tree[Tuple4Value[A, B, C, D]]{
		Root: Tuple4Value[A, B, C, D]{First: ta.Root, Second: tb.Root, Third: tc.Root, Fourth: td.Root},
		Children: func(yield func(ltree.Tree[Tuple4Value[A, B, C, D]]) bool) {
			for c := range ta.Children {
				if !yield(tuple4Tree(c, tb, tc, td)) {
					return
				}
			}
			for c := range tb.Children {
				if !yield(tuple4Tree(ta, c, tc, td)) {
					return
				}
			}
			for c := range tc.Children {
				if !yield(tuple4Tree(ta, tb, c, td)) {
					return
				}
			}
			for c := range td.Children {
				if !yield(tuple4Tree(ta, tb, tc, c)) {
					return
				}
			}
		},
	}
}
