package gen

import (
	"github.com/google/uuid"

	"github.com/lucaskalb/proptest/ltree"
	"github.com/lucaskalb/proptest/seed"
)

// AtomKind selects the shape of identifier Atom generates.
type AtomKind int

const (
	// AtomKindIdentifier generates a human-readable identifier: a lowercase
	// letter or underscore, followed by up to 16 letters/digits/underscores.
	// It shrinks toward shorter identifiers.
	AtomKindIdentifier AtomKind = iota
	// AtomKindUUID generates an RFC-4122 UUID-shaped opaque identifier. It
	// never shrinks — there's no meaningfully "smaller" UUID.
	AtomKindUUID
)

// Atom generates a symbol-like identifier of the given kind.
func Atom(kind AtomKind) Generator[string] {
	switch kind {
	case AtomKindUUID:
		return atomUUID()
	default:
		return atomIdentifier()
	}
}

func atomIdentifier() Generator[string] {
	firstCharGen := mustMemberOf([]rune(AlphabetLower + "_")...)
	restOpts := LengthOpts{Min: 0, Max: 16, HasMin: true, HasMax: true}
	restCharGen := mustMemberOf([]rune(AlphabetAlphaNum + "_")...)
	return Bind(firstCharGen, func(first rune) Generator[string] {
		return Map(ListOf(restCharGen, restOpts), func(rest []rune) string {
			body := string(first) + string(rest)
			sanitized := sanitizeWithTable(body, identifierContinueTable)
			if sanitized == "" {
				return string(first)
			}
			return sanitized
		})
	})
}

// seedReader turns a Seed into a deterministic io.Reader of pseudo-random
// bytes, splitting once per byte so repeated reads from the same Seed are
// reproducible.
type seedReader struct {
	cur seed.Seed
}

func (r *seedReader) Read(p []byte) (int, error) {
	for i := range p {
		s1, s2 := seed.Split(r.cur)
		p[i] = byte(seed.UniformInRange(s1, 0, 255))
		r.cur = s2
	}
	return len(p), nil
}

func atomUUID() Generator[string] {
	return NoShrink(From(func(s seed.Seed, _ Size) ltree.Tree[string] {
		u, err := uuid.NewRandomFromReader(&seedReader{cur: s})
		if err != nil {
			// seedReader.Read never returns an error, so this is unreachable.
			panic(err)
		}
		return ltree.Constant(u.String())
	}))
}
