package gen

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"

	"github.com/lucaskalb/proptest/seed"
)

func TestStringUsesGivenAlphabet(t *testing.T) {
	s := seed.New(1)
	g := String(AlphabetDigits, LengthOpts{Min: 5, Max: 5, HasMin: true, HasMax: true})
	for i := 0; i < 30; i++ {
		s, _ = seed.Split(s)
		tr := g(s, 0)
		require.Len(t, tr.Root, 5)
		for _, r := range tr.Root {
			require.Contains(t, AlphabetDigits, string(r))
		}
	}
}

func TestStringDefaultsToAlphaNumWhenAlphabetEmpty(t *testing.T) {
	s := seed.New(2)
	g := String("", LengthOpts{Min: 3, Max: 3, HasMin: true, HasMax: true})
	tr := g(s, 0)
	for _, r := range tr.Root {
		require.Contains(t, AlphabetAlphaNum, string(r))
	}
}

func TestStringAlphaOnlyLetters(t *testing.T) {
	s := seed.New(3)
	g := StringAlpha(LengthOpts{Min: 10, Max: 10, HasMin: true, HasMax: true})
	tr := g(s, 0)
	for _, r := range tr.Root {
		require.True(t, unicode.IsLetter(r))
	}
}

func TestStringDigitsOnlyDigits(t *testing.T) {
	s := seed.New(4)
	g := StringDigits(LengthOpts{Min: 10, Max: 10, HasMin: true, HasMax: true})
	tr := g(s, 0)
	for _, r := range tr.Root {
		require.True(t, unicode.IsDigit(r))
	}
}

func TestUnicodeStringProducesOnlyLetters(t *testing.T) {
	s := seed.New(5)
	g := UnicodeString(LengthOpts{Min: 8, Max: 8, HasMin: true, HasMax: true})
	tr := g(s, 0)
	require.Len(t, []rune(tr.Root), 8)
	for _, r := range tr.Root {
		require.True(t, unicode.IsLetter(r))
	}
}

func TestSanitizeWithTableDropsNonMatchingRunes(t *testing.T) {
	out := sanitizeWithTable("a1!b2@", letterTable)
	require.Equal(t, "ab", out)
}
