package gen

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/rangetable"
)

// Common alphabets, kept ASCII-only to avoid surprises.
const (
	AlphabetLower    = "abcdefghijklmnopqrstuvwxyz"
	AlphabetUpper    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	AlphabetAlpha    = AlphabetLower + AlphabetUpper
	AlphabetDigits   = "0123456789"
	AlphabetAlphaNum = AlphabetAlpha + AlphabetDigits
	AlphabetASCII    = AlphabetAlphaNum + " !\"#$%&'()*+,-./:;<=>?@[\\]^_{|}~"
)

// String generates a string drawn from alphabet (defaulting to
// AlphabetAlphaNum when empty), with length bounded by opts. It shrinks
// toward the empty string, and failing that toward a string of the same
// length whose characters are alphabet[0] — the composition of ListOf's
// length-reducing shrinks with MemberOf's shrink-toward-first-choice.
func String(alphabet string, opts LengthOpts) Generator[string] {
	if len(alphabet) == 0 {
		alphabet = AlphabetAlphaNum
	}
	letters := []rune(alphabet)
	choices := make([]rune, len(letters))
	copy(choices, letters)
	charGen := mustMemberOf(choices...)
	return Map(ListOf(charGen, opts), func(rs []rune) string { return string(rs) })
}

// StringAlpha generates letters only.
func StringAlpha(opts LengthOpts) Generator[string] { return String(AlphabetAlpha, opts) }

// StringAlphaNum generates letters and digits.
func StringAlphaNum(opts LengthOpts) Generator[string] { return String(AlphabetAlphaNum, opts) }

// StringDigits generates digit strings.
func StringDigits(opts LengthOpts) Generator[string] { return String(AlphabetDigits, opts) }

// StringASCII generates any printable ASCII string.
func StringASCII(opts LengthOpts) Generator[string] { return String(AlphabetASCII, opts) }

// unicodeSamplePool seeds UnicodeString with code points spread across
// several scripts; sanitizeToLetters then guarantees every character that
// survives is actually a Unicode letter, so a corrupted or truncated
// sample rune never slips through as a control character.
var unicodeSamplePool = []rune(
	"abcdefghijklmnopqrstuvwxyzÀÉÎÕÜçñ" +
		"абвгдежзийклмнопрстуфхцчшщъыьэюя" +
		"αβγδεζηθικλμνξοπρστυφχψω" +
		"日本語ひらがなカタカナ漢字" +
		"가나다라마바사아자차카타파하" +
		"אבגדהוזחטיכלמנסעפצקרשת",
)

var letterTable = rangetable.Merge(unicode.L)

// identifierContinueTable is the set of runes an identifier may contain
// after its first character: any Unicode letter, any decimal digit, or
// underscore.
var identifierContinueTable = rangetable.Merge(unicode.L, unicode.Nd, rangetable.New('_'))

// sanitizeWithTable drops every rune of s not in table, via a real
// transform.Transformer built from golang.org/x/text/runes rather than a
// hand-rolled filter loop.
func sanitizeWithTable(s string, table *unicode.RangeTable) string {
	out, _, err := transform.String(runes.Remove(runes.NotIn(table)), s)
	if err != nil {
		return ""
	}
	return out
}

func sanitizeToLetters(s string) string { return sanitizeWithTable(s, letterTable) }

// UnicodeString generates strings of Unicode letters spanning several
// scripts, bounded by opts. Shrinking behaves as String: first toward
// fewer characters, then toward the pool's first letter.
func UnicodeString(opts LengthOpts) Generator[string] {
	letterGen := Map(mustMemberOf(unicodeSamplePool...), func(r rune) rune {
		cleaned := sanitizeToLetters(string(r))
		if cleaned == "" {
			return 'a'
		}
		return []rune(cleaned)[0]
	})
	return Map(ListOf(letterGen, opts), func(rs []rune) string { return string(rs) })
}
