package recase

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MatchPositional copies the casing of reference onto target position
// by position: target's i-th character is uppercased when reference's
// i-th character is uppercase and lowercased otherwise. Positions past
// the end of reference reuse the casing of its last character. An
// empty reference lowercases the whole target.
func MatchPositional(reference, target string) string {
	ref := []rune(reference)
	tailUpper := len(ref) > 0 && unicode.IsUpper(ref[len(ref)-1])

	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	var b strings.Builder
	b.Grow(len(target))

	i := 0
	for _, r := range target {
		up := tailUpper
		if i < len(ref) {
			up = unicode.IsUpper(ref[i])
		}
		if up {
			b.WriteString(upper.String(string(r)))
		} else {
			b.WriteString(lower.String(string(r)))
		}
		i++
	}
	return b.String()
}
