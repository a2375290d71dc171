package recase

import (
	"strings"

	"github.com/unbound-force/recase/internal/style"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Render rewrites target in style s.
//
// A single leading space in target marks where the style's leading
// separator goes. Every '_', '-' or ' ' after it becomes the style's
// word separator and starts a new word. Other characters are
// uppercased or lowercased by the style's case convention; a
// character's full case mapping is used, so one character may expand
// to several.
func Render(target string, s style.Style) string {
	if target == "" {
		return ""
	}

	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	var b strings.Builder
	b.Grow(len(target) + 1)

	rest := target
	if strings.HasPrefix(rest, " ") {
		s.Leading.AppendTo(&b)
		rest = rest[1:]
	}

	newWord := s.Case != style.Camel
	for _, r := range rest {
		if _, ok := style.SeparatorOf(r); ok {
			s.Word.AppendTo(&b)
			newWord = true
			continue
		}
		if upperAt(s.Case, newWord) {
			b.WriteString(upper.String(string(r)))
		} else {
			b.WriteString(lower.String(string(r)))
		}
		newWord = false
	}
	return b.String()
}

func upperAt(c style.Case, newWord bool) bool {
	switch c {
	case style.Lower:
		return false
	case style.AllCaps:
		return true
	default:
		return newWord
	}
}
