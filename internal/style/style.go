// Package style defines the closed vocabulary of identifier styles:
// case conventions, separator conventions, and the composite Style
// built from them.
package style

import "strings"

//go:generate go tool stringer -type=Case,Separator -output=style_string.go

// Case is the lettercasing convention of an identifier.
type Case int

// Case conventions in resolution order. A word written entirely in
// uppercase is admissible under both AllCaps and Caps, so AllCaps is
// tried first.
const (
	Lower   Case = iota // every letter lowercase
	Camel               // first word lowercase, later words capitalized
	AllCaps             // every letter uppercase
	Caps                // every word capitalized

	// NumCases is the number of case conventions.
	NumCases = int(iota)
)

// Separator is the character placed between words, or before the first
// word when used as a leading separator.
type Separator int

// Separator conventions in resolution order.
const (
	None Separator = iota
	Underscore
	Hyphen
	Space

	// NumSeparators is the number of separator conventions.
	NumSeparators = int(iota)
)

// Cases returns every case convention in resolution order.
func Cases() []Case {
	out := make([]Case, NumCases)
	for i := range out {
		out[i] = Case(i)
	}
	return out
}

// Separators returns every separator convention in resolution order.
func Separators() []Separator {
	out := make([]Separator, NumSeparators)
	for i := range out {
		out[i] = Separator(i)
	}
	return out
}

// SeparatorOf reports which separator r is. ok is false for any rune
// other than '_', '-' and ' '.
func SeparatorOf(r rune) (sep Separator, ok bool) {
	switch r {
	case '_':
		return Underscore, true
	case '-':
		return Hyphen, true
	case ' ':
		return Space, true
	default:
		return None, false
	}
}

// Rune returns the literal character for s, or 0 for None.
func (s Separator) Rune() rune {
	switch s {
	case Underscore:
		return '_'
	case Hyphen:
		return '-'
	case Space:
		return ' '
	default:
		return 0
	}
}

// AppendTo writes the literal character for s to b. None writes nothing.
func (s Separator) AppendTo(b *strings.Builder) {
	if r := s.Rune(); r != 0 {
		b.WriteRune(r)
	}
}

// Style is a complete identifier style. The zero value is plain
// lowercase with no separators.
type Style struct {
	Leading Separator
	Case    Case
	Word    Separator
}

// Fallback is returned by classification when nothing else applies.
var Fallback = Style{Leading: Underscore, Case: Lower, Word: Underscore}

// All returns every style, leading separator outermost and word
// separator innermost, each in resolution order.
func All() []Style {
	out := make([]Style, 0, NumSeparators*NumCases*NumSeparators)
	for _, lead := range Separators() {
		for _, c := range Cases() {
			for _, word := range Separators() {
				out = append(out, Style{Leading: lead, Case: c, Word: word})
			}
		}
	}
	return out
}

// String renders s in the compact notation accepted by Parse, for
// example "_A-b" for a leading underscore, Caps and hyphens.
func (s Style) String() string {
	var b strings.Builder
	s.Leading.AppendTo(&b)
	first, second := letterPair(s.Case)
	b.WriteRune(first)
	s.Word.AppendTo(&b)
	b.WriteRune(second)
	return b.String()
}

// Describe returns a readable name such as "snake_case" or "_camelCase".
func (s Style) Describe() string {
	var b strings.Builder
	s.Leading.AppendTo(&b)
	words := []string{"my", "var"}
	for i, w := range words {
		if i > 0 {
			s.Word.AppendTo(&b)
		}
		switch {
		case s.Case == AllCaps:
			w = strings.ToUpper(w)
		case s.Case == Caps, s.Case == Camel && i > 0:
			w = strings.ToUpper(w[:1]) + w[1:]
		}
		b.WriteString(w)
	}
	return b.String()
}

func letterPair(c Case) (rune, rune) {
	switch c {
	case Camel:
		return 'a', 'B'
	case AllCaps:
		return 'A', 'B'
	case Caps:
		return 'A', 'b'
	default:
		return 'a', 'b'
	}
}
