// Package recase infers the identifier style of a reference string and
// re-renders target strings in that style.
package recase

import (
	"unicode"

	"github.com/unbound-force/recase/internal/style"
)

// Source records which stage of resolution produced a style.
type Source string

// Resolution sources.
const (
	FromPriority Source = "priority"
	FromDefault  Source = "default"
	FromFallback Source = "fallback"
)

// Explanation is the full outcome of classifying a reference string.
type Explanation struct {
	// Reference is the string that was classified.
	Reference string

	// Possible holds the style components left after narrowing.
	Possible PossibilitySet

	// Style is the resolved style.
	Style style.Style

	// Source is the resolution stage that produced Style.
	Source Source

	// Rank is the index of Style in the priority list (FromPriority)
	// or in style.All() (FromDefault). It is -1 for FromFallback.
	Rank int
}

// Classify returns the style of reference, preferring the first entry
// of priorities that the evidence admits. An empty reference yields
// style.Fallback.
func Classify(reference string, priorities []style.Style) style.Style {
	return Explain(reference, priorities).Style
}

// Explain classifies reference like Classify and reports how the
// result was reached.
func Explain(reference string, priorities []style.Style) Explanation {
	ex := Explanation{
		Reference: reference,
		Possible:  NewPossibilitySet(),
		Style:     style.Fallback,
		Source:    FromFallback,
		Rank:      -1,
	}
	if reference == "" {
		return ex
	}

	ex.Possible = Narrow(reference)

	for i, s := range priorities {
		if ex.Possible.Admits(s) {
			ex.Style, ex.Source, ex.Rank = s, FromPriority, i
			return ex
		}
	}
	for i, s := range style.All() {
		if ex.Possible.Admits(s) {
			ex.Style, ex.Source, ex.Rank = s, FromDefault, i
			return ex
		}
	}
	return ex
}

// Narrow collects the per-character evidence in reference.
//
// A leading '_', '-' or ' ' pins the leading separator and is consumed;
// otherwise the leading separator is pinned to None. The first
// remaining character rules out Camel when uppercase and Caps
// otherwise. Every remaining character then rules out AllCaps when
// lowercase and Lower when uppercase, and each separator character
// pins the word separator, the last one winning.
func Narrow(reference string) PossibilitySet {
	p := NewPossibilitySet()
	rest := []rune(reference)

	if len(rest) > 0 {
		if sep, ok := style.SeparatorOf(rest[0]); ok {
			p.PinLeading(sep)
			rest = rest[1:]
		} else {
			p.PinLeading(style.None)
		}
	}

	if len(rest) > 0 {
		if unicode.IsUpper(rest[0]) {
			p.Eliminate(style.Camel)
		} else {
			p.Eliminate(style.Caps)
		}
	}

	for _, r := range rest {
		if sep, ok := style.SeparatorOf(r); ok {
			p.PinWord(sep)
			continue
		}
		switch {
		case unicode.IsLower(r):
			p.Eliminate(style.AllCaps)
		case unicode.IsUpper(r):
			p.Eliminate(style.Lower)
		}
	}
	return p
}
