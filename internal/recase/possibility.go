package recase

import "github.com/unbound-force/recase/internal/style"

// PossibilitySet tracks which style components are still consistent
// with the evidence seen in a reference string. Case flags are only
// ever cleared; separator flags are pinned to a single value when a
// separator character is observed.
type PossibilitySet struct {
	Leading [style.NumSeparators]bool
	Case    [style.NumCases]bool
	Word    [style.NumSeparators]bool
}

// NewPossibilitySet returns a set in which every value is possible.
func NewPossibilitySet() PossibilitySet {
	var p PossibilitySet
	for i := range p.Leading {
		p.Leading[i] = true
		p.Word[i] = true
	}
	for i := range p.Case {
		p.Case[i] = true
	}
	return p
}

// PinLeading narrows the leading separator to exactly sep.
func (p *PossibilitySet) PinLeading(sep style.Separator) {
	p.Leading = pinned(sep)
}

// PinWord narrows the word separator to exactly sep, replacing any
// earlier pin.
func (p *PossibilitySet) PinWord(sep style.Separator) {
	p.Word = pinned(sep)
}

// Eliminate marks c as inconsistent with the evidence.
func (p *PossibilitySet) Eliminate(c style.Case) {
	p.Case[c] = false
}

// Admits reports whether every component of s is still possible.
func (p PossibilitySet) Admits(s style.Style) bool {
	return p.Leading[s.Leading] && p.Case[s.Case] && p.Word[s.Word]
}

// Cases returns the case conventions still possible, in resolution order.
func (p PossibilitySet) Cases() []style.Case {
	var out []style.Case
	for _, c := range style.Cases() {
		if p.Case[c] {
			out = append(out, c)
		}
	}
	return out
}

// LeadingSeparators returns the leading separators still possible.
func (p PossibilitySet) LeadingSeparators() []style.Separator {
	return possibleSeparators(p.Leading)
}

// WordSeparators returns the word separators still possible.
func (p PossibilitySet) WordSeparators() []style.Separator {
	return possibleSeparators(p.Word)
}

// Count returns how many styles the set admits.
func (p PossibilitySet) Count() int {
	return len(p.LeadingSeparators()) * len(p.Cases()) * len(p.WordSeparators())
}

func pinned(sep style.Separator) [style.NumSeparators]bool {
	var flags [style.NumSeparators]bool
	flags[sep] = true
	return flags
}

func possibleSeparators(flags [style.NumSeparators]bool) []style.Separator {
	var out []style.Separator
	for _, s := range style.Separators() {
		if flags[s] {
			out = append(out, s)
		}
	}
	return out
}
