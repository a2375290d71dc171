package style

import (
	"errors"
	"fmt"
	"unicode"
)

// Sentinel errors wrapped by ParseError.
var (
	ErrTooShort       = errors.New("too short: need two letters")
	ErrExpectedLetter = errors.New("expected a cased letter")
	ErrUncased        = errors.New("second letter has no case")
	ErrTrailing       = errors.New("unexpected trailing characters")
)

// ParseError reports a style specification that could not be parsed.
type ParseError struct {
	Spec string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid style %q: %v", e.Spec, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads a compact style specification:
//
//	[leading separator] letter [word separator] letter
//
// The case of the first letter gives the case of an identifier's first
// letter; the case of the second gives whether later words start
// uppercase. "a_b" is snake_case, "aB" camelCase, "-A b" a leading
// hyphen with Title Case words, "A_B" SCREAMING_SNAKE.
func Parse(spec string) (Style, error) {
	rs := []rune(spec)
	var s Style
	i := 0

	if len(rs) > 0 {
		if sep, ok := SeparatorOf(rs[0]); ok {
			s.Leading = sep
			i++
		}
	}
	if len(rs)-i < 2 {
		return Style{}, &ParseError{Spec: spec, Err: ErrTooShort}
	}

	firstUpper, ok := letterCase(rs[i])
	if !ok {
		return Style{}, &ParseError{Spec: spec, Err: ErrExpectedLetter}
	}
	i++

	if sep, ok := SeparatorOf(rs[i]); ok {
		s.Word = sep
		i++
	}
	if i >= len(rs) {
		return Style{}, &ParseError{Spec: spec, Err: ErrTooShort}
	}

	secondUpper, ok := letterCase(rs[i])
	if !ok {
		return Style{}, &ParseError{Spec: spec, Err: ErrUncased}
	}
	if i+1 < len(rs) {
		return Style{}, &ParseError{Spec: spec, Err: ErrTrailing}
	}

	switch {
	case firstUpper && secondUpper:
		s.Case = AllCaps
	case firstUpper:
		s.Case = Caps
	case secondUpper:
		s.Case = Camel
	default:
		s.Case = Lower
	}
	return s, nil
}

// ParseAll parses every spec in order, stopping at the first failure.
func ParseAll(specs []string) ([]Style, error) {
	out := make([]Style, 0, len(specs))
	for _, spec := range specs {
		s, err := Parse(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// letterCase reports whether r is uppercase. ok is false when r is
// neither uppercase nor lowercase.
func letterCase(r rune) (upper, ok bool) {
	switch {
	case unicode.IsUpper(r):
		return true, true
	case unicode.IsLower(r):
		return false, true
	default:
		return false, false
	}
}
