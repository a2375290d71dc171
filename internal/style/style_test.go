package style

import (
	"errors"
	"strings"
	"testing"
)

func TestAll_Count(t *testing.T) {
	all := All()
	if len(all) != 64 {
		t.Fatalf("expected 64 styles, got %d", len(all))
	}

	seen := make(map[Style]bool, len(all))
	for _, s := range all {
		if seen[s] {
			t.Errorf("duplicate style %v", s)
		}
		seen[s] = true
	}
}

func TestAll_Order(t *testing.T) {
	all := All()
	if all[0] != (Style{Leading: None, Case: Lower, Word: None}) {
		t.Errorf("first style = %+v, want plain lowercase", all[0])
	}
	if all[1] != (Style{Leading: None, Case: Lower, Word: Underscore}) {
		t.Errorf("word separator should vary fastest, got %+v", all[1])
	}
	if all[4] != (Style{Leading: None, Case: Camel, Word: None}) {
		t.Errorf("case should vary second, got %+v", all[4])
	}
	if all[16] != (Style{Leading: Underscore, Case: Lower, Word: None}) {
		t.Errorf("leading separator should vary slowest, got %+v", all[16])
	}
	if last := all[63]; last != (Style{Leading: Space, Case: Caps, Word: Space}) {
		t.Errorf("last style = %+v", last)
	}
}

func TestAllCaps_ResolvesBeforeCaps(t *testing.T) {
	cases := Cases()
	var allCaps, caps int
	for i, c := range cases {
		switch c {
		case AllCaps:
			allCaps = i
		case Caps:
			caps = i
		}
	}
	if allCaps > caps {
		t.Errorf("AllCaps (index %d) must precede Caps (index %d)", allCaps, caps)
	}
}

func TestSeparatorOf(t *testing.T) {
	tests := []struct {
		r      rune
		want   Separator
		wantOK bool
	}{
		{'_', Underscore, true},
		{'-', Hyphen, true},
		{' ', Space, true},
		{'.', None, false},
		{'a', None, false},
		{'\t', None, false},
	}
	for _, tt := range tests {
		got, ok := SeparatorOf(tt.r)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("SeparatorOf(%q) = (%v, %v), want (%v, %v)",
				tt.r, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSeparator_AppendTo(t *testing.T) {
	var b strings.Builder
	for _, s := range Separators() {
		s.AppendTo(&b)
	}
	if got := b.String(); got != "_- " {
		t.Errorf("AppendTo over all separators = %q, want %q", got, "_- ")
	}
}

func TestStyle_String(t *testing.T) {
	tests := []struct {
		style Style
		want  string
	}{
		{Style{None, Lower, Underscore}, "a_b"},
		{Style{None, Camel, None}, "aB"},
		{Style{None, AllCaps, Underscore}, "A_B"},
		{Style{Hyphen, Caps, Space}, "-A b"},
		{Style{Underscore, Lower, None}, "_ab"},
	}
	for _, tt := range tests {
		if got := tt.style.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.style, got, tt.want)
		}
	}
}

func TestStyle_StringParsesBack(t *testing.T) {
	for _, s := range All() {
		got, err := Parse(s.String())
		if err != nil {
			t.Errorf("Parse(%q) error: %v", s.String(), err)
			continue
		}
		if got != s {
			t.Errorf("Parse(%q) = %+v, want %+v", s.String(), got, s)
		}
	}
}

func TestStyle_Describe(t *testing.T) {
	tests := []struct {
		style Style
		want  string
	}{
		{Style{None, Lower, Underscore}, "my_var"},
		{Style{None, Camel, None}, "myVar"},
		{Style{None, Caps, None}, "MyVar"},
		{Style{None, AllCaps, Hyphen}, "MY-VAR"},
		{Style{Underscore, Caps, Space}, "_My Var"},
	}
	for _, tt := range tests {
		if got := tt.style.Describe(); got != tt.want {
			t.Errorf("%+v.Describe() = %q, want %q", tt.style, got, tt.want)
		}
	}
}

func TestEnumString(t *testing.T) {
	if Camel.String() != "Camel" {
		t.Errorf("Camel.String() = %q", Camel.String())
	}
	if Hyphen.String() != "Hyphen" {
		t.Errorf("Hyphen.String() = %q", Hyphen.String())
	}
	if got := Case(9).String(); got != "Case(9)" {
		t.Errorf("out of range case = %q", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Style
	}{
		{"ab", Style{None, Lower, None}},
		{"aB", Style{None, Camel, None}},
		{"Ab", Style{None, Caps, None}},
		{"AB", Style{None, AllCaps, None}},
		{"a_b", Style{None, Lower, Underscore}},
		{"a-b", Style{None, Lower, Hyphen}},
		{"A b", Style{None, Caps, Space}},
		{"_aB", Style{Underscore, Camel, None}},
		{"-A-B", Style{Hyphen, AllCaps, Hyphen}},
		{" x y", Style{Space, Lower, Space}},
		{"éÉ", Style{None, Camel, None}},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrTooShort},
		{"a", ErrTooShort},
		{"_a", ErrTooShort},
		{"a_", ErrTooShort},
		{"__", ErrTooShort},
		{"1a", ErrExpectedLetter},
		{"_.a", ErrExpectedLetter},
		{"a1", ErrUncased},
		{"a__b", ErrUncased},
		{"abc", ErrTrailing},
		{"a_b_", ErrTrailing},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := Parse(tt.spec)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if pe.Spec != tt.spec {
				t.Errorf("ParseError.Spec = %q, want %q", pe.Spec, tt.spec)
			}
		})
	}
}

func TestParseAll(t *testing.T) {
	got, err := ParseAll([]string{"a_b", "AB"})
	if err != nil {
		t.Fatalf("ParseAll error: %v", err)
	}
	if len(got) != 2 || got[0].Word != Underscore || got[1].Case != AllCaps {
		t.Errorf("ParseAll = %+v", got)
	}

	if _, err := ParseAll([]string{"a_b", "zz9"}); err == nil {
		t.Fatal("expected error for bad second spec")
	} else if !strings.Contains(err.Error(), `"zz9"`) {
		t.Errorf("error should name the bad spec, got: %v", err)
	}

	got, err = ParseAll(nil)
	if err != nil || len(got) != 0 {
		t.Errorf("ParseAll(nil) = %v, %v", got, err)
	}
}
