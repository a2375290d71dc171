// Package report formats classification explanations as styled text
// or JSON.
package report

import (
	"encoding/json"
	"io"

	"github.com/unbound-force/recase/internal/recase"
	"github.com/unbound-force/recase/internal/style"
)

// StyleJSON is the JSON form of a style.Style.
type StyleJSON struct {
	Spec    string `json:"spec"`
	Leading string `json:"leading"`
	Case    string `json:"case"`
	Word    string `json:"word"`
	Example string `json:"example"`
}

// PossibleJSON lists the style components left after narrowing.
type PossibleJSON struct {
	Leading []string `json:"leading"`
	Case    []string `json:"case"`
	Word    []string `json:"word"`
}

// JSONReport is the top-level JSON output of `recase explain`.
type JSONReport struct {
	Version    string       `json:"version"`
	Reference  string       `json:"reference"`
	Priorities []StyleJSON  `json:"priorities"`
	Possible   PossibleJSON `json:"possible"`
	Admitted   int          `json:"admitted"`
	Style      StyleJSON    `json:"style"`
	Source     string       `json:"source"`
	Rank       int          `json:"rank"`
}

// NewStyleJSON converts s for JSON output.
func NewStyleJSON(s style.Style) StyleJSON {
	return StyleJSON{
		Spec:    s.String(),
		Leading: s.Leading.String(),
		Case:    s.Case.String(),
		Word:    s.Word.String(),
		Example: s.Describe(),
	}
}

// NewJSONReport builds the JSON form of ex.
func NewJSONReport(ex recase.Explanation, priorities []style.Style, version string) JSONReport {
	r := JSONReport{
		Version:    version,
		Reference:  ex.Reference,
		Priorities: make([]StyleJSON, 0, len(priorities)),
		Possible: PossibleJSON{
			Leading: names(ex.Possible.LeadingSeparators()),
			Case:    names(ex.Possible.Cases()),
			Word:    names(ex.Possible.WordSeparators()),
		},
		Admitted: ex.Possible.Count(),
		Style:    NewStyleJSON(ex.Style),
		Source:   string(ex.Source),
		Rank:     ex.Rank,
	}
	for _, p := range priorities {
		r.Priorities = append(r.Priorities, NewStyleJSON(p))
	}
	return r
}

// WriteJSON writes ex as indented JSON.
func WriteJSON(w io.Writer, ex recase.Explanation, priorities []style.Style, version string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewJSONReport(ex, priorities, version))
}

func names[T interface{ String() string }](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.String())
	}
	return out
}
