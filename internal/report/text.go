package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/unbound-force/recase/internal/recase"
	"github.com/unbound-force/recase/internal/style"
)

// Cell values of the POSSIBLE column.
const (
	MarkPossible   = "yes"
	MarkEliminated = "no"
)

// Rows returns one table row per style component value:
// COMPONENT, VALUE, POSSIBLE.
func Rows(p recase.PossibilitySet) [][]string {
	mark := func(ok bool) string {
		if ok {
			return MarkPossible
		}
		return MarkEliminated
	}

	rows := make([][]string, 0, 2*style.NumSeparators+style.NumCases)
	for _, s := range style.Separators() {
		rows = append(rows, []string{"leading", s.String(), mark(p.Leading[s])})
	}
	for _, c := range style.Cases() {
		rows = append(rows, []string{"case", c.String(), mark(p.Case[c])})
	}
	for _, s := range style.Separators() {
		rows = append(rows, []string{"word", s.String(), mark(p.Word[s])})
	}
	return rows
}

// Table builds the possibility table for ex using s.
func Table(ex recase.Explanation, s Styles, border lipgloss.Border) *table.Table {
	rows := Rows(ex.Possible)
	return table.New().
		Border(border).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			if col == 2 && row >= 0 && row < len(rows) {
				return s.MarkStyle(rows[row][2])
			}
			return s.TableCell
		}).
		Headers("COMPONENT", "VALUE", "POSSIBLE").
		Rows(rows...)
}

// Resolution describes how ex was resolved, e.g.
// "priority #1 of 2" or "default order #18 of 64".
func Resolution(ex recase.Explanation, priorities []style.Style) string {
	switch ex.Source {
	case recase.FromPriority:
		return fmt.Sprintf("priority #%d of %d", ex.Rank+1, len(priorities))
	case recase.FromDefault:
		return fmt.Sprintf("default order #%d of %d", ex.Rank+1, len(style.All()))
	default:
		return "fallback (empty reference)"
	}
}

// WriteText writes ex as human-readable styled text.
func WriteText(w io.Writer, ex recase.Explanation, priorities []style.Style) error {
	s := DefaultStyles()

	fmt.Fprintln(w, s.Header.Render(fmt.Sprintf("=== %q ===", ex.Reference)))
	if len(priorities) > 0 {
		specs := make([]string, 0, len(priorities))
		for _, p := range priorities {
			specs = append(specs, p.String())
		}
		fmt.Fprintln(w, s.SubHeader.Render("    priorities: "+strings.Join(specs, " ")))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, Table(ex, s, lipgloss.NormalBorder()))
	fmt.Fprintln(w)

	summary := []struct{ label, value string }{
		{"admitted", fmt.Sprintf("%d style(s)", ex.Possible.Count())},
		{"style", fmt.Sprintf("%s (%s)", ex.Style.String(), ex.Style.Describe())},
		{"resolved by", Resolution(ex, priorities)},
	}
	for _, line := range summary {
		if _, err := fmt.Fprintf(w, "%s %s\n",
			s.SummaryLabel.Render(line.label),
			s.SummaryValue.Render(line.value)); err != nil {
			return err
		}
	}
	return nil
}
