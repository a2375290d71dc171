package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles defines the visual theme for terminal report output.
// Lipgloss automatically degrades to no-color when output is not a TTY.
type Styles struct {
	// Header is used for section headers.
	Header lipgloss.Style

	// SubHeader is used for secondary information lines.
	SubHeader lipgloss.Style

	// TableHeader styles the header row of tables.
	TableHeader lipgloss.Style

	// TableCell styles regular table cells.
	TableCell lipgloss.Style

	// Possible marks style components still consistent with the reference.
	Possible lipgloss.Style

	// Eliminated marks components ruled out by the reference.
	Eliminated lipgloss.Style

	// SummaryLabel styles summary line labels.
	SummaryLabel lipgloss.Style

	// SummaryValue styles summary line values.
	SummaryValue lipgloss.Style

	// Border is used for table borders.
	Border lipgloss.Style

	// Muted is used for de-emphasized text.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme for terminal reports.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		SubHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		TableCell:   lipgloss.NewStyle().PaddingRight(1),

		Possible:   lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true),
		Eliminated: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),

		SummaryLabel: lipgloss.NewStyle().Bold(true).Width(12),
		SummaryValue: lipgloss.NewStyle(),

		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),

		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// MarkStyle returns the style for a yes/no possibility cell.
func (s Styles) MarkStyle(mark string) lipgloss.Style {
	switch mark {
	case MarkPossible:
		return s.Possible
	case MarkEliminated:
		return s.Eliminated
	default:
		return s.TableCell
	}
}
