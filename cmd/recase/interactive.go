package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/unbound-force/recase/internal/recase"
	"github.com/unbound-force/recase/internal/report"
	"github.com/unbound-force/recase/internal/style"
)

// keyMap defines keybindings for the interactive TUI.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Quit, k.Help},
	}
}

var defaultKeyMap = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("^/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("v/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

// Styles for the TUI.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	candidateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40"))
)

// explainModel is the Bubble Tea model for browsing an explanation.
type explainModel struct {
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	ready    bool
	content  string
}

func newExplainModel(ex recase.Explanation, priorities []style.Style) explainModel {
	return explainModel{
		help:    help.New(),
		keys:    defaultKeyMap,
		content: renderExplainContent(ex, priorities),
	}
}

// renderExplainContent builds the scrollable body: the possibility
// table, the resolution, and every admitted style in default order.
func renderExplainContent(ex recase.Explanation, priorities []style.Style) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(
		fmt.Sprintf("recase explain %q: %d style(s) admitted",
			ex.Reference, ex.Possible.Count())))
	sb.WriteString("\n\n")

	sb.WriteString(report.Table(ex, report.DefaultStyles(), lipgloss.RoundedBorder()).String())
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Chosen: %s (%s) by %s\n\n",
		ex.Style.String(), ex.Style.Describe(), report.Resolution(ex, priorities)))

	if len(priorities) > 0 {
		sb.WriteString(statusStyle.Render("Priorities:"))
		sb.WriteString("\n")
		for i, p := range priorities {
			line := fmt.Sprintf("  %2d. %-5s %s", i+1, p.String(), p.Describe())
			if ex.Possible.Admits(p) {
				line = candidateStyle.Render(line + "  (admitted)")
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(statusStyle.Render("Admitted styles in default order:"))
	sb.WriteString("\n")
	for i, s := range style.All() {
		if !ex.Possible.Admits(s) {
			continue
		}
		line := fmt.Sprintf("  %2d. %-5s %s", i+1, s.String(), s.Describe())
		if s == ex.Style {
			line = candidateStyle.Render(line + "  <- chosen")
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m explainModel) Init() tea.Cmd {
	return nil
}

func (m explainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		footerHeight := 2

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-footerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - footerHeight
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m explainModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	footer := statusStyle.Render(
		fmt.Sprintf(" %3.f%% ", m.viewport.ScrollPercent()*100)) +
		" " + m.help.View(m.keys)

	return m.viewport.View() + "\n" + footer
}

// runInteractiveExplain launches the Bubble Tea TUI for browsing an
// explanation.
func runInteractiveExplain(ex recase.Explanation, priorities []style.Style) error {
	model := newExplainModel(ex, priorities)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
