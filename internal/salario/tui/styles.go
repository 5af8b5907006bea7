package tui

import "github.com/charmbracelet/lipgloss"

var (
	Primary     = lipgloss.Color("#101F38")
	Accent      = lipgloss.Color("#8BC34A")
	Muted       = lipgloss.Color("#6b7280")
	Border      = lipgloss.Color("#2a3850")
	Destructive = lipgloss.Color("#e53935")
	Warning     = lipgloss.Color("#FFC107")
)

type Styles struct {
	Title       lipgloss.Style
	Section     lipgloss.Style
	Label       lipgloss.Style
	Bonus       lipgloss.Style
	StatusInfo  lipgloss.Style
	StatusError lipgloss.Style
	Confirm     lipgloss.Style
	Help        lipgloss.Style
	Panel       lipgloss.Style
	PanelFocus  lipgloss.Style
}

func DefaultStyles() Styles {
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f2f2f2")).
			Background(Primary).
			Padding(0, 1),
		Section:     lipgloss.NewStyle().Bold(true),
		Label:       lipgloss.NewStyle().Width(9).Foreground(Muted),
		Bonus:       lipgloss.NewStyle().Bold(true).Foreground(Accent),
		StatusInfo:  lipgloss.NewStyle().Foreground(Accent),
		StatusError: lipgloss.NewStyle().Foreground(Destructive),
		Confirm:     lipgloss.NewStyle().Bold(true).Foreground(Warning),
		Help:        lipgloss.NewStyle().Foreground(Muted),
		Panel:       panel,
		PanelFocus:  panel.BorderForeground(Accent),
	}
}
