package watch

import "github.com/charmbracelet/lipgloss"

// theme groups reusable styles for watch UI regions.
type theme struct {
	header    lipgloss.Style
	divider   lipgloss.Style
	timestamp lipgloss.Style
	kind      lipgloss.Style
	kindOther lipgloss.Style
	chat      lipgloss.Style
	sender    lipgloss.Style
	forward   lipgloss.Style
	preview   lipgloss.Style
	status    lipgloss.Style
	closed    lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		header: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("25")),
		divider: lipgloss.NewStyle().
			Foreground(lipgloss.Color("60")),
		timestamp: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		kind: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("114")),
		kindOther: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("179")),
		chat: lipgloss.NewStyle().
			Foreground(lipgloss.Color("75")),
		sender: lipgloss.NewStyle().
			Foreground(lipgloss.Color("213")),
		forward: lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")),
		preview: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		closed: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203")),
	}
}
