package app

import "github.com/charmbracelet/lipgloss"

// Style controls the window chrome.
type Style struct {
	MenuBar    lipgloss.Style
	MenuTitle  lipgloss.Style
	MenuActive lipgloss.Style
	MenuItem   lipgloss.Style
	MenuCursor lipgloss.Style
	MenuDim    lipgloss.Style
	MenuBox    lipgloss.Style
	Version    lipgloss.Style

	TabBar    lipgloss.Style
	Tab       lipgloss.Style
	TabActive lipgloss.Style
	TabClose  lipgloss.Style
	TabAdd    lipgloss.Style

	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogError  lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style

	Status lipgloss.Style
}

func DefaultStyle() Style {
	bar := lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252"))
	return Style{
		MenuBar:    bar,
		MenuTitle:  bar,
		MenuActive: lipgloss.NewStyle().Reverse(true),
		MenuItem:   lipgloss.NewStyle(),
		MenuCursor: lipgloss.NewStyle().Reverse(true),
		MenuDim:    lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		MenuBox:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")),
		Version:    bar.Foreground(lipgloss.Color("243")),

		TabBar:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		TabActive: lipgloss.NewStyle().Bold(true).Underline(true),
		TabClose:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		TabAdd:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),

		Dialog:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1),
		DialogTitle:  lipgloss.NewStyle().Bold(true),
		DialogError:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Button:       lipgloss.NewStyle().Padding(0, 1),
		ButtonActive: lipgloss.NewStyle().Padding(0, 1).Reverse(true),

		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	}
}
