package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the palette for one display mode. The active theme is
// session state only: toggling never writes anywhere, so every run
// starts on the default again.
type Theme struct {
	Name string

	Title    lipgloss.Style
	Count    lipgloss.Style
	Cursor   lipgloss.Style
	ItemText lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
	InputBar lipgloss.Style
}

// Light is the default theme.
func Light() Theme {
	return Theme{
		Name:     "light",
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
		Count:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Cursor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
		ItemText: lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		Muted:    lipgloss.NewStyle().Faint(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Bold(true),
		Help:     lipgloss.NewStyle().Faint(true),
		InputBar: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1),
	}
}

func Dark() Theme {
	return Theme{
		Name:     "dark",
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		Count:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Cursor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		ItemText: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Muted:    lipgloss.NewStyle().Faint(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Help:     lipgloss.NewStyle().Faint(true),
		InputBar: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
	}
}

// ByName resolves a theme name from config or flags; anything unknown
// falls back to light.
func ByName(name string) Theme {
	if strings.EqualFold(name, "dark") {
		return Dark()
	}
	return Light()
}

// Toggle flips light to dark and back.
func (t Theme) Toggle() Theme {
	if t.Name == "dark" {
		return Light()
	}
	return Dark()
}
