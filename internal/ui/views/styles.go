package views

import (
	"github.com/charmbracelet/lipgloss"

	"msgdesk/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Header      lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Filter      lipgloss.Style
	Search      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Pane        lipgloss.Style
	Scroll      lipgloss.Style
	Label       lipgloss.Style
	Highlight   lipgloss.Style
	SelectionBg lipgloss.Style
	Selected    lipgloss.Style
	StatusError lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Search: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Help:   lipgloss.NewStyle().Faint(true),
		Main:   lipgloss.NewStyle().Padding(1, 2),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true), // blue
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),           // red
	}
}

// StatusColor returns the badge color for a message status
func StatusColor(status domain.Status) string {
	switch status {
	case domain.StatusNew:
		return "203" // red
	case domain.StatusRead:
		return "214" // yellow
	case domain.StatusReplied:
		return "78" // green
	default:
		return "241"
	}
}

// StatusStyle returns the foreground style for a message status
func StatusStyle(status domain.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(StatusColor(status)))
}
