package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Label         lipgloss.Style
	FocusedLabel  lipgloss.Style
	Section       lipgloss.Style
	Item          lipgloss.Style
	Match         lipgloss.Style
	Placeholder   lipgloss.Style
	Dim           lipgloss.Style
	Filter        lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		FocusedLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		Item:          lipgloss.NewStyle(),
		Match:         lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Placeholder:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Italic(true),
		Dim:           lipgloss.NewStyle().Faint(true),
		Filter:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).MarginTop(1), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),             // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),              // green
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(1, 2),
	}
}
