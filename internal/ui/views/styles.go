package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Panel        lipgloss.Style
	PanelFocused lipgloss.Style
	Option       lipgloss.Style
	OptionActive lipgloss.Style
	MatchText    lipgloss.Style
	MatchActive  lipgloss.Style
	NoMatch      lipgloss.Style
	Notes        lipgloss.Style
	NotesFocused lipgloss.Style
	Status       lipgloss.Style
	Dim          lipgloss.Style
	Help         lipgloss.Style
	ScrollHint   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Input: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		InputFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		PanelFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")),
		Option: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		OptionActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("232")).
			Background(lipgloss.Color("214")),
		MatchText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true),
		MatchActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("232")).
			Background(lipgloss.Color("214")).
			Bold(true).
			Underline(true),
		NoMatch: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true),
		Notes: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		NotesFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Dim:  lipgloss.NewStyle().Faint(true),
		Help: lipgloss.NewStyle().Faint(true),
		ScrollHint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}
