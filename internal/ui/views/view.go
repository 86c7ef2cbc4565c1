package views

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// FocusArea names the part of the screen that currently owns keyboard
// focus.
type FocusArea int

const (
	FocusInput FocusArea = iota
	FocusPopup
	FocusNotes
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	InputView      string
	Options        []string
	NavIndex       int
	SearchTerms    []string
	PopupOpen      bool
	PopupHidden    bool
	MaxVisible     int
	Focus          FocusArea
	NotesView      string
	StateName      string
	Expanded       bool
	ActiveOptionID string
	MatchCount     int
	ShowMatchCount bool
	StatusMessage  string
	HelpView       string
}

// Layout records where interactive regions landed so mouse events can
// be resolved to them.
type Layout struct {
	InputRow int
	NotesRow int
	Popup    PopupLayout
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles exposes the renderer's style set.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view and the layout of its interactive
// regions.
func (r *Renderer) Render(state ViewState) (string, Layout) {
	content := &strings.Builder{}
	layout := Layout{InputRow: -1, NotesRow: -1}
	row := 0

	write := func(line string) {
		content.WriteString(line)
		content.WriteString("\n")
		row++
	}

	write(r.styles.Title.Render("City Picker"))
	write("")

	inputStyle := r.styles.Input
	if state.Focus == FocusInput {
		inputStyle = r.styles.InputFocused
	}
	layout.InputRow = row
	write(inputStyle.Render(state.InputView))

	width := state.Width - 4
	if width < 24 {
		width = 24
	}
	if width > 60 {
		width = 60
	}

	if state.PopupOpen {
		popup, pl := r.styles.RenderPopup(PopupState{
			Options:     state.Options,
			NavIndex:    state.NavIndex,
			SearchTerms: state.SearchTerms,
			Width:       width,
			MaxVisible:  state.MaxVisible,
			Focused:     state.Focus == FocusPopup,
			Hidden:      state.PopupHidden,
		}, row, 0)
		layout.Popup = pl
		for _, line := range strings.Split(popup, "\n") {
			write(line)
		}
	}

	write("")
	notesStyle := r.styles.Notes
	if state.Focus == FocusNotes {
		notesStyle = r.styles.NotesFocused
	}
	layout.NotesRow = row
	write(notesStyle.Render(state.NotesView))
	write("")

	write(r.styles.Status.Render(r.statusLine(state)))
	if state.StatusMessage != "" {
		write(r.styles.Dim.Render(state.StatusMessage))
	}
	write(r.styles.Help.Render(state.HelpView))

	return content.String(), layout
}

// statusLine mirrors what a screen reader would announce for the
// combobox.
func (r *Renderer) statusLine(state ViewState) string {
	parts := []string{
		fmt.Sprintf("state=%s", state.StateName),
		fmt.Sprintf("expanded=%t", state.Expanded),
	}
	if state.ActiveOptionID != "" {
		parts = append(parts, "active="+state.ActiveOptionID)
	}
	if state.ShowMatchCount && state.PopupOpen && !state.PopupHidden {
		parts = append(parts, fmt.Sprintf("%d matches", state.MatchCount))
	}
	line := strings.Join(parts, "  ")
	if state.Width > 0 {
		line = runewidth.Truncate(line, state.Width, "…")
	}
	return line
}
