package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"typeahead/internal/ui/logic"
)

// PopupState describes the option listbox for one render pass.
type PopupState struct {
	Options     []string
	NavIndex    int // -1 when no option is highlighted
	SearchTerms []string
	Width       int
	MaxVisible  int
	Focused     bool
	Hidden      bool // keep layout space without drawing option rows
}

// PopupLayout records where option rows landed so mouse events can be
// resolved back to options.
type PopupLayout struct {
	Top      int // screen row of the first option row
	Left     int
	Width    int
	FirstIdx int // registry index of the first visible row
	Rows     int // number of option rows drawn
}

// Contains reports whether the given cell falls inside the panel body.
func (l PopupLayout) Contains(x, y int) bool {
	if l.Rows == 0 {
		return false
	}
	return y >= l.Top-1 && y < l.Top+l.Rows+1 && x >= l.Left && x < l.Left+l.Width+2
}

// OptionAt resolves a cell to a registry index, or -1 when the cell is
// panel chrome rather than an option row.
func (l PopupLayout) OptionAt(x, y int) int {
	if !l.Contains(x, y) {
		return -1
	}
	row := y - l.Top
	if row < 0 || row >= l.Rows {
		return -1
	}
	return l.FirstIdx + row
}

// scrollWindow picks the slice of options to show so the highlighted
// option stays visible.
func scrollWindow(total, navIndex, maxVisible int) (first, count int) {
	if maxVisible <= 0 || total <= maxVisible {
		return 0, total
	}
	count = maxVisible
	if navIndex < 0 {
		return 0, count
	}
	first = navIndex - maxVisible/2
	if first < 0 {
		first = 0
	}
	if first+count > total {
		first = total - count
	}
	return first, count
}

// renderOption renders one option row with its matching segments
// emphasized.
func (s *Styles) renderOption(label string, terms []string, active bool, width int) string {
	spans := logic.Match(terms, label)
	var b strings.Builder
	for _, sp := range spans {
		seg := label[sp.Start:sp.End]
		switch {
		case sp.IsMatch && active:
			b.WriteString(s.MatchActive.Render(seg))
		case sp.IsMatch:
			b.WriteString(s.MatchText.Render(seg))
		case active:
			b.WriteString(s.OptionActive.Render(seg))
		default:
			b.WriteString(s.Option.Render(seg))
		}
	}
	line := b.String()
	pad := width - runewidth.StringWidth(label)
	if pad < 0 {
		plain := runewidth.Truncate(label, width, "…")
		if active {
			return s.OptionActive.Render(plain)
		}
		return s.Option.Render(plain)
	}
	filler := strings.Repeat(" ", pad)
	if active {
		filler = s.OptionActive.Render(filler)
	}
	return line + filler
}

// RenderPopup renders the option panel and reports its layout. top and
// left give the screen position of the panel border's top-left corner.
func (s *Styles) RenderPopup(st PopupState, top, left int) (string, PopupLayout) {
	width := st.Width
	if width < 10 {
		width = 10
	}
	panel := s.Panel
	if st.Focused {
		panel = s.PanelFocused
	}

	if st.Hidden || len(st.Options) == 0 {
		var body string
		if st.Hidden {
			body = s.Dim.Render(runewidth.FillRight("", width))
		} else {
			body = s.NoMatch.Render(runewidth.FillRight("No matching cities", width))
		}
		return panel.Render(body), PopupLayout{Top: top + 1, Left: left + 1, Width: width, FirstIdx: 0, Rows: 0}
	}

	first, count := scrollWindow(len(st.Options), st.NavIndex, st.MaxVisible)
	rows := make([]string, 0, count+1)
	for i := first; i < first+count; i++ {
		rows = append(rows, s.renderOption(st.Options[i], st.SearchTerms, i == st.NavIndex, width))
	}
	if len(st.Options) > count {
		hint := fmt.Sprintf("%d-%d of %d", first+1, first+count, len(st.Options))
		rows = append(rows, s.ScrollHint.Render(runewidth.FillRight(hint, width)))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return panel.Render(body), PopupLayout{
		Top:      top + 1,
		Left:     left + 1,
		Width:    width,
		FirstIdx: first,
		Rows:     count,
	}
}
