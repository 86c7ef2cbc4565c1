package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"typeahead/internal/config"
	"typeahead/internal/domain"
	"typeahead/internal/eventbus"
	"typeahead/internal/ui/logic"
	"typeahead/internal/ui/services/focus"
	"typeahead/internal/ui/services/keyboard"
	"typeahead/internal/ui/services/statechart"
	"typeahead/internal/ui/state"
	"typeahead/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	session *state.Session

	// All known options; the registry holds the filtered subset for the
	// current render pass.
	allOptions []string

	// UI-specific state not in the session
	width       int
	height      int
	notes       textinput.Model
	help        help.Model
	keys        keyMap
	focusArea   views.FocusArea
	layout      views.Layout
	popupHidden bool
	inPagerMode bool

	statusMessage string

	// Handlers
	keyboard   *keyboard.Controller
	renderer   *views.Renderer
	helpRender *HelpRenderer
	helpOps    *HelpOps

	program *tea.Program
	log     logr.Logger
}

// NewModel creates the application model
func NewModel(bus eventbus.EventBus, cfg *config.Config, options []string, log logr.Logger) *Model {
	session := state.NewSession(bus, cfg.Autocomplete, log.WithName("session"))
	session.Input.Focus()

	notes := textinput.New()
	notes.Prompt = "notes> "
	notes.Placeholder = "Anything else about your trip"
	notes.CharLimit = 200

	m := &Model{
		bus:        bus,
		config:     cfg,
		session:    session,
		allOptions: options,
		notes:      notes,
		help:       help.New(),
		keys:       defaultKeyMap,
		focusArea:  views.FocusInput,
		renderer:   views.NewRenderer(),
		helpRender: NewHelpRenderer(),
		log:        log,
	}
	m.keyboard = keyboard.NewController(
		session.Machine,
		session.Registry,
		func() bool { return session.Autocomplete },
		func(value string) { m.commitSelection(value, domain.SelectionByKeyboard) },
		log.WithName("keyboard"),
	)
	m.refresh()
	return m
}

// SetProgram sets the Bubble Tea program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Session exposes the combobox session, mainly for tests
func (m *Model) Session() *state.Session {
	return m.session
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case focus.BlurCheckMsg:
		m.session.Focus.ResolveBlur(msg)
		m.refresh()
		return m, nil

	case EventMsg:
		return m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			m.log.Error(msg.err, "help pager failed")
			m.statusMessage = fmt.Sprintf("Help pager failed: %v", msg.err)
			return m, clearStatusAfter(3 * time.Second)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	default:
		return m, nil
	}
}

// handleKey routes a key press to the combobox controller, the focused
// text field, or a global binding.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.session.Teardown()
		return m, tea.Quit

	case "f1":
		if m.helpOps == nil {
			return m, nil
		}
		return m, m.fetchHelpPager(m.helpRender.RenderHelpContentPlain())

	case "ctrl+p":
		m.popupHidden = !m.popupHidden
		return m, nil

	case "tab":
		if m.focusArea == views.FocusInput {
			return m, m.moveFocusToNotes()
		}
		return m, nil

	case "shift+tab":
		if m.focusArea == views.FocusNotes {
			m.moveFocusToInput()
		}
		return m, nil
	}

	switch m.focusArea {
	case views.FocusNotes:
		var cmd tea.Cmd
		m.notes, cmd = m.notes.Update(msg)
		return m, cmd

	default:
		if m.keyboard.HandleKey(msg) {
			m.refresh()
			return m, nil
		}
		before := m.session.Input.Value()
		var cmd tea.Cmd
		*m.session.Input, cmd = m.session.Input.Update(msg)
		if after := m.session.Input.Value(); after != before {
			m.session.TypedChange(after)
			m.refresh()
		}
		return m, cmd
	}
}

// handleMouse resolves a click against the rendered layout: an option
// row commits a click selection, popup chrome counts as interacting with
// popup content, the input row refocuses the input, and anywhere else
// blurs the widget.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.session.Expanded() && !m.popupHidden {
		if idx := m.layout.Popup.OptionAt(msg.X, msg.Y); idx >= 0 {
			if value, ok := m.session.Registry.At(idx); ok {
				m.clickSelect(value)
				m.refresh()
			}
			return m, nil
		}
		if m.layout.Popup.Contains(msg.X, msg.Y) {
			m.session.Focus.SetTarget(focus.TargetPopup)
			m.focusArea = views.FocusPopup
			m.session.Input.Blur()
			return m, m.session.Focus.BlurCmd()
		}
	}

	switch msg.Y {
	case m.layout.InputRow:
		m.moveFocusToInput()
		return m, nil
	case m.layout.NotesRow:
		return m, m.moveFocusToNotes()
	default:
		if m.focusArea != views.FocusNotes {
			return m, m.moveFocusToNotes()
		}
		return m, nil
	}
}

// handleEvent surfaces interesting domain events in the status line
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.SelectionCommittedEvent:
		m.statusMessage = fmt.Sprintf("Selected %s", e.Value)
		return m, clearStatusAfter(3 * time.Second)
	case eventbus.ConfigSavedEvent:
		m.statusMessage = "Selection saved"
		return m, clearStatusAfter(3 * time.Second)
	case eventbus.ErrorEvent:
		m.statusMessage = e.Message
		return m, clearStatusAfter(5 * time.Second)
	default:
		return m, nil
	}
}

// clickSelect commits a pointer selection of value. The callback order
// matches the keyboard path: observers see the committed value before
// the transition lands.
func (m *Model) clickSelect(value string) {
	if !statechart.Legal(m.session.Machine.State(), statechart.ActionSelectClick) {
		return
	}
	m.commitSelection(value, domain.SelectionByClick)
	m.session.Machine.Apply(statechart.SelectClick(value))
	m.moveFocusToInput()
}

func (m *Model) commitSelection(value string, method domain.SelectionMethod) {
	m.log.V(1).Info("selection committed", "value", value, "method", string(method))
	m.bus.Publish(eventbus.SelectionCommittedEvent{Value: value, Method: method})
}

// moveFocusToNotes blurs the combobox input and schedules the deferred
// blur check; what it resolves to depends on where focus has settled by
// the time the check runs.
func (m *Model) moveFocusToNotes() tea.Cmd {
	m.focusArea = views.FocusNotes
	m.session.Focus.SetTarget(focus.TargetOutside)
	m.session.Input.Blur()
	m.notes.Focus()
	return m.session.Focus.BlurCmd()
}

func (m *Model) moveFocusToInput() {
	m.focusArea = views.FocusInput
	m.session.Focus.SetTarget(focus.TargetInput)
	m.notes.Blur()
	m.session.Input.Focus()
}

// refresh is the render-pass bookkeeping that follows every transition:
// focus may be forced back to the input, the option registry is rebuilt
// from the current value, and the input text is synced to the derived
// display value.
func (m *Model) refresh() {
	d := m.session.Machine.Data()

	if m.session.Focus.ShouldReturnFocus(d.LastAction) {
		m.moveFocusToInput()
	}

	// The registry is rebuilt every pass, popup visible or not: ArrowDown
	// from idle navigates against it, and a hidden popup keeps its
	// options. It empties only on teardown.
	m.session.Registry.Begin()
	for _, opt := range logic.FilterOptions(d.Value, m.allOptions) {
		m.session.Registry.Register(opt)
	}

	if v := m.session.DisplayValue(); m.session.Input.Value() != v {
		m.session.Input.SetValue(v)
		m.session.Input.CursorEnd()
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	d := m.session.Machine.Data()
	vs := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		InputView:      m.session.Input.View(),
		Options:        m.session.Registry.Values(),
		NavIndex:       m.session.Registry.IndexOf(d.NavValue),
		SearchTerms:    logic.SearchTerms(d.Value),
		PopupOpen:      m.session.Expanded(),
		PopupHidden:    m.popupHidden,
		MaxVisible:     m.config.UISettings.PopupMaxVisible,
		Focus:          m.focusArea,
		NotesView:      m.notes.View(),
		StateName:      m.session.Machine.State().String(),
		Expanded:       m.session.Expanded(),
		ActiveOptionID: m.session.ActiveDescendant(),
		MatchCount:     m.session.Registry.Len(),
		ShowMatchCount: m.config.UISettings.ShowMatchCounts,
		StatusMessage:  m.statusMessage,
		HelpView:       m.help.View(m.keys),
	}

	out, layout := m.renderer.Render(vs)
	m.layout = layout
	return out
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
