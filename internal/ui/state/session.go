package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/go-logr/logr"

	"typeahead/internal/eventbus"
	"typeahead/internal/ui/logic"
	"typeahead/internal/ui/services/focus"
	"typeahead/internal/ui/services/options"
	"typeahead/internal/ui/services/statechart"
)

// Session is the shared combobox state passed by reference to every
// subcomponent: the machine, the render-pass option registry, the focus
// controller and the input element handle. Subcomponents read and mutate
// it through accessors instead of ambient lookup.
type Session struct {
	Machine  *statechart.Machine
	Registry *options.Registry
	Focus    *focus.Controller
	Input    *textinput.Model

	// Autocomplete previews the highlighted option text into the input
	// while navigating.
	Autocomplete bool

	// Controlled, when non-nil, is an externally supplied value that
	// overrides the internal one for display. The sync is one-directional:
	// the controlled value flows into internal data, never the reverse.
	Controlled *string
}

// NewSession wires a fresh widget session in the Idle configuration
func NewSession(bus eventbus.EventBus, autocomplete bool, log logr.Logger) *Session {
	machine := statechart.NewMachine(bus, log.WithName("statechart"))

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "Start typing a city"
	input.CharLimit = 120

	return &Session{
		Machine:      machine,
		Registry:     options.NewRegistry(log.WithName("options")),
		Focus:        focus.NewController(machine, log.WithName("focus")),
		Input:        &input,
		Autocomplete: autocomplete,
	}
}

// DisplayValue derives the text the input should render. While navigating
// with autocomplete enabled the highlighted option is previewed first;
// otherwise an externally controlled value wins over internal data.
func (s *Session) DisplayValue() string {
	d := s.Machine.Data()
	if s.Autocomplete && s.Machine.State() == statechart.StateNavigating && d.NavValue != nil {
		return *d.NavValue
	}
	if s.Controlled != nil {
		return *s.Controlled
	}
	return d.Value
}

// TypedChange applies a user edit of the input text. An empty or
// whitespace-only value clears instead of changing.
func (s *Session) TypedChange(value string) {
	if strings.TrimSpace(value) == "" {
		s.Machine.Apply(statechart.Clear())
		return
	}
	s.Machine.Apply(statechart.Change(value))
}

// SetControlled installs or removes the externally controlled value and
// immediately syncs internal data to it.
func (s *Session) SetControlled(value *string) {
	s.Controlled = value
	s.SyncControlled()
}

// SyncControlled keeps internal data in step with a controlled value that
// changed out from under the widget.
func (s *Session) SyncControlled() {
	if s.Controlled == nil {
		return
	}
	v := *s.Controlled
	if v == s.Machine.Data().Value {
		return
	}
	s.TypedChange(v)
}

// ActiveDescendant is the id of the highlighted option, or "" while
// nothing is highlighted.
func (s *Session) ActiveDescendant() string {
	nav := s.Machine.Data().NavValue
	if nav == nil {
		return ""
	}
	return logic.OptionID(*nav)
}

// Expanded reports whether the composite exposes its popup as open
func (s *Session) Expanded() bool {
	return statechart.Visible(s.Machine.State())
}

// OptionSelected reports whether value is the highlighted option
func (s *Session) OptionSelected(value string) bool {
	nav := s.Machine.Data().NavValue
	return nav != nil && *nav == value
}

// Teardown releases render-scoped state on unmount. In-flight deferred
// checks become no-ops and the registry empties so nothing stale can be
// read.
func (s *Session) Teardown() {
	s.Focus.Teardown()
	s.Registry.Clear()
}
