package keyboard

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"typeahead/internal/ui/services/options"
	"typeahead/internal/ui/services/statechart"
)

// SelectFunc is the selection callback contract: invoked exactly once per
// keyboard-committed value, never on navigation-only movement.
type SelectFunc func(value string)

// Controller interprets key events against the current state, highlight
// and option registry, and issues the resulting transitions.
type Controller struct {
	machine      *statechart.Machine
	registry     *options.Registry
	autocomplete func() bool // live autocomplete flag
	onSelect     SelectFunc
	log          logr.Logger
}

// NewController creates a keyboard controller
func NewController(machine *statechart.Machine, registry *options.Registry, autocomplete func() bool, onSelect SelectFunc, log logr.Logger) *Controller {
	return &Controller{
		machine:      machine,
		registry:     registry,
		autocomplete: autocomplete,
		onSelect:     onSelect,
		log:          log,
	}
}

// HandleKey processes a key message and reports whether it was consumed.
// A consumed key must not reach the text input or the host form: that is
// the suppress-default contract for arrow scrolling and Enter submission.
func (c *Controller) HandleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "down":
		return c.navigateDown()
	case "up":
		return c.navigateUp()
	case "esc":
		return c.escape()
	case "enter":
		return c.selectHighlighted()
	default:
		return false
	}
}

// navigateDown moves the highlight one option forward. From the last
// option it either returns to the typed value (autocomplete) or wraps to
// the first option.
func (c *Controller) navigateDown() bool {
	values := c.registry.Values()
	if len(values) == 0 {
		// List not yet populated; still consume the key so the terminal
		// does not scroll.
		return true
	}

	if c.machine.State() == statechart.StateIdle {
		// Opens the list without highlighting anything.
		c.machine.Apply(statechart.Navigate(nil))
		return true
	}

	index := c.registry.IndexOf(c.machine.Data().NavValue)
	atBottom := index == len(values)-1
	switch {
	case atBottom && c.autocomplete():
		c.machine.Apply(statechart.Navigate(nil))
	case atBottom:
		c.navigateTo(values[0])
	default:
		c.navigateTo(values[(index+1)%len(values)])
	}
	return true
}

// navigateUp moves the highlight one option back. From the first option
// it either returns to the typed value (autocomplete) or wraps to the
// last option; from the typed value it always goes to the last option.
func (c *Controller) navigateUp() bool {
	values := c.registry.Values()
	if len(values) == 0 {
		return true
	}

	if c.machine.State() == statechart.StateIdle {
		c.machine.Apply(statechart.Navigate(nil))
		return true
	}

	index := c.registry.IndexOf(c.machine.Data().NavValue)
	switch {
	case index == 0 && c.autocomplete():
		c.machine.Apply(statechart.Navigate(nil))
	case index == 0:
		c.navigateTo(values[len(values)-1])
	case index == -1:
		// Currently showing the typed value; move onto the last option.
		c.navigateTo(values[len(values)-1])
	default:
		c.navigateTo(values[(index-1+len(values))%len(values)])
	}
	return true
}

// navigateTo highlights value. The value is copied first so machine data
// never aliases the registry's backing array, which later rebuilds
// overwrite in place.
func (c *Controller) navigateTo(value string) {
	c.machine.Apply(statechart.Navigate(&value))
}

func (c *Controller) escape() bool {
	if c.machine.State() == statechart.StateIdle {
		return false
	}
	c.machine.Apply(statechart.Escape())
	return true
}

// selectHighlighted commits the highlighted option. The selection
// callback fires before the transition, matching the click path where the
// caller sees the committed value first.
func (c *Controller) selectHighlighted() bool {
	if c.machine.State() != statechart.StateNavigating {
		return false
	}
	nav := c.machine.Data().NavValue
	if nav == nil {
		// Nothing highlighted: no selection, no transition, and the key
		// is not consumed.
		return false
	}

	value := *nav
	c.log.V(1).Info("keyboard selection", "value", value)
	if c.onSelect != nil {
		c.onSelect(value)
	}
	c.machine.Apply(statechart.SelectKeyboard())
	return true
}
