package focus

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"typeahead/internal/ui/services/statechart"
)

// Target identifies where keyboard focus currently rests
type Target int

const (
	// TargetInput - the combobox text input
	TargetInput Target = iota
	// TargetPopup - arbitrary content inside the suggestion popup
	TargetPopup
	// TargetOutside - anywhere that is neither the input nor the popup
	TargetOutside
)

func (t Target) String() string {
	switch t {
	case TargetInput:
		return "input"
	case TargetPopup:
		return "popup"
	default:
		return "outside"
	}
}

// BlurCheckMsg is the deferred blur check arriving one event-loop tick
// after the input lost focus, once the newly focused element has settled.
type BlurCheckMsg struct {
	Generation int
}

// Controller owns the focus-target slot and the deferred blur check. At
// the moment the input loses focus the next focus target is not settled
// yet, so the check is posted back to the event loop and resolved one
// tick later, guarded against teardown and superseded checks.
type Controller struct {
	machine    *statechart.Machine
	target     Target
	generation int
	alive      bool
	log        logr.Logger
}

// NewController creates a focus controller with focus on the input
func NewController(machine *statechart.Machine, log logr.Logger) *Controller {
	return &Controller{
		machine: machine,
		target:  TargetInput,
		alive:   true,
		log:     log,
	}
}

// Target returns the current focus target
func (c *Controller) Target() Target {
	return c.target
}

// SetTarget records where focus now rests. Moving focus is an
// environment fact, never a transition by itself; transitions happen in
// ResolveBlur.
func (c *Controller) SetTarget(t Target) {
	c.target = t
}

// BlurCmd schedules the deferred check for a blur that just happened.
// The returned command posts a BlurCheckMsg carrying the current
// generation; issuing a newer check invalidates any still in flight, so
// the check runs exactly once.
func (c *Controller) BlurCmd() tea.Cmd {
	c.generation++
	gen := c.generation
	return func() tea.Msg {
		return BlurCheckMsg{Generation: gen}
	}
}

// ResolveBlur runs the deferred blur check. Focus back on the input means
// nothing happened; focus inside the popup means the user is interacting
// with popup content (popup stays open, highlight clears); focus anywhere
// else closes the popup while preserving the value.
func (c *Controller) ResolveBlur(msg BlurCheckMsg) {
	if !c.alive || msg.Generation != c.generation {
		return
	}

	switch c.target {
	case TargetInput:
		// Focus returned before the check ran.
	case TargetPopup:
		if c.machine.State() != statechart.StateInteracting {
			c.machine.Apply(statechart.Interact())
		}
	default:
		c.machine.Apply(statechart.Blur())
	}
	c.log.V(1).Info("blur check resolved", "target", c.target.String(), "state", c.machine.State().String())
}

// ShouldReturnFocus reports whether the render following last must force
// keyboard focus back to the input.
func (c *Controller) ShouldReturnFocus(last statechart.ActionKind) bool {
	return last == statechart.ActionNavigate || last == statechart.ActionEscape
}

// Teardown marks the widget as unmounted; any in-flight blur check
// becomes a no-op.
func (c *Controller) Teardown() {
	c.alive = false
}
