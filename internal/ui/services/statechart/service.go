package statechart

import (
	"github.com/go-logr/logr"

	"typeahead/internal/eventbus"
)

// Machine composes the chart and the reducer behind a single transition
// operation. State and data are committed together: no observer can see
// new data with the old state or vice versa.
type Machine struct {
	state State
	data  Data
	bus   eventbus.EventBus
	log   logr.Logger
}

// NewMachine creates a machine in the mount-time configuration
func NewMachine(bus eventbus.EventBus, log logr.Logger) *Machine {
	return &Machine{
		state: StateIdle,
		data:  NewData(),
		bus:   bus,
		log:   log,
	}
}

// State returns the current state
func (m *Machine) State() State {
	return m.state
}

// Data returns the current value/navigation-value pair
func (m *Machine) Data() Data {
	return m.data
}

// Apply validates the action against the chart, runs the reducer, and
// commits the new state and data as one unit before publishing the
// transition. Illegal actions panic via Next.
func (m *Machine) Apply(a Action) {
	from := m.state
	next := Next(from, a.Kind)
	data := Reduce(m.data, a)

	wasVisible := Visible(from)

	m.state = next
	m.data = data

	m.log.V(1).Info("transition",
		"from", from.String(),
		"to", next.String(),
		"action", a.Kind.String(),
		"value", data.Value,
	)

	if m.bus != nil {
		m.bus.Publish(eventbus.TransitionEvent{
			From:     from.String(),
			To:       next.String(),
			Action:   a.Kind.String(),
			Value:    data.Value,
			NavValue: data.NavValue,
		})
		if visible := Visible(next); visible != wasVisible {
			m.bus.Publish(eventbus.PopupVisibilityEvent{Visible: visible})
		}
	}
}
