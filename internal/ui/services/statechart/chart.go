package statechart

import "fmt"

// chart maps each state to its legal actions and the state each one leads
// to. An action missing from a state's row is illegal there.
var chart = map[State]map[ActionKind]State{
	StateIdle: {
		ActionBlur:     StateIdle,
		ActionClear:    StateIdle,
		ActionChange:   StateSuggesting,
		ActionNavigate: StateNavigating,
	},
	StateSuggesting: {
		ActionChange:      StateSuggesting,
		ActionNavigate:    StateNavigating,
		ActionClear:       StateIdle,
		ActionEscape:      StateIdle,
		ActionBlur:        StateIdle,
		ActionSelectClick: StateIdle,
		ActionInteract:    StateInteracting,
	},
	StateNavigating: {
		ActionChange:         StateSuggesting,
		ActionClear:          StateIdle,
		ActionBlur:           StateIdle,
		ActionEscape:         StateIdle,
		ActionNavigate:       StateNavigating,
		ActionSelectKeyboard: StateIdle,
		ActionSelectClick:    StateIdle,
		ActionInteract:       StateInteracting,
	},
	StateInteracting: {
		ActionChange:   StateSuggesting,
		ActionBlur:     StateIdle,
		ActionEscape:   StateIdle,
		ActionNavigate: StateNavigating,
	},
}

// Next returns the state reached by applying kind in from. It panics when
// the action is not legal in from: that is a contract violation by the
// calling controller, not a recoverable user-facing error.
func Next(from State, kind ActionKind) State {
	to, ok := chart[from][kind]
	if !ok {
		panic(fmt.Sprintf("statechart: action %q is not legal in state %q", kind, from))
	}
	return to
}

// Legal reports whether kind may be applied in from
func Legal(from State, kind ActionKind) bool {
	_, ok := chart[from][kind]
	return ok
}

// Visible reports whether the suggestion popup is open in s
func Visible(s State) bool {
	switch s {
	case StateSuggesting, StateNavigating, StateInteracting:
		return true
	default:
		return false
	}
}
