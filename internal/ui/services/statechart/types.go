package statechart

import "fmt"

// State identifies one node of the combobox state chart
type State int

const (
	// StateIdle - popup closed, nothing highlighted
	StateIdle State = iota
	// StateSuggesting - popup open because the user is typing
	StateSuggesting
	// StateNavigating - popup open, user moving through options by keyboard
	StateNavigating
	// StateInteracting - focus rests on arbitrary popup content
	StateInteracting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSuggesting:
		return "suggesting"
	case StateNavigating:
		return "navigating"
	case StateInteracting:
		return "interacting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ActionKind is the tag of an Action
type ActionKind int

const (
	ActionClear ActionKind = iota
	ActionChange
	ActionNavigate
	ActionSelectKeyboard
	ActionSelectClick
	ActionEscape
	ActionBlur
	ActionInteract
)

// ActionNone is the LastAction value before any transition has applied
const ActionNone ActionKind = -1

func (k ActionKind) String() string {
	switch k {
	case ActionClear:
		return "clear"
	case ActionChange:
		return "change"
	case ActionNavigate:
		return "navigate"
	case ActionSelectKeyboard:
		return "select-keyboard"
	case ActionSelectClick:
		return "select-click"
	case ActionEscape:
		return "escape"
	case ActionBlur:
		return "blur"
	case ActionInteract:
		return "interact"
	case ActionNone:
		return "none"
	default:
		return fmt.Sprintf("action(%d)", int(k))
	}
}

// Action is one input to the machine. Value carries the payload for Change
// and SelectClick; NavValue carries the payload for Navigate, where nil
// means "no option highlighted, show the typed value".
type Action struct {
	Kind     ActionKind
	Value    string
	NavValue *string
}

// Clear resets the committed value
func Clear() Action { return Action{Kind: ActionClear} }

// Change carries a new typed value
func Change(value string) Action { return Action{Kind: ActionChange, Value: value} }

// Navigate highlights an option, or clears the highlight when value is nil
func Navigate(value *string) Action { return Action{Kind: ActionNavigate, NavValue: value} }

// SelectKeyboard commits the currently highlighted option
func SelectKeyboard() Action { return Action{Kind: ActionSelectKeyboard} }

// SelectClick commits a clicked option value
func SelectClick(value string) Action { return Action{Kind: ActionSelectClick, Value: value} }

// Escape dismisses the popup
func Escape() Action { return Action{Kind: ActionEscape} }

// Blur reports that focus left both the input and the popup
func Blur() Action { return Action{Kind: ActionBlur} }

// Interact reports that focus moved onto arbitrary popup content
func Interact() Action { return Action{Kind: ActionInteract} }

// Data is the value/navigation-value pair owned by the machine.
// NavValue is non-nil only while the user is actively moving through
// options with the keyboard. LastAction records the most recently applied
// action kind for cross-cutting effects (focus return); it never affects
// transition legality.
type Data struct {
	Value      string
	NavValue   *string
	LastAction ActionKind
}

// NewData returns the mount-time data
func NewData() Data {
	return Data{Value: "", NavValue: nil, LastAction: ActionNone}
}
