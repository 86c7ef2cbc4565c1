package statechart

import "fmt"

// Reduce computes the next data for an applied action. It is a pure
// function: no side effects, same inputs always yield the same output.
// The navigation value resets on every commit, clear, blur, escape and
// interact action. An unrecognized action kind panics; it must never be
// silently ignored.
func Reduce(d Data, a Action) Data {
	next := d
	next.LastAction = a.Kind

	switch a.Kind {
	case ActionChange:
		next.Value = a.Value
		next.NavValue = nil
	case ActionNavigate:
		next.NavValue = a.NavValue
	case ActionClear:
		next.Value = ""
		next.NavValue = nil
	case ActionBlur, ActionEscape:
		next.NavValue = nil
	case ActionSelectClick:
		next.Value = a.Value
		next.NavValue = nil
	case ActionSelectKeyboard:
		if d.NavValue != nil {
			next.Value = *d.NavValue
		}
		next.NavValue = nil
	case ActionInteract:
		next.NavValue = nil
	default:
		panic(fmt.Sprintf("statechart: unknown action kind %d reached the reducer", int(a.Kind)))
	}

	return next
}
