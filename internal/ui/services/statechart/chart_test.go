package statechart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStates = []State{StateIdle, StateSuggesting, StateNavigating, StateInteracting}

var allKinds = []ActionKind{
	ActionClear, ActionChange, ActionNavigate, ActionSelectKeyboard,
	ActionSelectClick, ActionEscape, ActionBlur, ActionInteract,
}

// legalPairs mirrors the transition table from the widget contract.
var legalPairs = map[State]map[ActionKind]State{
	StateIdle: {
		ActionBlur: StateIdle, ActionClear: StateIdle,
		ActionChange: StateSuggesting, ActionNavigate: StateNavigating,
	},
	StateSuggesting: {
		ActionChange: StateSuggesting, ActionNavigate: StateNavigating,
		ActionClear: StateIdle, ActionEscape: StateIdle, ActionBlur: StateIdle,
		ActionSelectClick: StateIdle, ActionInteract: StateInteracting,
	},
	StateNavigating: {
		ActionChange: StateSuggesting, ActionClear: StateIdle, ActionBlur: StateIdle,
		ActionEscape: StateIdle, ActionNavigate: StateNavigating,
		ActionSelectKeyboard: StateIdle, ActionSelectClick: StateIdle,
		ActionInteract: StateInteracting,
	},
	StateInteracting: {
		ActionChange: StateSuggesting, ActionBlur: StateIdle,
		ActionEscape: StateIdle, ActionNavigate: StateNavigating,
	},
}

func TestNextCoversEveryLegalPair(t *testing.T) {
	for state, row := range legalPairs {
		for kind, want := range row {
			got := Next(state, kind)
			assert.Equal(t, want, got, "%s + %s", state, kind)
		}
	}
}

func TestNextPanicsOnEveryIllegalPair(t *testing.T) {
	for _, state := range allStates {
		for _, kind := range allKinds {
			if _, ok := legalPairs[state][kind]; ok {
				continue
			}
			state, kind := state, kind
			require.Panics(t, func() {
				Next(state, kind)
			}, "%s + %s should be illegal", state, kind)
		}
	}
}

func TestLegalMatchesTable(t *testing.T) {
	for _, state := range allStates {
		for _, kind := range allKinds {
			_, want := legalPairs[state][kind]
			assert.Equal(t, want, Legal(state, kind), "%s + %s", state, kind)
		}
	}
}

func TestVisible(t *testing.T) {
	assert.False(t, Visible(StateIdle))
	assert.True(t, Visible(StateSuggesting))
	assert.True(t, Visible(StateNavigating))
	assert.True(t, Visible(StateInteracting))
}
