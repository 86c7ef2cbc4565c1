package state

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typeahead/internal/eventbus"
	"typeahead/internal/ui/logic"
	"typeahead/internal/ui/services/focus"
	"typeahead/internal/ui/services/statechart"
)

func newSession(autocomplete bool) *Session {
	return NewSession(eventbus.New(), autocomplete, logr.Discard())
}

func strptr(s string) *string { return &s }

func TestDisplayValuePrefersHighlightWhileNavigatingWithAutocomplete(t *testing.T) {
	s := newSession(true)
	s.Machine.Apply(statechart.Change("ap"))
	s.Machine.Apply(statechart.Navigate(strptr("Apple")))

	assert.Equal(t, "Apple", s.DisplayValue())
}

func TestDisplayValueIgnoresHighlightWithoutAutocomplete(t *testing.T) {
	s := newSession(false)
	s.Machine.Apply(statechart.Change("ap"))
	s.Machine.Apply(statechart.Navigate(strptr("Apple")))

	assert.Equal(t, "ap", s.DisplayValue())
}

func TestDisplayValueFallsBackThroughControlled(t *testing.T) {
	s := newSession(true)
	s.Machine.Apply(statechart.Change("typed"))
	s.Machine.Apply(statechart.Navigate(nil)) // navigating, nothing highlighted

	// Highlight is nil, so the controlled value is next in line.
	s.Controlled = strptr("typed")
	assert.Equal(t, "typed", s.DisplayValue())

	s.Controlled = nil
	assert.Equal(t, "typed", s.DisplayValue())
}

func TestTypedChange(t *testing.T) {
	s := newSession(false)

	s.TypedChange("ap")
	assert.Equal(t, statechart.StateSuggesting, s.Machine.State())
	assert.Equal(t, "ap", s.Machine.Data().Value)

	s.TypedChange("   ")
	assert.Equal(t, statechart.StateIdle, s.Machine.State())
	assert.Equal(t, "", s.Machine.Data().Value)
}

func TestSyncControlledEmitsChange(t *testing.T) {
	s := newSession(false)

	s.SetControlled(strptr("Boston"))

	assert.Equal(t, "Boston", s.Machine.Data().Value)
	assert.Equal(t, statechart.StateSuggesting, s.Machine.State())
}

func TestSyncControlledWhitespaceEmitsClear(t *testing.T) {
	s := newSession(false)
	s.Machine.Apply(statechart.Change("Boston"))

	s.SetControlled(strptr("  "))

	assert.Equal(t, "", s.Machine.Data().Value)
	assert.Equal(t, statechart.StateIdle, s.Machine.State())
}

func TestSyncControlledNoopWhenEqual(t *testing.T) {
	s := newSession(false)
	s.Machine.Apply(statechart.Change("Boston"))

	s.SetControlled(strptr("Boston"))

	// No extra transition: last action is still the original change.
	assert.Equal(t, statechart.ActionChange, s.Machine.Data().LastAction)
	assert.Equal(t, statechart.StateSuggesting, s.Machine.State())
}

func TestAccessibilitySurface(t *testing.T) {
	s := newSession(false)

	assert.Equal(t, "", s.ActiveDescendant())
	assert.False(t, s.Expanded())

	s.Machine.Apply(statechart.Change("ba"))
	assert.True(t, s.Expanded())

	s.Machine.Apply(statechart.Navigate(strptr("Banana")))
	assert.Equal(t, logic.OptionID("Banana"), s.ActiveDescendant())
	assert.True(t, s.OptionSelected("Banana"))
	assert.False(t, s.OptionSelected("Apple"))

	s.Machine.Apply(statechart.Escape())
	assert.Equal(t, "", s.ActiveDescendant())
	assert.False(t, s.Expanded())
}

func TestTeardownClearsRegistryAndDisarmsBlur(t *testing.T) {
	s := newSession(false)
	s.Registry.Begin()
	s.Registry.Register("Apple")
	s.Machine.Apply(statechart.Change("a"))

	cmd := s.Focus.BlurCmd()
	s.Focus.SetTarget(focus.TargetOutside)
	s.Teardown()

	require.Equal(t, 0, s.Registry.Len())

	// The in-flight check resolves after teardown and must not transition.
	s.Focus.ResolveBlur(cmd().(focus.BlurCheckMsg))
	assert.Equal(t, statechart.StateSuggesting, s.Machine.State())
}
