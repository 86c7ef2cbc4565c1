package options

import (
	"github.com/go-logr/logr"
)

// Registry is the render-pass-scoped ordered collection of option values
// used for keyboard traversal. It is cleared at the start of every render
// pass and repopulated by each rendered option in document order, so it
// never holds a value whose option was unmounted in the same pass.
type Registry struct {
	values []string
	log    logr.Logger
}

// NewRegistry creates an empty registry
func NewRegistry(log logr.Logger) *Registry {
	return &Registry{log: log}
}

// Begin clears the registry ahead of a render pass. Every option that
// renders in the pass re-registers itself afterwards.
func (r *Registry) Begin() {
	r.values = r.values[:0]
}

// Register appends an option value in document order
func (r *Registry) Register(value string) {
	r.values = append(r.values, value)
}

// Clear empties the registry on widget teardown so a late deferred task
// never reads stale entries.
func (r *Registry) Clear() {
	r.values = nil
}

// Len returns the number of registered options
func (r *Registry) Len() int {
	return len(r.values)
}

// Values returns the registered options in document order
func (r *Registry) Values() []string {
	return r.values
}

// At returns the value at index i
func (r *Registry) At(i int) (string, bool) {
	if i < 0 || i >= len(r.values) {
		return "", false
	}
	return r.values[i], true
}

// IndexOf returns the position of value, or -1 when value is nil or not
// currently registered.
func (r *Registry) IndexOf(value *string) int {
	if value == nil {
		return -1
	}
	for i, v := range r.values {
		if v == *value {
			return i
		}
	}
	return -1
}
