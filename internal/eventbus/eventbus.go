package eventbus

import (
	"sync"

	"typeahead/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventTransition         = domain.EventTransition
	EventSelectionCommitted = domain.EventSelectionCommitted
	EventPopupVisibility    = domain.EventPopupVisibility
	EventConfigLoaded       = domain.EventConfigLoaded
	EventConfigSaved        = domain.EventConfigSaved
	EventError              = domain.EventError
)

// Re-export domain event types
type TransitionEvent = domain.TransitionEvent
type SelectionCommittedEvent = domain.SelectionCommittedEvent
type PopupVisibilityEvent = domain.PopupVisibilityEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// bus is the concrete implementation of EventBus.
// Delivery is synchronous and in subscription order: every handler has run
// before Publish returns, so no handler can observe a half-applied
// transition from a later event.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]*subscription
	nextID   int
}

type subscription struct {
	id      int
	handler EventHandler
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]*subscription),
	}
}

// Publish delivers an event to all subscribers before returning
func (b *bus) Publish(event DomainEvent) {
	b.mu.RLock()
	subs := b.handlers[event.Type()]
	// Copy so handlers can subscribe/unsubscribe without racing the walk
	subsCopy := make([]*subscription, len(subs))
	copy(subsCopy, subs)
	b.mu.RUnlock()

	for _, sub := range subsCopy {
		sub.handler(event)
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &subscription{id: b.nextID, handler: handler}
	b.handlers[eventType] = append(b.handlers[eventType], sub)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == sub.id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}
