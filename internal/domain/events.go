package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventTransition         EventType = "Transition"
	EventSelectionCommitted EventType = "SelectionCommitted"
	EventPopupVisibility    EventType = "PopupVisibility"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
	EventError              EventType = "Error"
)

// SelectionMethod identifies how a value was committed
type SelectionMethod string

const (
	SelectionByClick    SelectionMethod = "click"
	SelectionByKeyboard SelectionMethod = "keyboard"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// TransitionEvent is emitted after every committed state machine transition
type TransitionEvent struct {
	From     string
	To       string
	Action   string
	Value    string  // committed text value after the transition
	NavValue *string // highlighted option, nil when none
}

func (e TransitionEvent) Type() EventType { return EventTransition }

// SelectionCommittedEvent is emitted exactly once per committed selection
type SelectionCommittedEvent struct {
	Value  string
	Method SelectionMethod
}

func (e SelectionCommittedEvent) Type() EventType { return EventSelectionCommitted }

// PopupVisibilityEvent is emitted when the suggestion popup opens or closes
type PopupVisibilityEvent struct {
	Visible bool
}

func (e PopupVisibilityEvent) Type() EventType { return EventPopupVisibility }

// ConfigLoadedEvent is emitted when configuration has been loaded
type ConfigLoadedEvent struct {
	Path         string
	Autocomplete bool
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration has been saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
