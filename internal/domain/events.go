package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventMessagesLoaded   EventType = "MessagesLoaded"
	EventQueryChanged     EventType = "QueryChanged"
	EventSelectionChanged EventType = "SelectionChanged"
	EventSelectionCleared EventType = "SelectionCleared"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// MessagesLoadedEvent is emitted once the store has been populated
type MessagesLoadedEvent struct {
	Source string // file path, or "" for the built-in dataset
	Count  int
}

func (e MessagesLoadedEvent) Type() EventType { return EventMessagesLoaded }

// QueryChangedEvent is emitted when the search term or status filter changes
type QueryChangedEvent struct {
	Term        string
	Filter      string
	ResultCount int
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// SelectionChangedEvent is emitted when a message becomes the current one
type SelectionChangedEvent struct {
	OldID       int // valid only if HadPrevious
	NewID       int
	HadPrevious bool
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SelectionClearedEvent is emitted when the selection is cleared
type SelectionClearedEvent struct {
	PreviousID int
}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	DataFile string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
