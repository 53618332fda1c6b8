package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSourceChanged  EventType = "SourceChanged"
	EventFetchStarted   EventType = "FetchStarted"
	EventFetchCompleted EventType = "FetchCompleted"
	EventFetchFailed    EventType = "FetchFailed"
	EventFetchDiscarded EventType = "FetchDiscarded"
	EventListChanged    EventType = "ListChanged"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SourceChangedEvent is emitted when a new source identifier is recorded
type SourceChangedEvent struct {
	Source string
}

func (e SourceChangedEvent) Type() EventType { return EventSourceChanged }

// FetchStartedEvent is emitted when a request is issued for an identifier
type FetchStartedEvent struct {
	Source string
	Seq    uint64
}

func (e FetchStartedEvent) Type() EventType { return EventFetchStarted }

// FetchCompletedEvent is emitted when a fetch result replaced the list
type FetchCompletedEvent struct {
	Source string
	Count  int
}

func (e FetchCompletedEvent) Type() EventType { return EventFetchCompleted }

// FetchFailedEvent is emitted when the remote source could not produce a list.
// The list is left untouched.
type FetchFailedEvent struct {
	Source string
	Err    error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// FetchDiscardedEvent is emitted when a result arrives for a superseded request
type FetchDiscardedEvent struct {
	Source string
	Seq    uint64
}

func (e FetchDiscardedEvent) Type() EventType { return EventFetchDiscarded }

// ListChangedEvent is emitted once per settled mutation that changed the list
type ListChangedEvent struct {
	Previous int // length before the mutation
	Current  int // length after the mutation
	Items    ItemList
}

func (e ListChangedEvent) Type() EventType { return EventListChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
