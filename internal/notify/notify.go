// Package notify is the observability sink for list and fetch events.
package notify

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"repogrip/internal/domain"
)

// Describe renders an event as a single "kind details" line
func Describe(event domain.DomainEvent) string {
	switch e := event.(type) {
	case domain.SourceChangedEvent:
		return fmt.Sprintf("%s source=%q", e.Type(), e.Source)
	case domain.FetchStartedEvent:
		return fmt.Sprintf("%s source=%q seq=%d", e.Type(), e.Source, e.Seq)
	case domain.FetchCompletedEvent:
		return fmt.Sprintf("%s source=%q count=%d", e.Type(), e.Source, e.Count)
	case domain.FetchFailedEvent:
		return fmt.Sprintf("%s source=%q err=%v", e.Type(), e.Source, e.Err)
	case domain.FetchDiscardedEvent:
		return fmt.Sprintf("%s source=%q seq=%d", e.Type(), e.Source, e.Seq)
	case domain.ListChangedEvent:
		return fmt.Sprintf("%s %d -> %d items", e.Type(), e.Previous, e.Current)
	case domain.ConfigLoadedEvent:
		return fmt.Sprintf("%s path=%s", e.Type(), e.Path)
	case domain.ConfigSavedEvent:
		return fmt.Sprintf("%s path=%s", e.Type(), e.Path)
	default:
		return string(event.Type())
	}
}

// Logger writes every event it receives to a standard logger
type Logger struct {
	logger *log.Logger

	mu       sync.Mutex
	failures int
	changes  int
}

// NewLogger creates a logger sink. A nil logger writes to the standard logger.
func NewLogger(l *log.Logger) *Logger {
	return &Logger{logger: l}
}

// Handle logs a single event. It matches eventbus.EventHandler.
func (l *Logger) Handle(event domain.DomainEvent) {
	l.mu.Lock()
	switch event.(type) {
	case domain.FetchFailedEvent:
		l.failures++
	case domain.ListChangedEvent:
		l.changes++
	}
	l.mu.Unlock()

	line := Describe(event)
	if l.logger != nil {
		l.logger.Print(line)
		return
	}
	log.Print(line)
}

// Failures returns the number of fetch failures seen so far
func (l *Logger) Failures() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.failures
}

// Changes returns the number of list changes seen so far
func (l *Logger) Changes() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.changes
}

// Recorder is a synchronous Notifier that keeps every published event
type Recorder struct {
	mu     sync.Mutex
	events []domain.DomainEvent
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Publish records the event
func (r *Recorder) Publish(event domain.DomainEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of all recorded events
func (r *Recorder) Events() []domain.DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

// OfType returns the recorded events of one kind
func (r *Recorder) OfType(t domain.EventType) []domain.DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.DomainEvent
	for _, e := range r.events {
		if e.Type() == t {
			out = append(out, e)
		}
	}
	return out
}

// Reset forgets every recorded event
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// String lists the recorded events one per line
func (r *Recorder) String() string {
	var b strings.Builder
	for _, e := range r.Events() {
		b.WriteString(Describe(e))
		b.WriteString("\n")
	}
	return b.String()
}

// Fanout publishes every event to all of its notifiers in order
type Fanout []interface {
	Publish(domain.DomainEvent)
}

// Publish forwards the event
func (f Fanout) Publish(event domain.DomainEvent) {
	for _, n := range f {
		n.Publish(event)
	}
}
