package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"repogrip/internal/eventbus"
	"repogrip/internal/ui/state"
)

// TickMsg is a tick message for the loading spinner
type TickMsg time.Time

// EventHandler turns bus events into status updates
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.FetchStartedEvent:
		h.state.SetStatus(fmt.Sprintf("Fetching repositories for %s...", e.Source), false)
		return Tick()

	case eventbus.FetchCompletedEvent:
		h.state.SetStatus(fmt.Sprintf("Loaded %d repositories for %s", e.Count, e.Source), false)

	case eventbus.FetchFailedEvent:
		h.state.FetchFailures++
		h.state.SetStatus(fmt.Sprintf("Fetch failed for %s: %v", e.Source, e.Err), true)

	case eventbus.ListChangedEvent:
		h.state.ListChanges++
		h.state.SetStatus(fmt.Sprintf("List changed: %d → %d items", e.Previous, e.Current), false)

	case eventbus.SourceChangedEvent:
		if e.Source == "" {
			h.state.ClearStatus()
		}
	}

	return nil
}

// Tick schedules the next spinner frame
func Tick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
