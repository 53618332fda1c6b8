package ui

import (
	"repogrip/internal/eventbus"
	"repogrip/internal/logic"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// fetchResultMsg carries a settled fetch back to the update loop
type fetchResultMsg struct {
	result logic.FetchResult
}

// pagerMsg reports that the pager has exited
type pagerMsg struct {
	err error
}

// configChangedMsg signals that the config file was written
type configChangedMsg struct{}
