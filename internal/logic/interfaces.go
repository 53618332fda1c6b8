package logic

import (
	"context"

	"repogrip/internal/domain"
)

// Notifier receives the events emitted by the list store.
// eventbus.EventBus satisfies it.
type Notifier interface {
	Publish(event domain.DomainEvent)
}

// Fetcher retrieves the repository names owned by a source identifier
type Fetcher interface {
	ListRepoNames(ctx context.Context, source string) ([]string, error)
}

// FetcherFunc adapts a plain function to the Fetcher interface
type FetcherFunc func(ctx context.Context, source string) ([]string, error)

func (f FetcherFunc) ListRepoNames(ctx context.Context, source string) ([]string, error) {
	return f(ctx, source)
}

// DefaultPlaceholder is the entry appended by AppendPlaceholder
const DefaultPlaceholder = "Novo item"
