package logic

import (
	"repogrip/internal/domain"
)

// ListStore holds the source identifier, the repository list and the filter
// text, and keeps the filtered view derived from them.
//
// A ListStore is not safe for concurrent use. Every call is expected to happen
// on the same event loop; only FetchRequest.Run may run elsewhere.
type ListStore struct {
	notifier    Notifier
	fetcher     Fetcher
	placeholder string

	source   string
	items    domain.ItemList
	filter   string
	filtered domain.ItemList

	seq     uint64 // sequence number of the newest issued request
	pending bool   // the newest request has not resolved yet
	lastErr error
}

// Option configures a ListStore
type Option func(*ListStore)

// WithPlaceholder overrides the entry appended by AppendPlaceholder
func WithPlaceholder(placeholder string) Option {
	return func(s *ListStore) {
		if placeholder != "" {
			s.placeholder = placeholder
		}
	}
}

// WithItems seeds the list without firing the change notifier
func WithItems(items []string) Option {
	return func(s *ListStore) {
		s.items = domain.ItemList(items).Clone()
	}
}

type nopNotifier struct{}

func (nopNotifier) Publish(domain.DomainEvent) {}

// NewListStore creates a store with an empty list and an empty filter
func NewListStore(notifier Notifier, fetcher Fetcher, opts ...Option) *ListStore {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	s := &ListStore{
		notifier:    notifier,
		fetcher:     fetcher,
		placeholder: DefaultPlaceholder,
		items:       domain.ItemList{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.recompute()
	return s
}

// SetSourceIdentifier records a new identifier and returns the request that
// fetches its list. It returns nil when no request is needed: the identifier
// is empty or did not change.
func (s *ListStore) SetSourceIdentifier(id string) *FetchRequest {
	if id == s.source {
		return nil
	}
	s.source = id
	s.lastErr = nil
	s.notifier.Publish(domain.SourceChangedEvent{Source: id})

	if id == "" {
		// Any in-flight request is now stale.
		s.pending = false
		return nil
	}
	return s.issue()
}

// Refresh issues a new request for the current identifier
func (s *ListStore) Refresh() *FetchRequest {
	if s.source == "" {
		return nil
	}
	return s.issue()
}

func (s *ListStore) issue() *FetchRequest {
	if s.fetcher == nil {
		return nil
	}
	s.seq++
	s.pending = true
	s.notifier.Publish(domain.FetchStartedEvent{Source: s.source, Seq: s.seq})
	return &FetchRequest{Source: s.source, Seq: s.seq, fetcher: s.fetcher}
}

// ApplyFetch settles a fetch result. Results for anything but the newest
// request of the current identifier are discarded. It reports whether the
// result was accepted.
func (s *ListStore) ApplyFetch(res FetchResult) bool {
	if res.Seq != s.seq || res.Source != s.source || s.source == "" {
		s.notifier.Publish(domain.FetchDiscardedEvent{Source: res.Source, Seq: res.Seq})
		return false
	}
	s.pending = false

	if res.Err != nil {
		s.lastErr = res.Err
		s.notifier.Publish(domain.FetchFailedEvent{Source: res.Source, Err: res.Err})
		return true
	}

	s.lastErr = nil
	s.replace(res.Items.Clone())
	s.notifier.Publish(domain.FetchCompletedEvent{Source: res.Source, Count: len(res.Items)})
	return true
}

// SetFilterText replaces the filter text and recomputes the filtered view
func (s *ListStore) SetFilterText(text string) {
	if text == s.filter {
		return
	}
	s.filter = text
	s.recompute()
}

// AppendPlaceholder appends the placeholder entry to the list
func (s *ListStore) AppendPlaceholder() {
	next := make(domain.ItemList, 0, len(s.items)+1)
	next = append(next, s.items...)
	next = append(next, s.placeholder)
	s.replace(next)
}

// replace swaps the list wholesale and fires the change notifier when the
// contents differ.
func (s *ListStore) replace(next domain.ItemList) {
	prev := s.items
	s.items = next
	s.recompute()

	if prev.Equal(next) {
		return
	}
	s.notifier.Publish(domain.ListChangedEvent{
		Previous: len(prev),
		Current:  len(next),
		Items:    next.Clone(),
	})
}

func (s *ListStore) recompute() {
	s.filtered = Filter(s.items, s.filter)
}

// FilteredList returns the items matching the current filter text.
// With an empty filter it returns the whole list; use HasFilter to tell the
// two display states apart.
func (s *ListStore) FilteredList() domain.ItemList {
	return s.filtered.Clone()
}

// List returns the full unfiltered list
func (s *ListStore) List() domain.ItemList {
	return s.items.Clone()
}

// FilterText returns the current filter text
func (s *ListStore) FilterText() string {
	return s.filter
}

// HasFilter reports whether a filter is applied
func (s *ListStore) HasFilter() bool {
	return s.filter != ""
}

// Source returns the current source identifier
func (s *ListStore) Source() string {
	return s.source
}

// SetPlaceholder changes the entry used by later appends. Entries already in
// the list keep their text. Empty values are ignored.
func (s *ListStore) SetPlaceholder(placeholder string) {
	if placeholder != "" {
		s.placeholder = placeholder
	}
}

// Placeholder returns the entry appended by AppendPlaceholder
func (s *ListStore) Placeholder() string {
	return s.placeholder
}

// FetchState summarises the remote source for display
func (s *ListStore) FetchState() domain.FetchState {
	st := domain.FetchState{Source: s.source, Loading: s.pending}
	if s.lastErr != nil {
		st.LastErr = s.lastErr.Error()
	}
	return st
}
