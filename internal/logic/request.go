package logic

import (
	"context"

	"repogrip/internal/domain"
)

// FetchRequest is a single issued fetch for a source identifier.
// Run may be called off the event loop; its result must be handed back
// to ListStore.ApplyFetch on the loop.
type FetchRequest struct {
	Source  string
	Seq     uint64
	fetcher Fetcher
}

// FetchResult carries the outcome of a FetchRequest
type FetchResult struct {
	Source string
	Seq    uint64
	Items  domain.ItemList
	Err    error
}

// Run performs the fetch. It never touches the store.
func (r *FetchRequest) Run(ctx context.Context) FetchResult {
	res := FetchResult{Source: r.Source, Seq: r.Seq}
	names, err := r.fetcher.ListRepoNames(ctx, r.Source)
	if err != nil {
		res.Err = err
		return res
	}
	res.Items = domain.ItemList(names).Clone()
	return res
}
