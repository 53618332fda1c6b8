package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"repogrip/internal/logic"
	"repogrip/internal/ui/views"
)

// runList fetches every user concurrently, then prints one table per user
// in argument order. Each user gets its own store.
func runList(ctx context.Context, w io.Writer, fetcher logic.Fetcher, users []string, filter string) error {
	if len(users) == 0 {
		return errors.New("no user given")
	}

	stores := make([]*logic.ListStore, len(users))
	g, gctx := errgroup.WithContext(ctx)
	for i, user := range users {
		store := logic.NewListStore(nil, fetcher)
		stores[i] = store
		req := store.SetSourceIdentifier(user)
		if req == nil {
			return fmt.Errorf("invalid user %q", user)
		}
		g.Go(func() error {
			res := req.Run(gctx)
			if res.Err != nil {
				return res.Err
			}
			store.ApplyFetch(res)
			store.SetFilterText(filter)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, store := range stores {
		if i > 0 {
			fmt.Fprintln(w)
		}
		title := users[i]
		if store.HasFilter() {
			title = fmt.Sprintf("%s matching %q", users[i], store.FilterText())
		}
		fmt.Fprint(w, views.PagerContent(title, store.FilteredList()))
	}
	return nil
}
