// Package sync keeps a rendered view of the ticket list consistent with the
// store. There is no partial patching: every refresh refetches the full list
// and replaces the view wholesale, so the view never drifts from the store by
// more than one fetch.
package sync

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/goliatone/go-ticketdesk/pkg/model"
)

// Outcome reports what a refresh did to the view.
type Outcome string

const (
	// OutcomeList means the store returned records and the view now shows them.
	OutcomeList Outcome = "list"
	// OutcomeEmpty means the store is empty and the view shows the placeholder.
	OutcomeEmpty Outcome = "empty"
	// OutcomeUnavailable means the store could not be listed and the view is in
	// its degraded whole-view mode.
	OutcomeUnavailable Outcome = "unavailable"
	// OutcomeStale means a newer refresh superseded this one; the view was left
	// alone.
	OutcomeStale Outcome = "stale"
)

// Lister is the read side of the store the synchronizer refetches from.
// *client.Client satisfies it.
type Lister interface {
	List(ctx context.Context) ([]model.Record, error)
}

// View is the replaceable display the synchronizer drives. Implementations
// replace their entire content on every call.
type View interface {
	ShowList(ctx context.Context, records []model.Record) error
	ShowEmpty(ctx context.Context) error
	ShowUnavailable(ctx context.Context, cause error) error
}

// Synchronizer serialises store state into the view. Concurrent refreshes are
// resolved by generation: only the newest refresh may touch the view, older
// in-flight responses are dropped.
type Synchronizer struct {
	lister     Lister
	view       View
	generation atomic.Uint64
}

// New constructs a Synchronizer over the given store and view.
func New(lister Lister, view View) (*Synchronizer, error) {
	if lister == nil {
		return nil, fmt.Errorf("sync: lister is required")
	}
	if view == nil {
		return nil, fmt.Errorf("sync: view is required")
	}
	return &Synchronizer{lister: lister, view: view}, nil
}

// Refresh refetches the full list and replaces the view. The returned error
// is the store failure when the outcome is OutcomeUnavailable, or the view's
// own failure to display.
func (s *Synchronizer) Refresh(ctx context.Context) (Outcome, error) {
	generation := s.generation.Add(1)

	records, err := s.lister.List(ctx)

	// A newer refresh started while this one was in flight. Its response is
	// the fresher one; this response must not overwrite it.
	if s.generation.Load() != generation {
		return OutcomeStale, nil
	}

	if err != nil {
		if viewErr := s.view.ShowUnavailable(ctx, err); viewErr != nil {
			return OutcomeUnavailable, fmt.Errorf("sync: show unavailable: %w", viewErr)
		}
		return OutcomeUnavailable, err
	}

	if len(records) == 0 {
		if viewErr := s.view.ShowEmpty(ctx); viewErr != nil {
			return OutcomeEmpty, fmt.Errorf("sync: show empty: %w", viewErr)
		}
		return OutcomeEmpty, nil
	}

	if viewErr := s.view.ShowList(ctx, records); viewErr != nil {
		return OutcomeList, fmt.Errorf("sync: show list: %w", viewErr)
	}
	return OutcomeList, nil
}
