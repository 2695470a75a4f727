// Package controller owns the create/edit form lifecycle: which mode the
// form is in, what heading it shows, and the single code path every mutation
// takes before the list view is refreshed.
package controller

import (
	"context"
	"fmt"
	"sync"

	"github.com/goliatone/go-ticketdesk/pkg/codec"
	"github.com/goliatone/go-ticketdesk/pkg/model"
	listsync "github.com/goliatone/go-ticketdesk/pkg/sync"
)

// Mode is the form lifecycle state.
type Mode string

const (
	ModeIdle     Mode = "idle"
	ModeCreating Mode = "creating"
	ModeEditing  Mode = "editing"
)

// Form headings shown per mode. Editing is the only mode with its own
// heading; every other state shows the default.
const (
	HeadingCreate = "Add a Concert Ticket"
	HeadingEdit   = "Edit Concert Ticket"
)

const deleteConfirmMessage = "Are you sure you want to delete this ticket?"

// Store is the mutation side of the remote client the controller drives.
// *client.Client satisfies it.
type Store interface {
	Create(ctx context.Context, record model.Record) (model.Record, error)
	Update(ctx context.Context, record model.Record) (model.Record, error)
	Remove(ctx context.Context, id string) (model.Record, error)
}

// Refresher re-syncs the list view. *sync.Synchronizer satisfies it.
type Refresher interface {
	Refresh(ctx context.Context) (listsync.Outcome, error)
}

// Controller drives the ticket form. A mutex serialises Submit and Delete so
// overlapping mutations cannot interleave their encode/request/refresh steps.
type Controller struct {
	mu        sync.Mutex
	codec     *codec.Codec
	store     Store
	refresher Refresher
	overlay   Overlay
	confirmer Confirmer

	mode  Mode
	draft codec.Snapshot
}

// Option configures a Controller during construction.
type Option func(*Controller)

// WithOverlay injects the surface that hosts the form.
func WithOverlay(overlay Overlay) Option {
	return func(c *Controller) {
		if overlay != nil {
			c.overlay = overlay
		}
	}
}

// WithConfirmer injects the destructive-action gate used by Delete.
func WithConfirmer(confirmer Confirmer) Option {
	return func(c *Controller) {
		if confirmer != nil {
			c.confirmer = confirmer
		}
	}
}

// New constructs a Controller. The codec, store, and refresher are required;
// overlay and confirmer default to no-op implementations.
func New(formCodec *codec.Codec, store Store, refresher Refresher, options ...Option) (*Controller, error) {
	if formCodec == nil {
		return nil, fmt.Errorf("controller: codec is required")
	}
	if store == nil {
		return nil, fmt.Errorf("controller: store is required")
	}
	if refresher == nil {
		return nil, fmt.Errorf("controller: refresher is required")
	}

	c := &Controller{
		codec:     formCodec,
		store:     store,
		refresher: refresher,
		overlay:   NopOverlay{},
		confirmer: acceptAll{},
		mode:      ModeIdle,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// Mode reports the current lifecycle state.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Heading reports the form heading for the current mode.
func (c *Controller) Heading() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode == ModeEditing {
		return HeadingEdit
	}
	return HeadingCreate
}

// Draft returns a copy of the current form snapshot, used to seed whatever
// frontend collects the values.
func (c *Controller) Draft() codec.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(codec.Snapshot, len(c.draft))
	for name, state := range c.draft {
		out[name] = state
	}
	return out
}

// BeginCreate opens a blank form. Any previous draft is discarded, including
// a lingering id from an earlier edit.
func (c *Controller) BeginCreate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mode = ModeCreating
	c.draft = codec.Snapshot{}
	return c.overlay.Show(ctx, HeadingCreate)
}

// BeginEdit opens the form pre-populated from an existing record.
func (c *Controller) BeginEdit(ctx context.Context, record model.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mode = ModeEditing
	c.draft = c.codec.Decode(record)
	return c.overlay.Show(ctx, HeadingEdit)
}

// Cancel abandons the draft and returns to idle. Nothing is persisted and
// the list is not refreshed.
func (c *Controller) Cancel(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mode = ModeIdle
	c.draft = nil
	return c.overlay.Hide(ctx)
}

// Submit encodes the snapshot and persists it. The payload is fully encoded
// before any network call; whether this is a create or an update is decided
// solely by the presence of a non-empty id in the encoded payload. On success
// the list is refreshed exactly once and the form resets; on failure the mode
// and draft survive so the user can correct and resubmit.
func (c *Controller) Submit(ctx context.Context, snapshot codec.Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := c.codec.Encode(snapshot)

	var err error
	if payload.ID() != "" {
		_, err = c.store.Update(ctx, payload)
	} else {
		_, err = c.store.Create(ctx, payload)
	}
	if err != nil {
		c.draft = snapshot
		return fmt.Errorf("controller: submit: %w", err)
	}

	c.mode = ModeIdle
	c.draft = nil
	if hideErr := c.overlay.Hide(ctx); hideErr != nil {
		return fmt.Errorf("controller: close overlay: %w", hideErr)
	}

	if _, refreshErr := c.refresher.Refresh(ctx); refreshErr != nil {
		return fmt.Errorf("controller: refresh after submit: %w", refreshErr)
	}
	return nil
}

// Delete removes a record after the confirmer approves. A declined
// confirmation is not an error: no request is made and the list stays as it
// is. There is no optimistic removal; the view only changes through the
// post-success refresh.
func (c *Controller) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id == "" {
		return fmt.Errorf("controller: delete: id is required")
	}

	confirmed, err := c.confirmer.Confirm(ctx, deleteConfirmMessage)
	if err != nil {
		return fmt.Errorf("controller: confirm delete: %w", err)
	}
	if !confirmed {
		return nil
	}

	if _, err := c.store.Remove(ctx, id); err != nil {
		return fmt.Errorf("controller: delete: %w", err)
	}

	if _, refreshErr := c.refresher.Refresh(ctx); refreshErr != nil {
		return fmt.Errorf("controller: refresh after delete: %w", refreshErr)
	}
	return nil
}
