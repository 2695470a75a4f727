package controller

import (
	"context"

	"github.com/goliatone/go-ticketdesk/pkg/prompt"
)

// Confirmer gates destructive actions. Returning false without an error means
// the user declined and the action should be silently skipped.
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(ctx context.Context, message string) (bool, error)

func (f ConfirmerFunc) Confirm(ctx context.Context, message string) (bool, error) {
	return f(ctx, message)
}

// acceptAll approves every action. It is the default so embedded callers that
// handle confirmation upstream do not get double-prompted.
type acceptAll struct{}

func (acceptAll) Confirm(context.Context, string) (bool, error) { return true, nil }

// PromptConfirmer asks through a terminal prompt driver. Deletions default to
// "no" so an accidental Enter never destroys data.
type PromptConfirmer struct {
	driver prompt.PromptDriver
}

// NewPromptConfirmer wraps a prompt driver as a Confirmer.
func NewPromptConfirmer(driver prompt.PromptDriver) *PromptConfirmer {
	return &PromptConfirmer{driver: driver}
}

func (c *PromptConfirmer) Confirm(ctx context.Context, message string) (bool, error) {
	return c.driver.Confirm(ctx, prompt.ConfirmConfig{
		Message: message,
		Default: false,
	})
}

var (
	_ Confirmer = ConfirmerFunc(nil)
	_ Confirmer = acceptAll{}
	_ Confirmer = (*PromptConfirmer)(nil)
)
