package controller

import (
	"context"
	"fmt"
	"io"
)

// Overlay is the surface that hosts the form. The controller only ever asks
// it to appear with a heading or to go away; what that means visually is up
// to the implementation.
type Overlay interface {
	Show(ctx context.Context, heading string) error
	Hide(ctx context.Context) error
}

// NopOverlay satisfies Overlay without doing anything. Useful for headless
// callers that drive the controller programmatically.
type NopOverlay struct{}

func (NopOverlay) Show(context.Context, string) error { return nil }
func (NopOverlay) Hide(context.Context) error         { return nil }

// WriterOverlay announces form transitions on a writer. The CLI uses it so
// the user sees which form they are in before the prompts start.
type WriterOverlay struct {
	out io.Writer
}

// NewWriterOverlay wraps out as an Overlay.
func NewWriterOverlay(out io.Writer) *WriterOverlay {
	return &WriterOverlay{out: out}
}

func (o *WriterOverlay) Show(ctx context.Context, heading string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(o.out, "== %s ==\n", heading)
	return err
}

func (o *WriterOverlay) Hide(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return nil
}

var (
	_ Overlay = NopOverlay{}
	_ Overlay = (*WriterOverlay)(nil)
)
