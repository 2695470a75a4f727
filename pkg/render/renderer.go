package render

import (
	"context"

	"github.com/goliatone/go-ticketdesk/pkg/model"
)

// PlaceholderState selects the whole-view fragment shown when there are no
// cards to render.
type PlaceholderState string

const (
	// PlaceholderEmpty is shown when the store returned zero records.
	PlaceholderEmpty PlaceholderState = "empty"
	// PlaceholderUnavailable is shown when the store could not be reached.
	PlaceholderUnavailable PlaceholderState = "unavailable"
)

// Renderer converts one record into a display fragment (HTML, plain text).
// Rendering is a pure projection: calling Card repeatedly with the same record
// and options yields identical output.
type Renderer interface {
	Name() string
	ContentType() string
	Card(ctx context.Context, record model.Record, options RenderOptions) ([]byte, error)
	Placeholder(ctx context.Context, state PlaceholderState, options RenderOptions) ([]byte, error)
}
