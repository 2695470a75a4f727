package render

import (
	"time"

	theme "github.com/goliatone/go-theme"
)

// RenderOptions describe per-request data renderers use to customise their
// output without mutating the record pipeline.
type RenderOptions struct {
	// Now anchors the Past/Upcoming status derivation. Zero means wall-clock
	// time; tests pin it for deterministic output.
	Now time.Time

	// Theme carries resolved theme tokens and CSS variables. Renderers that
	// support theming apply the variables to the fragment root; nil means
	// unthemed output.
	Theme *theme.RendererConfig
}

// Clock returns the anchor time for derived fields.
func (o RenderOptions) Clock() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}
