package sync

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/goliatone/go-ticketdesk/pkg/model"
	"github.com/goliatone/go-ticketdesk/pkg/render"
)

// Sink receives the assembled fragment each time the view is replaced.
type Sink interface {
	Replace(ctx context.Context, contentType string, fragment []byte) error
}

// RendererView adapts a card renderer plus a sink into the View contract:
// records are rendered one card at a time in store order and handed over as
// one fragment.
type RendererView struct {
	renderer render.Renderer
	sink     Sink
	options  render.RenderOptions
}

// NewRendererView wires a renderer and sink into a View.
func NewRendererView(renderer render.Renderer, sink Sink, options render.RenderOptions) (*RendererView, error) {
	if renderer == nil {
		return nil, fmt.Errorf("sync: renderer is required")
	}
	if sink == nil {
		return nil, fmt.Errorf("sync: sink is required")
	}
	return &RendererView{renderer: renderer, sink: sink, options: options}, nil
}

// ShowList renders every record and replaces the sink content.
func (v *RendererView) ShowList(ctx context.Context, records []model.Record) error {
	var buf bytes.Buffer
	for _, record := range records {
		card, err := v.renderer.Card(ctx, record, v.options)
		if err != nil {
			return fmt.Errorf("sync: render card %q: %w", record.ID(), err)
		}
		buf.Write(card)
		buf.WriteByte('\n')
	}
	return v.sink.Replace(ctx, v.renderer.ContentType(), buf.Bytes())
}

// ShowEmpty replaces the sink content with the empty-store placeholder.
func (v *RendererView) ShowEmpty(ctx context.Context) error {
	fragment, err := v.renderer.Placeholder(ctx, render.PlaceholderEmpty, v.options)
	if err != nil {
		return fmt.Errorf("sync: render empty placeholder: %w", err)
	}
	return v.sink.Replace(ctx, v.renderer.ContentType(), fragment)
}

// ShowUnavailable replaces the sink content with the degraded-mode fragment.
func (v *RendererView) ShowUnavailable(ctx context.Context, _ error) error {
	fragment, err := v.renderer.Placeholder(ctx, render.PlaceholderUnavailable, v.options)
	if err != nil {
		return fmt.Errorf("sync: render unavailable placeholder: %w", err)
	}
	return v.sink.Replace(ctx, v.renderer.ContentType(), fragment)
}

// WriterSink streams replaced fragments to an io.Writer. Useful for CLI
// output where "replace" means print the latest full view.
type WriterSink struct {
	out io.Writer
}

// NewWriterSink wraps the writer.
func NewWriterSink(out io.Writer) *WriterSink {
	return &WriterSink{out: out}
}

// Replace writes the fragment.
func (s *WriterSink) Replace(_ context.Context, _ string, fragment []byte) error {
	_, err := s.out.Write(fragment)
	return err
}
