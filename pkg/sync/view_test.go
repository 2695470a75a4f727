package sync

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-ticketdesk/pkg/model"
	"github.com/goliatone/go-ticketdesk/pkg/render"
	"github.com/goliatone/go-ticketdesk/pkg/renderers/text"
)

func TestRendererViewReplacesWholesale(t *testing.T) {
	var buf bytes.Buffer
	view, err := NewRendererView(text.New(), NewWriterSink(&buf), render.RenderOptions{})
	if err != nil {
		t.Fatalf("NewRendererView: %v", err)
	}

	records := []model.Record{
		{"id": "1", "concertName": "First"},
		{"id": "2", "concertName": "Second"},
	}
	if err := view.ShowList(context.Background(), records); err != nil {
		t.Fatalf("ShowList: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "First") || !strings.Contains(out, "Second") {
		t.Fatalf("expected both cards in output:\n%s", out)
	}
	if strings.Index(out, "First") > strings.Index(out, "Second") {
		t.Fatalf("cards out of store order:\n%s", out)
	}
}

func TestRendererViewPlaceholders(t *testing.T) {
	var buf bytes.Buffer
	view, err := NewRendererView(text.New(), NewWriterSink(&buf), render.RenderOptions{})
	if err != nil {
		t.Fatalf("NewRendererView: %v", err)
	}

	if err := view.ShowEmpty(context.Background()); err != nil {
		t.Fatalf("ShowEmpty: %v", err)
	}
	if !strings.Contains(buf.String(), "No data found") {
		t.Fatalf("unexpected empty content: %s", buf.String())
	}

	buf.Reset()
	if err := view.ShowUnavailable(context.Background(), errors.New("down")); err != nil {
		t.Fatalf("ShowUnavailable: %v", err)
	}
	if !strings.Contains(buf.String(), "not reachable") {
		t.Fatalf("unexpected degraded content: %s", buf.String())
	}
}
