package gotemplate

import (
	"strings"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"greeting.tmpl": &fstest.MapFile{Data: []byte("Hello {{ name }}!")},
		"card.tmpl":     &fstest.MapFile{Data: []byte(`{% if notes %}<p>{{ notes }}</p>{% endif %}`)},
	}
}

func TestNewRequiresLoader(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected error when no loader is configured")
	}
}

func TestRenderTemplateFromFS(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithExtension(".tmpl"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := engine.RenderTemplate("greeting", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hello Ada!" {
		t.Fatalf("output = %q", out)
	}
}

func TestRenderTemplateAppendsExtension(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithExtension("tmpl"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, err := engine.RenderTemplate("greeting.tmpl", map[string]any{"name": "Ada"}); err != nil {
		t.Fatalf("explicit extension rejected: %v", err)
	}
}

func TestRenderStringInline(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := engine.Render("{{ city }} tonight", map[string]any{"city": "Austin"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Austin tonight" {
		t.Fatalf("output = %q", out)
	}
}

func TestRenderConditionalSections(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithExtension(".tmpl"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := engine.RenderTemplate("card", map[string]any{"notes": "Doors at 7"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "<p>Doors at 7</p>") {
		t.Fatalf("notes not rendered: %q", out)
	}

	out, err = engine.RenderTemplate("card", map[string]any{"notes": ""})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "<p>") {
		t.Fatalf("empty notes rendered a section: %q", out)
	}
}

func TestGlobalContext(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithGlobalData(map[string]any{"site": "ticketdesk"}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := engine.RenderString("{{ site }}", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "ticketdesk" {
		t.Fatalf("global not applied: %q", out)
	}
}

func TestStructDataIsNormalized(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	data := struct {
		Venue string `json:"venue"`
	}{Venue: "Echo Theatre"}

	out, err := engine.RenderString("{{ venue }}", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Echo Theatre" {
		t.Fatalf("struct data not normalized: %q", out)
	}
}

func TestRegisterFilter(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	err = engine.RegisterFilter("shout_test", func(input any, _ any) (any, error) {
		s, _ := input.(string)
		return strings.ToUpper(s), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	out, err := engine.RenderString(`{{ word|shout_test }}`, map[string]any{"word": "hi"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "HI" {
		t.Fatalf("filter output = %q", out)
	}

	if err := engine.RegisterFilter("shout_test", func(input any, _ any) (any, error) {
		return input, nil
	}); err == nil {
		t.Fatal("expected duplicate filter error")
	}
}
