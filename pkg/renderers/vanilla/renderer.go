// Package vanilla renders concert-ticket records as framework-free HTML card
// fragments. Free-text fields are escaped during templating and the assembled
// fragment is sanitized before it is returned; the sanitation pass is a
// security control, not formatting.
package vanilla

import (
	"context"
	"fmt"
	"html"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/goliatone/go-ticketdesk/pkg/model"
	"github.com/goliatone/go-ticketdesk/pkg/render"
	rendertemplate "github.com/goliatone/go-ticketdesk/pkg/render/template"
	gotemplate "github.com/goliatone/go-ticketdesk/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// Ensure the implementation satisfies the public contract.
var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Card renders one record as a sanitized item-card fragment.
func (r *Renderer) Card(ctx context.Context, record model.Record, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	inner, err := r.templates.RenderTemplate("templates/card.tmpl", cardContext(record, options))
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render card template: %w", err)
	}

	var out strings.Builder
	out.WriteString(`<div class="item-card"`)
	if id := record.ID(); id != "" {
		out.WriteString(` data-id="` + html.EscapeString(id) + `"`)
	}
	writeThemeAttrs(&out, options)
	out.WriteString(">")
	out.WriteString(sanitizeCardMarkup(inner))
	out.WriteString("</div>")

	return []byte(out.String()), nil
}

// Placeholder renders the whole-view fragment used when no cards exist.
func (r *Renderer) Placeholder(ctx context.Context, state render.PlaceholderState, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	name := "templates/empty.tmpl"
	if state == render.PlaceholderUnavailable {
		name = "templates/unavailable.tmpl"
	}

	rendered, err := r.templates.RenderTemplate(name, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render placeholder %q: %w", state, err)
	}
	return []byte(sanitizeCardMarkup(rendered)), nil
}

// cardContext assembles the template context with every display value already
// derived; templates only place values, they never compute them.
func cardContext(record model.Record, options render.RenderOptions) map[string]any {
	return map[string]any{
		"concertName": textOr(record, "concertName", "Untitled Concert"),
		"artist":      record.String("artist"),
		"venue":       textOr(record, "venue", "-"),
		"city":        textOr(record, "city", "-"),
		"ticketType":  textOr(record, "ticketType", "-"),
		"seatInfo":    textOr(record, "seatInfo", "-"),
		"notes":       record.String("notes"),
		"price":       priceFor(record),
		"status":      statusFor(record, options.Clock()),
		"calendar":    calendarFor(record),
	}
}

// writeThemeAttrs applies resolved theme metadata to the card root. The theme
// comes from application configuration, never from record content, so it is
// written outside the sanitized region.
func writeThemeAttrs(out *strings.Builder, options render.RenderOptions) {
	cfg := options.Theme
	if cfg == nil {
		return
	}
	if cfg.Theme != "" {
		out.WriteString(` data-theme="` + html.EscapeString(cfg.Theme) + `"`)
	}
	if cfg.Variant != "" {
		out.WriteString(` data-theme-variant="` + html.EscapeString(cfg.Variant) + `"`)
	}
	if len(cfg.CSSVars) > 0 {
		names := make([]string, 0, len(cfg.CSSVars))
		for name := range cfg.CSSVars {
			names = append(names, name)
		}
		sort.Strings(names)

		var style strings.Builder
		for _, name := range names {
			style.WriteString(name + ":" + cfg.CSSVars[name] + ";")
		}
		out.WriteString(` style="` + html.EscapeString(style.String()) + `"`)
	}
}
