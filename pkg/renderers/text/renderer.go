// Package text renders concert-ticket records as plain-text cards for
// terminal output. It mirrors the HTML card's derived fields (calendar date,
// Past/Upcoming status, dollar price) without any markup.
package text

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/goliatone/go-ticketdesk/pkg/model"
	"github.com/goliatone/go-ticketdesk/pkg/render"
)

type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the text renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "text"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Card renders one record as an aligned text block.
func (r *Renderer) Card(ctx context.Context, record model.Record, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s by %s\n", titleFor(record), artistFor(record))
	fmt.Fprintf(&b, "  Venue:  %s (%s)\n", fieldOr(record, "venue"), fieldOr(record, "city"))
	fmt.Fprintf(&b, "  Date:   %s  Status: %s\n", dateFor(record), statusFor(record, options.Clock()))
	fmt.Fprintf(&b, "  Ticket: %s  Price: %s  Seat: %s\n",
		fieldOr(record, "ticketType"), priceFor(record), fieldOr(record, "seatInfo"))
	if notes := record.String("notes"); notes != "" {
		fmt.Fprintf(&b, "  Notes:  %s\n", notes)
	}
	if id := record.ID(); id != "" {
		fmt.Fprintf(&b, "  [id %s]\n", id)
	}
	return []byte(b.String()), nil
}

// Placeholder renders the whole-view message for empty or unreachable stores.
func (r *Renderer) Placeholder(ctx context.Context, state render.PlaceholderState, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if state == render.PlaceholderUnavailable {
		return []byte("The ticket database is not reachable right now.\n"), nil
	}
	return []byte("No data found in the database.\n"), nil
}

func titleFor(record model.Record) string {
	if name := record.String("concertName"); name != "" {
		return name
	}
	return "Untitled Concert"
}

func artistFor(record model.Record) string {
	if artist := record.String("artist"); artist != "" {
		return artist
	}
	return "Unknown artist"
}

func fieldOr(record model.Record, name string) string {
	if value := record.String(name); value != "" {
		return value
	}
	return "-"
}

func dateFor(record model.Record) string {
	when, ok := record.Time("concertDate")
	if !ok {
		return "-"
	}
	return when.Format("Jan 02, 2006")
}

func statusFor(record model.Record, now time.Time) string {
	when, ok := record.Time("concertDate")
	if !ok {
		return "-"
	}
	if when.Before(now) {
		return "Past"
	}
	return "Upcoming"
}

func priceFor(record model.Record) string {
	price, ok := record.Number("price")
	if !ok || math.IsNaN(price) || math.IsInf(price, 0) || price == 0 {
		return "-"
	}
	return fmt.Sprintf("$%.2f", price)
}
