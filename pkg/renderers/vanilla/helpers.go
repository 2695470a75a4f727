package vanilla

import (
	"fmt"
	"math"
	"time"

	"github.com/goliatone/go-ticketdesk/pkg/model"
)

// calendarContext is the derived month/day/year widget. All three components
// come from the UTC calendar so the shown date never shifts with the viewer's
// timezone.
type calendarContext struct {
	Month string `json:"month"`
	Day   string `json:"day"`
	Year  string `json:"year"`
}

func calendarFor(record model.Record) *calendarContext {
	when, ok := record.Time("concertDate")
	if !ok {
		return nil
	}
	return &calendarContext{
		Month: when.Format("Jan"),
		Day:   when.Format("02"),
		Year:  when.Format("2006"),
	}
}

// statusFor derives Past/Upcoming against the anchor time, or "-" when the
// record has no usable date.
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

// priceFor formats the price as dollars with two decimals. Null, absent,
// zero, and non-finite prices all render as "-"; a literal NaN never reaches
// the page.
func priceFor(record model.Record) string {
	price, ok := record.Number("price")
	if !ok || math.IsNaN(price) || math.IsInf(price, 0) || price == 0 {
		return "-"
	}
	return fmt.Sprintf("$%.2f", price)
}

// textOr returns the stored string or the fallback when empty.
func textOr(record model.Record, name, fallback string) string {
	if value := record.String(name); value != "" {
		return value
	}
	return fallback
}
