// Package codec converts flat string-keyed form snapshots into typed records
// and back, driven by a field-descriptor table. Coercion is total: every
// snapshot encodes and every record decodes, with malformed inputs folding to
// the nearest representable value rather than erroring.
package codec

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-ticketdesk/pkg/model"
)

// FieldState is the raw state of one form field: the string value plus the
// checked flag for boolean inputs. Boolean coercion reads Checked and ignores
// Value entirely.
type FieldState struct {
	Value   string
	Checked bool
}

// Snapshot maps field names to their raw state, one entry per field currently
// present in the form.
type Snapshot map[string]FieldState

// wireDateLayout is the full ISO-8601 datetime the store expects: calendar
// dates travel as UTC midnight with millisecond precision.
const wireDateLayout = "2006-01-02T15:04:05.000Z"

// inputDateLayout is the calendar-date shape date inputs produce.
const inputDateLayout = "2006-01-02"

// Codec coerces snapshots to records and records to snapshots using the
// declared descriptor table. The table is read-only to the codec.
type Codec struct {
	form model.FormModel
}

// New returns a Codec bound to the supplied descriptor table.
func New(form model.FormModel) *Codec {
	return &Codec{form: form}
}

// Encode converts a snapshot into a typed record ready for transmission.
// Unknown field names coerce as strings. Identity fields with empty values are
// omitted so the store assigns ids, never the codec.
func (c *Codec) Encode(snap Snapshot) model.Record {
	record := make(model.Record, len(snap))
	for name, state := range snap {
		field, known := c.form.FieldByName(name)
		if known && field.Identity && strings.TrimSpace(state.Value) == "" {
			continue
		}
		record[name] = encodeValue(c.form.KindOf(name), state)
	}
	return record
}

func encodeValue(kind model.FieldKind, state FieldState) any {
	switch kind {
	case model.FieldKindBoolean:
		return state.Checked
	case model.FieldKindNumber:
		trimmed := strings.TrimSpace(state.Value)
		if trimmed == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			// Malformed numerics travel as NaN rather than being rejected;
			// the record marshals them to null on the wire.
			return math.NaN()
		}
		return parsed
	case model.FieldKindDate:
		trimmed := strings.TrimSpace(state.Value)
		if trimmed == "" {
			return nil
		}
		day, err := time.ParseInLocation(inputDateLayout, trimmed, time.UTC)
		if err != nil {
			return nil
		}
		return day.Format(wireDateLayout)
	default:
		return state.Value
	}
}

// Decode converts a stored record back into a snapshot suitable for
// repopulating a form. Only record fields with a declared descriptor
// participate; fields absent from the record are absent from the snapshot so
// callers can leave untouched inputs alone.
func (c *Codec) Decode(record model.Record) Snapshot {
	snap := make(Snapshot, len(record))
	for name := range record {
		field, ok := c.form.FieldByName(name)
		if !ok {
			continue
		}
		snap[name] = decodeValue(field.Kind, record, name)
	}
	return snap
}

func decodeValue(kind model.FieldKind, record model.Record, name string) FieldState {
	switch kind {
	case model.FieldKindBoolean:
		return FieldState{Checked: record.Bool(name)}
	case model.FieldKindDate:
		// Take the calendar date straight off the ISO string; parsing and
		// reformatting would reintroduce the timezone shifts this avoids.
		raw := record.String(name)
		if len(raw) > 10 {
			raw = raw[:10]
		}
		return FieldState{Value: raw}
	default:
		return FieldState{Value: record.String(name)}
	}
}
