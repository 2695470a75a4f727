package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Record is one typed entity exchanged with the backing store. It keeps the
// wire shape (JSON object) directly so a record round-trips without a mapping
// layer; the accessors fold the null/absent/zero cases the renderer and
// controller care about. Records are disposable: each fetch cycle produces
// fresh instances and nothing holds one across two fetches.
type Record map[string]any

// ID returns the persisted-row identifier as a string, or "" for drafts. The
// store may hand back numeric ids; both shapes are accepted.
func (r Record) ID() string {
	return r.String("id")
}

// Has reports whether the field is present with a non-nil value.
func (r Record) Has(name string) bool {
	value, ok := r[name]
	return ok && value != nil
}

// String returns the field rendered as a string, or "" when nil/absent.
// Numbers are formatted without exponent or trailing zeros.
func (r Record) String(name string) string {
	value, ok := r[name]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return formatNumber(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// Number returns the field as a float64. The second result is false when the
// field is nil, absent, or not numeric.
func (r Record) Number(name string) (float64, bool) {
	value, ok := r[name]
	if !ok || value == nil {
		return 0, false
	}
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// Bool returns the field as a boolean, false when nil/absent/non-boolean.
func (r Record) Bool(name string) bool {
	value, ok := r[name].(bool)
	return ok && value
}

// Time parses the field as an ISO-8601 datetime in UTC. The second result is
// false when the field is nil, absent, or unparseable.
func (r Record) Time(name string) (time.Time, bool) {
	raw := strings.TrimSpace(r.String(name))
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// Clone returns a shallow copy. Record values are JSON primitives so a
// shallow copy is sufficient.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for key, value := range r {
		out[key] = value
	}
	return out
}

// MarshalJSON serialises the record with non-finite numbers folded to null,
// matching what the store accepts on the wire.
func (r Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r))
	for key, value := range r {
		if f, ok := value.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			out[key] = nil
			continue
		}
		out[key] = value
	}
	return json.Marshal(out)
}

func formatNumber(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
