package codec

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ticketdesk/pkg/model"
)

func ticketForm() model.FormModel {
	return model.FormModel{
		OperationID: "createTicket",
		Endpoint:    "/data",
		Method:      "POST",
		Fields: []model.Field{
			{Name: "id", Kind: model.FieldKindString, Identity: true},
			{Name: "concertName", Kind: model.FieldKindString},
			{Name: "artist", Kind: model.FieldKindString},
			{Name: "concertDate", Kind: model.FieldKindDate},
			{Name: "price", Kind: model.FieldKindNumber},
			{Name: "notes", Kind: model.FieldKindString},
		},
	}
}

func TestEncodeCoercesByKind(t *testing.T) {
	c := New(ticketForm())

	got := c.Encode(Snapshot{
		"concertName": {Value: "Tour X"},
		"artist":      {Value: ""},
		"concertDate": {Value: "2025-01-01"},
		"price":       {Value: ""},
		"notes":       {Value: "row G"},
	})

	want := model.Record{
		"concertName": "Tour X",
		"artist":      "",
		"concertDate": "2025-01-01T00:00:00.000Z",
		"price":       nil,
		"notes":       "row G",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("encoded record mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeNumbers(t *testing.T) {
	c := New(ticketForm())

	cases := []struct {
		name string
		raw  string
		want any
	}{
		{"parses decimals", "42.5", 42.5},
		{"parses integers", "120", 120.0},
		{"trims whitespace", "  19.99  ", 19.99},
		{"empty becomes null", "", nil},
		{"blank becomes null", "   ", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Encode(Snapshot{"price": {Value: tc.raw}})
			if diff := cmp.Diff(tc.want, got["price"]); diff != "" {
				t.Fatalf("price mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeMalformedNumberPassesThroughAsNaN(t *testing.T) {
	c := New(ticketForm())

	got := c.Encode(Snapshot{"price": {Value: "cheap"}})

	value, ok := got["price"].(float64)
	if !ok || !math.IsNaN(value) {
		t.Fatalf("expected NaN price, got %#v", got["price"])
	}
}

func TestEncodeDateIsTimezoneIndependent(t *testing.T) {
	restore := time.Local
	defer func() { time.Local = restore }()

	for _, zone := range []string{"Pacific/Auckland", "America/Los_Angeles"} {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			t.Fatalf("load location %s: %v", zone, err)
		}
		time.Local = loc

		got := New(ticketForm()).Encode(Snapshot{"concertDate": {Value: "2025-06-15"}})
		if got["concertDate"] != "2025-06-15T00:00:00.000Z" {
			t.Fatalf("zone %s: got %v", zone, got["concertDate"])
		}
	}
}

func TestEncodeMalformedDateBecomesNull(t *testing.T) {
	c := New(ticketForm())

	got := c.Encode(Snapshot{"concertDate": {Value: "next friday"}})

	if value, ok := got["concertDate"]; !ok || value != nil {
		t.Fatalf("expected null concertDate, got %#v", value)
	}
}

func TestEncodeOmitsEmptyIdentity(t *testing.T) {
	c := New(ticketForm())

	got := c.Encode(Snapshot{
		"id":          {Value: ""},
		"concertName": {Value: "Tour X"},
	})
	if _, present := got["id"]; present {
		t.Fatalf("empty id must be omitted, got %#v", got)
	}

	got = c.Encode(Snapshot{"id": {Value: "abc123"}})
	if got["id"] != "abc123" {
		t.Fatalf("non-empty id must survive, got %#v", got["id"])
	}
}

func TestEncodeUnknownFieldsCoerceAsStrings(t *testing.T) {
	c := New(ticketForm())

	got := c.Encode(Snapshot{"surprise": {Value: "kept"}})
	if got["surprise"] != "kept" {
		t.Fatalf("unknown field should pass through as string, got %#v", got["surprise"])
	}
}

func TestDecodePopulatesSnapshot(t *testing.T) {
	c := New(ticketForm())

	got := c.Decode(model.Record{
		"id":          "42",
		"concertName": "Tour X",
		"concertDate": "2025-03-10T00:00:00.000Z",
		"price":       19.5,
		"notes":       nil,
	})

	want := Snapshot{
		"id":          {Value: "42"},
		"concertName": {Value: "Tour X"},
		"concertDate": {Value: "2025-03-10"},
		"price":       {Value: "19.5"},
		"notes":       {Value: ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeSkipsFieldsWithoutDescriptor(t *testing.T) {
	c := New(ticketForm())

	got := c.Decode(model.Record{"serverOnly": "x", "concertName": "Tour X"})

	if _, present := got["serverOnly"]; present {
		t.Fatalf("fields without a descriptor must not appear, got %#v", got)
	}
	if got["concertName"].Value != "Tour X" {
		t.Fatalf("declared field missing, got %#v", got)
	}
}

func TestDecodeLeavesAbsentFieldsAbsent(t *testing.T) {
	c := New(ticketForm())

	got := c.Decode(model.Record{"concertName": "Tour X"})

	if _, present := got["notes"]; present {
		t.Fatalf("absent record fields must stay absent from the snapshot")
	}
}

func TestBooleanRoundTrip(t *testing.T) {
	form := model.FormModel{
		Fields: []model.Field{{Name: "reminder", Kind: model.FieldKindBoolean}},
	}
	c := New(form)

	for _, checked := range []bool{true, false} {
		encoded := c.Encode(Snapshot{"reminder": {Value: "ignored", Checked: checked}})
		if encoded["reminder"] != checked {
			t.Fatalf("encode checked=%v: got %#v", checked, encoded["reminder"])
		}
		decoded := c.Decode(encoded)
		if decoded["reminder"].Checked != checked {
			t.Fatalf("round trip checked=%v: got %#v", checked, decoded["reminder"])
		}
	}
}

func TestDecodeNumberFormatting(t *testing.T) {
	c := New(ticketForm())

	cases := []struct {
		value float64
		want  string
	}{
		{19.5, "19.5"},
		{120, "120"},
		{0.001, "0.001"},
	}
	for _, tc := range cases {
		got := c.Decode(model.Record{"price": tc.value})
		if got["price"].Value != tc.want {
			t.Fatalf("price %v: want %q, got %q", tc.value, tc.want, got["price"].Value)
		}
	}
}
