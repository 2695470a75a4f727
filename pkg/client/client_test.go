package client

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ticketdesk/pkg/model"
)

type capturedRequest struct {
	method      string
	path        string
	contentType string
	accept      string
	body        map[string]any
}

func newCaptureServer(t *testing.T, status int, response string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.contentType = r.Header.Get("Content-Type")
		captured.accept = r.Header.Get("Accept")
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&captured.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func TestCreateStripsIdentityAndSendsJSON(t *testing.T) {
	server, captured := newCaptureServer(t, http.StatusOK, `{"id":"abc","concertName":"Tour X"}`)

	c, err := New(server.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	stored, err := c.Create(context.Background(), model.Record{
		"id":          "stale-draft-id",
		"concertName": "Tour X",
		"concertDate": "2025-01-01T00:00:00.000Z",
		"price":       nil,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if captured.method != http.MethodPost || captured.path != "/data" {
		t.Fatalf("expected POST /data, got %s %s", captured.method, captured.path)
	}
	if captured.contentType != "application/json" || captured.accept != "application/json" {
		t.Fatalf("missing JSON headers: content-type=%q accept=%q", captured.contentType, captured.accept)
	}

	wantBody := map[string]any{
		"concertName": "Tour X",
		"concertDate": "2025-01-01T00:00:00.000Z",
		"price":       nil,
	}
	if diff := cmp.Diff(wantBody, captured.body); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}

	if stored.ID() != "abc" {
		t.Fatalf("expected stored id abc, got %q", stored.ID())
	}
}

func TestCreateMarshalsNaNPriceAsNull(t *testing.T) {
	server, captured := newCaptureServer(t, http.StatusOK, `{"id":"abc"}`)

	c, err := New(server.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Create(context.Background(), model.Record{"price": math.NaN()}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if value, ok := captured.body["price"]; !ok || value != nil {
		t.Fatalf("expected null price on the wire, got %#v", value)
	}
}

func TestUpdateTargetsItemPath(t *testing.T) {
	server, captured := newCaptureServer(t, http.StatusOK, `{"id":"42","concertName":"Tour X"}`)

	c, err := New(server.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Update(context.Background(), model.Record{"id": "42", "concertName": "Tour X"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if captured.method != http.MethodPut || captured.path != "/data/42" {
		t.Fatalf("expected PUT /data/42, got %s %s", captured.method, captured.path)
	}
	if captured.body["id"] != "42" {
		t.Fatalf("update payload must keep the id, got %#v", captured.body)
	}
}

func TestRemoveSendsBodylessDelete(t *testing.T) {
	server, captured := newCaptureServer(t, http.StatusOK, `{"id":"42"}`)

	c, err := New(server.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	deleted, err := c.Remove(context.Background(), "42")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}

	if captured.method != http.MethodDelete || captured.path != "/data/42" {
		t.Fatalf("expected DELETE /data/42, got %s %s", captured.method, captured.path)
	}
	if captured.contentType != "" {
		t.Fatalf("delete must not claim a body, got content-type %q", captured.contentType)
	}
	if deleted.ID() != "42" {
		t.Fatalf("expected deleted record back, got %#v", deleted)
	}
}

func TestListPreservesStoreOrder(t *testing.T) {
	server, _ := newCaptureServer(t, http.StatusOK, `[{"id":"1","concertName":"A"},{"id":"2","concertName":"B"}]`)

	c, err := New(server.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	records, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []model.Record{
		{"id": "1", "concertName": "A"},
		{"id": "2", "concertName": "B"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestFailureSurfacesServerMessage(t *testing.T) {
	server, _ := newCaptureServer(t, http.StatusBadRequest, `{"error":"Venue is required"}`)

	c, err := New(server.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.Create(context.Background(), model.Record{"concertName": "Tour X"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "Venue is required" || apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected failure: %+v", apiErr)
	}
}

func TestFailureFallsBackToStatusText(t *testing.T) {
	server, _ := newCaptureServer(t, http.StatusInternalServerError, `<html>oops</html>`)

	c, err := New(server.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.List(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("expected status-text fallback, got %q", apiErr.Message)
	}
}

func TestTransportFailureIsNotAnAPIError(t *testing.T) {
	server, _ := newCaptureServer(t, http.StatusOK, `[]`)
	url := server.URL
	server.Close()

	c, err := New(url)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.List(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failures must not masquerade as server rejections: %v", err)
	}
}

func TestNewRejectsBadBaseURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "not a url"} {
		if _, err := New(raw); err == nil {
			t.Fatalf("expected error for base URL %q", raw)
		}
	}
}
