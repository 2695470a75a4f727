// Package client talks to the concert-ticket store over its JSON REST
// surface: GET/POST /data plus PUT/DELETE /data/{id}. Every failure mode
// (transport, application, unparsable body) collapses into a single error
// value so callers report one message and move on.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goliatone/go-ticketdesk/pkg/model"
)

const collectionPath = "/data"

// Client is the remote CRUD client. Construct it with New; the zero value is
// not usable.
type Client struct {
	base string
	http *http.Client
}

// New returns a Client for the store at baseURL.
func New(baseURL string, options ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("client: base URL is required")
	}
	if _, err := url.ParseRequestURI(trimmed); err != nil {
		return nil, fmt.Errorf("client: invalid base URL %q: %w", baseURL, err)
	}

	cfg := newConfig(options...)
	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.timeout}
	} else if cfg.timeout > 0 && httpClient.Timeout == 0 {
		clone := *httpClient
		clone.Timeout = cfg.timeout
		httpClient = &clone
	}

	return &Client{base: trimmed, http: httpClient}, nil
}

// Create persists a new record and returns the stored copy, id included. Any
// id present in the draft is stripped so the store always assigns it.
func (c *Client) Create(ctx context.Context, record model.Record) (model.Record, error) {
	draft := record.Clone()
	delete(draft, "id")
	return c.send(ctx, http.MethodPost, c.base+collectionPath, draft)
}

// Update replaces the record identified by its id and returns the stored
// copy. Calling Update with an id-less record is a programming error; the
// store rejects it.
func (c *Client) Update(ctx context.Context, record model.Record) (model.Record, error) {
	return c.send(ctx, http.MethodPut, c.itemURL(record.ID()), record)
}

// Remove deletes the record with the given id and returns the deleted copy.
func (c *Client) Remove(ctx context.Context, id string) (model.Record, error) {
	return c.send(ctx, http.MethodDelete, c.itemURL(id), nil)
}

// List fetches every stored record in store order.
func (c *Client) List(ctx context.Context) ([]model.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+collectionPath, nil)
	if err != nil {
		return nil, fmt.Errorf("client: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: list: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, failureFromResponse(resp)
	}

	var records []model.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("client: decode list response: %w", err)
	}
	return records, nil
}

func (c *Client) itemURL(id string) string {
	return c.base + collectionPath + "/" + url.PathEscape(id)
}

// send issues a mutating request and decodes the stored record from the
// response. Requests with a body carry Accept and Content-Type headers.
func (c *Client) send(ctx context.Context, method, endpoint string, payload model.Record) (model.Record, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("client: encode payload: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("client: build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: %s %s: %w", strings.ToLower(method), endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, failureFromResponse(resp)
	}

	var record model.Record
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("client: decode response: %w", err)
	}
	return record, nil
}
