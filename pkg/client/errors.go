package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError is an application-level failure reported by the store. Message
// carries the store's own wording when the body was a JSON {"error": ...}
// object, or the HTTP status text when the body could not be parsed.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("client: server rejected request (%d): %s", e.StatusCode, e.Message)
}

// failureFromResponse collapses a non-2xx response into an *APIError.
func failureFromResponse(resp *http.Response) error {
	message := http.StatusText(resp.StatusCode)

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(body) > 0 {
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
			message = payload.Error
		}
	}

	return &APIError{StatusCode: resp.StatusCode, Message: message}
}
