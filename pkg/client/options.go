package client

import (
	"net/http"
	"time"
)

type config struct {
	httpClient *http.Client
	timeout    time.Duration
}

// Option configures a Client during construction.
type Option func(*config)

// WithHTTPClient injects a custom HTTP client (proxies, instrumented
// transports, test doubles).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = httpClient
	}
}

// WithTimeout caps the duration of each request. Ignored when the injected
// HTTP client already carries its own timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *config) {
		cfg.timeout = timeout
	}
}

func newConfig(options ...Option) config {
	cfg := config{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
