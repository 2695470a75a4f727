package client

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the file-based client settings. Environment variables override
// file values so deployments can reuse one config across hosts.
type Config struct {
	ServerURL string        `yaml:"server_url"`
	Timeout   time.Duration `yaml:"timeout"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		ServerURL: "http://localhost:3000",
		Timeout:   10 * time.Second,
	}
}

// LoadConfig reads a YAML config file, layering environment overrides on top
// of the defaults. A missing file is not an error; the defaults apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env overrides
		case err != nil:
			return Config{}, fmt.Errorf("client: read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("client: parse config %s: %w", path, err)
			}
		}
	}

	if url := os.Getenv("TICKETDESK_SERVER_URL"); url != "" {
		cfg.ServerURL = url
	}
	if raw := os.Getenv("TICKETDESK_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("client: parse TICKETDESK_TIMEOUT: %w", err)
		}
		cfg.Timeout = timeout
	}

	return cfg, nil
}

// NewFromConfig builds a Client from resolved configuration.
func NewFromConfig(cfg Config, options ...Option) (*Client, error) {
	if cfg.Timeout > 0 {
		options = append([]Option{WithTimeout(cfg.Timeout)}, options...)
	}
	return New(cfg.ServerURL, options...)
}
