package client

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigLayersFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.yaml")
	content := "server_url: http://tickets.internal:8080\ntimeout: 5s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ServerURL != "http://tickets.internal:8080" {
		t.Fatalf("unexpected server url %q", cfg.ServerURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.Timeout)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.yaml")
	if err := os.WriteFile(path, []byte("server_url: http://from-file\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("TICKETDESK_SERVER_URL", "http://from-env")
	t.Setenv("TICKETDESK_TIMEOUT", "30s")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ServerURL != "http://from-env" {
		t.Fatalf("env override ignored, got %q", cfg.ServerURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("env timeout ignored, got %v", cfg.Timeout)
	}
}

func TestLoadConfigRejectsBadTimeout(t *testing.T) {
	t.Setenv("TICKETDESK_TIMEOUT", "soon")
	if _, err := LoadConfig(""); err == nil {
		t.Fatal("expected parse error for bad timeout")
	}
}
