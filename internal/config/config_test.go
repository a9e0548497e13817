// Package config tests for YAML loading and defaults.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoad_missingFile verifies a missing config yields the defaults.
func TestLoad_missingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ListenAddr != "localhost:8090" {
		t.Errorf("ListenAddr = %q, want localhost:8090", cfg.ListenAddr)
	}
	if cfg.Storage != "sqlite" {
		t.Errorf("Storage = %q, want sqlite", cfg.Storage)
	}
	if cfg.Sync.Interval != 5 {
		t.Errorf("Sync.Interval = %d, want 5", cfg.Sync.Interval)
	}
}

// TestLoad_overridesDefaults verifies file values win over defaults.
func TestLoad_overridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
listen_addr: "127.0.0.1:9000"
storage: file
sync:
  enable: true
  endpoint: "https://sync.example.com"
  interval_minutes: 15
improve:
  provider: ollama
  endpoint: "http://localhost:11434"
  model: llama3
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ListenAddr != "127.0.0.1:9000" {
		t.Errorf("ListenAddr = %q, want override", cfg.ListenAddr)
	}
	if cfg.Storage != "file" {
		t.Errorf("Storage = %q, want file", cfg.Storage)
	}
	if !cfg.Sync.Enable || cfg.Sync.Endpoint != "https://sync.example.com" || cfg.Sync.Interval != 15 {
		t.Errorf("Sync = %+v, want overrides applied", cfg.Sync)
	}
	if cfg.Improve.Provider != "ollama" || cfg.Improve.Model != "llama3" {
		t.Errorf("Improve = %+v, want overrides applied", cfg.Improve)
	}
}

// TestLoad_unknownStorage verifies an invalid backend is rejected.
func TestLoad_unknownStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("storage: cassandra\n"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for unknown storage, got nil")
	}
}

// TestLoad_invalidYAML verifies a parse failure is surfaced.
func TestLoad_invalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\t:::not yaml"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

// TestLoad_nonPositiveIntervalDefaults verifies interval sanitization.
func TestLoad_nonPositiveIntervalDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("sync:\n  interval_minutes: -3\n"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Sync.Interval != 5 {
		t.Errorf("Sync.Interval = %d, want default 5", cfg.Sync.Interval)
	}
}
