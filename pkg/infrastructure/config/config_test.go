package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Database.Path != "mfgerp.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q", cfg.Output.Format)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "database:\n  path: /tmp/erp.db\nlogging:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if cfg.Database.Path != "/tmp/erp.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	// Unset sections keep defaults.
	if cfg.Tenant.Default != "default" {
		t.Errorf("Tenant.Default = %q", cfg.Tenant.Default)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		t.Fatalf("SlogLevel() error = %v", err)
	}
	if level != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, want debug", level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty database path", func(c *Config) { c.Database.Path = "" }},
		{"empty tenant", func(c *Config) { c.Tenant.Default = "" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "chatty" }},
		{"bad output format", func(c *Config) { c.Output.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() error = nil, want error")
			}
		})
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFromFile() error = nil for missing file, want error")
	}
}
