// Package config provides configuration loading for the mfgerp CLI.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete CLI configuration
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Tenant   TenantConfig   `yaml:"tenant"`
	Logging  LoggingConfig  `yaml:"logging"`
	Output   OutputConfig   `yaml:"output"`
}

// DatabaseConfig configures the SQLite store
type DatabaseConfig struct {
	// Path is the SQLite database file path
	Path string `yaml:"path"`
}

// TenantConfig configures the default tenant scope
type TenantConfig struct {
	// Default is the tenant used when --tenant is not given
	Default string `yaml:"default"`
}

// LoggingConfig configures structured logging
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
}

// OutputConfig configures report rendering
type OutputConfig struct {
	// Format is the default report format, text or json
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{Path: "mfgerp.db"},
		Tenant:   TenantConfig{Default: "default"},
		Logging:  LoggingConfig{Level: "info"},
		Output:   OutputConfig{Format: "text"},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Tenant.Default == "" {
		return fmt.Errorf("tenant.default is required")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format must be text or json, got %q", c.Output.Format)
	}
	return nil
}

// SlogLevel maps the configured logging level onto slog
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
}

// LoadFromFile loads configuration from a YAML file on top of defaults
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}
