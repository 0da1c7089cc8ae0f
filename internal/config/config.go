// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for the
// newsdesk TUI.
//
// Configuration file location (in order of precedence):
//   - ~/.newsdesk/config.toml
//   - Built-in defaults
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/newsdesk-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete newsdesk configuration.
type Config struct {
	// Backend configuration
	Backend BackendConfig `toml:"backend"`

	// Storage configuration
	Storage StorageConfig `toml:"storage"`

	// Report configuration
	Report ReportConfig `toml:"report"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// BackendConfig contains the backend connection settings.
type BackendConfig struct {
	// URL is the backend base URL
	URL string `toml:"url"`
	// TimeoutSecs is the exchange timeout in seconds (classification waits
	// on model inference, so this runs long)
	TimeoutSecs int `toml:"timeout_secs"`
	// HealthIntervalSecs is how often the status indicator probes /health
	HealthIntervalSecs int `toml:"health_interval_secs"`
}

// StorageConfig contains local persistence settings.
type StorageConfig struct {
	// DataDir is the directory for session and link-archive data
	// (empty = default ~/.newsdesk/data)
	DataDir string `toml:"data_dir"`
}

// ReportConfig contains report generation settings.
type ReportConfig struct {
	// DefaultLayout is the initial export layout: "standard" or "modern"
	DefaultLayout string `toml:"default_layout"`
}

// UIConfig contains UI behavior settings.
type UIConfig struct {
	// Theme is the color theme: "dark" or "light"
	Theme string `toml:"theme"`
	// ShowTimestamps displays message timestamps in the chat view
	ShowTimestamps bool `toml:"show_timestamps"`
	// MarkdownRendering renders assistant messages as markdown
	MarkdownRendering bool `toml:"markdown_rendering"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			URL:                "http://127.0.0.1:8000",
			TimeoutSecs:        120,
			HealthIntervalSecs: 10,
		},
		Storage: StorageConfig{
			DataDir: "",
		},
		Report: ReportConfig{
			DefaultLayout: "standard",
		},
		UI: UIConfig{
			Theme:             "dark",
			ShowTimestamps:    false,
			MarkdownRendering: true,
		},
	}
}

// HealthInterval returns the probe interval as a duration.
func (c *Config) HealthInterval() time.Duration {
	return time.Duration(c.Backend.HealthIntervalSecs) * time.Second
}

// Timeout returns the exchange timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSecs) * time.Second
}

// DataDir resolves the data directory, falling back to the default under
// the user's home.
func (c *Config) DataDir() (string, error) {
	if c.Storage.DataDir != "" {
		return c.Storage.DataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".newsdesk", "data"), nil
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the newsdesk configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".newsdesk"), nil
}

// ConfigPath returns the TOML config file path.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir creates the configuration directory if needed.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from the default path, applies defaults for
// missing values, environment overrides, and validates. A missing file is
// not an error: defaults are used.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the configuration from a specific file.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg.SetDefaults()
	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetDefaults fills zero values with defaults.
func (c *Config) SetDefaults() {
	def := Default()

	if c.Backend.URL == "" {
		c.Backend.URL = def.Backend.URL
	}
	if c.Backend.TimeoutSecs == 0 {
		c.Backend.TimeoutSecs = def.Backend.TimeoutSecs
	}
	if c.Backend.HealthIntervalSecs == 0 {
		c.Backend.HealthIntervalSecs = def.Backend.HealthIntervalSecs
	}
	if c.Report.DefaultLayout == "" {
		c.Report.DefaultLayout = def.Report.DefaultLayout
	}
	if c.UI.Theme == "" {
		c.UI.Theme = def.UI.Theme
	}
}

// ApplyEnvOverrides applies environment variable overrides.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("NEWSDESK_BACKEND_URL"); v != "" {
		c.Backend.URL = v
	}
	if v := os.Getenv("NEWSDESK_DATA_DIR"); v != "" {
		c.Storage.DataDir = v
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	parsed, err := url.Parse(c.Backend.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("backend.url is not a valid http(s) URL: %q", c.Backend.URL)
	}

	if c.Backend.TimeoutSecs < 1 {
		return fmt.Errorf("backend.timeout_secs must be positive, got %d", c.Backend.TimeoutSecs)
	}
	if c.Backend.HealthIntervalSecs < 1 {
		return fmt.Errorf("backend.health_interval_secs must be positive, got %d", c.Backend.HealthIntervalSecs)
	}

	switch c.Report.DefaultLayout {
	case "standard", "modern":
	default:
		return fmt.Errorf("report.default_layout must be \"standard\" or \"modern\", got %q", c.Report.DefaultLayout)
	}

	switch strings.ToLower(c.UI.Theme) {
	case "dark", "light":
	default:
		return fmt.Errorf("ui.theme must be \"dark\" or \"light\", got %q", c.UI.Theme)
	}

	return nil
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration to the default path atomically.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveToPath(cfg, path)
}

// SaveToPath writes the configuration to a specific file atomically.
func SaveToPath(cfg *Config, path string) error {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFile(path, []byte(sb.String()), 0600)
}
