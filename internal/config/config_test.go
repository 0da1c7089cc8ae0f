// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Backend.URL != "http://127.0.0.1:8000" {
		t.Errorf("URL = %q", cfg.Backend.URL)
	}
	if cfg.HealthInterval() != 10*time.Second {
		t.Errorf("HealthInterval = %v", cfg.HealthInterval())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend.URL != Default().Backend.URL {
		t.Errorf("URL = %q", cfg.Backend.URL)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[backend]
url = "http://192.168.1.10:8000"

[ui]
theme = "light"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend.URL != "http://192.168.1.10:8000" {
		t.Errorf("URL = %q", cfg.Backend.URL)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("Theme = %q", cfg.UI.Theme)
	}
	// Unspecified values fall back to defaults.
	if cfg.Backend.TimeoutSecs != 120 {
		t.Errorf("TimeoutSecs = %d", cfg.Backend.TimeoutSecs)
	}
	if cfg.Report.DefaultLayout != "standard" {
		t.Errorf("DefaultLayout = %q", cfg.Report.DefaultLayout)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("backend = [not toml"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromPath(path); err == nil {
		t.Error("invalid TOML should fail to load")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		wantOK bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"bad URL", func(c *Config) { c.Backend.URL = "not-a-url" }, false},
		{"ftp URL", func(c *Config) { c.Backend.URL = "ftp://host" }, false},
		{"zero timeout", func(c *Config) { c.Backend.TimeoutSecs = 0 }, false},
		{"bad layout", func(c *Config) { c.Report.DefaultLayout = "fancy" }, false},
		{"modern layout", func(c *Config) { c.Report.DefaultLayout = "modern" }, true},
		{"bad theme", func(c *Config) { c.UI.Theme = "solarized" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantOK && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.wantOK && err == nil {
				t.Error("expected validation failure")
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("NEWSDESK_BACKEND_URL", "http://10.0.0.2:8000")
	t.Setenv("NEWSDESK_DATA_DIR", "/tmp/newsdesk-test")

	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend.URL != "http://10.0.0.2:8000" {
		t.Errorf("URL = %q", cfg.Backend.URL)
	}
	dir, err := cfg.DataDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/tmp/newsdesk-test" {
		t.Errorf("DataDir = %q", dir)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Backend.URL = "http://127.0.0.1:9000"
	cfg.UI.ShowTimestamps = true
	if err := SaveToPath(cfg, path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Backend.URL != "http://127.0.0.1:9000" {
		t.Errorf("URL = %q", loaded.Backend.URL)
	}
	if !loaded.UI.ShowTimestamps {
		t.Error("ShowTimestamps not preserved")
	}
}

func TestWatcherDeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := SaveToPath(Default(), path); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	cfg := Default()
	cfg.UI.Theme = "light"
	if err := SaveToPath(cfg, path); err != nil {
		t.Fatal(err)
	}

	select {
	case updated := <-w.Updates():
		if updated.UI.Theme != "light" {
			t.Errorf("Theme = %q, want light", updated.UI.Theme)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered")
	}
}
