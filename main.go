// newsdesk TUI - a terminal panel for the local news classification backend.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/newsdesk-tui/internal/api"
	"github.com/jeranaias/newsdesk-tui/internal/config"
	"github.com/jeranaias/newsdesk-tui/internal/report"
	"github.com/jeranaias/newsdesk-tui/internal/storage"
	"github.com/jeranaias/newsdesk-tui/internal/store"
	"github.com/jeranaias/newsdesk-tui/internal/ui"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	configPath := flag.String("config", "", "config file path (default: ~/.newsdesk/config.toml)")
	backendURL := flag.String("backend", "", "backend base URL override")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("newsdesk %s (%s, %s)\n", Version, GitCommit, BuildDate)
		return
	}

	if err := run(*configPath, *backendURL); err != nil {
		fmt.Fprintln(os.Stderr, "newsdesk:", err)
		os.Exit(1)
	}
}

func run(configPath, backendURL string) error {
	if configPath == "" {
		var err error
		configPath, err = config.ConfigPath()
		if err != nil {
			return err
		}
	}

	cfg, err := config.LoadFromPath(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if backendURL != "" {
		cfg.Backend.URL = backendURL
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	client := api.NewClientWithConfig(&api.ClientConfig{
		BaseURL: cfg.Backend.URL,
		Timeout: cfg.Timeout(),
	})

	dataDir, err := cfg.DataDir()
	if err != nil {
		return err
	}

	kv, err := storage.NewKVStoreWithDir(dataDir)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	sessions := store.NewSessionStore(kv)
	if err := sessions.Load(); err != nil {
		return fmt.Errorf("load sessions: %w", err)
	}

	archive, err := storage.OpenLinkArchive(filepath.Join(dataDir, "links.db"))
	if err != nil {
		return fmt.Errorf("open link archive: %w", err)
	}
	defer archive.Close()

	links := store.NewLinkHistory(archive)
	if err := links.Load(); err != nil {
		return fmt.Errorf("load link history: %w", err)
	}

	agg := report.NewAggregator(client)
	agg.SetLayout(report.Layout(cfg.Report.DefaultLayout))

	// Pin the color profile once so styles render the same across the
	// whole program instead of re-probing the terminal per style.
	lipgloss.SetColorProfile(termenv.ColorProfile())

	app := ui.New(cfg, client, sessions, links, agg)
	program := tea.NewProgram(app, tea.WithAltScreen())

	// Config edits take effect without a restart. A watcher failure is not
	// fatal; the TUI just runs with the startup config.
	if watcher, err := config.Watch(configPath); err == nil {
		defer watcher.Close()
		go func() {
			for updated := range watcher.Updates() {
				program.Send(ui.ConfigReloaded(updated))
			}
		}()
	}

	_, err = program.Run()
	return err
}
