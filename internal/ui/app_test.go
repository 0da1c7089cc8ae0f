// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/newsdesk-tui/internal/api"
	"github.com/jeranaias/newsdesk-tui/internal/config"
	"github.com/jeranaias/newsdesk-tui/internal/model"
	"github.com/jeranaias/newsdesk-tui/internal/report"
	"github.com/jeranaias/newsdesk-tui/internal/router"
	"github.com/jeranaias/newsdesk-tui/internal/storage"
	"github.com/jeranaias/newsdesk-tui/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	kv, err := storage.NewKVStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewKVStoreWithDir: %v", err)
	}

	client := api.NewClient()
	sessions := store.NewSessionStore(kv)
	links := store.NewLinkHistory(nil)
	agg := report.NewAggregator(client)

	return New(config.Default(), client, sessions, links, agg)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDigitKeysNavigate(t *testing.T) {
	app := newTestApp(t)

	app.Update(key("3"))
	if got := app.rt.Current(); got != router.ViewReport {
		t.Fatalf("current view = %v, want report", got)
	}

	app.Update(key("h"))
	if got := app.rt.Current(); got != router.ViewHome {
		t.Fatalf("current view = %v, want home", got)
	}
}

func TestHomeCursorOpensSelection(t *testing.T) {
	app := newTestApp(t)

	// Second entry is the chat view.
	app.Update(key("j"))
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if got := app.rt.Current(); got != router.ViewChat {
		t.Fatalf("current view = %v, want chat", got)
	}
}

func TestDigitsReachFocusedInput(t *testing.T) {
	app := newTestApp(t)

	// The chat input has focus, so a digit is text, not navigation.
	app.Update(key("2"))
	app.Update(key("1"))

	if got := app.rt.Current(); got != router.ViewChat {
		t.Fatalf("current view = %v, want chat", got)
	}
	if got := app.chat.input.Value(); got != "1" {
		t.Fatalf("chat input = %q, want %q", got, "1")
	}
}

func TestNewsLoadGatedOnEmptyCache(t *testing.T) {
	app := newTestApp(t)

	if cmd := app.navigate(router.ViewNews); cmd == nil {
		t.Fatal("entry with an empty template cache should issue the load")
	}
	// A load is already in flight; re-entry must not duplicate it.
	app.navigate(router.ViewHome)
	if cmd := app.navigate(router.ViewNews); cmd != nil {
		t.Fatal("re-entry while the load is in flight should not issue another")
	}
}

func TestNewsReloadsAfterStaleFirstLoad(t *testing.T) {
	app := newTestApp(t)

	app.navigate(router.ViewNews)
	stale := app.rt.Issue()

	// Leaving the view stales the in-flight load; its result is discarded.
	app.navigate(router.ViewHome)
	app.Update(templatesLoadedMsg{Token: stale, Templates: []model.Template{{ID: "t1", Name: "Ekonomi"}}})

	if cmd := app.navigate(router.ViewNews); cmd == nil {
		t.Fatal("re-entry with an empty template cache should reload")
	}
}

func TestNewsReloadsAfterFailedFirstLoad(t *testing.T) {
	app := newTestApp(t)

	app.navigate(router.ViewNews)
	tok := app.rt.Issue()
	app.Update(templatesLoadedMsg{Token: tok, Err: api.NewNetworkError("connection refused", nil)})

	app.navigate(router.ViewHome)
	if cmd := app.navigate(router.ViewNews); cmd == nil {
		t.Fatal("re-entry after a failed load should retry")
	}
}

func TestTemplateReloadKey(t *testing.T) {
	app := newTestApp(t)

	app.navigate(router.ViewNews)
	tok := app.rt.Issue()
	app.Update(templatesLoadedMsg{Token: tok, Templates: []model.Template{{ID: "t1", Name: "Ekonomi"}}})

	_, cmd := app.Update(key("r"))
	if cmd == nil {
		t.Fatal("r should fetch a fresh template list")
	}
}

func TestEscReleasesChatInputForNavigation(t *testing.T) {
	app := newTestApp(t)

	app.Update(key("2"))
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app.Update(key("h"))

	if got := app.rt.Current(); got != router.ViewHome {
		t.Fatalf("current view = %v, want home", got)
	}
}

func TestEscReleasesLinkInputForNavigation(t *testing.T) {
	app := newTestApp(t)

	app.Update(key("4"))
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app.Update(key("1"))

	if got := app.rt.Current(); got != router.ViewNews {
		t.Fatalf("current view = %v, want news", got)
	}
}

func TestExportCompletionReachesOriginView(t *testing.T) {
	app := newTestApp(t)

	app.Update(key("4"))
	app.links.pending = true

	// Navigate away while the export is in flight.
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app.Update(key("3"))

	app.Update(fileSavedMsg{View: router.ViewLinks, Path: "baglanti.xlsx"})

	if app.links.pending {
		t.Fatal("links export completion must clear the links view")
	}
	if app.links.notice == "" {
		t.Fatal("links view should show where the export was saved")
	}
	if app.report.notice != "" {
		t.Fatal("report view must not receive a links completion")
	}
}

func TestRemoveKeyWithEmptyFileSetIsIgnored(t *testing.T) {
	app := newTestApp(t)

	app.Update(key("3"))
	app.Update(key("r"))

	if app.report.errText != "" {
		t.Fatalf("empty-set remove surfaced %q", app.report.errText)
	}
}

func TestHealthResultUpdatesStatus(t *testing.T) {
	app := newTestApp(t)

	app.Update(healthResultMsg{State: api.HealthConnected})
	if app.health != api.HealthConnected {
		t.Fatalf("health = %v, want connected", app.health)
	}
}
