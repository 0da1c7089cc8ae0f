// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/newsdesk-tui/internal/api"
)

func TestStatusBarWidths(t *testing.T) {
	for _, width := range []int{40, 60, 100} {
		bar := StatusBar{
			Width:    width,
			View:     "chat",
			Health:   api.HealthConnected,
			Sessions: 3,
		}
		line := bar.Render()
		if got := lipgloss.Width(line); got != width {
			t.Errorf("width %d: rendered width = %d", width, got)
		}
		if !strings.Contains(line, "chat") {
			t.Errorf("width %d: view name missing", width)
		}
	}
}

func TestStatusBarHealthLabel(t *testing.T) {
	bar := StatusBar{Width: 100, View: "home", Health: api.HealthDegraded}
	if !strings.Contains(bar.Render(), "degraded") {
		t.Error("wide bar should spell out the health state")
	}

	narrow := StatusBar{Width: 40, View: "home", Health: api.HealthDegraded}
	if strings.Contains(narrow.Render(), "degraded") {
		t.Error("narrow bar should show only the indicator")
	}
}

func TestStatusBarZeroWidth(t *testing.T) {
	bar := StatusBar{View: "home"}
	if bar.Render() != "" {
		t.Error("zero width should render nothing")
	}
}

func TestToastLifecycle(t *testing.T) {
	var toast Toast
	if toast.Visible() {
		t.Fatal("new toast should be hidden")
	}

	cmd := toast.Show("bağlantı hatası", ToastError)
	if cmd == nil {
		t.Fatal("Show must return an expiry command")
	}
	if !toast.Visible() {
		t.Fatal("toast should be visible after Show")
	}
	if !strings.Contains(toast.Render(), "bağlantı hatası") {
		t.Error("toast text missing from render")
	}

	// A stale expiry for a replaced toast is ignored.
	toast.Show("yeni bildirim", ToastInfo)
	toast.Expire(ToastExpiredMsg{ID: 1})
	if !toast.Visible() {
		t.Error("stale expiry must not hide the current toast")
	}

	toast.Expire(ToastExpiredMsg{ID: 2})
	if toast.Visible() {
		t.Error("matching expiry should hide the toast")
	}
	if toast.Render() != "" {
		t.Error("hidden toast should render nothing")
	}
}
