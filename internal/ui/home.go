// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/newsdesk-tui/internal/router"
	"github.com/jeranaias/newsdesk-tui/internal/ui/styles"
)

// =============================================================================
// HOME VIEW
// =============================================================================

// homeEntry is one row of the home menu.
type homeEntry struct {
	key   string
	view  router.View
	title string
	desc  string
}

var homeEntries = []homeEntry{
	{"1", router.ViewNews, "Haber Sınıflandırma", "şablonla haber metni sınıflandır"},
	{"2", router.ViewChat, "Sohbet", "modelle serbest sohbet"},
	{"3", router.ViewReport, "Rapor", "tablo yükle, önizle, dışa aktar"},
	{"4", router.ViewLinks, "Bağlantı Analizi", "URL analiz et ve arşivle"},
	{"5", router.ViewSettings, "Ayarlar", "KV önbellek ve model ayarları"},
}

// homeModel renders the landing menu. Navigation itself happens in the
// root model; the menu only shows what is available.
type homeModel struct {
	cursor int
}

func (m *homeModel) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(homeEntries) {
		m.cursor = len(homeEntries) - 1
	}
}

// selected returns the view under the cursor.
func (m *homeModel) selected() router.View {
	return homeEntries[m.cursor].view
}

func (m *homeModel) view(width int) string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("newsdesk") + "\n")
	sb.WriteString(styles.Muted.Render("yerel haber sınıflandırma paneli") + "\n\n")

	for i, entry := range homeEntries {
		line := entry.key + "  " + entry.title
		if i == m.cursor {
			sb.WriteString(styles.Selected.Render("> "+line) + "  " +
				styles.Muted.Render(entry.desc) + "\n")
		} else {
			sb.WriteString(styles.Value.Render("  "+line) + "\n")
		}
	}

	sb.WriteString("\n" + styles.Muted.Render("enter: aç  1-5: doğrudan git  q: çıkış"))

	return lipgloss.NewStyle().Padding(1, 2).MaxWidth(width).Render(sb.String())
}
