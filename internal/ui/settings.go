// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/newsdesk-tui/internal/api"
	"github.com/jeranaias/newsdesk-tui/internal/model"
	"github.com/jeranaias/newsdesk-tui/internal/router"
	"github.com/jeranaias/newsdesk-tui/internal/ui/styles"
	"github.com/jeranaias/newsdesk-tui/internal/util"
)

// =============================================================================
// SETTINGS VIEW
// =============================================================================

// cacheTypeCycle is the edit order for the KV cache type field.
var cacheTypeCycle = []model.CacheType{model.CacheQ4, model.CacheQ8, model.CacheF16}

// settingsModel is the settings view: the backend's KV cache settings and
// the installed model list. The load is lazy, on first entry; edits stay
// local until saved.
type settingsModel struct {
	client *api.Client
	rt     *router.Router

	settings model.CacheSettings
	models   []api.ModelInfo
	loaded   bool
	loading  bool
	dirty    bool
	pending  bool

	cursor  int // 0: cache type, 1: parallel, 2: keep-alive
	errText string
	notice  string

	width int
}

func newSettingsModel(client *api.Client, rt *router.Router) settingsModel {
	return settingsModel{
		client:   client,
		rt:       rt,
		settings: model.DefaultCacheSettings(),
	}
}

// =============================================================================
// COMMANDS
// =============================================================================

func (m *settingsModel) loadCmd() tea.Cmd {
	token := m.rt.Issue()
	client := m.client
	return func() tea.Msg {
		settings, err := client.GetSettings(context.Background())
		if err != nil {
			return settingsLoadedMsg{Token: token, Err: err}
		}
		models, err := client.ListModels(context.Background())
		return settingsLoadedMsg{Token: token, Settings: settings, Models: models, Err: err}
	}
}

func (m *settingsModel) saveCmd() tea.Cmd {
	client := m.client
	settings := m.settings
	return func() tea.Msg {
		saved, err := client.UpdateSettings(context.Background(), settings)
		return settingsSavedMsg{Settings: saved, Err: err}
	}
}

// activate fires the settings load on the view's first entry only.
func (m *settingsModel) activate(firstVisit bool) tea.Cmd {
	if firstVisit && !m.loaded {
		m.loading = true
		return m.loadCmd()
	}
	return nil
}

func (m *settingsModel) typing() bool { return false }

// =============================================================================
// UPDATE
// =============================================================================

func (m *settingsModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {

	case settingsLoadedMsg:
		m.loading = false
		if m.rt.Stale(msg.Token) {
			return nil
		}
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return nil
		}
		m.loaded = true
		m.settings = *msg.Settings
		m.models = msg.Models
		m.dirty = false
		m.errText = ""
		return nil

	case settingsSavedMsg:
		m.pending = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return nil
		}
		m.settings = *msg.Settings
		m.dirty = false
		m.errText = ""
		m.notice = "ayarlar kaydedildi"
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return nil
}

func (m *settingsModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < 2 {
			m.cursor++
		}

	case "left", "right", "enter", "+", "-":
		m.edit(msg.String())

	case "ctrl+s", "s":
		if m.pending || !m.dirty {
			return nil
		}
		if !m.settings.CacheType.Valid() {
			m.errText = "geçersiz önbellek türü"
			return nil
		}
		if m.settings.NumParallel < 1 || m.settings.NumParallel > 16 {
			m.errText = "paralel istek sayısı 1-16 arasında olmalı"
			return nil
		}
		m.pending = true
		m.errText = ""
		m.notice = ""
		return m.saveCmd()

	case "r":
		if m.pending {
			return nil
		}
		m.loading = true
		m.notice = ""
		return m.loadCmd()
	}

	return nil
}

// edit applies one field mutation under the cursor.
func (m *settingsModel) edit(key string) {
	switch m.cursor {

	case 0: // cache type cycles through the accepted values
		idx := 0
		for i, ct := range cacheTypeCycle {
			if ct == m.settings.CacheType {
				idx = i
				break
			}
		}
		if key == "left" || key == "-" {
			idx = (idx + len(cacheTypeCycle) - 1) % len(cacheTypeCycle)
		} else {
			idx = (idx + 1) % len(cacheTypeCycle)
		}
		m.settings.CacheType = cacheTypeCycle[idx]

	case 1: // parallel requests, clamped to the backend's range
		if key == "left" || key == "-" {
			if m.settings.NumParallel > 1 {
				m.settings.NumParallel--
			}
		} else if m.settings.NumParallel < 16 {
			m.settings.NumParallel++
		}

	case 2: // keep-alive steps through common durations
		steps := []string{"5m", "10m", "30m", "1h", "-1"}
		idx := 0
		for i, s := range steps {
			if s == m.settings.DefaultKeepAlive {
				idx = i
				break
			}
		}
		if key == "left" || key == "-" {
			idx = (idx + len(steps) - 1) % len(steps)
		} else {
			idx = (idx + 1) % len(steps)
		}
		m.settings.DefaultKeepAlive = steps[idx]
	}

	m.dirty = true
	m.notice = ""
}

// =============================================================================
// VIEW
// =============================================================================

func (m *settingsModel) setSize(width, height int) {
	m.width = width
}

func (m *settingsModel) view() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Ayarlar") + "\n\n")

	if m.loading {
		sb.WriteString(styles.Muted.Render("yükleniyor...") + "\n")
		return sb.String()
	}

	rows := []struct {
		label string
		value string
	}{
		{"KV önbellek türü", string(m.settings.CacheType)},
		{"Paralel istek", util.IntToStr(m.settings.NumParallel)},
		{"Keep-alive", m.settings.DefaultKeepAlive},
	}
	for i, row := range rows {
		line := util.PadWidth(row.label, 18) + "  " + row.value
		if i == m.cursor {
			sb.WriteString(styles.Selected.Render("> "+line) + "\n")
		} else {
			sb.WriteString(styles.Value.Render("  "+line) + "\n")
		}
	}

	sb.WriteString("\n")
	switch {
	case m.pending:
		sb.WriteString(styles.Muted.Render("kaydediliyor...") + "\n")
	case m.errText != "":
		sb.WriteString(styles.ErrorText.Render(m.errText) + "\n")
	case m.notice != "":
		sb.WriteString(styles.SuccessText.Render(m.notice) + "\n")
	case m.dirty:
		sb.WriteString(styles.Muted.Render("kaydedilmemiş değişiklik var") + "\n")
	}

	if len(m.models) > 0 {
		sb.WriteString("\n" + styles.Label.Render("Kurulu modeller") + "\n")
		for _, info := range m.models {
			sb.WriteString(styles.Value.Render("  "+info.Name) + "\n")
		}
	}

	sb.WriteString("\n" + styles.Muted.Render("↑/↓: alan  ←/→: değiştir  s: kaydet  r: yeniden yükle"))
	return sb.String()
}
