// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/newsdesk-tui/internal/api"
	"github.com/jeranaias/newsdesk-tui/internal/config"
	"github.com/jeranaias/newsdesk-tui/internal/model"
	"github.com/jeranaias/newsdesk-tui/internal/router"
)

// =============================================================================
// EXCHANGE RESULT MESSAGES
// =============================================================================
// Each completed backend exchange arrives as one typed message. Messages
// carrying a router.Token belong to a specific view generation and are
// discarded when stale; chat responses instead carry their session id and
// always land in the store.

// chatResponseMsg carries the assistant response for one chat exchange.
type chatResponseMsg struct {
	SessionID string
	Response  string
	Err       error
}

// templatesLoadedMsg carries the lazily loaded template list.
type templatesLoadedMsg struct {
	Token     router.Token
	Templates []model.Template
	Err       error
}

// classifyResultMsg carries one classification result.
type classifyResultMsg struct {
	Token router.Token
	Resp  *api.ClassifyResponse
	Err   error
}

// sectorResultMsg carries one sector classification result.
type sectorResultMsg struct {
	Token router.Token
	Resp  *api.SectorResponse
	Err   error
}

// languageResultMsg carries one language detection result.
type languageResultMsg struct {
	Token router.Token
	Resp  *api.DetectLanguageResponse
	Err   error
}

// linkResultMsg carries one URL analysis result.
type linkResultMsg struct {
	Token router.Token
	URL   string
	Resp  *api.AnalyzeLinkResponse
	Err   error
}

// previewResultMsg carries one report preview result.
type previewResultMsg struct {
	Token router.Token
	Data  *api.PreviewData
	Err   error
}

// fileSavedMsg reports a binary download written to disk (final report or
// link-analysis export). View names the view that started the download, so
// a completion still reaches its owner after the user navigated away.
type fileSavedMsg struct {
	View router.View
	Path string
	Err  error
}

// settingsLoadedMsg carries the backend settings and model list for the
// settings view.
type settingsLoadedMsg struct {
	Token    router.Token
	Settings *model.CacheSettings
	Models   []api.ModelInfo
	Err      error
}

// settingsSavedMsg reports a settings update round trip.
type settingsSavedMsg struct {
	Settings *model.CacheSettings
	Err      error
}

// =============================================================================
// SIDE-CHANNEL MESSAGES
// =============================================================================

// healthTickMsg fires the periodic health probe.
type healthTickMsg struct {
	At time.Time
}

// healthResultMsg carries the probe outcome.
type healthResultMsg struct {
	State api.HealthState
}

// configReloadedMsg carries a config picked up from a file change.
type configReloadedMsg struct {
	Cfg *config.Config
}

// ConfigReloaded wraps a reloaded config for delivery via Program.Send.
func ConfigReloaded(cfg *config.Config) tea.Msg {
	return configReloadedMsg{Cfg: cfg}
}
