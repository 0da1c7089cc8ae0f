// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/time/rate"

	"github.com/jeranaias/newsdesk-tui/internal/api"
	"github.com/jeranaias/newsdesk-tui/internal/config"
	"github.com/jeranaias/newsdesk-tui/internal/report"
	"github.com/jeranaias/newsdesk-tui/internal/router"
	"github.com/jeranaias/newsdesk-tui/internal/store"
	"github.com/jeranaias/newsdesk-tui/internal/ui/components"
)

// =============================================================================
// ROOT MODEL
// =============================================================================

// App is the root bubbletea model. It owns navigation, the periodic health
// probe, the toast and status bar chrome, and routes everything else to
// the current view's model.
type App struct {
	cfg      *config.Config
	client   *api.Client
	sessions *store.SessionStore
	rt       *router.Router

	home     homeModel
	news     newsModel
	chat     chatModel
	report   reportModel
	links    linksModel
	settings settingsModel

	health  api.HealthState
	limiter *rate.Limiter
	toast   components.Toast

	width  int
	height int
}

// New wires the root model from the already-loaded stores and client.
func New(cfg *config.Config, client *api.Client, sessions *store.SessionStore,
	links *store.LinkHistory, agg *report.Aggregator) *App {

	rt := router.New()

	return &App{
		cfg:      cfg,
		client:   client,
		sessions: sessions,
		rt:       rt,
		news:     newNewsModel(client, rt),
		chat:     newChatModel(client, sessions, cfg.UI.MarkdownRendering),
		report:   newReportModel(client, agg, rt),
		links:    newLinksModel(client, links, rt),
		settings: newSettingsModel(client, rt),
		health:   api.HealthUnreachable,
		// The probe interval is config-driven; the limiter caps bursts when
		// ticks pile up after a suspend or a config reload.
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// =============================================================================
// COMMANDS
// =============================================================================

func (a *App) healthTickCmd() tea.Cmd {
	return tea.Tick(a.cfg.HealthInterval(), func(t time.Time) tea.Msg {
		return healthTickMsg{At: t}
	})
}

func (a *App) probeCmd() tea.Cmd {
	client := a.client
	return func() tea.Msg {
		return healthResultMsg{State: client.CheckHealth(context.Background())}
	}
}

// Init starts the health probe loop with an immediate first probe.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.probeCmd(), a.healthTickCmd())
}

// =============================================================================
// UPDATE
// =============================================================================

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.setSize(msg.Width, msg.Height)
		return a, nil

	case healthTickMsg:
		var cmds []tea.Cmd
		if a.limiter.Allow() {
			cmds = append(cmds, a.probeCmd())
		}
		cmds = append(cmds, a.healthTickCmd())
		return a, tea.Batch(cmds...)

	case healthResultMsg:
		a.health = msg.State
		return a, nil

	case configReloadedMsg:
		if msg.Cfg != nil {
			a.cfg = msg.Cfg
			return a, a.toast.Show("yapılandırma yeniden yüklendi", components.ToastInfo)
		}
		return a, nil

	case components.ToastExpiredMsg:
		a.toast.Expire(msg)
		return a, nil

	case tea.KeyMsg:
		if model, cmd, handled := a.handleGlobalKey(msg); handled {
			return model, cmd
		}
	}

	return a, a.routeToViews(msg)
}

// handleGlobalKey intercepts quit and navigation before the view models
// see the keystroke. While a view's text input has focus only the control
// chords stay global; plain keys belong to the input.
func (a *App) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit, true
	}

	if a.currentTyping() {
		if key == "esc" && a.rt.Current() != router.ViewHome {
			// esc backs out of the input, not the view; report view's
			// path input handles its own esc.
			return a, a.routeToViews(msg), true
		}
		return a, nil, false
	}

	switch key {

	case "q":
		return a, tea.Quit, true

	case "h", "esc":
		a.rt.Navigate(router.ViewHome)
		return a, nil, true

	case "1", "2", "3", "4", "5":
		for _, entry := range homeEntries {
			if entry.key == key {
				return a, a.navigate(entry.view), true
			}
		}

	case "up", "k", "down", "j":
		if a.rt.Current() == router.ViewHome {
			if key == "up" || key == "k" {
				a.home.moveCursor(-1)
			} else {
				a.home.moveCursor(1)
			}
			return a, nil, true
		}

	case "enter":
		if a.rt.Current() == router.ViewHome {
			return a, a.navigate(a.home.selected()), true
		}
	}

	return a, nil, false
}

// navigate switches the current view and fires its lazy activation.
func (a *App) navigate(v router.View) tea.Cmd {
	firstVisit := a.rt.Navigate(v)

	switch v {
	case router.ViewNews:
		return a.news.activate()
	case router.ViewChat:
		a.chat.activate()
	case router.ViewSettings:
		return a.settings.activate(firstVisit)
	}
	return nil
}

// routeToViews delivers the message to the view that owns it. Exchange
// results go to their owning view regardless of what is current, because
// the view applies its own staleness check; keystrokes go only to the
// current view.
func (a *App) routeToViews(msg tea.Msg) tea.Cmd {
	if _, isKey := msg.(tea.KeyMsg); isKey {
		switch a.rt.Current() {
		case router.ViewNews:
			return a.news.update(msg)
		case router.ViewChat:
			return a.chat.update(msg)
		case router.ViewReport:
			return a.report.update(msg)
		case router.ViewLinks:
			return a.links.update(msg)
		case router.ViewSettings:
			return a.settings.update(msg)
		}
		return nil
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case templatesLoadedMsg, classifyResultMsg, sectorResultMsg, languageResultMsg:
		cmd = a.news.update(msg)
	case chatResponseMsg:
		cmd = a.chat.update(msg)
	case previewResultMsg:
		cmd = a.report.update(msg)
	case linkResultMsg:
		cmd = a.links.update(msg)
	case settingsLoadedMsg, settingsSavedMsg:
		cmd = a.settings.update(msg)
	case fileSavedMsg:
		// Both the report and link views download files; the message names
		// its origin so the completion lands there even after navigation.
		if msg.View == router.ViewLinks {
			cmd = a.links.update(msg)
		} else {
			cmd = a.report.update(msg)
		}
		if msg.Err == nil && msg.Path != "" {
			return tea.Batch(cmd, a.toast.Show("kaydedildi: "+msg.Path, components.ToastSuccess))
		}
	}

	if errMsg := exchangeError(msg); errMsg != "" {
		return tea.Batch(cmd, a.toast.Show(errMsg, components.ToastError))
	}
	return cmd
}

// exchangeError extracts a transport or network failure worth toasting.
// Validation errors stay inline in their view.
func exchangeError(msg tea.Msg) string {
	var err error
	switch msg := msg.(type) {
	case chatResponseMsg:
		err = msg.Err
	case templatesLoadedMsg:
		err = msg.Err
	case classifyResultMsg:
		err = msg.Err
	case sectorResultMsg:
		err = msg.Err
	case languageResultMsg:
		err = msg.Err
	case linkResultMsg:
		err = msg.Err
	case previewResultMsg:
		err = msg.Err
	case settingsLoadedMsg:
		err = msg.Err
	case settingsSavedMsg:
		err = msg.Err
	case fileSavedMsg:
		err = msg.Err
	}

	if err == nil {
		return ""
	}
	if api.IsNetwork(err) || api.IsTransport(err) {
		return err.Error()
	}
	return ""
}

// currentTyping reports whether the current view's text input has focus.
func (a *App) currentTyping() bool {
	switch a.rt.Current() {
	case router.ViewNews:
		return a.news.typing()
	case router.ViewChat:
		return a.chat.typing()
	case router.ViewReport:
		return a.report.typing()
	case router.ViewLinks:
		return a.links.typing()
	}
	return false
}

// =============================================================================
// VIEW
// =============================================================================

func (a *App) setSize(width, height int) {
	a.width = width
	a.height = height

	contentHeight := height - 2
	a.news.setSize(width, contentHeight)
	a.chat.setSize(width, contentHeight)
	a.report.setSize(width, contentHeight)
	a.links.setSize(width, contentHeight)
	a.settings.setSize(width, contentHeight)
}

func (a *App) View() string {
	var content string
	switch a.rt.Current() {
	case router.ViewNews:
		content = a.news.view()
	case router.ViewChat:
		content = a.chat.view()
	case router.ViewReport:
		content = a.report.view()
	case router.ViewLinks:
		content = a.links.view()
	case router.ViewSettings:
		content = a.settings.view()
	default:
		content = a.home.view(a.width)
	}

	bar := components.StatusBar{
		Width:    a.width,
		View:     a.rt.Current().String(),
		Health:   a.health,
		Sessions: a.sessions.Count(),
	}.Render()

	body := content
	if a.toast.Visible() {
		body = lipgloss.JoinVertical(lipgloss.Left, a.toast.Render(), body)
	}

	if a.height > 2 {
		body = lipgloss.NewStyle().Height(a.height - 1).Render(body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, bar)
}
