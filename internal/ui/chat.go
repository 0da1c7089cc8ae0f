// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/newsdesk-tui/internal/api"
	"github.com/jeranaias/newsdesk-tui/internal/model"
	"github.com/jeranaias/newsdesk-tui/internal/store"
	"github.com/jeranaias/newsdesk-tui/internal/ui/styles"
	"github.com/jeranaias/newsdesk-tui/internal/util"
)

// =============================================================================
// CHAT VIEW
// =============================================================================

// chatModel is the conversation view: the session list on the left, the
// active session's message log on the right, and the input below.
//
// While an exchange is in flight the input is disabled. This is a
// deliberate dedup choice: a second send cannot race the first, so
// responses apply in issue order.
type chatModel struct {
	client   *api.Client
	sessions *store.SessionStore

	input    textarea.Model
	log      viewport.Model
	pending  bool
	errText  string
	markdown bool
	renderer *glamour.TermRenderer

	width  int
	height int
}

func newChatModel(client *api.Client, sessions *store.SessionStore, markdown bool) chatModel {
	input := textarea.New()
	input.Placeholder = "Mesaj yazın..."
	input.SetHeight(3)
	input.CharLimit = 0
	input.Focus()

	var renderer *glamour.TermRenderer
	if markdown {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
	}

	return chatModel{
		client:   client,
		sessions: sessions,
		input:    input,
		log:      viewport.New(0, 0),
		markdown: markdown,
		renderer: renderer,
	}
}

// =============================================================================
// COMMANDS
// =============================================================================

// sendCmd performs the chat exchange. The response carries the originating
// session id so it lands in the right session even after a switch.
func (m *chatModel) sendCmd(sessionID, text string, history []model.Message) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		resp, err := client.Chat(context.Background(), text, history)
		if err != nil {
			return chatResponseMsg{SessionID: sessionID, Err: err}
		}
		return chatResponseMsg{SessionID: sessionID, Response: resp.Response}
	}
}

// activate re-renders the session list and message log from current state.
// Entering the chat view is idempotent: no exchange, no mutation.
func (m *chatModel) activate() {
	m.refreshLog()
}

func (m *chatModel) typing() bool {
	return m.input.Focused()
}

// =============================================================================
// UPDATE
// =============================================================================

func (m *chatModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {

	case chatResponseMsg:
		m.pending = false
		if msg.Err != nil {
			// The user message stays in the log; the session is consistent
			// but unanswered, and the failure is surfaced transiently.
			m.errText = msg.Err.Error()
			m.refreshLog()
			return nil
		}
		if err := m.sessions.CompleteExchange(msg.SessionID, msg.Response); err != nil {
			m.errText = err.Error()
		}
		m.refreshLog()
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return nil
}

func (m *chatModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {

	case "esc":
		// First esc releases the input; the next one is free to navigate.
		m.input.Blur()
		return nil

	case "i":
		if !m.input.Focused() {
			return m.input.Focus()
		}

	case "enter":
		return m.send()

	case "ctrl+n":
		if _, err := m.sessions.CreateSession(); err != nil {
			m.errText = err.Error()
		}
		m.refreshLog()
		return nil

	case "ctrl+d":
		if id := m.sessions.ActiveID(); id != "" {
			if err := m.sessions.DeleteSession(id); err != nil {
				m.errText = err.Error()
			}
		}
		m.refreshLog()
		return nil

	case "ctrl+p":
		m.switchRelative(-1)
		return nil

	case "ctrl+j":
		m.switchRelative(1)
		return nil

	case "pgup":
		m.log.HalfViewUp()
		return nil

	case "pgdown":
		m.log.HalfViewDown()
		return nil
	}

	if m.pending {
		// Input disabled while an exchange is in flight.
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// send validates and issues the chat exchange.
func (m *chatModel) send() tea.Cmd {
	if m.pending {
		return nil
	}

	text := strings.TrimSpace(m.input.Value())

	sessionID, history, err := m.sessions.BeginExchange(text)
	if err != nil {
		if api.IsValidation(err) {
			// Empty input: nothing mutated, nothing sent.
			return nil
		}
		m.errText = err.Error()
		return nil
	}

	m.input.Reset()
	m.pending = true
	m.errText = ""
	m.refreshLog()

	return m.sendCmd(sessionID, text, history)
}

// switchRelative moves the active session up or down the list.
func (m *chatModel) switchRelative(delta int) {
	sessions := m.sessions.Sessions()
	if len(sessions) == 0 {
		return
	}

	active := m.sessions.ActiveID()
	idx := 0
	for i, s := range sessions {
		if s.ID == active {
			idx = i
			break
		}
	}

	idx += delta
	if idx < 0 || idx >= len(sessions) {
		return
	}
	m.sessions.SwitchSession(sessions[idx].ID)
	m.refreshLog()
}

// =============================================================================
// VIEW
// =============================================================================

const chatSidebarWidth = 28

func (m *chatModel) setSize(width, height int) {
	m.width = width
	m.height = height

	logWidth := width - chatSidebarWidth - 3
	if logWidth < 20 {
		logWidth = 20
	}
	logHeight := height - 7
	if logHeight < 3 {
		logHeight = 3
	}

	m.log.Width = logWidth
	m.log.Height = logHeight
	m.input.SetWidth(logWidth)
	m.refreshLog()
}

// refreshLog rebuilds the viewport content from the active session.
func (m *chatModel) refreshLog() {
	active := m.sessions.Active()
	if active == nil {
		m.log.SetContent(styles.Muted.Render("Henüz sohbet yok. İlk mesaj yeni bir sohbet başlatır."))
		return
	}

	var sb strings.Builder
	for _, msg := range active.History {
		sb.WriteString(m.renderMessage(msg) + "\n")
	}
	if m.pending {
		sb.WriteString(styles.Muted.Render("yanıt bekleniyor..."))
	}

	m.log.SetContent(sb.String())
	m.log.GotoBottom()
}

var (
	userMsgStyle = lipgloss.NewStyle().
			Foreground(styles.UserBubbleFg).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(styles.UserBubbleBorder).
			PaddingLeft(1)

	assistantMsgStyle = lipgloss.NewStyle().
				Foreground(styles.AssistantBubbleFg).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(styles.AssistantBubbleBorder).
				PaddingLeft(1)
)

func (m *chatModel) renderMessage(msg model.Message) string {
	if msg.Role == model.RoleUser {
		return userMsgStyle.Render(msg.Content)
	}

	content := msg.Content
	if m.markdown && m.renderer != nil {
		if rendered, err := m.renderer.Render(content); err == nil {
			content = strings.TrimRight(rendered, "\n")
		}
	}
	return assistantMsgStyle.Render(content)
}

func (m *chatModel) view() string {
	sidebar := m.renderSidebar()

	var right strings.Builder
	right.WriteString(m.log.View() + "\n")
	if m.errText != "" {
		right.WriteString(styles.ErrorText.Render(m.errText) + "\n")
	}
	right.WriteString(m.input.View() + "\n")
	right.WriteString(styles.Muted.Render("enter: gönder  ctrl+n: yeni  ctrl+d: sil  ctrl+p/ctrl+j: sohbet değiştir  esc: odak bırak"))

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", right.String())
}

// renderSidebar lists every session, newest first, marking the active one.
func (m *chatModel) renderSidebar() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Sohbetler") + "\n")

	sessions := m.sessions.Sessions()
	if len(sessions) == 0 {
		sb.WriteString(styles.Muted.Render("boş"))
	}

	active := m.sessions.ActiveID()
	for _, s := range sessions {
		title := util.TruncateWidth(s.DisplayTitle(), chatSidebarWidth-6)
		if s.ID == active {
			sb.WriteString(styles.Selected.Render("> "+title) + "\n")
		} else {
			sb.WriteString(styles.Value.Render("  "+title) + "\n")
		}
	}

	return styles.Pane.Width(chatSidebarWidth).Render(sb.String())
}
