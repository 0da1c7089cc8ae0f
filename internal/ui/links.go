// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/newsdesk-tui/internal/api"
	"github.com/jeranaias/newsdesk-tui/internal/model"
	"github.com/jeranaias/newsdesk-tui/internal/render"
	"github.com/jeranaias/newsdesk-tui/internal/router"
	"github.com/jeranaias/newsdesk-tui/internal/store"
	"github.com/jeranaias/newsdesk-tui/internal/ui/styles"
	"github.com/jeranaias/newsdesk-tui/internal/util"
)

// =============================================================================
// LINK ANALYSIS VIEW
// =============================================================================

// linksModel is the URL analysis view: an input, the last result, and the
// most recent archived analyses. Export always covers the full archive,
// not just the visible window.
type linksModel struct {
	client *api.Client
	links  *store.LinkHistory
	rt     *router.Router

	urlInput textinput.Model
	pending  bool
	result   []render.Field
	errText  string
	notice   string

	width int
}

func newLinksModel(client *api.Client, links *store.LinkHistory, rt *router.Router) linksModel {
	input := textinput.New()
	input.Placeholder = "https://..."
	input.CharLimit = 0
	input.Focus()

	return linksModel{
		client:   client,
		links:    links,
		rt:       rt,
		urlInput: input,
	}
}

// =============================================================================
// COMMANDS
// =============================================================================

func (m *linksModel) analyzeCmd(rawURL string) tea.Cmd {
	token := m.rt.Issue()
	client := m.client
	return func() tea.Msg {
		resp, err := client.AnalyzeLink(context.Background(), rawURL)
		return linkResultMsg{Token: token, URL: rawURL, Resp: resp, Err: err}
	}
}

// exportCmd downloads the full-archive export and writes it to disk.
func (m *linksModel) exportCmd() tea.Cmd {
	client := m.client
	analyses := m.links.All()
	return func() tea.Msg {
		data, err := client.ExportLinkAnalyses(context.Background(), analyses)
		if err != nil {
			return fileSavedMsg{View: router.ViewLinks, Err: err}
		}
		path := "baglanti_analizi_" + time.Now().Format("20060102_150405") + ".xlsx"
		if err := util.AtomicWriteFile(path, data, 0644); err != nil {
			return fileSavedMsg{View: router.ViewLinks, Err: err}
		}
		return fileSavedMsg{View: router.ViewLinks, Path: path}
	}
}

func (m *linksModel) typing() bool {
	return m.urlInput.Focused()
}

// =============================================================================
// UPDATE
// =============================================================================

func (m *linksModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {

	case linkResultMsg:
		m.pending = false
		if m.rt.Stale(msg.Token) {
			return nil
		}
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return nil
		}

		rec := model.NewLinkAnalysis(msg.URL)
		rec.Domain = msg.Resp.Domain
		rec.Title = msg.Resp.Title
		rec.Language = msg.Resp.Language
		rec.ContentType = msg.Resp.ContentType
		rec.City = msg.Resp.City
		rec.Scope = msg.Resp.Scope
		rec.MonthlyVisitors = msg.Resp.MonthlyVisitors
		rec.Confidence = msg.Resp.Confidence

		if err := m.links.Add(rec); err != nil {
			// Archive write failed; the result still renders.
			m.errText = err.Error()
		} else {
			m.errText = ""
		}
		m.result = render.Link(rec)
		m.urlInput.Reset()
		return nil

	case fileSavedMsg:
		m.pending = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return nil
		}
		m.errText = ""
		m.notice = "kaydedildi: " + msg.Path
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return nil
}

func (m *linksModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {

	case "esc":
		// First esc releases the input; the next one is free to navigate.
		m.urlInput.Blur()
		return nil

	case "i":
		if !m.urlInput.Focused() {
			return m.urlInput.Focus()
		}

	case "enter":
		if m.pending {
			return nil
		}
		rawURL := strings.TrimSpace(m.urlInput.Value())
		if rawURL == "" {
			return nil
		}
		m.pending = true
		m.errText = ""
		m.notice = ""
		return m.analyzeCmd(rawURL)

	case "ctrl+e":
		if m.pending || m.links.Count() == 0 {
			return nil
		}
		m.pending = true
		m.errText = ""
		m.notice = ""
		return m.exportCmd()
	}

	if m.pending {
		return nil
	}

	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return cmd
}

// =============================================================================
// VIEW
// =============================================================================

func (m *linksModel) setSize(width, height int) {
	m.width = width
	m.urlInput.Width = width - 10
}

func (m *linksModel) view() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Bağlantı Analizi") + "\n\n")
	sb.WriteString(m.urlInput.View() + "\n")
	sb.WriteString(styles.Muted.Render("enter: analiz et  ctrl+e: tümünü dışa aktar  esc: odak bırak") + "\n\n")

	switch {
	case m.pending:
		sb.WriteString(styles.Muted.Render("analiz ediliyor...") + "\n")
	case m.errText != "":
		sb.WriteString(styles.ErrorText.Render(m.errText) + "\n")
	case m.notice != "":
		sb.WriteString(styles.SuccessText.Render(m.notice) + "\n")
	}

	if m.result != nil {
		sb.WriteString("\n" + renderFields(m.result, "") + "\n")
	}

	if recent := m.links.Recent(); len(recent) > 0 {
		sb.WriteString("\n" + styles.Label.Render("Geçmiş") + "  " +
			styles.Muted.Render("(toplam "+util.IntToStr(m.links.Count())+")") + "\n")
		for _, rec := range recent {
			line := rec.AnalyzedAt.Format("02.01 15:04") + "  " +
				util.TruncateWidth(rec.Domain, 28) + "  " +
				util.TruncateWidth(rec.Title, 40)
			sb.WriteString(styles.Value.Render(line) + "\n")
		}
	}

	return sb.String()
}
