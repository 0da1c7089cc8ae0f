// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/newsdesk-tui/internal/api"
	"github.com/jeranaias/newsdesk-tui/internal/model"
	"github.com/jeranaias/newsdesk-tui/internal/render"
	"github.com/jeranaias/newsdesk-tui/internal/router"
	"github.com/jeranaias/newsdesk-tui/internal/ui/styles"
	"github.com/jeranaias/newsdesk-tui/internal/util"
)

// =============================================================================
// NEWS VIEW
// =============================================================================

// newsFocus selects which pane receives input.
type newsFocus int

const (
	focusTemplates newsFocus = iota
	focusNewsInput
)

// newsModel is the classification view: a cached template list, a news
// text input, and the latest result. The template cache loads lazily on
// entry while empty and stays cached once filled; r reloads it by hand.
type newsModel struct {
	client *api.Client
	rt     *router.Router

	templates  []model.Template
	selected   int  // cursor in the template list
	selectedID string
	loaded     bool
	loading    bool

	input   textarea.Model
	focus   newsFocus
	pending bool

	// Latest results; only one panel is shown at a time.
	classification *render.ClassificationDisplay
	sectorFields   []render.Field
	languageFields []render.Field
	errText        string

	width int
}

func newNewsModel(client *api.Client, rt *router.Router) newsModel {
	input := textarea.New()
	input.Placeholder = "Haber metnini buraya yapıştırın..."
	input.SetHeight(5)
	input.CharLimit = 0

	return newsModel{
		client: client,
		rt:     rt,
		input:  input,
	}
}

// =============================================================================
// COMMANDS
// =============================================================================

// loadTemplatesCmd fetches the template list for the lazy first load.
func (m *newsModel) loadTemplatesCmd() tea.Cmd {
	token := m.rt.Issue()
	client := m.client
	return func() tea.Msg {
		templates, err := client.ListTemplates(context.Background())
		return templatesLoadedMsg{Token: token, Templates: templates, Err: err}
	}
}

func (m *newsModel) classifyCmd(templateID, text string) tea.Cmd {
	token := m.rt.Issue()
	client := m.client
	return func() tea.Msg {
		resp, err := client.Classify(context.Background(), templateID, text)
		return classifyResultMsg{Token: token, Resp: resp, Err: err}
	}
}

func (m *newsModel) sectorCmd(text string) tea.Cmd {
	token := m.rt.Issue()
	client := m.client
	return func() tea.Msg {
		resp, err := client.ClassifySector(context.Background(), text)
		return sectorResultMsg{Token: token, Resp: resp, Err: err}
	}
}

func (m *newsModel) languageCmd(text string) tea.Cmd {
	token := m.rt.Issue()
	client := m.client
	return func() tea.Msg {
		resp, err := client.DetectLanguage(context.Background(), text)
		return languageResultMsg{Token: token, Resp: resp, Err: err}
	}
}

// =============================================================================
// ACTIVATION
// =============================================================================

// activate is called on every entry to the view. The template load fires
// whenever the cache is still empty and no load is in flight, so a first
// load that failed or was discarded as stale is retried on the next entry.
func (m *newsModel) activate() tea.Cmd {
	if !m.loaded && !m.loading {
		m.loading = true
		return m.loadTemplatesCmd()
	}
	return nil
}

// typing reports whether keystrokes belong to the text input.
func (m *newsModel) typing() bool {
	return m.focus == focusNewsInput && m.input.Focused()
}

// =============================================================================
// UPDATE
// =============================================================================

func (m *newsModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {

	case templatesLoadedMsg:
		m.loading = false
		if m.rt.Stale(msg.Token) {
			return nil
		}
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return nil
		}
		m.loaded = true
		m.templates = msg.Templates
		if m.selected >= len(m.templates) {
			m.selected = 0
		}
		if len(m.templates) > 0 {
			m.selectedID = m.templates[m.selected].ID
		}
		return nil

	case classifyResultMsg:
		m.pending = false
		if m.rt.Stale(msg.Token) {
			return nil
		}
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return nil
		}
		d := render.Classification(msg.Resp)
		m.classification = &d
		m.sectorFields, m.languageFields = nil, nil
		m.errText = ""
		return nil

	case sectorResultMsg:
		m.pending = false
		if m.rt.Stale(msg.Token) {
			return nil
		}
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return nil
		}
		m.sectorFields = render.Sector(msg.Resp)
		m.classification, m.languageFields = nil, nil
		m.errText = ""
		return nil

	case languageResultMsg:
		m.pending = false
		if m.rt.Stale(msg.Token) {
			return nil
		}
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return nil
		}
		m.languageFields = render.Language(msg.Resp)
		m.classification, m.sectorFields = nil, nil
		m.errText = ""
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return nil
}

func (m *newsModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {

	case "tab":
		if m.focus == focusTemplates {
			m.focus = focusNewsInput
			return m.input.Focus()
		}
		m.focus = focusTemplates
		m.input.Blur()
		return nil

	case "up", "k":
		if m.focus == focusTemplates {
			if m.selected > 0 {
				m.selected--
				m.selectedID = m.templates[m.selected].ID
			}
			return nil
		}

	case "down", "j":
		if m.focus == focusTemplates {
			if m.selected < len(m.templates)-1 {
				m.selected++
				m.selectedID = m.templates[m.selected].ID
			}
			return nil
		}

	case "r":
		if m.focus == focusTemplates && !m.loading {
			m.loading = true
			m.errText = ""
			return m.loadTemplatesCmd()
		}

	case "ctrl+s":
		return m.submit(m.sectorCmd(strings.TrimSpace(m.input.Value())))

	case "ctrl+l":
		return m.submit(m.languageCmd(strings.TrimSpace(m.input.Value())))

	case "ctrl+enter", "alt+enter":
		return m.submit(m.classifyCmd(m.selectedID, strings.TrimSpace(m.input.Value())))

	case "enter":
		if m.focus == focusTemplates {
			return m.submit(m.classifyCmd(m.selectedID, strings.TrimSpace(m.input.Value())))
		}
	}

	if m.focus == focusNewsInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
	return nil
}

// submit guards against double submission: while one exchange is pending
// the inputs are effectively disabled.
func (m *newsModel) submit(cmd tea.Cmd) tea.Cmd {
	if m.pending {
		return nil
	}
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		m.errText = "haber metni boş"
		return nil
	}
	if m.selectedID == "" && m.focus == focusTemplates {
		m.errText = "şablon seçilmedi"
		return nil
	}
	m.pending = true
	m.errText = ""
	return cmd
}

// =============================================================================
// VIEW
// =============================================================================

func (m *newsModel) setSize(width, height int) {
	m.width = width
	inputWidth := width - 30
	if inputWidth < 20 {
		inputWidth = 20
	}
	m.input.SetWidth(inputWidth)
}

func (m *newsModel) view() string {
	var list strings.Builder
	list.WriteString(styles.Title.Render("Şablonlar") + "\n")

	switch {
	case m.loading:
		list.WriteString(styles.Muted.Render("yükleniyor..."))
	case len(m.templates) == 0:
		list.WriteString(styles.Muted.Render("şablon yok"))
	default:
		for i, t := range m.templates {
			name := util.TruncateWidth(t.Name, 22)
			if i == m.selected {
				list.WriteString(styles.Selected.Render("> "+name) + "\n")
			} else {
				list.WriteString(styles.Value.Render("  "+name) + "\n")
			}
		}
	}

	left := styles.Pane.Width(26).Render(list.String())

	var right strings.Builder
	right.WriteString(m.input.View() + "\n")
	right.WriteString(styles.Muted.Render("enter/ctrl+enter: sınıflandır  ctrl+s: sektör  ctrl+l: dil  tab: odak  r: şablonları yenile") + "\n\n")
	right.WriteString(m.resultPanel())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right.String())
}

// resultPanel renders whichever result is current.
func (m *newsModel) resultPanel() string {
	if m.pending {
		return styles.Muted.Render("sınıflandırılıyor...")
	}
	if m.errText != "" {
		return styles.ErrorText.Render(m.errText)
	}

	var fields []render.Field
	var footer string

	switch {
	case m.classification != nil:
		if m.classification.Err != "" {
			return styles.ErrorText.Render(m.classification.Err)
		}
		fields = m.classification.Fields
		if m.classification.ResponseTime != "" {
			footer = m.classification.ResponseTime
			if m.classification.TokensPerSec != "" {
				footer += "  " + m.classification.TokensPerSec
			}
		}
	case m.sectorFields != nil:
		fields = m.sectorFields
	case m.languageFields != nil:
		fields = m.languageFields
	default:
		return ""
	}

	return renderFields(fields, footer)
}

// renderFields lays out labelled rows with aligned labels.
func renderFields(fields []render.Field, footer string) string {
	labelWidth := 0
	for _, f := range fields {
		if w := util.RuneLen(f.Label); w > labelWidth {
			labelWidth = w
		}
	}

	var sb strings.Builder
	for _, f := range fields {
		sb.WriteString(styles.Label.Render(util.PadWidth(f.Label, labelWidth)) +
			"  " + styles.Value.Render(f.Value) + "\n")
	}
	if footer != "" {
		sb.WriteString("\n" + styles.Muted.Render(footer))
	}
	return sb.String()
}
