// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/newsdesk-tui/internal/api"
	"github.com/jeranaias/newsdesk-tui/internal/render"
	"github.com/jeranaias/newsdesk-tui/internal/report"
	"github.com/jeranaias/newsdesk-tui/internal/router"
	"github.com/jeranaias/newsdesk-tui/internal/ui/styles"
	"github.com/jeranaias/newsdesk-tui/internal/util"
)

// =============================================================================
// REPORT VIEW
// =============================================================================

// reportModel is the report view: the uploaded file set, the derived
// preview table, and the export action.
type reportModel struct {
	client *api.Client
	agg    *report.Aggregator
	rt     *router.Router

	pathInput textinput.Model
	selected  int
	pending   bool
	errText   string
	notice    string

	width int
}

func newReportModel(client *api.Client, agg *report.Aggregator, rt *router.Router) reportModel {
	input := textinput.New()
	input.Placeholder = "eklenecek dosya yolu (.xlsx, .xls, .csv)"
	input.CharLimit = 0

	return reportModel{
		client:    client,
		agg:       agg,
		rt:        rt,
		pathInput: input,
	}
}

// =============================================================================
// COMMANDS
// =============================================================================

func (m *reportModel) previewCmd() tea.Cmd {
	token := m.rt.Issue()
	agg := m.agg
	return func() tea.Msg {
		data, err := agg.Preview(context.Background())
		return previewResultMsg{Token: token, Data: data, Err: err}
	}
}

// generateCmd requests the final spreadsheet and writes it next to the
// working directory with a timestamped name.
func (m *reportModel) generateCmd() tea.Cmd {
	client := m.client
	files := m.agg.Files()
	layout := string(m.agg.Layout())
	return func() tea.Msg {
		data, err := client.GenerateReport(context.Background(), files, layout)
		if err != nil {
			return fileSavedMsg{View: router.ViewReport, Err: err}
		}
		path := "rapor_" + time.Now().Format("20060102_150405") + ".xlsx"
		if err := util.AtomicWriteFile(path, data, 0644); err != nil {
			return fileSavedMsg{View: router.ViewReport, Err: err}
		}
		return fileSavedMsg{View: router.ViewReport, Path: path}
	}
}

func (m *reportModel) typing() bool {
	return m.pathInput.Focused()
}

// =============================================================================
// UPDATE
// =============================================================================

func (m *reportModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {

	case previewResultMsg:
		m.pending = false
		if m.rt.Stale(msg.Token) {
			return nil
		}
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return nil
		}
		m.errText = ""
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

func (m *reportModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.pathInput.Focused() {
		switch msg.String() {
		case "enter":
			m.addFile()
			return nil
		case "esc":
			m.pathInput.Blur()
			return nil
		}
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return cmd
	}

	switch msg.String() {

	case "a", "i":
		if m.pending {
			return nil
		}
		return m.pathInput.Focus()

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < m.agg.FileCount()-1 {
			m.selected++
		}

	case "r", "x":
		// File set mutations wait for the in-flight exchange; an empty set
		// has nothing selected to remove.
		if m.pending || m.agg.FileCount() == 0 {
			return nil
		}
		if err := m.agg.RemoveFile(m.selected); err != nil {
			m.errText = err.Error()
			return nil
		}
		if m.selected >= m.agg.FileCount() && m.selected > 0 {
			m.selected--
		}
		m.errText = ""
		m.notice = ""

	case "p", "enter":
		if m.pending {
			return nil
		}
		m.pending = true
		m.errText = ""
		m.notice = ""
		return m.previewCmd()

	case "l":
		if m.agg.Layout() == report.LayoutStandard {
			m.agg.SetLayout(report.LayoutModern)
		} else {
			m.agg.SetLayout(report.LayoutStandard)
		}

	case "g":
		if m.pending || m.agg.FileCount() == 0 {
			return nil
		}
		m.pending = true
		m.errText = ""
		m.notice = ""
		return m.generateCmd()

	case "c":
		if m.pending {
			return nil
		}
		m.agg.Reset()
		m.notice = ""
	}

	return nil
}

// addFile reads the entered path and hands the file to the aggregator.
func (m *reportModel) addFile() {
	if m.pending {
		return
	}
	path := strings.TrimSpace(m.pathInput.Value())
	if path == "" {
		return
	}

	content, err := os.ReadFile(path)
	if err != nil {
		m.errText = "dosya okunamadı: " + err.Error()
		return
	}

	added := m.agg.AddFiles([]api.ReportFile{{
		Name:    filepath.Base(path),
		Content: content,
	}})
	if added == 0 {
		m.errText = "dosya eklenmedi (uzantı desteklenmiyor ya da aynı ad zaten var)"
		return
	}

	m.pathInput.Reset()
	m.pathInput.Blur()
	m.errText = ""
	m.notice = ""
}

// =============================================================================
// VIEW
// =============================================================================

func (m *reportModel) setSize(width, height int) {
	m.width = width
	m.pathInput.Width = width - 10
}

func (m *reportModel) view() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Rapor") + "  " +
		styles.Muted.Render("düzen: "+string(m.agg.Layout())) + "\n\n")

	files := m.agg.Files()
	if len(files) == 0 {
		sb.WriteString(styles.Muted.Render("dosya yok — a: dosya ekle") + "\n")
	}
	for i, f := range files {
		name := util.TruncateWidth(f.Name, 40)
		if i == m.selected {
			sb.WriteString(styles.Selected.Render("> "+name) + "\n")
		} else {
			sb.WriteString(styles.Value.Render("  "+name) + "\n")
		}
	}

	if m.pathInput.Focused() {
		sb.WriteString("\n" + m.pathInput.View() + "\n")
	}

	sb.WriteString("\n")
	switch {
	case m.pending:
		sb.WriteString(styles.Muted.Render("bekleniyor...") + "\n")
	case m.errText != "":
		sb.WriteString(styles.ErrorText.Render(m.errText) + "\n")
	case m.notice != "":
		sb.WriteString(styles.SuccessText.Render(m.notice) + "\n")
	}

	if table := m.renderPreview(); table != "" {
		sb.WriteString("\n" + table + "\n")
	}

	sb.WriteString("\n" + styles.Muted.Render("a: ekle  r: çıkar  p: önizle  l: düzen  g: dışa aktar  c: sıfırla"))
	return sb.String()
}

// renderPreview draws the summary table from the current snapshot.
func (m *reportModel) renderPreview() string {
	d := render.Preview(m.agg.Snapshot())
	if d == nil {
		return ""
	}

	widths := make([]int, len(d.Columns))
	for i, col := range d.Columns {
		widths[i] = util.RuneLen(col)
	}
	for _, row := range d.Rows {
		for i, cell := range row {
			if w := util.RuneLen(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	for i, col := range d.Columns {
		sb.WriteString(styles.Label.Render(util.PadWidth(col, widths[i])) + "  ")
	}
	sb.WriteString("\n")
	for _, row := range d.Rows {
		for i, cell := range row {
			sb.WriteString(styles.Value.Render(util.PadWidth(cell, widths[i])) + "  ")
		}
		sb.WriteString("\n")
	}
	if len(d.Totals) > 0 {
		for i, total := range d.Totals {
			sb.WriteString(styles.Title.Render(util.PadWidth(total, widths[i])) + "  ")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
