// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/newsdesk-tui/internal/ui/styles"
)

// =============================================================================
// TOAST
// =============================================================================

// ToastLevel selects the toast styling.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastError
)

// toastDuration is how long a toast stays visible.
const toastDuration = 4 * time.Second

// ToastExpiredMsg is sent when a toast should disappear.
type ToastExpiredMsg struct {
	ID int
}

// Toast is a transient one-line notification. Transport and network
// failures surface here; the toast never blocks input.
type Toast struct {
	id      int
	text    string
	level   ToastLevel
	visible bool
}

// Show replaces the current toast and returns the expiry command.
func (t *Toast) Show(text string, level ToastLevel) tea.Cmd {
	t.id++
	t.text = text
	t.level = level
	t.visible = true

	id := t.id
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// Expire hides the toast if the expiry matches the one currently shown.
// A stale expiry for an already-replaced toast is ignored.
func (t *Toast) Expire(msg ToastExpiredMsg) {
	if msg.ID == t.id {
		t.visible = false
	}
}

// Visible reports whether a toast is showing.
func (t *Toast) Visible() bool {
	return t.visible
}

var (
	toastInfoStyle = lipgloss.NewStyle().
			Foreground(styles.TextInverse).
			Background(styles.Cyan).
			Padding(0, 1)

	toastSuccessStyle = lipgloss.NewStyle().
				Foreground(styles.TextInverse).
				Background(styles.Emerald).
				Padding(0, 1)

	toastErrorStyle = lipgloss.NewStyle().
			Foreground(styles.TextInverse).
			Background(styles.Rose).
			Padding(0, 1)
)

// Render produces the toast line, or "" when hidden.
func (t *Toast) Render() string {
	if !t.visible {
		return ""
	}
	switch t.level {
	case ToastSuccess:
		return toastSuccessStyle.Render(t.text)
	case ToastError:
		return toastErrorStyle.Render(t.text)
	default:
		return toastInfoStyle.Render(t.text)
	}
}
