// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/newsdesk-tui/internal/api"
	"github.com/jeranaias/newsdesk-tui/internal/ui/styles"
	"github.com/jeranaias/newsdesk-tui/internal/util"
)

// =============================================================================
// STATUS BAR
// =============================================================================

// StatusBar renders the one-line footer: current view, backend health, and
// session count. The layout adapts to the terminal width.
type StatusBar struct {
	Width    int
	View     string
	Health   api.HealthState
	Sessions int
}

// Width breakpoints for the adaptive layout.
const (
	narrowWidth = 50
	mediumWidth = 80
)

var (
	barStyle = lipgloss.NewStyle().
			Background(styles.SurfaceDim).
			Foreground(styles.TextSecondary)

	viewStyle = lipgloss.NewStyle().
			Background(styles.SurfaceDim).
			Foreground(styles.Cyan).
			Bold(true)
)

// healthIndicator returns the colored indicator plus label for a health
// state. The shape varies with the state so the bar reads without color.
func healthIndicator(h api.HealthState, withLabel bool) string {
	var (
		color  lipgloss.AdaptiveColor
		symbol string
	)
	switch h {
	case api.HealthConnected:
		color, symbol = styles.Emerald, "●"
	case api.HealthDegraded:
		color, symbol = styles.Amber, "◐"
	default:
		color, symbol = styles.Rose, "○"
	}

	s := lipgloss.NewStyle().Background(styles.SurfaceDim).Foreground(color)
	if !withLabel {
		return s.Render(symbol)
	}
	return s.Render(symbol + " " + h.String())
}

// Render produces the status bar line.
func (b StatusBar) Render() string {
	if b.Width <= 0 {
		return ""
	}

	switch {
	case b.Width < narrowWidth:
		// Narrow: view name and bare indicator only.
		left := viewStyle.Render(" " + b.View + " ")
		right := healthIndicator(b.Health, false) + barStyle.Render(" ")
		return b.fill(left, right)

	case b.Width < mediumWidth:
		left := viewStyle.Render(" "+b.View+" ") +
			barStyle.Render(" "+util.IntToStr(b.Sessions)+" sohbet")
		right := healthIndicator(b.Health, true) + barStyle.Render(" ")
		return b.fill(left, right)

	default:
		left := viewStyle.Render(" "+b.View+" ") +
			barStyle.Render(" "+util.IntToStr(b.Sessions)+" sohbet")
		right := barStyle.Render("tab: görünüm  q: çıkış  ") +
			healthIndicator(b.Health, true) + barStyle.Render(" ")
		return b.fill(left, right)
	}
}

// fill pads between left and right segments to the bar width.
func (b StatusBar) fill(left, right string) string {
	gap := b.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	pad := barStyle.Render(spaces(gap))
	return left + pad + right
}

func spaces(n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}
