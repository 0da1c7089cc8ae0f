// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package router implements single-page view navigation.
package router

import "sync"

// =============================================================================
// VIEWS
// =============================================================================

// View identifies one top-level view. Exactly one view is current at any
// time.
type View int

const (
	ViewHome View = iota
	ViewNews
	ViewChat
	ViewReport
	ViewLinks
	ViewSettings
)

// String returns the view name for logging and key-binding help.
func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewNews:
		return "news"
	case ViewChat:
		return "chat"
	case ViewReport:
		return "report"
	case ViewLinks:
		return "links"
	case ViewSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// =============================================================================
// GENERATION TOKENS
// =============================================================================

// Token is captured when an exchange is issued and checked when its result
// arrives. A token is stale once any navigation has happened in between,
// so a result for a view the user already left is discarded instead of
// applied.
type Token uint64

// =============================================================================
// ROUTER
// =============================================================================

// Router is the view state machine. Transitions happen only through
// explicit Navigate calls; there is no back-stack, the current target
// view is always the one shown.
type Router struct {
	mu         sync.Mutex
	current    View
	generation Token
	visited    map[View]bool
}

// New creates a router showing the home view.
func New() *Router {
	return &Router{
		current: ViewHome,
		visited: map[View]bool{ViewHome: true},
	}
}

// Current returns the current view.
func (r *Router) Current() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Navigate makes v the current view and advances the generation, staling
// every outstanding token. It reports whether this is the first time v is
// entered, which is what gates lazy data loads (the news view loads the
// template list only on its first entry).
//
// Navigating to the already-current view still advances the generation:
// re-entry re-renders from current state and must not be completed by a
// stale in-flight result.
func (r *Router) Navigate(v View) (firstVisit bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.generation++
	r.current = v

	if !r.visited[v] {
		r.visited[v] = true
		return true
	}
	return false
}

// Issue captures a token for an exchange issued now.
func (r *Router) Issue() Token {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generation
}

// Stale reports whether any navigation happened since the token was
// captured.
func (r *Router) Stale(t Token) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return t != r.generation
}
