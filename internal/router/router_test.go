// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import "testing"

func TestSingleCurrentView(t *testing.T) {
	r := New()
	if r.Current() != ViewHome {
		t.Fatalf("initial view = %v, want home", r.Current())
	}

	r.Navigate(ViewNews)
	if r.Current() != ViewNews {
		t.Errorf("current = %v, want news", r.Current())
	}

	r.Navigate(ViewChat)
	if r.Current() != ViewChat {
		t.Errorf("current = %v, want chat", r.Current())
	}
}

func TestFirstVisitOnlyOnce(t *testing.T) {
	r := New()

	if !r.Navigate(ViewNews) {
		t.Error("first entry to news should report first visit")
	}
	r.Navigate(ViewChat)
	if r.Navigate(ViewNews) {
		t.Error("second entry to news must not report first visit")
	}
}

func TestHomeAlreadyVisited(t *testing.T) {
	r := New()
	r.Navigate(ViewNews)
	if r.Navigate(ViewHome) {
		t.Error("home is the initial view, never a first visit")
	}
}

func TestStaleTokenAfterNavigation(t *testing.T) {
	r := New()
	r.Navigate(ViewNews)

	token := r.Issue()
	if r.Stale(token) {
		t.Error("freshly issued token must not be stale")
	}

	r.Navigate(ViewChat)
	if !r.Stale(token) {
		t.Error("token must go stale after navigation")
	}
}

func TestReentryStalesTokens(t *testing.T) {
	r := New()
	r.Navigate(ViewNews)
	token := r.Issue()

	// Re-entering the same view is still a transition.
	r.Navigate(ViewNews)
	if !r.Stale(token) {
		t.Error("re-entry must stale outstanding tokens")
	}
}

func TestViewNames(t *testing.T) {
	names := map[View]string{
		ViewHome:     "home",
		ViewNews:     "news",
		ViewChat:     "chat",
		ViewReport:   "report",
		ViewLinks:    "links",
		ViewSettings: "settings",
	}
	for v, want := range names {
		if v.String() != want {
			t.Errorf("%d.String() = %q, want %q", v, v.String(), want)
		}
	}
}
