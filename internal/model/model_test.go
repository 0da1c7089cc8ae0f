// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSessionTitleFromFirstUserMessage(t *testing.T) {
	s := NewChatSession()
	s.Append(NewUserMessage("Merhaba"))
	if s.Title != "Merhaba" {
		t.Errorf("Title = %q, want %q", s.Title, "Merhaba")
	}

	// Later messages must not change the title.
	s.Append(NewAssistantMessage("Merhaba, size nasıl yardımcı olabilirim?"))
	s.Append(NewUserMessage("Ekonomi haberlerini sınıflandır"))
	if s.Title != "Merhaba" {
		t.Errorf("Title changed after later messages: %q", s.Title)
	}
}

func TestSessionTitleTruncatesRunes(t *testing.T) {
	s := NewChatSession()
	long := "Bu çok uzun bir mesajdır ve otuz karakterden fazladır"
	s.Append(NewUserMessage(long))

	if !strings.HasSuffix(s.Title, "…") {
		t.Errorf("expected ellipsis suffix, got %q", s.Title)
	}
	// 30 content runes plus the ellipsis.
	if n := utf8.RuneCountInString(s.Title); n != TitleRunes+1 {
		t.Errorf("title rune count = %d, want %d", n, TitleRunes+1)
	}
	want := string([]rune(long)[:TitleRunes]) + "…"
	if s.Title != want {
		t.Errorf("Title = %q, want %q", s.Title, want)
	}
}

func TestSessionTitleIgnoresAssistantMessages(t *testing.T) {
	s := NewChatSession()
	s.Append(NewAssistantMessage("hoş geldiniz"))
	if s.Title != "" {
		t.Errorf("assistant message set title: %q", s.Title)
	}
	s.Append(NewUserMessage("ilk soru"))
	if s.Title != "ilk soru" {
		t.Errorf("Title = %q, want %q", s.Title, "ilk soru")
	}
}

func TestSessionAppendOrder(t *testing.T) {
	s := NewChatSession()
	s.Append(NewUserMessage("bir"))
	s.Append(NewAssistantMessage("iki"))
	s.Append(NewUserMessage("üç"))

	if s.MessageCount() != 3 {
		t.Fatalf("MessageCount = %d, want 3", s.MessageCount())
	}
	got := []string{s.History[0].Content, s.History[1].Content, s.History[2].Content}
	want := []string{"bir", "iki", "üç"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("History[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSessionIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := NewChatSession()
		if s.ID == "" {
			t.Fatal("empty session ID")
		}
		if seen[s.ID] {
			t.Fatalf("duplicate session ID %q", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestSessionClone(t *testing.T) {
	s := NewChatSession()
	s.Append(NewUserMessage("orijinal"))

	clone := s.Clone()
	clone.Append(NewAssistantMessage("kopya"))

	if s.MessageCount() != 1 {
		t.Errorf("clone mutation leaked into original: %d messages", s.MessageCount())
	}
	if clone.MessageCount() != 2 {
		t.Errorf("clone MessageCount = %d, want 2", clone.MessageCount())
	}
	if clone.ID != s.ID {
		t.Errorf("clone ID = %q, want %q", clone.ID, s.ID)
	}
}

func TestDisplayTitlePlaceholder(t *testing.T) {
	s := NewChatSession()
	if s.DisplayTitle() == "" {
		t.Error("empty session should have a placeholder title")
	}
}

func TestCacheTypeValid(t *testing.T) {
	for _, c := range []CacheType{CacheQ4, CacheQ8, CacheF16} {
		if !c.Valid() {
			t.Errorf("%q should be valid", c)
		}
	}
	for _, c := range []CacheType{"", "q2_0", "fp32"} {
		if c.Valid() {
			t.Errorf("%q should be invalid", c)
		}
	}
}

func TestMessagePreview(t *testing.T) {
	m := NewUserMessage("satır bir\nsatır   iki")
	got := m.Preview(50)
	if strings.ContainsAny(got, "\n") {
		t.Errorf("preview contains newline: %q", got)
	}
	if got != "satır bir satır iki" {
		t.Errorf("Preview = %q", got)
	}
}
