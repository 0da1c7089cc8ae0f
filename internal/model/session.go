// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/newsdesk-tui/internal/util"
)

// TitleRunes is the number of runes of the first user message used for the
// auto-derived session title. Longer messages are truncated with an ellipsis.
const TitleRunes = 30

// =============================================================================
// CHAT SESSION
// =============================================================================

// ChatSession holds one continuous conversation with the model.
//
// The title is derived from the first user message and never changes
// afterwards, even when more messages arrive.
type ChatSession struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	History   []Message `json:"history"`
	CreatedAt time.Time `json:"timestamp"`
}

// NewChatSession creates an empty session with a creation-time unique ID.
func NewChatSession() *ChatSession {
	return &ChatSession{
		ID:        uuid.NewString(),
		History:   make([]Message, 0),
		CreatedAt: time.Now(),
	}
}

// Append adds a message to the session log. The first user message also
// fixes the session title.
func (s *ChatSession) Append(msg Message) {
	s.History = append(s.History, msg)
	if s.Title == "" && msg.Role == RoleUser {
		s.Title = util.TruncateRunes(util.CollapseSpace(msg.Content), TitleRunes)
	}
}

// MessageCount returns the number of messages in the session.
func (s *ChatSession) MessageCount() int {
	return len(s.History)
}

// IsEmpty returns true if the session has no messages.
func (s *ChatSession) IsEmpty() bool {
	return len(s.History) == 0
}

// DisplayTitle returns the derived title, or a placeholder for sessions
// that have no user message yet.
func (s *ChatSession) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return "Yeni sohbet"
}

// Clone returns a deep copy of the session. Messages are value types, so
// copying the slice copies the log.
func (s *ChatSession) Clone() *ChatSession {
	clone := &ChatSession{
		ID:        s.ID,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		History:   make([]Message, len(s.History)),
	}
	copy(clone.History, s.History)
	return clone
}
