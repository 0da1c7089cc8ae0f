// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "github.com/jeranaias/newsdesk-tui/internal/util"

// =============================================================================
// ROLES
// =============================================================================

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// =============================================================================
// MESSAGE
// =============================================================================

// Message is a single chat message. Messages are immutable once appended to
// a session: ordering is append order and no message is ever removed
// individually.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates an assistant message.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// Preview returns a one-line preview of the message content, truncated to
// maxRunes characters.
func (m Message) Preview(maxRunes int) string {
	return util.TruncateRunes(util.CollapseSpace(m.Content), maxRunes)
}
