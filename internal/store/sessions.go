// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"strings"
	"sync"

	"github.com/jeranaias/newsdesk-tui/internal/api"
	"github.com/jeranaias/newsdesk-tui/internal/model"
	"github.com/jeranaias/newsdesk-tui/internal/storage"
)

// =============================================================================
// PERSISTER
// =============================================================================

// Persister writes and reads the full session snapshot. *storage.KVStore
// satisfies this; tests substitute an in-memory implementation.
type Persister interface {
	SaveSessions(snap *storage.SessionSnapshot) error
	LoadSessions() (*storage.SessionSnapshot, error)
}

// =============================================================================
// SESSION STORE
// =============================================================================

// SessionStore owns the ordered session collection and the active-session
// reference.
//
// Sessions are kept newest first. At most one session is active at a time;
// the active reference is an id, not ownership: deleting the referenced
// session reassigns it to the new head, or to none when the collection
// empties.
//
// Every mutation writes the full collection through to the persister
// before returning, so a restart never loses an already-displayed message.
type SessionStore struct {
	mu sync.Mutex

	sessions  []*model.ChatSession // newest first
	activeID  string
	persister Persister
}

// NewSessionStore creates an empty store backed by the given persister.
func NewSessionStore(p Persister) *SessionStore {
	return &SessionStore{
		sessions:  make([]*model.ChatSession, 0),
		persister: p,
	}
}

// Load hydrates the store from the persister. A missing snapshot leaves
// the store empty. An active id that no longer resolves to a session is
// cleared rather than kept dangling.
func (s *SessionStore) Load() error {
	snap, err := s.persister.LoadSessions()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = snap.Sessions
	s.activeID = ""
	for _, sess := range s.sessions {
		if sess.ID == snap.ActiveID {
			s.activeID = snap.ActiveID
			break
		}
	}

	return nil
}

// =============================================================================
// READ ACCESS
// =============================================================================

// Sessions returns the session list, newest first. The slice is a copy;
// the sessions themselves are shared.
func (s *SessionStore) Sessions() []*model.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.ChatSession, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// ActiveID returns the active session id, or "" when none is active.
func (s *SessionStore) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// Active returns the active session, or nil when none is active.
func (s *SessionStore) Active() *model.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(s.activeID)
}

// Count returns the number of sessions.
func (s *SessionStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// =============================================================================
// COLLECTION MUTATIONS
// =============================================================================

// CreateSession inserts a new empty session at the head of the collection,
// makes it active, persists, and returns its id.
func (s *SessionStore) CreateSession() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := model.NewChatSession()
	s.sessions = append([]*model.ChatSession{sess}, s.sessions...)
	s.activeID = sess.ID

	return sess.ID, s.persistLocked()
}

// SwitchSession sets the active reference. An id not present in the
// collection is a benign race (deleted concurrently with selection), so
// the call is a silent no-op rather than an error.
func (s *SessionStore) SwitchSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findLocked(id) == nil {
		return
	}
	s.activeID = id
}

// DeleteSession removes the matching session and persists. When the active
// session is deleted, the new head becomes active, or none when the
// collection is now empty. Unknown ids are a no-op.
func (s *SessionStore) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, sess := range s.sessions {
		if sess.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	s.sessions = append(s.sessions[:idx], s.sessions[idx+1:]...)

	if s.activeID == id {
		if len(s.sessions) > 0 {
			s.activeID = s.sessions[0].ID
		} else {
			s.activeID = ""
		}
	}

	return s.persistLocked()
}

// =============================================================================
// MESSAGE EXCHANGE
// =============================================================================

// BeginExchange validates and appends a user message to the active session,
// creating one implicitly when none is active, then persists.
//
// It returns the session id the message landed in and the history as it was
// before the append, which is exactly the payload the chat exchange needs.
// A text that trims to empty fails validation without touching the
// collection.
func (s *SessionStore) BeginExchange(text string) (string, []model.Message, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil, api.NewValidationError("message is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.findLocked(s.activeID)
	if sess == nil {
		sess = model.NewChatSession()
		s.sessions = append([]*model.ChatSession{sess}, s.sessions...)
		s.activeID = sess.ID
	}

	history := make([]model.Message, len(sess.History))
	copy(history, sess.History)

	sess.Append(model.NewUserMessage(text))

	return sess.ID, history, s.persistLocked()
}

// CompleteExchange appends the assistant response to the session the
// exchange started in and persists. The session is addressed by id, not by
// the active reference: the user may have switched or deleted sessions
// while the exchange was in flight. A deleted session makes this a no-op.
//
// On a failed exchange the caller simply never calls CompleteExchange; the
// user message stays appended and the session is left consistent but
// unanswered.
func (s *SessionStore) CompleteExchange(sessionID, response string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.findLocked(sessionID)
	if sess == nil {
		return nil
	}

	sess.Append(model.NewAssistantMessage(response))
	return s.persistLocked()
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// findLocked returns the session with the given id, or nil. Caller holds mu.
func (s *SessionStore) findLocked(id string) *model.ChatSession {
	if id == "" {
		return nil
	}
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess
		}
	}
	return nil
}

// persistLocked writes the full collection through. Caller holds mu.
func (s *SessionStore) persistLocked() error {
	return s.persister.SaveSessions(&storage.SessionSnapshot{
		ActiveID: s.activeID,
		Sessions: s.sessions,
	})
}
