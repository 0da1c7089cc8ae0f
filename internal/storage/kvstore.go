// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/jeranaias/newsdesk-tui/internal/model"
	"github.com/jeranaias/newsdesk-tui/internal/util"
)

// SessionsKey is the single storage key under which the whole session set
// is persisted. The value is one JSON document holding every session plus
// the active-session pointer.
const SessionsKey = "newsdesk_chat_sessions"

// =============================================================================
// SESSION SNAPSHOT
// =============================================================================

// SessionSnapshot is the persisted shape of the session store: all sessions
// newest first and the ID of the active one.
type SessionSnapshot struct {
	ActiveID string               `json:"active_id"`
	Sessions []*model.ChatSession `json:"sessions"`
	SavedAt  time.Time            `json:"saved_at"`
}

// =============================================================================
// KV STORE
// =============================================================================

// KVStore persists snapshots as JSON files keyed by name, one file per key.
type KVStore struct {
	// BaseDir is the directory for storing data files.
	// Default: ~/.newsdesk/data/
	BaseDir string
}

// NewKVStore creates a store rooted at the default data directory.
func NewKVStore() (*KVStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	baseDir := filepath.Join(homeDir, ".newsdesk", "data")

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &KVStore{BaseDir: baseDir}, nil
}

// NewKVStoreWithDir creates a store with a custom directory.
func NewKVStoreWithDir(baseDir string) (*KVStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	return &KVStore{BaseDir: baseDir}, nil
}

// =============================================================================
// SNAPSHOT OPERATIONS
// =============================================================================

// SaveSessions writes the session snapshot under SessionsKey.
func (s *KVStore) SaveSessions(snap *SessionSnapshot) error {
	snap.SavedAt = time.Now()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	// RELIABILITY: Atomic write with fsync prevents data loss on crash
	return util.AtomicWriteFile(s.filePath(SessionsKey), data, 0644)
}

// LoadSessions reads the session snapshot. A missing file is not an error:
// it returns an empty snapshot for first launch.
func (s *KVStore) LoadSessions() (*SessionSnapshot, error) {
	data, err := os.ReadFile(s.filePath(SessionsKey))
	if err != nil {
		if os.IsNotExist(err) {
			return &SessionSnapshot{Sessions: []*model.ChatSession{}}, nil
		}
		return nil, err
	}

	var snap SessionSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// Corrupted snapshot: start fresh rather than blocking startup.
		return &SessionSnapshot{Sessions: []*model.ChatSession{}}, nil
	}
	if snap.Sessions == nil {
		snap.Sessions = []*model.ChatSession{}
	}

	return &snap, nil
}

// Clear removes the persisted snapshot.
func (s *KVStore) Clear() error {
	err := os.Remove(s.filePath(SessionsKey))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// filePath returns the data file path for a storage key.
func (s *KVStore) filePath(key string) string {
	return filepath.Join(s.BaseDir, key+".json")
}
