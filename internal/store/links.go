// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"sync"

	"github.com/jeranaias/newsdesk-tui/internal/model"
)

// DisplayCap is how many analysis records the links view shows. Exports
// always include the full history.
const DisplayCap = 10

// =============================================================================
// LINK PERSISTER
// =============================================================================

// LinkPersister is the append-only archive behind the link history.
// *storage.LinkArchive satisfies this.
type LinkPersister interface {
	Insert(rec model.LinkAnalysis) error
	All() ([]model.LinkAnalysis, error)
}

// =============================================================================
// LINK HISTORY
// =============================================================================

// LinkHistory holds the ordered link analysis results, newest first.
// Records are immutable once added.
type LinkHistory struct {
	mu      sync.Mutex
	records []model.LinkAnalysis // newest first
	archive LinkPersister
}

// NewLinkHistory creates an empty history backed by the given archive.
// A nil archive keeps the history in memory only.
func NewLinkHistory(archive LinkPersister) *LinkHistory {
	return &LinkHistory{archive: archive}
}

// Load hydrates the history from the archive.
func (h *LinkHistory) Load() error {
	if h.archive == nil {
		return nil
	}

	records, err := h.archive.All()
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = records
	return nil
}

// Add prepends a record and appends it to the archive.
func (h *LinkHistory) Add(rec model.LinkAnalysis) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append([]model.LinkAnalysis{rec}, h.records...)

	if h.archive == nil {
		return nil
	}
	return h.archive.Insert(rec)
}

// Recent returns up to DisplayCap records, newest first.
func (h *LinkHistory) Recent() []model.LinkAnalysis {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := len(h.records)
	if n > DisplayCap {
		n = DisplayCap
	}
	out := make([]model.LinkAnalysis, n)
	copy(out, h.records[:n])
	return out
}

// All returns the full uncapped history, newest first.
func (h *LinkHistory) All() []model.LinkAnalysis {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]model.LinkAnalysis, len(h.records))
	copy(out, h.records)
	return out
}

// Count returns the number of records.
func (h *LinkHistory) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records)
}
