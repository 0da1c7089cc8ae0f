// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package report holds the uploaded report file set and its derived
// preview snapshot.
package report

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jeranaias/newsdesk-tui/internal/api"
)

// =============================================================================
// LAYOUT
// =============================================================================

// Layout selects the visual variant of the final export. It is independent
// of the file set: changing it never invalidates an existing preview.
type Layout string

const (
	LayoutStandard Layout = "standard"
	LayoutModern   Layout = "modern"
)

// =============================================================================
// PREVIEWER
// =============================================================================

// Previewer performs the preview exchange over a file set. *api.Client
// satisfies this; tests substitute a stub.
type Previewer interface {
	PreviewReport(ctx context.Context, files []api.ReportFile) (*api.PreviewData, error)
}

// =============================================================================
// AGGREGATOR
// =============================================================================

// Aggregator owns the ordered, deduplicated-by-name report file set plus
// the derived preview snapshot.
//
// The snapshot is all-or-nothing: it is replaced atomically on a
// successful preview, set to nil whenever the file set changes, and never
// partially updated. A failed preview leaves the old snapshot untouched.
type Aggregator struct {
	mu sync.Mutex

	files     []api.ReportFile
	version   uint64 // bumped on every file set change; stales in-flight previews
	preview   *api.PreviewData
	layout    Layout
	previewer Previewer
}

// acceptedExtensions are the spreadsheet formats the backend can process.
var acceptedExtensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
	".csv":  true,
}

// NewAggregator creates an empty aggregator with the standard layout.
func NewAggregator(p Previewer) *Aggregator {
	return &Aggregator{
		layout:    LayoutStandard,
		previewer: p,
	}
}

// =============================================================================
// FILE SET MUTATIONS
// =============================================================================

// AddFiles filters the given files to accepted extensions, drops any whose
// name is already in the set (first wins), and appends the rest. Returns
// how many files were actually added. Any addition invalidates the preview.
func (a *Aggregator) AddFiles(files []api.ReportFile) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	added := 0
	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f.Name))
		if !acceptedExtensions[ext] {
			continue
		}
		if a.hasNameLocked(f.Name) {
			continue
		}
		a.files = append(a.files, f)
		added++
	}

	if added > 0 {
		a.version++
		a.preview = nil
	}
	return added
}

// RemoveFile removes the file at index and invalidates any existing
// preview. An out-of-range index is a programming error surfaced as an
// index error.
func (a *Aggregator) RemoveFile(index int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if index < 0 || index >= len(a.files) {
		return api.NewIndexError("report file index out of range")
	}

	a.files = append(a.files[:index], a.files[index+1:]...)
	a.version++
	a.preview = nil
	return nil
}

// =============================================================================
// PREVIEW
// =============================================================================

// Preview performs one preview exchange over the full current file set and
// replaces the snapshot atomically. An empty file set fails validation
// without an exchange. On exchange failure the previous snapshot is
// retained unchanged and the error is returned for display. If the file
// set changed while the exchange was in flight, the result describes a set
// that no longer exists and is discarded instead of installed.
func (a *Aggregator) Preview(ctx context.Context) (*api.PreviewData, error) {
	a.mu.Lock()
	if len(a.files) == 0 {
		a.mu.Unlock()
		return nil, api.NewValidationError("no report files uploaded")
	}
	files := make([]api.ReportFile, len(a.files))
	copy(files, a.files)
	version := a.version
	a.mu.Unlock()

	// Exchange runs outside the lock; the old snapshot stays visible until
	// the new one is ready.
	data, err := a.previewer.PreviewReport(ctx, files)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.version != version {
		return nil, api.NewValidationError("report file set changed during preview")
	}
	a.preview = data
	return data, nil
}

// Reset clears the preview snapshot. The file set and layout selection are
// retained.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.preview = nil
}

// =============================================================================
// READ ACCESS
// =============================================================================

// Files returns a copy of the current file set, in upload order.
func (a *Aggregator) Files() []api.ReportFile {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]api.ReportFile, len(a.files))
	copy(out, a.files)
	return out
}

// FileCount returns the number of files in the set.
func (a *Aggregator) FileCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.files)
}

// Snapshot returns the current preview snapshot, or nil when none exists.
func (a *Aggregator) Snapshot() *api.PreviewData {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.preview
}

// SetLayout selects the export layout.
func (a *Aggregator) SetLayout(l Layout) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.layout = l
}

// Layout returns the selected export layout.
func (a *Aggregator) Layout() Layout {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.layout
}

// hasNameLocked reports whether a file with this name is already in the
// set. Caller holds mu.
func (a *Aggregator) hasNameLocked(name string) bool {
	for _, f := range a.files {
		if f.Name == name {
			return true
		}
	}
	return false
}
