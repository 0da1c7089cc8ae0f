// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// LINK ANALYSIS
// =============================================================================

// LinkAnalysis is one immutable URL analysis result. Records are kept
// newest first; the UI shows the most recent ten, exports include all.
type LinkAnalysis struct {
	ID              string    `json:"id"`
	URL             string    `json:"url"`
	Domain          string    `json:"domain"`
	Title           string    `json:"title"`
	Language        string    `json:"language"`
	ContentType     string    `json:"content_type"`
	City            string    `json:"city"`
	Scope           string    `json:"scope"`
	MonthlyVisitors string    `json:"monthly_visitors"`
	Confidence      float64   `json:"confidence"`
	AnalyzedAt      time.Time `json:"analyzed_at"`
}

// NewLinkAnalysis stamps a result record with an ID and analysis time.
func NewLinkAnalysis(url string) LinkAnalysis {
	return LinkAnalysis{
		ID:         uuid.NewString(),
		URL:        url,
		AnalyzedAt: time.Now(),
	}
}
