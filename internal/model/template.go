// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// PROMPT TEMPLATES
// =============================================================================

// ToolField describes one output field of a classification schema.
type ToolField struct {
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Enum        []string `json:"enum,omitempty"`
}

// Template is a prompt template owned by the backend. The TUI caches a
// read-only copy for the selection list and holds at most one selected
// reference by id.
type Template struct {
	ID          string               `json:"id,omitempty"`
	Name        string               `json:"name"`
	Model       string               `json:"model"`
	PromptDesc  string               `json:"prompt_desc"`
	Tools       map[string]ToolField `json:"tools"`
	KeepAlive   string               `json:"keep_alive"`
	NumCtx      int                  `json:"num_ctx"`
	Temperature float64              `json:"temperature"`
}

// =============================================================================
// KV CACHE SETTINGS
// =============================================================================

// CacheType is the backend KV cache quantization type.
type CacheType string

const (
	CacheQ4  CacheType = "q4_0"
	CacheQ8  CacheType = "q8_0"
	CacheF16 CacheType = "f16"
)

// Valid reports whether the cache type is one the backend accepts.
func (c CacheType) Valid() bool {
	switch c {
	case CacheQ4, CacheQ8, CacheF16:
		return true
	}
	return false
}

// CacheSettings are the global inference cache settings surfaced in the
// settings view. The backend owns them; the TUI only reads and updates.
type CacheSettings struct {
	CacheType        CacheType `json:"kv_cache_type"`
	NumParallel      int       `json:"num_parallel"`
	DefaultKeepAlive string    `json:"default_keep_alive"`
}

// DefaultCacheSettings mirrors the backend defaults.
func DefaultCacheSettings() CacheSettings {
	return CacheSettings{
		CacheType:        CacheQ8,
		NumParallel:      4,
		DefaultKeepAlive: "10m",
	}
}
