// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers for newsdesk-tui:
// rune-safe string truncation and padding, and crash-safe atomic
// file writes used by the persistence layer.
package util
