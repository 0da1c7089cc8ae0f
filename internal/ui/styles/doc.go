// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles defines the adaptive color palette and the shared Lip
// Gloss styles used across the newsdesk views. All colors use AdaptiveColor
// for automatic light/dark terminal detection.
package styles
