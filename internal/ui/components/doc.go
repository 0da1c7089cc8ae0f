// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides reusable UI widgets: the adaptive status bar
// with its backend health indicator, and transient toast notifications.
package components
