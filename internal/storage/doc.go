// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage implements the persistence layer.
//
// Chat sessions are persisted as one JSON document under a single fixed
// key, written atomically so a crash mid-write never corrupts the file.
// Link analysis results go to an append-only SQLite archive so exports can
// include the full history while the UI only shows the recent tail.
package storage
