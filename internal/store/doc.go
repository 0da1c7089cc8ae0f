// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store holds the mutable application state: the chat session
// collection with its active-session reference, and the link analysis
// history.
//
// Each concern gets its own store object with a narrow mutation interface,
// constructed once in main and passed by reference to the components that
// need it. Session mutations write the full collection through to the
// persistence layer before returning.
package store
