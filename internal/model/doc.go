// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the domain entities of newsdesk-tui: chat sessions
// and their messages, cached prompt templates, KV cache settings, and link
// analysis records.
//
// Entities here carry no behavior beyond construction and derived display
// fields; the mutation rules live in internal/store.
package model
