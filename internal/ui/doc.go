// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui is the bubbletea front end: one root model, one sub-model
// per view, and typed messages for every completed backend exchange.
//
// State lives in the stores (store, report); the view models here only
// hold presentation state and translate keystrokes into store calls and
// backend commands. Results that arrive after the user navigated away
// are discarded via router generation tokens.
package ui
