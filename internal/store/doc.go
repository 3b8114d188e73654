// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store holds the in-memory chat state: the session list, the
// active session's live messages, the draft input, and the loading flag.
//
// All state lives behind one mutex and accessors hand out copies, so UI
// code and streaming callbacks can touch the store from any goroutine.
// Mutations that change durable state fire a change callback after the
// lock is released; persistence hangs off that callback.
package store
