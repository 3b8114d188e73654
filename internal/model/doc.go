// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat sessions and
// messages. A session owns an append-only, ordered message list; only the
// trailing message of the active session is ever updated in place, and
// only while it is streaming.
package model
