// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat orchestrates one submission: guard checks, store
// bookkeeping on both sides of the turn, and driving the router's token
// stream into the store.
package chat
