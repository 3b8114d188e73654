// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists chat history and preferences in a small
// SQLite key-value table. Values are JSON blobs keyed by name, which
// keeps the schema stable while the stored shapes evolve.
package storage
