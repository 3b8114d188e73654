// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package errmsg classifies raw provider failures into a closed set of
// kinds and maps each kind to one fixed, localized, user-safe message.
// Classification is deterministic and never panics; the first matching
// rule wins, checked in a fixed priority order.
package errmsg
