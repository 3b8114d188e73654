// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the Bubble Tea chat view: message transcript,
// input area, session panel, and the glue between key presses and the
// submission orchestrator.
package chat
