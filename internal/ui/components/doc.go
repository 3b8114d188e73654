// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the rendering pieces of the chat view:
// message bubbles, markdown rendering, and highlighted code blocks.
package components
