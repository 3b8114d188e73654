// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the chat TUI.
// A Theme bundles every lipgloss style the views need, built from one
// of two palettes (dark, light) plus the terminal's color capability.
package styles
