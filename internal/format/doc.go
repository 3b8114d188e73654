// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package format post-processes provider output that arrives as plain
// text: code-looking regions are wrapped in markdown fences so the
// renderer can highlight them.
package format
