// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package prompt selects the system prompt sent ahead of every provider
// request. A keyword classifier decides between the coding prompt and the
// default chat persona; the chosen prompt is never shown to the user.
package prompt
