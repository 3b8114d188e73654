// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package text holds the user-facing strings for the basha TUI in Amharic
// and English. The chat assistant always answers in Amharic; the chrome
// around it follows the configured interface language.
package text
