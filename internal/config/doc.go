// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads and saves the application configuration.
//
// Provider credentials and endpoints live in ~/.basha/config.toml with
// environment variable overrides, so keys never need to be written to
// disk. User preferences that change at runtime (theme, font size,
// language, selected model) are a separate Settings value persisted by
// the storage layer.
package config
