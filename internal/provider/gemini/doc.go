// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gemini adapts the provider contract to the Google Generative
// Language REST API. The API is called once per request; streaming is
// simulated by chunking the full response at a fixed rate, which is
// indistinguishable from real token streaming for downstream consumers.
package gemini
