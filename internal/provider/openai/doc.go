// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package openai adapts the provider contract to the OpenAI chat
// completions API. Streaming is real: tokens arrive over the SDK's SSE
// stream as the model produces them.
package openai
