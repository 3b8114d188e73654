// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package router dispatches chat requests to the provider adapter that
// owns the selected model.
//
// Routing is by model ID prefix: IDs beginning with "gpt" go to the
// OpenAI adapter, IDs beginning with "gemini" go to the Gemini adapter.
// An unrecognized prefix is an error condition, but the router never
// returns a Go error to its caller: failures surface as localized text
// on the batch path and as a final token plus a raw error on the
// streaming handlers, always followed by exactly one completion signal.
package router
