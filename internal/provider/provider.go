// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package provider

import (
	"context"

	"github.com/basha-chat/basha-tui/internal/model"
)

// Request carries everything an adapter needs for one generation:
// the new user message, the target model, the prior conversation
// (already filtered to this model by the router), and whether the
// coding system prompt applies.
type Request struct {
	Message     string
	ModelID     string
	History     []model.Message
	IsCodeQuery bool
}

// Adapter is the boundary object translating the generate/stream contract
// into one remote service's protocol.
//
// Generate performs a single round trip and returns the response text. It
// never fails loudly: any error degrades to the classified, localized
// message so the non-streaming path needs no separate error rendering.
//
// GenerateStream calls h.OnStart once before the request, h.OnToken for
// each increment of text in order, then signals completion exactly once:
// h.OnComplete on success, or h.OnError with the raw error followed by
// h.OnComplete on failure. Adapters without true incremental delivery
// fabricate the stream by chunking the full response with fixed delays.
type Adapter interface {
	Name() string
	Generate(ctx context.Context, req Request) string
	GenerateStream(ctx context.Context, req Request, h Handlers)
}
