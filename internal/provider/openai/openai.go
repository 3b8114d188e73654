// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package openai

import (
	"context"
	"log"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/basha-chat/basha-tui/internal/errmsg"
	"github.com/basha-chat/basha-tui/internal/model"
	"github.com/basha-chat/basha-tui/internal/prompt"
	"github.com/basha-chat/basha-tui/internal/provider"
	"github.com/basha-chat/basha-tui/internal/text"
)

// Generation parameters, matching the product defaults.
const (
	temperature = 0.7
	maxTokens   = 2048
)

// Config holds the adapter configuration.
type Config struct {
	APIKey  string
	BaseURL string // optional, for OpenAI-compatible endpoints
	Lang    text.Language
}

// Adapter implements provider.Adapter for the OpenAI chat completions API.
type Adapter struct {
	client openai.Client
	lang   text.Language
}

// New creates an OpenAI adapter. An empty API key still yields a working
// adapter; requests will fail and degrade to classified messages.
func New(cfg Config) *Adapter {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	lang := cfg.Lang
	if lang == "" {
		lang = text.LangAmharic
	}

	return &Adapter{
		client: openai.NewClient(opts...),
		lang:   lang,
	}
}

// Name implements provider.Adapter.
func (a *Adapter) Name() string { return "openai" }

// Generate performs one non-streaming round trip. Failures degrade to the
// classified localized message.
func (a *Adapter) Generate(ctx context.Context, req provider.Request) string {
	completion, err := a.client.Chat.Completions.New(ctx, a.params(req))
	if err != nil {
		log.Printf("openai: generate failed: %v", err)
		return errmsg.LocalizeError(err, a.lang)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return errmsg.NoResponse(a.lang)
	}
	return completion.Choices[0].Message.Content
}

// GenerateStream streams tokens through h. Completion is signaled exactly
// once; raw errors go to h.OnError for the router to classify.
func (a *Adapter) GenerateStream(ctx context.Context, req provider.Request, h provider.Handlers) {
	h.Start()

	params := a.params(req)
	stream := a.client.Chat.Completions.NewStreaming(ctx, params)

	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		if delta := chunk.Choices[0].Delta.Content; delta != "" {
			h.Token(delta)
		}
	}

	if err := stream.Err(); err != nil {
		log.Printf("openai: stream failed: %v", err)
		h.Error(err)
		h.Complete()
		return
	}

	h.Complete()
}

// params builds the chat completion request: system prompt, prior
// conversation, then the new user message.
func (a *Adapter) params(req provider.Request) openai.ChatCompletionNewParams {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.History)+2)
	msgs = append(msgs, openai.SystemMessage(prompt.System(req.IsCodeQuery)))

	for _, m := range req.History {
		if m.Role == model.RoleUser {
			msgs = append(msgs, openai.UserMessage(m.Content))
		} else {
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		}
	}
	msgs = append(msgs, openai.UserMessage(req.Message))

	return openai.ChatCompletionNewParams{
		Model:       req.ModelID,
		Messages:    msgs,
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
	}
}
