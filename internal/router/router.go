// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/basha-chat/basha-tui/internal/errmsg"
	"github.com/basha-chat/basha-tui/internal/model"
	"github.com/basha-chat/basha-tui/internal/prompt"
	"github.com/basha-chat/basha-tui/internal/provider"
	"github.com/basha-chat/basha-tui/internal/text"
)

// =============================================================================
// PROVIDER RESOLUTION
// =============================================================================

// Provider identifies a configured upstream service.
type Provider int

const (
	ProviderOpenAI Provider = iota
	ProviderGemini
)

// String returns the provider name for logging.
func (p Provider) String() string {
	switch p {
	case ProviderOpenAI:
		return "openai"
	case ProviderGemini:
		return "gemini"
	default:
		return "unknown"
	}
}

// prefixes maps a model ID prefix to its provider. Matching is
// case-sensitive and checked in declaration order.
var prefixes = []struct {
	prefix   string
	provider Provider
}{
	{"gpt", ProviderOpenAI},
	{"gemini", ProviderGemini},
}

// Resolve maps a model ID to the provider that serves it. Unrecognized
// prefixes wrap errmsg.ErrUnknownModel so callers can classify.
func Resolve(modelID string) (Provider, error) {
	for _, p := range prefixes {
		if strings.HasPrefix(modelID, p.prefix) {
			return p.provider, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", errmsg.ErrUnknownModel, modelID)
}

// =============================================================================
// ROUTER
// =============================================================================

// Router owns the adapter for each provider and fans requests out by
// model ID prefix.
type Router struct {
	mu       sync.RWMutex
	adapters map[Provider]provider.Adapter
	lang     text.Language
}

// New creates a router over the two configured adapters.
func New(openAI, gemini provider.Adapter, lang text.Language) *Router {
	if lang == "" {
		lang = text.LangAmharic
	}
	return &Router{
		adapters: map[Provider]provider.Adapter{
			ProviderOpenAI: openAI,
			ProviderGemini: gemini,
		},
		lang: lang,
	}
}

// SetAdapter replaces the adapter for a provider at runtime, typically
// after a config reload changed credentials or endpoints.
func (r *Router) SetAdapter(p Provider, a provider.Adapter) {
	r.mu.Lock()
	r.adapters[p] = a
	r.mu.Unlock()
}

// GenerateResponse routes one chat turn. When any handler is set the call
// streams and always returns ""; otherwise it blocks and returns the
// response text. In both modes every failure is absorbed: the caller
// receives localized text instead of a Go error, and streaming callers
// are guaranteed exactly one completion signal.
func (r *Router) GenerateResponse(ctx context.Context, message, modelID string, prior []model.Message, h provider.Handlers) string {
	req := provider.Request{
		Message:     message,
		ModelID:     modelID,
		History:     historyFor(prior, modelID),
		IsCodeQuery: prompt.IsCodeRequest(message),
	}

	streaming := h.OnStart != nil || h.OnToken != nil || h.OnComplete != nil || h.OnError != nil

	prov, err := Resolve(modelID)
	if err != nil {
		log.Printf("router: %v", err)
		if streaming {
			h.Start()
			h.Token(errmsg.LocalizeError(err, r.lang))
			h.Error(err)
			h.Complete()
			return ""
		}
		return errmsg.LocalizeError(err, r.lang)
	}

	r.mu.RLock()
	adapter := r.adapters[prov]
	r.mu.RUnlock()

	if !streaming {
		return r.generate(ctx, adapter, req)
	}
	r.stream(ctx, adapter, req, h)
	return ""
}

// generate runs the batch path. Adapters already degrade their own
// failures to localized text; the recover guards against a misbehaving
// adapter implementation.
func (r *Router) generate(ctx context.Context, a provider.Adapter, req provider.Request) (out string) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("router: provider %s panicked: %v", a.Name(), rec)
			out = errmsg.Localize(errmsg.KindGeneric, r.lang)
		}
	}()
	return a.Generate(ctx, req)
}

// stream runs the streaming path. Caller handlers are wrapped so that a
// provider error first lands as a displayable localized token, then as
// the raw error, and completion fires exactly once even if the adapter
// forgets to signal it or panics mid-stream.
func (r *Router) stream(ctx context.Context, a provider.Adapter, req provider.Request, h provider.Handlers) {
	completed := false
	complete := func() {
		if completed {
			return
		}
		completed = true
		h.Complete()
	}

	defer func() {
		if rec := recover(); rec != nil {
			err := fmt.Errorf("provider %s panicked: %v", a.Name(), rec)
			log.Printf("router: %v", err)
			if !completed {
				h.Token(errmsg.Localize(errmsg.KindGeneric, r.lang))
				h.Error(err)
				complete()
			}
		}
	}()

	wrapped := provider.Handlers{
		OnStart: h.Start,
		OnToken: h.Token,
		OnError: func(err error) {
			log.Printf("router: provider %s: %v", a.Name(), err)
			h.Token(errmsg.LocalizeError(err, r.lang))
			h.Error(err)
		},
		OnComplete: complete,
	}

	a.GenerateStream(ctx, req, wrapped)
	complete()
}

// historyFor keeps only finished turns that belong to the selected
// model, so switching models mid-session does not leak another model's
// conversation into the prompt.
func historyFor(prior []model.Message, modelID string) []model.Message {
	out := make([]model.Message, 0, len(prior))
	for _, m := range prior {
		if m.ModelID != modelID || m.IsStreaming || m.IsEmpty() {
			continue
		}
		out = append(out, m)
	}
	return out
}
