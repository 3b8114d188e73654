// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"log"
	"strings"

	"github.com/basha-chat/basha-tui/internal/errmsg"
	"github.com/basha-chat/basha-tui/internal/model"
	"github.com/basha-chat/basha-tui/internal/provider"
	"github.com/basha-chat/basha-tui/internal/router"
	"github.com/basha-chat/basha-tui/internal/store"
	"github.com/basha-chat/basha-tui/internal/text"
)

// =============================================================================
// ORCHESTRATOR
// =============================================================================

// Orchestrator runs submissions against the router and keeps the store
// consistent across the whole turn.
type Orchestrator struct {
	store  *store.ChatStore
	router *router.Router
	lang   text.Language

	// onToken fires after each token lands in the store, so the UI can
	// repaint mid-stream.
	onToken func()
}

// New creates an orchestrator.
func New(st *store.ChatStore, rt *router.Router, lang text.Language) *Orchestrator {
	if lang == "" {
		lang = text.LangAmharic
	}
	return &Orchestrator{store: st, router: rt, lang: lang}
}

// SetOnToken registers a repaint hook invoked after each streamed token.
func (o *Orchestrator) SetOnToken(fn func()) {
	o.onToken = fn
}

// Submit runs one chat turn to completion. Blank input and an already
// in-flight submission are silent no-ops. The call blocks until the
// stream finishes; UI callers run it from a goroutine or command.
//
// Whatever happens upstream, the turn ends with the placeholder
// finalized (response text or a localized error message) and the
// loading flag cleared.
func (o *Orchestrator) Submit(ctx context.Context, input, modelID string) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || o.store.IsLoading() {
		return
	}

	prior := o.store.Messages()

	// A session created before this turn may still carry another
	// model; rebind it so the turn and the session agree.
	if sess, ok := o.store.CurrentSession(); ok && sess.ModelID != modelID {
		o.store.UpdateSessionModel(sess.ID, modelID)
	}

	o.store.AppendMessage(model.NewUserMessage(trimmed, modelID))
	o.store.SetInput("")
	o.store.SetLoading(true)
	o.store.AppendMessage(model.NewAssistantPlaceholder(modelID))

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("chat: submission panicked: %v", rec)
			o.store.UpdateLastMessage(errmsg.Localize(errmsg.KindGeneric, o.lang))
		}
		o.store.SetLoading(false)
	}()

	var acc strings.Builder
	var failure string

	o.router.GenerateResponse(ctx, trimmed, modelID, prior, provider.Handlers{
		OnStart: func() {
			o.store.SetLoading(true)
		},
		OnToken: func(tok string) {
			acc.WriteString(tok)
			o.store.AppendToLastMessage(tok)
			if o.onToken != nil {
				o.onToken()
			}
		},
		// The classified detail already streamed as a token; the
		// finalized bubble always carries the fixed generic text.
		OnError: func(_ error) {
			failure = errmsg.Localize(errmsg.KindGeneric, o.lang)
		},
		OnComplete: func() {
			switch {
			case failure != "":
				o.store.UpdateLastMessage(failure)
			case strings.TrimSpace(acc.String()) == "":
				o.store.UpdateLastMessage(errmsg.NoResponse(o.lang))
			default:
				o.store.UpdateLastMessage(acc.String())
			}
		},
	})
}
