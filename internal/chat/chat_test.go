// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"testing"

	"github.com/basha-chat/basha-tui/internal/errmsg"
	"github.com/basha-chat/basha-tui/internal/model"
	"github.com/basha-chat/basha-tui/internal/provider"
	"github.com/basha-chat/basha-tui/internal/router"
	"github.com/basha-chat/basha-tui/internal/store"
	"github.com/basha-chat/basha-tui/internal/text"
)

// scriptedAdapter streams a fixed reply or error.
type scriptedAdapter struct {
	name    string
	tokens  []string
	err     error
	lastReq provider.Request
	calls   int

	beforeStart func()
	afterStart  func()
}

func (a *scriptedAdapter) Name() string { return a.name }

func (a *scriptedAdapter) Generate(ctx context.Context, req provider.Request) string {
	a.lastReq = req
	a.calls++
	var out string
	for _, t := range a.tokens {
		out += t
	}
	return out
}

func (a *scriptedAdapter) GenerateStream(ctx context.Context, req provider.Request, h provider.Handlers) {
	a.lastReq = req
	a.calls++
	if a.beforeStart != nil {
		a.beforeStart()
	}
	h.Start()
	if a.afterStart != nil {
		a.afterStart()
	}
	if a.err != nil {
		h.Error(a.err)
		h.Complete()
		return
	}
	for _, t := range a.tokens {
		h.Token(t)
	}
	h.Complete()
}

func newHarness(oa, gm *scriptedAdapter) (*Orchestrator, *store.ChatStore) {
	st := store.New()
	rt := router.New(oa, gm, text.LangAmharic)
	return New(st, rt, text.LangAmharic), st
}

func TestSubmit_HappyPath(t *testing.T) {
	oa := &scriptedAdapter{name: "openai", tokens: []string{"ሰላም", " ለዓለም"}}
	o, st := newHarness(oa, &scriptedAdapter{name: "gemini"})
	st.SetInput("ሰላም")

	o.Submit(context.Background(), "ሰላም", "gpt-4o-mini")

	msgs := st.Messages()
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want user + assistant", len(msgs))
	}
	if msgs[0].Role != model.RoleUser || msgs[0].Content != "ሰላም" {
		t.Errorf("user message = %+v", msgs[0])
	}
	if msgs[1].Role != model.RoleAssistant || msgs[1].Content != "ሰላም ለዓለም" {
		t.Errorf("assistant message = %+v", msgs[1])
	}
	if msgs[1].IsStreaming {
		t.Error("assistant message should be finalized")
	}
	if st.IsLoading() {
		t.Error("loading should be cleared")
	}
	if st.Input() != "" {
		t.Error("input should be cleared on submit")
	}

	sess, ok := st.CurrentSession()
	if !ok || len(sess.Messages) != 2 {
		t.Error("both turns should be written back to the session")
	}
}

func TestSubmit_BlankInputIsNoOp(t *testing.T) {
	oa := &scriptedAdapter{name: "openai", tokens: []string{"x"}}
	o, st := newHarness(oa, &scriptedAdapter{name: "gemini"})

	o.Submit(context.Background(), "   ", "gpt-4o-mini")

	if oa.calls != 0 {
		t.Error("blank input should not reach the router")
	}
	if len(st.Messages()) != 0 || len(st.Sessions()) != 0 {
		t.Error("blank input should not touch the store")
	}
}

func TestSubmit_WhileLoadingIsNoOp(t *testing.T) {
	oa := &scriptedAdapter{name: "openai", tokens: []string{"x"}}
	o, st := newHarness(oa, &scriptedAdapter{name: "gemini"})
	st.SetLoading(true)

	o.Submit(context.Background(), "hello", "gpt-4o-mini")

	if oa.calls != 0 {
		t.Error("in-flight guard should block the second submission")
	}
}

func TestSubmit_ErrorFinalizesWithGenericMessage(t *testing.T) {
	oa := &scriptedAdapter{name: "openai", err: &errmsg.APIError{Status: 429, Message: "slow down"}}
	o, st := newHarness(oa, &scriptedAdapter{name: "gemini"})

	o.Submit(context.Background(), "hello", "gpt-4o-mini")

	msgs := st.Messages()
	final := msgs[len(msgs)-1]
	if final.Content != errmsg.Localize(errmsg.KindGeneric, text.LangAmharic) {
		t.Errorf("final content = %q, want the fixed generic text", final.Content)
	}
	if final.IsStreaming {
		t.Error("errored placeholder should be finalized")
	}
	if st.IsLoading() {
		t.Error("loading should be cleared after an error")
	}
}

func TestSubmit_UnknownModelFinalizesWithGenericMessage(t *testing.T) {
	o, st := newHarness(&scriptedAdapter{name: "openai"}, &scriptedAdapter{name: "gemini"})

	o.Submit(context.Background(), "hello", "claude-3")

	msgs := st.Messages()
	final := msgs[len(msgs)-1]
	if final.Content != errmsg.Localize(errmsg.KindGeneric, text.LangAmharic) {
		t.Errorf("final content = %q", final.Content)
	}
	if st.IsLoading() {
		t.Error("loading should be cleared")
	}
}

func TestSubmit_EmptyStreamGetsNoResponseText(t *testing.T) {
	oa := &scriptedAdapter{name: "openai", tokens: nil}
	o, st := newHarness(oa, &scriptedAdapter{name: "gemini"})

	o.Submit(context.Background(), "hello", "gpt-4o-mini")

	msgs := st.Messages()
	final := msgs[len(msgs)-1]
	if final.Content != errmsg.NoResponse(text.LangAmharic) {
		t.Errorf("final content = %q", final.Content)
	}
}

func TestSubmit_RebindsSessionModel(t *testing.T) {
	oa := &scriptedAdapter{name: "openai", tokens: []string{"ok"}}
	gm := &scriptedAdapter{name: "gemini", tokens: []string{"ok"}}
	o, st := newHarness(oa, gm)

	st.CreateSession("gpt-4o-mini")
	o.Submit(context.Background(), "hello", "gemini-pro")

	sess, _ := st.CurrentSession()
	if sess.ModelID != "gemini-pro" {
		t.Errorf("session model = %q, want rebind to gemini-pro", sess.ModelID)
	}
	if gm.calls != 1 || oa.calls != 0 {
		t.Error("turn should route to the newly selected model")
	}
}

func TestSubmit_HistoryExcludesCurrentTurn(t *testing.T) {
	oa := &scriptedAdapter{name: "openai", tokens: []string{"a2"}}
	o, _ := newHarness(oa, &scriptedAdapter{name: "gemini"})

	o.Submit(context.Background(), "q1", "gpt-4o-mini")
	o.Submit(context.Background(), "q2", "gpt-4o-mini")

	hist := oa.lastReq.History
	if len(hist) != 2 {
		t.Fatalf("history = %d messages, want the first turn only", len(hist))
	}
	if hist[0].Content != "q1" || hist[1].Content != "a2" {
		t.Errorf("history = %q, %q", hist[0].Content, hist[1].Content)
	}
}

func TestSubmit_StreamStartReassertsLoading(t *testing.T) {
	oa := &scriptedAdapter{name: "openai", tokens: []string{"ok"}}
	o, st := newHarness(oa, &scriptedAdapter{name: "gemini"})

	var loadingAtStart bool
	oa.beforeStart = func() { st.SetLoading(false) }
	oa.afterStart = func() { loadingAtStart = st.IsLoading() }

	o.Submit(context.Background(), "hello", "gpt-4o-mini")

	if !loadingAtStart {
		t.Error("stream start should re-assert the loading flag")
	}
}

func TestSubmit_OnTokenHookFires(t *testing.T) {
	oa := &scriptedAdapter{name: "openai", tokens: []string{"a", "b", "c"}}
	o, _ := newHarness(oa, &scriptedAdapter{name: "gemini"})

	var fires int
	o.SetOnToken(func() { fires++ })
	o.Submit(context.Background(), "hello", "gpt-4o-mini")

	if fires != 3 {
		t.Errorf("onToken fired %d times, want 3", fires)
	}
}
