// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"context"
	"errors"
	"testing"

	"github.com/basha-chat/basha-tui/internal/errmsg"
	"github.com/basha-chat/basha-tui/internal/model"
	"github.com/basha-chat/basha-tui/internal/provider"
	"github.com/basha-chat/basha-tui/internal/text"
)

// fakeAdapter records the requests it receives and plays back a scripted
// stream through the handlers.
type fakeAdapter struct {
	name      string
	reply     string
	streamErr error
	panicMsg  string
	lastReq   provider.Request
	calls     int
}

func (f *fakeAdapter) Name() string { return f.name }

func (f *fakeAdapter) Generate(ctx context.Context, req provider.Request) string {
	f.lastReq = req
	f.calls++
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	return f.reply
}

func (f *fakeAdapter) GenerateStream(ctx context.Context, req provider.Request, h provider.Handlers) {
	f.lastReq = req
	f.calls++
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	h.Start()
	if f.streamErr != nil {
		h.Error(f.streamErr)
		h.Complete()
		return
	}
	for _, tok := range []string{f.reply[:1], f.reply[1:]} {
		h.Token(tok)
	}
	h.Complete()
}

func newTestRouter() (*Router, *fakeAdapter, *fakeAdapter) {
	oa := &fakeAdapter{name: "openai", reply: "from-openai"}
	gm := &fakeAdapter{name: "gemini", reply: "from-gemini"}
	return New(oa, gm, text.LangAmharic), oa, gm
}

// =============================================================================
// RESOLUTION
// =============================================================================

func TestResolve(t *testing.T) {
	tests := []struct {
		modelID string
		want    Provider
		wantErr bool
	}{
		{"gpt-4o-mini", ProviderOpenAI, false},
		{"gpt-3.5-turbo", ProviderOpenAI, false},
		{"gemini-2.0-flash-lite-preview-02-05", ProviderGemini, false},
		{"gemini-pro", ProviderGemini, false},
		{"claude-3", 0, true},
		{"GPT-4", 0, true}, // case-sensitive
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := Resolve(tt.modelID)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Resolve(%q) expected error", tt.modelID)
			} else if !errors.Is(err, errmsg.ErrUnknownModel) {
				t.Errorf("Resolve(%q) error should wrap ErrUnknownModel", tt.modelID)
			}
			continue
		}
		if err != nil {
			t.Errorf("Resolve(%q) unexpected error: %v", tt.modelID, err)
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %v, want %v", tt.modelID, got, tt.want)
		}
	}
}

// =============================================================================
// DISPATCH
// =============================================================================

func TestGenerateResponse_RoutesByPrefix(t *testing.T) {
	r, oa, gm := newTestRouter()

	if got := r.GenerateResponse(context.Background(), "hi", "gpt-4o-mini", nil, provider.Handlers{}); got != "from-openai" {
		t.Errorf("gpt route = %q", got)
	}
	if got := r.GenerateResponse(context.Background(), "hi", "gemini-pro", nil, provider.Handlers{}); got != "from-gemini" {
		t.Errorf("gemini route = %q", got)
	}
	if oa.calls != 1 || gm.calls != 1 {
		t.Errorf("calls = openai:%d gemini:%d", oa.calls, gm.calls)
	}
}

func TestGenerateResponse_UnknownModel_Batch(t *testing.T) {
	r, oa, gm := newTestRouter()

	got := r.GenerateResponse(context.Background(), "hi", "claude-3", nil, provider.Handlers{})
	if got != errmsg.Localize(errmsg.KindUnknownModel, text.LangAmharic) {
		t.Errorf("unknown model = %q", got)
	}
	if oa.calls != 0 || gm.calls != 0 {
		t.Error("no adapter should be invoked for an unknown model")
	}
}

func TestGenerateResponse_UnknownModel_Streaming(t *testing.T) {
	r, _, _ := newTestRouter()

	var sequence []string
	var lastToken string
	var rawErr error

	got := r.GenerateResponse(context.Background(), "hi", "claude-3", nil, provider.Handlers{
		OnStart: func() { sequence = append(sequence, "start") },
		OnToken: func(tok string) {
			sequence = append(sequence, "token")
			lastToken = tok
		},
		OnError: func(err error) {
			sequence = append(sequence, "error")
			rawErr = err
		},
		OnComplete: func() { sequence = append(sequence, "complete") },
	})

	if got != "" {
		t.Errorf("streaming call returned %q, want empty", got)
	}
	want := []string{"start", "token", "error", "complete"}
	if len(sequence) != len(want) {
		t.Fatalf("sequence = %v, want %v", sequence, want)
	}
	for i := range want {
		if sequence[i] != want[i] {
			t.Fatalf("sequence = %v, want %v", sequence, want)
		}
	}
	if lastToken != errmsg.Localize(errmsg.KindUnknownModel, text.LangAmharic) {
		t.Errorf("final token = %q", lastToken)
	}
	if !errors.Is(rawErr, errmsg.ErrUnknownModel) {
		t.Errorf("raw error = %v", rawErr)
	}
}

func TestGenerateResponse_StreamHappyPath(t *testing.T) {
	r, _, _ := newTestRouter()

	var tokens []string
	var completes int
	r.GenerateResponse(context.Background(), "hi", "gpt-4o-mini", nil, provider.Handlers{
		OnToken:    func(tok string) { tokens = append(tokens, tok) },
		OnComplete: func() { completes++ },
	})

	if got := tokens[0] + tokens[1]; got != "from-openai" {
		t.Errorf("accumulated = %q", got)
	}
	if completes != 1 {
		t.Errorf("completes = %d, want exactly 1", completes)
	}
}

func TestGenerateResponse_StreamErrorLandsAsTokenThenError(t *testing.T) {
	r, oa, _ := newTestRouter()
	oa.streamErr = &errmsg.APIError{Status: 429, Message: "slow down"}

	var sequence []string
	var lastToken string
	r.GenerateResponse(context.Background(), "hi", "gpt-4o-mini", nil, provider.Handlers{
		OnStart:    func() { sequence = append(sequence, "start") },
		OnToken:    func(tok string) { sequence = append(sequence, "token"); lastToken = tok },
		OnError:    func(err error) { sequence = append(sequence, "error") },
		OnComplete: func() { sequence = append(sequence, "complete") },
	})

	want := []string{"start", "token", "error", "complete"}
	for i := range want {
		if i >= len(sequence) || sequence[i] != want[i] {
			t.Fatalf("sequence = %v, want %v", sequence, want)
		}
	}
	if len(sequence) != len(want) {
		t.Fatalf("sequence = %v, want %v", sequence, want)
	}
	if lastToken != errmsg.Localize(errmsg.KindRateLimited, text.LangAmharic) {
		t.Errorf("final token = %q", lastToken)
	}
}

func TestGenerateResponse_StreamPanicRecovered(t *testing.T) {
	r, oa, _ := newTestRouter()
	oa.panicMsg = "adapter exploded"

	var completes, errs int
	var lastToken string
	r.GenerateResponse(context.Background(), "hi", "gpt-4o-mini", nil, provider.Handlers{
		OnToken:    func(tok string) { lastToken = tok },
		OnError:    func(err error) { errs++ },
		OnComplete: func() { completes++ },
	})

	if completes != 1 || errs != 1 {
		t.Errorf("completes=%d errs=%d, want 1/1", completes, errs)
	}
	if lastToken != errmsg.Localize(errmsg.KindGeneric, text.LangAmharic) {
		t.Errorf("final token = %q", lastToken)
	}
}

func TestGenerateResponse_BatchPanicRecovered(t *testing.T) {
	r, oa, _ := newTestRouter()
	oa.panicMsg = "adapter exploded"

	got := r.GenerateResponse(context.Background(), "hi", "gpt-4o-mini", nil, provider.Handlers{})
	if got != errmsg.Localize(errmsg.KindGeneric, text.LangAmharic) {
		t.Errorf("panic fallback = %q", got)
	}
}

// =============================================================================
// HISTORY FILTERING
// =============================================================================

func TestGenerateResponse_HistoryFilteredByModel(t *testing.T) {
	r, oa, _ := newTestRouter()

	prior := []model.Message{
		{ID: "1", Role: model.RoleUser, Content: "q1", ModelID: "gpt-4o-mini"},
		{ID: "2", Role: model.RoleAssistant, Content: "a1", ModelID: "gpt-4o-mini"},
		{ID: "3", Role: model.RoleUser, Content: "other", ModelID: "gemini-pro"},
		{ID: "4", Role: model.RoleAssistant, Content: "", ModelID: "gpt-4o-mini", IsStreaming: true},
	}

	r.GenerateResponse(context.Background(), "q2", "gpt-4o-mini", prior, provider.Handlers{})

	got := oa.lastReq.History
	if len(got) != 2 {
		t.Fatalf("history = %d messages, want 2", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "2" {
		t.Errorf("history IDs = %s, %s", got[0].ID, got[1].ID)
	}
}

func TestGenerateResponse_CodeQueryFlag(t *testing.T) {
	r, oa, _ := newTestRouter()

	r.GenerateResponse(context.Background(), "write a function to sort a list", "gpt-4o-mini", nil, provider.Handlers{})
	if !oa.lastReq.IsCodeQuery {
		t.Error("code request should set IsCodeQuery")
	}

	r.GenerateResponse(context.Background(), "what is the weather", "gpt-4o-mini", nil, provider.Handlers{})
	if oa.lastReq.IsCodeQuery {
		t.Error("plain question should not set IsCodeQuery")
	}
}
