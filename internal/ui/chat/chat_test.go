// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	chatflow "github.com/basha-chat/basha-tui/internal/chat"
	"github.com/basha-chat/basha-tui/internal/config"
	"github.com/basha-chat/basha-tui/internal/provider"
	"github.com/basha-chat/basha-tui/internal/router"
	"github.com/basha-chat/basha-tui/internal/store"
	"github.com/basha-chat/basha-tui/internal/text"
)

type echoAdapter struct{ name string }

func (a *echoAdapter) Name() string { return a.name }

func (a *echoAdapter) Generate(ctx context.Context, req provider.Request) string {
	return "echo: " + req.Message
}

func (a *echoAdapter) GenerateStream(ctx context.Context, req provider.Request, h provider.Handlers) {
	h.Start()
	h.Token("echo: " + req.Message)
	h.Complete()
}

func newTestModel(t *testing.T) (Model, *Deps) {
	t.Helper()
	st := store.New()
	rt := router.New(&echoAdapter{name: "openai"}, &echoAdapter{name: "gemini"}, text.LangAmharic)
	deps := &Deps{
		Store:        st,
		Orchestrator: chatflow.New(st, rt, text.LangAmharic),
	}
	m := New(deps, config.DefaultSettings())
	return m, deps
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func TestView_BeforeSizing(t *testing.T) {
	m, _ := newTestModel(t)
	if m.View() == "" {
		t.Error("unsized view should still render something")
	}
}

func TestView_ShowsWelcomeAndBrand(t *testing.T) {
	m, _ := newTestModel(t)
	m = sized(t, m)

	view := m.View()
	if !strings.Contains(view, "ባሻ") {
		t.Error("header should show the app brand")
	}
	if !strings.Contains(view, "GPT-4o Mini") {
		t.Error("header should show the selected model")
	}
}

func TestSubmitKey_EmptyInputIsNoOp(t *testing.T) {
	m, deps := newTestModel(t)
	m = sized(t, m)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if cmd != nil {
		t.Error("empty input should not produce a submit command")
	}
	if len(deps.Store.Messages()) != 0 {
		t.Error("store should be untouched")
	}
}

func TestThemeToggle_PersistsSettings(t *testing.T) {
	m, deps := newTestModel(t)
	m = sized(t, m)

	var saved []config.Settings
	deps.SaveSettings = func(s config.Settings) { saved = append(saved, s) }

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = updated.(Model)

	if m.Settings().Theme != "light" {
		t.Errorf("theme = %q, want light", m.Settings().Theme)
	}
	if len(saved) != 1 || saved[0].Theme != "light" {
		t.Error("toggle should persist the new settings")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = updated.(Model)
	if m.Settings().Theme != "dark" {
		t.Error("second toggle should return to dark")
	}
}

func TestModelCycle(t *testing.T) {
	m, _ := newTestModel(t)
	m = sized(t, m)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	m = updated.(Model)
	if m.Settings().Model != "gemini-2.0-flash-lite-preview-02-05" {
		t.Errorf("model = %q", m.Settings().Model)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	m = updated.(Model)
	if m.Settings().Model != "gpt-4o-mini" {
		t.Error("cycle should wrap around the catalog")
	}
}

func TestLanguageCycle_ChangesPlaceholder(t *testing.T) {
	m, _ := newTestModel(t)
	m = sized(t, m)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	m = updated.(Model)
	if m.Settings().Language != "en" {
		t.Errorf("language = %q, want en", m.Settings().Language)
	}
	if m.input.Placeholder != text.UI(text.LangEnglish).InputPlaceholder {
		t.Error("placeholder should follow the language")
	}
}

func TestNewSessionKey(t *testing.T) {
	m, deps := newTestModel(t)
	m = sized(t, m)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	_ = updated.(Model)

	if len(deps.Store.Sessions()) != 1 {
		t.Error("ctrl+n should create a session")
	}
}

func TestFontSizeBounds(t *testing.T) {
	m, _ := newTestModel(t)
	m = sized(t, m)

	for i := 0; i < 4; i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlUp})
		m = updated.(Model)
	}
	if got := m.Settings().FontSize; got != config.FontLarge {
		t.Errorf("font size = %q, want to stop at %q", got, config.FontLarge)
	}

	for i := 0; i < 4; i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlDown})
		m = updated.(Model)
	}
	if got := m.Settings().FontSize; got != config.FontSmall {
		t.Errorf("font size = %q, want to stop at %q", got, config.FontSmall)
	}
}
