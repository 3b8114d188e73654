// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/basha-chat/basha-tui/internal/catalog"
	chatflow "github.com/basha-chat/basha-tui/internal/chat"
	"github.com/basha-chat/basha-tui/internal/config"
	"github.com/basha-chat/basha-tui/internal/store"
	"github.com/basha-chat/basha-tui/internal/text"
	"github.com/basha-chat/basha-tui/internal/ui/components"
	"github.com/basha-chat/basha-tui/internal/ui/styles"
)

// =============================================================================
// DEPENDENCIES
// =============================================================================

// Deps bundles what the chat view needs from the rest of the app. It is
// shared by pointer so the view's value copies all see the same state.
type Deps struct {
	Store        *store.ChatStore
	Orchestrator *chatflow.Orchestrator

	// SaveSettings persists preference changes, best effort.
	SaveSettings func(config.Settings)

	cancelMu sync.Mutex
	cancel   context.CancelFunc
}

// SetCancel stores the cancel func for the in-flight submission.
func (d *Deps) SetCancel(fn context.CancelFunc) {
	d.cancelMu.Lock()
	d.cancel = fn
	d.cancelMu.Unlock()
}

// Cancel aborts the in-flight submission, if any.
func (d *Deps) Cancel() {
	d.cancelMu.Lock()
	fn := d.cancel
	d.cancel = nil
	d.cancelMu.Unlock()
	if fn != nil {
		fn()
	}
}

// =============================================================================
// MODEL
// =============================================================================

// focusArea tracks which pane receives key input.
type focusArea int

const (
	focusInput focusArea = iota
	focusSessions
)

// Model is the Bubble Tea model for the chat view.
type Model struct {
	deps *Deps
	keys KeyMap

	settings config.Settings
	theme    *styles.Theme
	ui       text.Strings

	input    textarea.Model
	viewport viewport.Model
	spin     spinner.Model

	markdown *components.Markdown
	messages *components.MessageView

	focus        focusArea
	sessionIndex int

	width  int
	height int
	ready  bool
}

// New creates the chat view.
func New(deps *Deps, settings config.Settings) Model {
	settings.Normalize()
	theme := styles.NewTheme(settings.Theme)
	ui := text.UI(text.Language(settings.Language))

	input := textarea.New()
	input.Placeholder = ui.InputPlaceholder
	input.CharLimit = 4000
	input.SetHeight(2)
	input.ShowLineNumbers = false
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = theme.Spinner

	m := Model{
		deps:     deps,
		keys:     DefaultKeyMap(),
		settings: settings,
		theme:    theme,
		ui:       ui,
		input:    input,
		spin:     spin,
	}
	m.rebuildRenderers(80)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Settings returns the current preferences.
func (m Model) Settings() config.Settings {
	return m.settings
}

// rebuildRenderers recreates the width-dependent renderers.
func (m *Model) rebuildRenderers(width int) {
	palette := styles.PaletteFor(m.settings.Theme)
	m.markdown = components.NewMarkdown(m.settings.Theme, width-10, palette)
	m.messages = components.NewMessageView(m.theme, m.markdown, width)
}

// applySettings re-derives theme, strings, and renderers after a
// preference change, then persists.
func (m *Model) applySettings() {
	m.settings.Normalize()
	m.theme = styles.NewTheme(m.settings.Theme)
	m.ui = text.UI(text.Language(m.settings.Language))
	m.input.Placeholder = m.ui.InputPlaceholder
	m.spin.Style = m.theme.Spinner
	m.rebuildRenderers(m.width)
	if m.deps.SaveSettings != nil {
		m.deps.SaveSettings(m.settings)
	}
}

// cycleModel advances the model selection through the catalog.
func (m *Model) cycleModel() {
	all := catalog.All()
	for i, entry := range all {
		if entry.ID == m.settings.Model {
			m.settings.Model = all[(i+1)%len(all)].ID
			return
		}
	}
	m.settings.Model = catalog.Default().ID
}
