// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/basha-chat/basha-tui/internal/config"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildRenderers(msg.Width)

		chromeHeight := 7 // header + input + status
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chromeHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chromeHeight
		}
		m.input.SetWidth(msg.Width - 4)
		m.refreshTranscript()
		return m, nil

	case StreamTickMsg:
		m.refreshTranscript()
		return m, nil

	case submitDoneMsg:
		m.deps.SetCancel(nil)
		m.refreshTranscript()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys

	switch {
	case key.Matches(msg, keys.Quit):
		m.deps.Cancel()
		return m, tea.Quit

	case key.Matches(msg, keys.Cancel):
		if m.focus == focusSessions {
			m.focus = focusInput
			m.input.Focus()
			return m, textarea.Blink
		}
		return m, nil

	case key.Matches(msg, keys.NewSession):
		m.deps.Store.CreateSession(m.settings.Model)
		m.refreshTranscript()
		return m, nil

	case key.Matches(msg, keys.Sessions):
		if m.focus == focusSessions {
			m.focus = focusInput
			m.input.Focus()
		} else {
			m.focus = focusSessions
			m.sessionIndex = 0
			m.input.Blur()
		}
		return m, nil

	case key.Matches(msg, keys.CycleModel):
		m.cycleModel()
		m.applySettings()
		return m, nil

	case key.Matches(msg, keys.ToggleTheme):
		if m.settings.Theme == "dark" {
			m.settings.Theme = "light"
		} else {
			m.settings.Theme = "dark"
		}
		m.applySettings()
		m.refreshTranscript()
		return m, nil

	case key.Matches(msg, keys.CycleLang):
		if m.settings.Language == "am" {
			m.settings.Language = "en"
		} else {
			m.settings.Language = "am"
		}
		m.applySettings()
		return m, nil

	case key.Matches(msg, keys.FontBigger):
		if next := config.BiggerFont(m.settings.FontSize); next != m.settings.FontSize {
			m.settings.FontSize = next
			m.applySettings()
		}
		return m, nil

	case key.Matches(msg, keys.FontSmaller):
		if next := config.SmallerFont(m.settings.FontSize); next != m.settings.FontSize {
			m.settings.FontSize = next
			m.applySettings()
		}
		return m, nil
	}

	if m.focus == focusSessions {
		return m.handleSessionKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		input := m.input.Value()
		if input == "" || m.deps.Store.IsLoading() {
			return m, nil
		}
		m.input.Reset()
		m.refreshTranscript()
		return m, tea.Batch(m.submitCmd(input), m.spin.Tick)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// handleSessionKey drives the session panel.
func (m Model) handleSessionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sessions := m.deps.Store.Sessions()

	switch {
	case key.Matches(msg, m.keys.PanelUp):
		if m.sessionIndex > 0 {
			m.sessionIndex--
		}

	case key.Matches(msg, m.keys.PanelDown):
		if m.sessionIndex < len(sessions)-1 {
			m.sessionIndex++
		}

	case key.Matches(msg, m.keys.PanelSelect):
		if m.sessionIndex < len(sessions) {
			selected := sessions[m.sessionIndex]
			m.deps.Store.LoadSession(selected.ID)
			// Adopt the session's model so the next turn continues
			// with what the conversation was using.
			if selected.ModelID != "" && selected.ModelID != m.settings.Model {
				m.settings.Model = selected.ModelID
				m.applySettings()
			}
			m.focus = focusInput
			m.input.Focus()
			m.refreshTranscript()
			return m, textarea.Blink
		}

	case key.Matches(msg, m.keys.PanelDelete):
		if m.sessionIndex < len(sessions) {
			m.deps.Store.DeleteSession(sessions[m.sessionIndex].ID)
			if m.sessionIndex > 0 {
				m.sessionIndex--
			}
			m.refreshTranscript()
		}
	}

	return m, nil
}
