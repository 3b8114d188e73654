// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/basha-chat/basha-tui/internal/catalog"
	"github.com/basha-chat/basha-tui/internal/ui/components"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return m.ui.Loading
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteByte('\n')

	if m.focus == focusSessions {
		b.WriteString(m.renderSessionPanel())
	} else {
		b.WriteString(m.viewport.View())
	}
	b.WriteByte('\n')

	b.WriteString(m.renderInput())
	b.WriteByte('\n')
	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m Model) renderHeader() string {
	model := catalog.ByID(m.settings.Model)
	title := m.theme.HeaderBrand.Render(m.ui.AppTitle) + "  " +
		m.theme.ModelName.Render(model.Name)
	return m.theme.Header.Width(m.width - 2).Render(title)
}

// refreshTranscript re-renders the message list into the viewport and
// follows the tail.
func (m *Model) refreshTranscript() {
	if !m.ready {
		return
	}

	msgs := m.deps.Store.Messages()
	if len(msgs) == 0 {
		m.viewport.SetContent(m.theme.Welcome.Width(m.viewport.Width).Render(m.ui.Welcome))
		return
	}

	parts := make([]string, 0, len(msgs)+1)
	for _, msg := range msgs {
		parts = append(parts, m.messages.Render(msg))
	}
	if m.deps.Store.IsLoading() {
		parts = append(parts, m.spin.View()+" "+m.theme.ThinkingText.Render(m.ui.Loading))
	}

	m.viewport.SetContent(strings.Join(parts, "\n\n"))
	m.viewport.GotoBottom()
}

func (m Model) renderInput() string {
	prompt := m.theme.InputPrompt.Render("❯ ")
	return m.theme.InputContainer.Width(m.width - 2).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, prompt, m.input.View()))
}

func (m Model) renderStatusBar() string {
	hint := func(k, desc string) string {
		return m.theme.StatusKey.Render(k) + m.theme.StatusDesc.Render(" "+desc)
	}

	items := []string{
		hint("enter", "➤"),
		hint("ctrl+n", m.ui.NewChat),
		hint("ctrl+s", m.ui.ChatHistory),
		hint("ctrl+o", catalog.ByID(m.settings.Model).Name),
		hint("ctrl+t", m.ui.ThemeLabel),
		hint("ctrl+g", m.ui.LanguageLabel),
		hint("ctrl+c", "✕"),
	}
	return m.theme.StatusBar.Width(m.width - 2).Render(strings.Join(items, "  "))
}

// renderSessionPanel lists stored sessions, newest first.
func (m Model) renderSessionPanel() string {
	sessions := m.deps.Store.Sessions()

	var b strings.Builder
	b.WriteString(m.theme.HeaderBrand.Render(m.ui.ChatHistory))
	b.WriteByte('\n')

	if len(sessions) == 0 {
		b.WriteString(m.theme.SessionMeta.Render(m.ui.NewChat))
	}

	maxTitle := m.width - 20
	for i, sess := range sessions {
		title := sess.Preview(40)
		if title == "" {
			title = m.ui.DefaultChatName
		}
		title = components.TruncateTitle(title, maxTitle)

		meta := m.theme.SessionMeta.Render(fmt.Sprintf(" · %s · %d", catalog.ByID(sess.ModelID).Name, sess.MessageCount()))

		line := title + meta
		if i == m.sessionIndex {
			line = m.theme.SessionItemSelected.Render(line)
		} else {
			line = m.theme.SessionItem.Render(line)
		}
		b.WriteByte('\n')
		b.WriteString(line)
	}

	return m.theme.SessionPanel.
		Width(m.width - 2).
		Height(m.viewport.Height - 2).
		Render(b.String())
}
