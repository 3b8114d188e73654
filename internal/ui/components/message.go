// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/basha-chat/basha-tui/internal/model"
	"github.com/basha-chat/basha-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGE BUBBLES
// =============================================================================

// MessageView renders chat messages into bubbles.
type MessageView struct {
	theme    *styles.Theme
	markdown *Markdown
	width    int
}

// NewMessageView creates a renderer for the given theme and width.
func NewMessageView(theme *styles.Theme, markdown *Markdown, width int) *MessageView {
	if width < 20 {
		width = 20
	}
	return &MessageView{theme: theme, markdown: markdown, width: width}
}

// Render returns the full bubble for one message. User messages are
// right-aligned plain text; assistant messages go through the markdown
// renderer. A still-streaming message gets a cursor marker instead of a
// timestamp.
func (v *MessageView) Render(msg model.Message) string {
	bubbleWidth := v.width - 8
	if bubbleWidth < 12 {
		bubbleWidth = 12
	}

	switch msg.Role {
	case model.RoleUser:
		bubble := v.theme.UserBubble.MaxWidth(bubbleWidth).Render(msg.Content)
		return alignRight(bubble, v.width)

	default:
		content := msg.Content
		if msg.IsStreaming {
			content += "▌"
		} else {
			content = strings.TrimSpace(v.markdown.Render(content))
		}
		if content == "" {
			content = "…"
		}
		return v.theme.AssistantBubble.MaxWidth(bubbleWidth).Render(content)
	}
}

// alignRight pads each line so the block hugs the right edge.
func alignRight(block string, width int) string {
	lines := strings.Split(block, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		pad := width - lipgloss.Width(line)
		if pad < 0 {
			pad = 0
		}
		out[i] = strings.Repeat(" ", pad) + line
	}
	return strings.Join(out, "\n")
}

// TruncateTitle shortens a session preview to fit the panel, keeping
// wide characters intact.
func TruncateTitle(s string, maxWidth int) string {
	return runewidth.Truncate(s, maxWidth, "…")
}
