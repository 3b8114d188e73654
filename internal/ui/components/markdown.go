// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/glamour"

	"github.com/basha-chat/basha-tui/internal/ui/styles"
)

// =============================================================================
// MARKDOWN RENDERER
// =============================================================================

// Markdown renders assistant responses as terminal markdown.
type Markdown struct {
	renderer *glamour.TermRenderer
	palette  styles.Palette
	width    int
}

// NewMarkdown creates a renderer for the given theme and wrap width.
// Construction failures are tolerated; Render then falls back to the
// chroma fence highlighter.
func NewMarkdown(themeName string, width int, p styles.Palette) *Markdown {
	if width < 20 {
		width = 20
	}

	style := glamour.WithStandardStyle("dark")
	if themeName == "light" {
		style = glamour.WithStandardStyle("light")
	}

	r, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		r = nil
	}

	return &Markdown{renderer: r, palette: p, width: width}
}

// Render converts markdown to styled terminal text.
func (m *Markdown) Render(content string) string {
	if m.renderer != nil {
		if out, err := m.renderer.Render(content); err == nil {
			return out
		}
	}
	return HighlightFences(content, m.width, m.palette)
}
