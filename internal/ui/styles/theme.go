// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// =============================================================================
// PALETTES
// =============================================================================

// Palette is the raw color set a theme is built from.
type Palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Overlay    lipgloss.Color

	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color

	Accent  lipgloss.Color // brand green
	Accent2 lipgloss.Color // highlights
	Error   lipgloss.Color
	Warning lipgloss.Color

	UserBubbleBg      lipgloss.Color
	UserBubbleFg      lipgloss.Color
	AssistantBubbleBg lipgloss.Color
	AssistantBubbleFg lipgloss.Color
}

// DarkPalette is the default look.
var DarkPalette = Palette{
	Background: lipgloss.Color("#0f1a14"),
	Surface:    lipgloss.Color("#16241c"),
	Overlay:    lipgloss.Color("#2a3d32"),

	TextPrimary:   lipgloss.Color("#e8f0ea"),
	TextSecondary: lipgloss.Color("#9db5a5"),
	TextMuted:     lipgloss.Color("#5f7567"),

	Accent:  lipgloss.Color("#34d399"),
	Accent2: lipgloss.Color("#fbbf24"),
	Error:   lipgloss.Color("#f87171"),
	Warning: lipgloss.Color("#fbbf24"),

	UserBubbleBg:      lipgloss.Color("#1d4d36"),
	UserBubbleFg:      lipgloss.Color("#e8f0ea"),
	AssistantBubbleBg: lipgloss.Color("#1c2a22"),
	AssistantBubbleFg: lipgloss.Color("#e8f0ea"),
}

// LightPalette is the alternative look.
var LightPalette = Palette{
	Background: lipgloss.Color("#f4faf6"),
	Surface:    lipgloss.Color("#e6f2ea"),
	Overlay:    lipgloss.Color("#c4d9cc"),

	TextPrimary:   lipgloss.Color("#14261b"),
	TextSecondary: lipgloss.Color("#3f5a49"),
	TextMuted:     lipgloss.Color("#7d9486"),

	Accent:  lipgloss.Color("#059669"),
	Accent2: lipgloss.Color("#b45309"),
	Error:   lipgloss.Color("#dc2626"),
	Warning: lipgloss.Color("#b45309"),

	UserBubbleBg:      lipgloss.Color("#c9e9d6"),
	UserBubbleFg:      lipgloss.Color("#14261b"),
	AssistantBubbleBg: lipgloss.Color("#eef6f0"),
	AssistantBubbleFg: lipgloss.Color("#14261b"),
}

// PaletteFor maps a theme name to its palette. Unknown names get dark.
func PaletteFor(name string) Palette {
	if name == "light" {
		return LightPalette
	}
	return DarkPalette
}

// =============================================================================
// THEME
// =============================================================================

// Theme holds the styled components for the application.
type Theme struct {
	Name         string
	ColorProfile termenv.Profile
	HasTrueColor bool

	// Chrome
	Header      lipgloss.Style
	HeaderBrand lipgloss.Style
	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style
	StatusDesc  lipgloss.Style

	// Messages
	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	ErrorText       lipgloss.Style
	Timestamp       lipgloss.Style
	Spinner         lipgloss.Style
	ThinkingText    lipgloss.Style

	// Input
	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputPlaceholder lipgloss.Style

	// Session panel
	SessionPanel        lipgloss.Style
	SessionItem         lipgloss.Style
	SessionItemSelected lipgloss.Style
	SessionMeta         lipgloss.Style

	// Misc
	Welcome   lipgloss.Style
	ModelName lipgloss.Style
}

// NewTheme builds the theme for the named palette, detecting terminal
// capability through termenv.
func NewTheme(name string) *Theme {
	profile := termenv.ColorProfile()
	t := &Theme{
		Name:         name,
		ColorProfile: profile,
		HasTrueColor: profile == termenv.TrueColor,
	}
	t.init(PaletteFor(name))
	return t
}

func (t *Theme) init(p Palette) {
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Overlay).
		Padding(0, 2)

	t.HeaderBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent)

	t.StatusBar = lipgloss.NewStyle().
		Background(p.Surface).
		Foreground(p.TextSecondary).
		Padding(0, 1)

	t.StatusKey = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	t.StatusDesc = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	t.UserBubble = lipgloss.NewStyle().
		Foreground(p.UserBubbleFg).
		Background(p.UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Overlay).
		Padding(0, 2).
		MarginLeft(6)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(p.AssistantBubbleFg).
		Background(p.AssistantBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Overlay).
		Padding(0, 2).
		MarginRight(6)

	t.ErrorText = lipgloss.NewStyle().
		Foreground(p.Error)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	t.Spinner = lipgloss.NewStyle().
		Foreground(p.Accent)

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Italic(true)

	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(p.Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Italic(true)

	t.SessionPanel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Overlay).
		Padding(0, 1)

	t.SessionItem = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Padding(0, 1)

	t.SessionItemSelected = lipgloss.NewStyle().
		Foreground(p.TextPrimary).
		Background(p.Surface).
		Bold(true).
		Padding(0, 1)

	t.SessionMeta = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	t.Welcome = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Align(lipgloss.Center).
		Padding(1, 2)

	t.ModelName = lipgloss.NewStyle().
		Foreground(p.Accent2).
		Bold(true)
}
