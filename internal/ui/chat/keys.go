// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the chat view key bindings.
type KeyMap struct {
	Submit       key.Binding
	NewSession   key.Binding
	Sessions     key.Binding
	CycleModel   key.Binding
	ToggleTheme  key.Binding
	CycleLang    key.Binding
	FontBigger   key.Binding
	FontSmaller  key.Binding
	Cancel       key.Binding
	Quit         key.Binding
	PanelUp      key.Binding
	PanelDown    key.Binding
	PanelSelect  key.Binding
	PanelDelete  key.Binding
	ScrollUp     key.Binding
	ScrollDown   key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:      key.NewBinding(key.WithKeys("enter")),
		NewSession:  key.NewBinding(key.WithKeys("ctrl+n")),
		Sessions:    key.NewBinding(key.WithKeys("ctrl+s")),
		CycleModel:  key.NewBinding(key.WithKeys("ctrl+o")),
		ToggleTheme: key.NewBinding(key.WithKeys("ctrl+t")),
		CycleLang:   key.NewBinding(key.WithKeys("ctrl+g")),
		FontBigger:  key.NewBinding(key.WithKeys("ctrl+up")),
		FontSmaller: key.NewBinding(key.WithKeys("ctrl+down")),
		Cancel:      key.NewBinding(key.WithKeys("esc")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c")),
		PanelUp:     key.NewBinding(key.WithKeys("up", "k")),
		PanelDown:   key.NewBinding(key.WithKeys("down", "j")),
		PanelSelect: key.NewBinding(key.WithKeys("enter")),
		PanelDelete: key.NewBinding(key.WithKeys("ctrl+d")),
		ScrollUp:    key.NewBinding(key.WithKeys("pgup")),
		ScrollDown:  key.NewBinding(key.WithKeys("pgdown")),
	}
}
