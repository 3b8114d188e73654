// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// MESSAGES AND COMMANDS
// =============================================================================

// StreamTickMsg asks the view to repaint mid-stream. Sent from the
// streaming goroutine through the program.
type StreamTickMsg struct{}

// submitDoneMsg signals that a submission finished (success or error;
// the store already holds the final state either way).
type submitDoneMsg struct{}

// submitCmd runs one submission to completion off the UI loop.
func (m Model) submitCmd(input string) tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.deps.SetCancel(cancel)

	return func() tea.Msg {
		defer cancel()
		m.deps.Orchestrator.Submit(ctx, input, m.settings.Model)
		return submitDoneMsg{}
	}
}
