// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/basha-chat/basha-tui/internal/util"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single message in a session. Finalized messages are
// immutable; a streaming assistant message has Content appended to until
// IsStreaming is cleared.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	ModelID   string    `json:"model_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`

	// IsStreaming marks the placeholder assistant message being filled
	// token by token. Never persisted: a restored message is always final.
	IsStreaming bool `json:"-"`
}

// NewUserMessage creates a finalized user message tagged with the model it
// was submitted against.
func NewUserMessage(content, modelID string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Content:   content,
		ModelID:   modelID,
		Timestamp: time.Now(),
	}
}

// NewAssistantPlaceholder creates the empty, in-progress assistant message
// that streaming tokens accumulate into.
func NewAssistantPlaceholder(modelID string) Message {
	return Message{
		ID:          uuid.NewString(),
		Role:        RoleAssistant,
		ModelID:     modelID,
		Timestamp:   time.Now(),
		IsStreaming: true,
	}
}

// Preview returns a single-line, rune-safe preview of the content.
func (m Message) Preview(maxRunes int) string {
	return util.TruncateRunes(util.OneLine(m.Content), maxRunes)
}

// IsEmpty reports whether the message has no content.
func (m Message) IsEmpty() bool {
	return m.Content == ""
}
