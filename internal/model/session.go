// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strconv"
	"sync"
	"time"
)

// =============================================================================
// SESSION TYPE
// =============================================================================

// ChatSession is one persisted conversation thread with its own message
// history and associated model.
type ChatSession struct {
	ID        string    `json:"id"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
	ModelID   string    `json:"model_id"`
}

// NewChatSession creates an empty session bound to a model.
func NewChatSession(modelID string) ChatSession {
	return ChatSession{
		ID:        NewSessionID(),
		Messages:  make([]Message, 0),
		CreatedAt: time.Now(),
		ModelID:   modelID,
	}
}

// Preview returns a single-line preview from the first user message, or
// empty when the session has none.
func (s ChatSession) Preview(maxRunes int) string {
	for _, msg := range s.Messages {
		if msg.Role == RoleUser && msg.Content != "" {
			return msg.Preview(maxRunes)
		}
	}
	return ""
}

// MessageCount returns the number of messages in the session.
func (s ChatSession) MessageCount() int {
	return len(s.Messages)
}

// Clone returns a deep copy so callers cannot mutate stored state through
// a snapshot.
func (s ChatSession) Clone() ChatSession {
	clone := s
	clone.Messages = make([]Message, len(s.Messages))
	copy(clone.Messages, s.Messages)
	return clone
}

// =============================================================================
// SESSION IDS
// =============================================================================

var (
	idMu     sync.Mutex
	lastID   int64
)

// NewSessionID derives a unique session ID from the current time in
// milliseconds. IDs are strictly monotonic: two sessions created inside
// the same millisecond still get distinct, increasing IDs.
func NewSessionID() string {
	idMu.Lock()
	defer idMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return strconv.FormatInt(id, 10)
}
