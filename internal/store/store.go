// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"sync"

	"github.com/basha-chat/basha-tui/internal/model"
)

// =============================================================================
// CHAT STORE
// =============================================================================

// ChatStore is the single source of truth for chat state.
type ChatStore struct {
	mu sync.Mutex

	// sessions is ordered newest-first.
	sessions  []model.ChatSession
	currentID string

	// messages mirrors the current session's messages for display,
	// including the in-flight streaming placeholder.
	messages []model.Message

	isLoading bool
	input     string

	// onChange fires after any mutation of durable state (the session
	// list). It is invoked outside the lock.
	onChange func()
}

// New creates an empty store.
func New() *ChatStore {
	return &ChatStore{}
}

// SetOnChange registers the durable-state change callback.
func (s *ChatStore) SetOnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *ChatStore) notify() {
	s.mu.Lock()
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// =============================================================================
// SESSION LIFECYCLE
// =============================================================================

// SetInitialSessions replaces the session list wholesale, typically from
// persistence at startup. The most recent session becomes current so the
// user resumes where they left off; an empty list leaves a fresh screen.
func (s *ChatStore) SetInitialSessions(sessions []model.ChatSession) {
	s.mu.Lock()
	s.sessions = make([]model.ChatSession, len(sessions))
	for i, sess := range sessions {
		s.sessions[i] = sess.Clone()
	}
	if len(s.sessions) > 0 {
		s.currentID = s.sessions[0].ID
		s.messages = cloneMessages(s.sessions[0].Messages)
	} else {
		s.currentID = ""
		s.messages = nil
	}
	s.mu.Unlock()
}

// CreateSession starts a new empty session for the given model, makes it
// current, and clears the live messages. Returns the new session ID.
func (s *ChatStore) CreateSession(modelID string) string {
	sess := model.NewChatSession(modelID)

	s.mu.Lock()
	s.sessions = append([]model.ChatSession{sess}, s.sessions...)
	s.currentID = sess.ID
	s.messages = nil
	s.mu.Unlock()

	s.notify()
	return sess.ID
}

// DeleteSession removes a session. Deleting the current session promotes
// the newest remaining one; deleting the last session leaves the store
// empty with no current session.
func (s *ChatStore) DeleteSession(id string) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.sessions = append(s.sessions[:idx], s.sessions[idx+1:]...)

	if s.currentID == id {
		if len(s.sessions) > 0 {
			promoted := s.sessions[0]
			s.currentID = promoted.ID
			s.messages = cloneMessages(promoted.Messages)
		} else {
			s.currentID = ""
			s.messages = nil
		}
	}
	s.mu.Unlock()

	s.notify()
}

// LoadSession makes an existing session current and shows its messages.
// Unknown IDs are ignored.
func (s *ChatStore) LoadSession(id string) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.currentID = id
	s.messages = cloneMessages(s.sessions[idx].Messages)
	s.mu.Unlock()
}

// UpdateSessionModel changes the model a session is bound to. Future
// turns in the session use the new model; past turns keep their own.
func (s *ChatStore) UpdateSessionModel(id, modelID string) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx >= 0 {
		s.sessions[idx].ModelID = modelID
	}
	s.mu.Unlock()

	if idx >= 0 {
		s.notify()
	}
}

// =============================================================================
// MESSAGES
// =============================================================================

// AppendMessage adds a message to the live view and to the current
// session. With no current session one is created implicitly from the
// message's model, so the first submission of a fresh screen lands in a
// brand new session.
func (s *ChatStore) AppendMessage(msg model.Message) {
	s.mu.Lock()
	if s.currentID == "" {
		sess := model.NewChatSession(msg.ModelID)
		s.sessions = append([]model.ChatSession{sess}, s.sessions...)
		s.currentID = sess.ID
		s.messages = nil
	}

	s.messages = append(s.messages, msg)
	if idx := s.indexLocked(s.currentID); idx >= 0 {
		s.sessions[idx].Messages = append(s.sessions[idx].Messages, msg)
	}
	s.mu.Unlock()

	s.notify()
}

// AppendToLastMessage accumulates a streamed token onto the last live
// message. Only the live view is touched; the session copy is written
// back when the stream finalizes through UpdateLastMessage.
func (s *ChatStore) AppendToLastMessage(token string) {
	s.mu.Lock()
	if n := len(s.messages); n > 0 {
		s.messages[n-1].Content += token
	}
	s.mu.Unlock()
}

// UpdateLastMessage replaces the last message's content wholesale,
// clears its streaming flag, and writes the finished message back to the
// current session. This is the single finalization point for both
// successful streams and error text.
func (s *ChatStore) UpdateLastMessage(content string) {
	s.mu.Lock()
	n := len(s.messages)
	if n == 0 {
		s.mu.Unlock()
		return
	}
	s.messages[n-1].Content = content
	s.messages[n-1].IsStreaming = false

	if idx := s.indexLocked(s.currentID); idx >= 0 {
		sess := &s.sessions[idx]
		if m := len(sess.Messages); m > 0 && sess.Messages[m-1].ID == s.messages[n-1].ID {
			sess.Messages[m-1] = s.messages[n-1]
		} else {
			sess.Messages = append(sess.Messages, s.messages[n-1])
		}
	}
	s.mu.Unlock()

	s.notify()
}

// =============================================================================
// UI STATE
// =============================================================================

// SetInput stores the draft input text.
func (s *ChatStore) SetInput(input string) {
	s.mu.Lock()
	s.input = input
	s.mu.Unlock()
}

// Input returns the draft input text.
func (s *ChatStore) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

// SetLoading flips the in-flight submission flag.
func (s *ChatStore) SetLoading(loading bool) {
	s.mu.Lock()
	s.isLoading = loading
	s.mu.Unlock()
}

// IsLoading reports whether a submission is in flight.
func (s *ChatStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

// =============================================================================
// SNAPSHOTS
// =============================================================================

// CurrentID returns the current session ID, or "" when none is active.
func (s *ChatStore) CurrentID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentID
}

// CurrentSession returns a deep copy of the current session.
func (s *ChatStore) CurrentSession() (model.ChatSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(s.currentID)
	if idx < 0 {
		return model.ChatSession{}, false
	}
	return s.sessions[idx].Clone(), true
}

// Sessions returns a deep copy of the session list, newest-first.
func (s *ChatStore) Sessions() []model.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ChatSession, len(s.sessions))
	for i, sess := range s.sessions {
		out[i] = sess.Clone()
	}
	return out
}

// Messages returns a copy of the live message list.
func (s *ChatStore) Messages() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneMessages(s.messages)
}

// indexLocked finds a session by ID. Caller holds the lock.
func (s *ChatStore) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneMessages(msgs []model.Message) []model.Message {
	if msgs == nil {
		return nil
	}
	out := make([]model.Message, len(msgs))
	copy(out, msgs)
	return out
}
