// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package provider

// Handlers is the streaming callback set. Any field may be nil; use the
// dispatch methods rather than calling fields directly so nil callbacks
// are skipped safely.
type Handlers struct {
	OnStart    func()
	OnToken    func(token string)
	OnComplete func()
	OnError    func(err error)
}

// Start signals that the request is about to be issued.
func (h Handlers) Start() {
	if h.OnStart != nil {
		h.OnStart()
	}
}

// Token delivers one increment of response text.
func (h Handlers) Token(token string) {
	if h.OnToken != nil {
		h.OnToken(token)
	}
}

// Complete signals the end of the stream. Adapters call this exactly once
// per GenerateStream, on success and failure alike.
func (h Handlers) Complete() {
	if h.OnComplete != nil {
		h.OnComplete()
	}
}

// Error surfaces a raw failure. Classification into user-facing text
// happens in the router, not here.
func (h Handlers) Error(err error) {
	if h.OnError != nil {
		h.OnError(err)
	}
}
