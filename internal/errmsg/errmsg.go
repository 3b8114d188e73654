// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package errmsg

import (
	"errors"
	"fmt"
)

// =============================================================================
// ERROR KINDS
// =============================================================================

// Kind identifies one category of user-visible failure. The set is closed:
// exactly one kind applies to any failure.
type Kind int

const (
	KindGeneric Kind = iota
	KindCancelled
	KindRateLimited
	KindInvalidRequest
	KindUnauthorized
	KindNotFound
	KindNetwork
	KindUnknownModel
)

// String returns the kind's name for logs and tests.
func (k Kind) String() string {
	switch k {
	case KindCancelled:
		return "cancelled"
	case KindRateLimited:
		return "rate_limited"
	case KindInvalidRequest:
		return "invalid_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindNetwork:
		return "network_unavailable"
	case KindUnknownModel:
		return "unknown_model"
	default:
		return "generic"
	}
}

// ErrUnknownModel is the routing error for a model identifier whose prefix
// matches no provider. Use errors.Is to check for it.
var ErrUnknownModel = errors.New("unknown model")

// =============================================================================
// STRUCTURED API ERROR
// =============================================================================

// APIError is a provider failure that carries an HTTP status code. Adapters
// construct it from non-2xx responses so classification can match on the
// status before falling back to message text.
type APIError struct {
	Status  int
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error [%s] (HTTP %d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("api error (HTTP %d): %s", e.Status, e.Message)
}

// Unwrap returns the underlying transport error, if any.
func (e *APIError) Unwrap() error {
	return e.Cause
}
