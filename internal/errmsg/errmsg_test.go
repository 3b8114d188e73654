// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package errmsg

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/basha-chat/basha-tui/internal/text"
)

// =============================================================================
// CLASSIFICATION TESTS
// =============================================================================

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil error", nil, KindGeneric},
		{"unknown model sentinel", ErrUnknownModel, KindUnknownModel},
		{"wrapped unknown model", fmt.Errorf("routing: %w", ErrUnknownModel), KindUnknownModel},
		{"context canceled", context.Canceled, KindCancelled},
		{"deadline exceeded", context.DeadlineExceeded, KindCancelled},
		{"status 429", &APIError{Status: 429, Message: "slow down"}, KindRateLimited},
		{"status 400", &APIError{Status: 400, Message: "bad"}, KindInvalidRequest},
		{"status 401", &APIError{Status: 401, Message: "nope"}, KindUnauthorized},
		{"status 403", &APIError{Status: 403, Message: "nope"}, KindUnauthorized},
		{"status 404", &APIError{Status: 404, Message: "gone"}, KindNotFound},
		{"quota text", errors.New("daily quota exceeded"), KindRateLimited},
		{"rate text", errors.New("Rate Limit hit"), KindRateLimited},
		{"invalid text", errors.New("invalid request body"), KindInvalidRequest},
		{"auth text", errors.New("bad API key supplied"), KindUnauthorized},
		{"not found text", errors.New("model gpt-9 not found"), KindNotFound},
		{"connection refused", errors.New("dial tcp 1.2.3.4:443: connection refused"), KindNetwork},
		{"no such host", errors.New("lookup api.example: no such host"), KindNetwork},
		{"timeout text", errors.New("request timed out"), KindCancelled},
		{"unmatched", errors.New("weird one"), KindGeneric},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.err); got != tc.want {
				t.Errorf("Classify(%v) = %s, want %s", tc.err, got, tc.want)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	err := &APIError{Status: 429, Message: "too many requests for model x"}
	first := Classify(err)
	for i := 0; i < 10; i++ {
		if got := Classify(err); got != first {
			t.Fatalf("classification changed between calls: %s vs %s", first, got)
		}
	}
}

// A rate-limit-flagged error must never classify as NotFound, even when
// its message mentions a model name.
func TestClassify_PriorityOrder(t *testing.T) {
	err := &APIError{Status: 429, Message: "model not found in quota table"}
	if got := Classify(err); got != KindRateLimited {
		t.Errorf("Classify = %s, want %s", got, KindRateLimited)
	}

	// Substring priority: cancellation beats rate-limit.
	textual := errors.New("request timed out waiting for rate limiter")
	if got := Classify(textual); got != KindCancelled {
		t.Errorf("Classify = %s, want %s", got, KindCancelled)
	}
}

// =============================================================================
// LOCALIZATION TESTS
// =============================================================================

func TestLocalize_AllKindsHaveMessages(t *testing.T) {
	kinds := []Kind{
		KindGeneric, KindCancelled, KindRateLimited, KindInvalidRequest,
		KindUnauthorized, KindNotFound, KindNetwork, KindUnknownModel,
	}
	for _, k := range kinds {
		for _, lang := range []text.Language{text.LangAmharic, text.LangEnglish} {
			if Localize(k, lang) == "" {
				t.Errorf("Localize(%s, %s) is empty", k, lang)
			}
		}
	}
}

func TestLocalizeError_Amharic(t *testing.T) {
	got := LocalizeError(&APIError{Status: 429}, text.LangAmharic)
	want := "ይቅርታ፣ በአሁኑ ጊዜ ብዙ ጥያቄዎች አሉ። እባክዎ ጥቂት ቆይተው ይሞክሩ።"
	if got != want {
		t.Errorf("LocalizeError = %q, want %q", got, want)
	}
}

func TestAPIError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &APIError{Status: 500, Code: "server_error", Message: "oops", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("Unwrap chain should reach cause")
	}
	msg := err.Error()
	if msg == "" {
		t.Error("Error() should not be empty")
	}
}
