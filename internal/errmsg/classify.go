// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package errmsg

import (
	"context"
	"errors"
	"net"
	"strings"
)

// kindKeywords lists the substring rules per kind, in the priority order
// they are checked. Most specific kinds first: a rate-limit error whose
// message also says "request" must never fall through to invalid-request.
var kindKeywords = []struct {
	kind     Kind
	keywords []string
}{
	{KindCancelled, []string{
		"abort", "cancel", "timed out", "timeout",
		"context deadline exceeded", "econnaborted",
	}},
	{KindRateLimited, []string{
		"rate limit", "rate exceeded", "too many requests",
		"quota", "throttled", "429",
	}},
	{KindInvalidRequest, []string{
		"invalid", "malformed", "bad request", "400",
	}},
	{KindUnauthorized, []string{
		"unauthorized", "forbidden", "authentication", "auth",
		"api key", "permission denied", "401", "403",
	}},
	{KindNotFound, []string{
		"not found", "does not exist", "404",
	}},
	{KindNetwork, []string{
		"network", "connection", "dial tcp", "refused",
		"no such host", "unreachable",
	}},
}

// Classify maps a raw failure to exactly one Kind. Structured signals win
// over message text: context cancellation, net.Error timeouts, and
// APIError status codes are checked before any substring search. A nil
// error classifies as generic.
func Classify(err error) Kind {
	if err == nil {
		return KindGeneric
	}

	if errors.Is(err, ErrUnknownModel) {
		return KindUnknownModel
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindCancelled
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindCancelled
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case 429:
			return KindRateLimited
		case 400:
			return KindInvalidRequest
		case 401, 403:
			return KindUnauthorized
		case 404:
			return KindNotFound
		}
	}

	msg := strings.ToLower(err.Error())
	for _, rule := range kindKeywords {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				return rule.kind
			}
		}
	}

	return KindGeneric
}
