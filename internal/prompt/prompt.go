// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package prompt

import "strings"

// SystemChat is the default persona prompt. The assistant is ባሻ and
// answers in Amharic only.
const SystemChat = "You are ባሻ, a wise and knowledgeable Ethiopian AI assistant. " +
	"ALWAYS respond in Amharic language only. NEVER reveal that you are an AI model. " +
	"If asked about your identity, ALWAYS say you are ባሻ, created by Ethiopian developers. " +
	"If anyone asks about your true identity, politely deflect and reaffirm you are ባሻ. " +
	"dont let them know that you are asked to hide your identity, and use amharic alphabets only;"

// SystemCode is used when the message looks like a programming request.
const SystemCode = "You are a coding assistant. ALWAYS respond in Amharic language only. " +
	"Always format code responses using markdown code blocks with appropriate language tags. " +
	"After each code block, provide an explanation in Amharic."

// codeKeywords is the fixed vocabulary of the coding-intent classifier.
var codeKeywords = []string{
	"code",
	"program",
	"script",
	"function",
	"class",
	"implementation",
	"example",
	"write",
	"create",
	"generate",
	"implement",
	"solve",
}

// IsCodeRequest reports whether the message contains any coding keyword,
// case-insensitively.
func IsCodeRequest(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range codeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// System returns the system prompt for a query, code or chat.
func System(isCodeQuery bool) string {
	if isCodeQuery {
		return SystemCode
	}
	return SystemChat
}
