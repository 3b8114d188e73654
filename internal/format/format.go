// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import (
	"regexp"
	"strings"
)

var (
	codeStartRe = regexp.MustCompile(`^(class|public|private|function|def|import|package|const|let|var)\b`)
	fileExtRe   = regexp.MustCompile(`\.(java|py|js|ts|go|cpp|cs|php)$`)
)

// EnsureCodeFences wraps code-looking regions of a plain response in
// markdown fences with a guessed language tag. Responses that already
// contain fences pass through untouched. The heuristic is deliberately
// loose: a wrongly fenced paragraph renders fine, an unfenced code block
// does not.
func EnsureCodeFences(response string) string {
	if strings.Contains(response, "```") {
		return response
	}

	lines := strings.Split(response, "\n")
	var out []string
	inCode := false

	for i, line := range lines {
		next := ""
		if i+1 < len(lines) {
			next = lines[i+1]
		}
		trimmed := strings.TrimSpace(line)

		if !inCode && looksLikeCodeStart(trimmed, next) {
			inCode = true
			out = append(out, "```"+guessLanguage(trimmed))
		}

		out = append(out, line)

		if inCode && codeEnds(trimmed, next, i == len(lines)-1) {
			inCode = false
			out = append(out, "```")
		}
	}

	return strings.Join(out, "\n")
}

func looksLikeCodeStart(trimmed, next string) bool {
	if codeStartRe.MatchString(trimmed) {
		return true
	}
	if trimmed != "" && strings.HasPrefix(next, "  ") && strings.TrimSpace(next) != "" {
		return true
	}
	return fileExtRe.MatchString(trimmed)
}

func codeEnds(trimmed, next string, lastLine bool) bool {
	if lastLine {
		return true
	}
	// Blank line followed by unindented prose closes the block.
	return trimmed == "" && strings.TrimSpace(next) != "" && !strings.HasPrefix(next, "  ")
}

func guessLanguage(line string) string {
	switch {
	case strings.Contains(line, "package ") && strings.Contains(line, "func "):
		return "go"
	case strings.Contains(line, "class ") || strings.Contains(line, "public "):
		return "java"
	case strings.Contains(line, "def "):
		return "python"
	case strings.Contains(line, "function") || strings.Contains(line, "const"):
		return "javascript"
	default:
		return "code"
	}
}
