// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import (
	"strings"
	"testing"
)

func TestEnsureCodeFences_AlreadyFenced(t *testing.T) {
	in := "እነሆ:\n```python\nprint('hi')\n```\nጨርሻለሁ።"
	if got := EnsureCodeFences(in); got != in {
		t.Errorf("fenced input should pass through, got %q", got)
	}
}

func TestEnsureCodeFences_PlainProse(t *testing.T) {
	in := "ሰላም! እንዴት ልርዳዎት?"
	if got := EnsureCodeFences(in); got != in {
		t.Errorf("prose should pass through, got %q", got)
	}
}

func TestEnsureCodeFences_WrapsCode(t *testing.T) {
	in := "def greet():\n    print('selam')"
	got := EnsureCodeFences(in)

	if !strings.Contains(got, "```python") {
		t.Errorf("expected python fence, got %q", got)
	}
	if strings.Count(got, "```") != 2 {
		t.Errorf("expected one fenced block, got %q", got)
	}
}
