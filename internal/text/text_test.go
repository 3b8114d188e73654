// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package text

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		pref string
		want Language
	}{
		{"am", LangAmharic},
		{"am-ET", LangAmharic},
		{"en", LangEnglish},
		{"en-US", LangEnglish},
		{"fr", LangAmharic}, // unsupported falls back to Amharic
		{"", LangAmharic},
		{"garbage!!", LangAmharic},
	}

	for _, tc := range tests {
		t.Run(tc.pref, func(t *testing.T) {
			if got := Match(tc.pref); got != tc.want {
				t.Errorf("Match(%q) = %q, want %q", tc.pref, got, tc.want)
			}
		})
	}
}

func TestUI_BothLanguagesComplete(t *testing.T) {
	for _, lang := range []Language{LangAmharic, LangEnglish} {
		s := UI(lang)
		if s.Welcome == "" || s.InputPlaceholder == "" || s.NewChat == "" {
			t.Errorf("UI(%q) has empty required strings: %+v", lang, s)
		}
	}
}
