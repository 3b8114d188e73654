// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package text

import "golang.org/x/text/language"

// Language is an interface language selection.
type Language string

const (
	LangAmharic Language = "am"
	LangEnglish Language = "en"
)

// supported lists the interface languages in preference order. Amharic is
// the product default and the matcher fallback.
var supported = []language.Tag{
	language.Amharic,
	language.English,
}

var matcher = language.NewMatcher(supported)

// Match resolves a user-supplied language preference (a BCP 47 tag or a
// bare "am"/"en") to a supported Language. Unrecognized input falls back
// to Amharic.
func Match(pref string) Language {
	tag, _ := language.MatchStrings(matcher, pref)
	base, _ := tag.Base()
	if base.String() == "en" {
		return LangEnglish
	}
	return LangAmharic
}

// Strings holds the interface chrome text for one language.
type Strings struct {
	AppTitle         string
	Welcome          string
	InputPlaceholder string
	ChatHistory      string
	NewChat          string
	DefaultChatName  string
	Loading          string
	SettingsTitle    string
	ThemeLabel       string
	FontSizeLabel    string
	LanguageLabel    string
	Copy             string
	Copied           string
}

var amharic = Strings{
	AppTitle:         "ባሻ",
	Welcome:          "እንኳን ደህና መጡ! ጥያቄዎን በአማርኛ ይጻፉ።",
	InputPlaceholder: "በአማርኛ ይጻፉ...",
	ChatHistory:      "የውይይት ታሪክ",
	NewChat:          "አዲስ ውይይት ጀምር",
	DefaultChatName:  "አዲስ ውይይት",
	Loading:          "እባክዎ ይጠብቁ...",
	SettingsTitle:    "ቅንብሮች",
	ThemeLabel:       "ጭብጥ",
	FontSizeLabel:    "የፊደል መጠን",
	LanguageLabel:    "ቋንቋ",
	Copy:             "ቅዳ",
	Copied:           "ተቀድቷል",
}

var english = Strings{
	AppTitle:         "ባሻ",
	Welcome:          "Welcome! Ask your question in Amharic.",
	InputPlaceholder: "Type in Amharic...",
	ChatHistory:      "Chat history",
	NewChat:          "Start a new chat",
	DefaultChatName:  "New chat",
	Loading:          "Please wait...",
	SettingsTitle:    "Settings",
	ThemeLabel:       "Theme",
	FontSizeLabel:    "Font size",
	LanguageLabel:    "Language",
	Copy:             "Copy",
	Copied:           "Copied",
}

// UI returns the chrome strings for lang.
func UI(lang Language) Strings {
	if lang == LangEnglish {
		return english
	}
	return amharic
}
