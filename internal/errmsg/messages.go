// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package errmsg

import "github.com/basha-chat/basha-tui/internal/text"

// The assistant speaks Amharic, so failures surface in Amharic by default.
// English variants exist for the "en" interface preference.

var amharicMessages = map[Kind]string{
	KindCancelled:      "ይቅርታ፣ ግንኙነቱ ተቋርጧል። እባክዎ እንደገና ይሞክሩ።",
	KindRateLimited:    "ይቅርታ፣ በአሁኑ ጊዜ ብዙ ጥያቄዎች አሉ። እባክዎ ጥቂት ቆይተው ይሞክሩ።",
	KindInvalidRequest: "ይቅርታ፣ ጥያቄው ትክክል አይደለም። እባክዎ በተለየ መልኩ ይሞክሩ።",
	KindUnauthorized:   "ይቅርታ፣ የተጠቃሚ ፈቃድ ችግር አለ። እባክዎ እንደገና ይሞክሩ።",
	KindNotFound:       "ይቅርታ፣ የተጠየቀው ሞዴል አልተገኘም።",
	KindNetwork:        "ይቅርታ፣ የኢንተርኔት ግንኙነት ችግር አለ። እባክዎ ግንኙነትዎን ያረጋግጡ እና እንደገና ይሞክሩ።",
	KindUnknownModel:   "ይቅርታ፣ ያልታወቀ ሞዴል። እባክዎ ሌላ ሞዴል ይምረጡ።",
	KindGeneric:        "ይቅርታ፣ ችግር ተፈጥሯል። እባክዎ ቆይተው እንደገና ይሞክሩ።",
}

var englishMessages = map[Kind]string{
	KindCancelled:      "Sorry, the connection was interrupted. Please try again.",
	KindRateLimited:    "Sorry, there are too many requests right now. Please wait a moment and try again.",
	KindInvalidRequest: "Sorry, that request was not valid. Please try phrasing it differently.",
	KindUnauthorized:   "Sorry, there is an authorization problem. Please try again.",
	KindNotFound:       "Sorry, the requested model was not found.",
	KindNetwork:        "Sorry, there is a network problem. Please check your connection and try again.",
	KindUnknownModel:   "Sorry, unknown model. Please pick a different model.",
	KindGeneric:        "Sorry, something went wrong. Please try again later.",
}

const (
	amharicNoResponse = "ይቅርታ፣ ምላሽ ማግኘት አልቻልኩም።"
	englishNoResponse = "Sorry, I could not get a response."
)

// Localize returns the fixed user-facing message for a kind.
func Localize(kind Kind, lang text.Language) string {
	msgs := amharicMessages
	if lang == text.LangEnglish {
		msgs = englishMessages
	}
	if msg, ok := msgs[kind]; ok {
		return msg
	}
	return msgs[KindGeneric]
}

// LocalizeError classifies err and returns its localized message.
func LocalizeError(err error, lang text.Language) string {
	return Localize(Classify(err), lang)
}

// NoResponse is the fallback text when a provider answers with an empty
// choice rather than an error.
func NoResponse(lang text.Language) string {
	if lang == text.LangEnglish {
		return englishNoResponse
	}
	return amharicNoResponse
}
