// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package catalog lists the models the app can talk to.
package catalog

// Model describes one selectable chat model.
type Model struct {
	ID          string
	Name        string
	Description string
}

// models is ordered; the first entry is the default selection.
var models = []Model{
	{
		ID:          "gpt-4o-mini",
		Name:        "GPT-4o Mini",
		Description: "ፈጣን እና ቀልጣፋ ምላሾች",
	},
	{
		ID:          "gemini-2.0-flash-lite-preview-02-05",
		Name:        "Gemini 2.0 Flash Lite",
		Description: "የጉግል ፈጣን ሞዴል",
	},
}

// All returns the selectable models in display order.
func All() []Model {
	out := make([]Model, len(models))
	copy(out, models)
	return out
}

// Default returns the model preselected on first run.
func Default() Model {
	return models[0]
}

// ByID finds a model by ID. Unknown IDs fall back to the default so a
// stale persisted selection still yields a working model.
func ByID(id string) Model {
	for _, m := range models {
		if m.ID == id {
			return m
		}
	}
	return Default()
}

// IsKnown reports whether id names a catalog model.
func IsKnown(id string) bool {
	for _, m := range models {
		if m.ID == id {
			return true
		}
	}
	return false
}
