// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/basha-chat/basha-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the on-disk application configuration.
type Config struct {
	Version string `toml:"version"`

	Providers ProvidersConfig `toml:"providers"`
	UI        UIConfig        `toml:"ui"`
}

// ProvidersConfig holds per-provider credentials and endpoints.
type ProvidersConfig struct {
	OpenAI ProviderConfig `toml:"openai"`
	Gemini ProviderConfig `toml:"gemini"`
}

// ProviderConfig configures one upstream provider.
type ProviderConfig struct {
	// APIKey authenticates against the provider. Usually supplied via
	// environment rather than written to disk.
	APIKey string `toml:"api_key"`
	// BaseURL overrides the provider endpoint, for proxies and
	// compatible servers. Empty means the provider default.
	BaseURL string `toml:"base_url"`
}

// UIConfig contains startup UI configuration.
type UIConfig struct {
	// Theme is "dark" or "light".
	Theme string `toml:"theme"`
	// Language is the UI language tag, "am" or "en".
	Language string `toml:"language"`
	// DefaultModel is the model preselected on first run.
	DefaultModel string `toml:"default_model"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		UI: UIConfig{
			Theme:        "dark",
			Language:     "am",
			DefaultModel: "gpt-4o-mini",
		},
	}
}

// =============================================================================
// SETTINGS (RUNTIME PREFERENCES)
// =============================================================================

// Settings are the user preferences that change while the app runs.
// They persist as a JSON blob through the storage layer, separate from
// the TOML config so credentials and preferences never mix.
type Settings struct {
	Theme    string `json:"theme"`
	FontSize string `json:"font_size"`
	Language string `json:"language"`
	Model    string `json:"model"`
}

// Font sizes the chat view understands.
const (
	FontSmall  = "small"
	FontMedium = "medium"
	FontLarge  = "large"
)

// DefaultSettings returns the preferences used before the user has
// changed anything.
func DefaultSettings() Settings {
	return Settings{
		Theme:    "dark",
		FontSize: FontMedium,
		Language: "am",
		Model:    "gpt-4o-mini",
	}
}

// BiggerFont steps small -> medium -> large, stopping at large.
func BiggerFont(size string) string {
	switch size {
	case FontSmall:
		return FontMedium
	case FontMedium:
		return FontLarge
	default:
		return FontLarge
	}
}

// SmallerFont steps large -> medium -> small, stopping at small.
func SmallerFont(size string) string {
	switch size {
	case FontLarge:
		return FontMedium
	case FontMedium:
		return FontSmall
	default:
		return FontSmall
	}
}

// Normalize drops out-of-range values back to usable ones, so a stale
// or hand-edited blob cannot wedge the UI.
func (s *Settings) Normalize() {
	if s.Theme != "dark" && s.Theme != "light" {
		s.Theme = "dark"
	}
	if s.Language != "am" && s.Language != "en" {
		s.Language = "am"
	}
	switch s.FontSize {
	case FontSmall, FontMedium, FontLarge:
	default:
		s.FontSize = FontMedium
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the application configuration directory, ~/.basha.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".basha"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the config file, applies environment overrides, and
// validates the result. A missing file is not an error; defaults plus
// environment are returned.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from an explicit file location.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, statErr := os.Stat(path); statErr == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnvOverrides lets the environment take precedence over the file.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("BASHA_OPENAI_KEY"); v != "" {
		c.Providers.OpenAI.APIKey = v
	}
	if v := os.Getenv("BASHA_OPENAI_BASE_URL"); v != "" {
		c.Providers.OpenAI.BaseURL = v
	}
	if v := os.Getenv("BASHA_GEMINI_KEY"); v != "" {
		c.Providers.Gemini.APIKey = v
	}
	if v := os.Getenv("BASHA_GEMINI_BASE_URL"); v != "" {
		c.Providers.Gemini.BaseURL = v
	}
}

// Validate checks the configuration for values that would break the app
// at runtime.
func (c *Config) Validate() error {
	if c.UI.Theme != "" && c.UI.Theme != "dark" && c.UI.Theme != "light" {
		return fmt.Errorf("ui.theme must be \"dark\" or \"light\", got %q", c.UI.Theme)
	}
	if c.UI.Language != "" && c.UI.Language != "am" && c.UI.Language != "en" {
		return fmt.Errorf("ui.language must be \"am\" or \"en\", got %q", c.UI.Language)
	}
	for name, p := range map[string]ProviderConfig{
		"providers.openai": c.Providers.OpenAI,
		"providers.gemini": c.Providers.Gemini,
	} {
		if p.BaseURL == "" {
			continue
		}
		u, err := url.Parse(p.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("%s.base_url is not a valid http(s) URL: %q", name, p.BaseURL)
		}
	}
	return nil
}

// Save writes the configuration to the default TOML file. Config files
// carry API keys, so they are written atomically with 0600 permissions.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveToPath(cfg, path)
}

// SaveToPath writes the configuration to an explicit file location.
func SaveToPath(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("# basha configuration file\n")
	buf.WriteString("# API keys can also be supplied via BASHA_OPENAI_KEY / BASHA_GEMINI_KEY\n\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
