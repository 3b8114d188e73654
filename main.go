// basha TUI - an Amharic chat interface for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/basha-chat/basha-tui/internal/catalog"
	chatflow "github.com/basha-chat/basha-tui/internal/chat"
	"github.com/basha-chat/basha-tui/internal/config"
	"github.com/basha-chat/basha-tui/internal/provider/gemini"
	"github.com/basha-chat/basha-tui/internal/provider/openai"
	"github.com/basha-chat/basha-tui/internal/router"
	"github.com/basha-chat/basha-tui/internal/storage"
	"github.com/basha-chat/basha-tui/internal/store"
	"github.com/basha-chat/basha-tui/internal/text"
	chatui "github.com/basha-chat/basha-tui/internal/ui/chat"
)

// Version information (set at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global program reference for async streaming
var (
	programRef *tea.Program
	programMu  sync.Mutex
)

func sendToProgram(msg tea.Msg) {
	programMu.Lock()
	p := programRef
	programMu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("basha %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "basha requires an interactive terminal")
		os.Exit(1)
	}

	// The TUI owns the screen; logs go to a file instead.
	if err := setupLogging(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	dbPath, err := storage.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "storage error: %v\n", err)
		os.Exit(1)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "storage error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	settings := loadSettings(db, cfg)
	lang := text.Match(settings.Language)

	// Chat state, seeded from persisted history.
	chatStore := store.New()
	if sessions, err := db.LoadSessions(); err != nil {
		log.Printf("main: session history unavailable: %v", err)
	} else {
		chatStore.SetInitialSessions(sessions)
	}
	chatStore.SetOnChange(func() {
		if err := db.SaveSessions(chatStore.Sessions()); err != nil {
			log.Printf("main: session save failed: %v", err)
		}
	})

	rt := router.New(
		newOpenAIAdapter(cfg, lang),
		newGeminiAdapter(cfg, lang),
		lang,
	)

	orchestrator := chatflow.New(chatStore, rt, lang)
	orchestrator.SetOnToken(func() {
		sendToProgram(chatui.StreamTickMsg{})
	})

	// Hot-reload provider credentials when the config file changes.
	if cfgPath, err := config.ConfigPath(); err == nil {
		watcher, werr := config.NewWatcher(cfgPath, func(next *config.Config) {
			log.Printf("main: config reloaded")
			rt.SetAdapter(router.ProviderOpenAI, newOpenAIAdapter(next, lang))
			rt.SetAdapter(router.ProviderGemini, newGeminiAdapter(next, lang))
		})
		if werr != nil {
			log.Printf("main: config watch disabled: %v", werr)
		} else {
			defer watcher.Close()
		}
	}

	deps := &chatui.Deps{
		Store:        chatStore,
		Orchestrator: orchestrator,
		SaveSettings: func(s config.Settings) {
			if err := db.SaveJSON(storage.KeySettings, s); err != nil {
				log.Printf("main: settings save failed: %v", err)
			}
		},
	}

	p := tea.NewProgram(
		chatui.New(deps, settings),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	programMu.Lock()
	programRef = p
	programMu.Unlock()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running basha: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging routes the standard logger to ~/.basha/basha.log.
func setupLogging() error {
	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(dir, "basha.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
	return nil
}

// loadSettings merges persisted preferences over config-file defaults.
func loadSettings(db *storage.Store, cfg *config.Config) config.Settings {
	settings := config.DefaultSettings()
	settings.Theme = cfg.UI.Theme
	settings.Language = cfg.UI.Language
	settings.Model = cfg.UI.DefaultModel

	if ok, err := db.LoadJSON(storage.KeySettings, &settings); err != nil {
		log.Printf("main: stored settings unreadable: %v", err)
	} else if !ok {
		log.Printf("main: first run, using default settings")
	}

	settings.Normalize()
	if !catalog.IsKnown(settings.Model) {
		settings.Model = catalog.Default().ID
	}
	return settings
}

func newOpenAIAdapter(cfg *config.Config, lang text.Language) *openai.Adapter {
	return openai.New(openai.Config{
		APIKey:  cfg.Providers.OpenAI.APIKey,
		BaseURL: cfg.Providers.OpenAI.BaseURL,
		Lang:    lang,
	})
}

func newGeminiAdapter(cfg *config.Config, lang text.Language) *gemini.Adapter {
	return gemini.New(gemini.Config{
		APIKey:  cfg.Providers.Gemini.APIKey,
		BaseURL: cfg.Providers.Gemini.BaseURL,
		Lang:    lang,
	})
}
