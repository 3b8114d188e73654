// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/basha-chat/basha-tui/internal/errmsg"
	"github.com/basha-chat/basha-tui/internal/format"
	"github.com/basha-chat/basha-tui/internal/model"
	"github.com/basha-chat/basha-tui/internal/prompt"
	"github.com/basha-chat/basha-tui/internal/provider"
	"github.com/basha-chat/basha-tui/internal/text"
)

// DefaultBaseURL is the Generative Language API base URL.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// DefaultTimeout bounds the single round trip.
const DefaultTimeout = 60 * time.Second

// chunkInterval is the fixed delay between fabricated stream chunks.
const chunkInterval = 50 * time.Millisecond

// Generation parameters, matching the product defaults.
const (
	temperature     = 0.7
	topK            = 40
	topP            = 0.95
	maxOutputTokens = 1024
)

// errEmptyResponse is returned when the API answers 200 with no usable
// candidate.
var errEmptyResponse = errors.New("empty response received")

// Config holds the adapter configuration.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Lang    text.Language
}

// Adapter implements provider.Adapter for the Generative Language API.
type Adapter struct {
	apiKey     string
	baseURL    string
	lang       text.Language
	httpClient *http.Client
}

// New creates a Gemini adapter.
func New(cfg Config) *Adapter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	lang := cfg.Lang
	if lang == "" {
		lang = text.LangAmharic
	}

	return &Adapter{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		lang:    lang,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name implements provider.Adapter.
func (a *Adapter) Name() string { return "gemini" }

// Generate performs one round trip. Failures degrade to the classified
// localized message; plain code-looking answers get markdown fences.
func (a *Adapter) Generate(ctx context.Context, req provider.Request) string {
	raw, err := a.complete(ctx, req)
	if err != nil {
		log.Printf("gemini: generate failed: %v", err)
		return errmsg.LocalizeError(err, a.lang)
	}
	return format.EnsureCodeFences(raw)
}

// GenerateStream fabricates a token stream from the batch response: the
// text is split on spaces and chunks are delivered at a fixed rate. The
// delay pacing uses a rate limiter so cancellation interrupts the wait.
func (a *Adapter) GenerateStream(ctx context.Context, req provider.Request, h provider.Handlers) {
	h.Start()

	raw, err := a.complete(ctx, req)
	if err != nil {
		log.Printf("gemini: stream failed: %v", err)
		h.Error(err)
		h.Complete()
		return
	}

	limiter := rate.NewLimiter(rate.Every(chunkInterval), 1)
	for _, chunk := range strings.Split(raw, " ") {
		if err := limiter.Wait(ctx); err != nil {
			h.Error(err)
			h.Complete()
			return
		}
		h.Token(chunk + " ")
	}

	h.Complete()
}

// complete issues the generateContent call and extracts the text.
func (a *Adapter) complete(ctx context.Context, req provider.Request) (string, error) {
	body, err := json.Marshal(a.buildRequest(req))
	if err != nil {
		return "", err
	}

	url := a.baseURL + "/models/" + req.ModelID + ":generateContent?key=" + a.apiKey
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error.Message != "" {
			return "", &errmsg.APIError{
				Status:  resp.StatusCode,
				Code:    apiErr.Error.Status,
				Message: apiErr.Error.Message,
			}
		}
		return "", &errmsg.APIError{
			Status:  resp.StatusCode,
			Message: "generate request failed: " + resp.Status,
		}
	}

	var result generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	generated := result.text()
	if generated == "" {
		return "", errEmptyResponse
	}
	return generated, nil
}

// buildRequest assembles the multi-turn contents: the system prompt rides
// in the first user turn, followed by the prior conversation, then the
// new message.
func (a *Adapter) buildRequest(req provider.Request) generateContentRequest {
	contents := make([]content, 0, len(req.History)+1)

	for _, m := range req.History {
		role := "user"
		if m.Role == model.RoleAssistant {
			role = "model"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: m.Content}}})
	}

	contents = append(contents, content{
		Role:  "user",
		Parts: []part{{Text: prompt.System(req.IsCodeQuery) + "\n\nUser: " + req.Message}},
	})

	return generateContentRequest{
		Contents: contents,
		GenerationConfig: generationConfig{
			Temperature:     temperature,
			TopK:            topK,
			TopP:            topP,
			MaxOutputTokens: maxOutputTokens,
		},
		SafetySettings: defaultSafetySettings,
	}
}
