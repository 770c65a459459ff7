// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ai calls a chat-completion-style endpoint for metadata
// extraction, title/abstract translation, and literature review.
// All three operations share one call primitive; the caller-facing
// failure kinds are ConfigError, APIError, and MalformedResponseError.
package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pdiddy/paperdesk/internal/httputil"
	"github.com/pdiddy/paperdesk/pkg/types"
)

// Caller abstracts the chat-completion call so tests can supply a mock.
type Caller interface {
	Call(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Gateway implements Caller against an OpenAI-compatible HTTP endpoint.
type Gateway struct {
	Settings types.AISettings
	Client   *http.Client
}

// NewGateway returns a Gateway using the given settings. A nil client
// falls back to http.DefaultClient; no request timeout is imposed beyond
// the transport default.
func NewGateway(settings types.AISettings, client *http.Client) *Gateway {
	if client == nil {
		client = http.DefaultClient
	}
	return &Gateway{Settings: settings, Client: client}
}

const completionsSuffix = "/chat/completions"

// NormalizeEndpoint trims surrounding whitespace and a trailing slash,
// then appends /chat/completions unless the URL already targets it.
// Normalizing an already-normalized URL yields the same string.
func NormalizeEndpoint(raw string) string {
	u := strings.TrimSpace(raw)
	u = strings.TrimSuffix(u, "/")
	if !strings.HasSuffix(u, completionsSuffix) {
		u += completionsSuffix
	}
	return u
}

// Chat-completion wire structures.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Call sends one system+user exchange and returns the top completion
// choice's message content. Incomplete settings fail with ConfigError
// before any network access; a non-2xx response fails with APIError
// carrying the status and raw body.
func (g *Gateway) Call(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var missing []string
	if g.Settings.URL == "" {
		missing = append(missing, "url")
	}
	if g.Settings.Key == "" {
		missing = append(missing, "key")
	}
	if g.Settings.Model == "" {
		missing = append(missing, "model")
	}
	if len(missing) > 0 {
		return "", &ConfigError{Missing: missing}
	}

	payload := chatRequest{
		Model: g.Settings.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.3,
	}

	resp, err := httputil.PostJSON(ctx, g.Client, NormalizeEndpoint(g.Settings.URL), g.Settings.Key, payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{Status: resp.StatusCode, Body: httputil.ReadBody(resp)}
	}

	body := httputil.ReadBody(resp)
	var cr chatResponse
	if err := json.Unmarshal([]byte(body), &cr); err != nil {
		return "", &MalformedResponseError{Raw: body, Err: err}
	}
	if len(cr.Choices) == 0 {
		return "", &MalformedResponseError{Raw: body, Err: errNoChoices}
	}
	return cr.Choices[0].Message.Content, nil
}
