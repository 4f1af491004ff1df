// Package chat is a minimal client for the Anthropic messages API. Each call
// sends a single user message; no conversation state is retained.
package chat

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	// DefaultModel is the model used when no override is configured.
	DefaultModel = "claude-3-5-haiku-latest"
	// MaxTokens caps the length of every reply.
	MaxTokens = 300
)

// ErrNotConfigured is returned when the client has no API key.
var ErrNotConfigured = errors.New("Claude API key is not configured")

// ErrUpstream is returned when the API answers with an error status or a
// body without text content.
var ErrUpstream = errors.New("failed to get response from Claude API")

// Client sends single-turn completions.
type Client struct {
	api        anthropic.Client
	configured bool
	model      string
}

// NewClient constructs a Client. baseURL replaces the API host when set and
// an empty model falls back to DefaultModel. An empty apiKey yields a client
// whose Complete always returns ErrNotConfigured. opts are passed to the SDK
// after the defaults.
func NewClient(apiKey, baseURL, model string, opts ...option.RequestOption) *Client {
	if model == "" {
		model = DefaultModel
	}
	base := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
	}
	if baseURL != "" {
		base = append(base, option.WithBaseURL(baseURL))
	}
	return &Client{
		api:        anthropic.NewClient(append(base, opts...)...),
		configured: apiKey != "",
		model:      model,
	}
}

// Configured reports whether the client has an API key.
func (c *Client) Configured() bool { return c.configured }

// Complete sends msg as a user message and returns the text of the first
// content block of the reply.
func (c *Client) Complete(ctx context.Context, msg string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	if strings.TrimSpace(msg) == "" {
		return "", errors.New("chat.Client.Complete: message is required")
	}

	reply, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: MaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(msg)),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("chat.Client.Complete: %w: status %d: %v", ErrUpstream, apiErr.StatusCode, err)
		}
		return "", fmt.Errorf("chat.Client.Complete: %w", err)
	}
	if len(reply.Content) == 0 {
		return "", fmt.Errorf("chat.Client.Complete: %w: empty content", ErrUpstream)
	}
	return reply.Content[0].Text, nil
}
