// Package llm provides the language-model client used to turn retrieved
// context into answers. The chatbot core treats the model as an opaque
// text-to-text function; everything here is glue: an OpenAI-compatible
// client, prompt construction from context items, and a circuit-breaker
// wrapper for flaky upstreams.
package llm

import (
	"context"
	"errors"
)

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is the minimal chat surface the chatbot needs.
type Client interface {
	// Chat sends the messages and returns the model's reply text.
	Chat(ctx context.Context, messages []Message) (string, error)

	// Close releases any underlying resources.
	Close() error
}

// Config holds connection and sampling settings for a chat model.
type Config struct {
	// Model is the model identifier, e.g. "gpt-4o-mini".
	Model string
	// APIKey authenticates against the provider.
	APIKey string
	// BaseURL overrides the provider endpoint; empty means the OpenAI
	// default. Any OpenAI-compatible endpoint works here.
	BaseURL string
	// Temperature is the sampling temperature.
	Temperature float32
	// MaxTokens caps the reply length; zero means provider default.
	MaxTokens int
}

// DefaultModel is used when Config.Model is empty.
const DefaultModel = "gpt-4o-mini"

var (
	// ErrEmptyResponse is returned when the provider returns no choices.
	ErrEmptyResponse = errors.New("llm: empty response")
	// ErrMissingAPIKey is returned when no API key is configured.
	ErrMissingAPIKey = errors.New("llm: missing API key")
)
