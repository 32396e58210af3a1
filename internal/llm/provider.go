// Package llm abstracts the language-model providers used for card
// enrichment behind a single Provider interface with schema-constrained
// JSON output.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction every backend implements.
type Provider interface {
	// Generate sends a prompt and returns the model's output. When the
	// request carries a Schema, the provider asks for structured output
	// and the returned Content is JSON validated against that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the model this provider is configured to use.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Enrichment is single-turn, so this
	// is usually one user message.
	Messages []Message

	// Schema, when set, constrains the output to JSON matching it.
	// When nil the Content comes back as raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0.0, 1.0]; zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure the model must return.
type Schema struct {
	// Name identifies the schema to the provider, kebab-case,
	// e.g. "card-enrichment".
	Name string

	// Description tells the model what the structure represents.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when the request had a Schema,
	// otherwise the raw text wrapped as a JSON value.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token counts for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
