// Package providers implements clients for hosted LLM chat-completion APIs
// and a registry that instantiates them from configuration.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// LLMClient is the interface for chat/completion requests.
type LLMClient interface {
	// Chat sends a chat completion request.
	Chat(ctx context.Context, req *ChatRequest) (*ChatResult, error)

	// Name returns the client identifier (e.g., "openrouter").
	Name() string
}

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// ResponseFormat specifies structured output format. JSONSchema carries the
// {"name","strict","schema"} wrapper produced by schema.ResponseFormatJSON.
type ResponseFormat struct {
	Type       string          `json:"type"` // "json_schema"
	JSONSchema json.RawMessage `json:"json_schema,omitempty"`
}

// ChatRequest is a request to an LLM.
type ChatRequest struct {
	// Required
	Messages []Message `json:"messages"`

	// Model selection (uses client default if empty)
	Model string `json:"model,omitempty"`

	// Generation parameters
	Temperature float64 `json:"temperature,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`

	// Structured output
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`

	// Request tracking
	RequestID string `json:"-"`
}

// ChatResult is the response from an LLM call.
type ChatResult struct {
	// Response content
	Content string `json:"content"`

	// Token counts
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`

	// Timing
	ExecutionTime time.Duration `json:"execution_time"`

	// Provider info
	Provider  string `json:"provider"`
	ModelUsed string `json:"model_used"`

	// Request tracking
	RequestID string `json:"request_id"`
}

// TransportError reports a failed outbound call: network errors, auth
// rejections, rate limits, or malformed provider responses. Status is the
// HTTP status code when one was received, 0 otherwise.
type TransportError struct {
	Provider string
	Status   int
	Err      error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s transport error (status %d): %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("%s transport error: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
