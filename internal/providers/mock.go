package providers

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

const MockClientName = "mock"

// MockClient is an LLMClient for testing.
type MockClient struct {
	// Configurable behavior
	Latency      time.Duration
	ShouldFail   bool
	FailAfter    int // Fail after N requests (0 = never)
	ResponseText string

	// Responses, when set, are returned in order; the last one repeats.
	Responses []string

	// State
	requestCount atomic.Int64

	mu       sync.Mutex
	requests []*ChatRequest
}

// NewMockClient creates a new mock client with sensible defaults.
func NewMockClient() *MockClient {
	return &MockClient{
		Latency:      time.Millisecond,
		ResponseText: "mock response",
	}
}

// Name returns the client identifier.
func (c *MockClient) Name() string {
	return MockClientName
}

// Chat sends a mock chat request.
func (c *MockClient) Chat(ctx context.Context, req *ChatRequest) (*ChatResult, error) {
	start := time.Now()
	count := c.requestCount.Add(1)

	c.mu.Lock()
	c.requests = append(c.requests, req)
	c.mu.Unlock()

	if c.ShouldFail {
		return nil, &TransportError{
			Provider: MockClientName,
			Err:      fmt.Errorf("mock client configured to fail"),
		}
	}
	if c.FailAfter > 0 && int(count) > c.FailAfter {
		return nil, &TransportError{
			Provider: MockClientName,
			Err:      fmt.Errorf("mock client failed after %d requests", c.FailAfter),
		}
	}

	// Simulate latency
	select {
	case <-time.After(c.Latency):
	case <-ctx.Done():
		return nil, &TransportError{Provider: MockClientName, Err: ctx.Err()}
	}

	content := c.ResponseText
	if len(c.Responses) > 0 {
		idx := int(count) - 1
		if idx >= len(c.Responses) {
			idx = len(c.Responses) - 1
		}
		content = c.Responses[idx]
	}

	promptTokens := 0
	for _, m := range req.Messages {
		promptTokens += len(m.Content) / 4 // Rough estimate
	}
	completionTokens := len(content) / 4

	return &ChatResult{
		Content:          content,
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      promptTokens + completionTokens,
		ExecutionTime:    time.Since(start),
		Provider:         MockClientName,
		ModelUsed:        req.Model,
		RequestID:        fmt.Sprintf("mock-%d", count),
	}, nil
}

// RequestCount returns the number of requests made.
func (c *MockClient) RequestCount() int64 {
	return c.requestCount.Load()
}

// Requests returns a copy of every request received so far.
func (c *MockClient) Requests() []*ChatRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*ChatRequest, len(c.requests))
	copy(out, c.requests)
	return out
}

// Reset clears the request counter and recorded requests.
func (c *MockClient) Reset() {
	c.requestCount.Store(0)
	c.mu.Lock()
	c.requests = nil
	c.mu.Unlock()
}

// Verify interface
var _ LLMClient = (*MockClient)(nil)
