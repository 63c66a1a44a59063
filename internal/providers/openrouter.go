package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
)

const (
	OpenRouterName    = "openrouter"
	OpenRouterBaseURL = "https://openrouter.ai/api/v1"
)

// OpenRouterConfig holds configuration for the OpenRouter client.
type OpenRouterConfig struct {
	APIKey       string
	BaseURL      string
	DefaultModel string
	Timeout      time.Duration
	MaxRetries   int           // Max transport retry attempts (default: 3)
	RetryDelay   time.Duration // Base delay between retries (default: 1s)
}

// OpenRouterClient implements LLMClient using the OpenRouter API.
type OpenRouterClient struct {
	apiKey       string
	baseURL      string
	defaultModel string
	client       *http.Client
	maxRetries   int
	retryDelay   time.Duration
}

// NewOpenRouterClient creates a new OpenRouter client.
func NewOpenRouterClient(cfg OpenRouterConfig) *OpenRouterClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = OpenRouterBaseURL
	}
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = "anthropic/claude-3.5-sonnet"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = time.Second
	}

	return &OpenRouterClient{
		apiKey:       cfg.APIKey,
		baseURL:      cfg.BaseURL,
		defaultModel: cfg.DefaultModel,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
	}
}

// Name returns the client identifier.
func (c *OpenRouterClient) Name() string {
	return OpenRouterName
}

// Chat sends a chat completion request.
func (c *OpenRouterClient) Chat(ctx context.Context, req *ChatRequest) (*ChatResult, error) {
	start := time.Now()

	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	orReq := openRouterRequest{
		Model:       model,
		Messages:    make([]openRouterMessage, 0, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	for _, m := range req.Messages {
		orReq.Messages = append(orReq.Messages, openRouterMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	if req.ResponseFormat != nil {
		orReq.ResponseFormat = &openRouterResponseFormat{
			Type:       req.ResponseFormat.Type,
			JSONSchema: req.ResponseFormat.JSONSchema,
		}
	}

	orResp, err := c.doRequest(ctx, "/chat/completions", &orReq)
	if err != nil {
		return nil, err
	}

	if len(orResp.Choices) == 0 {
		return nil, &TransportError{
			Provider: OpenRouterName,
			Err:      fmt.Errorf("no choices in response"),
		}
	}

	return &ChatResult{
		Content:          orResp.Choices[0].Message.Content,
		PromptTokens:     orResp.Usage.PromptTokens,
		CompletionTokens: orResp.Usage.CompletionTokens,
		TotalTokens:      orResp.Usage.TotalTokens,
		ExecutionTime:    time.Since(start),
		Provider:         OpenRouterName,
		ModelUsed:        orResp.Model,
		RequestID:        requestID,
	}, nil
}

// doRequest makes an HTTP request to OpenRouter. Transport retries (429 and
// 5xx) are handled here with exponential backoff and jitter; everything else
// fails immediately.
func (c *OpenRouterClient) doRequest(ctx context.Context, path string, body *openRouterRequest) (*openRouterResponse, error) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, &TransportError{
			Provider: OpenRouterName,
			Err:      fmt.Errorf("failed to marshal request: %w", err),
		}
	}

	var (
		orResp     openRouterResponse
		lastStatus int
	)

	err = retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(bodyBytes))
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("failed to create request: %w", err))
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
			req.Header.Set("HTTP-Referer", "https://github.com/jackzampolin/coax")
			req.Header.Set("X-Title", "Coax")

			resp, err := c.client.Do(req)
			if err != nil {
				lastStatus = 0
				return fmt.Errorf("request failed: %w", err)
			}
			defer resp.Body.Close()

			respBody, err := io.ReadAll(resp.Body)
			if err != nil {
				lastStatus = 0
				return fmt.Errorf("failed to read response: %w", err)
			}

			lastStatus = resp.StatusCode
			if resp.StatusCode != http.StatusOK {
				err := fmt.Errorf("OpenRouter error (status %d): %s", resp.StatusCode, string(respBody))
				if !retryableStatus(resp.StatusCode) {
					return retry.Unrecoverable(err)
				}
				return err
			}

			if err := json.Unmarshal(respBody, &orResp); err != nil {
				return retry.Unrecoverable(fmt.Errorf("failed to unmarshal response: %w", err))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(c.maxRetries)),
		retry.Delay(c.retryDelay),
		retry.MaxDelay(10*time.Second),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.MaxJitter(c.retryDelay/2),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, &TransportError{
			Provider: OpenRouterName,
			Status:   lastStatus,
			Err:      err,
		}
	}

	return &orResp, nil
}

// retryableStatus returns true for status codes worth another attempt.
func retryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= 500
}

// OpenRouter API types

type openRouterRequest struct {
	Model          string                    `json:"model"`
	Messages       []openRouterMessage       `json:"messages"`
	Temperature    float64                   `json:"temperature,omitempty"`
	MaxTokens      int                       `json:"max_tokens,omitempty"`
	ResponseFormat *openRouterResponseFormat `json:"response_format,omitempty"`
}

type openRouterMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openRouterResponseFormat struct {
	Type       string          `json:"type"`
	JSONSchema json.RawMessage `json:"json_schema,omitempty"`
}

type openRouterResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Verify interface
var _ LLMClient = (*OpenRouterClient)(nil)
