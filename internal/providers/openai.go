package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/google/uuid"
)

const (
	OpenAIName         = "openai"
	openAIDefaultModel = "gpt-4o-mini"
)

// OpenAIConfig holds configuration for the OpenAI client.
type OpenAIConfig struct {
	APIKey       string
	DefaultModel string
	Timeout      time.Duration
	MaxRetries   int          // Retry attempts delegated to the SDK transport
	BaseURL      string       // Optional (tests)
	HTTPClient   *http.Client // Optional (tests)
}

// OpenAIClient implements LLMClient using the official OpenAI SDK. The SDK
// owns transport retries and HTTP framing; structured output uses the native
// json_schema response format.
type OpenAIClient struct {
	apiKey       string
	defaultModel string
	client       openai.Client
}

// NewOpenAIClient creates a new OpenAI client.
func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = openAIDefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIClient{
		apiKey:       cfg.APIKey,
		defaultModel: cfg.DefaultModel,
		client:       openai.NewClient(opts...),
	}
}

// Name returns the client identifier.
func (c *OpenAIClient) Name() string {
	return OpenAIName
}

// Chat sends a chat completion request.
func (c *OpenAIClient) Chat(ctx context.Context, req *ChatRequest) (*ChatResult, error) {
	start := time.Now()

	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)),
	}
	for _, m := range req.Messages {
		switch m.Role {
		case "system":
			params.Messages = append(params.Messages, openai.SystemMessage(m.Content))
		case "assistant":
			params.Messages = append(params.Messages, openai.AssistantMessage(m.Content))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(m.Content))
		}
	}
	if req.Temperature != 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}

	if req.ResponseFormat != nil {
		rf, err := openAIResponseFormat(req.ResponseFormat)
		if err != nil {
			return nil, &TransportError{Provider: OpenAIName, Err: err}
		}
		params.ResponseFormat = rf
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		status := 0
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			status = apiErr.StatusCode
		}
		return nil, &TransportError{Provider: OpenAIName, Status: status, Err: err}
	}

	if len(resp.Choices) == 0 {
		return nil, &TransportError{
			Provider: OpenAIName,
			Err:      fmt.Errorf("no choices in response"),
		}
	}

	return &ChatResult{
		Content:          resp.Choices[0].Message.Content,
		PromptTokens:     int(resp.Usage.PromptTokens),
		CompletionTokens: int(resp.Usage.CompletionTokens),
		TotalTokens:      int(resp.Usage.TotalTokens),
		ExecutionTime:    time.Since(start),
		Provider:         OpenAIName,
		ModelUsed:        resp.Model,
		RequestID:        requestID,
	}, nil
}

// openAIResponseFormat converts the canonical {"name","strict","schema"}
// wrapper into the SDK's json_schema response format union.
func openAIResponseFormat(rf *ResponseFormat) (openai.ChatCompletionNewParamsResponseFormatUnion, error) {
	var wrapper struct {
		Name   string          `json:"name"`
		Strict bool            `json:"strict"`
		Schema json.RawMessage `json:"schema"`
	}
	if err := json.Unmarshal(rf.JSONSchema, &wrapper); err != nil {
		return openai.ChatCompletionNewParamsResponseFormatUnion{},
			fmt.Errorf("invalid response format schema: %w", err)
	}
	if wrapper.Name == "" || len(wrapper.Schema) == 0 {
		return openai.ChatCompletionNewParamsResponseFormatUnion{},
			fmt.Errorf("response format schema missing name or schema")
	}

	return openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
			JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
				Name:   wrapper.Name,
				Strict: openai.Bool(wrapper.Strict),
				Schema: wrapper.Schema,
			},
		},
	}, nil
}

// Verify interface
var _ LLMClient = (*OpenAIClient)(nil)
