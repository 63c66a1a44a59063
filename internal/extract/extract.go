// Package extract implements the structured-output extraction workflow:
// build the prompt, issue one schema-constrained model call, and validate
// the raw response against the declared schema before returning it.
//
// The workflow makes exactly one outbound call per invocation and holds no
// state between calls. Failures are either a transport problem (the call did
// not complete; see providers.TransportError) or a schema violation (the
// response does not conform; see ErrSchemaViolation). It never re-prompts
// and never returns a partial result.
package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jackzampolin/coax/internal/prompts/extraction"
	"github.com/jackzampolin/coax/internal/providers"
	"github.com/jackzampolin/coax/internal/schema"
)

// Request describes one extraction: an instruction, the schema the output
// must satisfy, and pass-through invocation parameters.
type Request struct {
	// Instruction is the natural-language task. Required.
	Instruction string

	// Schema is the declared output shape. Required.
	Schema *schema.Definition

	// Invocation parameters, passed through to the provider unvalidated.
	Model       string
	Temperature float64
	MaxTokens   int

	// SystemPrompt overrides the embedded default when set.
	SystemPrompt string

	// RequestID is generated when empty.
	RequestID string
}

// Usage reports token counts for the call.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Result is one validated instance of the requested schema.
type Result struct {
	// Raw is the normalized JSON document, already validated against the
	// schema. Every declared non-optional field is present and typed.
	Raw json.RawMessage `json:"raw"`

	Provider  string        `json:"provider"`
	Model     string        `json:"model"`
	RequestID string        `json:"request_id"`
	Usage     Usage         `json:"usage"`
	Elapsed   time.Duration `json:"elapsed"`
}

// Decode unmarshals the validated document into v. Unknown fields are
// rejected so the caller's struct must cover the schema it asked for.
func (r *Result) Decode(v any) error {
	dec := json.NewDecoder(bytes.NewReader(r.Raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to decode result: %w", err)
	}
	return nil
}

// Extractor runs extraction requests against a single LLM client.
type Extractor struct {
	client providers.LLMClient
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// New creates an Extractor bound to the given client.
func New(client providers.LLMClient, opts ...Option) *Extractor {
	e := &Extractor{
		client: client,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract issues one schema-constrained model call and validates the
// response. On success every field of the returned instance satisfies its
// declared type; on failure no partial result is returned.
func (e *Extractor) Extract(ctx context.Context, req Request) (*Result, error) {
	if req.Instruction == "" {
		return nil, fmt.Errorf("instruction is empty")
	}
	if err := req.Schema.Validate(); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	rfJSON, err := req.Schema.ResponseFormatJSON()
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	coreSchema, err := req.Schema.JSONSchema()
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	systemPrompt := req.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = extraction.SystemPrompt()
	}

	chatReq := &providers.ChatRequest{
		Messages: []providers.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: req.Instruction},
		},
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		ResponseFormat: &providers.ResponseFormat{
			Type:       "json_schema",
			JSONSchema: rfJSON,
		},
		RequestID: req.RequestID,
	}

	res, err := e.client.Chat(ctx, chatReq)
	if err != nil {
		return nil, fmt.Errorf("model call failed: %w", err)
	}

	raw, err := parseJSON(res.Content)
	if err != nil {
		e.logger.Debug("model output is not JSON",
			"schema", req.Schema.Name,
			"request_id", res.RequestID,
			"error", err)
		return nil, schemaViolation(err.Error(), res.Content, err)
	}

	if err := validateDocument(coreSchema, raw); err != nil {
		e.logger.Debug("model output failed schema validation",
			"schema", req.Schema.Name,
			"request_id", res.RequestID,
			"error", err)
		return nil, schemaViolation(err.Error(), res.Content, err)
	}

	e.logger.Debug("extraction complete",
		"schema", req.Schema.Name,
		"provider", res.Provider,
		"model", res.ModelUsed,
		"tokens", res.TotalTokens,
		"elapsed", res.ExecutionTime)

	return &Result{
		Raw:       raw,
		Provider:  res.Provider,
		Model:     res.ModelUsed,
		RequestID: res.RequestID,
		Usage: Usage{
			PromptTokens:     res.PromptTokens,
			CompletionTokens: res.CompletionTokens,
			TotalTokens:      res.TotalTokens,
		},
		Elapsed: res.ExecutionTime,
	}, nil
}

// validateDocument validates a parsed JSON document against the schema.
func validateDocument(schemaRaw, doc json.RawMessage) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(schemaRaw)); err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	var decoded any
	if err := json.Unmarshal(doc, &decoded); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}

	if err := compiled.Validate(decoded); err != nil {
		return fmt.Errorf("output does not match schema: %w", err)
	}
	return nil
}
