// Package toolgen generates synthetic tool-use training examples: given a
// tool's function schema, it asks the model for realistic user requests
// paired with the call the model should make, validated as structured
// output.
package toolgen

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackzampolin/coax/internal/extract"
	prompts "github.com/jackzampolin/coax/internal/prompts/toolgen"
	"github.com/jackzampolin/coax/internal/schema"
)

// Tool describes a callable function. Its definition is embedded into the
// generation prompt as context; Parameters holds the function's JSON Schema.
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

// LoadToolFile reads a Tool definition from a JSON file.
func LoadToolFile(path string) (*Tool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tool file: %w", err)
	}
	var t Tool
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tool definition: %w", err)
	}
	if t.Name == "" {
		return nil, fmt.Errorf("tool definition has no name")
	}
	return &t, nil
}

// Example is one synthetic tool-use example.
type Example struct {
	InputText      string `json:"input_text"`
	ToolName       string `json:"tool_name"`
	ToolParameters string `json:"tool_parameters"`
}

// ExamplesSchema returns the output schema for exactly count examples. The
// item bounds make a short or padded list a schema violation rather than a
// silently wrong result.
func ExamplesSchema(count int) *schema.Definition {
	return &schema.Definition{
		Name: "tool_examples",
		Fields: []schema.Field{
			{
				Name:     "examples",
				Type:     schema.Array,
				Items:    schema.Object,
				MinItems: &count,
				MaxItems: &count,
				Fields: []schema.Field{
					{
						Name:        "input_text",
						Type:        schema.String,
						Description: "The user's natural-language request",
					},
					{
						Name:        "tool_name",
						Type:        schema.String,
						Description: "Name of the tool that satisfies the request",
					},
					{
						Name:        "tool_parameters",
						Type:        schema.String,
						Description: "JSON-encoded arguments for the tool call",
					},
				},
			},
		},
	}
}

// GeneratorConfig holds invocation parameters for example generation.
type GeneratorConfig struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// Generator produces tool-use examples through an Extractor.
type Generator struct {
	extractor   *extract.Extractor
	model       string
	temperature float64
	maxTokens   int
}

// NewGenerator creates a Generator. Generation benefits from some sampling
// variety, so temperature defaults to 0.7 when unset.
func NewGenerator(extractor *extract.Extractor, cfg GeneratorConfig) *Generator {
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}
	return &Generator{
		extractor:   extractor,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// Generate asks the model for exactly count examples for the given tool.
// One malformed entry fails the whole call; there is no partial list.
func (g *Generator) Generate(ctx context.Context, tool Tool, count int) ([]Example, error) {
	if count <= 0 {
		return nil, fmt.Errorf("example count must be positive, got %d", count)
	}
	if tool.Name == "" {
		return nil, fmt.Errorf("tool has no name")
	}

	toolJSON, err := json.MarshalIndent(tool, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize tool definition: %w", err)
	}

	result, err := g.extractor.Extract(ctx, extract.Request{
		Instruction:  prompts.UserPrompt(tool.Name, string(toolJSON), count),
		Schema:       ExamplesSchema(count),
		Model:        g.model,
		Temperature:  g.temperature,
		MaxTokens:    g.maxTokens,
		SystemPrompt: prompts.SystemPrompt(),
	})
	if err != nil {
		return nil, err
	}

	var out struct {
		Examples []Example `json:"examples"`
	}
	if err := result.Decode(&out); err != nil {
		return nil, err
	}
	return out.Examples, nil
}
