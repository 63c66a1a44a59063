package toolgen

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackzampolin/coax/internal/extract"
	"github.com/jackzampolin/coax/internal/providers"
)

func weatherTool() Tool {
	return Tool{
		Name:        "get_weather",
		Description: "Get the current weather for a city",
		Parameters: json.RawMessage(`{
			"type":"object",
			"properties":{"city":{"type":"string"}},
			"required":["city"]
		}`),
	}
}

func exampleEntry(input string) string {
	return `{"input_text":"` + input + `","tool_name":"get_weather","tool_parameters":"{\"city\":\"Paris\"}"}`
}

func TestGenerate(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ResponseText = `{"examples":[` + strings.Join([]string{
		exampleEntry("Weather in Paris?"),
		exampleEntry("Is it sunny out?"),
		exampleEntry("Do I need an umbrella?"),
	}, ",") + `]}`

	g := NewGenerator(extract.New(mock), GeneratorConfig{Model: "gpt-4o-mini"})
	examples, err := g.Generate(context.Background(), weatherTool(), 3)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(examples) != 3 {
		t.Fatalf("expected 3 examples, got %d", len(examples))
	}
	for i, ex := range examples {
		if ex.ToolName != "get_weather" || ex.InputText == "" {
			t.Errorf("example %d malformed: %+v", i, ex)
		}
		// tool_parameters must itself decode as JSON
		var args map[string]any
		if err := json.Unmarshal([]byte(ex.ToolParameters), &args); err != nil {
			t.Errorf("example %d parameters not JSON: %q", i, ex.ToolParameters)
		}
	}

	// The tool definition is embedded into the outbound prompt.
	sent := mock.Requests()[0]
	if !strings.Contains(sent.Messages[1].Content, "get_weather") {
		t.Error("tool name missing from prompt")
	}
	if !strings.Contains(sent.Messages[1].Content, "Get the current weather") {
		t.Error("tool description missing from prompt")
	}
	if !strings.Contains(sent.Messages[1].Content, "exactly 3") {
		t.Errorf("count missing from prompt: %q", sent.Messages[1].Content)
	}
}

func TestGenerateWrongCountFails(t *testing.T) {
	// Model returned two examples when three were requested.
	mock := providers.NewMockClient()
	mock.ResponseText = `{"examples":[` + exampleEntry("a") + `,` + exampleEntry("b") + `]}`

	g := NewGenerator(extract.New(mock), GeneratorConfig{})
	_, err := g.Generate(context.Background(), weatherTool(), 3)
	if !errors.Is(err, extract.ErrSchemaViolation) {
		t.Fatalf("expected schema violation for short list, got %v", err)
	}
}

func TestGenerateMalformedEntryFails(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ResponseText = `{"examples":[` + exampleEntry("a") + `,` +
		`{"input_text":"b","tool_parameters":"{}"}]}`

	g := NewGenerator(extract.New(mock), GeneratorConfig{})
	examples, err := g.Generate(context.Background(), weatherTool(), 2)
	if examples != nil {
		t.Error("no partial list should be returned")
	}
	if !errors.Is(err, extract.ErrSchemaViolation) {
		t.Fatalf("expected schema violation, got %v", err)
	}
}

func TestGenerateInputValidation(t *testing.T) {
	g := NewGenerator(extract.New(providers.NewMockClient()), GeneratorConfig{})

	if _, err := g.Generate(context.Background(), weatherTool(), 0); err == nil {
		t.Error("expected error for zero count")
	}
	if _, err := g.Generate(context.Background(), Tool{}, 3); err == nil {
		t.Error("expected error for unnamed tool")
	}
}

func TestExamplesSchema(t *testing.T) {
	def := ExamplesSchema(5)
	if err := def.Validate(); err != nil {
		t.Fatalf("generated schema invalid: %v", err)
	}
	f := def.Fields[0]
	if *f.MinItems != 5 || *f.MaxItems != 5 {
		t.Errorf("item bounds = %d..%d, want 5..5", *f.MinItems, *f.MaxItems)
	}
}

func TestLoadToolFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tool.json")
	content := `{
		"name": "get_weather",
		"description": "Get the weather",
		"parameters": {"type":"object","properties":{"city":{"type":"string"}}}
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tool, err := LoadToolFile(path)
	if err != nil {
		t.Fatalf("LoadToolFile() error = %v", err)
	}
	if tool.Name != "get_weather" || len(tool.Parameters) == 0 {
		t.Errorf("tool wrong: %+v", tool)
	}

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadToolFile(filepath.Join(dir, "nope.json")); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("unnamed tool", func(t *testing.T) {
		p := filepath.Join(dir, "bad.json")
		os.WriteFile(p, []byte(`{"description":"x"}`), 0o644)
		if _, err := LoadToolFile(p); err == nil {
			t.Error("expected error for unnamed tool")
		}
	})
}
