package schema

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
name: person
description: A single person
fields:
  - name: name
    type: string
    description: Full name
  - name: age
    type: integer
  - name: email
    type: string
    optional: true
`)

	def, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if def.Name != "person" {
		t.Errorf("name = %q, want person", def.Name)
	}
	if len(def.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(def.Fields))
	}
	if def.Fields[1].Type != Integer {
		t.Errorf("age type = %s, want integer", def.Fields[1].Type)
	}
	if !def.Fields[2].Optional {
		t.Error("email should be optional")
	}
}

func TestParseJSON(t *testing.T) {
	data := []byte(`{
		"name": "summary",
		"fields": [
			{"name": "title", "type": "string"},
			{"name": "keywords", "type": "array", "items": "string"}
		]
	}`)

	def, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if def.Fields[1].Type != Array || def.Fields[1].Items != String {
		t.Errorf("keywords field wrong: %+v", def.Fields[1])
	}
}

func TestParseRejectsInvalidDefinition(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "{{{{"},
		{"missing name", "fields:\n  - name: x\n    type: string\n"},
		{"bad type", "name: s\nfields:\n  - name: x\n    type: decimal\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "person.yaml")
	content := "name: person\nfields:\n  - name: name\n    type: string\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	def, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if def.Name != "person" {
		t.Errorf("name = %q, want person", def.Name)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
