package schema

import (
	"encoding/json"
	"fmt"
)

// JSONSchema serializes the Definition into a strict JSON Schema document:
// additionalProperties is disabled at every level and every non-Optional
// field is required. The same document drives provider-side constrained
// decoding and local response validation.
func (d *Definition) JSONSchema() (json.RawMessage, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	doc := objectSchema(d.Fields)
	if d.Description != "" {
		doc["description"] = d.Description
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize schema %s: %w", d.Name, err)
	}
	return out, nil
}

// ResponseFormatJSON serializes the Definition into the OpenAI-style
// json_schema wrapper: {"name","strict","schema"}. Providers attach this to
// the outbound request's response_format.
func (d *Definition) ResponseFormatJSON() (json.RawMessage, error) {
	core, err := d.JSONSchema()
	if err != nil {
		return nil, err
	}

	wrapper := map[string]any{
		"name":   d.Name,
		"strict": true,
		"schema": json.RawMessage(core),
	}
	out, err := json.Marshal(wrapper)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize response format for %s: %w", d.Name, err)
	}
	return out, nil
}

func objectSchema(fields []Field) map[string]any {
	properties := make(map[string]any, len(fields))
	required := make([]string, 0, len(fields))

	for _, f := range fields {
		properties[f.Name] = fieldSchema(f)
		if !f.Optional {
			required = append(required, f.Name)
		}
	}

	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             required,
		"additionalProperties": false,
	}
}

func fieldSchema(f Field) map[string]any {
	var doc map[string]any

	switch f.Type {
	case Object:
		doc = objectSchema(f.Fields)
	case Array:
		doc = map[string]any{
			"type":  "array",
			"items": arrayItemSchema(f),
		}
		if f.MinItems != nil {
			doc["minItems"] = *f.MinItems
		}
		if f.MaxItems != nil {
			doc["maxItems"] = *f.MaxItems
		}
	default:
		doc = map[string]any{"type": string(f.Type)}
		if len(f.Enum) > 0 {
			doc["enum"] = f.Enum
		}
	}

	if f.Description != "" {
		doc["description"] = f.Description
	}
	return doc
}

func arrayItemSchema(f Field) map[string]any {
	if f.Items == Object {
		return objectSchema(f.Fields)
	}
	return map[string]any{"type": string(f.Items)}
}
