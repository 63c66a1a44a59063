// Package schema defines typed output shapes for schema-constrained LLM calls.
//
// A Definition is an ordered list of named fields, each with a primitive or
// nested composite type and an optional description used to steer generation.
// Definitions serialize to strict JSON Schema for the provider request and
// for local validation of the model's response.
package schema

import (
	"fmt"
	"regexp"
)

// FieldType is the declared type of a field.
type FieldType string

const (
	String  FieldType = "string"
	Integer FieldType = "integer"
	Number  FieldType = "number"
	Boolean FieldType = "boolean"
	Object  FieldType = "object"
	Array   FieldType = "array"
)

// Field is one named slot in a Definition.
type Field struct {
	Name        string    `json:"name" yaml:"name"`
	Type        FieldType `json:"type" yaml:"type"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`

	// Optional marks the field as not required in the output.
	Optional bool `json:"optional,omitempty" yaml:"optional,omitempty"`

	// Enum restricts a string field to a fixed set of values.
	Enum []string `json:"enum,omitempty" yaml:"enum,omitempty"`

	// Fields describes the nested shape for Object fields, or the element
	// shape for Array fields whose Items is Object.
	Fields []Field `json:"fields,omitempty" yaml:"fields,omitempty"`

	// Items is the element type for Array fields.
	Items FieldType `json:"items,omitempty" yaml:"items,omitempty"`

	// MinItems/MaxItems bound Array fields. Nil means unbounded.
	MinItems *int `json:"min_items,omitempty" yaml:"min_items,omitempty"`
	MaxItems *int `json:"max_items,omitempty" yaml:"max_items,omitempty"`
}

// Definition describes the structured output a model call must produce.
type Definition struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []Field `json:"fields" yaml:"fields"`
}

// namePattern matches names accepted by provider structured-output APIs.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Validate checks the Definition invariants: a well-formed name, at least one
// field, unique field names per nesting level, known types, and composite
// fields that carry their nested shape.
func (d *Definition) Validate() error {
	if d == nil {
		return fmt.Errorf("schema definition is nil")
	}
	if d.Name == "" {
		return fmt.Errorf("schema definition has no name")
	}
	if !namePattern.MatchString(d.Name) {
		return fmt.Errorf("schema name %q contains invalid characters", d.Name)
	}
	if len(d.Fields) == 0 {
		return fmt.Errorf("schema %s has no fields", d.Name)
	}
	return validateFields(d.Name, d.Fields)
}

func validateFields(path string, fields []Field) error {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("%s: field with empty name", path)
		}
		fpath := path + "." + f.Name
		if seen[f.Name] {
			return fmt.Errorf("%s: duplicate field name %q", path, f.Name)
		}
		seen[f.Name] = true

		if err := validateField(fpath, f); err != nil {
			return err
		}
	}
	return nil
}

func validateField(path string, f Field) error {
	switch f.Type {
	case String:
		// Enum is only meaningful for strings.
	case Integer, Number, Boolean:
		if len(f.Enum) > 0 {
			return fmt.Errorf("%s: enum is only supported on string fields", path)
		}
	case Object:
		if len(f.Fields) == 0 {
			return fmt.Errorf("%s: object field has no nested fields", path)
		}
		return validateFields(path, f.Fields)
	case Array:
		return validateArrayField(path, f)
	default:
		return fmt.Errorf("%s: unknown field type %q", path, f.Type)
	}

	if len(f.Fields) > 0 {
		return fmt.Errorf("%s: nested fields are only valid on object or array fields", path)
	}
	if f.MinItems != nil || f.MaxItems != nil {
		return fmt.Errorf("%s: item bounds are only valid on array fields", path)
	}
	return nil
}

func validateArrayField(path string, f Field) error {
	switch f.Items {
	case String, Integer, Number, Boolean:
		if len(f.Fields) > 0 {
			return fmt.Errorf("%s: array of %s cannot have nested fields", path, f.Items)
		}
	case Object:
		if len(f.Fields) == 0 {
			return fmt.Errorf("%s: array of objects has no nested fields", path)
		}
		if err := validateFields(path+"[]", f.Fields); err != nil {
			return err
		}
	case "":
		return fmt.Errorf("%s: array field has no item type", path)
	default:
		return fmt.Errorf("%s: unsupported array item type %q", path, f.Items)
	}

	if f.MinItems != nil && *f.MinItems < 0 {
		return fmt.Errorf("%s: min_items cannot be negative", path)
	}
	if f.MaxItems != nil && *f.MaxItems < 0 {
		return fmt.Errorf("%s: max_items cannot be negative", path)
	}
	if f.MinItems != nil && f.MaxItems != nil && *f.MinItems > *f.MaxItems {
		return fmt.Errorf("%s: min_items %d exceeds max_items %d", path, *f.MinItems, *f.MaxItems)
	}
	return nil
}
