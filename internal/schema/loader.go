package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a Definition from a YAML or JSON file and validates it.
// JSON parses as a YAML subset, so one decoder covers both:
//
//	name: person
//	fields:
//	  - name: name
//	    type: string
//	    description: Full name of the person
//	  - name: age
//	    type: integer
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a Definition from YAML or JSON bytes and validates it.
func Parse(data []byte) (*Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse schema definition: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}
