// Package extraction holds the embedded prompts for schema-constrained
// extraction calls.
package extraction

import (
	_ "embed"
)

//go:embed system.tmpl
var systemPrompt string

// SystemPrompt returns the default system prompt for extraction calls.
func SystemPrompt() string {
	return systemPrompt
}
