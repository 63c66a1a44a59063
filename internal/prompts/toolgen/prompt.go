// Package toolgen holds the embedded prompts for tool-use example
// generation.
package toolgen

import (
	"bytes"
	_ "embed"
	"text/template"
)

//go:embed system.tmpl
var systemPrompt string

//go:embed user.tmpl
var userPromptTmpl string

var userTemplate = template.Must(template.New("user").Parse(userPromptTmpl))

// SystemPrompt returns the system prompt for example generation.
func SystemPrompt() string {
	return systemPrompt
}

// UserPrompt builds the user prompt embedding the tool definition as context.
func UserPrompt(toolName, toolJSON string, count int) string {
	var buf bytes.Buffer
	data := struct {
		ToolName string
		ToolJSON string
		Count    int
	}{ToolName: toolName, ToolJSON: toolJSON, Count: count}
	if err := userTemplate.Execute(&buf, data); err != nil {
		return userPromptTmpl
	}
	return buf.String()
}
