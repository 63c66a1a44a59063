package extract

import (
	"errors"
	"fmt"
)

// ErrSchemaViolation matches any response that was received from the model
// but does not conform to the declared schema. Use errors.Is to detect it;
// use errors.As with *SchemaViolationError for the detail and raw output.
var ErrSchemaViolation = errors.New("schema violation")

// SchemaViolationError reports a model response that failed parsing or
// schema validation. Raw holds the model's output for callers that want to
// re-prompt; the workflow itself never does.
type SchemaViolationError struct {
	Detail string
	Raw    string
	err    error
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("schema violation: %s", e.Detail)
}

func (e *SchemaViolationError) Is(target error) bool {
	return target == ErrSchemaViolation
}

func (e *SchemaViolationError) Unwrap() error {
	return e.err
}

func schemaViolation(detail, raw string, err error) *SchemaViolationError {
	return &SchemaViolationError{Detail: detail, Raw: raw, err: err}
}
