package quiz

import (
	"fmt"
	"strings"
)

// MalformedJSONError indicates the candidate output was text that does
// not parse as JSON.
type MalformedJSONError struct {
	Err error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("candidate is not valid JSON: %v", e.Err)
}

func (e *MalformedJSONError) Unwrap() error { return e.Err }

// SchemaViolationError indicates the candidate parsed but does not
// satisfy the QuestionSet structure. Violations holds every problem
// found, not just the first.
type SchemaViolationError struct {
	Violations []string
}

func (e *SchemaViolationError) Error() string {
	return "schema violation: " + strings.Join(e.Violations, "; ")
}
