package lifecycle

import "fmt"

// ValidationError reports an out-of-policy booking request field.
// It is a normal business outcome, surfaced to the caller and never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("lifecycle: invalid %s: %s", e.Field, e.Message)
}
