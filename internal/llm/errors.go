package llm

import "fmt"

// ModelError is returned when a model call fails or returns an unusable response.
type ModelError struct {
	Model   string
	Message string
	Cause   error
}

func (e *ModelError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model %s: %s: %v", e.Model, e.Message, e.Cause)
	}
	return fmt.Sprintf("model %s: %s", e.Model, e.Message)
}

func (e *ModelError) Unwrap() error {
	return e.Cause
}
