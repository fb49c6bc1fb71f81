package models

import (
	"errors"
	"fmt"
)

// ErrModelUnavailable is returned when model handles cannot be loaded.
var ErrModelUnavailable = errors.New("model unavailable")

// LoadError wraps a failed backend load.
type LoadError struct {
	Backend string
	Cause   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s models: %v", e.Backend, e.Cause)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrModelUnavailable, e.Cause}
}

// ResponseError is returned when a model response cannot be decoded.
type ResponseError struct {
	Model   string
	Message string
	Cause   error
}

func (e *ResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Model, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Model, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.Cause
}
