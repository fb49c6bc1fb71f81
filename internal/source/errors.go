package source

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned for documents no source can read.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrEmptyDocument is returned when a document yields no text at all.
	ErrEmptyDocument = errors.New("document contains no text")
)

// Error describes a document that could not be turned into segments.
type Error struct {
	Path   string
	Format string
	Cause  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("source %s: %v", e.Format, e.Cause)
	}
	return fmt.Sprintf("source %s (%s): %v", e.Path, e.Format, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
