package classify

import (
	"errors"
	"fmt"
)

// ErrNoUsableLabel is returned when the classifier answered with a label
// outside the vocabulary or a score below the configured minimum.
var ErrNoUsableLabel = errors.New("no usable label")

// Error describes a failed classification of one segment.
type Error struct {
	SegmentID string
	Cause     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("classify segment %s: %v", e.SegmentID, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
