package extract

import "fmt"

// ExtractorError records a failed extractor. It never leaves the package as a
// returned error: the extractor's result is emptied and the failure logged.
type ExtractorError struct {
	Extractor string
	SegmentID string
	Cause     error
}

func (e *ExtractorError) Error() string {
	return fmt.Sprintf("extractor %s failed on segment %s: %v", e.Extractor, e.SegmentID, e.Cause)
}

func (e *ExtractorError) Unwrap() error {
	return e.Cause
}
