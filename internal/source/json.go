package source

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/jonathan/resume-extractor/internal/schemas"
	"github.com/jonathan/resume-extractor/internal/types"
)

type segmentsFile struct {
	Document string          `json:"document"`
	Segments []types.Segment `json:"segments"`
}

// FromJSON reads a segments document. The document is validated against the
// segments schema; segments without an id get a random one.
func FromJSON(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &Error{Format: FormatJSON, Cause: fmt.Errorf("failed to read segments: %w", err)}
	}
	if err := schemas.ValidateSegments(data); err != nil {
		return nil, &Error{Format: FormatJSON, Cause: err}
	}

	var file segmentsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &Error{Format: FormatJSON, Cause: fmt.Errorf("failed to parse segments: %w", err)}
	}

	for i := range file.Segments {
		if file.Segments[i].ID == "" {
			file.Segments[i].ID = uuid.NewString()
		}
		if err := file.Segments[i].Validate(); err != nil {
			return nil, &Error{Format: FormatJSON, Cause: fmt.Errorf("segment %d: %w", i, err)}
		}
	}

	doc := newDocument(file.Segments)
	doc.Name = file.Document
	doc.Format = FormatJSON
	doc.Fingerprint = Fingerprint(data)
	return doc, nil
}
