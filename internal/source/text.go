package source

import (
	"strings"

	"github.com/jonathan/resume-extractor/internal/textutil"
)

// FromText splits plain resume text into one segment per section. Section
// headings become the approximate labels of the segments that follow them.
func FromText(name, text string) (*Document, error) {
	text = textutil.CleanText(text)
	if text == "" {
		return nil, &Error{Path: name, Format: FormatText, Cause: ErrEmptyDocument}
	}

	var s sectioniser
	for _, line := range strings.Split(text, "\n") {
		if h, ok := HeadingLabel(line); ok {
			s.heading(h)
			continue
		}
		s.line(line)
	}
	segments := s.done()
	if len(segments) == 0 {
		return nil, &Error{Path: name, Format: FormatText, Cause: ErrEmptyDocument}
	}
	return newDocument(segments), nil
}
