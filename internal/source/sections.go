package source

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jonathan/resume-extractor/internal/types"
)

// maxHeadingRunes bounds the length of a line treated as a section heading.
const maxHeadingRunes = 40

// HeadingLabel reports whether line is a section heading and returns its
// text without markdown markers or a trailing colon.
func HeadingLabel(line string) (string, bool) {
	h := strings.TrimSpace(line)
	h = strings.TrimLeft(h, "#")
	h = strings.TrimSpace(strings.TrimRight(h, ":"))
	if h == "" || utf8.RuneCountInString(h) > maxHeadingRunes {
		return "", false
	}
	if _, ok := types.ParseLabel(h); !ok {
		return "", false
	}
	return h, true
}

// sectioniser groups lines into segments, starting a new segment at every
// heading. Lines before the first heading form an unlabeled segment.
type sectioniser struct {
	segments []types.Segment
	label    string
	lines    []string
}

func (s *sectioniser) heading(label string) {
	s.flush()
	s.label = label
}

func (s *sectioniser) line(l string) {
	s.lines = append(s.lines, l)
}

func (s *sectioniser) flush() {
	text := strings.TrimSpace(strings.Join(s.lines, "\n"))
	s.lines = nil
	if text == "" {
		return
	}
	s.segments = append(s.segments, types.Segment{
		ID:       uuid.NewString(),
		Label:    s.label,
		Text:     text,
		Position: len(s.segments),
	})
}

func (s *sectioniser) done() []types.Segment {
	s.flush()
	return s.segments
}
