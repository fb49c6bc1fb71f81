package source

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-extractor/internal/textutil"
)

const (
	noiseSelector = "script, style, noscript, nav, template"
	blockSelector = "h1, h2, h3, h4, h5, h6, p, li, dt, dd, td, th, pre, address, blockquote"
)

// FromHTML segments an HTML resume. Headings that name a section start a new
// segment; other block elements contribute one line each.
func FromHTML(name string, r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &Error{Path: name, Format: FormatHTML, Cause: fmt.Errorf("failed to parse HTML: %w", err)}
	}
	doc.Find(noiseSelector).Remove()

	var s sectioniser
	blocks := doc.Find(blockSelector)
	blocks.Each(func(_ int, sel *goquery.Selection) {
		// Nested blocks are emitted by their outermost block.
		if sel.ParentsFiltered(blockSelector).Length() > 0 {
			return
		}
		text := textutil.CollapseSpace(sel.Text())
		if text == "" {
			return
		}
		if isHeading(sel) {
			if h, ok := HeadingLabel(text); ok {
				s.heading(h)
				return
			}
		}
		s.line(text)
	})

	if blocks.Length() == 0 {
		body := textutil.CleanText(doc.Find("body").Text())
		for _, line := range strings.Split(body, "\n") {
			s.line(line)
		}
	}

	segments := s.done()
	if len(segments) == 0 {
		return nil, &Error{Path: name, Format: FormatHTML, Cause: ErrEmptyDocument}
	}
	return newDocument(segments), nil
}

func isHeading(sel *goquery.Selection) bool {
	switch goquery.NodeName(sel) {
	case "h1", "h2", "h3", "h4", "h5", "h6", "dt", "th":
		return true
	}
	return false
}
