// Package source turns resume documents into layout segments: segment JSON,
// plain text, HTML and office/PDF documents.
package source

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"code.sajari.com/docconv"
	"golang.org/x/crypto/blake2b"

	"github.com/jonathan/resume-extractor/internal/types"
)

// Formats understood by FromBytes.
const (
	FormatJSON = "json"
	FormatText = "text"
	FormatHTML = "html"
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
	FormatDOC  = "doc"
	FormatODT  = "odt"
	FormatRTF  = "rtf"
)

var mimeTypes = map[string]string{
	FormatPDF:  "application/pdf",
	FormatDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	FormatDOC:  "application/msword",
	FormatODT:  "application/vnd.oasis.opendocument.text",
	FormatRTF:  "application/rtf",
}

var extensions = map[string]string{
	".json": FormatJSON,
	".txt":  FormatText,
	".text": FormatText,
	".md":   FormatText,
	".html": FormatHTML,
	".htm":  FormatHTML,
	".pdf":  FormatPDF,
	".docx": FormatDOCX,
	".doc":  FormatDOC,
	".odt":  FormatODT,
	".rtf":  FormatRTF,
}

// Document is a resume split into segments.
type Document struct {
	Name   string `json:"name"`
	Format string `json:"format"`
	// Fingerprint is the BLAKE2b-256 hex digest of the raw document bytes.
	Fingerprint string          `json:"fingerprint"`
	ReadAt      time.Time       `json:"read_at"`
	Segments    []types.Segment `json:"segments"`
}

// Fingerprint returns the BLAKE2b-256 hex digest of data.
func Fingerprint(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FormatOf returns the format implied by a file name extension.
func FormatOf(name string) (string, bool) {
	f, ok := extensions[strings.ToLower(filepath.Ext(name))]
	return f, ok
}

// FromDocument reads the file at path and segments it according to its
// extension.
func FromDocument(ctx context.Context, path string) (*Document, error) {
	format, ok := FormatOf(path)
	if !ok {
		return nil, &Error{Path: path, Format: filepath.Ext(path), Cause: ErrUnsupportedFormat}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Format: format, Cause: fmt.Errorf("failed to read file: %w", err)}
	}
	return FromBytes(ctx, filepath.Base(path), format, data)
}

// FromBytes segments an in-memory document of the given format.
func FromBytes(ctx context.Context, name, format string, data []byte) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		doc *Document
		err error
	)
	switch format {
	case FormatJSON:
		doc, err = FromJSON(bytes.NewReader(data))
	case FormatText:
		doc, err = FromText(name, string(data))
	case FormatHTML:
		doc, err = FromHTML(name, bytes.NewReader(data))
	default:
		mime, ok := mimeTypes[format]
		if !ok {
			return nil, &Error{Path: name, Format: format, Cause: ErrUnsupportedFormat}
		}
		doc, err = convert(ctx, name, mime, data)
	}
	if err != nil {
		var srcErr *Error
		if errors.As(err, &srcErr) {
			return nil, err
		}
		return nil, &Error{Path: name, Format: format, Cause: err}
	}

	doc.Name = name
	doc.Format = format
	doc.Fingerprint = Fingerprint(data)
	return doc, nil
}

// convert extracts the text of an office or PDF document with docconv and
// sectionises it like plain text.
func convert(ctx context.Context, name, mime string, data []byte) (*Document, error) {
	res, err := docconv.Convert(bytes.NewReader(data), mime, false)
	if err != nil {
		return nil, fmt.Errorf("text extraction failed: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return FromText(name, res.Body)
}

func newDocument(segments []types.Segment) *Document {
	return &Document{ReadAt: time.Now().UTC(), Segments: segments}
}
