// Package schemas embeds the JSON Schema documents of the extraction
// input and output contracts.
package schemas

import (
	_ "embed"
)

// Schema file names.
const (
	SegmentsFile       = "segments.schema.json"
	ResumeResponseFile = "resume_response.schema.json"
)

// Segments is the schema of a segments input document.
//
//go:embed segments.schema.json
var Segments string

// ResumeResponse is the schema of an extraction response.
//
//go:embed resume_response.schema.json
var ResumeResponse string

// ByName returns the embedded schema with the given file name.
func ByName(name string) (string, bool) {
	switch name {
	case SegmentsFile:
		return Segments, true
	case ResumeResponseFile:
		return ResumeResponse, true
	}
	return "", false
}
