// Package response maps resume records and pipeline-fatal errors onto the
// external JSON contract.
package response

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonathan/resume-extractor/internal/schemas"
	"github.com/jonathan/resume-extractor/internal/source"
	"github.com/jonathan/resume-extractor/internal/types"
)

// Response statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Error codes of failed responses.
const (
	CodeUnsupportedFormat  = "unsupported_format"
	CodeEmptyDocument      = "empty_document"
	CodeUnreadableDocument = "unreadable_document"
	CodeInvalidInput       = "invalid_input"
	CodeCancelled          = "cancelled"
)

// Response is the external extraction result. Exactly one of Data and Error
// is set.
type Response struct {
	Status string              `json:"status"`
	RunID  string              `json:"run_id,omitempty"`
	Data   *types.ResumeRecord `json:"data,omitempty"`
	Error  *ErrorBody          `json:"error,omitempty"`
}

// ErrorBody describes why a document could not be processed.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success wraps a record. A nil record becomes an empty, structurally
// complete one.
func Success(runID string, rec *types.ResumeRecord) *Response {
	if rec == nil {
		rec = types.NewResumeRecord()
	}
	return &Response{Status: StatusOK, RunID: runID, Data: complete(rec)}
}

// Failure wraps a pipeline-fatal error. No partial output is carried.
func Failure(runID string, err error) *Response {
	return &Response{
		Status: StatusError,
		RunID:  runID,
		Error:  &ErrorBody{Code: Code(err), Message: err.Error()},
	}
}

// Code classifies a pipeline-fatal error.
func Code(err error) string {
	var validationErr *schemas.ValidationError
	switch {
	case errors.Is(err, source.ErrUnsupportedFormat):
		return CodeUnsupportedFormat
	case errors.Is(err, source.ErrEmptyDocument):
		return CodeEmptyDocument
	case errors.As(err, &validationErr):
		return CodeInvalidInput
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return CodeCancelled
	}
	return CodeUnreadableDocument
}

// OK reports whether the response carries a record.
func (r *Response) OK() bool {
	return r.Status == StatusOK
}

// JSON marshals the response as indented JSON.
func (r *Response) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return data, nil
}

// Validate checks the response against the response schema.
func (r *Response) Validate() error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	return schemas.ValidateResponse(data)
}

// complete replaces nil slices so every list field marshals as an array.
func complete(rec *types.ResumeRecord) *types.ResumeRecord {
	out := *rec
	if out.Education == nil {
		out.Education = []types.EducationRecord{}
	}
	if out.Experience == nil {
		out.Experience = []types.ExperienceRecord{}
	}
	if out.Skills == nil {
		out.Skills = []string{}
	}
	if out.Languages == nil {
		out.Languages = []string{}
	}
	if out.Certifications == nil {
		out.Certifications = []types.CertificationRecord{}
	}
	if out.Activities == nil {
		out.Activities = []types.ActivityRecord{}
	}
	if out.UnclassifiedText == nil {
		out.UnclassifiedText = []string{}
	}
	return &out
}
