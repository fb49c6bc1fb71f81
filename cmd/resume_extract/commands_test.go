package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/response"
	"github.com/jonathan/resume-extractor/internal/types"
)

const resumeText = `John Smith
john@x.com

Skills
Python, Docker

Experience
Software Engineer ABC Technologies 2019 - 2021 Built backend services.
`

func TestRunExtract_Stdout(t *testing.T) {
	isolateEnv(t)
	in := writeTemp(t, "resume.txt", resumeText)

	var stdout, stderr bytes.Buffer
	err := runExtract(context.Background(), &stdout, &stderr, extractOptions{
		commonFlags: commonFlags{backend: "rules"},
		in:          in,
	})
	require.NoError(t, err)

	var resp response.Response
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
	assert.Equal(t, response.StatusOK, resp.Status)
	assert.NotEmpty(t, resp.RunID)
	require.NotNil(t, resp.Data)
	assert.Subset(t, resp.Data.Skills, []string{"Python", "Docker"})
	assert.Nil(t, resp.Error)
}

func TestRunExtract_OutFileAndVerbose(t *testing.T) {
	isolateEnv(t)
	in := writeTemp(t, "resume.txt", resumeText)
	out := filepath.Join(t.TempDir(), "record.json")

	var stdout, stderr bytes.Buffer
	err := runExtract(context.Background(), &stdout, &stderr, extractOptions{
		commonFlags: commonFlags{verbose: true, parallelism: 2},
		in:          in,
		out:         out,
	})
	require.NoError(t, err)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "[build]")
	assert.Contains(t, stderr.String(), "SEGMENTS")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status": "ok"`)
}

func TestRunExtract_UnsupportedFormat(t *testing.T) {
	isolateEnv(t)
	in := writeTemp(t, "resume.xyz", "whatever")

	var stdout, stderr bytes.Buffer
	err := runExtract(context.Background(), &stdout, &stderr, extractOptions{in: in})
	require.Error(t, err)

	var resp response.Response
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
	assert.Equal(t, response.StatusError, resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, response.CodeUnsupportedFormat, resp.Error.Code)
	assert.Nil(t, resp.Data)
}

func TestRunExtract_RequiresInput(t *testing.T) {
	isolateEnv(t)
	var stdout, stderr bytes.Buffer
	err := runExtract(context.Background(), &stdout, &stderr, extractOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--in")
}

func TestRunSegment(t *testing.T) {
	isolateEnv(t)
	var stdout, stderr bytes.Buffer
	err := runSegment(context.Background(), &stdout, &stderr, segmentOptions{
		text:  "Python, Docker, Kubernetes",
		label: "Skills",
	})
	require.NoError(t, err)

	var res types.SegmentResult
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &res))
	assert.Equal(t, types.LabelSkills, res.Label)
	assert.True(t, res.Classified)
	assert.NotEmpty(t, res.SegmentID)
}

func TestRunClassify(t *testing.T) {
	isolateEnv(t)
	tests := []struct {
		name string
		text string
		want string
	}{
		{"heading", "Skills\nPython, Go", "Skills"},
		{"no signal", "lorem ipsum dolor", "unclassified"},
		{"blank", "   ", "skipped"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			require.NoError(t, runClassify(context.Background(), &stdout, classifyOptions{text: tt.text}))
			assert.Contains(t, stdout.String(), tt.want)
		})
	}
}

func TestRunShow_Validation(t *testing.T) {
	isolateEnv(t)
	var stdout bytes.Buffer

	err := runShow(context.Background(), &stdout, showOptions{id: "not-a-uuid"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid id")

	err = runShow(context.Background(), &stdout, showOptions{id: "00000000-0000-0000-0000-000000000001"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database URL is required")
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"extract", "segment", "classify", "show"} {
		assert.True(t, names[want], "command %s should be registered", want)
	}
}
