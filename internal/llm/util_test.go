package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"json code block", "```json\n{\"label\": \"Skills\"}\n```", `{"label": "Skills"}`},
		{"generic code block", "```\n{\"label\": \"Skills\"}\n```", `{"label": "Skills"}`},
		{"code block with language", "```javascript\n{\"k\": 1}\n```", `{"k": 1}`},
		{"plain JSON", `{"label": "Skills"}`, `{"label": "Skills"}`},
		{"preamble before object", "Here is the JSON:\n{\"label\": \"Education\", \"score\": 0.9}", `{"label": "Education", "score": 0.9}`},
		{"preamble before array", "Result: [1, 2]", `[1, 2]`},
		{"trailing commentary", "Sure {\"a\": {\"b\": 1}} hope this helps", `{"a": {"b": 1}}`},
		{"no JSON", "no json here", "no json here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestBuildExtractionPrompt(t *testing.T) {
	prompt := BuildExtractionPrompt(SegmentLabelSchema("Classify the block."), "Python, Go, SQL")

	assert.Contains(t, prompt, "Classify the block.")
	assert.Contains(t, prompt, `"label": "string" (required)`)
	assert.Contains(t, prompt, `"score": number (required) // confidence in [0,1]`)
	assert.Contains(t, prompt, "\"\"\"\nPython, Go, SQL\n\"\"\"")
}

func TestSchemas(t *testing.T) {
	assert.Equal(t, "Entities", EntitiesSchema("x").Name)
	assert.Len(t, SkillAnnotationSchema("x").Fields, 2)
}
