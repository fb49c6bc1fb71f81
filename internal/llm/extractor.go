package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure of a JSON extraction request.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "SegmentLabel")
	Description string        // Task preamble placed before the output structure
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint, e.g. "\"string\"" or "[{...}]"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "\"string\""
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Use only the input text, do not invent values.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// SegmentLabelSchema is the output structure of segment classification.
func SegmentLabelSchema(description string) ExtractionSchema {
	return ExtractionSchema{
		Name:        "SegmentLabel",
		Description: description,
		Fields: []SchemaField{
			{Name: "label", Type: "\"string\"", Description: "one label from the list, or empty", Required: true},
			{Name: "score", Type: "number", Description: "confidence in [0,1]", Required: true},
		},
	}
}

// EntitiesSchema is the output structure of entity recognition.
func EntitiesSchema(description string) ExtractionSchema {
	return ExtractionSchema{
		Name:        "Entities",
		Description: description,
		Fields: []SchemaField{
			{
				Name:        "entities",
				Type:        "[{\"text\": \"string\", \"label\": \"string\", \"score\": number, \"start\": number, \"end\": number}]",
				Description: "entities in order of appearance",
				Required:    true,
			},
		},
	}
}

// SkillAnnotationSchema is the output structure of skill annotation.
func SkillAnnotationSchema(description string) ExtractionSchema {
	return ExtractionSchema{
		Name:        "SkillAnnotation",
		Description: description,
		Fields: []SchemaField{
			{Name: "full_matches", Type: "[{\"text\": \"string\", \"score\": number}]", Description: "exact skill names", Required: true},
			{Name: "ngram_scored", Type: "[{\"text\": \"string\", \"score\": number}]", Description: "partial or inferred skills", Required: true},
		},
	}
}
