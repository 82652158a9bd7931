package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildExtractionPrompt(t *testing.T) {
	schema := ExtractionSchema{
		Name:        "Test",
		Description: "Extract things.",
		Fields: []SchemaField{
			{Name: "title", Required: true},
			{Name: "tags", Type: `["string"]`, Description: "short tags"},
		},
	}

	prompt := BuildExtractionPrompt(schema, "input body")

	assert.True(t, strings.HasPrefix(prompt, "Extract things.\n\n"))
	assert.Contains(t, prompt, `"title": "string" (required),`)
	assert.Contains(t, prompt, `"tags": ["string"] // short tags`)
	assert.Contains(t, prompt, "Return ONLY the JSON object")
	assert.Contains(t, prompt, "\"\"\"\ninput body\n\"\"\"")
}

func TestResumeSchema(t *testing.T) {
	schema := ResumeSchema("English or French")

	assert.Contains(t, schema.Description, "English or French")
	assert.NotContains(t, schema.Description, "{{.Languages}}")

	names := make([]string, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "uncertainties")
	assert.Contains(t, names, "experiences")
}

func TestJobDescriptionSchema(t *testing.T) {
	schema := JobDescriptionSchema()

	assert.Equal(t, "JobDescription", schema.Name)
	assert.Contains(t, schema.Description, "job posting")
	assert.Len(t, schema.Fields, 12)
}
