package llm

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-tracker/internal/prompts"
)

// ExtractionSchema describes the JSON object an extraction prompt asks for
type ExtractionSchema struct {
	Name        string
	Description string // preamble describing the task
	Fields      []SchemaField
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // type hint shown to the model
	Description string
	Required    bool
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
			typeHint = `"string"`
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  %q: %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(" // " + field.Description)
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString(prompts.MustGet("extraction.json", "rules"))
	sb.WriteString("\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// ResumeSchema returns the extraction schema for pasted résumés. languages
// names the input languages the model should expect, e.g. "English or French".
func ResumeSchema(languages string) ExtractionSchema {
	preamble := prompts.Format(prompts.MustGet("extraction.json", "resume"), map[string]string{
		"Languages": languages,
	})
	return ExtractionSchema{
		Name:        "Resume",
		Description: preamble,
		Fields: []SchemaField{
			{
				Name:        "personalInfo",
				Type:        `{"name": "string", "email": "string", "phone": "string", "location": "string"}`,
				Description: "contact block",
				Required:    true,
			},
			{
				Name:        "summary",
				Type:        `"string"`,
				Description: "professional summary, verbatim",
			},
			{
				Name:        "experiences",
				Type:        `[{"company": "string", "title": "string", "startDate": "string", "endDate": "string", "current": bool, "achievements": ["string"]}]`,
				Description: "most recent first",
				Required:    true,
			},
			{
				Name:     "education",
				Type:     `[{"institution": "string", "degree": "string", "field": "string", "startYear": int, "endYear": int, "current": bool}]`,
				Required: true,
			},
			{
				Name:     "skills",
				Type:     `["string"]`,
				Required: true,
			},
			{
				Name: "languages",
				Type: `[{"language": "string", "proficiency": "basic|conversational|professional|native|bilingual"}]`,
			},
			{
				Name: "certifications",
				Type: `[{"name": "string", "issuer": "string", "date": "string"}]`,
			},
			{
				Name:        "uncertainties",
				Type:        `[{"entryIndex": int, "field": "string", "reason": "string"}]`,
				Description: "fields you guessed; entryIndex is the position in experiences or education",
				Required:    true,
			},
		},
	}
}

// JobDescriptionSchema returns the extraction schema for job postings
func JobDescriptionSchema() ExtractionSchema {
	return ExtractionSchema{
		Name:        "JobDescription",
		Description: prompts.MustGet("extraction.json", "job-description"),
		Fields: []SchemaField{
			{Name: "title", Required: true},
			{Name: "company", Required: true},
			{Name: "location"},
			{Name: "salaryMin", Type: "number", Description: "omit when not stated"},
			{Name: "salaryMax", Type: "number", Description: "omit when not stated"},
			{Name: "salaryCurrency", Description: "ISO code, e.g. EUR"},
			{Name: "salaryRateType", Type: `"hourly|daily|monthly|yearly"`},
			{Name: "presenceType", Type: `"onsite|hybrid|remote"`},
			{Name: "contractType", Description: "e.g. CDI, freelance, full-time"},
			{Name: "requiredSkills", Type: `["string"]`, Required: true},
			{Name: "niceToHaveSkills", Type: `["string"]`},
			{Name: "perks", Type: `["string"]`},
		},
	}
}
