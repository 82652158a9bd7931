package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/cv-tracker/internal/types"
	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestPrintParsedCV(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	content := &types.CVContent{
		PersonalInfo: types.PersonalInfo{Name: "Ada Lovelace"},
		Experiences: []types.Experience{
			{Company: "Acme", Title: "Engineer", Current: true},
			{Company: "Globex", Title: "Intern"},
		},
		Skills: []string{"Go", "SQL"},
	}
	p.PrintParsedCV("cv.md", types.OriginText, content, []types.Uncertainty{
		{EntryIndex: 1, Field: "startDate", Reason: "no date found"},
	})
	output := buf.String()

	assert.Contains(t, output, "PARSED CV  cv.md")
	assert.Contains(t, output, "freeform-text")
	assert.Contains(t, output, "Ada Lovelace")
	assert.Contains(t, output, "2 experience, 0 education, 2 skills")
	assert.Contains(t, output, "Engineer @ Acme (current)")
	assert.Contains(t, output, "⚠ 1 uncertain fields")
	assert.Contains(t, output, "#1 startDate: no date found")
}

func TestPrintParsedCV_NoUncertainties(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintParsedCV("cv.json", types.OriginJSON, &types.CVContent{}, nil)

	assert.Contains(t, buf.String(), "✓ no uncertain fields")
	assert.NotContains(t, buf.String(), "Experience:")
}

func TestPrintParsedCV_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintParsedCV("cv.md", types.OriginText, nil, nil)

	assert.Empty(t, buf.String())
}

func TestPrintJobDescription(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobDescription(&types.JobDescription{
		Title:            "Backend Engineer",
		Company:          "Acme",
		Location:         "Lisbon",
		PresenceType:     "hybrid",
		SalaryMin:        ptr(50000),
		SalaryMax:        ptr(65000),
		SalaryCurrency:   "EUR",
		SalaryRateType:   "yearly",
		RequiredSkills:   []string{"Go", "PostgreSQL", "Kafka", "Docker", "gRPC", "Redis"},
		NiceToHaveSkills: []string{"Rust"},
	})
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED JOB POSTING")
	assert.Contains(t, output, "Lisbon hybrid")
	assert.Contains(t, output, "EUR 50000-65000 yearly")
	assert.Contains(t, output, "... and 1 more")
	assert.Contains(t, output, "Rust")
	assert.NotContains(t, output, "Redis")
}

func TestPrintJobDescription_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobDescription(nil)

	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).printBox("TITLE", strings.Repeat("é", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)))
	}
	assert.Contains(t, buf.String(), "...")
}

func TestSalaryRange(t *testing.T) {
	tests := []struct {
		name string
		jd   types.JobDescription
		want string
	}{
		{"range", types.JobDescription{SalaryMin: ptr(10), SalaryMax: ptr(20), SalaryCurrency: "USD"}, "USD 10-20"},
		{"single", types.JobDescription{SalaryMin: ptr(10), SalaryMax: ptr(10)}, "10"},
		{"max only", types.JobDescription{SalaryMax: ptr(20)}, "?-20"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, salaryRange(&tt.jd))
		})
	}
}
