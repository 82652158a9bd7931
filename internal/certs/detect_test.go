package certs

import (
	"regexp"
	"testing"

	"github.com/jonathan/cv-tracker/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestDetect_TOEICFoundOnce(t *testing.T) {
	text := "Score TOEIC 980 obtained in 2019.\nLanguages: English (TOEIC 980)"

	got := Detect(text, nil)

	assert.Equal(t, []types.Certification{{Name: "TOEIC 980", Issuer: "ETS"}}, got)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		existing []types.Certification
		expected []string
	}{
		{
			name:     "several rules in table order",
			text:     "Certified ScrumMaster, PMP since 2018, IELTS 7.5 and DELF b2",
			expected: []string{"IELTS 7.5", "DELF B2", "PMP", "Certified ScrumMaster"},
		},
		{
			name:     "already present case-insensitively",
			text:     "TOEIC 990",
			existing: []types.Certification{{Name: "toeic 990"}},
			expected: nil,
		},
		{
			name:     "cloud certifications",
			text:     "AWS Certified Solutions Architect - Associate; passed AZ-900; Google Cloud Certified Professional Data Engineer",
			expected: []string{"AWS Certified Solutions Architect - Associate", "Microsoft Azure AZ-900", "Google Cloud Professional Data Engineer"},
		},
		{
			name:     "score optional",
			text:     "Prepared the TOEFL",
			expected: []string{"TOEFL"},
		},
		{
			name:     "year after test name is not a score",
			text:     "Passed TOEIC 2019, TOEFL 2021 (score pending), IELTS 2018",
			expected: []string{"TOEIC", "TOEFL", "IELTS"},
		},
		{
			name:     "score stays on its line",
			text:     "TOEIC\n2020 summary",
			expected: []string{"TOEIC"},
		},
		{
			name:     "scores with labels",
			text:     "TOEIC score: 950; TOEFL iBT 105; IELTS 6,5",
			expected: []string{"TOEIC 950", "TOEFL 105", "IELTS 6,5"},
		},
		{
			name:     "acronym must be a word",
			text:     "Worked with PMPs and CSMs",
			expected: nil,
		},
		{
			name:     "nothing",
			text:     "Product manager in Paris",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var names []string
			for _, c := range Detect(tt.text, tt.existing) {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestDetector_SameNameFromTwoRules(t *testing.T) {
	d := NewDetector([]Rule{
		{Pattern: regexp.MustCompile(`(?i)scrum master`), Name: fixed("Scrum Master"), Issuer: "first"},
		{Pattern: regexp.MustCompile(`(?i)\bSM\b`), Name: fixed("scrum master"), Issuer: "second"},
	})

	got := d.Detect("Scrum Master (SM)", nil)

	assert.Equal(t, []types.Certification{{Name: "Scrum Master", Issuer: "first"}}, got)
}

func TestDetect_DoesNotMutateExisting(t *testing.T) {
	existing := []types.Certification{{Name: "PMP", Issuer: "PMI"}}
	_ = Detect("PMP and CISSP", existing)
	assert.Equal(t, []types.Certification{{Name: "PMP", Issuer: "PMI"}}, existing)
}

func TestProfileText(t *testing.T) {
	p := &types.Profile{
		Summary: "Certified PMP.",
		Experiences: []types.WorkExperience{
			{Title: "PM", Company: "Acme", Achievements: []string{"Passed TOEIC 950"}},
		},
		Skills:    []types.Skill{{Name: "Scrum"}},
		Languages: []types.Language{{Language: "English", Proficiency: "professional", Acquisition: "TOEFL 110"}},
	}

	text := ProfileText(p)

	assert.Contains(t, text, "Passed TOEIC 950")
	assert.Contains(t, text, "Scrum")
	assert.Contains(t, text, "Certified PMP.")
	assert.Contains(t, text, "English professional TOEFL 110")

	var names []string
	for _, c := range Detect(text, nil) {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"TOEIC 950", "TOEFL 110", "PMP"}, names)
}
