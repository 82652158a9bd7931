package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	p := NewParser(DefaultOptions())

	tests := []struct {
		name        string
		state       State
		line        string
		wantSection Section
		wantContent bool
		wantHeading bool
	}{
		{
			name:        "markdown heading switches and is consumed",
			state:       InitialState(),
			line:        "## Skills",
			wantSection: SectionSkills,
			wantHeading: true,
		},
		{
			name:        "accented upper-case heading",
			state:       State{Section: SectionSummary, LineNo: 12},
			line:        "## EXPÉRIENCES PROFESSIONNELLES",
			wantSection: SectionExperience,
			wantHeading: true,
		},
		{
			name:        "bold-only heading",
			state:       State{Section: SectionExperience, LineNo: 30},
			line:        "**Formation**",
			wantSection: SectionEducation,
			wantHeading: true,
		},
		{
			name:        "upper-case plain keyword line",
			state:       State{Section: SectionExperience, LineNo: 30},
			line:        "EDUCATION",
			wantSection: SectionEducation,
			wantHeading: true,
		},
		{
			name:        "plain keyword before any section",
			state:       State{Section: SectionNone, LineNo: 30},
			line:        "Education",
			wantSection: SectionEducation,
			wantHeading: true,
		},
		{
			name:        "plain keyword inside skills is a skill",
			state:       State{Section: SectionSkills, LineNo: 30},
			line:        "Formation",
			wantSection: SectionSkills,
			wantContent: true,
		},
		{
			name:        "plain keyword inside summary is prose",
			state:       State{Section: SectionSummary, LineNo: 30},
			line:        "Portfolio",
			wantSection: SectionSummary,
			wantContent: true,
		},
		{
			name:        "title-case plain keyword inside experience stays content",
			state:       State{Section: SectionExperience, LineNo: 30},
			line:        "Education",
			wantSection: SectionExperience,
			wantContent: true,
		},
		{
			name:        "prose mentioning a keyword stays content",
			state:       State{Section: SectionSummary, LineNo: 20},
			line:        "I have ten years of experience in product",
			wantSection: SectionSummary,
			wantContent: true,
		},
		{
			name:        "short prose with partial keyword inside a section",
			state:       State{Section: SectionSummary, LineNo: 20},
			line:        "Passionate about design",
			wantSection: SectionSummary,
			wantContent: true,
		},
		{
			name:        "category label inside skills",
			state:       State{Section: SectionSkills, LineNo: 20},
			line:        "**Programming Languages**",
			wantSection: SectionSkills,
			wantContent: true,
		},
		{
			name:        "divider keeps state",
			state:       State{Section: SectionExperience, LineNo: 15},
			line:        "---",
			wantSection: SectionExperience,
		},
		{
			name:        "unknown level-2 heading opens other",
			state:       State{Section: SectionSkills, LineNo: 40},
			line:        "## Volunteering",
			wantSection: SectionOther,
			wantHeading: true,
		},
		{
			name:        "level-1 name line is not a heading",
			state:       InitialState(),
			line:        "# Jane Doe",
			wantSection: SectionHeader,
		},
		{
			name:        "header state expires",
			state:       State{Section: SectionHeader, LineNo: DefaultHeaderLines},
			line:        "Some trailing text",
			wantSection: SectionNone,
		},
		{
			name:        "sub-header stays in section",
			state:       State{Section: SectionExperience, LineNo: 15},
			line:        "### **Product Manager**",
			wantSection: SectionExperience,
			wantContent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, em := p.Transition(tt.state, tt.line)
			assert.Equal(t, tt.wantSection, next.Section)
			assert.Equal(t, tt.state.LineNo+1, next.LineNo)
			assert.Equal(t, tt.wantContent, em.IsContent())
			assert.Equal(t, tt.wantHeading, em.Heading)
		})
	}
}

func TestTransitionIsPure(t *testing.T) {
	p := NewParser(DefaultOptions())
	state := State{Section: SectionExperience, LineNo: 12}

	s1, e1 := p.Transition(state, "- Shipped X")
	s2, e2 := p.Transition(state, "- Shipped X")

	assert.Equal(t, s1, s2)
	assert.Equal(t, e1, e2)
}

func TestMachineState(t *testing.T) {
	m := NewParser(DefaultOptions()).NewMachine()
	assert.Equal(t, SectionHeader, m.State().Section)

	m.Step("# Jane Doe")
	m.Step("## Education")
	assert.Equal(t, SectionEducation, m.State().Section)
	assert.Equal(t, 2, m.State().LineNo)

	res := m.Finish()
	require.NotNil(t, res)
	assert.Empty(t, res.Content.Education)
}

func TestSplitSections(t *testing.T) {
	text := "# Jane Doe\r\njane@example.com\r\n\r\n## Summary\r\nBuilder of things.\r\n---\r\n## Skills\r\nGo, SQL\r\n"

	sections := NewParser(DefaultOptions()).SplitSections(text)

	assert.Equal(t, []string{"Builder of things."}, sections[SectionSummary])
	assert.Equal(t, []string{"Go, SQL"}, sections[SectionSkills])
	assert.NotContains(t, sections, SectionHeader)
}

func TestSplitSections_PlainKeywordInsideSection(t *testing.T) {
	p := NewParser(DefaultOptions())

	sections := p.SplitSections("## Skills\nFormation\nGo\n")
	assert.Equal(t, []string{"Formation", "Go"}, sections[SectionSkills])
	assert.NotContains(t, sections, SectionEducation)

	res := p.Parse("## Skills\nFormation\nGo\n")
	assert.Equal(t, []string{"Formation", "Go"}, res.Content.Skills)
}

func TestSectionNames(t *testing.T) {
	for s, name := range sectionNames {
		got, ok := ParseSection(name)
		assert.True(t, ok)
		assert.Equal(t, s, got)
		assert.Equal(t, name, s.String())
	}

	_, ok := ParseSection("hobbies")
	assert.False(t, ok)
}

func TestKeywordsMatch(t *testing.T) {
	k := NewKeywords(nil)

	tests := []struct {
		heading string
		section Section
		exact   bool
	}{
		{"Experience", SectionExperience, true},
		{"Experiences", SectionExperience, true},
		{"Work Experience", SectionExperience, false},
		{"Compétences linguistiques", SectionLanguages, false},
		{"Compétences", SectionSkills, true},
		{"À propos", SectionSummary, true},
		{"Réalisations", SectionProjects, true},
		{"Diplômes", SectionCertifications, true},
		{"Savoir-faire", SectionSkills, true},
		{"Reexperience", SectionNone, false},
		{"", SectionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.heading, func(t *testing.T) {
			section, exact := k.Match(tt.heading)
			assert.Equal(t, tt.section, section)
			assert.Equal(t, tt.exact, exact)
		})
	}
}
