package cvjson

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jonathan/cv-tracker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCanonical() *types.CanonicalCV {
	return &types.CanonicalCV{
		PersonalInfo: types.PersonalInfo{Name: "Jane Doe", Email: "jane@example.com", Location: "Paris"},
		Profile:      types.CanonicalProfile{Text: "Growth marketer."},
		Skills: types.CanonicalSkills{
			Technical: []string{"SQL", "Python", "Looker"},
			Marketing: []string{"SEO", "SEA"},
			Soft:      []string{"Leadership"},
		},
		Experiences: []types.CanonicalExperience{
			{ID: "e1", Company: "Acme", JobTitle: "Growth Lead", Period: "Jan 2020 - Present", Achievements: []string{"Doubled signups", "Built a team"}},
			{ID: "e2", Company: "Globex", JobTitle: "Analyst", Period: "2017 - 2019", Achievements: []string{}},
			{ID: "e3", Company: "Initech", JobTitle: "Intern", Period: "2016", Achievements: []string{"Reports"}},
		},
		Projects: []types.Project{{ID: "p1", Name: "Blog", Description: "Weekly posts"}},
		Education: []types.CanonicalEducation{
			{ID: "ed1", Institution: "ESSEC", Years: "2014 - 2016", Degree: "MSc", Specialization: "Marketing"},
		},
	}
}

func TestSplitPeriod(t *testing.T) {
	tests := []struct {
		name    string
		period  string
		start   string
		end     string
		current bool
	}{
		{"range", "2017 - 2019", "2017", "2019", false},
		{"present", "Jan 2020 - Present", "Jan 2020", "Present", true},
		{"present lower-case inside token", "2020 - until present day", "2020", "until present day", true},
		{"start only", "2016", "2016", "", false},
		{"first separator wins", "A - B - C", "A", "B - C", false},
		{"empty", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, current := SplitPeriod(tt.period)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
			assert.Equal(t, tt.current, current)
			assert.Equal(t, tt.period, JoinPeriod(start, end))
		})
	}
}

func TestSplitAchievements(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitAchievements("a\n\n  b  \n"))
	assert.Equal(t, []string{}, SplitAchievements(""))
}

func TestToCVContent(t *testing.T) {
	c := ToCVContent(sampleCanonical())

	assert.Equal(t, "Jane Doe", c.PersonalInfo.Name)
	assert.Equal(t, "Growth marketer.", c.Summary)
	assert.Equal(t, []string{"SQL", "Python", "Looker", "SEO", "SEA", "Leadership"}, c.Skills)

	require.Len(t, c.Experiences, 3)
	assert.Equal(t, types.Experience{
		ID:          "e1",
		Company:     "Acme",
		Title:       "Growth Lead",
		StartDate:   "Jan 2020",
		EndDate:     "Present",
		Current:     true,
		Description: "Doubled signups\nBuilt a team",
	}, c.Experiences[0])
	assert.Equal(t, "2016", c.Experiences[2].StartDate)
	assert.Empty(t, c.Experiences[2].EndDate)

	require.Len(t, c.Education, 1)
	assert.Equal(t, "Marketing", c.Education[0].Field)
	assert.Equal(t, "2014 - 2016", c.Education[0].Year)
}

func TestToCVContent_NoDedup(t *testing.T) {
	cv := &types.CanonicalCV{Skills: types.CanonicalSkills{Technical: []string{"SEO"}, Marketing: []string{"SEO"}}}
	assert.Equal(t, []string{"SEO", "SEO"}, ToCVContent(cv).Skills)
}

func TestRoundTrip(t *testing.T) {
	original := sampleCanonical()

	t.Run("flattened skills and entries survive", func(t *testing.T) {
		back := FromCVContent(ToCVContent(original), SixtyForty{})

		assert.Equal(t, original.Skills.Flatten(), back.Skills.Flatten())
		assert.Equal(t, original.Experiences, back.Experiences)
		assert.Equal(t, original.Education, back.Education)
		assert.Equal(t, original.Projects, back.Projects)
		assert.Equal(t, original.PersonalInfo, back.PersonalInfo)
		assert.Equal(t, original.Profile, back.Profile)
	})

	t.Run("boundary strategy restores buckets", func(t *testing.T) {
		strategy := BoundaryStrategy{Boundary: BucketsOf(original.Skills)}
		back := FromCVContent(ToCVContent(original), strategy)
		assert.Equal(t, original, back)
	})

	t.Run("second pass is a fixed point", func(t *testing.T) {
		once := FromCVContent(ToCVContent(original), nil)
		twice := FromCVContent(ToCVContent(once), nil)
		assert.Equal(t, once, twice)
	})
}

func TestUnmarshal(t *testing.T) {
	cv, err := Unmarshal([]byte(`{"personalInfo":{"name":"A"},"experiences":[{"jobTitle":"PM","period":"2020 - Present","achievements":["x"]}],"education":[]}`))
	require.NoError(t, err)
	assert.Equal(t, "A", cv.PersonalInfo.Name)
	assert.Equal(t, "PM", cv.Experiences[0].JobTitle)

	_, err = Unmarshal([]byte(`{"personalInfo":`))
	require.Error(t, err)
	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestMarshal_FieldNames(t *testing.T) {
	out, err := Marshal(FromCVContent(ToCVContent(sampleCanonical()), nil))
	require.NoError(t, err)

	for _, key := range []string{`"personalInfo"`, `"profile"`, `"technical"`, `"marketing"`, `"soft"`, `"jobTitle"`, `"period"`, `"achievements"`, `"years"`, `"specialization"`} {
		assert.Contains(t, string(out), key)
	}
}

func TestJSONRoundTrip_PersonalInfo(t *testing.T) {
	tests := []struct {
		name string
		info string
	}{
		{"name only", `{"name":"A"}`},
		{"unknown keys kept", `{"name":"A","title":"PM","linkedin":"x"}`},
		{"nested unknown value", `{"name":"A","email":"a@example.com","links":{"github":"gh/a","urls":[1,2]}}`},
		{"empty block", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv, err := Unmarshal([]byte(`{"personalInfo":` + tt.info + `,"experiences":[],"education":[]}`))
			require.NoError(t, err)

			out, err := Marshal(FromCVContent(ToCVContent(cv), nil))
			require.NoError(t, err)

			var doc map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(out, &doc))
			assert.JSONEq(t, tt.info, string(doc["personalInfo"]))
		})
	}
}

func TestJSONRoundTrip_FullDocumentStable(t *testing.T) {
	raw := `{
		"personalInfo": {"name": "Jane", "phone": "+33 1", "title": "PM", "linkedin": "in/jane"},
		"profile": {"text": "Hi"},
		"skills": {"technical": ["Go"], "marketing": [], "soft": []},
		"experiences": [{"id": "e1", "company": "Acme", "jobTitle": "PM", "period": "2020-01 - 2021-06", "achievements": ["x"]}],
		"projects": [],
		"education": [{"id": "ed1", "institution": "ESSEC", "years": "2014", "degree": "MSc", "specialization": ""}]
	}`
	cv, err := Unmarshal([]byte(raw))
	require.NoError(t, err)

	out, err := Marshal(FromCVContent(ToCVContent(cv), BoundaryStrategy{Boundary: BucketsOf(cv.Skills)}))
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestToCVContent_ExtraNotShared(t *testing.T) {
	cv, err := Unmarshal([]byte(`{"personalInfo":{"name":"A","title":"PM"}}`))
	require.NoError(t, err)

	c := ToCVContent(cv)
	c.PersonalInfo.Extra["title"] = json.RawMessage(`"CTO"`)

	assert.JSONEq(t, `"PM"`, string(cv.PersonalInfo.Extra["title"]))
}
