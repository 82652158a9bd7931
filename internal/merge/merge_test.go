package merge

import (
	"errors"
	"testing"

	"github.com/jonathan/cv-tracker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrings_AddMode(t *testing.T) {
	existing := []string{"React", "Node.js"}
	incoming := []string{"react", "Python"}

	got, err := Strings(existing, incoming, Options{Mode: ModeAdd})

	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "React", "Node.js"}, got)
	assert.Equal(t, []string{"React", "Node.js"}, existing)
	assert.Equal(t, []string{"react", "Python"}, incoming)
}

func TestMerge_AddIsIdempotent(t *testing.T) {
	existing := []string{"Go", "SQL"}
	incoming := []string{"Rust", "go", "Rust", "Kafka"}

	once, err := Strings(existing, incoming, Options{})
	require.NoError(t, err)
	twice, err := Strings(once, incoming, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Rust", "Kafka", "Go", "SQL"}, once)
	assert.Equal(t, once, twice)
}

func TestMerge_Replace(t *testing.T) {
	tests := []struct {
		name      string
		existing  []string
		incoming  []string
		confirmed bool
		expected  []string
		wantErr   bool
	}{
		{"unconfirmed with existing", []string{"Go"}, []string{"Rust"}, false, nil, true},
		{"confirmed", []string{"Go"}, []string{"Rust", "rust"}, true, []string{"Rust", "rust"}, false},
		{"nothing to lose needs no confirmation", nil, []string{"Rust"}, false, []string{"Rust"}, false},
		{"empty incoming clears", []string{"Go"}, nil, true, []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Strings(tt.existing, tt.incoming, Options{Mode: ModeReplace, Confirmed: tt.confirmed})
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrReplaceNotConfirmed)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMerge_EmptyKeyNeverDuplicate(t *testing.T) {
	existing := []types.WorkExperience{{Title: "", Company: ""}}
	incoming := []types.WorkExperience{{Title: "", Company: ""}, {Title: "PM", Company: "Acme"}}

	got, err := Merge(existing, incoming, ExperienceKey, Options{})

	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, ExperienceKey(types.WorkExperience{Title: "PM", Company: "ACME "}),
		ExperienceKey(types.WorkExperience{Title: "pm", Company: "acme"}))
	assert.NotEqual(t, ExperienceKey(types.WorkExperience{Title: "PM", Company: "Acme"}),
		ExperienceKey(types.WorkExperience{Title: "PM", Company: "Globex"}))
	assert.Equal(t, LanguageKey(types.Language{Language: "English", Proficiency: "native"}),
		LanguageKey(types.Language{Language: "english", Proficiency: "basic"}))
	assert.Equal(t, "", SkillKey(types.Skill{Name: "  "}))
}

func TestParseMode(t *testing.T) {
	m, ok := ParseMode("Replace")
	assert.True(t, ok)
	assert.Equal(t, ModeReplace, m)

	m, ok = ParseMode("")
	assert.True(t, ok)
	assert.Equal(t, ModeAdd, m)

	_, ok = ParseMode("upsert")
	assert.False(t, ok)
}

func TestFillScalars(t *testing.T) {
	existing := types.Profile{FullName: "Jane Doe", Email: "", City: "Paris"}
	incoming := types.Profile{FullName: "J. Doe", Email: "jane@example.com", City: "Lyon", Country: "France", Summary: "PM"}

	got := FillScalars(existing, incoming)

	assert.Equal(t, "Jane Doe", got.FullName)
	assert.Equal(t, "jane@example.com", got.Email)
	assert.Equal(t, "Paris", got.City)
	assert.Equal(t, "France", got.Country)
	assert.Equal(t, "PM", got.Summary)
	assert.Equal(t, "", existing.Email)
}

func TestMergeProfile(t *testing.T) {
	existing := &types.Profile{
		FullName:       "Jane Doe",
		Skills:         []types.Skill{{Name: "React", Category: types.SkillTechnical}},
		Languages:      []types.Language{{Language: "English", Proficiency: "native"}},
		Certifications: []types.Certification{{Name: "PMP"}},
	}
	incoming := &types.Profile{
		FullName:       "Someone Else",
		Phone:          "+33 6 12 34 56 78",
		Skills:         []types.Skill{{Name: "react"}, {Name: "Python"}},
		Languages:      []types.Language{{Language: "english", Proficiency: "basic"}, {Language: "French"}},
		Certifications: []types.Certification{{Name: "TOEIC 980", Issuer: "ETS"}},
		Experiences:    []types.WorkExperience{{Title: "PM", Company: "Acme"}},
	}

	t.Run("add everything", func(t *testing.T) {
		got, err := MergeProfile(existing, incoming, Plan{})
		require.NoError(t, err)

		assert.Equal(t, "Jane Doe", got.FullName)
		assert.Equal(t, "+33 6 12 34 56 78", got.Phone)
		assert.Equal(t, []types.Skill{{Name: "Python"}, {Name: "React", Category: types.SkillTechnical}}, got.Skills)
		assert.Equal(t, []types.Language{{Language: "French"}, {Language: "English", Proficiency: "native"}}, got.Languages)
		assert.Len(t, got.Certifications, 2)
		assert.Len(t, got.Experiences, 1)

		assert.Len(t, existing.Skills, 1)
		assert.Empty(t, existing.Phone)
	})

	t.Run("unconfirmed replace is refused", func(t *testing.T) {
		_, err := MergeProfile(existing, incoming, Plan{Skills: ModeReplace})
		require.Error(t, err)

		var replaceErr *ReplaceError
		require.True(t, errors.As(err, &replaceErr))
		assert.Equal(t, "skills", replaceErr.Collection)
		assert.ErrorIs(t, err, ErrReplaceNotConfirmed)
	})

	t.Run("confirmed replace", func(t *testing.T) {
		got, err := MergeProfile(existing, incoming, Plan{Skills: ModeReplace, Confirmed: true})
		require.NoError(t, err)
		assert.Equal(t, incoming.Skills, got.Skills)
	})
}
