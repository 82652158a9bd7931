package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected DateRange
		ok       bool
	}{
		{"month and present", "Jan 2020 - Present", DateRange{Start: "Jan 2020", End: "Present", Current: true}, true},
		{"emphasized years", "*2018 - 2022*", DateRange{Start: "2018", End: "2022"}, true},
		{"french ongoing", "Septembre 2019 – aujourd'hui", DateRange{Start: "Septembre 2019", End: "aujourd'hui", Current: true}, true},
		{"en dash months", "Mar. 2015 — Dec. 2017", DateRange{Start: "Mar. 2015", End: "Dec. 2017"}, true},
		{"company name", "Acme Corp", DateRange{}, false},
		{"single year", "2020", DateRange{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDateRange(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{"international", "Tel: +33 6 12 34 56 78", "+33 6 12 34 56 78", true},
		{"dotted", "06.12.34.56.78", "06.12.34.56.78", true},
		{"year range is not a phone", "2018 - 2022", "", false},
		{"no digits", "Paris", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractPhone(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractEmail(t *testing.T) {
	email, ok := ExtractEmail("jane.doe@example.com | +33 6 12 34 56 78")
	assert.True(t, ok)
	assert.Equal(t, "jane.doe@example.com", email)

	_, ok = ExtractEmail("no address here")
	assert.False(t, ok)
}

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{"pin glyph", "📍 Paris, France", "Paris, France", true},
		{"glyph with colon", "🏠: Lyon", "Lyon", true},
		{"postcode line", "75011 Paris, France", "75011 Paris, France", true},
		{"plain text", "Product Manager", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractLocation(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStripBullet(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		bullet   bool
	}{
		{"dash", "- Shipped X", "Shipped X", true},
		{"bullet glyph", "• Led Y", "Led Y", true},
		{"mis-encoded bullet", "â€¢ Led team", "Led team", true},
		{"mis-encoded circle", "â— Built API", "Built API", true},
		{"star", "* Item", "Item", true},
		{"dash before year", "-2020", "-2020", false},
		{"bold line", "**Title**", "**Title**", false},
		{"divider", "---", "---", false},
		{"plain", "Plain text", "Plain text", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := StripBullet(tt.input)
			assert.Equal(t, tt.bullet, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCleanBulletText(t *testing.T) {
	assert.Equal(t, "Grew revenue 20%", CleanBulletText("- **Grew** revenue 20%"))
	assert.Equal(t, "Plain", CleanBulletText("  Plain  "))
}

func TestStripEmphasis(t *testing.T) {
	assert.Equal(t, "Acme Corp", StripEmphasis("*Acme Corp*"))
	assert.Equal(t, "Acme Corp", StripEmphasis("_Acme Corp_"))
	assert.Equal(t, "Head of Product", StripEmphasis("**Head of Product**"))
}

func TestHeadingLevel(t *testing.T) {
	level, text := HeadingLevel("### **Title**")
	assert.Equal(t, 3, level)
	assert.Equal(t, "**Title**", text)

	level, _ = HeadingLevel("#hashtag")
	assert.Equal(t, 0, level)
}

func TestBoldAndEmphasisOnly(t *testing.T) {
	text, ok := BoldOnly("**Skills:**")
	assert.True(t, ok)
	assert.Equal(t, "Skills:", text)

	_, ok = BoldOnly("**Title** | Company")
	assert.False(t, ok)

	text, ok = EmphasisOnly("*Jan 2020 - Present*")
	assert.True(t, ok)
	assert.Equal(t, "Jan 2020 - Present", text)

	_, ok = EmphasisOnly("**Bold**")
	assert.False(t, ok)
}

func TestFindYear(t *testing.T) {
	token, start, current, ok := FindYear("Master in Marketing, 2018 - 2020")
	assert.True(t, ok)
	assert.Equal(t, "2018 - 2020", token)
	assert.Equal(t, 21, start)
	assert.False(t, current)

	token, _, current, ok = FindYear("MBA 2022 - present")
	assert.True(t, ok)
	assert.Equal(t, "2022 - present", token)
	assert.True(t, current)

	_, _, _, ok = FindYear("GPA: 3.8")
	assert.False(t, ok)
}

func TestIsDivider(t *testing.T) {
	assert.True(t, IsDivider("---"))
	assert.True(t, IsDivider("  *****"))
	assert.False(t, IsDivider("--"))
}

func TestParseStartDate(t *testing.T) {
	tests := []struct {
		input    string
		expected DateRange
		ok       bool
	}{
		{"03/2019 - 11/2021", DateRange{Start: "03/2019", End: "11/2021"}, true},
		{"*Mar 2021*", DateRange{Start: "Mar 2021"}, true},
		{"Février 2020", DateRange{Start: "Février 2020"}, true},
		{"2021", DateRange{Start: "2021"}, true},
		{"Olympics 2024", DateRange{}, false},
		{"Acme Corp", DateRange{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseStartDate(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}
