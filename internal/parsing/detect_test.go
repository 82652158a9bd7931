package parsing

import (
	"testing"

	"github.com/jonathan/cv-tracker/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected types.Origin
	}{
		{
			name:     "canonical JSON",
			input:    `{"personalInfo":{},"experiences":[],"education":[]}`,
			expected: types.OriginJSON,
		},
		{
			name:     "canonical JSON with surrounding whitespace",
			input:    "\n  {\"personalInfo\":{\"name\":\"A\"},\"experiences\":[],\"education\":[],\"skills\":{}}  \n",
			expected: types.OriginJSON,
		},
		{
			name:     "missing experiences key",
			input:    `{"personalInfo":{},"education":[]}`,
			expected: types.OriginText,
		},
		{
			name:     "braces but not JSON",
			input:    "{ not json }",
			expected: types.OriginText,
		},
		{
			name:     "JSON array",
			input:    `[{"personalInfo":{}}]`,
			expected: types.OriginText,
		},
		{
			name:     "markdown",
			input:    "# Jane Doe\n## Experience",
			expected: types.OriginText,
		},
		{
			name:     "empty",
			input:    "",
			expected: types.OriginText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectFormat(tt.input))
		})
	}
}
