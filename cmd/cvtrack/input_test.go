package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/cv-tracker/internal/cvjson"
	"github.com/jonathan/cv-tracker/internal/resume"
	"github.com/jonathan/cv-tracker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInput(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		expected string
	}{
		{"canonical json is verbatim", "cv.json", canonicalFixture, canonicalFixture},
		{"text is cleaned", "cv.md", "# Jane Doe\r\n\r\n\r\n\r\n## Skills\r\nGo", "# Jane Doe\n\n## Skills\nGo"},
		{"html is converted", "cv.html", "<html><body><h1>Jane Doe</h1><ul><li>Go</li></ul></body></html>", "# Jane Doe\n- Go"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readInput(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReadInput_MissingFile(t *testing.T) {
	_, err := readInput(filepath.Join(t.TempDir(), "missing.md"))
	assert.Error(t, err)
}

func TestWriteOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeOutput(&buf, "", "hello"))
	require.NoError(t, writeOutput(&buf, "-", " world"))
	assert.Equal(t, "hello world", buf.String())

	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, writeOutput(&buf, path, "file"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "file", string(data))
}

func TestParseOrigin(t *testing.T) {
	tests := []struct {
		in       string
		expected types.Origin
		wantErr  bool
	}{
		{"json", types.OriginJSON, false},
		{"TEXT", types.OriginText, false},
		{"freeform-text", types.OriginText, false},
		{"pdf", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseOrigin(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBucketStrategy(t *testing.T) {
	doc := resume.Parse(canonicalFixture)
	assert.Equal(t, "boundary", bucketStrategy(doc).Name())

	text := resume.Parse(textFixture)
	assert.Equal(t, cvjson.SixtyForty{}.Name(), bucketStrategy(text).Name())
}
