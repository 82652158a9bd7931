package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/cv-tracker/internal/parsing"
	"github.com/stretchr/testify/require"
)

const canonicalFixture = `{
  "personalInfo": {"name": "Jane Doe", "email": "jane@example.com", "phone": "+33 6 12 34 56 78", "location": "Paris, France"},
  "profile": {"text": "Product manager"},
  "skills": {"technical": ["Go", "SQL"], "marketing": ["SEO"], "soft": ["Leadership", "Empathy"]},
  "experiences": [
    {"id": "e1", "company": "Acme", "jobTitle": "PM", "period": "Jan 2020 - Present", "achievements": ["Shipped X", "Led Y"]}
  ],
  "projects": [{"id": "p1", "name": "Side", "description": "A side project"}],
  "education": [
    {"id": "ed1", "institution": "HEC", "years": "2016 - 2018", "degree": "MSc", "specialization": "Strategy"}
  ]
}`

const textFixture = "# Jane Doe\njane@example.com\n\n## Experience\n### **Product Manager**\n*Acme Corp*\n*Jan 2020 - Present*\n- Shipped X\n- Led Y\n\n## Skills\nGo, SQL"

// writeFile writes content under the test's temp dir and returns the path
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs the root command in-process and returns stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

// getBinaryPath returns the path to the cvtrack binary for testing
func getBinaryPath(t *testing.T) string {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "cvtrack")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/cvtrack ./cmd/cvtrack'", binaryPath)
	}
	return binaryPath
}

// resetFlags restores command flag variables between in-process runs
func resetFlags() {
	configPath, verbose = "", false
	parseOutDir = ""
	parseSections = false
	renderInput, renderOutput, renderTo, renderTemplate = "", "", "", ""
	mergeProfilePath, mergeFromCV, mergeFromProfile, mergeOutput = "", "", "", ""
	mergeConfirm = false
	for _, v := range mergeModes {
		*v = "add"
	}
	certsProfilePath, certsApply = "", false
	jobInput, jobURL, jobBrowser, jobOutput, jobSave, jobAPIKey = "", "", false, "", false, ""
	validateJSONPath, validateSchemaPath, validateKind = "", "", "cv"
}

func resumeDefaults() parsing.Options {
	return parsing.DefaultOptions()
}
