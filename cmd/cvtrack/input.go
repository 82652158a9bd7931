package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathan/cv-tracker/internal/cvjson"
	"github.com/jonathan/cv-tracker/internal/ingestion"
	"github.com/jonathan/cv-tracker/internal/parsing"
	"github.com/jonathan/cv-tracker/internal/resume"
	"github.com/jonathan/cv-tracker/internal/types"
)

// stdinPath names standard input or output in --in and --out flags
const stdinPath = "-"

// readInput reads a résumé from path or stdin. Canonical JSON is returned
// verbatim; HTML is converted to the text format and other text is cleaned.
func readInput(path string) (string, error) {
	var raw []byte
	var err error
	if path == stdinPath {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	text := string(raw)
	if parsing.DetectFormat(text) == types.OriginJSON {
		return text, nil
	}
	if path != stdinPath {
		return ingestion.ReadFile(path)
	}
	if strings.HasPrefix(strings.TrimSpace(text), "<") {
		return ingestion.HTMLToText(text)
	}
	return ingestion.CleanText(text), nil
}

// writeOutput writes data to path, or to w when path is empty or "-"
func writeOutput(w io.Writer, path, data string) error {
	if path == "" || path == stdinPath {
		_, err := io.WriteString(w, data)
		return err
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// bucketStrategy reuses the document's recorded bucket sizes and falls back
// to the configured ratio
func bucketStrategy(doc *resume.Document) cvjson.BucketStrategy {
	fallback := appConfig.BucketStrategy()
	if doc.Buckets != nil {
		return cvjson.BoundaryStrategy{Boundary: *doc.Buckets, Fallback: fallback}
	}
	return fallback
}

// parseOrigin accepts "json", "text" or the stored "freeform-text"
func parseOrigin(s string) (types.Origin, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return types.OriginJSON, nil
	case "text", string(types.OriginText):
		return types.OriginText, nil
	}
	return "", fmt.Errorf("unknown format %q (want json or text)", s)
}
