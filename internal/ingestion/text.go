// Package ingestion prepares pasted or uploaded résumé and job-posting text
// for the normalization engine, and wraps the structured-extraction calls.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	spaceRunRe  = regexp.MustCompile(`[ \t\x{00A0}\x{2007}\x{202F}]+`)
	blankRunRe  = regexp.MustCompile(`\n{3,}`)
	bulletGlyph = regexp.MustCompile(`^[▪●◦■□►➢✓✔–—]\s*`)
)

// mojibake maps UTF-8 bullets and quotes read back as Windows-1252
var mojibake = strings.NewReplacer(
	"â€¢", "•",
	"â€“", "–",
	"â€”", "—",
	"â€™", "'",
	"â€œ", `"`,
	"â€\u009d", `"`,
	"Ã©", "é",
	"Ã¨", "è",
	"Ã\u00a0", "à",
	"\ufeff", "",
)

// CleanText normalizes line endings, whitespace and mis-encoded bullets while
// keeping the markdown structure the parser relies on: headings, bullets and
// bold markers are left intact, runs of blank lines shrink to one.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = mojibake.Replace(content)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := blankRunRe.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	trimmed := strings.TrimSpace(spaceRunRe.ReplaceAllString(line, " "))
	if trimmed == "" {
		return ""
	}
	// exotic bullet glyphs become the markdown bullet the parser reads
	if loc := bulletGlyph.FindStringIndex(trimmed); loc != nil && loc[1] < len(trimmed) {
		return "- " + trimmed[loc[1]:]
	}
	return trimmed
}

// ReadFile reads a résumé file and cleans it. HTML files are converted to the
// text format first.
func ReadFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &FileError{Path: path, Message: "file not found", Cause: err}
		}
		return "", &FileError{Path: path, Message: "failed to read file", Cause: err}
	}

	text := string(content)
	if isHTMLFile(path, text) {
		converted, err := HTMLToText(text)
		if err != nil {
			return "", fmt.Errorf("failed to convert %s: %w", path, err)
		}
		return converted, nil
	}
	return CleanText(text), nil
}

func isHTMLFile(path, content string) bool {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm") {
		return true
	}
	head := strings.ToLower(strings.TrimSpace(content))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}
