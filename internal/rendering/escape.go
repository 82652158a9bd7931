package rendering

import "strings"

// Inline flattens text to a single markdown line: newlines and runs of
// whitespace collapse to one space, emphasis markers are dropped and leading
// heading markers removed, so the line cannot be re-read as structure
func Inline(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "*", "")
	text = strings.Join(strings.Fields(text), " ")
	return strings.TrimLeft(text, "# ")
}

// Cell is Inline for values placed in a "a | b | c" line; pipes become slashes
func Cell(text string) string {
	return strings.ReplaceAll(Inline(text), "|", "/")
}
