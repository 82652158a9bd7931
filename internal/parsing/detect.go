// Package parsing turns résumé content into the canonical CVContent structure.
// It holds the format detector, the markdown section splitter and the
// per-section field extractors. Parsing never performs I/O or fails:
// malformed input yields partial results.
package parsing

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/cv-tracker/internal/types"
)

// canonicalKeys must all be present for a blob to be treated as canonical JSON
var canonicalKeys = []string{"personalInfo", "experiences", "education"}

// DetectFormat classifies raw résumé content as canonical JSON or free-form text.
// Content that looks like JSON but fails to parse, or lacks a required key,
// falls through to free-form text.
func DetectFormat(raw string) types.Origin {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return types.OriginText
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
		return types.OriginText
	}

	for _, key := range canonicalKeys {
		if _, ok := obj[key]; !ok {
			return types.OriginText
		}
	}
	return types.OriginJSON
}
