package parsing

import (
	"strings"

	"github.com/jonathan/cv-tracker/internal/types"
)

// DefaultHeaderLines is how many leading lines the personal-info pre-pass scans
const DefaultHeaderLines = 10

// ExtractHeader scans the first limit lines for personal info.
// The first level-1 heading becomes the name; for email, phone and location
// the first match wins.
func ExtractHeader(lines []string, limit int) types.PersonalInfo {
	var info types.PersonalInfo
	if limit <= 0 {
		limit = DefaultHeaderLines
	}

	for i, raw := range lines {
		if i >= limit {
			break
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if level, text := HeadingLevel(line); level == 1 {
			if info.Name == "" {
				info.Name = StripEmphasis(text)
			}
			continue
		}
		if info.Email == "" {
			if email, ok := ExtractEmail(line); ok {
				info.Email = email
			}
		}
		if info.Phone == "" {
			if phone, ok := ExtractPhone(line); ok {
				info.Phone = phone
			}
		}
		if info.Location == "" {
			if loc, ok := ExtractLocation(line); ok {
				info.Location = loc
			}
		}
	}
	return info
}
