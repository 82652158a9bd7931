package parsing

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// phoneRe is deliberately loose; phoneMinDigits filters out year ranges
	phoneRe = regexp.MustCompile(`\+?\d[\d\s().-]{9,}`)

	// locationRe matches "75011 Paris, France" style lines
	locationRe = regexp.MustCompile(`^\d+\s+[\p{L}][\p{L}\s'-]*,`)

	headingRe  = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	boldRe     = regexp.MustCompile(`\*\*([^*]+?)\*\*`)
	boldOnlyRe = regexp.MustCompile(`^\*\*([^*]+?)\*\*:?$`)
	// emphasisOnlyRe matches a line wrapped in single emphasis: *text* or _text_
	emphasisOnlyRe = regexp.MustCompile(`^(?:\*([^*]+)\*|_([^_]+)_)$`)
	// emphasisSpanRe finds single-emphasis spans that are not part of bold markers
	emphasisSpanRe = regexp.MustCompile(`(?:^|[^*])\*([^*]+)\*(?:[^*]|$)`)

	dividerRe = regexp.MustCompile(`^(?:-{3,}|\*{3,}|_{3,})$`)

	// dateRangeRe matches "Month YYYY - Month YYYY|Present|Current", "MM/YYYY" and bare-year ranges
	dateRangeRe = regexp.MustCompile(`(?i)^((?:[\p{L}]+\.?\s+)?(?:\d{1,2}/)?\d{4})\s*[-–—]\s*((?:[\p{L}]+\.?\s+)?(?:\d{1,2}/)?\d{4}|present|current|now|today|aujourd'hui|actuel(?:lement)?|en cours)$`)

	// singleDateRe matches an open start date such as "Mar 2021", "03/2021" or "2021"
	singleDateRe = regexp.MustCompile(`(?i)^((?:(?:jan|feb|f[eé]v|mar|apr|avr|may|mai|jun|juin|jul|juil|aug|ao[uû]|sep|oct|nov|dec|d[eé]c)[\p{L}]*\.?\s+)?(?:\d{1,2}/)?\d{4})$`)

	// yearTokenRe finds a 4-digit year or a year range inside a line
	yearTokenRe = regexp.MustCompile(`(?i)\b(\d{4})(?:\s*[-–—]\s*(\d{4}|present|current|now|aujourd'hui|en cours))?\b`)

	presentRe = regexp.MustCompile(`(?i)^(present|current|now|today|aujourd'hui|actuel(?:lement)?|en cours)$`)
)

const phoneMinDigits = 9

// bulletPrefixes are list markers, including mis-encoded UTF-8 variants of "•" and "●"
var bulletPrefixes = []string{"- ", "• ", "* ", "· ", "● ", "▪ ", "◦ ", "â€¢ ", "â— ", "-", "•", "â€¢"}

// DateRange is a parsed "start - end" period
type DateRange struct {
	Start   string
	End     string
	Current bool
}

// ParseDateRange parses a "Month YYYY - Month YYYY|Present|Current" span.
// Emphasis markers around the span are ignored.
func ParseDateRange(s string) (DateRange, bool) {
	s = strings.TrimSpace(StripEmphasis(s))
	m := dateRangeRe.FindStringSubmatch(s)
	if m == nil {
		return DateRange{}, false
	}
	end := strings.TrimSpace(m[2])
	return DateRange{
		Start:   strings.TrimSpace(m[1]),
		End:     end,
		Current: presentRe.MatchString(end),
	}, true
}

// ParseStartDate parses a range or, failing that, a single start date with no end
func ParseStartDate(s string) (DateRange, bool) {
	if dr, ok := ParseDateRange(s); ok {
		return dr, true
	}
	m := singleDateRe.FindStringSubmatch(strings.TrimSpace(StripEmphasis(s)))
	if m == nil {
		return DateRange{}, false
	}
	return DateRange{Start: m[1]}, true
}

// IsPresent reports whether an end-date token means the position is ongoing
func IsPresent(end string) bool {
	return presentRe.MatchString(strings.TrimSpace(end))
}

// ExtractEmail returns the first email address in the line
func ExtractEmail(line string) (string, bool) {
	m := emailRe.FindString(line)
	return m, m != ""
}

// ExtractPhone returns the first phone-like run in the line
func ExtractPhone(line string) (string, bool) {
	for _, m := range phoneRe.FindAllString(line, -1) {
		m = strings.TrimRight(strings.TrimSpace(m), "-(. ")
		digits := 0
		for _, r := range m {
			if unicode.IsDigit(r) {
				digits++
			}
		}
		if digits >= phoneMinDigits {
			return m, true
		}
	}
	return "", false
}

// ExtractLocation returns a location from a line carrying a location glyph
// or shaped like "75011 Paris, France"
func ExtractLocation(line string) (string, bool) {
	for _, glyph := range []string{"📍", "🏠", "⌂"} {
		if idx := strings.Index(line, glyph); idx >= 0 {
			loc := strings.TrimSpace(line[idx+len(glyph):])
			loc = strings.TrimSpace(strings.TrimPrefix(loc, ":"))
			return loc, loc != ""
		}
	}
	trimmed := strings.TrimSpace(line)
	if locationRe.MatchString(trimmed) {
		return trimmed, true
	}
	return "", false
}

// StripBullet removes a leading list marker. ok is false when the line is not a bullet.
func StripBullet(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "**") || dividerRe.MatchString(trimmed) {
		return trimmed, false
	}
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			rest := strings.TrimSpace(trimmed[len(prefix):])
			// "-2020" or "-word" without a space is only a bullet for the bullet glyphs
			if prefix == "-" && (rest == "" || unicode.IsDigit(rune(rest[0]))) {
				return trimmed, false
			}
			return rest, true
		}
	}
	return trimmed, false
}

// StripBold removes **bold** markers, keeping their content
func StripBold(s string) string {
	return boldRe.ReplaceAllString(s, "$1")
}

// StripEmphasis removes bold and single-emphasis markers
func StripEmphasis(s string) string {
	s = StripBold(s)
	s = strings.TrimSpace(s)
	if m := emphasisOnlyRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1] + m[2])
	}
	return strings.ReplaceAll(s, "*", "")
}

// CleanBulletText strips the bullet marker and bold markers from a line
func CleanBulletText(line string) string {
	text, _ := StripBullet(line)
	return strings.TrimSpace(StripBold(text))
}

// HeadingLevel returns the markdown heading level of a line and its text.
// Level 0 means the line is not a heading.
func HeadingLevel(line string) (int, string) {
	m := headingRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return 0, ""
	}
	return len(m[1]), strings.TrimSpace(m[2])
}

// BoldOnly returns the inner text of a line that consists of a single bold span
func BoldOnly(line string) (string, bool) {
	m := boldOnlyRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// EmphasisOnly returns the inner text of a line wrapped in single emphasis
func EmphasisOnly(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "**") {
		return "", false
	}
	m := emphasisOnlyRe.FindStringSubmatch(trimmed)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1] + m[2]), true
}

// emphasisSpans returns the contents of single-emphasis spans in a line
func emphasisSpans(line string) []string {
	var spans []string
	for _, m := range emphasisSpanRe.FindAllStringSubmatch(StripBold(line), -1) {
		spans = append(spans, strings.TrimSpace(m[1]))
	}
	return spans
}

// boldSpans returns the contents of bold spans in a line
func boldSpans(line string) []string {
	var spans []string
	for _, m := range boldRe.FindAllStringSubmatch(line, -1) {
		spans = append(spans, strings.TrimSpace(m[1]))
	}
	return spans
}

// IsDivider reports whether the line is a horizontal rule
func IsDivider(line string) bool {
	return dividerRe.MatchString(strings.TrimSpace(line))
}

// FindYear locates the first year or year range in a line.
// It returns the matched token, its start offset, and whether the range is ongoing.
func FindYear(line string) (token string, start int, current bool, ok bool) {
	loc := yearTokenRe.FindStringSubmatchIndex(line)
	if loc == nil {
		return "", 0, false, false
	}
	token = line[loc[0]:loc[1]]
	if loc[4] >= 0 {
		current = IsPresent(line[loc[4]:loc[5]])
	}
	return token, loc[0], current, true
}
