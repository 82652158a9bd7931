package parsing

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/cv-tracker/internal/textutil"
)

// DefaultSkillDenylist holds category-label words that leak into skill lists
var DefaultSkillDenylist = []string{
	"design", "technical", "additional", "languages", "tools", "web", "mobile", "methodologies",
}

const maxSkillRunes = 49

var (
	skillSplitRe = regexp.MustCompile(`[,•|]`)
	// labelPrefixRe matches "Frontend: " style category prefixes
	labelPrefixRe = regexp.MustCompile(`^[^,:]{1,40}:\s*`)
)

// skillFilter turns skills-section lines into deduplicated tokens
type skillFilter struct {
	deny []string
}

func newSkillFilter(deny []string) *skillFilter {
	if len(deny) == 0 {
		deny = DefaultSkillDenylist
	}
	folded := make([]string, 0, len(deny))
	for _, d := range deny {
		if f := textutil.Fold(d); f != "" {
			folded = append(folded, f)
		}
	}
	return &skillFilter{deny: folded}
}

// tokens splits one skills line. A "Label: a, b" prefix is dropped.
func (f *skillFilter) tokens(line string) []string {
	text := CleanBulletText(line)
	if loc := labelPrefixRe.FindStringIndex(text); loc != nil && loc[1] < len(text) {
		text = text[loc[1]:]
	}

	var out []string
	for _, part := range skillSplitRe.Split(text, -1) {
		token := strings.TrimSpace(StripEmphasis(part))
		n := utf8.RuneCountInString(token)
		if n < 1 || n > maxSkillRunes {
			continue
		}
		if level, _ := HeadingLevel(token); level > 0 {
			continue
		}
		out = append(out, token)
	}
	return out
}

// finish deduplicates case-insensitively, keeping first occurrences, and
// drops label leftovers
func (f *skillFilter) finish(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	seen := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		key := textutil.Fold(token)
		if seen[key] || f.isLabelLeftover(token) {
			continue
		}
		seen[key] = true
		out = append(out, token)
	}
	return out
}

// isLabelLeftover reports whether a token is a category label rather than a
// skill: it ends with ":" or its first word is a denylisted label. Matching
// is by whole first word, so "Web Development" is dropped and "Webpack" kept.
func (f *skillFilter) isLabelLeftover(token string) bool {
	if strings.HasSuffix(strings.TrimSpace(token), ":") {
		return true
	}
	words := strings.FieldsFunc(textutil.Fold(token), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '&' || r == '/' || r == '-'
	})
	return len(words) > 0 && f.denied(words[0])
}

func (f *skillFilter) denied(word string) bool {
	word = strings.TrimRight(word, ":")
	for _, d := range f.deny {
		if word == d {
			return true
		}
	}
	return false
}

// splitItems splits a comma/bullet/pipe separated line into trimmed items
func splitItems(text string) []string {
	var out []string
	for _, part := range skillSplitRe.Split(text, -1) {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	return out
}
