package parsing

import (
	"strings"

	"github.com/jonathan/cv-tracker/internal/types"
)

// Options tunes the text parser
type Options struct {
	// HeaderLines is how many leading lines the personal-info pre-pass scans
	HeaderLines int
	// Keywords overrides section trigger words; nil uses DefaultKeywords
	Keywords *Keywords
	// SkillDenylist overrides the category-label words dropped from skills
	SkillDenylist []string
}

// DefaultOptions returns the built-in parser settings
func DefaultOptions() Options {
	return Options{HeaderLines: DefaultHeaderLines}
}

// Parser parses legacy markdown-flavored résumé text. A Parser is immutable
// and safe for concurrent use.
type Parser struct {
	headerLines int
	keywords    *Keywords
	skills      *skillFilter
}

// NewParser builds a parser; zero-valued options fall back to defaults
func NewParser(opts Options) *Parser {
	p := &Parser{
		headerLines: opts.HeaderLines,
		keywords:    opts.Keywords,
		skills:      newSkillFilter(opts.SkillDenylist),
	}
	if p.headerLines <= 0 {
		p.headerLines = DefaultHeaderLines
	}
	if p.keywords == nil {
		p.keywords = NewKeywords(nil)
	}
	return p
}

// KeywordsFromConfig builds a matcher from section-name keyed lists, as they
// appear in the config file
func KeywordsFromConfig(sets map[string][]string) (*Keywords, error) {
	bySection := make(map[Section][]string, len(sets))
	for name, words := range sets {
		section, ok := ParseSection(name)
		if !ok || section == SectionNone || section == SectionHeader {
			return nil, &ConfigError{Message: "unknown section " + `"` + name + `"`}
		}
		bySection[section] = words
	}
	return NewKeywords(bySection), nil
}

// Result is the output of parsing one text résumé
type Result struct {
	Content types.CVContent
	// Uncertainties flags fields the heuristics could not fill
	Uncertainties []types.Uncertainty
	// Languages holds items from a languages section
	Languages []string
	// Certifications holds certification names listed in their own section
	Certifications []string
	// Other holds lines from unrecognised sections
	Other []string
}

// Parse runs the header pre-pass and the section splitter over text
func (p *Parser) Parse(text string) *Result {
	lines := splitLines(text)

	m := p.NewMachine()
	for _, line := range lines {
		m.Step(line)
	}
	res := m.Finish()

	res.Content.PersonalInfo = ExtractHeader(lines, p.headerLines)
	if len(res.Languages) > 0 {
		res.Content.PersonalInfo.Languages = strings.Join(res.Languages, ", ")
	}
	return res
}

var defaultParser = NewParser(DefaultOptions())

// ParseMarkdown parses text with the default options
func ParseMarkdown(text string) *Result {
	return defaultParser.Parse(text)
}
