package parsing

import (
	"strings"
	"unicode"
)

// State is the splitter position: the open section and how many lines were consumed
type State struct {
	Section Section
	LineNo  int
}

// InitialState is the state before the first line
func InitialState() State {
	return State{Section: SectionHeader}
}

// Emission is what one splitter step produces
type Emission struct {
	Section Section
	Line    string
	// Heading is set when the line switched sections; heading lines are never content
	Heading bool
}

// IsContent reports whether the emission carries a line for a section accumulator
func (e Emission) IsContent() bool {
	return !e.Heading && e.Line != "" &&
		e.Section != SectionNone && e.Section != SectionHeader
}

// maxPlainHeadingWords bounds how long an unmarked line may be and still act as a heading
const maxPlainHeadingWords = 4

// Transition advances the splitter by one line. It is pure: the same state and
// line always produce the same result.
func (p *Parser) Transition(s State, raw string) (State, Emission) {
	line := strings.TrimSpace(raw)
	next := State{Section: s.Section, LineNo: s.LineNo + 1}
	if next.Section == SectionHeader && s.LineNo >= p.headerLines {
		next.Section = SectionNone
	}

	if line == "" || IsDivider(line) {
		return next, Emission{Section: next.Section}
	}

	if section, ok := p.headingSection(line, next.Section); ok {
		next.Section = section
		return next, Emission{Section: section, Heading: true}
	}

	if next.Section == SectionHeader || next.Section == SectionNone {
		return next, Emission{Section: next.Section}
	}
	return next, Emission{Section: next.Section, Line: line}
}

// headingSection decides whether a line opens a new section.
// Level 1-2 markdown headings always switch (unknown ones to SectionOther,
// except level 1 which is the candidate name). Bold-only lines switch only
// when they match a keyword of another section; inside skills, bold-only
// lines are category labels unless they are exactly a keyword. Short plain
// lines switch freely before the first section; once one is open, only an
// upper-case exact keyword ("EDUCATION") does.
func (p *Parser) headingSection(line string, current Section) (Section, bool) {
	level, text := HeadingLevel(line)
	switch {
	case level == 1 || level == 2:
		section, _ := p.keywords.Match(cleanHeading(text))
		if section != SectionNone {
			return section, true
		}
		if level == 2 {
			return SectionOther, true
		}
		return SectionNone, false
	case level >= 3:
		return SectionNone, false
	}

	if text, ok := BoldOnly(line); ok {
		section, exact := p.keywords.Match(cleanHeading(text))
		if section == SectionNone || section == current {
			return SectionNone, false
		}
		if current == SectionSkills && !exact {
			return SectionNone, false
		}
		return section, true
	}

	if !isPlainHeadingCandidate(line) {
		return SectionNone, false
	}
	section, exact := p.keywords.Match(cleanHeading(line))
	if section == SectionNone || section == current {
		return SectionNone, false
	}
	if current == SectionNone || current == SectionHeader {
		return section, true
	}
	if exact && isUpperCase(line) {
		return section, true
	}
	return SectionNone, false
}

// isUpperCase reports whether line has letters and none of them is lower-case
func isUpperCase(line string) bool {
	hasLetter := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		hasLetter = hasLetter || unicode.IsLetter(r)
	}
	return hasLetter
}

func cleanHeading(text string) string {
	return strings.TrimRight(StripEmphasis(text), ": ")
}

// isPlainHeadingCandidate accepts short unmarked lines without list or contact punctuation
func isPlainHeadingCandidate(line string) bool {
	if _, isBullet := StripBullet(line); isBullet {
		return false
	}
	if strings.ContainsAny(line, ",|@") {
		return false
	}
	return len(strings.Fields(line)) <= maxPlainHeadingWords
}

// Machine runs Transition over a document and feeds content lines to the
// section accumulators
type Machine struct {
	parser *Parser
	state  State
	acc    *accumulator
}

// NewMachine returns a splitter positioned before the first line
func (p *Parser) NewMachine() *Machine {
	return &Machine{
		parser: p,
		state:  InitialState(),
		acc:    newAccumulator(p.skills),
	}
}

// State returns the current splitter state
func (m *Machine) State() State {
	return m.state
}

// Step consumes one line. A section change flushes any buffered entry.
func (m *Machine) Step(line string) Emission {
	next, em := m.parser.Transition(m.state, line)
	if next.Section != m.state.Section {
		m.acc.flush()
	}
	m.state = next
	if em.IsContent() {
		m.acc.consume(em.Section, em.Line)
	}
	return em
}

// Finish flushes the open section and returns everything accumulated
func (m *Machine) Finish() *Result {
	m.acc.flush()
	return m.acc.result()
}

// SplitSections buckets content lines by section, without field extraction.
// Heading lines are consumed and not included.
func (p *Parser) SplitSections(text string) map[Section][]string {
	out := make(map[Section][]string)
	state := InitialState()
	for _, line := range splitLines(text) {
		var em Emission
		state, em = p.Transition(state, line)
		if em.IsContent() {
			out[em.Section] = append(out[em.Section], em.Line)
		}
	}
	return out
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
