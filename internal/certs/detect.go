// Package certs finds certifications mentioned in free-text profile fields.
package certs

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-tracker/internal/textutil"
	"github.com/jonathan/cv-tracker/internal/types"
)

// Rule synthesizes a certification from the first match of Pattern
type Rule struct {
	Pattern *regexp.Regexp
	// Name builds the certification name from the submatches
	Name   func(m []string) string
	Issuer string
}

func fixed(name string) func([]string) string {
	return func([]string) string { return name }
}

func withScore(base string) func([]string) string {
	return func(m []string) string {
		if len(m) > 1 && m[1] != "" {
			return base + " " + m[1]
		}
		return base
	}
}

func prefixed(prefix string) func([]string) string {
	return func(m []string) string {
		return prefix + strings.TrimSpace(m[1])
	}
}

// DefaultRules is the built-in table. Order matters: earlier rules win when
// patterns overlap.
var DefaultRules = []Rule{
	{Pattern: regexp.MustCompile(`(?i)\bTOEIC\b[ \t:]*(?:score[ \t:]*)?(?:(\d{3})\b)?`), Name: withScore("TOEIC"), Issuer: "ETS"},
	{Pattern: regexp.MustCompile(`(?i)\bTOEFL(?:[ \t]*iBT)?\b[ \t:]*(?:(\d{2,3})\b)?`), Name: withScore("TOEFL"), Issuer: "ETS"},
	{Pattern: regexp.MustCompile(`(?i)\bIELTS\b[ \t:]*(?:(\d(?:[.,]5)?)\b)?`), Name: withScore("IELTS"), Issuer: "British Council"},
	{Pattern: regexp.MustCompile(`(?i)\bDELF\s*(A1|A2|B1|B2)\b`), Name: func(m []string) string { return "DELF " + strings.ToUpper(m[1]) }, Issuer: "France Éducation international"},
	{Pattern: regexp.MustCompile(`(?i)\bDALF\s*(C1|C2)\b`), Name: func(m []string) string { return "DALF " + strings.ToUpper(m[1]) }, Issuer: "France Éducation international"},
	{Pattern: regexp.MustCompile(`\bPMP\b|(?i:Project Management Professional)`), Name: fixed("PMP"), Issuer: "PMI"},
	{Pattern: regexp.MustCompile(`\bCISSP\b`), Name: fixed("CISSP"), Issuer: "ISC2"},
	{Pattern: regexp.MustCompile(`\bPSM(?:\s*I{1,3})?\b|(?i:Professional Scrum Master)`), Name: fixed("Professional Scrum Master"), Issuer: "Scrum.org"},
	{Pattern: regexp.MustCompile(`\bCSM\b|(?i:Certified Scrum\s?Master)`), Name: fixed("Certified ScrumMaster"), Issuer: "Scrum Alliance"},
	{Pattern: regexp.MustCompile(`(?i)\bAWS Certified (Cloud Practitioner|Solutions Architect(?:\s*[-–]\s*(?:Associate|Professional))?|Developer(?:\s*[-–]\s*Associate)?|SysOps Administrator(?:\s*[-–]\s*Associate)?|DevOps Engineer(?:\s*[-–]\s*Professional)?|(?:Security|Data Analytics|Machine Learning)(?:\s*[-–]\s*Specialty)?)`), Name: prefixed("AWS Certified "), Issuer: "Amazon Web Services"},
	{Pattern: regexp.MustCompile(`(?i)\bAZ-(\d{3})\b`), Name: func(m []string) string { return "Microsoft Azure AZ-" + m[1] }, Issuer: "Microsoft"},
	{Pattern: regexp.MustCompile(`(?i)\bGoogle Cloud (?:Certified )?(Professional (?:Cloud Architect|Data Engineer|Cloud Developer|Cloud DevOps Engineer|Machine Learning Engineer)|Associate Cloud Engineer|Cloud Digital Leader)`), Name: prefixed("Google Cloud "), Issuer: "Google Cloud"},
	{Pattern: regexp.MustCompile(`\bGAIQ\b|(?i:Google Analytics (?:Individual Qualification|Certification))`), Name: fixed("Google Analytics Certification"), Issuer: "Google"},
}

// Detector applies an ordered rule table
type Detector struct {
	rules []Rule
}

// NewDetector returns a detector over rules; nil uses DefaultRules
func NewDetector(rules []Rule) *Detector {
	if rules == nil {
		rules = DefaultRules
	}
	return &Detector{rules: rules}
}

// Detect returns the certifications found in text that are not already in
// existing. Each rule contributes at most its first match, and a name is
// never returned twice, comparing case-insensitively.
func (d *Detector) Detect(text string, existing []types.Certification) []types.Certification {
	seen := make(map[string]bool, len(existing))
	for _, c := range existing {
		seen[textutil.Fold(c.Name)] = true
	}

	var found []types.Certification
	for _, rule := range d.rules {
		m := rule.Pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(rule.Name(m))
		key := textutil.Fold(name)
		if name == "" || seen[key] {
			continue
		}
		seen[key] = true
		found = append(found, types.Certification{Name: name, Issuer: rule.Issuer})
	}
	return found
}

// Detect runs the default rule table
func Detect(text string, existing []types.Certification) []types.Certification {
	return NewDetector(nil).Detect(text, existing)
}

// ProfileText concatenates the free-text fields of a profile that may
// mention certifications: experiences, skills, summary and languages
func ProfileText(p *types.Profile) string {
	var parts []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}

	for _, e := range p.Experiences {
		add(e.Title)
		add(e.Company)
		for _, a := range e.Achievements {
			add(a)
		}
	}
	for _, s := range p.Skills {
		add(s.Name)
	}
	add(p.Summary)
	for _, l := range p.Languages {
		add(strings.TrimSpace(l.Language + " " + l.Proficiency + " " + l.Acquisition))
	}
	return strings.Join(parts, "\n")
}
