package parsing

import (
	"strings"

	"github.com/jonathan/cv-tracker/internal/textutil"
)

// Section identifies a résumé section the splitter can be in
type Section int

// Splitter states. SectionHeader only applies to the first lines of the document.
const (
	SectionNone Section = iota
	SectionHeader
	SectionSummary
	SectionExperience
	SectionEducation
	SectionSkills
	SectionProjects
	SectionLanguages
	SectionCertifications
	SectionOther
)

var sectionNames = map[Section]string{
	SectionNone:           "none",
	SectionHeader:         "header",
	SectionSummary:        "summary",
	SectionExperience:     "experience",
	SectionEducation:      "education",
	SectionSkills:         "skills",
	SectionProjects:       "projects",
	SectionLanguages:      "languages",
	SectionCertifications: "certifications",
	SectionOther:          "other",
}

func (s Section) String() string {
	if name, ok := sectionNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseSection returns the section with the given name
func ParseSection(name string) (Section, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range sectionNames {
		if n == name {
			return s, true
		}
	}
	return SectionNone, false
}

// keywordOrder is the precedence used when a heading matches several sections.
// Languages is checked before skills so "Compétences linguistiques" lands in languages.
var keywordOrder = []Section{
	SectionExperience,
	SectionEducation,
	SectionCertifications,
	SectionProjects,
	SectionLanguages,
	SectionSkills,
	SectionSummary,
	SectionOther,
}

// DefaultKeywords are the English and French heading triggers per section
var DefaultKeywords = map[Section][]string{
	SectionExperience: {
		"experience", "expérience", "work history", "employment",
		"parcours professionnel", "emplois",
	},
	SectionEducation: {
		"education", "études", "formation", "academic", "scolarité",
	},
	SectionSkills: {
		"skills", "compétence", "savoir-faire", "expertise", "technologies",
	},
	SectionSummary: {
		"summary", "profil", "profile", "about", "à propos", "objective", "objectif",
	},
	SectionLanguages: {
		"langue", "language", "linguistique",
	},
	SectionCertifications: {
		"certification", "diplôme", "licenses",
	},
	SectionProjects: {
		"projet", "project", "réalisation", "portfolio",
	},
	SectionOther: {
		"interests", "hobbies", "loisirs", "centres d'intérêt", "references", "références",
	},
}

// Keywords matches heading text against per-section trigger words.
// Matching ignores case and accents, and a keyword must start at a word boundary.
type Keywords struct {
	sets map[Section][]string
}

// NewKeywords builds a matcher from section keyword lists.
// Sections missing from sets fall back to DefaultKeywords.
func NewKeywords(sets map[Section][]string) *Keywords {
	k := &Keywords{sets: make(map[Section][]string, len(keywordOrder))}
	for _, s := range keywordOrder {
		words := sets[s]
		if len(words) == 0 {
			words = DefaultKeywords[s]
		}
		folded := make([]string, 0, len(words))
		for _, w := range words {
			if f := textutil.FoldAccents(w); f != "" {
				folded = append(folded, f)
			}
		}
		k.sets[s] = folded
	}
	return k
}

// Match returns the section a heading belongs to. exact is true when the
// whole heading is the keyword, ignoring a plural "s".
func (k *Keywords) Match(heading string) (section Section, exact bool) {
	text := textutil.FoldAccents(heading)
	if text == "" {
		return SectionNone, false
	}
	for _, s := range keywordOrder {
		for _, kw := range k.sets[s] {
			if containsAtWordStart(text, kw) {
				return s, singular(text) == singular(kw)
			}
		}
	}
	return SectionNone, false
}

func singular(s string) string {
	return strings.TrimSuffix(s, "s")
}

// containsAtWordStart reports whether kw occurs in text starting at a word boundary
func containsAtWordStart(text, kw string) bool {
	for offset := 0; offset <= len(text)-len(kw); {
		idx := strings.Index(text[offset:], kw)
		if idx < 0 {
			return false
		}
		pos := offset + idx
		if pos == 0 || !isWordByte(text[pos-1]) {
			return true
		}
		offset = pos + 1
	}
	return false
}

func isWordByte(b byte) bool {
	return b == '_' || b >= 0x80 ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
