package parsing

import (
	"strings"

	"github.com/jonathan/cv-tracker/internal/textutil"
)

// skillAliases maps common skill name variants to canonical names.
// Keys are case-folded.
var skillAliases = map[string]string{
	"golang":        "Go",
	"go lang":       "Go",
	"javascript":    "JavaScript",
	"js":            "JavaScript",
	"typescript":    "TypeScript",
	"ts":            "TypeScript",
	"k8s":           "Kubernetes",
	"kubernetes":    "Kubernetes",
	"react.js":      "React",
	"reactjs":       "React",
	"vue.js":        "Vue",
	"vuejs":         "Vue",
	"node.js":       "Node.js",
	"nodejs":        "Node.js",
	"postgres":      "PostgreSQL",
	"postgresql":    "PostgreSQL",
	"gcp":           "Google Cloud",
	"figma":         "Figma",
	"seo":           "SEO",
	"sea":           "SEA",
	"ms excel":      "Excel",
	"excel":         "Excel",
	"wordpress":     "WordPress",
	"photoshop":     "Photoshop",
	"power bi":      "Power BI",
	"powerbi":       "Power BI",
	"google ads":    "Google Ads",
	"adwords":       "Google Ads",
	"html5":         "HTML",
	"css3":          "CSS",
	"scrum":         "Scrum",
	"agile":         "Agile",
	"méthode agile": "Agile",
}

// maxAcronymLen is the longest all-caps token kept as an acronym ("AWS", "SQL")
const maxAcronymLen = 4

// NormalizeSkillName maps a skill name to its canonical alias or, for plain
// single words, a capitalized form. Multi-word names are returned trimmed.
func NormalizeSkillName(skillName string) string {
	normalized := strings.TrimSpace(skillName)
	if normalized == "" {
		return ""
	}

	if canonical, ok := skillAliases[textutil.Fold(normalized)]; ok {
		return canonical
	}
	if strings.Contains(normalized, " ") {
		return normalized
	}

	upper := strings.ToUpper(normalized)
	lower := strings.ToLower(normalized)
	switch {
	case normalized == upper && len([]rune(normalized)) <= maxAcronymLen:
		return normalized
	case normalized == upper:
		return capitalize(lower)
	case normalized == lower:
		return capitalize(normalized)
	}
	// mixed case is deliberate ("iOS", "GraphQL")
	return normalized
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

// SkillKey is the comparison key for skill names: aliases collapse to one key
func SkillKey(name string) string {
	return textutil.Fold(NormalizeSkillName(name))
}
