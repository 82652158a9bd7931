package experience

import (
	"strings"

	"github.com/jonathan/cv-tracker/internal/parsing"
	"github.com/jonathan/cv-tracker/internal/types"
)

// NormalizeProfile applies all normalization steps to a profile
func NormalizeProfile(p *types.Profile) error {
	NormalizeSkills(p)
	TrimAchievements(p)
	return NormalizeEnums(p)
}

// NormalizeSkills canonicalizes skill names and drops duplicates, keeping the
// first occurrence
func NormalizeSkills(p *types.Profile) {
	normalized := make([]types.Skill, 0, len(p.Skills))
	seen := make(map[string]struct{})

	for _, skill := range p.Skills {
		skill.Name = parsing.NormalizeSkillName(skill.Name)
		if skill.Name == "" {
			continue
		}
		key := parsing.SkillKey(skill.Name)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		normalized = append(normalized, skill)
	}

	p.Skills = normalized
}

// TrimAchievements trims achievement text and drops blank achievements
func TrimAchievements(p *types.Profile) {
	for i := range p.Experiences {
		achievements := make([]string, 0, len(p.Experiences[i].Achievements))
		for _, a := range p.Experiences[i].Achievements {
			if a = strings.TrimSpace(a); a != "" {
				achievements = append(achievements, a)
			}
		}
		p.Experiences[i].Achievements = achievements
	}
}

// NormalizeEnums lower-cases enum fields and rejects unknown values.
// A missing skill category defaults to technical.
func NormalizeEnums(p *types.Profile) error {
	validCategories := map[types.SkillCategory]bool{
		types.SkillTechnical: true,
		types.SkillSoft:      true,
		types.SkillLanguage:  true,
		types.SkillTool:      true,
	}

	for i, skill := range p.Skills {
		category := types.SkillCategory(strings.ToLower(strings.TrimSpace(string(skill.Category))))
		if category == "" {
			category = types.SkillTechnical
		}
		if !validCategories[category] {
			return &NormalizationError{Collection: "skills", Index: i, Value: string(skill.Category)}
		}
		p.Skills[i].Category = category
		p.Skills[i].Proficiency = strings.ToLower(strings.TrimSpace(skill.Proficiency))
	}

	for i := range p.Languages {
		p.Languages[i].Proficiency = strings.ToLower(strings.TrimSpace(p.Languages[i].Proficiency))
	}
	for i := range p.Links {
		p.Links[i].Type = strings.ToLower(strings.TrimSpace(p.Links[i].Type))
	}
	return nil
}
