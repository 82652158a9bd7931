package merge

import (
	"github.com/jonathan/cv-tracker/internal/types"
)

// SkillKey identifies a skill by name
func SkillKey(s types.Skill) string { return compositeKey(s.Name) }

// ExperienceKey identifies a work experience by title and company
func ExperienceKey(e types.WorkExperience) string { return compositeKey(e.Title, e.Company) }

// EducationKey identifies an education entry by degree and institution
func EducationKey(e types.ProfileEducation) string { return compositeKey(e.Degree, e.Institution) }

// LanguageKey identifies a language by name alone; proficiency is ignored
func LanguageKey(l types.Language) string { return compositeKey(l.Language) }

// LinkKey identifies a portfolio link by its full URL
func LinkKey(l types.PortfolioLink) string { return compositeKey(l.URL) }

// CertificationKey identifies a certification by name
func CertificationKey(c types.Certification) string { return compositeKey(c.Name) }

// Plan picks a mode per profile collection. The zero Plan adds everything.
type Plan struct {
	Experiences    Mode
	Education      Mode
	Skills         Mode
	Languages      Mode
	Links          Mode
	Certifications Mode
	// Confirmed acknowledges every replace in the plan
	Confirmed bool
}

// FillScalars returns existing with each empty scalar field taken from
// incoming. Non-empty existing values are never overwritten.
func FillScalars(existing, incoming types.Profile) types.Profile {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&existing.FullName, incoming.FullName)
	fill(&existing.Email, incoming.Email)
	fill(&existing.Phone, incoming.Phone)
	fill(&existing.City, incoming.City)
	fill(&existing.Country, incoming.Country)
	fill(&existing.Summary, incoming.Summary)
	return existing
}

// MergeProfile merges incoming into existing per plan and returns a new
// profile. On a refused replace nothing is merged and a *ReplaceError is
// returned.
func MergeProfile(existing, incoming *types.Profile, plan Plan) (*types.Profile, error) {
	out := FillScalars(*existing, *incoming)
	var err error

	if out.Experiences, err = mergeCollection("experiences", existing.Experiences, incoming.Experiences, ExperienceKey, plan.Experiences, plan.Confirmed); err != nil {
		return nil, err
	}
	if out.Education, err = mergeCollection("education", existing.Education, incoming.Education, EducationKey, plan.Education, plan.Confirmed); err != nil {
		return nil, err
	}
	if out.Skills, err = mergeCollection("skills", existing.Skills, incoming.Skills, SkillKey, plan.Skills, plan.Confirmed); err != nil {
		return nil, err
	}
	if out.Languages, err = mergeCollection("languages", existing.Languages, incoming.Languages, LanguageKey, plan.Languages, plan.Confirmed); err != nil {
		return nil, err
	}
	if out.Links, err = mergeCollection("links", existing.Links, incoming.Links, LinkKey, plan.Links, plan.Confirmed); err != nil {
		return nil, err
	}
	if out.Certifications, err = mergeCollection("certifications", existing.Certifications, incoming.Certifications, CertificationKey, plan.Certifications, plan.Confirmed); err != nil {
		return nil, err
	}
	return &out, nil
}

func mergeCollection[T any](name string, existing, incoming []T, key KeyFunc[T], mode Mode, confirmed bool) ([]T, error) {
	if mode == "" {
		mode = ModeAdd
	}
	merged, err := Merge(existing, incoming, key, Options{Mode: mode, Confirmed: confirmed})
	if err != nil {
		return nil, &ReplaceError{Collection: name, Existing: len(existing), Cause: err}
	}
	return merged, nil
}
