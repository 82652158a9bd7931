package types

import "github.com/go-playground/validator/v10"

// SkillCategory classifies a profile skill
type SkillCategory string

// Skill categories
const (
	SkillTechnical SkillCategory = "technical"
	SkillSoft      SkillCategory = "soft"
	SkillLanguage  SkillCategory = "language"
	SkillTool      SkillCategory = "tool"
)

// Profile is the long-lived candidate profile that imports are merged into
type Profile struct {
	ID             string             `json:"id"`
	FullName       string             `json:"fullName"`
	Email          string             `json:"email" validate:"omitempty,email"`
	Phone          string             `json:"phone"`
	City           string             `json:"city"`
	Country        string             `json:"country"`
	Summary        string             `json:"summary"`
	Experiences    []WorkExperience   `json:"experiences" validate:"dive"`
	Education      []ProfileEducation `json:"education" validate:"dive"`
	Skills         []Skill            `json:"skills" validate:"dive"`
	Languages      []Language         `json:"languages" validate:"dive"`
	Links          []PortfolioLink    `json:"links" validate:"dive"`
	Certifications []Certification    `json:"certifications" validate:"dive"`
}

// WorkExperience is a work experience in the profile-import shape,
// with achievements kept as a list
type WorkExperience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Title        string   `json:"title"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Achievements []string `json:"achievements"`
}

// ProfileEducation is an education entry with numeric years
type ProfileEducation struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartYear   *int   `json:"startYear,omitempty" validate:"omitempty,gte=1900,lte=2200"`
	EndYear     *int   `json:"endYear,omitempty" validate:"omitempty,gte=1900,lte=2200"`
	Current     bool   `json:"current,omitempty"`
	GPA         string `json:"gpa,omitempty"`
	Honors      string `json:"honors,omitempty"`
}

// Skill is a named skill with a category and optional proficiency
type Skill struct {
	ID          string        `json:"id"`
	Name        string        `json:"name" validate:"required"`
	Category    SkillCategory `json:"category" validate:"oneof=technical soft language tool"`
	Proficiency string        `json:"proficiency,omitempty" validate:"omitempty,oneof=beginner intermediate advanced expert"`
}

// Language is a spoken language and the candidate's proficiency in it
type Language struct {
	ID          string `json:"id"`
	Language    string `json:"language" validate:"required"`
	Proficiency string `json:"proficiency" validate:"omitempty,oneof=basic conversational professional native bilingual"`
	Acquisition string `json:"acquisition,omitempty"`
}

// PortfolioLink is a link to an external portfolio or social profile
type PortfolioLink struct {
	ID    string `json:"id"`
	Type  string `json:"type" validate:"oneof=portfolio linkedin github dribbble behance twitter"`
	URL   string `json:"url" validate:"required,url"`
	Label string `json:"label,omitempty"`
}

// Certification is a professional credential or test score
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name" validate:"required"`
	Issuer string `json:"issuer"`
	Date   string `json:"date,omitempty"`
}

// Validate validates the Profile and every nested entry using the validator.
func (p *Profile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Validate validates the Skill using the validator.
func (s *Skill) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// Validate validates the PortfolioLink using the validator.
func (l *PortfolioLink) Validate() error {
	validate := validator.New()
	return validate.Struct(l)
}
