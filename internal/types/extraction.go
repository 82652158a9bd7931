package types

// ExtractedResume is the first-pass structured guess returned by the
// extraction service for a pasted résumé. Entries use the profile-import shapes.
type ExtractedResume struct {
	PersonalInfo   PersonalInfo       `json:"personalInfo"`
	Summary        string             `json:"summary"`
	Experiences    []WorkExperience   `json:"experiences"`
	Education      []ProfileEducation `json:"education"`
	Skills         []string           `json:"skills"`
	Languages      []Language         `json:"languages,omitempty"`
	Certifications []Certification    `json:"certifications,omitempty"`
	// Uncertainties flags low-confidence fields; EntryIndex refers to Experiences
	// for experience fields and to Education for education fields
	Uncertainties []Uncertainty `json:"uncertainties"`
}
