package types

// CanonicalCV is the stable JSON interchange shape for résumés
type CanonicalCV struct {
	PersonalInfo PersonalInfo          `json:"personalInfo"`
	Profile      CanonicalProfile      `json:"profile"`
	Skills       CanonicalSkills       `json:"skills"`
	Experiences  []CanonicalExperience `json:"experiences"`
	Projects     []Project             `json:"projects"`
	Education    []CanonicalEducation  `json:"education"`
}

// CanonicalProfile holds the free-text professional summary
type CanonicalProfile struct {
	Text string `json:"text"`
}

// CanonicalSkills groups skills into the three stored buckets
type CanonicalSkills struct {
	Technical []string `json:"technical"`
	Marketing []string `json:"marketing"`
	Soft      []string `json:"soft"`
}

// CanonicalExperience stores the date range as a single "Start - End" period
type CanonicalExperience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	JobTitle     string   `json:"jobTitle"`
	Period       string   `json:"period"`
	Achievements []string `json:"achievements"`
}

// CanonicalEducation is an education entry in the interchange shape
type CanonicalEducation struct {
	ID             string `json:"id"`
	Institution    string `json:"institution"`
	Years          string `json:"years"`
	Degree         string `json:"degree"`
	Specialization string `json:"specialization"`
}

// Flatten returns all skills in bucket order: technical, marketing, soft
func (s CanonicalSkills) Flatten() []string {
	out := make([]string, 0, len(s.Technical)+len(s.Marketing)+len(s.Soft))
	out = append(out, s.Technical...)
	out = append(out, s.Marketing...)
	out = append(out, s.Soft...)
	return out
}
