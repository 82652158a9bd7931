// Package types provides type definitions for structured data used throughout the cv-tracker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Origin records the format a résumé record was stored in
type Origin string

const (
	// OriginJSON is the canonical JSON résumé schema
	OriginJSON Origin = "json"
	// OriginText is the legacy markdown-flavored text format
	OriginText Origin = "freeform-text"
)

// CVContent is the canonical in-memory résumé used by the editor
type CVContent struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      string       `json:"summary"`
	Experiences  []Experience `json:"experiences"`
	Education    []Education  `json:"education"`
	Skills       []string     `json:"skills"`
	Projects     []Project    `json:"projects,omitempty"`
}

// PersonalInfo holds the contact block of a résumé.
// Keys outside the modeled fields ("title", "linkedin", ...) are kept in
// Extra and written back verbatim on encode.
type PersonalInfo struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	Age       string `json:"age,omitempty"`
	Languages string `json:"languages,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Photo     string `json:"photo,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

var personalInfoKeys = []string{"name", "email", "phone", "location", "age", "languages", "portfolio", "photo"}

// personalInfoFields is PersonalInfo without its JSON methods
type personalInfoFields PersonalInfo

// UnmarshalJSON decodes the modeled fields and stashes every other key in Extra
func (p *PersonalInfo) UnmarshalJSON(data []byte) error {
	var fields personalInfoFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, key := range personalInfoKeys {
		delete(raw, key)
	}
	if len(raw) == 0 {
		raw = nil
	}
	fields.Extra = raw
	*p = PersonalInfo(fields)
	return nil
}

// MarshalJSON encodes the modeled fields merged with Extra.
// A modeled field wins over an Extra key of the same name.
func (p PersonalInfo) MarshalJSON() ([]byte, error) {
	out, err := json.Marshal(personalInfoFields(p))
	if err != nil || len(p.Extra) == 0 {
		return out, err
	}
	merged := make(map[string]json.RawMessage, len(p.Extra)+len(personalInfoKeys))
	for key, value := range p.Extra {
		merged[key] = value
	}
	if err := json.Unmarshal(out, &merged); err != nil {
		return nil, err
	}
	return json.Marshal(merged)
}

// IsZero reports whether no contact field is set
func (p PersonalInfo) IsZero() bool {
	return p.Name == "" && p.Email == "" && p.Phone == "" && p.Location == "" &&
		p.Age == "" && p.Languages == "" && p.Portfolio == "" && p.Photo == "" &&
		len(p.Extra) == 0
}

// Experience is a work experience in the editor shape.
// Description holds the achievement bullets joined by newlines.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Title       string `json:"title"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education is an education entry in the editor shape, with a free-text year
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Year        string `json:"year"`
	Current     bool   `json:"current,omitempty"`
	GPA         string `json:"gpa,omitempty"`
	Honors      string `json:"honors,omitempty"`
}

// Project is a side project or notable realisation
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// IsEmpty reports whether no structured entries were extracted
func (c *CVContent) IsEmpty() bool {
	return c.PersonalInfo.IsZero() &&
		c.Summary == "" &&
		len(c.Experiences) == 0 &&
		len(c.Education) == 0 &&
		len(c.Skills) == 0 &&
		len(c.Projects) == 0
}

// NewID returns a fresh entry identifier
func NewID() string {
	return uuid.NewString()
}
