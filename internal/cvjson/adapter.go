// Package cvjson maps the canonical JSON résumé schema onto CVContent and back.
package cvjson

import (
	"encoding/json"
	"maps"
	"strings"

	"github.com/jonathan/cv-tracker/internal/types"
)

const periodSep = " - "

// SplitPeriod splits a "Start - End" period on the first separator.
// A period without separator is all start date. current is true when the end
// token contains "present", case-insensitively.
func SplitPeriod(period string) (start, end string, current bool) {
	idx := strings.Index(period, periodSep)
	if idx < 0 {
		return period, "", false
	}
	start = period[:idx]
	end = period[idx+len(periodSep):]
	return start, end, strings.Contains(strings.ToLower(end), "present")
}

// JoinPeriod is the inverse of SplitPeriod
func JoinPeriod(start, end string) string {
	if end == "" {
		return start
	}
	return start + periodSep + end
}

// SplitAchievements splits a newline-joined description into bullets.
// Blank lines are dropped; the result is never nil.
func SplitAchievements(description string) []string {
	out := []string{}
	for _, line := range strings.Split(description, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// JoinAchievements joins bullets into a single description
func JoinAchievements(achievements []string) string {
	return strings.Join(achievements, "\n")
}

// Unmarshal decodes a canonical JSON résumé
func Unmarshal(raw []byte) (*types.CanonicalCV, error) {
	var cv types.CanonicalCV
	if err := json.Unmarshal(raw, &cv); err != nil {
		return nil, &DecodeError{Message: "invalid canonical résumé JSON", Cause: err}
	}
	return &cv, nil
}

// ToCVContent converts the interchange shape into the editor shape.
// Skills are concatenated technical, marketing, soft with no dedup.
func ToCVContent(cv *types.CanonicalCV) types.CVContent {
	info := cv.PersonalInfo
	info.Extra = maps.Clone(info.Extra)
	c := types.CVContent{
		PersonalInfo: info,
		Summary:      cv.Profile.Text,
		Experiences:  make([]types.Experience, 0, len(cv.Experiences)),
		Education:    make([]types.Education, 0, len(cv.Education)),
		Skills:       cv.Skills.Flatten(),
		Projects:     append([]types.Project(nil), cv.Projects...),
	}

	for _, e := range cv.Experiences {
		start, end, current := SplitPeriod(e.Period)
		c.Experiences = append(c.Experiences, types.Experience{
			ID:          e.ID,
			Company:     e.Company,
			Title:       e.JobTitle,
			StartDate:   start,
			EndDate:     end,
			Current:     current,
			Description: JoinAchievements(e.Achievements),
		})
	}

	for _, e := range cv.Education {
		_, end, current := SplitPeriod(e.Years)
		if end == "" {
			current = false
		}
		c.Education = append(c.Education, types.Education{
			ID:          e.ID,
			Institution: e.Institution,
			Degree:      e.Degree,
			Field:       e.Specialization,
			Year:        e.Years,
			Current:     current,
		})
	}
	return c
}

// FromCVContent rebuilds the interchange shape. The editor shape does not
// record which bucket a skill came from, so strategy decides the split.
func FromCVContent(c types.CVContent, strategy BucketStrategy) *types.CanonicalCV {
	if strategy == nil {
		strategy = SixtyForty{}
	}
	info := c.PersonalInfo
	info.Extra = maps.Clone(info.Extra)
	cv := &types.CanonicalCV{
		PersonalInfo: info,
		Profile:      types.CanonicalProfile{Text: c.Summary},
		Skills:       strategy.Split(c.Skills),
		Experiences:  make([]types.CanonicalExperience, 0, len(c.Experiences)),
		Projects:     make([]types.Project, 0, len(c.Projects)),
		Education:    make([]types.CanonicalEducation, 0, len(c.Education)),
	}

	for _, e := range c.Experiences {
		cv.Experiences = append(cv.Experiences, types.CanonicalExperience{
			ID:           e.ID,
			Company:      e.Company,
			JobTitle:     e.Title,
			Period:       JoinPeriod(e.StartDate, e.EndDate),
			Achievements: SplitAchievements(e.Description),
		})
	}
	cv.Projects = append(cv.Projects, c.Projects...)
	for _, e := range c.Education {
		cv.Education = append(cv.Education, types.CanonicalEducation{
			ID:             e.ID,
			Institution:    e.Institution,
			Years:          e.Year,
			Degree:         e.Degree,
			Specialization: e.Field,
		})
	}
	return cv
}

// Marshal encodes a canonical résumé as indented JSON
func Marshal(cv *types.CanonicalCV) ([]byte, error) {
	out, err := json.MarshalIndent(cv, "", "  ")
	if err != nil {
		return nil, &DecodeError{Message: "failed to encode canonical résumé", Cause: err}
	}
	return out, nil
}
