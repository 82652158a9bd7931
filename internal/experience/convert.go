package experience

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/cv-tracker/internal/cvjson"
	"github.com/jonathan/cv-tracker/internal/types"
)

var (
	yearRe    = regexp.MustCompile(`\b(1[89]\d{2}|2[01]\d{2})\b`)
	ongoingRe = regexp.MustCompile(`(?i)present|current|now|today|aujourd'hui|en cours|actuel`)
)

// ToWorkExperience converts an editor entry into the profile shape.
// The description splits into achievements on newlines; blank lines are dropped.
func ToWorkExperience(e types.Experience) types.WorkExperience {
	return types.WorkExperience{
		ID:           e.ID,
		Company:      e.Company,
		Title:        e.Title,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Current:      e.Current,
		Achievements: cvjson.SplitAchievements(e.Description),
	}
}

// ToEditorExperience converts a profile entry into the editor shape
func ToEditorExperience(w types.WorkExperience) types.Experience {
	return types.Experience{
		ID:          w.ID,
		Company:     w.Company,
		Title:       w.Title,
		StartDate:   w.StartDate,
		EndDate:     w.EndDate,
		Current:     w.Current,
		Description: cvjson.JoinAchievements(w.Achievements),
	}
}

// ParseYearRange reads numeric years from a free-text year field.
// A single year is taken as the end year; an ongoing marker sets current.
func ParseYearRange(year string) (start, end *int, current bool) {
	current = ongoingRe.MatchString(year)
	var years []int
	for _, m := range yearRe.FindAllString(year, 2) {
		y, err := strconv.Atoi(m)
		if err == nil {
			years = append(years, y)
		}
	}

	switch {
	case len(years) >= 2:
		return &years[0], &years[1], current
	case len(years) == 1 && current:
		return &years[0], nil, true
	case len(years) == 1:
		return nil, &years[0], false
	}
	return nil, nil, current
}

// FormatYearRange is the inverse of ParseYearRange
func FormatYearRange(start, end *int, current bool) string {
	switch {
	case start != nil && end != nil:
		return strconv.Itoa(*start) + " - " + strconv.Itoa(*end)
	case start != nil && current:
		return strconv.Itoa(*start) + " - Present"
	case start != nil:
		return strconv.Itoa(*start)
	case end != nil:
		return strconv.Itoa(*end)
	}
	return ""
}

// ToProfileEducation converts an editor education entry into the profile shape
func ToProfileEducation(e types.Education) types.ProfileEducation {
	start, end, current := ParseYearRange(e.Year)
	return types.ProfileEducation{
		ID:          e.ID,
		Institution: e.Institution,
		Degree:      e.Degree,
		Field:       e.Field,
		StartYear:   start,
		EndYear:     end,
		Current:     current || e.Current,
		GPA:         e.GPA,
		Honors:      e.Honors,
	}
}

// ToEditorEducation converts a profile education entry into the editor shape
func ToEditorEducation(e types.ProfileEducation) types.Education {
	return types.Education{
		ID:          e.ID,
		Institution: e.Institution,
		Degree:      e.Degree,
		Field:       e.Field,
		Year:        FormatYearRange(e.StartYear, e.EndYear, e.Current),
		Current:     e.Current,
		GPA:         e.GPA,
		Honors:      e.Honors,
	}
}

// ProfileFromCV builds an import candidate profile from parsed résumé content.
// Skills default to the technical category; the location splits into city
// and country on its last comma.
func ProfileFromCV(c types.CVContent) *types.Profile {
	info := c.PersonalInfo
	p := &types.Profile{
		FullName:    info.Name,
		Email:       info.Email,
		Phone:       info.Phone,
		Summary:     c.Summary,
		Experiences: make([]types.WorkExperience, 0, len(c.Experiences)),
		Education:   make([]types.ProfileEducation, 0, len(c.Education)),
		Skills:      make([]types.Skill, 0, len(c.Skills)),
	}
	p.City, p.Country = splitLocation(info.Location)

	for _, e := range c.Experiences {
		p.Experiences = append(p.Experiences, ToWorkExperience(e))
	}
	for _, e := range c.Education {
		p.Education = append(p.Education, ToProfileEducation(e))
	}
	for _, s := range c.Skills {
		p.Skills = append(p.Skills, types.Skill{Name: s, Category: types.SkillTechnical})
	}
	for _, l := range strings.Split(info.Languages, ",") {
		if l = strings.TrimSpace(l); l != "" {
			p.Languages = append(p.Languages, types.Language{Language: l})
		}
	}
	if info.Portfolio != "" {
		p.Links = append(p.Links, types.PortfolioLink{Type: linkType(info.Portfolio), URL: info.Portfolio})
	}
	return p
}

func splitLocation(location string) (city, country string) {
	location = strings.TrimSpace(location)
	idx := strings.LastIndex(location, ",")
	if idx < 0 {
		return location, ""
	}
	return strings.TrimSpace(location[:idx]), strings.TrimSpace(location[idx+1:])
}

// linkType guesses the link type from its host
func linkType(url string) string {
	lower := strings.ToLower(url)
	for _, t := range []string{"linkedin", "github", "dribbble", "behance", "twitter"} {
		if strings.Contains(lower, t) {
			return t
		}
	}
	return "portfolio"
}
