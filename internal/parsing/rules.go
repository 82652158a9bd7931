package parsing

import (
	"strings"

	"github.com/jonathan/cv-tracker/internal/cvjson"
	"github.com/jonathan/cv-tracker/internal/types"
)

// lineRule is one (predicate, action) pair of a section's ordered rule table.
// The first rule whose predicate matches handles the line.
type lineRule struct {
	name  string
	match func(line string) bool
	apply func(a *accumulator, line string)
}

var experienceRules = []lineRule{
	{name: "sub-header", match: isSubHeader, apply: (*accumulator).startExperience},
	{name: "bullet", match: isBullet, apply: (*accumulator).addExperienceLine},
	{name: "emphasis", match: isEmphasisOnly, apply: (*accumulator).experienceEmphasis},
	{name: "text", match: always, apply: (*accumulator).addExperienceLine},
}

var educationRules = []lineRule{
	{name: "entry", match: startsEducation, apply: (*accumulator).startEducation},
	{name: "emphasis", match: isEmphasisOnly, apply: (*accumulator).educationDetail},
	{name: "bullet", match: isBullet, apply: (*accumulator).educationBullet},
	{name: "text", match: always, apply: (*accumulator).educationDetail},
}

var skillsRules = []lineRule{
	{name: "sub-heading", match: isSubHeader, apply: skip},
	{name: "category-label", match: isCategoryLabel, apply: skip},
	{name: "tokens", match: always, apply: (*accumulator).addSkillLine},
}

var summaryRules = []lineRule{
	{name: "heading", match: isSubHeader, apply: skip},
	{name: "text", match: always, apply: (*accumulator).addSummaryLine},
}

var projectRules = []lineRule{
	{name: "sub-header", match: isSubHeader, apply: (*accumulator).startProject},
	{name: "bold-title", match: isBoldOnly, apply: (*accumulator).startProject},
	{name: "text", match: always, apply: (*accumulator).addProjectLine},
}

var languageRules = []lineRule{
	{name: "sub-heading", match: isSubHeader, apply: skip},
	{name: "items", match: always, apply: (*accumulator).addLanguageLine},
}

var certificationRules = []lineRule{
	{name: "sub-heading", match: isSubHeader, apply: skip},
	{name: "item", match: always, apply: (*accumulator).addCertificationLine},
}

var otherRules = []lineRule{
	{name: "item", match: always, apply: (*accumulator).addOtherLine},
}

var rulesBySection = map[Section][]lineRule{
	SectionExperience:     experienceRules,
	SectionEducation:      educationRules,
	SectionSkills:         skillsRules,
	SectionSummary:        summaryRules,
	SectionProjects:       projectRules,
	SectionLanguages:      languageRules,
	SectionCertifications: certificationRules,
	SectionOther:          otherRules,
}

// applyRules runs the first matching rule and returns its name
func applyRules(rules []lineRule, a *accumulator, line string) string {
	for _, r := range rules {
		if r.match(line) {
			r.apply(a, line)
			return r.name
		}
	}
	return ""
}

func always(string) bool           { return true }
func skip(*accumulator, string)    {}
func isSubHeader(line string) bool { level, _ := HeadingLevel(line); return level >= 1 }
func isBoldOnly(line string) bool  { _, ok := BoldOnly(line); return ok }
func isBullet(line string) bool    { _, ok := StripBullet(line); return ok }

func isEmphasisOnly(line string) bool {
	_, ok := EmphasisOnly(line)
	return ok
}

// isCategoryLabel matches bold-only lines without commas, e.g. "**Frontend**"
func isCategoryLabel(line string) bool {
	text, ok := BoldOnly(line)
	return ok && !strings.Contains(text, ",")
}

// startsEducation matches lines with bold emphasis or a 4-digit year
func startsEducation(line string) bool {
	if isEmphasisOnly(line) {
		return false
	}
	if strings.Contains(line, "**") {
		return true
	}
	_, _, _, ok := FindYear(line)
	return ok
}

type experienceDraft struct {
	exp         types.Experience
	lines       []string
	companySeen bool
	// period holds a header emphasis span taken as the period by position
	// only. It is demoted to the company if a dated line follows.
	period string
}

type educationDraft struct {
	edu types.Education
	// institutionSeen is set once the institution slot is taken, even by an empty pipe cell
	institutionSeen bool
}

type projectDraft struct {
	project types.Project
	lines   []string
}

// accumulator buffers the per-section output of the splitter
type accumulator struct {
	skills *skillFilter

	summary []string

	experiences []types.Experience
	currentExp  *experienceDraft

	education  []types.Education
	currentEdu *educationDraft

	skillTokens []string

	projects       []types.Project
	currentProject *projectDraft

	languages      []string
	certifications []string
	other          []string

	uncertainties []types.Uncertainty
}

func newAccumulator(skills *skillFilter) *accumulator {
	return &accumulator{skills: skills}
}

func (a *accumulator) consume(section Section, line string) string {
	return applyRules(rulesBySection[section], a, line)
}

// flush closes any buffered entry
func (a *accumulator) flush() {
	a.flushExperience()
	a.flushEducation()
	a.flushProject()
}

// --- experience ---

func (a *accumulator) startExperience(line string) {
	a.flushExperience()
	_, text := HeadingLevel(line)
	exp, period := parseExperienceHeader(text)
	a.currentExp = &experienceDraft{exp: exp, period: period}
	a.currentExp.companySeen = exp.Company != ""
}

func (a *accumulator) addExperienceLine(line string) {
	if a.currentExp == nil {
		return
	}
	if text := CleanBulletText(line); text != "" {
		a.currentExp.lines = append(a.currentExp.lines, text)
	}
}

// experienceEmphasis handles a single-emphasis line under an entry: a date
// range fills missing dates, otherwise the first such line is the company.
// A line carrying both ("Acme | Jan 2020 - Present") supplies both.
func (a *accumulator) experienceEmphasis(line string) {
	if a.currentExp == nil {
		return
	}
	text, _ := EmphasisOnly(line)
	exp := &a.currentExp.exp

	if a.currentExp.period != "" && !a.currentExp.companySeen && isDated(text) {
		exp.Company = a.currentExp.period
		exp.StartDate, exp.EndDate, exp.Current = "", "", false
		a.currentExp.companySeen = true
		a.currentExp.period = ""
	}

	if dr, ok := ParseStartDate(text); ok {
		if exp.StartDate == "" {
			setDates(exp, dr)
		}
		return
	}

	if company, dr, ok := splitCompanyDate(text); ok {
		if exp.StartDate == "" {
			setDates(exp, dr)
		}
		if !a.currentExp.companySeen {
			exp.Company = company
			a.currentExp.companySeen = true
		}
		return
	}

	if !a.currentExp.companySeen {
		exp.Company = text
		a.currentExp.companySeen = true
		return
	}
	a.addExperienceLine(text)
}

func (a *accumulator) flushExperience() {
	if a.currentExp == nil {
		return
	}
	exp := a.currentExp.exp
	exp.Description = strings.Join(a.currentExp.lines, "\n")
	idx := len(a.experiences)
	if exp.StartDate == "" {
		a.flag(idx, "startDate", "no date range found")
	}
	if exp.Company == "" {
		a.flag(idx, "company", "company not found")
	}
	a.experiences = append(a.experiences, exp)
	a.currentExp = nil
}

// looksLikePeriod accepts date shapes the range patterns miss, such as
// "2020-01 - 2021-06" or "Summer 2019", but not a bare company name
func looksLikePeriod(span string) bool {
	if strings.ContainsAny(span, "0123456789") {
		return true
	}
	_, end, _ := cvjson.SplitPeriod(span)
	return end != "" && IsPresent(end)
}

func isDated(text string) bool {
	if _, ok := ParseStartDate(text); ok {
		return true
	}
	_, _, ok := splitCompanyDate(text)
	return ok
}

// parseExperienceHeader reads an entry sub-header such as
// "**Product Manager** | Acme | *Jan 2020 - Present*". An emphasis span that
// is not a recognizable date range is still read as the period, by position,
// and returned so a later dated line can demote it.
func parseExperienceHeader(text string) (exp types.Experience, period string) {
	if spans := boldSpans(text); len(spans) > 0 {
		exp.Title = spans[0]
	}
	spans := emphasisSpans(text)
	for _, span := range spans {
		if dr, ok := ParseStartDate(span); ok {
			setDates(&exp, dr)
			break
		}
	}
	if exp.StartDate == "" && len(spans) > 0 {
		if last := spans[len(spans)-1]; looksLikePeriod(last) {
			period = last
			exp.StartDate, exp.EndDate, exp.Current = cvjson.SplitPeriod(period)
		}
	}

	for _, part := range strings.Split(text, "|") {
		clean := strings.Trim(strings.TrimSpace(StripEmphasis(part)), "()")
		if clean == "" || clean == exp.Title || (period != "" && strings.TrimSpace(StripEmphasis(part)) == period) {
			continue
		}
		if dr, ok := ParseStartDate(clean); ok {
			if exp.StartDate == "" {
				setDates(&exp, dr)
			}
			continue
		}
		if exp.Title == "" {
			exp.Title = clean
			continue
		}
		if exp.Company == "" {
			exp.Company = clean
		}
	}
	return exp, period
}

// splitCompanyDate splits "Acme Corp | Jan 2020 - Present" or "Acme Corp, 2019 - 2021"
func splitCompanyDate(text string) (string, DateRange, bool) {
	for _, sep := range []string{"|", "·", ","} {
		parts := strings.Split(text, sep)
		if len(parts) < 2 {
			continue
		}
		var rest []string
		var found DateRange
		ok := false
		for _, part := range parts {
			part = strings.TrimSpace(part)
			if dr, isDate := ParseDateRange(part); isDate && !ok {
				found, ok = dr, true
				continue
			}
			if part != "" {
				rest = append(rest, part)
			}
		}
		if ok {
			return strings.Join(rest, sep+" "), found, true
		}
	}
	return "", DateRange{}, false
}

func setDates(exp *types.Experience, dr DateRange) {
	exp.StartDate = dr.Start
	exp.EndDate = dr.End
	exp.Current = dr.Current
}

// --- education ---

func (a *accumulator) startEducation(line string) {
	a.flushEducation()
	edu, piped := parseEducationLine(CleanBulletText(line))
	a.currentEdu = &educationDraft{edu: edu, institutionSeen: piped || edu.Institution != ""}
}

// educationDetail fills institution first, then field
func (a *accumulator) educationDetail(line string) {
	if a.currentEdu == nil {
		return
	}
	text := StripEmphasis(CleanBulletText(line))
	edu := &a.currentEdu.edu
	switch {
	case text == "":
	case !a.currentEdu.institutionSeen:
		edu.Institution = text
		a.currentEdu.institutionSeen = true
	case edu.Field == "":
		edu.Field = text
	default:
		a.appendHonors(text)
	}
}

func (a *accumulator) educationBullet(line string) {
	if a.currentEdu == nil {
		return
	}
	text := CleanBulletText(line)
	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, "gpa") || strings.HasPrefix(lower, "moyenne") {
		if idx := strings.Index(text, ":"); idx >= 0 {
			a.currentEdu.edu.GPA = strings.TrimSpace(text[idx+1:])
			return
		}
	}
	a.appendHonors(text)
}

func (a *accumulator) appendHonors(text string) {
	edu := &a.currentEdu.edu
	if edu.Honors == "" {
		edu.Honors = text
		return
	}
	edu.Honors += "; " + text
}

func (a *accumulator) flushEducation() {
	if a.currentEdu == nil {
		return
	}
	edu := a.currentEdu.edu
	idx := len(a.education)
	if edu.Institution == "" {
		a.flag(idx, "institution", "institution not found")
	}
	if edu.Year == "" {
		a.flag(idx, "year", "no year found")
	}
	a.education = append(a.education, edu)
	a.currentEdu = nil
}

// parseEducationLine reads "degree | institution | year" or "degree, 2018 - 2022".
// piped reports whether the pipe form was used.
func parseEducationLine(text string) (edu types.Education, piped bool) {
	text = StripEmphasis(text)

	if strings.Contains(text, "|") {
		parts := strings.Split(text, "|")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		edu.Degree = parts[0]
		if len(parts) > 1 {
			edu.Institution = parts[1]
		}
		if len(parts) > 2 {
			edu.Year = parts[2]
			if _, _, current, ok := FindYear(edu.Year); ok {
				edu.Current = current
			}
		}
		return edu, true
	}

	if token, start, current, ok := FindYear(text); ok {
		edu.Year = token
		edu.Current = current
		edu.Degree = strings.Trim(text[:start], " ,-–—|(")
		if edu.Degree == "" {
			edu.Degree = strings.Trim(text[start+len(token):], " ,-–—|()")
		}
		return edu, false
	}

	edu.Degree = strings.TrimSpace(text)
	return edu, false
}

// --- skills ---

func (a *accumulator) addSkillLine(line string) {
	a.skillTokens = append(a.skillTokens, a.skills.tokens(line)...)
}

// --- summary ---

func (a *accumulator) addSummaryLine(line string) {
	a.summary = append(a.summary, strings.TrimSpace(StripBold(line)))
}

// --- projects ---

func (a *accumulator) startProject(line string) {
	a.flushProject()
	_, text := HeadingLevel(line)
	if text == "" {
		text = line
	}
	a.currentProject = &projectDraft{project: types.Project{Name: StripEmphasis(text)}}
}

func (a *accumulator) addProjectLine(line string) {
	if a.currentProject == nil {
		return
	}
	if text := CleanBulletText(line); text != "" {
		a.currentProject.lines = append(a.currentProject.lines, text)
	}
}

func (a *accumulator) flushProject() {
	if a.currentProject == nil {
		return
	}
	p := a.currentProject.project
	p.Description = strings.Join(a.currentProject.lines, "\n")
	a.projects = append(a.projects, p)
	a.currentProject = nil
}

// --- languages, certifications, other ---

func (a *accumulator) addLanguageLine(line string) {
	a.languages = append(a.languages, splitItems(CleanBulletText(line))...)
}

func (a *accumulator) addCertificationLine(line string) {
	if text := StripEmphasis(CleanBulletText(line)); text != "" {
		a.certifications = append(a.certifications, text)
	}
}

func (a *accumulator) addOtherLine(line string) {
	if text := CleanBulletText(line); text != "" {
		a.other = append(a.other, text)
	}
}

func (a *accumulator) flag(idx int, field, reason string) {
	a.uncertainties = append(a.uncertainties, types.Uncertainty{
		EntryIndex: idx,
		Field:      field,
		Reason:     reason,
	})
}

func (a *accumulator) result() *Result {
	if a.experiences == nil {
		a.experiences = []types.Experience{}
	}
	if a.education == nil {
		a.education = []types.Education{}
	}
	return &Result{
		Content: types.CVContent{
			Summary:     strings.TrimSpace(strings.Join(a.summary, "\n")),
			Experiences: a.experiences,
			Education:   a.education,
			Skills:      a.skills.finish(a.skillTokens),
			Projects:    a.projects,
		},
		Languages:      a.languages,
		Certifications: a.certifications,
		Other:          a.other,
		Uncertainties:  a.uncertainties,
	}
}
