package rendering

import (
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/cv-tracker/internal/cvjson"
	"github.com/jonathan/cv-tracker/internal/types"
)

//go:embed templates/resume.md.tmpl
var templateFS embed.FS

const defaultTemplate = "templates/resume.md.tmpl"

// untitled stands in for an entry heading with no title and no dates, which
// would otherwise not be read back as a heading
const untitled = "(untitled)"

// TemplateData is the data passed to the markdown template.
// All strings are already flattened to single lines.
type TemplateData struct {
	Name        string
	Contact     string
	Location    string
	Summary     []string
	Experiences []ExperienceBlock
	Education   []EducationBlock
	Skills      string
	Projects    []ProjectBlock
	Languages   string
}

// ExperienceBlock is one work experience: "**Title** | *Start - End*", company, bullets
type ExperienceBlock struct {
	Header  string
	Company string
	Bullets []string
}

// EducationBlock is one education entry: "**Degree** | Institution | Year" and details
type EducationBlock struct {
	Line   string
	Field  string
	GPA    string
	Honors string
}

// ProjectBlock is one project heading and its description lines
type ProjectBlock struct {
	Name  string
	Lines []string
}

// RenderMarkdown renders content as legacy markdown text using the built-in
// template. The output uses only constructs the text parser reads back.
func RenderMarkdown(c types.CVContent) (string, error) {
	tmpl, err := template.ParseFS(templateFS, defaultTemplate)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse built-in template", Cause: err}
	}
	return execute(tmpl, c)
}

// RenderMarkdownTemplate renders content with a template file from disk
func RenderMarkdownTemplate(c types.CVContent, templatePath string) (string, error) {
	tmpl, err := parseTemplate(templatePath)
	if err != nil {
		return "", err
	}
	return execute(tmpl, c)
}

func execute(tmpl *template.Template, c types.CVContent) (string, error) {
	var out strings.Builder
	if err := tmpl.Execute(&out, BuildTemplateData(c)); err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}
	return out.String(), nil
}

// parseTemplate reads and parses a markdown template file
func parseTemplate(templatePath string) (*template.Template, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}

	tmpl, err := template.New("resume").Funcs(template.FuncMap{
		"inline": Inline,
		"cell":   Cell,
	}).Parse(string(content))
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse template", Cause: err}
	}
	return tmpl, nil
}

// BuildTemplateData flattens content into template-ready lines
func BuildTemplateData(c types.CVContent) *TemplateData {
	info := c.PersonalInfo
	data := &TemplateData{
		Name:      Inline(info.Name),
		Location:  Inline(info.Location),
		Skills:    skillsLine(c.Skills),
		Languages: Inline(info.Languages),
	}

	var contact []string
	for _, v := range []string{info.Email, info.Phone} {
		if v = Cell(v); v != "" {
			contact = append(contact, v)
		}
	}
	data.Contact = strings.Join(contact, " | ")

	for _, line := range strings.Split(c.Summary, "\n") {
		if line = Inline(line); line != "" {
			data.Summary = append(data.Summary, line)
		}
	}

	for _, e := range c.Experiences {
		data.Experiences = append(data.Experiences, experienceBlock(e))
	}
	for _, e := range c.Education {
		data.Education = append(data.Education, EducationBlock{
			Line:   "**" + Cell(e.Degree) + "** | " + Cell(e.Institution) + " | " + Cell(e.Year),
			Field:  Inline(e.Field),
			GPA:    Inline(e.GPA),
			Honors: Inline(e.Honors),
		})
	}
	for _, p := range c.Projects {
		block := ProjectBlock{Name: Inline(p.Name)}
		if block.Name == "" {
			block.Name = untitled
		}
		for _, line := range strings.Split(p.Description, "\n") {
			if line = Inline(line); line != "" {
				block.Lines = append(block.Lines, line)
			}
		}
		data.Projects = append(data.Projects, block)
	}
	return data
}

func experienceBlock(e types.Experience) ExperienceBlock {
	end := e.EndDate
	if end == "" && e.Current {
		end = "Present"
	}
	period := Cell(cvjson.JoinPeriod(e.StartDate, end))

	var parts []string
	if title := Cell(e.Title); title != "" {
		parts = append(parts, "**"+title+"**")
	}
	if period != "" {
		parts = append(parts, "*"+period+"*")
	}
	header := strings.Join(parts, " | ")
	if header == "" {
		header = untitled
	}

	block := ExperienceBlock{Header: header, Company: Inline(e.Company)}
	for _, b := range cvjson.SplitAchievements(e.Description) {
		if b = Inline(b); b != "" {
			block.Bullets = append(block.Bullets, b)
		}
	}
	return block
}

// skillsLine joins skills on one comma-separated line; separators inside a
// skill would split it on re-read, so they are replaced
func skillsLine(skills []string) string {
	r := strings.NewReplacer(",", " ", "|", "/", "•", " ")
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = Inline(r.Replace(s)); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, ", ")
}
