// Package observability renders human-readable summaries for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-tracker/internal/types"
)

const (
	boxWidth       = 60
	maxItemsToShow = 5
)

// Printer writes boxed summaries to an output stream
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// list writes up to limit items under heading, with a count of the rest
func list(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	for _, item := range items[:min(len(items), limit)] {
		fmt.Fprintf(sb, "  • %s\n", item)
	}
	if len(items) > limit {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-limit)
	}
}

// PrintParsedCV summarizes a parsed résumé and its uncertainty markers.
func (p *Printer) PrintParsedCV(source string, origin types.Origin, content *types.CVContent, uncertainties []types.Uncertainty) {
	if content == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Origin:   %s\n", origin)
	if content.PersonalInfo.Name != "" {
		fmt.Fprintf(&sb, "Name:     %s\n", content.PersonalInfo.Name)
	}
	fmt.Fprintf(&sb, "Entries:  %d experience, %d education, %d skills\n",
		len(content.Experiences), len(content.Education), len(content.Skills))

	var roles []string
	for _, e := range content.Experiences {
		role := strings.TrimSpace(e.Title + " @ " + e.Company)
		if e.Current {
			role += " (current)"
		}
		roles = append(roles, role)
	}
	if len(roles) > 0 {
		sb.WriteString("\n")
	}
	list(&sb, "Experience", roles, maxItemsToShow)

	if len(uncertainties) == 0 {
		sb.WriteString("\n✓ no uncertain fields")
	} else {
		var flags []string
		for _, u := range uncertainties {
			flags = append(flags, fmt.Sprintf("#%d %s: %s", u.EntryIndex, u.Field, u.Reason))
		}
		sb.WriteString("\n")
		list(&sb, fmt.Sprintf("⚠ %d uncertain fields", len(uncertainties)), flags, maxItemsToShow)
	}

	p.printBox("PARSED CV  "+source, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobDescription summarizes an extracted job posting.
func (p *Printer) PrintJobDescription(jd *types.JobDescription) {
	if jd == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Company:  %s\n", jd.Company)
	fmt.Fprintf(&sb, "Role:     %s\n", jd.Title)
	if jd.Location != "" || jd.PresenceType != "" {
		fmt.Fprintf(&sb, "Where:    %s\n", strings.TrimSpace(jd.Location+" "+jd.PresenceType))
	}
	if jd.HasSalary() {
		fmt.Fprintf(&sb, "Salary:   %s %s\n", salaryRange(jd), jd.SalaryRateType)
	}
	sb.WriteString("\n")
	list(&sb, "Required", jd.RequiredSkills, maxItemsToShow)
	list(&sb, "Nice-to-have", jd.NiceToHaveSkills, 3)

	p.printBox("EXTRACTED JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
}

func salaryRange(jd *types.JobDescription) string {
	amount := func(v *float64) string {
		if v == nil {
			return "?"
		}
		return fmt.Sprintf("%.0f", *v)
	}
	s := amount(jd.SalaryMin)
	if jd.SalaryMax != nil && (jd.SalaryMin == nil || *jd.SalaryMax != *jd.SalaryMin) {
		s += "-" + amount(jd.SalaryMax)
	}
	return strings.TrimSpace(jd.SalaryCurrency + " " + s)
}
