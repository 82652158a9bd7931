package ingestion

import (
	"context"
	"strings"

	"github.com/jonathan/cv-tracker/internal/llm"
	"github.com/jonathan/cv-tracker/internal/types"
)

// ResumeLanguages is what the résumé prompt tells the model to expect
const ResumeLanguages = "English or French"

// ExtractResume asks the extraction service for a first-pass structured
// guess of a résumé. The uncertainty side-channel is returned untouched.
func ExtractResume(ctx context.Context, client llm.Client, text string) (*types.ExtractedResume, error) {
	text = CleanText(text)
	if text == "" {
		return nil, &ExtractionError{Kind: "resume", Message: "empty input"}
	}

	prompt := llm.BuildExtractionPrompt(llm.ResumeSchema(ResumeLanguages), text)
	var extracted types.ExtractedResume
	if err := llm.GenerateInto(ctx, client, prompt, llm.TierStandard, &extracted); err != nil {
		return nil, &ExtractionError{Kind: "resume", Message: "extraction failed", Cause: err}
	}
	return &extracted, nil
}

// ExtractJobDescription asks the extraction service for a structured job
// posting. When the model leaves the salary empty, ParseSalary fills it from
// the posting text.
func ExtractJobDescription(ctx context.Context, client llm.Client, text string) (*types.JobDescription, error) {
	text = CleanText(text)
	if text == "" {
		return nil, &ExtractionError{Kind: "job description", Message: "empty input"}
	}

	prompt := llm.BuildExtractionPrompt(llm.JobDescriptionSchema(), text)
	var jd types.JobDescription
	if err := llm.GenerateInto(ctx, client, prompt, llm.TierLite, &jd); err != nil {
		return nil, &ExtractionError{Kind: "job description", Message: "extraction failed", Cause: err}
	}

	if !jd.HasSalary() {
		if s, ok := ParseSalary(text); ok {
			jd.SalaryMin, jd.SalaryMax = s.Min, s.Max
			jd.SalaryCurrency = s.Currency
			if jd.SalaryRateType == "" {
				jd.SalaryRateType = s.RateType
			}
		}
	}
	jd.SalaryRateType = normalizeRateType(jd.SalaryRateType)
	jd.PresenceType = strings.ToLower(strings.TrimSpace(jd.PresenceType))

	if jd.RequiredSkills == nil {
		jd.RequiredSkills = []string{}
	}
	if jd.NiceToHaveSkills == nil {
		jd.NiceToHaveSkills = []string{}
	}
	if jd.Perks == nil {
		jd.Perks = []string{}
	}
	return &jd, nil
}

func normalizeRateType(rate string) string {
	rate = strings.ToLower(strings.TrimSpace(rate))
	switch rate {
	case "hour", "per hour", "hourly":
		return RateHourly
	case "day", "per day", "daily":
		return RateDaily
	case "month", "per month", "monthly":
		return RateMonthly
	case "year", "per year", "annual", "yearly":
		return RateYearly
	}
	return rate
}
