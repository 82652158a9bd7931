// Package resume holds the format-tagged résumé document shared by every
// consumer. Format is detected once, when the document is built, and carried
// as Origin from then on.
package resume

import (
	"strings"

	"github.com/jonathan/cv-tracker/internal/cvjson"
	"github.com/jonathan/cv-tracker/internal/experience"
	"github.com/jonathan/cv-tracker/internal/parsing"
	"github.com/jonathan/cv-tracker/internal/rendering"
	"github.com/jonathan/cv-tracker/internal/types"
	"github.com/jonathan/cv-tracker/internal/uncertainty"
)

// Document is a parsed résumé together with the format it was stored in
type Document struct {
	Origin        types.Origin
	Content       types.CVContent
	Uncertainties uncertainty.Tracker
	// Buckets holds the canonical skill bucket sizes seen at parse time.
	// Only set for json-origin documents.
	Buckets *cvjson.Buckets
	// Certifications lists names found in a certifications section
	Certifications []string
	// Other keeps lines from sections the parser did not recognise
	Other []string

	blank bool
}

// Parser builds documents from raw stored content
type Parser struct {
	text *parsing.Parser
}

// NewParser returns a parser whose text path uses opts
func NewParser(opts parsing.Options) *Parser {
	return &Parser{text: parsing.NewParser(opts)}
}

var defaultParser = NewParser(parsing.DefaultOptions())

// Parse detects the format of raw and parses it with the default options
func Parse(raw string) *Document {
	return defaultParser.Parse(raw)
}

// Parse detects the format of raw and parses it. Content that looks like
// canonical JSON but cannot be decoded is parsed as text.
func (p *Parser) Parse(raw string) *Document {
	if parsing.DetectFormat(raw) == types.OriginJSON {
		if doc, ok := fromJSON(raw); ok {
			return doc
		}
	}
	return p.parseText(raw)
}

// Open rebuilds a document from a persisted record without re-detecting its
// format. A json record that no longer decodes is read as text.
func (p *Parser) Open(origin types.Origin, content string) *Document {
	if origin == types.OriginJSON {
		if doc, ok := fromJSON(content); ok {
			return doc
		}
	}
	return p.parseText(content)
}

// Open rebuilds a persisted record with the default options
func Open(origin types.Origin, content string) *Document {
	return defaultParser.Open(origin, content)
}

// Sections splits text content into the raw lines of each recognised
// section, keyed by section name, without field extraction
func (p *Parser) Sections(raw string) map[string][]string {
	split := p.text.SplitSections(raw)
	out := make(map[string][]string, len(split))
	for section, lines := range split {
		out[section.String()] = lines
	}
	return out
}

func fromJSON(raw string) (*Document, bool) {
	cv, err := cvjson.Unmarshal([]byte(raw))
	if err != nil {
		return nil, false
	}
	buckets := cvjson.BucketsOf(cv.Skills)
	return &Document{
		Origin:        types.OriginJSON,
		Content:       cvjson.ToCVContent(cv),
		Uncertainties: uncertainty.New(nil),
		Buckets:       &buckets,
	}, true
}

func (p *Parser) parseText(raw string) *Document {
	res := p.text.Parse(raw)
	return &Document{
		Origin:         types.OriginText,
		Content:        res.Content,
		Uncertainties:  uncertainty.New(res.Uncertainties),
		Certifications: res.Certifications,
		Other:          res.Other,
		blank:          strings.TrimSpace(raw) == "",
	}
}

// FromExtraction builds a text-origin document from an extraction-service
// payload. The payload's uncertainty list is kept, and blank dates, companies
// and institutions it did not flag get a marker of their own.
func FromExtraction(ex *types.ExtractedResume) *Document {
	c := types.CVContent{
		PersonalInfo: ex.PersonalInfo,
		Summary:      strings.TrimSpace(ex.Summary),
		Experiences:  make([]types.Experience, 0, len(ex.Experiences)),
		Education:    make([]types.Education, 0, len(ex.Education)),
		Skills:       append([]string{}, ex.Skills...),
	}
	for _, w := range ex.Experiences {
		c.Experiences = append(c.Experiences, experience.ToEditorExperience(w))
	}
	for _, e := range ex.Education {
		c.Education = append(c.Education, experience.ToEditorEducation(e))
	}
	if c.PersonalInfo.Languages == "" && len(ex.Languages) > 0 {
		names := make([]string, 0, len(ex.Languages))
		for _, l := range ex.Languages {
			names = append(names, l.Language)
		}
		c.PersonalInfo.Languages = strings.Join(names, ", ")
	}

	certNames := make([]string, 0, len(ex.Certifications))
	for _, cert := range ex.Certifications {
		certNames = append(certNames, cert.Name)
	}

	return &Document{
		Origin:         types.OriginText,
		Content:        c,
		Uncertainties:  flagBlankFields(uncertainty.New(ex.Uncertainties), &c),
		Certifications: certNames,
	}
}

func flagBlankFields(t uncertainty.Tracker, c *types.CVContent) uncertainty.Tracker {
	for i, e := range c.Experiences {
		if e.StartDate == "" {
			t = t.Add(types.Uncertainty{EntryIndex: i, Field: "startDate", Reason: "no date range found"})
		}
		if e.Company == "" {
			t = t.Add(types.Uncertainty{EntryIndex: i, Field: "company", Reason: "company not found"})
		}
	}
	for i, e := range c.Education {
		if e.Institution == "" {
			t = t.Add(types.Uncertainty{EntryIndex: i, Field: "institution", Reason: "institution not found"})
		}
		if e.Year == "" {
			t = t.Add(types.Uncertainty{EntryIndex: i, Field: "year", Reason: "no year found"})
		}
	}
	return t
}

// NothingExtracted reports the one checked failure: non-empty input that
// yielded no content at all. Callers surface it as a retry prompt.
func (d *Document) NothingExtracted() bool {
	return !d.blank && d.Content.IsEmpty()
}

// RecordEdit clears the uncertainty marker of a field a human has edited
func (d *Document) RecordEdit(entry int, field string) {
	d.Uncertainties = d.Uncertainties.RecordEdit(entry, field)
}

// EnsureIDs assigns fresh identifiers to entries that have none
func (d *Document) EnsureIDs() {
	for i := range d.Content.Experiences {
		if d.Content.Experiences[i].ID == "" {
			d.Content.Experiences[i].ID = types.NewID()
		}
	}
	for i := range d.Content.Education {
		if d.Content.Education[i].ID == "" {
			d.Content.Education[i].ID = types.NewID()
		}
	}
	for i := range d.Content.Projects {
		if d.Content.Projects[i].ID == "" {
			d.Content.Projects[i].ID = types.NewID()
		}
	}
}

// Serialize writes the document back in its origin format. For json origin a
// nil strategy reuses the recorded bucket sizes when known and SixtyForty
// otherwise.
func (d *Document) Serialize(strategy cvjson.BucketStrategy) (string, error) {
	if d.Origin != types.OriginJSON {
		out, err := rendering.RenderMarkdown(d.Content)
		if err != nil {
			return "", &SerializeError{Origin: d.Origin, Cause: err}
		}
		return out, nil
	}

	if strategy == nil {
		strategy = cvjson.SixtyForty{}
		if d.Buckets != nil {
			strategy = cvjson.BoundaryStrategy{Boundary: *d.Buckets}
		}
	}
	out, err := cvjson.Marshal(cvjson.FromCVContent(d.Content, strategy))
	if err != nil {
		return "", &SerializeError{Origin: d.Origin, Cause: err}
	}
	return string(out), nil
}

// Convert returns a copy of the document tagged with a different origin.
// Bucket sizes and uncertainties are dropped: neither survives a format change.
func (d *Document) Convert(origin types.Origin) *Document {
	return &Document{
		Origin:        origin,
		Content:       d.Content,
		Uncertainties: uncertainty.New(nil),
	}
}
