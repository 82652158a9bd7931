package fetch

import (
	"net/url"
	"strings"
)

// Board is an applicant-tracking system hosting a job posting.
type Board string

const (
	BoardGreenhouse Board = "greenhouse"
	BoardLever      Board = "lever"
	BoardWorkday    Board = "workday"
	BoardUnknown    Board = "unknown"
)

var boardHosts = []struct {
	suffix string
	board  Board
}{
	{"greenhouse.io", BoardGreenhouse},
	{"lever.co", BoardLever},
	{"myworkdayjobs.com", BoardWorkday},
	{"workday.com", BoardWorkday},
}

// DetectBoard identifies the board from the posting URL's host.
func DetectBoard(rawURL string) Board {
	u, err := url.Parse(rawURL)
	if err != nil {
		return BoardUnknown
	}
	host := strings.ToLower(u.Hostname())
	for _, h := range boardHosts {
		if host == h.suffix || strings.HasSuffix(host, "."+h.suffix) {
			return h.board
		}
	}
	return BoardUnknown
}

func (b Board) content() []string {
	switch b {
	case BoardGreenhouse:
		return []string{".job__description", ".job-post-container", "#content"}
	case BoardLever:
		return []string{".posting-page", ".posting-description", ".content"}
	case BoardWorkday:
		return []string{"[data-automation-id='jobDescription']", ".job-description"}
	}
	return []string{
		".job-description",
		"#job-description",
		".posting-content",
		".job-details",
		"[data-testid='job-description']",
		"main",
		"article",
		"#content",
	}
}

func (b Board) noise() []string {
	common := []string{
		"script", "style", "noscript", "nav", "header", "footer",
		"form", ".application-form", "#application-form",
		".eeo-statement", ".voluntary-disclosure",
		".cookie-banner", ".cookie-consent", ".social-share",
	}
	switch b {
	case BoardGreenhouse:
		return append(common, ".voluntary-self-id", "#usa_self_id_section")
	case BoardLever:
		return append(common, ".posting-apply", ".apply-section")
	case BoardWorkday:
		return append(common, "[data-automation-id='applyButton']")
	}
	return common
}
