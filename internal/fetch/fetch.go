// Package fetch retrieves job postings from the web and reduces them to the
// text handed to the job-description extractor.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "Mozilla/5.0 (compatible; cvtrack/1.0)"
	maxPageBytes     = 5 << 20
)

// Error reports a failed fetch.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures a fetch. The zero value is usable.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	// Browser enables headless rendering when the plain HTTP response
	// yields less than MinPostingLength characters of posting text.
	Browser bool
	Client  *http.Client
	Logger  *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUserAgent
	}
	if o.Client == nil {
		o.Client = &http.Client{Timeout: o.Timeout}
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// Posting is a fetched job posting.
type Posting struct {
	URL      string
	Board    Board
	HTML     string
	Text     string
	Rendered bool
}

// JobPosting downloads rawURL and extracts the posting body.
func JobPosting(ctx context.Context, rawURL string, opts Options) (*Posting, error) {
	opts = opts.withDefaults()

	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, &Error{URL: rawURL, Message: "invalid URL", Cause: err}
	}

	html, err := get(ctx, rawURL, opts)
	if err != nil {
		return nil, err
	}

	board := DetectBoard(rawURL)
	text, err := PostingText(html, board)
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "failed to read page", Cause: err}
	}
	p := &Posting{URL: rawURL, Board: board, HTML: html, Text: text}

	if opts.Browser && NeedsBrowser(text) {
		opts.Logger.Debug("posting text too short, rendering in browser", "url", rawURL, "chars", len(text))
		rendered, err := Render(ctx, rawURL, opts.Timeout)
		if err != nil {
			return nil, &Error{URL: rawURL, Message: "browser rendering failed", Cause: err}
		}
		if text, err = PostingText(rendered, board); err != nil {
			return nil, &Error{URL: rawURL, Message: "failed to read rendered page", Cause: err}
		}
		p.HTML, p.Text, p.Rendered = rendered, text, true
	}
	return p, nil
}

func get(ctx context.Context, rawURL string, opts Options) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &Error{URL: rawURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := opts.Client.Do(req)
	if err != nil {
		return "", &Error{URL: rawURL, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: rawURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", &Error{URL: rawURL, Message: "failed to read body", Cause: err}
	}
	return string(body), nil
}

// PostingText strips page chrome and application forms from html and
// returns the text of the first content block matching the board's
// selectors, falling back to <body>.
func PostingText(html string, board Board) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find(strings.Join(board.noise(), ", ")).Remove()

	var content *goquery.Selection
	for _, sel := range board.content() {
		if s := doc.Find(sel); s.Length() > 0 {
			content = s.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	var lines []string
	for _, line := range strings.Split(content.Text(), "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}
