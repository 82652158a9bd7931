package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelector lists elements that never carry résumé content
const noiseSelector = "script, style, noscript, nav, footer, iframe, svg, form, button"

// HTMLToText converts a pasted HTML résumé to the markdown-flavored text
// format: headings become "#" lines, list items "- " bullets, and
// strong/em runs "**"/"*" markers. The result goes through CleanText.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find(noiseSelector).Remove()

	root := doc.Find("main, article").First()
	if root.Length() == 0 {
		root = doc.Find("body")
	}

	w := &htmlWriter{}
	w.walk(root)
	w.flush()
	return CleanText(strings.Join(w.lines, "\n")), nil
}

type htmlWriter struct {
	lines []string
	cur   strings.Builder
}

func (w *htmlWriter) flush() {
	line := strings.Join(strings.Fields(w.cur.String()), " ")
	// table rows leave a trailing cell separator
	line = strings.TrimSpace(strings.TrimSuffix(line, "|"))
	if line != "" {
		w.lines = append(w.lines, line)
	}
	w.cur.Reset()
}

// inline renders a block's content on one line, keeping emphasis markers
func inline(s *goquery.Selection) string {
	sub := &htmlWriter{}
	sub.walk(s)
	sub.flush()
	return strings.Join(sub.lines, " ")
}

func (w *htmlWriter) block(prefix string, s *goquery.Selection) {
	w.flush()
	if text := inline(s); text != "" {
		w.lines = append(w.lines, prefix+text)
	}
}

func (w *htmlWriter) emphasis(marker string, s *goquery.Selection) {
	text := inline(s)
	if text == "" {
		return
	}
	// markers already inside (e.g. <b><i>x</i></b>) are dropped
	text = strings.Trim(text, "*")
	w.cur.WriteString(marker + text + marker)
}

func (w *htmlWriter) walk(s *goquery.Selection) {
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		switch name := goquery.NodeName(c); name {
		case "#text":
			w.cur.WriteString(c.Text())
		case "#comment":
		case "br":
			w.flush()
		case "h1":
			w.block("# ", c)
		case "h2":
			w.block("## ", c)
		case "h3", "h4", "h5", "h6":
			w.block("### ", c)
		case "li":
			w.block("- ", c)
		case "strong", "b":
			w.emphasis("**", c)
		case "em", "i":
			w.emphasis("*", c)
		case "p", "div", "section", "article", "header", "main", "ul", "ol", "table", "tr", "dl", "dt", "dd", "address", "blockquote":
			w.flush()
			w.walk(c)
			w.flush()
		case "td", "th":
			w.walk(c)
			w.cur.WriteString(" | ")
		default:
			w.walk(c)
		}
	})
}
