package html_parser

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// StripTags removes every tag and decodes entities.
func StripTags(raw string) string {
	return html.UnescapeString(strictPolicy.Sanitize(raw))
}

// CleanTitle turns an upstream title into a single line of plain text.
func CleanTitle(raw string) string {
	if !strings.ContainsAny(raw, "<&") {
		return NormalizeWhitespace(raw)
	}
	return NormalizeWhitespace(StripTags(raw))
}

// ExtractText returns the visible text of an HTML fragment, ignoring scripts
// and styles. Plain text passes through with whitespace collapsed.
func ExtractText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if !strings.Contains(trimmed, "<") {
		return NormalizeWhitespace(html.UnescapeString(trimmed))
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(trimmed))
	if err != nil {
		return NormalizeWhitespace(StripTags(trimmed))
	}
	doc.Find("script, style, noscript").Remove()

	var parts []string
	doc.Find("p, li, h1, h2, h3, h4").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	if len(parts) == 0 {
		return NormalizeWhitespace(doc.Text())
	}
	return NormalizeWhitespace(strings.Join(parts, " "))
}

func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
