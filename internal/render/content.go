package render

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// YearPreviewLength and LandingPreviewLength cap entry previews, in runes.
const (
	YearPreviewLength    = 100
	LandingPreviewLength = 80
)

var (
	policy      = bluemonday.UGCPolicy()
	plainPolicy = bluemonday.StrictPolicy()
)

// Paragraphs splits entry content on blank lines into sanitized <p>
// elements. Single line breaks inside a paragraph become <br />.
func Paragraphs(content string) []string {
	var out []string
	for _, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(policy.Sanitize(para))
		if para == "" {
			continue
		}
		para = strings.ReplaceAll(para, "\n", "<br />\n")
		out = append(out, "<p>"+para+"</p>")
	}
	return out
}

// FormatContent returns the paragraphs of content separated by a blank line.
func FormatContent(content string) string {
	return strings.Join(Paragraphs(content), "\n\n")
}

// Preview returns the first line of content as plain text cut to limit
// runes. The ellipsis is added when the whole content, not the first
// line, is longer than limit.
func Preview(content string, limit int) string {
	first, _, _ := strings.Cut(content, "\n")
	first = html.UnescapeString(plainPolicy.Sanitize(first))
	runes := []rune(first)
	if len(runes) > limit {
		first = string(runes[:limit])
	}
	if len([]rune(content)) > limit {
		first += "..."
	}
	return first
}
