package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParagraphs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "single paragraph",
			content: "Just one line.",
			want:    []string{"<p>Just one line.</p>"},
		},
		{
			name:    "line breaks inside a paragraph",
			content: "Line one\nLine two",
			want:    []string{"<p>Line one<br />\nLine two</p>"},
		},
		{
			name:    "blank line splits paragraphs",
			content: "First.\n\nSecond.\n\n\n\nThird.",
			want:    []string{"<p>First.</p>", "<p>Second.</p>", "<p>Third.</p>"},
		},
		{
			name:    "whitespace-only paragraphs are dropped",
			content: "A\n\n   \n\nB",
			want:    []string{"<p>A</p>", "<p>B</p>"},
		},
		{
			name:    "empty content",
			content: "",
			want:    nil,
		},
		{
			name:    "markup is sanitized",
			content: `Hello <script>alert("x")</script><b>world</b>`,
			want:    []string{"<p>Hello <b>world</b></p>"},
		},
		{
			name:    "paragraphs emptied by sanitizing are dropped",
			content: "ok\n\n<script>alert(1)</script>\n\nend",
			want:    []string{"<p>ok</p>", "<p>end</p>"},
		},
		{
			name:    "ampersands are escaped",
			content: "Tom & Jerry",
			want:    []string{"<p>Tom &amp; Jerry</p>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paragraphs(tt.content))
		})
	}
}

func TestFormatContent(t *testing.T) {
	got := FormatContent("One\ntwo\n\nThree")
	assert.Equal(t, "<p>One<br />\ntwo</p>\n\n<p>Three</p>", got)
}

func TestPreview(t *testing.T) {
	long := strings.Repeat("a", 120)

	tests := []struct {
		name    string
		content string
		limit   int
		want    string
	}{
		{name: "short content", content: "Short line", limit: 100, want: "Short line"},
		{name: "exactly at limit", content: strings.Repeat("b", 80), limit: 80, want: strings.Repeat("b", 80)},
		{name: "long first line", content: long, limit: 100, want: strings.Repeat("a", 100) + "..."},
		{
			name:    "short first line in long content",
			content: strings.Repeat("c", 40) + "\n" + strings.Repeat("d", 109),
			limit:   100,
			want:    strings.Repeat("c", 40) + "...",
		},
		{name: "only first line is used", content: "first\nsecond", limit: 80, want: "first"},
		{name: "empty content", content: "", limit: 80, want: ""},
		{name: "markup is stripped", content: "I <em>love</em> it", limit: 80, want: "I love it"},
		{name: "entities stay plain text", content: "Tom & Jerry's", limit: 80, want: "Tom & Jerry's"},
		{
			name:    "tags do not count toward the limit",
			content: "<b>" + strings.Repeat("e", 10) + "</b>" + strings.Repeat("f", 5),
			limit:   12,
			want:    strings.Repeat("e", 10) + "ff...",
		},
		{name: "counts runes", content: strings.Repeat("é", 90), limit: 80, want: strings.Repeat("é", 80) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Preview(tt.content, tt.limit))
		})
	}
}
