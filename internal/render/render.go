// Package render turns diary entries into the HTML pages of the site:
// one page per entry, one index per year and the landing page.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/gorewood/diary/internal/config"
	"github.com/gorewood/diary/internal/diary"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page depths below the site root. Relative links are built from these.
const (
	LandingDepth   = 1
	YearIndexDepth = 2
	EntryDepth     = 3
)

const (
	templateBase    = "base"
	templateEntry   = "entry"
	templateYear    = "year"
	templateLanding = "landing"
)

// Renderer produces the full HTML document of each page kind.
// Implementations do no I/O and return the same output for the same input.
type Renderer interface {
	EntryPage(e *diary.Entry) (string, error)
	YearIndex(year int, entries []*diary.Entry) (string, error)
	LandingPage(years []diary.YearGroup) (string, error)
}

// HTML renders pages from the embedded html/template files.
type HTML struct {
	site      config.Site
	templates map[string]*template.Template
}

var _ Renderer = (*HTML)(nil)

type pageData struct {
	Site  config.Site
	Depth int
	Title string

	Entry   *diary.Entry
	Content template.HTML

	Year   int
	Months []diary.MonthGroup
	Years  []diary.YearGroup

	PreviewLength int
}

// NewHTML parses the page templates for site.
func NewHTML(site config.Site) (*HTML, error) {
	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	return &HTML{site: site, templates: templates}, nil
}

func loadTemplates() (map[string]*template.Template, error) {
	raw, err := templatesFS.ReadFile("templates/" + templateBase + ".html")
	if err != nil {
		return nil, fmt.Errorf("reading base template: %w", err)
	}
	base, err := template.New(templateBase).Funcs(funcs()).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing base template: %w", err)
	}

	parsed := map[string]*template.Template{}
	for _, id := range []string{templateEntry, templateYear, templateLanding} {
		raw, err := templatesFS.ReadFile("templates/" + id + ".html")
		if err != nil {
			return nil, fmt.Errorf("reading %s template: %w", id, err)
		}
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning base template: %w", err)
		}
		if _, err := clone.New(id).Parse(string(raw)); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", id, err)
		}
		parsed[id] = clone
	}
	return parsed, nil
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"root":    root,
		"home":    home,
		"link":    link,
		"preview": Preview,
	}
}

// root is the prefix from a page at depth back to the site root.
func root(depth int) string {
	return strings.Repeat("../", depth)
}

// home is the prefix from a page at depth back to the diary root.
func home(depth int) string {
	return strings.Repeat("../", max(depth-1, 0))
}

// link resolves a menu href, given relative to the site root, for a page
// at depth. Absolute URLs, rooted paths and fragments are kept as is.
func link(depth int, href string) string {
	if strings.HasPrefix(href, "/") || strings.HasPrefix(href, "#") {
		return href
	}
	if u, err := url.Parse(href); err == nil && u.IsAbs() {
		return href
	}
	return root(depth) + href
}

// EntryPage renders the page of a single entry.
func (h *HTML) EntryPage(e *diary.Entry) (string, error) {
	return h.execute(templateEntry, &pageData{
		Depth:   EntryDepth,
		Title:   e.DateDisplay,
		Entry:   e,
		Content: template.HTML(FormatContent(e.Content)), //nolint:gosec // sanitized by Paragraphs
	})
}

// YearIndex renders the index of one year, listing every entry by month.
func (h *HTML) YearIndex(year int, entries []*diary.Entry) (string, error) {
	return h.execute(templateYear, &pageData{
		Depth:         YearIndexDepth,
		Title:         fmt.Sprintf("%d Diary", year),
		Year:          year,
		Months:        diary.GroupByMonth(entries),
		PreviewLength: YearPreviewLength,
	})
}

// LandingPage renders the diary home page with the recent entries of each year.
func (h *HTML) LandingPage(years []diary.YearGroup) (string, error) {
	return h.execute(templateLanding, &pageData{
		Depth:         LandingDepth,
		Title:         h.site.Title,
		Years:         years,
		PreviewLength: LandingPreviewLength,
	})
}

func (h *HTML) execute(id string, data *pageData) (string, error) {
	tpl, ok := h.templates[id]
	if !ok {
		return "", fmt.Errorf("unknown template %q", id)
	}
	data.Site = h.site

	var b strings.Builder
	if err := tpl.ExecuteTemplate(&b, templateBase, data); err != nil {
		return "", fmt.Errorf("rendering %s page: %w", id, err)
	}
	return b.String(), nil
}
