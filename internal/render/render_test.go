package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/diary/internal/config"
	"github.com/gorewood/diary/internal/diary"
)

func testSite() config.Site {
	site := config.Default().Site
	site.Author = "Sam Writer"
	return site
}

func newRenderer(t *testing.T, site config.Site) *HTML {
	t.Helper()
	r, err := NewHTML(site)
	require.NoError(t, err)
	return r
}

func entry(t *testing.T, stem, data string) *diary.Entry {
	t.Helper()
	e, err := diary.ParseEntry(stem+".txt", []byte(data))
	require.NoError(t, err)
	return e
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func hrefs(sel *goquery.Selection) []string {
	return sel.Map(func(_ int, s *goquery.Selection) string {
		href, _ := s.Attr("href")
		return href
	})
}

func TestEntryPage(t *testing.T) {
	r := newRenderer(t, testSite())
	e := entry(t, "2025-03-05", "March 5, 2025\nSpring Cleaning\nLine one\nLine two\n\nSecond paragraph.\n\n\n\nThird.")

	html, err := r.EntryPage(e)
	require.NoError(t, err)
	doc := parse(t, html)

	assert.Equal(t, "March 5, 2025 - Sam Writer", doc.Find("title").Text())
	assert.Equal(t, "March 5, 2025", doc.Find("header.major h1").Text())
	assert.Equal(t, "Spring Cleaning", doc.Find("#one h2").Text())

	paras := doc.Find("div.entry-content p")
	assert.Equal(t, 3, paras.Length())
	assert.Equal(t, 1, paras.First().Find("br").Length())

	back := hrefs(doc.Find("#one .inner > p a"))
	assert.Equal(t, []string{"../2025-index.html", "../../diaryLanding.html"}, back)
	assert.Contains(t, html, "← Back to 2025")

	assert.Equal(t, []string{
		"../../../index.html",
		"../../../learnings/learningsLanding.html",
		"../../../diary/diaryLanding.html",
	}, hrefs(doc.Find("#menu a")))

	css, _ := doc.Find(`link[rel="stylesheet"]`).First().Attr("href")
	assert.Equal(t, "../../../assets/css/main.css", css)
	scripts := doc.Find("script").Map(func(_ int, s *goquery.Selection) string {
		src, _ := s.Attr("src")
		return src
	})
	assert.Len(t, scripts, 7)
	assert.Equal(t, "../../../assets/js/jquery.min.js", scripts[0])
	assert.Equal(t, "../../../assets/js/main.js", scripts[6])
}

func TestEntryPage_DefaultTitleAndEscaping(t *testing.T) {
	r := newRenderer(t, testSite())
	e := entry(t, "2025-03-05", "<March> 5\n\nBody with <script>alert(1)</script> & more")

	html, err := r.EntryPage(e)
	require.NoError(t, err)
	doc := parse(t, html)

	assert.Equal(t, diary.DefaultTitle, doc.Find("#one h2").Text())
	assert.Equal(t, "<March> 5", doc.Find("header.major h1").Text())
	assert.Equal(t, 0, doc.Find("div.entry-content script").Length())
	assert.NotContains(t, html, "alert(1)")
}

func TestEntryPage_ParagraphRoundTrip(t *testing.T) {
	r := newRenderer(t, testSite())
	for n := 1; n <= 5; n++ {
		paras := make([]string, n)
		for i := range paras {
			paras[i] = "Paragraph text\nwith a break"
		}
		e := entry(t, "2024-06-01", "June 1\nTitle\n"+strings.Join(paras, "\n\n"))

		html, err := r.EntryPage(e)
		require.NoError(t, err)
		assert.Equal(t, n, parse(t, html).Find("div.entry-content p").Length())
	}
}

func TestYearIndex(t *testing.T) {
	r := newRenderer(t, testSite())
	entries := []*diary.Entry{
		entry(t, "2024-01-10", "January 10, 2024\nNew Year\nShort note"),
		entry(t, "2024-03-02", "March 2, 2024\nSpring\n"+strings.Repeat("x", 40)+"\n"+strings.Repeat("y", 110)),
		entry(t, "2024-03-20", "March 20, 2024\nLater\nAnother"),
	}

	html, err := r.YearIndex(2024, entries)
	require.NoError(t, err)
	doc := parse(t, html)

	assert.Equal(t, "2024 Diary - Sam Writer", doc.Find("title").Text())
	assert.Equal(t, "2024 Diary Entries", doc.Find("header.major h1").Text())

	months := doc.Find("#one h2").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Equal(t, []string{"March", "January"}, months)

	assert.Equal(t, []string{
		"../diaryLanding.html",
		"march/2024-03-20.html",
		"march/2024-03-02.html",
		"january/2024-01-10.html",
	}, hrefs(doc.Find("#one .inner a")))

	items := doc.Find("#one li")
	assert.Equal(t, "March 2, 2024 - "+strings.Repeat("x", 40)+"...", items.Eq(1).Text())
	assert.Equal(t, "January 10, 2024 - Short note", items.Eq(2).Text())

	css, _ := doc.Find(`link[rel="stylesheet"]`).First().Attr("href")
	assert.Equal(t, "../../assets/css/main.css", css)
}

func TestPreviews_ShowPlainText(t *testing.T) {
	r := newRenderer(t, testSite())
	e := entry(t, "2024-05-01", "May 1, 2024\nSpring\nI <em>love</em> it\n\nMore.")

	year, err := r.YearIndex(2024, []*diary.Entry{e})
	require.NoError(t, err)
	landing, err := r.LandingPage(diary.Years([]*diary.Entry{e}))
	require.NoError(t, err)

	for list, page := range map[string]string{"#one li": year, "#two li": landing} {
		name := list
		item := parse(t, page).Find(list).Last()
		assert.Equal(t, "May 1, 2024 - I love it", item.Text(), name)
		assert.Equal(t, 0, item.Find("em").Length(), name)
		assert.NotContains(t, page, "&lt;em&gt;", name)
	}
}

func TestLandingPage(t *testing.T) {
	r := newRenderer(t, testSite())
	years := diary.Years([]*diary.Entry{
		entry(t, "2024-01-10", "January 10, 2024\nA\n"+strings.Repeat("z", 90)),
		entry(t, "2024-02-11", "February 11, 2024\nB\nb"),
		entry(t, "2024-03-12", "March 12, 2024\nC\nc"),
		entry(t, "2024-04-13", "April 13, 2024\nD\nd"),
		entry(t, "2023-12-25", "December 25, 2023\nE\ne"),
	})

	html, err := r.LandingPage(years)
	require.NoError(t, err)
	doc := parse(t, html)

	assert.Equal(t, "My Diary - Sam Writer", doc.Find("title").Text())
	assert.Equal(t, "My Diary", doc.Find("header.major h1").Text())
	assert.Equal(t, config.Default().Site.Description, doc.Find("#one .inner > p").Text())

	yearHeadings := doc.Find("#two h2").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Equal(t, []string{"2024", "2023"}, yearHeadings)

	assert.Equal(t, []string{"2024/2024-index.html", "2023/2023-index.html"}, hrefs(doc.Find("#two a.button")))
	assert.Equal(t, []string{
		"2024/april/2024-04-13.html",
		"2024/march/2024-03-12.html",
		"2024/february/2024-02-11.html",
		"2023/december/2023-12-25.html",
	}, hrefs(doc.Find("#two ul:not(.actions) a")))

	assert.Equal(t, 1, doc.Find("#two hr").Length())
	assert.Equal(t, 1, strings.Count(html, `<hr style="margin: 3em 0;" />`))

	assert.Equal(t, "../diary/diaryLanding.html", hrefs(doc.Find("#menu a"))[2])
	css, _ := doc.Find(`link[rel="stylesheet"]`).First().Attr("href")
	assert.Equal(t, "../assets/css/main.css", css)

	assert.Equal(t, 0, doc.Find("#contact").Length())
	assert.Equal(t, 0, doc.Find("ul.icons").Length())
}

func TestLandingPage_SingleYearHasNoSeparator(t *testing.T) {
	r := newRenderer(t, testSite())
	years := diary.Years([]*diary.Entry{entry(t, "2024-01-10", "January 10, 2024\nA\na")})

	html, err := r.LandingPage(years)
	require.NoError(t, err)
	assert.NotContains(t, html, "<hr")
}

func TestLandingPage_LandingPreview(t *testing.T) {
	r := newRenderer(t, testSite())
	years := diary.Years([]*diary.Entry{entry(t, "2024-01-10", "January 10, 2024\nA\n"+strings.Repeat("z", 90))})

	html, err := r.LandingPage(years)
	require.NoError(t, err)
	item := parse(t, html).Find("#two li").Last().Text()
	assert.Equal(t, "January 10, 2024 - "+strings.Repeat("z", 80)+"...", item)
}

func TestLandingPage_ContactAndSocials(t *testing.T) {
	site := testSite()
	site.Contact = config.Contact{
		Email:   "sam@example.com",
		Phone:   "555-0100",
		Address: []string{"1 Main St", "Springfield"},
	}
	site.Socials = []config.Link{
		{Label: "GitHub", Href: "https://github.com/example", Icon: "fa-github"},
	}
	r := newRenderer(t, site)

	html, err := r.LandingPage(diary.Years([]*diary.Entry{entry(t, "2024-01-10", "January 10, 2024\nA\na")}))
	require.NoError(t, err)
	doc := parse(t, html)

	assert.Equal(t, 3, doc.Find("#contact .contact-method").Length())
	mail, _ := doc.Find("#contact a").Attr("href")
	assert.Equal(t, "mailto:sam@example.com", mail)
	assert.Equal(t, 1, doc.Find("#contact br").Length())
	assert.Equal(t, 0, doc.Find("#contact form").Length(), "form needs form_action")

	social := doc.Find("ul.icons a")
	assert.Equal(t, 1, social.Length())
	href, _ := social.Attr("href")
	assert.Equal(t, "https://github.com/example", href)
	assert.True(t, social.HasClass("fa-github"))
}

func TestLandingPage_ContactForm(t *testing.T) {
	site := testSite()
	site.Contact = config.Contact{FormAction: "#"}
	r := newRenderer(t, site)

	html, err := r.LandingPage(diary.Years([]*diary.Entry{entry(t, "2024-01-10", "January 10, 2024\nA\na")}))
	require.NoError(t, err)
	form := parse(t, html).Find("#contact form")

	require.Equal(t, 1, form.Length())
	action, _ := form.Attr("action")
	assert.Equal(t, "#", action)
	method, _ := form.Attr("method")
	assert.Equal(t, "post", method)

	var fields []string
	form.Find("input[name], textarea[name]").Each(func(_ int, s *goquery.Selection) {
		name, _ := s.Attr("name")
		fields = append(fields, name)
	})
	assert.Equal(t, []string{"name", "email", "message"}, fields)
	assert.Equal(t, 0, form.Closest("#contact").Find(".contact-method").Length())
}

func TestRender_Deterministic(t *testing.T) {
	r := newRenderer(t, testSite())
	e := entry(t, "2025-03-05", "March 5, 2025\nTitle\nBody")

	first, err := r.EntryPage(e)
	require.NoError(t, err)
	second, err := r.EntryPage(e)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLink(t *testing.T) {
	assert.Equal(t, "../../index.html", link(2, "index.html"))
	assert.Equal(t, "https://example.com", link(3, "https://example.com"))
	assert.Equal(t, "/about.html", link(3, "/about.html"))
	assert.Equal(t, "#menu", link(1, "#menu"))
}

func TestDepthPrefixes(t *testing.T) {
	assert.Equal(t, "../../../", root(EntryDepth))
	assert.Equal(t, "../../", home(EntryDepth))
	assert.Equal(t, "../", home(YearIndexDepth))
	assert.Equal(t, "", home(LandingDepth))
}

func TestLandingPage_NoAuthor(t *testing.T) {
	r := newRenderer(t, config.Default().Site)
	html, err := r.LandingPage(nil)
	require.NoError(t, err)
	doc := parse(t, html)
	assert.Equal(t, "My Diary", doc.Find("title").Text())
	assert.Equal(t, "My Diary", doc.Find("#header .logo strong").Text())
}
