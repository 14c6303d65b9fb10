package scraper

import (
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwickrama/cse-dividends/internal/announcement"
)

// fragment parses html and returns the first post container in it.
func fragment(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	sel := doc.Find("div.post-outer").First()
	require.Equal(t, 1, sel.Length(), "fixture must contain a post container")
	return sel
}

func TestExtractFixture(t *testing.T) {
	data, err := os.ReadFile("testdata/sample_page.html")
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	require.NoError(t, err)

	posts := doc.Find("div.post-outer")
	require.Equal(t, 3, posts.Length())

	first := Extract(posts.Eq(0))
	require.NotNil(t, first)
	assert.Equal(t, "05-Jun-2024", first.PostDate)
	assert.Equal(t, "ABC", first.CompanyCode)
	assert.Equal(t, "Alpha Beta Corporation PLC", first.CompanyName)
	assert.Equal(t, "05-Jun-2024", first.AnnouncementDate)
	assert.Equal(t, "20-Jun-2024", first.ExDividendDate)
	assert.Equal(t, "2023/2024", first.FinancialYear)
	assert.Equal(t, "Rs. 2.50", first.DividendRate)

	// Second post uses the "Initial Announcement" label and a TBA
	// ex-dividend date.
	second := Extract(posts.Eq(1))
	require.NotNil(t, second)
	assert.Equal(t, "XYZ", second.CompanyCode)
	assert.Equal(t, "03-Jun-2024", second.AnnouncementDate)
	assert.Equal(t, announcement.TBA, second.ExDividendDate)
	assert.Equal(t, "Rs. 0.75", second.DividendRate)

	// Third post has no date in its title, so it is not a dividend
	// announcement.
	assert.Nil(t, Extract(posts.Eq(2)))
}

func TestExtractGates(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{
			name: "no heading",
			html: `<div class="post-outer">
<p>Dividend Announcement 05-Jun-2024 - ABC</p>
</div>`,
		},
		{
			name: "heading without link",
			html: `<div class="post-outer">
<h3 class="post-title">Dividend Announcement 05-Jun-2024 - ABC</h3>
</div>`,
		},
		{
			name: "no date in title",
			html: `<div class="post-outer">
<h3 class="post-title"><a href="#">Notice of AGM - ABC</a></h3>
<div class="post-body">
Alpha Beta Corporation PLC
Date of Announcement: - 05-Jun-2024
</div>
</div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, Extract(fragment(t, tt.html)))
		})
	}
}

func TestExtractCompanyCode(t *testing.T) {
	withCode := fragment(t, `<div class="post-outer">
<h2><a href="#">Dividend Announcement 05-Jun-2024 - LOLC</a></h2>
</div>`)
	ann := Extract(withCode)
	require.NotNil(t, ann)
	assert.Equal(t, "LOLC", ann.CompanyCode)

	withoutCode := fragment(t, `<div class="post-outer">
<h2><a href="#">Dividend Announcement 05-Jun-2024</a></h2>
</div>`)
	ann = Extract(withoutCode)
	require.NotNil(t, ann)
	assert.Empty(t, ann.CompanyCode)
}

func TestExtractOptionalFieldsAbsent(t *testing.T) {
	// Only the title gates pass; everything else stays empty without
	// being an error.
	ann := Extract(fragment(t, `<div class="post-outer">
<h3><a href="#">Dividend Announcement 05-Jun-2024 - ABC</a></h3>
</div>`))
	require.NotNil(t, ann)
	assert.Equal(t, "05-Jun-2024", ann.PostDate)
	assert.Empty(t, ann.AnnouncementDate)
	assert.Empty(t, ann.ExDividendDate)
	assert.Empty(t, ann.FinancialYear)
	assert.Empty(t, ann.DividendRate)
}

func TestExtractXDDate(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "dotted date normalized to dashes",
			body: "XD: - 05.Jun.2024",
			want: "05-Jun-2024",
		},
		{
			name: "dotted date without dash",
			body: "XD: 10.Jul.2023",
			want: "10-Jul-2023",
		},
		{
			name: "TBA sentinel",
			body: "XD: - TBA",
			want: "TBA",
		},
		{
			name: "missing label",
			body: "Nothing about an ex-dividend date here.",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ann := Extract(fragment(t, `<div class="post-outer">
<h3><a href="#">Dividend Announcement 05-Jun-2024 - ABC</a></h3>
<div class="post-body">
Alpha Beta Corporation PLC
`+tt.body+`
</div>
</div>`))
			require.NotNil(t, ann)
			assert.Equal(t, tt.want, ann.ExDividendDate)
		})
	}
}

func TestExtractDividendRate(t *testing.T) {
	ann := Extract(fragment(t, `<div class="post-outer">
<h3><a href="#">Dividend Announcement 05-Jun-2024 - ABC</a></h3>
<div class="post-body">
Alpha Beta Corporation PLC
Rate of Dividend: Rs. 2.50 per share
</div>
</div>`))
	require.NotNil(t, ann)
	assert.Equal(t, "Rs. 2.50", ann.DividendRate)
}

func TestFindPostsFallback(t *testing.T) {
	// No post-outer containers; the loose class-substring matcher
	// picks up hentry/entry style themes.
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body>
<article class="hentry">
<h3><a href="#">Dividend Announcement 05-Jun-2024 - ABC</a></h3>
</article>
<div class="blog-entry">
<h3><a href="#">Dividend Announcement 04-Jun-2024 - DEF</a></h3>
</div>
<div class="sidebar">ignored</div>
</body></html>`))
	require.NoError(t, err)

	posts := findPosts(doc)
	assert.Equal(t, 2, posts.Length())
}

func TestFindPostsNone(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body>
<div class="sidebar">nothing here</div>
</body></html>`))
	require.NoError(t, err)

	posts := findPosts(doc)
	assert.Equal(t, 0, posts.Length())
}
