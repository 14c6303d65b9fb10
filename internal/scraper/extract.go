package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rwickrama/cse-dividends/internal/announcement"
)

// Patterns for the labeled fields in a post body. Each is matched
// independently against the post's full text; the blog is not
// consistent about field order or the dash after the label.
var (
	titleDatePattern        = regexp.MustCompile(`(\d{2}-[A-Za-z]{3}-\d{4})`)
	companyCodePattern      = regexp.MustCompile(`-\s+([A-Z]+)\s*$`)
	announcementDatePattern = regexp.MustCompile(`Date of (?:Initial )?Announcement:\s*-?\s*(\d{2}-[A-Za-z]{3}-\d{4})`)
	xdDatePattern           = regexp.MustCompile(`XD:\s*-?\s*(\d{2}\.[A-Za-z]{3}\.\d{4})`)
	xdTBAPattern            = regexp.MustCompile(`XD:\s*-?\s*TBA`)
	financialYearPattern    = regexp.MustCompile(`Financial Year:\s*-?\s*([\d\s/]+)`)
	dividendRatePattern     = regexp.MustCompile(`Rate of Dividend:\s*-?\s*Rs\.\s*([\d.]+)\s*per share`)
)

// Extract pulls a structured announcement out of one post fragment.
// Returns nil when the fragment is not recognizable as a dividend
// post: no h3/h2 title, no link inside the title, or no DD-Mon-YYYY
// date in the link text. Every other field is optional and left empty
// when its label is missing or malformed.
func Extract(post *goquery.Selection) *announcement.Announcement {
	titleElem := post.Find("h3, h2").First()
	if titleElem.Length() == 0 {
		return nil
	}

	titleLink := titleElem.Find("a").First()
	if titleLink.Length() == 0 {
		return nil
	}

	title := titleLink.Text()

	dateMatch := titleDatePattern.FindStringSubmatch(title)
	if dateMatch == nil {
		return nil
	}

	ann := &announcement.Announcement{
		PostDate: dateMatch[1],
	}

	if m := companyCodePattern.FindStringSubmatch(title); m != nil {
		ann.CompanyCode = m[1]
	}

	content := post.Text()

	// The title renders as the first text line; the company name
	// follows on the next one.
	lines := nonEmptyLines(content)
	if len(lines) > 1 {
		ann.CompanyName = lines[1]
	}

	if m := announcementDatePattern.FindStringSubmatch(content); m != nil {
		ann.AnnouncementDate = m[1]
	}

	if m := xdDatePattern.FindStringSubmatch(content); m != nil {
		ann.ExDividendDate = strings.ReplaceAll(m[1], ".", "-")
	} else if xdTBAPattern.MatchString(content) {
		ann.ExDividendDate = announcement.TBA
	}

	if m := financialYearPattern.FindStringSubmatch(content); m != nil {
		ann.FinancialYear = strings.TrimSpace(m[1])
	}

	if m := dividendRatePattern.FindStringSubmatch(content); m != nil {
		ann.DividendRate = "Rs. " + m[1]
	}

	return ann
}

// nonEmptyLines splits text into trimmed lines, dropping blank ones.
func nonEmptyLines(s string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
