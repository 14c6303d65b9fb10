package scraper

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/rwickrama/cse-dividends/internal/announcement"
)

// PagesPerYear caps the crawl at yearsBack * PagesPerYear pages, an
// estimate based on the blog's posting frequency.
const PagesPerYear = 20

// olderPostsSelector matches Blogspot's pagination control.
const olderPostsSelector = "a.blog-pager-older-link"

// Post container matchers, tried in order; the first non-empty
// selection wins. The loose class-substring match covers themes that
// do not use the classic post-outer layout.
var postMatchers = []func(*goquery.Document) *goquery.Selection{
	func(doc *goquery.Document) *goquery.Selection {
		return doc.Find("div.post-outer")
	},
	func(doc *goquery.Document) *goquery.Selection {
		return doc.Find("div, article").FilterFunction(func(_ int, s *goquery.Selection) bool {
			class, _ := s.Attr("class")
			return strings.Contains(class, "post") || strings.Contains(class, "entry")
		})
	},
}

// Crawler walks the blog's paginated archive, extracting announcement
// records until they start predating the cutoff year.
type Crawler struct {
	fetcher  *Fetcher
	startURL string
	log      *zap.Logger
}

// NewCrawler creates a Crawler starting at startURL (BaseURL when
// empty).
func NewCrawler(fetcher *Fetcher, startURL string, log *zap.Logger) *Crawler {
	if startURL == "" {
		startURL = BaseURL
	}
	return &Crawler{
		fetcher:  fetcher,
		startURL: startURL,
		log:      log,
	}
}

// Crawl fetches pages starting at the configured URL, following
// "older posts" links, and returns every extracted record whose
// announcement year is within yearsBack of the current year. Posts are
// assumed chronologically descending, so the first record older than
// the cutoff abandons the pending queue. Fetch failures are logged and
// skipped; the crawl itself never fails.
func (c *Crawler) Crawl(yearsBack int) []*announcement.Announcement {
	cutoffYear := time.Now().Year() - yearsBack
	maxPages := yearsBack * PagesPerYear

	queue := []string{c.startURL}
	visited := make(map[string]bool)
	anns := make([]*announcement.Announcement, 0)
	pageCount := 0

	for len(queue) > 0 && pageCount < maxPages {
		url := queue[0]
		queue = queue[1:]
		if visited[url] {
			continue
		}
		visited[url] = true
		pageCount++

		doc, err := c.fetcher.Fetch(url)
		if err != nil {
			c.log.Warn("failed to fetch page", zap.String("url", url), zap.Error(err))
			continue
		}

		posts := findPosts(doc)
		posts.EachWithBreak(func(_ int, post *goquery.Selection) bool {
			ann := Extract(post)
			if ann == nil || ann.AnnouncementDate == "" {
				return true
			}

			d := ann.Date()
			if d.IsZero() {
				return true
			}

			if d.Year() >= cutoffYear {
				anns = append(anns, ann)
				return true
			}

			// Too old: everything further down the archive is older
			// still, so drop the pending pages and stop this page.
			queue = queue[:0]
			return false
		})

		// The older-posts link is consulted even after a cutoff stop,
		// which can re-seed the emptied queue.
		if href, ok := doc.Find(olderPostsSelector).First().Attr("href"); ok && href != "" && !visited[href] {
			queue = append(queue, href)
		}

		c.log.Debug("page processed",
			zap.String("url", url),
			zap.Int("posts", posts.Length()))

		if pageCount%5 == 0 {
			c.log.Info("crawl progress",
				zap.Int("pages", pageCount),
				zap.Int("announcements", len(anns)))
		}
	}

	c.log.Info("crawl complete",
		zap.Int("pages", pageCount),
		zap.Int("announcements", len(anns)))

	return anns
}

// findPosts locates the post containers on a page, falling back to the
// looser matcher when the primary selector finds nothing.
func findPosts(doc *goquery.Document) *goquery.Selection {
	var posts *goquery.Selection
	for _, match := range postMatchers {
		posts = match(doc)
		if posts.Length() > 0 {
			break
		}
	}
	return posts
}
